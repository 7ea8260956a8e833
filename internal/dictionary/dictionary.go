// Package dictionary loads candidate secret words and samples them.
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
)

// Load - reads one word per line from path. Lines that are not a single word of letters
// are skipped; a missing file or a file without any usable word is ErrDictionaryUnavailable.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrDictionaryUnavailable, err)
	}
	defer file.Close()

	words, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return words, nil
}

// Read - same as Load for an already opened source.
func Read(reader io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if entity.IsWord(word) {
			words = append(words, word)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrDictionaryUnavailable, err)
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("%w: no usable words", apperror.ErrDictionaryUnavailable)
	}

	return words, nil
}
