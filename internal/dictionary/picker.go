package dictionary

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/hangman/internal/apperror"
)

// Picker samples words uniformly. It is not safe for concurrent use.
type Picker struct {
	words []string
	rnd   *rand.Rand
}

func NewPicker(words []string, src rand.Source) (*Picker, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: empty word list", apperror.ErrDictionaryUnavailable)
	}

	return &Picker{
		words: words,
		rnd:   rand.New(src), //nolint: gosec // word choice does not need a CSPRNG
	}, nil
}

func (that *Picker) Pick() string {
	return that.words[that.rnd.Intn(len(that.words))]
}

func (that *Picker) Len() int {
	return len(that.words)
}

// NewSeededSource - returns a math/rand source seeded from crypto/rand.
func NewSeededSource() (rand.Source, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}

	return rand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))), nil
}
