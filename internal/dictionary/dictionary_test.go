package dictionary

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Keeps valid words in order", func(t *testing.T) {
		// Given: a word file with mixed content
		path := filepath.Join(t.TempDir(), "words.txt")
		content := "the\nOf\n  and  \n\ncan't\nx-ray\n42\nto\r\ncafé\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: the dictionary is loaded
		words, err := Load(path)

		// Then: only lowercase alphabetic words remain
		require.NoError(t, err)
		assert.Equal(t, []string{"the", "of", "and", "to"}, words)
	})

	t.Run("Missing file is unavailable", func(t *testing.T) {
		words, err := Load(filepath.Join(t.TempDir(), "nope.txt"))

		require.ErrorIs(t, err, apperror.ErrDictionaryUnavailable)
		assert.Nil(t, words)
	})

	t.Run("File without words is unavailable", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.txt")
		require.NoError(t, os.WriteFile(path, []byte("\n123\n"), 0o600))

		_, err := Load(path)

		require.ErrorIs(t, err, apperror.ErrDictionaryUnavailable)
	})
}

func TestRead(t *testing.T) {
	words, err := Read(strings.NewReader("alpha\nbeta\n"))

	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, words)
}

func TestPicker(t *testing.T) {
	t.Run("Same seed picks the same words", func(t *testing.T) {
		words := []string{"apple", "banana", "cherry", "date", "elder"}

		first, err := NewPicker(words, rand.NewSource(42))
		require.NoError(t, err)
		second, err := NewPicker(words, rand.NewSource(42))
		require.NoError(t, err)

		for i := 0; i < 20; i++ {
			assert.Equal(t, first.Pick(), second.Pick())
		}
	})

	t.Run("Single word is always picked", func(t *testing.T) {
		picker, err := NewPicker([]string{"cat"}, rand.NewSource(1))
		require.NoError(t, err)

		assert.Equal(t, "cat", picker.Pick())
		assert.Equal(t, 1, picker.Len())
	})

	t.Run("Every word is reachable", func(t *testing.T) {
		words := []string{"a", "b", "c"}
		picker, err := NewPicker(words, rand.NewSource(7))
		require.NoError(t, err)

		seen := map[string]bool{}
		for i := 0; i < 300; i++ {
			seen[picker.Pick()] = true
		}

		assert.Len(t, seen, len(words))
	})

	t.Run("Empty list is rejected", func(t *testing.T) {
		_, err := NewPicker(nil, rand.NewSource(1))

		require.ErrorIs(t, err, apperror.ErrDictionaryUnavailable)
	})

	t.Run("Seeded source is usable", func(t *testing.T) {
		src, err := NewSeededSource()
		require.NoError(t, err)

		picker, err := NewPicker([]string{"cat", "dog"}, src)
		require.NoError(t, err)
		assert.Contains(t, []string{"cat", "dog"}, picker.Pick())
	})
}
