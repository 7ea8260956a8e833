package console

import (
	"strings"

	"github.com/rocketscienceinc/hangman/internal/entity"
)

// stages is indexed by the number of wrong guesses so far.
var stages = [entity.MaxGuesses + 1][]string{
	{"  +---+", "  |   |", "      |", "      |", "      |", "      |", "========="},
	{"  +---+", "  |   |", "  O   |", "      |", "      |", "      |", "========="},
	{"  +---+", "  |   |", "  O   |", "  |   |", "      |", "      |", "========="},
	{"  +---+", "  |   |", "  O   |", " /|   |", "      |", "      |", "========="},
	{"  +---+", "  |   |", "  O   |", " /|\\  |", "      |", "      |", "========="},
	{"  +---+", "  |   |", "  O   |", " /|\\  |", " /    |", "      |", "========="},
	{"  +---+", "  |   |", "  O   |", " /|\\  |", " / \\  |", "      |", "Game Over!"},
}

// Stage - renders the gallows after wrongGuesses incorrect guesses, clamped to 0..6.
func Stage(wrongGuesses int) string {
	wrongGuesses = max(0, min(wrongGuesses, entity.MaxGuesses))

	return strings.Join(stages[wrongGuesses], "\n")
}
