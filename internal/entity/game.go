package entity

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/hangman/internal/apperror"
)

const (
	MaxGuesses  = 6
	Placeholder = '_'
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Game is the state of one hangman round. The secret word is fixed at creation;
// the mask, the guess budget and the guessed letters change only through the Apply/Record methods.
type Game struct {
	secretWord       string
	revealMask       []byte
	remainingGuesses int
	guessed          []byte
}

// NewGame - starts a round for secretWord with a fully hidden mask and the whole guess budget.
func NewGame(secretWord string) (*Game, error) {
	if !IsWord(secretWord) {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidWord, secretWord)
	}

	return &Game{
		secretWord:       secretWord,
		revealMask:       bytes.Repeat([]byte{Placeholder}, len(secretWord)),
		remainingGuesses: MaxGuesses,
		guessed:          []byte{},
	}, nil
}

// RestoreGame - rebuilds a round from externalized fields and checks every invariant a
// reachable game satisfies.
func RestoreGame(secretWord, revealMask string, remainingGuesses int, guessedLetters []string) (*Game, error) {
	game, err := NewGame(secretWord)
	if err != nil {
		return nil, err
	}

	if len(revealMask) != len(secretWord) {
		return nil, fmt.Errorf("%w: reveal mask has %d characters, secret word has %d",
			apperror.ErrInvariantViolation, len(revealMask), len(secretWord))
	}

	if remainingGuesses < 0 || remainingGuesses > MaxGuesses {
		return nil, fmt.Errorf("%w: remaining guesses %d out of range 0..%d",
			apperror.ErrInvariantViolation, remainingGuesses, MaxGuesses)
	}

	game.guessed = make([]byte, 0, len(guessedLetters))
	for _, letter := range guessedLetters {
		if len(letter) != 1 || !IsLetter(rune(letter[0])) {
			return nil, fmt.Errorf("%w: guessed letter %q", apperror.ErrInvariantViolation, letter)
		}

		if err = game.RecordGuess(rune(letter[0])); err != nil {
			return nil, fmt.Errorf("%w: %w", apperror.ErrInvariantViolation, err)
		}
	}

	game.revealMask = []byte(revealMask)
	game.remainingGuesses = remainingGuesses

	if err = game.Validate(); err != nil {
		return nil, err
	}

	return game, nil
}

func (that *Game) SecretWord() string {
	return that.secretWord
}

func (that *Game) RevealMask() string {
	return string(that.revealMask)
}

func (that *Game) RemainingGuesses() int {
	return that.remainingGuesses
}

// WrongGuesses - counts incorrect guesses so far, 0..MaxGuesses.
func (that *Game) WrongGuesses() int {
	return MaxGuesses - that.remainingGuesses
}

// GuessedLetters - returns the submitted letters in submission order.
func (that *Game) GuessedLetters() []string {
	letters := make([]string, 0, len(that.guessed))
	for _, letter := range that.guessed {
		letters = append(letters, string(letter))
	}

	return letters
}

func (that *Game) HasGuessed(letter rune) bool {
	return IsLetter(letter) && bytes.IndexByte(that.guessed, byte(letter)) >= 0
}

func (that *Game) Contains(letter rune) bool {
	return IsLetter(letter) && strings.IndexByte(that.secretWord, byte(letter)) >= 0
}

func (that *Game) Status() Status {
	switch {
	case string(that.revealMask) == that.secretWord:
		return StatusWon
	case that.remainingGuesses == 0:
		return StatusLost
	default:
		return StatusInProgress
	}
}

func (that *Game) IsFinished() bool {
	return that.Status() != StatusInProgress
}

// RecordGuess - adds letter to the guessed set.
func (that *Game) RecordGuess(letter rune) error {
	if !IsLetter(letter) {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidInput, letter)
	}

	if that.HasGuessed(letter) {
		return fmt.Errorf("%w: %q", apperror.ErrAlreadyGuessed, letter)
	}

	that.guessed = append(that.guessed, byte(letter))

	return nil
}

// ApplyCorrectGuess - reveals every occurrence of letter and returns how many positions
// were newly uncovered. Revealing an already revealed letter changes nothing.
func (that *Game) ApplyCorrectGuess(letter rune) (int, error) {
	if that.IsFinished() {
		return 0, apperror.ErrGameFinished
	}

	if !IsLetter(letter) {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidInput, letter)
	}

	revealed := 0
	for i := 0; i < len(that.secretWord); i++ {
		if that.secretWord[i] == byte(letter) && that.revealMask[i] == Placeholder {
			that.revealMask[i] = byte(letter)
			revealed++
		}
	}

	return revealed, nil
}

// ApplyIncorrectGuess - spends one guess from the budget.
func (that *Game) ApplyIncorrectGuess() error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	// unreachable while in progress
	if that.remainingGuesses == 0 {
		return fmt.Errorf("%w: no guesses left", apperror.ErrInvariantViolation)
	}

	that.remainingGuesses--

	return nil
}

// Validate - checks the relations between mask, guess budget and guessed letters.
func (that *Game) Validate() error {
	if len(that.revealMask) != len(that.secretWord) {
		return fmt.Errorf("%w: reveal mask length mismatch", apperror.ErrInvariantViolation)
	}

	for i := 0; i < len(that.secretWord); i++ {
		mask := that.revealMask[i]
		if mask == Placeholder {
			if that.HasGuessed(rune(that.secretWord[i])) {
				return fmt.Errorf("%w: guessed letter %q hidden at position %d",
					apperror.ErrInvariantViolation, that.secretWord[i], i)
			}
			continue
		}

		if mask != that.secretWord[i] {
			return fmt.Errorf("%w: mask letter %q does not match secret word at position %d",
				apperror.ErrInvariantViolation, mask, i)
		}

		if !that.HasGuessed(rune(mask)) {
			return fmt.Errorf("%w: letter %q revealed without being guessed",
				apperror.ErrInvariantViolation, mask)
		}
	}

	wrong := 0
	for _, letter := range that.guessed {
		if !that.Contains(rune(letter)) {
			wrong++
		}
	}

	if that.remainingGuesses == 0 && string(that.revealMask) == that.secretWord {
		return fmt.Errorf("%w: word revealed after the guess budget ran out", apperror.ErrInvariantViolation)
	}

	// each distinct wrong letter costs one guess; the budget may show more spent
	if wrong > that.WrongGuesses() {
		return fmt.Errorf("%w: %d incorrect letters guessed but only %d guesses spent",
			apperror.ErrInvariantViolation, wrong, that.WrongGuesses())
	}

	return nil
}

// IsLetter - reports whether r is a lowercase ASCII letter.
func IsLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// IsWord - reports whether s is a non-empty string of lowercase ASCII letters.
func IsWord(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !IsLetter(r) {
			return false
		}
	}

	return true
}
