package hangman

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
)

type Outcome string

const (
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
	OutcomeRepeated  Outcome = "repeated"
)

// Result is the immediate effect of one guess. Whether the game ended is read from the game itself.
type Result struct {
	Letter           rune
	Outcome          Outcome
	Revealed         int
	RemainingGuesses int
	WrongGuesses     int
}

// SubmitGuess - validates input and applies it to gameInstance.
// A letter that was already guessed is a no-op reported with ErrAlreadyGuessed.
func SubmitGuess(gameInstance *entity.Game, input string) (Result, error) {
	if gameInstance == nil {
		return Result{}, apperror.ErrNoActiveGame
	}

	letter, err := NormalizeGuess(input)
	if err != nil {
		return Result{}, err
	}

	if gameInstance.IsFinished() {
		return resultFor(gameInstance, letter, ""), apperror.ErrGameFinished
	}

	if gameInstance.HasGuessed(letter) {
		return resultFor(gameInstance, letter, OutcomeRepeated), fmt.Errorf("%w: %q", apperror.ErrAlreadyGuessed, letter)
	}

	result, err := applyGuess(gameInstance, letter)
	if err != nil {
		return Result{}, fmt.Errorf("invalid guess: %w", err)
	}

	return result, nil
}

// NormalizeGuess - trims and lowercases input, which must then be exactly one letter a-z.
func NormalizeGuess(input string) (rune, error) {
	guess := strings.ToLower(strings.TrimSpace(input))

	if utf8.RuneCountInString(guess) != 1 {
		return 0, fmt.Errorf("%w: got %q", apperror.ErrInvalidInput, input)
	}

	letter, _ := utf8.DecodeRuneInString(guess)
	if !entity.IsLetter(letter) {
		return 0, fmt.Errorf("%w: got %q", apperror.ErrInvalidInput, input)
	}

	return letter, nil
}

// applyGuess - mutates the game; the letter is recorded only once the guess was applied.
func applyGuess(gameInstance *entity.Game, letter rune) (Result, error) {
	outcome := OutcomeIncorrect
	revealed := 0

	if gameInstance.Contains(letter) {
		var err error
		if revealed, err = gameInstance.ApplyCorrectGuess(letter); err != nil {
			return Result{}, err
		}
		outcome = OutcomeCorrect
	} else if err := gameInstance.ApplyIncorrectGuess(); err != nil {
		return Result{}, err
	}

	if err := gameInstance.RecordGuess(letter); err != nil {
		return Result{}, err
	}

	result := resultFor(gameInstance, letter, outcome)
	result.Revealed = revealed

	return result, nil
}

func resultFor(gameInstance *entity.Game, letter rune, outcome Outcome) Result {
	return Result{
		Letter:           letter,
		Outcome:          outcome,
		RemainingGuesses: gameInstance.RemainingGuesses(),
		WrongGuesses:     gameInstance.WrongGuesses(),
	}
}
