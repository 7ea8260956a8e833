package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidWord           = errors.New("invalid secret word")
	ErrInvalidInput          = errors.New("guess must be a single letter a-z")
	ErrAlreadyGuessed        = errors.New("letter has already been guessed")
	ErrInvariantViolation    = errors.New("game invariant violated")
	ErrNoActiveGame          = errors.New("no active game")
	ErrDictionaryUnavailable = errors.New("dictionary unavailable")
	ErrCorruptSave           = errors.New("corrupt save")
	ErrSaveNotFound          = errors.New("save not found")
	ErrInvalidSlot           = errors.New("invalid save slot name")
)

// ErrGameFinished is returned for moves made after the game reached a terminal state.
var ErrGameFinished = fmt.Errorf("%w: game is already finished", ErrInvariantViolation)
