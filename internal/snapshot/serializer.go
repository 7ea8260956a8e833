// Package snapshot externalizes a game to a portable document and restores it.
package snapshot

import (
	"fmt"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
)

// Document is the persisted form of a game. Field names are part of the save format.
// Pointers tell a missing field apart from a zero value.
type Document struct {
	SecretWord       *string   `json:"secret_word"       yaml:"secret_word"`
	RevealMask       *string   `json:"reveal_mask"       yaml:"reveal_mask"`
	RemainingGuesses *int      `json:"remaining_guesses" yaml:"remaining_guesses"`
	GuessedLetters   *[]string `json:"guessed_letters"   yaml:"guessed_letters"`
}

type Serializer struct {
	codec Codec
}

func NewSerializer(codec Codec) *Serializer {
	if codec == nil {
		panic("snapshot: nil codec")
	}

	return &Serializer{codec: codec}
}

func (that *Serializer) Format() string {
	return that.codec.Name()
}

// Serialize - encodes every field of the game.
func (that *Serializer) Serialize(game *entity.Game) ([]byte, error) {
	if game == nil {
		return nil, apperror.ErrNoActiveGame
	}

	secretWord := game.SecretWord()
	revealMask := game.RevealMask()
	remainingGuesses := game.RemainingGuesses()
	guessedLetters := game.GuessedLetters()

	return that.codec.Marshal(Document{
		SecretWord:       &secretWord,
		RevealMask:       &revealMask,
		RemainingGuesses: &remainingGuesses,
		GuessedLetters:   &guessedLetters,
	})
}

// Restore - decodes blob into a new game. Any decoding or invariant failure is ErrCorruptSave.
func (that *Serializer) Restore(blob []byte) (*entity.Game, error) {
	var doc Document
	if err := that.codec.Unmarshal(blob, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrCorruptSave, err)
	}

	if err := doc.checkComplete(); err != nil {
		return nil, err
	}

	game, err := entity.RestoreGame(*doc.SecretWord, *doc.RevealMask, *doc.RemainingGuesses, *doc.GuessedLetters)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrCorruptSave, err)
	}

	return game, nil
}

func (that Document) checkComplete() error {
	missing := ""

	switch {
	case that.SecretWord == nil:
		missing = "secret_word"
	case that.RevealMask == nil:
		missing = "reveal_mask"
	case that.RemainingGuesses == nil:
		missing = "remaining_guesses"
	case that.GuessedLetters == nil:
		missing = "guessed_letters"
	default:
		return nil
	}

	return fmt.Errorf("%w: missing field %s", apperror.ErrCorruptSave, missing)
}
