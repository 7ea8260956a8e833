package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
	"github.com/rocketscienceinc/hangman/internal/hangman"
	"github.com/rocketscienceinc/hangman/internal/repository"
)

const slotTimeLayout = "save-20060102-150405"

type wordPicker interface {
	Pick() string
}

type gameSerializer interface {
	Serialize(game *entity.Game) ([]byte, error)
	Restore(blob []byte) (*entity.Game, error)
}

type saveRepo interface {
	Save(ctx context.Context, slot string, blob []byte) error
	Load(ctx context.Context, slot string) ([]byte, error)
	List(ctx context.Context) ([]repository.Slot, error)
	Delete(ctx context.Context, slot string) error
}

// Session owns the single live game and moves it in and out of save slots.
type Session struct {
	logger     *slog.Logger
	picker     wordPicker
	serializer gameSerializer
	saves      saveRepo

	game *entity.Game
	now  func() time.Time
}

func NewSession(logger *slog.Logger, picker wordPicker, serializer gameSerializer, saves saveRepo) *Session {
	return &Session{
		logger:     logger.With("component", "session"),
		picker:     picker,
		serializer: serializer,
		saves:      saves,

		now: time.Now,
	}
}

func (that *Session) Current() *entity.Game {
	return that.game
}

// NewGame - replaces the live game with a fresh one for a sampled word.
func (that *Session) NewGame() (*entity.Game, error) {
	log := that.logger.With("method", "NewGame")

	game, err := entity.NewGame(that.picker.Pick())
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	that.game = game
	log.Debug("game started", "length", len(game.SecretWord()))

	return game, nil
}

// Guess - applies one player input to the live game.
func (that *Session) Guess(input string) (hangman.Result, error) {
	log := that.logger.With("method", "Guess")

	result, err := hangman.SubmitGuess(that.game, input)
	if err != nil {
		if errors.Is(err, apperror.ErrInvariantViolation) {
			log.Error("guess rejected by game state", "error", err)
		}

		return result, err
	}

	log.Debug("guess applied",
		"letter", string(result.Letter),
		"outcome", result.Outcome,
		"remaining", result.RemainingGuesses,
		"status", that.game.Status(),
	)

	return result, nil
}

// Save - writes the live game to slot; an empty slot name is derived from the current time.
func (that *Session) Save(ctx context.Context, slot string) (string, error) {
	log := that.logger.With("method", "Save")

	if that.game == nil {
		return "", apperror.ErrNoActiveGame
	}

	if that.game.IsFinished() {
		return "", apperror.ErrGameFinished
	}

	if slot == "" {
		slot = that.now().Format(slotTimeLayout)
	}

	if err := repository.ValidateSlot(slot); err != nil {
		return "", err
	}

	blob, err := that.serializer.Serialize(that.game)
	if err != nil {
		return "", fmt.Errorf("failed to serialize game: %w", err)
	}

	if err = that.saves.Save(ctx, slot, blob); err != nil {
		log.Warn("could not save game", "slot", slot, "error", err)
		return "", fmt.Errorf("failed to save game: %w", err)
	}

	log.Info("game saved", "slot", slot)

	return slot, nil
}

// Load - replaces the live game with the one stored in slot. The live game is left
// untouched unless the whole read and restore succeeded.
func (that *Session) Load(ctx context.Context, slot string) (*entity.Game, error) {
	log := that.logger.With("method", "Load")

	blob, err := that.saves.Load(ctx, slot)
	if err != nil {
		log.Warn("could not read save", "slot", slot, "error", err)
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	game, err := that.serializer.Restore(blob)
	if err != nil {
		log.Warn("could not restore save", "slot", slot, "error", err)
		return nil, fmt.Errorf("failed to restore game: %w", err)
	}

	that.game = game
	log.Info("game loaded", "slot", slot, "status", game.Status())

	return game, nil
}

func (that *Session) Slots(ctx context.Context) ([]repository.Slot, error) {
	slots, err := that.saves.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}

	return slots, nil
}

func (that *Session) DeleteSlot(ctx context.Context, slot string) error {
	if err := that.saves.Delete(ctx, slot); err != nil {
		return fmt.Errorf("failed to delete save: %w", err)
	}

	that.logger.Info("save deleted", "slot", slot)

	return nil
}
