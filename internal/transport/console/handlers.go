package console

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/hangman/internal/apperror"
)

const helpText = `Commands:
  /save [slot]    save the current game (slot name defaults to the current time)
  /load <slot>    load a saved game
  /slots          list saved games
  /delete <slot>  delete a saved game
  /new            abandon the current game and start a new one
  /quit           leave without saving
`

// handleSave - storage errors end only the save attempt.
func (that *Console) handleSave(ctx context.Context, args []string) error {
	slot := ""
	if len(args) > 0 {
		slot = args[0]
	}

	saved, err := that.session.Save(ctx, slot)
	if err != nil {
		that.printf("Could not save: %s\n", describe(err))
		return nil
	}

	that.printf("Game saved to slot '%s'.\n", saved)

	return nil
}

func (that *Console) handleLoad(ctx context.Context, args []string) error {
	if len(args) == 0 {
		that.printf("Usage: /load <slot>\n")
		return nil
	}

	if _, err := that.session.Load(ctx, args[0]); err != nil {
		that.printf("Could not load '%s': %s\n", args[0], describe(err))
		return nil
	}

	that.printf("Loaded slot '%s'.\n", args[0])

	return nil
}

func (that *Console) handleSlots(ctx context.Context, _ []string) error {
	slots, err := that.session.Slots(ctx)
	if err != nil {
		that.printf("Could not list saves: %s\n", describe(err))
		return nil
	}

	if len(slots) == 0 {
		that.printf("No saved games.\n")
		return nil
	}

	for _, slot := range slots {
		that.printf("  %-24s %s\n", slot.Name, slot.SavedAt.Local().Format(time.DateTime))
	}

	return nil
}

func (that *Console) handleDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		that.printf("Usage: /delete <slot>\n")
		return nil
	}

	if err := that.session.DeleteSlot(ctx, args[0]); err != nil {
		that.printf("Could not delete '%s': %s\n", args[0], describe(err))
		return nil
	}

	that.printf("Deleted slot '%s'.\n", args[0])

	return nil
}

func (that *Console) handleNew(_ context.Context, _ []string) error {
	if _, err := that.session.NewGame(); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.printf("New game started.\n")

	return nil
}

func (that *Console) handleHelp(_ context.Context, _ []string) error {
	that.printf("%s", helpText)
	return nil
}

func (that *Console) handleQuit(_ context.Context, _ []string) error {
	that.printf("Bye!\n")
	return errQuit
}

// describe - short player-facing reason for a failed save operation.
func describe(err error) string {
	switch {
	case errors.Is(err, apperror.ErrSaveNotFound):
		return "no such save"
	case errors.Is(err, apperror.ErrCorruptSave):
		return "the save is corrupt"
	case errors.Is(err, apperror.ErrInvalidSlot):
		return "slot names may only contain letters, digits, '-' and '_'"
	case errors.Is(err, apperror.ErrGameFinished):
		return "the game is already over"
	case errors.Is(err, apperror.ErrNoActiveGame):
		return "there is no game to save"
	default:
		return err.Error()
	}
}
