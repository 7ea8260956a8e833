package repository

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/rocketscienceinc/hangman/internal/apperror"
)

// SaveRepository stores snapshot blobs under named slots.
type SaveRepository interface {
	Save(ctx context.Context, slot string, blob []byte) error
	Load(ctx context.Context, slot string) ([]byte, error)
	List(ctx context.Context) ([]Slot, error)
	Delete(ctx context.Context, slot string) error
}

type Slot struct {
	Name    string
	SavedAt time.Time
}

var slotPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidateSlot - slot names end up in file names and storage keys.
func ValidateSlot(name string) error {
	if !slotPattern.MatchString(name) {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidSlot, name)
	}

	return nil
}
