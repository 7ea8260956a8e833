package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rocketscienceinc/hangman/internal/apperror"
)

const saveFileExt = ".save"

type fileSaves struct {
	dir string
}

// NewFileSaveRepository - keeps one file per slot in dir.
func NewFileSaveRepository(dir string) (SaveRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create save directory: %w", err)
	}

	return &fileSaves{dir: dir}, nil
}

func (that *fileSaves) Save(ctx context.Context, slot string, blob []byte) error {
	if err := that.check(ctx, slot); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(that.dir, slot+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp save: %w", err)
	}

	// no-op once the rename succeeded
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(blob); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write save: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close save: %w", err)
	}

	if err = os.Rename(tmp.Name(), that.path(slot)); err != nil {
		return fmt.Errorf("failed to store save: %w", err)
	}

	return nil
}

func (that *fileSaves) Load(ctx context.Context, slot string) ([]byte, error) {
	if err := that.check(ctx, slot); err != nil {
		return nil, err
	}

	blob, err := os.ReadFile(that.path(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSaveNotFound, slot)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read save: %w", err)
	}

	return blob, nil
}

func (that *fileSaves) List(ctx context.Context) ([]Slot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(that.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}

	slots := make([]Slot, 0, len(entries))
	for _, entry := range entries {
		name, ok := strings.CutSuffix(entry.Name(), saveFileExt)
		if !ok || entry.IsDir() || ValidateSlot(name) != nil {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}

		slots = append(slots, Slot{Name: name, SavedAt: info.ModTime()})
	}

	sortNewestFirst(slots)

	return slots, nil
}

func (that *fileSaves) Delete(ctx context.Context, slot string) error {
	if err := that.check(ctx, slot); err != nil {
		return err
	}

	err := os.Remove(that.path(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", apperror.ErrSaveNotFound, slot)
	}

	if err != nil {
		return fmt.Errorf("failed to delete save: %w", err)
	}

	return nil
}

func (that *fileSaves) check(ctx context.Context, slot string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return ValidateSlot(slot)
}

func (that *fileSaves) path(slot string) string {
	return filepath.Join(that.dir, slot+saveFileExt)
}

func sortNewestFirst(slots []Slot) {
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].SavedAt.Equal(slots[j].SavedAt) {
			return slots[i].Name < slots[j].Name
		}
		return slots[i].SavedAt.After(slots[j].SavedAt)
	})
}
