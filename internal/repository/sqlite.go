package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/hangman/internal/apperror"
)

type sqliteSaves struct {
	conn *sql.DB
}

// NewSQLiteSaveRepository - expects the saves table created by storage.SQLiteStorage.Init.
func NewSQLiteSaveRepository(conn *sql.DB) SaveRepository {
	return &sqliteSaves{
		conn: conn,
	}
}

func (that *sqliteSaves) Save(ctx context.Context, slot string, blob []byte) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}

	query := `INSERT INTO saves (slot, blob, saved_at) VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET blob = excluded.blob, saved_at = excluded.saved_at`

	_, err := that.conn.ExecContext(ctx, query, slot, blob, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("can't save slot: %w", err)
	}

	return nil
}

func (that *sqliteSaves) Load(ctx context.Context, slot string) ([]byte, error) {
	if err := ValidateSlot(slot); err != nil {
		return nil, err
	}

	query := `SELECT blob FROM saves WHERE slot = ?`

	var blob []byte

	err := that.conn.QueryRowContext(ctx, query, slot).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSaveNotFound, slot)
	}
	if err != nil {
		return nil, fmt.Errorf("can't load slot: %w", err)
	}

	return blob, nil
}

func (that *sqliteSaves) List(ctx context.Context) ([]Slot, error) {
	query := `SELECT slot, saved_at FROM saves ORDER BY saved_at DESC, slot`

	rows, err := that.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("can't list slots: %w", err)
	}
	defer rows.Close()

	var slots []Slot
	for rows.Next() {
		var (
			name    string
			savedAt int64
		)

		if err = rows.Scan(&name, &savedAt); err != nil {
			return nil, fmt.Errorf("can't scan slot: %w", err)
		}

		slots = append(slots, Slot{Name: name, SavedAt: time.UnixMilli(savedAt)})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't list slots: %w", err)
	}

	return slots, nil
}

func (that *sqliteSaves) Delete(ctx context.Context, slot string) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}

	query := `DELETE FROM saves WHERE slot = ?`

	result, err := that.conn.ExecContext(ctx, query, slot)
	if err != nil {
		return fmt.Errorf("can't delete slot: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't delete slot: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("%w: %s", apperror.ErrSaveNotFound, slot)
	}

	return nil
}
