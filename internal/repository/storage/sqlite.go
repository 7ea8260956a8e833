package storage

import (
	"context"
	"database/sql"
	"fmt"

	// import the SQLite driver to register it with the database/sql package.
	_ "github.com/mattn/go-sqlite3"
)

// migrations are applied in order; the database tracks how many ran in PRAGMA user_version.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS saves (
		slot     TEXT PRIMARY KEY,
		blob     BLOB NOT NULL,
		saved_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS saves_saved_at ON saves (saved_at DESC, slot)`,
}

type SQLiteStorage struct {
	Connection *sql.DB
}

func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &SQLiteStorage{Connection: conn}, nil
}

// Init - brings the save schema up to the latest version. Running it twice is a no-op.
func (that *SQLiteStorage) Init(ctx context.Context) error {
	version, err := that.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	if version > len(migrations) {
		return fmt.Errorf("database schema version %d is newer than supported %d", version, len(migrations))
	}

	for next := version; next < len(migrations); next++ {
		if err = that.migrate(ctx, next); err != nil {
			return err
		}
	}

	return nil
}

func (that *SQLiteStorage) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	if err := that.Connection.QueryRowContext(ctx, `PRAGMA user_version`).Scan(&version); err != nil {
		return 0, fmt.Errorf("can't read schema version: %w", err)
	}

	return version, nil
}

func (that *SQLiteStorage) migrate(ctx context.Context, index int) error {
	tx, err := that.Connection.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("can't begin migration %d: %w", index+1, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, migrations[index]); err != nil {
		return fmt.Errorf("can't apply migration %d: %w", index+1, err)
	}

	// PRAGMA does not take bind parameters
	if _, err = tx.ExecContext(ctx, fmt.Sprintf(`PRAGMA user_version = %d`, index+1)); err != nil {
		return fmt.Errorf("can't record schema version %d: %w", index+1, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit migration %d: %w", index+1, err)
	}

	return nil
}

func (that *SQLiteStorage) Close() error {
	return that.Connection.Close()
}
