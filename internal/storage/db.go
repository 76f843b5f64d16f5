package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const (
	CharacterFile = "character.json"
	LedgerFile    = "achievements.json"
	DBFile        = "taskquest.db"
)

// Paths locates the files of one data directory.
type Paths struct {
	Dir       string
	Character string
	Ledger    string
	DB        string
}

// PathsFor derives the document and database paths under dir.
func PathsFor(dir string) Paths {
	return Paths{
		Dir:       dir,
		Character: filepath.Join(dir, CharacterFile),
		Ledger:    filepath.Join(dir, LedgerFile),
		DB:        filepath.Join(dir, DBFile),
	}
}

// EnsureDir creates the data directory if it does not exist.
func (p Paths) EnsureDir() error {
	if err := os.MkdirAll(p.Dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	return nil
}

// OpenSQLite opens (and creates if missing) the SQLite database at the provided path.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One invocation, one writer.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

// Open opens the history/shop database, applies the schema and seeds the
// default reward catalog on first use.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite pragma: %w", err)
	}
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := SeedDefaultRewards(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
