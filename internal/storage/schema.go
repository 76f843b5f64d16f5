package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS rewards (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			cost INTEGER NOT NULL,
			tier TEXT NOT NULL DEFAULT 'normal',
			cooldown_hours INTEGER NOT NULL DEFAULT 0,
			last_purchased TEXT
		);`,
		// Journal of every processed completion event.
		`CREATE TABLE IF NOT EXISTS completions (
			id TEXT PRIMARY KEY,
			task_uuid TEXT,
			description TEXT NOT NULL DEFAULT '',
			project TEXT,
			completed_at TEXT NOT NULL,
			challenge INTEGER NOT NULL,
			timing TEXT NOT NULL,
			xp_awarded INTEGER NOT NULL,
			gold_awarded INTEGER NOT NULL,
			bonus_gold INTEGER NOT NULL DEFAULT 0,
			loot_tier TEXT,
			loot_name TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS idx_completions_completed_at ON completions(completed_at);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_rewards_name ON rewards(lower(name));`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// Columns added after the first release; existing tables keep working.
	alterStmts := []string{
		`ALTER TABLE completions ADD COLUMN urgency REAL NOT NULL DEFAULT 0;`,
	}
	for _, stmt := range alterStmts {
		_, err := db.ExecContext(ctx, stmt)
		if err != nil && !strings.Contains(err.Error(), "duplicate column") {
			return fmt.Errorf("migrate alter: %w", err)
		}
	}

	return nil
}
