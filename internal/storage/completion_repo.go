package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type CompletionRepo struct {
	db DBTX
}

func NewCompletionRepo(db DBTX) *CompletionRepo {
	return &CompletionRepo{db: db}
}

func (r *CompletionRepo) Insert(ctx context.Context, c Completion) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO completions (
			id, task_uuid, description, project, completed_at,
			challenge, urgency, timing, xp_awarded, gold_awarded, bonus_gold,
			loot_tier, loot_name
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ID, nullString(c.TaskUUID), c.Description, nullString(c.Project), formatTime(c.CompletedAt),
		c.Challenge, c.Urgency, c.Timing, c.XPAwarded, c.GoldAwarded, c.BonusGold,
		nullString(c.LootTier), nullString(c.LootName))
	if err != nil {
		return fmt.Errorf("completion insert: %w", err)
	}
	return nil
}

// ListRecent returns the newest completions first.
func (r *CompletionRepo) ListRecent(ctx context.Context, limit int) ([]Completion, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, task_uuid, description, project, completed_at,
			challenge, urgency, timing, xp_awarded, gold_awarded, bonus_gold,
			loot_tier, loot_name
		FROM completions
		ORDER BY completed_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("completion list: %w", err)
	}
	defer rows.Close()

	var out []Completion
	for rows.Next() {
		var (
			c                                   Completion
			taskUUID, project, lootTier, lootNm sql.NullString
			completedAt                         string
		)
		if err := rows.Scan(&c.ID, &taskUUID, &c.Description, &project, &completedAt,
			&c.Challenge, &c.Urgency, &c.Timing, &c.XPAwarded, &c.GoldAwarded, &c.BonusGold,
			&lootTier, &lootNm); err != nil {
			return nil, fmt.Errorf("completion scan: %w", err)
		}
		at, err := parseTime(completedAt)
		if err != nil {
			return nil, fmt.Errorf("completion %s: %w", c.ID, err)
		}
		c.CompletedAt = at
		c.TaskUUID = taskUUID.String
		c.Project = project.String
		c.LootTier = lootTier.String
		c.LootName = lootNm.String
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("completion rows: %w", err)
	}
	return out, nil
}

func (r *CompletionRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM completions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("completion count: %w", err)
	}
	return n, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// timeLayout keeps a fixed-width fraction so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	return t, nil
}
