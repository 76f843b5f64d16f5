package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

type RewardRepo struct {
	db DBTX
}

func NewRewardRepo(db DBTX) *RewardRepo {
	return &RewardRepo{db: db}
}

const rewardColumns = `id, name, description, cost, tier, cooldown_hours, last_purchased`

// Get returns nil, nil when no reward has the id.
func (r *RewardRepo) Get(ctx context.Context, id int64) (*Reward, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+rewardColumns+` FROM rewards WHERE id = ?`, id)
	return scanReward(row)
}

// GetByName matches case-insensitively and returns nil, nil when absent.
func (r *RewardRepo) GetByName(ctx context.Context, name string) (*Reward, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+rewardColumns+` FROM rewards WHERE lower(name) = lower(?)`, strings.TrimSpace(name))
	return scanReward(row)
}

func (r *RewardRepo) ListAll(ctx context.Context) ([]Reward, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+rewardColumns+` FROM rewards ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("reward list: %w", err)
	}
	defer rows.Close()

	var out []Reward
	for rows.Next() {
		rw, err := scanReward(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reward rows: %w", err)
	}
	return out, nil
}

type RewardInsert struct {
	ID            int64 // zero lets SQLite assign the id
	Name          string
	Description   string
	Cost          int
	Tier          string
	CooldownHours int
}

func (r *RewardRepo) Insert(ctx context.Context, in RewardInsert) (int64, error) {
	var id any
	if in.ID > 0 {
		id = in.ID
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO rewards (id, name, description, cost, tier, cooldown_hours)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, in.Name, in.Description, in.Cost, in.Tier, in.CooldownHours)
	if err != nil {
		return 0, fmt.Errorf("reward insert: %w", err)
	}
	newID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reward last insert id: %w", err)
	}
	return newID, nil
}

func (r *RewardRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rewards WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("reward delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reward delete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("reward %d not found", id)
	}
	return nil
}

func (r *RewardRepo) MarkPurchased(ctx context.Context, id int64, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE rewards SET last_purchased = ? WHERE id = ?`, formatTime(at), id)
	if err != nil {
		return fmt.Errorf("reward mark purchased: %w", err)
	}
	return nil
}

func (r *RewardRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rewards`).Scan(&n); err != nil {
		return 0, fmt.Errorf("reward count: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReward(row rowScanner) (*Reward, error) {
	var (
		rw   Reward
		last sql.NullString
	)
	if err := row.Scan(&rw.ID, &rw.Name, &rw.Description, &rw.Cost, &rw.Tier, &rw.CooldownHours, &last); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("reward scan: %w", err)
	}
	if last.Valid && last.String != "" {
		t, err := parseTime(last.String)
		if err != nil {
			return nil, fmt.Errorf("reward %d: %w", rw.ID, err)
		}
		rw.LastPurchased = &t
	}
	return &rw, nil
}
