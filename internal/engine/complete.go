package engine

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskquest/internal/storage"
)

// CompletionInput describes one finished task.
type CompletionInput struct {
	TaskUUID    string
	Description string
	Project     string
	Challenge   int
	Urgency     float64
	Due         *time.Time
	CompletedAt time.Time
	Primary     *Stat
	Secondary   *Stat
}

type CompleteResult struct {
	EventID     string
	Timing      Timing
	XP          int
	Gold        int
	Loot        *LootDrop
	Stats       StatGains
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	Unlocked    []Achievement
	Character   *Character
	Warnings    []string
}

// BonusGold is the gold carried by a gold loot drop, zero otherwise.
func (r *CompleteResult) BonusGold() int {
	if r.Loot != nil && r.Loot.Kind == LootGold {
		return r.Loot.Gold
	}
	return 0
}

func (in *CompletionInput) normalize(now time.Time) {
	in.Challenge = ClampChallenge(in.Challenge)
	if in.Urgency < 0 || math.IsNaN(in.Urgency) {
		in.Urgency = 0
	}
	if in.CompletedAt.IsZero() {
		in.CompletedAt = now
	}
	in.Project = strings.TrimSpace(in.Project)
	if in.Primary != nil && !in.Primary.IsValid() {
		in.Primary = nil
	}
	if in.Secondary != nil && !in.Secondary.IsValid() {
		in.Secondary = nil
	}
}

// Complete awards a finished task: XP, gold, a possible loot drop and stat
// growth, then records the event in the achievement ledger and history.
// Nothing is written unless every step succeeds.
func (s *Service) Complete(ctx context.Context, in CompletionInput) (*CompleteResult, error) {
	in.normalize(s.now())

	c, charBackup, err := s.loadCharacter()
	if err != nil {
		return nil, err
	}
	ledger, ledgerBackup, err := s.loadLedger()
	if err != nil {
		return nil, err
	}

	timing := DetermineTiming(in.Due, in.CompletedAt)
	xp := CalculateXP(in.Challenge, in.Urgency, timing)
	gold := CalculateGold(s.rng, in.Challenge)
	loot := RollLoot(s.rng, in.Challenge)

	res := &CompleteResult{
		EventID:     uuid.NewString(),
		Timing:      timing,
		XP:          xp,
		Gold:        gold,
		Loot:        loot,
		LevelBefore: c.Level,
		Warnings:    restoredWarnings(charBackup, ledgerBackup),
	}

	var unlocked []Achievement
	if loot != nil {
		unlocked = append(unlocked, ledger.RecordLoot(c, *loot)...)
	}

	res.Stats = c.ApplyCompletion(in.Challenge, xp, in.Primary, in.Secondary)
	c.AddGold(gold)
	c.AddGold(res.BonusGold())

	unlocked = append(unlocked, ledger.RecordCompletion(c, CompletionEvent{
		Challenge:   in.Challenge,
		Timing:      timing,
		Project:     in.Project,
		CompletedAt: in.CompletedAt,
	})...)
	SortByCatalog(unlocked)

	res.Unlocked = unlocked
	res.LevelAfter = c.Level
	res.LevelUp = res.LevelAfter > res.LevelBefore
	res.Character = c

	entry := storage.Completion{
		ID:          res.EventID,
		TaskUUID:    in.TaskUUID,
		Description: strings.TrimSpace(in.Description),
		Project:     in.Project,
		CompletedAt: in.CompletedAt,
		Challenge:   in.Challenge,
		Urgency:     in.Urgency,
		Timing:      string(timing),
		XPAwarded:   xp,
		GoldAwarded: gold,
		BonusGold:   res.BonusGold(),
	}
	if loot != nil && loot.Kind == LootReward {
		entry.LootTier = string(loot.Tier)
		entry.LootName = loot.Name
	}

	err = s.commit(ctx, c, ledger, func(tx *sql.Tx) error {
		return storage.NewCompletionRepo(tx).Insert(ctx, entry)
	})
	if err != nil {
		return nil, fmt.Errorf("record completion: %w", err)
	}

	s.log.Debug("quest completed",
		"event", res.EventID,
		"challenge", in.Challenge,
		"timing", timing,
		"xp", xp,
		"gold", gold+res.BonusGold(),
		"level", c.Level,
		"unlocked", len(unlocked),
	)
	return res, nil
}

// History returns the most recent journaled completions, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]storage.Completion, error) {
	return s.completions.ListRecent(ctx, limit)
}

// HistoryTotal counts every journaled completion.
func (s *Service) HistoryTotal(ctx context.Context) (int, error) {
	return s.completions.Count(ctx)
}
