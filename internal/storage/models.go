package storage

import "time"

// Reward is a shop catalog entry.
type Reward struct {
	ID            int64
	Name          string
	Description   string
	Cost          int
	Tier          string
	CooldownHours int
	LastPurchased *time.Time
}

// CooldownRemaining returns how long until the reward can be bought again.
func (r Reward) CooldownRemaining(now time.Time) time.Duration {
	if r.LastPurchased == nil || r.CooldownHours <= 0 {
		return 0
	}
	cd := time.Duration(r.CooldownHours) * time.Hour
	elapsed := now.Sub(*r.LastPurchased)
	if elapsed >= cd {
		return 0
	}
	return cd - elapsed
}

// Completion is one journaled completion event.
type Completion struct {
	ID          string
	TaskUUID    string
	Description string
	Project     string
	CompletedAt time.Time
	Challenge   int
	Urgency     float64
	Timing      string
	XPAwarded   int
	GoldAwarded int
	BonusGold   int
	LootTier    string
	LootName    string
}
