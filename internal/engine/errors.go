package engine

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrNoCharacter     = errors.New("no character found; run 'tq init' first")
	ErrCharacterExists = errors.New("character already exists (use --force to start over)")
	ErrRewardNotFound  = errors.New("reward not found")
	ErrRewardExists    = errors.New("a reward with that name already exists")
	ErrDefaultReward   = errors.New("default rewards cannot be removed")
	ErrTitleLocked     = errors.New("title is not unlocked")
)

// InsufficientGoldError rejects a purchase the character cannot afford.
type InsufficientGoldError struct {
	Cost    int
	Balance int
}

func (e InsufficientGoldError) Error() string {
	return fmt.Sprintf("not enough gold: costs %d, you have %d", e.Cost, e.Balance)
}

// CooldownError rejects a purchase whose reward was bought too recently.
type CooldownError struct {
	Reward    string
	Remaining time.Duration
}

func (e CooldownError) Error() string {
	return fmt.Sprintf("%s is on cooldown for %s", e.Reward, FormatCooldown(e.Remaining))
}

// FormatCooldown renders a remaining cooldown in whole days once it reaches
// 24 hours, in hours otherwise. Partial hours round up.
func FormatCooldown(d time.Duration) string {
	if d <= 0 {
		return "0 hours"
	}
	hours := int(math.Ceil(d.Hours()))
	if hours >= 24 {
		days := hours / 24
		if days == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", days)
	}
	if hours == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%d hours", hours)
}
