package ui

import (
	"strings"
	"testing"
	"time"

	"taskquest/internal/engine"
	"taskquest/internal/storage"
)

func TestCompletionRendering(t *testing.T) {
	str := engine.StatSTR
	res := &engine.CompleteResult{
		Timing:      engine.TimingEarly,
		XP:          130,
		Gold:        27,
		Loot:        &engine.LootDrop{Kind: engine.LootReward, Tier: engine.RewardEpic, Name: "Day Off"},
		Stats:       engine.StatGains{Primary: &str, PrimaryGain: 0.5},
		LevelBefore: 1,
		LevelAfter:  2,
		LevelUp:     true,
		Unlocked:    []engine.Achievement{{ID: "first_steps", Title: "First Steps", Tier: engine.TierCommon, Icon: "⚔️"}},
	}
	out := Completion(res)
	for _, want := range []string{"+130", "+27", "+0.50 STR", "Day Off", "LEVEL UP", "First Steps", "Early"} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered completion missing %q:\n%s", want, out)
		}
	}
}

func TestUnlockedEmpty(t *testing.T) {
	if got := Unlocked(nil); got != "" {
		t.Fatalf("Unlocked(nil)=%q, want empty", got)
	}
}

func TestRewardShowsCooldown(t *testing.T) {
	r := engine.RewardStatus{
		Reward:    storage.Reward{ID: 6, Name: "Day Off", Cost: 500, Tier: "epic", CooldownHours: 168},
		Remaining: 50 * time.Hour,
	}
	if out := Reward(r); !strings.Contains(out, "2 days") {
		t.Fatalf("reward line missing cooldown: %s", out)
	}
}

func TestProgressBarClamps(t *testing.T) {
	if out := ProgressBar(2, 10); !strings.Contains(out, "100%") {
		t.Fatalf("ProgressBar(2)=%q", out)
	}
	if out := ProgressBar(-1, 10); !strings.Contains(out, "  0%") {
		t.Fatalf("ProgressBar(-1)=%q", out)
	}
}
