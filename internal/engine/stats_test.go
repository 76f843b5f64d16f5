package engine

import (
	"math"
	"testing"
)

func TestDifficultyMultiplierEndpoints(t *testing.T) {
	if got := DifficultyMultiplier(StatBase); got != 1.0 {
		t.Fatalf("DifficultyMultiplier(10)=%v, want 1.0", got)
	}
	if got := DifficultyMultiplier(StatCap); got != 2.0 {
		t.Fatalf("DifficultyMultiplier(99)=%v, want 2.0", got)
	}
}

func TestIncreaseDiminishesAndCaps(t *testing.T) {
	s := NewStats()
	if g := s.Increase(StatSTR, 0.5); math.Abs(g-0.5) > 1e-9 {
		t.Fatalf("first gain=%v, want 0.5", g)
	}

	s.Strength = 54.5
	g := s.Increase(StatSTR, 0.5)
	if g >= 0.5 || g <= 0.25 {
		t.Fatalf("mid-range gain=%v, want between 0.25 and 0.5", g)
	}

	s.Strength = 98.9
	s.Increase(StatSTR, 5)
	if s.Strength != StatCap {
		t.Fatalf("strength=%v, want capped at %v", s.Strength, StatCap)
	}
	if g := s.Increase(StatSTR, 1); g != 0 {
		t.Fatalf("gain at cap=%v, want 0", g)
	}
}

func TestIncreaseNeverDecreases(t *testing.T) {
	s := NewStats()
	before := s.Wisdom
	if g := s.Increase(StatWIS, -1); g != 0 || s.Wisdom != before {
		t.Fatalf("negative gain changed wisdom: gain=%v value=%v", g, s.Wisdom)
	}
}

func TestParseStat(t *testing.T) {
	for _, in := range []string{"str", "STR", " Str "} {
		st, ok := ParseStat(in)
		if !ok || st != StatSTR {
			t.Fatalf("ParseStat(%q)=%q,%v, want STR", in, st, ok)
		}
	}
	if _, ok := ParseStat("luck"); ok {
		t.Fatalf("ParseStat(luck) succeeded")
	}
	if ParseStatPtr("") != nil {
		t.Fatalf("ParseStatPtr(\"\") should be nil")
	}
}

func TestApplyCompletionTrainsStats(t *testing.T) {
	c := NewCharacter("", ClassMonk)
	if c.Name != "Adventurer" {
		t.Fatalf("default name=%q", c.Name)
	}
	primary, secondary := StatINT, StatWIS
	gains := c.ApplyCompletion(10, 500, &primary, &secondary)

	if c.TasksCompleted != 1 || c.TotalXP != 500 || c.Level != 2 {
		t.Fatalf("character after completion: %+v", c)
	}
	if math.Abs(gains.PrimaryGain-0.5) > 1e-9 || math.Abs(gains.SecondaryGain-0.25) > 1e-9 {
		t.Fatalf("gains=%+v, want 0.5 / 0.25", gains)
	}
	if c.Stats.Intelligence != 10.5 || c.Stats.Wisdom != 10.25 {
		t.Fatalf("stats=%+v", c.Stats)
	}
}

func TestSpendGold(t *testing.T) {
	c := NewCharacter("Ana", ClassRogue)
	c.AddGold(100)
	if c.SpendGold(150) {
		t.Fatalf("SpendGold(150) succeeded with 100 gold")
	}
	if c.Gold != 100 {
		t.Fatalf("gold=%d after failed spend, want 100", c.Gold)
	}
	if !c.SpendGold(100) || c.Gold != 0 {
		t.Fatalf("SpendGold(100) failed or left %d", c.Gold)
	}
}

func TestNormalizeRecomputesLevelAndClamps(t *testing.T) {
	c := NewCharacter("Ana", ClassRogue)
	c.TotalXP = 1004
	c.Level = 40
	c.Stats.Charisma = 250
	c.Stats.Dexterity = 2
	c.Normalize()
	if c.Level != 3 {
		t.Fatalf("level=%d, want 3", c.Level)
	}
	if c.Stats.Charisma != StatCap || c.Stats.Dexterity != StatBase {
		t.Fatalf("stats not clamped: %+v", c.Stats)
	}
}
