package engine

import (
	"math"
	"strings"
)

// Character is the persisted hero document. Level is derived from TotalXP and
// is recomputed on every XP change and after every load.
type Character struct {
	Name           string  `json:"name"`
	Class          Class   `json:"class"`
	Level          int     `json:"level"`
	TotalXP        int     `json:"total_xp"`
	Stats          Stats   `json:"stats"`
	Gold           int     `json:"gold"`
	TasksCompleted int     `json:"tasks_completed"`
	ActiveTitle    *string `json:"active_title"`
}

// NewCharacter returns a level 1 character with default stats.
func NewCharacter(name string, class Class) *Character {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Adventurer"
	}
	return &Character{
		Name:  name,
		Class: class,
		Level: 1,
		Stats: NewStats(),
	}
}

// StatGains reports what a completion did to the trained stats.
type StatGains struct {
	Primary       *Stat
	PrimaryGain   float64
	Secondary     *Stat
	SecondaryGain float64
}

// AddXP adds experience and recomputes the level.
func (c *Character) AddXP(xp int) {
	if xp > 0 {
		c.TotalXP = saturatingAdd(c.TotalXP, xp)
	}
	c.Level = LevelFromXP(c.TotalXP)
}

// AddGold adds currency with saturation; there is no upper bound otherwise.
func (c *Character) AddGold(amount int) {
	if amount > 0 {
		c.Gold = saturatingAdd(c.Gold, amount)
	}
}

// SpendGold removes currency. It is the only mutation that reduces anything and
// reports false, leaving the balance untouched, when funds are short.
func (c *Character) SpendGold(cost int) bool {
	if cost < 0 || cost > c.Gold {
		return false
	}
	c.Gold -= cost
	return true
}

// ApplyCompletion counts the task, awards XP and trains up to two stats. The
// primary stat receives challenge/20, the secondary half of that, each through
// the diminishing-returns curve at its own current value.
func (c *Character) ApplyCompletion(challenge, xp int, primary, secondary *Stat) StatGains {
	c.TasksCompleted = saturatingAdd(c.TasksCompleted, 1)
	c.AddXP(xp)

	base := float64(ClampChallenge(challenge)) / StatGainDivisor
	gains := StatGains{Primary: primary, Secondary: secondary}
	if primary != nil {
		gains.PrimaryGain = c.Stats.Increase(*primary, base)
	}
	if secondary != nil {
		gains.SecondaryGain = c.Stats.Increase(*secondary, base/2)
	}
	return gains
}

// Normalize repairs derived fields after a load.
func (c *Character) Normalize() {
	c.Level = LevelFromXP(c.TotalXP)
	for _, st := range AllStats {
		f := c.Stats.field(st)
		if *f < StatBase {
			*f = StatBase
		}
		if *f > StatCap {
			*f = StatCap
		}
	}
}

// XPToNextLevel is the XP missing for the next level.
func (c *Character) XPToNextLevel() int {
	return XPToNextLevel(c.TotalXP)
}

func saturatingAdd(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
