package engine

import (
	"fmt"
	"strings"
)

// Stat identifies one of the six ability scores.
type Stat string

const (
	StatSTR Stat = "STR"
	StatDEX Stat = "DEX"
	StatCON Stat = "CON"
	StatINT Stat = "INT"
	StatWIS Stat = "WIS"
	StatCHA Stat = "CHA"
)

// AllStats lists the stats in display order.
var AllStats = []Stat{StatSTR, StatDEX, StatCON, StatINT, StatWIS, StatCHA}

func (s Stat) IsValid() bool {
	switch s {
	case StatSTR, StatDEX, StatCON, StatINT, StatWIS, StatCHA:
		return true
	default:
		return false
	}
}

// Class is a cosmetic character tag with no mechanical effect.
type Class string

const (
	ClassRogue   Class = "Rogue"
	ClassRanger  Class = "Ranger"
	ClassWarrior Class = "Warrior"
	ClassPaladin Class = "Paladin"
	ClassMonk    Class = "Monk"
)

var AllClasses = []Class{ClassRogue, ClassRanger, ClassWarrior, ClassPaladin, ClassMonk}

func (c Class) Description() string {
	switch c {
	case ClassRogue:
		return "Cunning and agile"
	case ClassRanger:
		return "Skilled and versatile"
	case ClassWarrior:
		return "Strong and durable"
	case ClassPaladin:
		return "Righteous and balanced"
	case ClassMonk:
		return "Disciplined and wise"
	default:
		return ""
	}
}

// ParseClass matches a class name case-insensitively.
func ParseClass(input string) (Class, error) {
	s := strings.TrimSpace(input)
	for _, c := range AllClasses {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid class: %q", input)
}

// Timing classifies a completion relative to its due date.
type Timing string

const (
	TimingEarly       Timing = "early"
	TimingOnTime      Timing = "on_time"
	TimingGracePeriod Timing = "grace_period"
	TimingLate        Timing = "late"
	TimingNoDueDate   Timing = "no_due_date"
)

func (t Timing) String() string {
	switch t {
	case TimingEarly:
		return "Early"
	case TimingOnTime:
		return "On time"
	case TimingGracePeriod:
		return "Grace period"
	case TimingLate:
		return "Late"
	case TimingNoDueDate:
		return "No due date"
	default:
		return string(t)
	}
}

// Challenge bounds for a task's difficulty rating.
const (
	MinChallenge     = 1
	MaxChallenge     = 10
	DefaultChallenge = 5
)

// ClampChallenge forces a rating into [MinChallenge, MaxChallenge].
func ClampChallenge(c int) int {
	if c < MinChallenge {
		return MinChallenge
	}
	if c > MaxChallenge {
		return MaxChallenge
	}
	return c
}
