package engine

import "math"

const (
	StatBase = 10.0
	StatCap  = 99.0

	// StatGainDivisor turns a challenge rating into a base stat gain (challenge/20).
	StatGainDivisor = 20.0
)

// Stats holds the six ability scores as continuous values in [StatBase, StatCap].
type Stats struct {
	Strength     float64 `json:"strength"`
	Dexterity    float64 `json:"dexterity"`
	Constitution float64 `json:"constitution"`
	Intelligence float64 `json:"intelligence"`
	Wisdom       float64 `json:"wisdom"`
	Charisma     float64 `json:"charisma"`
}

func NewStats() Stats {
	return Stats{
		Strength:     StatBase,
		Dexterity:    StatBase,
		Constitution: StatBase,
		Intelligence: StatBase,
		Wisdom:       StatBase,
		Charisma:     StatBase,
	}
}

func (s *Stats) field(stat Stat) *float64 {
	switch stat {
	case StatSTR:
		return &s.Strength
	case StatDEX:
		return &s.Dexterity
	case StatCON:
		return &s.Constitution
	case StatINT:
		return &s.Intelligence
	case StatWIS:
		return &s.Wisdom
	case StatCHA:
		return &s.Charisma
	default:
		return nil
	}
}

// Get returns the continuous value of a stat.
func (s Stats) Get(stat Stat) float64 {
	if f := s.field(stat); f != nil {
		return *f
	}
	return 0
}

// Display returns the stat truncated to an integer, as shown to the user.
func (s Stats) Display(stat Stat) int {
	return int(s.Get(stat))
}

// Highest returns the largest displayed stat value.
func (s Stats) Highest() int {
	best := 0
	for _, st := range AllStats {
		if v := s.Display(st); v > best {
			best = v
		}
	}
	return best
}

// DifficultyMultiplier is 1 + progress², where progress is the stat's position
// between StatBase and StatCap. It is 1.0 at the base and 2.0 at the cap.
func DifficultyMultiplier(current float64) float64 {
	progress := (current - StatBase) / (StatCap - StatBase)
	return 1.0 + progress*progress
}

// Increase applies baseGain to a stat through the quadratic diminishing-returns
// curve and returns the gain actually applied.
func (s *Stats) Increase(stat Stat, baseGain float64) float64 {
	f := s.field(stat)
	if f == nil || baseGain <= 0 {
		return 0
	}
	cur := *f
	next := math.Min(cur+baseGain/DifficultyMultiplier(cur), StatCap)
	if next < cur {
		return 0
	}
	*f = next
	return next - cur
}
