package engine

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
)

const (
	XPPerChallenge   = 10
	GoldPerChallenge = 5

	// GoldVarianceRate is the ±20% spread around the base gold award.
	GoldVarianceRate = 0.2

	LootBaseChance         = 0.30
	LootChancePerChallenge = 0.02

	LootBonusGoldMin = 10
	LootBonusGoldMax = 50
)

// TimingMultiplier returns the XP multiplier for a timing band.
func TimingMultiplier(t Timing) float64 {
	switch t {
	case TimingEarly:
		return 1.3
	case TimingGracePeriod:
		return 0.8
	case TimingLate:
		return 0.5
	case TimingOnTime, TimingNoDueDate:
		return 1.0
	default:
		return 1.0
	}
}

// UrgencyMultiplier maps a non-negative urgency score to [1.0, 1.5].
func UrgencyMultiplier(urgency float64) float64 {
	if urgency < 0 || math.IsNaN(urgency) {
		urgency = 0
	}
	return 1.0 + math.Min(urgency*0.5, 0.5)
}

// CalculateXP computes the experience award for a completion.
func CalculateXP(challenge int, urgency float64, timing Timing) int {
	base := float64(ClampChallenge(challenge) * XPPerChallenge)
	return int(math.Floor(base * UrgencyMultiplier(urgency) * TimingMultiplier(timing)))
}

// DetermineTiming classifies a completion against its due date. A nil due
// date is TimingNoDueDate.
func DetermineTiming(due *time.Time, completedAt time.Time) Timing {
	if due == nil {
		return TimingNoDueDate
	}
	diff := completedAt.Sub(*due)
	switch {
	case diff < -24*time.Hour:
		return TimingEarly
	case diff < 0:
		return TimingOnTime
	case diff < 24*time.Hour:
		return TimingGracePeriod
	default:
		return TimingLate
	}
}

// GoldRange returns the inclusive bounds of the gold award for a challenge.
func GoldRange(challenge int) (lo, hi int) {
	base := ClampChallenge(challenge) * GoldPerChallenge
	variance := int(math.Floor(float64(base) * GoldVarianceRate))
	lo = base - variance
	if lo < 0 {
		lo = 0
	}
	return lo, base + variance
}

// CalculateGold draws the gold award uniformly from GoldRange.
func CalculateGold(rng *rand.Rand, challenge int) int {
	lo, hi := GoldRange(challenge)
	return lo + rng.Intn(hi-lo+1)
}

// RewardTier is the rarity of a loot drop or shop reward.
type RewardTier string

const (
	RewardNormal    RewardTier = "normal"
	RewardHeroic    RewardTier = "heroic"
	RewardEpic      RewardTier = "epic"
	RewardLegendary RewardTier = "legendary"
)

var AllRewardTiers = []RewardTier{RewardNormal, RewardHeroic, RewardEpic, RewardLegendary}

// RewardTierChoices lists the tier names as "normal|heroic|epic|legendary".
func RewardTierChoices() string {
	names := make([]string, len(AllRewardTiers))
	for i, t := range AllRewardTiers {
		names[i] = string(t)
	}
	return strings.Join(names, "|")
}

func (t RewardTier) IsValid() bool {
	switch t {
	case RewardNormal, RewardHeroic, RewardEpic, RewardLegendary:
		return true
	default:
		return false
	}
}

func (t RewardTier) Name() string {
	switch t {
	case RewardNormal:
		return "Normal"
	case RewardHeroic:
		return "Heroic"
	case RewardEpic:
		return "Epic"
	case RewardLegendary:
		return "Legendary"
	default:
		return string(t)
	}
}

func ParseRewardTier(input string) (RewardTier, error) {
	t := RewardTier(strings.ToLower(strings.TrimSpace(input)))
	if !t.IsValid() {
		return "", fmt.Errorf("invalid tier %q (use %s)", input, RewardTierChoices())
	}
	return t, nil
}

// rewardNames are the cosmetic names a tiered drop can carry.
var rewardNames = map[RewardTier][]string{
	RewardNormal:    {"Coffee Break", "Gaming Session", "Snack Time"},
	RewardHeroic:    {"Movie Night", "Treat Meal", "New Book"},
	RewardEpic:      {"Day Off", "Hobby Supplies", "Weekend Adventure"},
	RewardLegendary: {"Major Purchase", "Epic Reward"},
}

// LootKind tags the LootDrop variant.
type LootKind string

const (
	LootGold   LootKind = "gold"
	LootReward LootKind = "reward"
)

// LootDrop is either a gold bonus (Gold set) or a named tiered reward (Tier and Name set).
type LootDrop struct {
	Kind LootKind
	Gold int
	Tier RewardTier
	Name string
}

// LootChance returns the drop probability for a challenge rating.
func LootChance(challenge int) float64 {
	return math.Min(LootBaseChance+float64(ClampChallenge(challenge))*LootChancePerChallenge, 1.0)
}

// RollLoot rolls for a drop. It returns nil when nothing drops.
// Legendary rewards are shop-only and never produced here.
func RollLoot(rng *rand.Rand, challenge int) *LootDrop {
	if rng.Float64() >= LootChance(challenge) {
		return nil
	}
	roll := rng.Float64()
	switch {
	case roll < 0.70:
		amount := LootBonusGoldMin + rng.Intn(LootBonusGoldMax-LootBonusGoldMin+1)
		return &LootDrop{Kind: LootGold, Gold: amount}
	case roll < 0.90:
		return tieredDrop(rng, RewardNormal)
	case roll < 0.98:
		return tieredDrop(rng, RewardHeroic)
	default:
		return tieredDrop(rng, RewardEpic)
	}
}

func tieredDrop(rng *rand.Rand, tier RewardTier) *LootDrop {
	names := rewardNames[tier]
	return &LootDrop{Kind: LootReward, Tier: tier, Name: names[rng.Intn(len(names))]}
}
