package engine

import "fmt"

// AchievementTier is the rarity of an achievement, ordered from common to legendary.
type AchievementTier int

const (
	TierCommon AchievementTier = iota + 1
	TierUncommon
	TierRare
	TierEpic
	TierLegendary
)

// AllAchievementTiers lists tiers from most to least rare, the order they are shown in.
var AllAchievementTiers = []AchievementTier{TierLegendary, TierEpic, TierRare, TierUncommon, TierCommon}

func (t AchievementTier) String() string {
	switch t {
	case TierCommon:
		return "Common"
	case TierUncommon:
		return "Uncommon"
	case TierRare:
		return "Rare"
	case TierEpic:
		return "Epic"
	case TierLegendary:
		return "Legendary"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// Achievement is an immutable catalog entry.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Tier        AchievementTier
	Icon        string
}

// Condition measures progress toward an achievement as (current, target).
// The achievement is earned when current >= target, and its progress fraction
// is min(current, target) / target, so both derive from the same measurement.
type Condition func(p *Progress, c *Character) (current, target int)

type achievementDef struct {
	Achievement
	cond Condition
}

var (
	catalog      = buildCatalog()
	catalogIndex = indexCatalog(catalog)
)

func buildCatalog() []achievementDef {
	return []achievementDef{
		// Milestones
		questAchievement("first_steps", "First Steps", "Complete your first quest", TierCommon, "⚔️", 1),
		levelAchievement("journey_begins", "The Journey Begins", "Reach level 5", TierCommon, "🎯", 5),
		questAchievement("seasoned_adventurer", "Seasoned Adventurer", "Complete 100 quests", TierUncommon, "🏆", 100),
		questAchievement("veteran_hero", "Veteran Hero", "Complete 500 quests", TierRare, "👑", 500),
		levelAchievement("legendary_warrior", "Legendary Warrior", "Reach level 30", TierEpic, "⚡", 30),
		levelAchievement("living_legend", "Living Legend", "Reach level 50", TierLegendary, "💫", 50),
		questAchievement("completionist", "Completionist", "Complete 1000 quests", TierEpic, "📜", 1000),

		// Variety
		def("master_of_balance", "Master of Balance", "Complete at least one task of each difficulty (1-10)", TierUncommon, "⚖️", difficultiesCovered(1)),
		def("the_undaunted", "The Undaunted", "Complete 10 difficulty-10 quests", TierRare, "💪", counter(func(p *Progress) int { return p.Difficulty10Quests }, 10)),
		def("jack_of_all_trades", "Jack of All Trades", "Complete at least 20 tasks of each difficulty", TierEpic, "🎭", minPerDifficulty(20)),

		// Long-term progress
		def("consistent_hero", "Consistent Hero", "Be active for 30 different days (non-consecutive)", TierUncommon, "📅", counter(func(p *Progress) int { return len(p.ActiveDays) }, 30)),
		def("marathon_hero", "Marathon Hero", "Be active for 100 different days", TierEpic, "🏃", counter(func(p *Progress) int { return len(p.ActiveDays) }, 100)),
		def("renaissance_soul", "Renaissance Soul", "Complete tasks in 10 different projects", TierUncommon, "🎨", counter(func(p *Progress) int { return len(p.ProjectsCompleted) }, 10)),

		// Comeback
		def("phoenix_rising", "Phoenix Rising", "Complete 5 quests after a 30+ day break", TierRare, "🔥", comeback(5)),

		// Loot and rewards
		def("epic_collector", "Epic Collector", "Receive an Epic-tier loot drop", TierRare, "💎", flag(func(p *Progress) bool { return p.EpicLootReceived })),
		def("gold_hoarder", "Gold Hoarder", "Accumulate 5000 gold", TierRare, "💰", func(_ *Progress, c *Character) (int, int) { return c.Gold, 5000 }),
		def("wise_spender", "Wise Spender", "Purchase 10 rewards from the shop", TierUncommon, "🛒", counter(func(p *Progress) int { return p.RewardsPurchased }, 10)),
		def("treasure_hunter", "Treasure Hunter", "Receive 50 loot drops", TierUncommon, "🗝️", counter(func(p *Progress) int { return p.LootDropsReceived }, 50)),

		// Timing
		def("early_riser", "Early Riser", "Complete 50 tasks early (>24hrs before due)", TierUncommon, "🌅", counter(func(p *Progress) int { return p.EarlyTasks }, 50)),
		def("pressure_handler", "Pressure Handler", "Complete 25 tasks within grace period", TierUncommon, "⏰", counter(func(p *Progress) int { return p.GracePeriodTasks }, 25)),
		def("time_master", "Time Master", "Complete 100 tasks with a due date set", TierUncommon, "⌚", counter(func(p *Progress) int { return p.TasksWithDueDate }, 100)),
		def("punctual_perfectionist", "Punctual Perfectionist", "Complete 100 tasks on time (no early/late)", TierRare, "🎯", counter(func(p *Progress) int { return p.OnTimeTasks }, 100)),

		// Power
		statAchievement("strength_incarnate", "Strength Incarnate", "Reach 100 STR", "💪", StatSTR),
		statAchievement("lightning_reflexes", "Lightning Reflexes", "Reach 100 DEX", "⚡", StatDEX),
		statAchievement("iron_constitution", "Iron Constitution", "Reach 100 CON", "🛡️", StatCON),
		statAchievement("brilliant_mind", "Brilliant Mind", "Reach 100 INT", "🧠", StatINT),
		statAchievement("sage_wisdom", "Sage Wisdom", "Reach 100 WIS", "📚", StatWIS),
		statAchievement("magnetic_personality", "Magnetic Personality", "Reach 100 CHA", "✨", StatCHA),

		// Legendary stats
		def("legendary_strength", "Legendary Strength", "Reach 500 in any stat", TierEpic, "🌟", counter(func(p *Progress) int { return p.HighestStatValue }, 500)),
		def("transcendent_power", "Transcendent Power", "Reach 1000 in any stat", TierLegendary, "👑", counter(func(p *Progress) int { return p.HighestStatValue }, 1000)),
	}
}

func indexCatalog(defs []achievementDef) map[string]int {
	idx := make(map[string]int, len(defs))
	for i, d := range defs {
		if _, dup := idx[d.ID]; dup {
			panic("duplicate achievement id: " + d.ID)
		}
		idx[d.ID] = i
	}
	return idx
}

func def(id, title, desc string, tier AchievementTier, icon string, cond Condition) achievementDef {
	return achievementDef{
		Achievement: Achievement{ID: id, Title: title, Description: desc, Tier: tier, Icon: icon},
		cond:        cond,
	}
}

func questAchievement(id, title, desc string, tier AchievementTier, icon string, count int) achievementDef {
	return def(id, title, desc, tier, icon, counter(func(p *Progress) int { return p.QuestsCompleted }, count))
}

func levelAchievement(id, title, desc string, tier AchievementTier, icon string, level int) achievementDef {
	return def(id, title, desc, tier, icon, func(_ *Progress, c *Character) (int, int) { return c.Level, level })
}

// statAchievement compares the character's current displayed stat value.
func statAchievement(id, title, desc, icon string, stat Stat) achievementDef {
	return def(id, title, desc, TierUncommon, icon, func(_ *Progress, c *Character) (int, int) {
		return c.Stats.Display(stat), 100
	})
}

func counter(get func(p *Progress) int, target int) Condition {
	return func(p *Progress, _ *Character) (int, int) { return get(p), target }
}

func flag(get func(p *Progress) bool) Condition {
	return func(p *Progress, _ *Character) (int, int) {
		if get(p) {
			return 1, 1
		}
		return 0, 1
	}
}

// difficultiesCovered counts ratings 1-10 with at least n completions; all ten are required.
func difficultiesCovered(n int) Condition {
	return func(p *Progress, _ *Character) (int, int) {
		covered := 0
		for d := MinChallenge; d <= MaxChallenge; d++ {
			if p.QuestsByDifficulty[d] >= n {
				covered++
			}
		}
		return covered, MaxChallenge - MinChallenge + 1
	}
}

// minPerDifficulty measures the weakest rating, so every rating must reach n.
func minPerDifficulty(n int) Condition {
	return func(p *Progress, _ *Character) (int, int) {
		least := -1
		for d := MinChallenge; d <= MaxChallenge; d++ {
			if v := p.QuestsByDifficulty[d]; least < 0 || v < least {
				least = v
			}
		}
		return least, n
	}
}

// comeback only counts once a 30+ day break has been flagged.
func comeback(n int) Condition {
	return func(p *Progress, _ *Character) (int, int) {
		if !p.Had30DayBreak {
			return 0, n
		}
		return p.ComebackQuestsAfterBreak, n
	}
}

func (d achievementDef) satisfied(p *Progress, c *Character) bool {
	cur, target := d.cond(p, c)
	return cur >= target
}

func (d achievementDef) fraction(p *Progress, c *Character) float64 {
	cur, target := d.cond(p, c)
	if target <= 0 {
		return 1
	}
	if cur < 0 {
		cur = 0
	}
	if cur > target {
		cur = target
	}
	return float64(cur) / float64(target)
}

// Catalog returns every achievement in catalog order.
func Catalog() []Achievement {
	out := make([]Achievement, len(catalog))
	for i, d := range catalog {
		out[i] = d.Achievement
	}
	return out
}

// AchievementByID looks up a catalog entry.
func AchievementByID(id string) (Achievement, bool) {
	i, ok := catalogIndex[id]
	if !ok {
		return Achievement{}, false
	}
	return catalog[i].Achievement, true
}

// AchievementsByTier returns the catalog entries of one tier, in catalog order.
func AchievementsByTier(tier AchievementTier) []Achievement {
	var out []Achievement
	for _, d := range catalog {
		if d.Tier == tier {
			out = append(out, d.Achievement)
		}
	}
	return out
}
