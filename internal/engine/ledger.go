package engine

import (
	"encoding/json"
	"sort"
	"strings"
	"time"
)

const (
	// BreakDays is the activity gap that flags a comeback.
	BreakDays = 30

	activityDateLayout = "2006-01-02"
)

// StringSet is a set of strings persisted as a sorted JSON array.
type StringSet map[string]struct{}

func NewStringSet(items ...string) StringSet {
	s := make(StringSet, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

func (s StringSet) Has(item string) bool {
	_, ok := s[item]
	return ok
}

func (s StringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (s StringSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *StringSet) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*s = NewStringSet(items...)
	return nil
}

// Progress accumulates everything achievement conditions need. Every field is
// monotonic except ComebackQuestsAfterBreak, which resets on each new break.
type Progress struct {
	QuestsCompleted          int         `json:"quests_completed"`
	QuestsByDifficulty       map[int]int `json:"quests_by_difficulty"`
	Difficulty10Quests       int         `json:"difficulty_10_quests"`
	ActiveDays               StringSet   `json:"active_days"`
	ProjectsCompleted        StringSet   `json:"projects_completed"`
	EpicLootReceived         bool        `json:"epic_loot_received"`
	LootDropsReceived        int         `json:"loot_drops_received"`
	RewardsPurchased         int         `json:"rewards_purchased"`
	EarlyTasks               int         `json:"early_tasks"`
	GracePeriodTasks         int         `json:"grace_period_tasks"`
	OnTimeTasks              int         `json:"on_time_tasks"`
	TasksWithDueDate         int         `json:"tasks_with_due_date"`
	LastActivityDate         *string     `json:"last_activity_date"`
	ComebackQuestsAfterBreak int         `json:"comeback_quests_after_break"`
	// Had30DayBreak only ever goes false -> true. A second break resets the
	// comeback counter but the flag itself is never cleared.
	Had30DayBreak    bool `json:"had_30_day_break"`
	HighestStatValue int  `json:"highest_stat_value"`
}

// Ledger is the persisted achievement document: the append-only unlock set
// plus the progress accumulator.
type Ledger struct {
	Unlocked StringSet `json:"unlocked"`
	Progress Progress  `json:"progress"`
}

func NewLedger() *Ledger {
	l := &Ledger{}
	l.Normalize()
	return l
}

// Normalize allocates nil collections, e.g. after loading an older document.
func (l *Ledger) Normalize() {
	if l.Unlocked == nil {
		l.Unlocked = StringSet{}
	}
	if l.Progress.QuestsByDifficulty == nil {
		l.Progress.QuestsByDifficulty = map[int]int{}
	}
	if l.Progress.ActiveDays == nil {
		l.Progress.ActiveDays = StringSet{}
	}
	if l.Progress.ProjectsCompleted == nil {
		l.Progress.ProjectsCompleted = StringSet{}
	}
}

// CompletionEvent is what the ledger needs to know about a finished quest.
type CompletionEvent struct {
	Challenge   int
	Timing      Timing
	Project     string
	CompletedAt time.Time
}

// RecordCompletion updates the accumulator for a finished quest and returns
// the achievements it newly unlocked, in catalog order.
func (l *Ledger) RecordCompletion(c *Character, ev CompletionEvent) []Achievement {
	l.Normalize()
	p := &l.Progress
	challenge := ClampChallenge(ev.Challenge)

	p.QuestsCompleted++
	p.QuestsByDifficulty[challenge]++
	if challenge == MaxChallenge {
		p.Difficulty10Quests++
	}

	today := ev.CompletedAt.UTC().Format(activityDateLayout)
	p.ActiveDays[today] = struct{}{}
	l.trackComeback(today)
	// Backdated completions never move the last activity date backward.
	if p.LastActivityDate == nil || today > *p.LastActivityDate {
		p.LastActivityDate = &today
	}

	if proj := strings.TrimSpace(ev.Project); proj != "" {
		p.ProjectsCompleted[proj] = struct{}{}
	}

	switch ev.Timing {
	case TimingEarly:
		p.EarlyTasks++
	case TimingOnTime:
		p.OnTimeTasks++
	case TimingGracePeriod:
		p.GracePeriodTasks++
	}
	if ev.Timing != TimingNoDueDate && ev.Timing != "" {
		p.TasksWithDueDate++
	}

	return l.check(c)
}

func (l *Ledger) trackComeback(today string) {
	p := &l.Progress
	if p.LastActivityDate == nil {
		return
	}
	last, err := time.Parse(activityDateLayout, *p.LastActivityDate)
	if err != nil {
		return
	}
	cur, err := time.Parse(activityDateLayout, today)
	if err != nil {
		return
	}
	if gapDays := int(cur.Sub(last).Hours() / 24); gapDays >= BreakDays {
		p.Had30DayBreak = true
		p.ComebackQuestsAfterBreak = 0
	}
	if p.Had30DayBreak {
		p.ComebackQuestsAfterBreak++
	}
}

// RecordLoot counts a loot drop and returns newly unlocked achievements.
func (l *Ledger) RecordLoot(c *Character, drop LootDrop) []Achievement {
	l.Normalize()
	l.Progress.LootDropsReceived++
	if drop.Kind == LootReward && drop.Tier == RewardEpic {
		l.Progress.EpicLootReceived = true
	}
	return l.check(c)
}

// RecordPurchase counts a shop purchase and returns newly unlocked achievements.
func (l *Ledger) RecordPurchase(c *Character) []Achievement {
	l.Normalize()
	l.Progress.RewardsPurchased++
	return l.check(c)
}

// check tracks the highest stat, then evaluates every locked achievement in
// catalog order. Unlocked ids are terminal and never evaluated again.
func (l *Ledger) check(c *Character) []Achievement {
	if h := c.Stats.Highest(); h > l.Progress.HighestStatValue {
		l.Progress.HighestStatValue = h
	}

	var unlocked []Achievement
	for _, d := range catalog {
		if l.Unlocked.Has(d.ID) {
			continue
		}
		if d.satisfied(&l.Progress, c) {
			l.Unlocked[d.ID] = struct{}{}
			unlocked = append(unlocked, d.Achievement)
		}
	}
	return unlocked
}

// IsUnlocked reports whether an achievement id has been earned.
func (l *Ledger) IsUnlocked(id string) bool {
	return l.Unlocked.Has(id)
}

// ProgressFor returns the completion fraction in [0, 1] for an achievement.
// Unlocked achievements report 1 and unknown ids report 0.
func (l *Ledger) ProgressFor(id string, c *Character) float64 {
	if l.Unlocked.Has(id) {
		return 1
	}
	i, ok := catalogIndex[id]
	if !ok {
		return 0
	}
	return catalog[i].fraction(&l.Progress, c)
}

// UnlockedAchievements returns the earned achievements in catalog order.
func (l *Ledger) UnlockedAchievements() []Achievement {
	var out []Achievement
	for _, d := range catalog {
		if l.Unlocked.Has(d.ID) {
			out = append(out, d.Achievement)
		}
	}
	return out
}

// RarestUnlocked returns the earned achievement of the rarest tier, the
// earliest in catalog order when a tier holds several.
func (l *Ledger) RarestUnlocked() (Achievement, bool) {
	for _, tier := range AllAchievementTiers {
		for _, d := range catalog {
			if d.Tier == tier && l.Unlocked.Has(d.ID) {
				return d.Achievement, true
			}
		}
	}
	return Achievement{}, false
}

// UnlockedCountByTier counts earned achievements of one tier.
func (l *Ledger) UnlockedCountByTier(tier AchievementTier) int {
	n := 0
	for _, d := range catalog {
		if d.Tier == tier && l.Unlocked.Has(d.ID) {
			n++
		}
	}
	return n
}

// SortByCatalog orders achievements by their catalog position.
func SortByCatalog(list []Achievement) {
	sort.SliceStable(list, func(i, j int) bool {
		return catalogIndex[list[i].ID] < catalogIndex[list[j].ID]
	})
}
