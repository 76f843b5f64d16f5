package engine

import (
	"encoding/json"
	"testing"
	"time"
)

var day0 = time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

func event(challenge int, at time.Time) CompletionEvent {
	return CompletionEvent{Challenge: challenge, Timing: TimingNoDueDate, CompletedAt: at}
}

func hasAchievement(list []Achievement, id string) bool {
	for _, a := range list {
		if a.ID == id {
			return true
		}
	}
	return false
}

func TestCatalogIntegrity(t *testing.T) {
	cat := Catalog()
	if len(cat) != 30 {
		t.Fatalf("catalog size=%d, want 30", len(cat))
	}
	seen := map[string]bool{}
	for _, a := range cat {
		if seen[a.ID] {
			t.Fatalf("duplicate id %q", a.ID)
		}
		seen[a.ID] = true
		if a.Title == "" || a.Description == "" || a.Icon == "" {
			t.Fatalf("incomplete entry %+v", a)
		}
	}
	total := 0
	for _, tier := range AllAchievementTiers {
		total += len(AchievementsByTier(tier))
	}
	if total != len(cat) {
		t.Fatalf("tiers cover %d entries, want %d", total, len(cat))
	}
}

func TestFirstCompletionUnlocksOnce(t *testing.T) {
	l := NewLedger()
	c := NewCharacter("Ana", ClassWarrior)

	got := l.RecordCompletion(c, event(3, day0))
	if !hasAchievement(got, "first_steps") {
		t.Fatalf("first_steps not unlocked: %+v", got)
	}
	got = l.RecordCompletion(c, event(3, day0))
	if hasAchievement(got, "first_steps") {
		t.Fatalf("first_steps unlocked twice")
	}
	if again := l.check(c); len(again) != 0 {
		t.Fatalf("re-check unlocked %+v, want nothing", again)
	}
}

func TestMasterOfBalanceNeedsEveryRating(t *testing.T) {
	l := NewLedger()
	c := NewCharacter("Ana", ClassWarrior)
	for d := 1; d <= 9; d++ {
		if got := l.RecordCompletion(c, event(d, day0)); hasAchievement(got, "master_of_balance") {
			t.Fatalf("master_of_balance unlocked after rating %d", d)
		}
	}
	if p := l.ProgressFor("master_of_balance", c); p < 0.89 || p > 0.91 {
		t.Fatalf("progress=%v, want 0.9", p)
	}
	got := l.RecordCompletion(c, event(10, day0))
	if !hasAchievement(got, "master_of_balance") {
		t.Fatalf("master_of_balance not unlocked after all ten ratings")
	}
	if l.Progress.Difficulty10Quests != 1 {
		t.Fatalf("difficulty 10 count=%d", l.Progress.Difficulty10Quests)
	}
}

func TestComebackAfterBreak(t *testing.T) {
	l := NewLedger()
	c := NewCharacter("Ana", ClassWarrior)
	l.RecordCompletion(c, event(5, day0))

	back := day0.AddDate(0, 0, 31)
	for i := 1; i <= 4; i++ {
		if got := l.RecordCompletion(c, event(5, back)); hasAchievement(got, "phoenix_rising") {
			t.Fatalf("phoenix_rising unlocked on post-break event %d", i)
		}
	}
	if !l.Progress.Had30DayBreak || l.Progress.ComebackQuestsAfterBreak != 4 {
		t.Fatalf("progress after 4 comeback quests: %+v", l.Progress)
	}
	if got := l.RecordCompletion(c, event(5, back)); !hasAchievement(got, "phoenix_rising") {
		t.Fatalf("phoenix_rising not unlocked on fifth post-break event")
	}
}

func TestShortGapIsNotABreak(t *testing.T) {
	l := NewLedger()
	c := NewCharacter("Ana", ClassWarrior)
	l.RecordCompletion(c, event(5, day0))
	for i := 0; i < 10; i++ {
		l.RecordCompletion(c, event(5, day0.AddDate(0, 0, 29)))
	}
	if l.Progress.Had30DayBreak || l.ProgressFor("phoenix_rising", c) != 0 {
		t.Fatalf("29 day gap counted as a break: %+v", l.Progress)
	}
}

func TestBackdatedCompletionKeepsLastActivity(t *testing.T) {
	l := NewLedger()
	c := NewCharacter("Ana", ClassWarrior)
	l.RecordCompletion(c, event(5, day0))
	l.RecordCompletion(c, event(5, day0.AddDate(0, 0, -40)))
	if got := *l.Progress.LastActivityDate; got != "2026-01-05" {
		t.Fatalf("last activity=%s after backdated event, want 2026-01-05", got)
	}
	if !l.Progress.ActiveDays.Has("2025-11-26") {
		t.Fatalf("backdated day not recorded: %v", l.Progress.ActiveDays)
	}

	l.RecordCompletion(c, event(5, day0))
	if l.Progress.Had30DayBreak || l.Progress.ComebackQuestsAfterBreak != 0 {
		t.Fatalf("backdated event produced a break: %+v", l.Progress)
	}
}

// The break flag is sticky: later quests keep counting toward the comeback
// even without a new gap, and a second break only resets the counter.
func TestBreakFlagNeverCleared(t *testing.T) {
	l := NewLedger()
	c := NewCharacter("Ana", ClassWarrior)
	l.RecordCompletion(c, event(5, day0))
	l.RecordCompletion(c, event(5, day0.AddDate(0, 0, 40)))
	l.RecordCompletion(c, event(5, day0.AddDate(0, 0, 41)))
	if !l.Progress.Had30DayBreak || l.Progress.ComebackQuestsAfterBreak != 2 {
		t.Fatalf("after break: %+v", l.Progress)
	}

	l.RecordCompletion(c, event(5, day0.AddDate(0, 0, 90)))
	if !l.Progress.Had30DayBreak || l.Progress.ComebackQuestsAfterBreak != 1 {
		t.Fatalf("after second break: %+v", l.Progress)
	}
}

func TestActivityDateIsUTC(t *testing.T) {
	l := NewLedger()
	c := NewCharacter("Ana", ClassWarrior)
	loc := time.FixedZone("UTC-5", -5*60*60)
	l.RecordCompletion(c, event(2, time.Date(2026, 2, 1, 22, 0, 0, 0, loc)))
	if !l.Progress.ActiveDays.Has("2026-02-02") {
		t.Fatalf("active days=%v, want 2026-02-02", l.Progress.ActiveDays.Sorted())
	}
}

func TestTimingCounters(t *testing.T) {
	l := NewLedger()
	c := NewCharacter("Ana", ClassWarrior)
	for _, tm := range []Timing{TimingEarly, TimingOnTime, TimingGracePeriod, TimingLate, TimingNoDueDate} {
		l.RecordCompletion(c, CompletionEvent{Challenge: 5, Timing: tm, CompletedAt: day0})
	}
	p := l.Progress
	if p.EarlyTasks != 1 || p.OnTimeTasks != 1 || p.GracePeriodTasks != 1 || p.TasksWithDueDate != 4 {
		t.Fatalf("timing counters: %+v", p)
	}
}

func TestProjectsAndLoot(t *testing.T) {
	l := NewLedger()
	c := NewCharacter("Ana", ClassWarrior)
	for i := 0; i < 10; i++ {
		l.RecordCompletion(c, CompletionEvent{Challenge: 1, Project: string(rune('a' + i)), CompletedAt: day0})
	}
	if !l.IsUnlocked("renaissance_soul") {
		t.Fatalf("renaissance_soul locked with %d projects", len(l.Progress.ProjectsCompleted))
	}

	got := l.RecordLoot(c, LootDrop{Kind: LootReward, Tier: RewardHeroic, Name: "Movie Night"})
	if hasAchievement(got, "epic_collector") {
		t.Fatalf("heroic drop unlocked epic_collector")
	}
	got = l.RecordLoot(c, LootDrop{Kind: LootReward, Tier: RewardEpic, Name: "Day Off"})
	if !hasAchievement(got, "epic_collector") {
		t.Fatalf("epic drop did not unlock epic_collector")
	}
	if l.Progress.LootDropsReceived != 2 {
		t.Fatalf("loot count=%d", l.Progress.LootDropsReceived)
	}
}

func TestProgressFractions(t *testing.T) {
	l := NewLedger()
	c := NewCharacter("Ana", ClassWarrior)
	for i := 0; i < 25; i++ {
		l.RecordCompletion(c, event(5, day0))
	}
	if p := l.ProgressFor("seasoned_adventurer", c); p != 0.25 {
		t.Fatalf("seasoned_adventurer progress=%v, want 0.25", p)
	}
	if p := l.ProgressFor("first_steps", c); p != 1 {
		t.Fatalf("unlocked progress=%v, want 1", p)
	}
	if p := l.ProgressFor("no_such_thing", c); p != 0 {
		t.Fatalf("unknown id progress=%v, want 0", p)
	}
	c.Gold = 9000
	if p := l.ProgressFor("gold_hoarder", c); p != 1 {
		t.Fatalf("capped progress=%v, want 1", p)
	}
}

func TestStatAchievementsTrackCurrentValue(t *testing.T) {
	l := NewLedger()
	c := NewCharacter("Ana", ClassWarrior)
	c.Stats.Strength = StatCap
	l.check(c)
	if l.Progress.HighestStatValue != 99 {
		t.Fatalf("highest stat=%d, want 99", l.Progress.HighestStatValue)
	}
	if l.IsUnlocked("strength_incarnate") {
		t.Fatalf("strength_incarnate unlocked below 100")
	}
	if p := l.ProgressFor("strength_incarnate", c); p != 0.99 {
		t.Fatalf("progress=%v, want 0.99", p)
	}
}

func TestLedgerDocumentShape(t *testing.T) {
	l := NewLedger()
	c := NewCharacter("Ana", ClassWarrior)
	l.RecordCompletion(c, CompletionEvent{Challenge: 5, Project: "home", CompletedAt: day0})

	data, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Ledger
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.IsUnlocked("first_steps") || !back.Progress.ProjectsCompleted.Has("home") {
		t.Fatalf("decoded ledger lost data: %s", data)
	}
	if back.Progress.QuestsByDifficulty[5] != 1 {
		t.Fatalf("quests_by_difficulty=%v", back.Progress.QuestsByDifficulty)
	}
}

func TestRarestUnlocked(t *testing.T) {
	l := NewLedger()
	if _, ok := l.RarestUnlocked(); ok {
		t.Fatalf("empty ledger reported an achievement")
	}
	l.Unlocked["first_steps"] = struct{}{}
	l.Unlocked["completionist"] = struct{}{}
	l.Unlocked["master_of_balance"] = struct{}{}
	a, ok := l.RarestUnlocked()
	if !ok || a.ID != "completionist" {
		t.Fatalf("rarest=%+v, want completionist", a)
	}
}
