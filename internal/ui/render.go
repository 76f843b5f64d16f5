package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"taskquest/internal/engine"
	"taskquest/internal/storage"
)

// AchievementTierStyle colors an achievement tier.
func AchievementTierStyle(t engine.AchievementTier) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	switch t {
	case engine.TierCommon:
		return s.Foreground(cWhite)
	case engine.TierUncommon:
		return s.Foreground(cGood)
	case engine.TierRare:
		return s.Foreground(cRare)
	case engine.TierEpic:
		return s.Foreground(cEpic)
	case engine.TierLegendary:
		return s.Foreground(cGold)
	default:
		return s
	}
}

// RewardTierStyle colors a loot or shop tier.
func RewardTierStyle(t engine.RewardTier) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	switch t {
	case engine.RewardNormal:
		return s.Foreground(cWhite)
	case engine.RewardHeroic:
		return s.Foreground(cRare)
	case engine.RewardEpic:
		return s.Foreground(cEpic)
	case engine.RewardLegendary:
		return s.Foreground(cGold)
	default:
		return s
	}
}

func TimingText(t engine.Timing) string {
	switch t {
	case engine.TimingEarly:
		return Good.Render(t.String())
	case engine.TimingOnTime:
		return H2.Render(t.String())
	case engine.TimingGracePeriod:
		return Warn.Render(t.String())
	case engine.TimingLate:
		return Bad.Render(t.String())
	default:
		return Muted.Render(t.String())
	}
}

// AchievementLine is one unlocked achievement, icon first.
func AchievementLine(a engine.Achievement) string {
	return fmt.Sprintf("%s %s %s %s",
		a.Icon,
		AchievementTierStyle(a.Tier).Render(a.Title),
		Muted.Render("["+a.Tier.String()+"]"),
		Dim.Render(a.Description),
	)
}

// Unlocked renders an "achievement unlocked" block, empty when there is none.
func Unlocked(list []engine.Achievement) string {
	if len(list) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(Heading(IconTrophy, "Achievement unlocked!"))
	b.WriteString("\n")
	for _, a := range list {
		b.WriteString("  " + AchievementLine(a) + "\n")
	}
	return b.String()
}

func statGain(st *engine.Stat, gain float64) string {
	if st == nil || gain <= 0 {
		return ""
	}
	return fmt.Sprintf("+%.2f %s", gain, *st)
}

// Completion renders the result of a completed quest.
func Completion(res *engine.CompleteResult) string {
	var b strings.Builder
	b.WriteString(Heading(IconSword, "Quest complete!") + "\n")
	b.WriteString("  " + LabelValue("XP", Good.Render(fmt.Sprintf("+%d", res.XP))) + " " + Muted.Render("("+res.Timing.String()+")") + "\n")
	b.WriteString("  " + LabelValue("Gold", Gold.Render(fmt.Sprintf("+%d", res.Gold))) + "\n")

	var gains []string
	if g := statGain(res.Stats.Primary, res.Stats.PrimaryGain); g != "" {
		gains = append(gains, g)
	}
	if g := statGain(res.Stats.Secondary, res.Stats.SecondaryGain); g != "" {
		gains = append(gains, g)
	}
	if len(gains) > 0 {
		b.WriteString("  " + LabelValue("Stats", strings.Join(gains, ", ")) + "\n")
	}

	if res.Loot != nil {
		b.WriteString("  " + Loot(*res.Loot) + "\n")
	}
	if res.LevelUp {
		b.WriteString(fmt.Sprintf("  %s %s %d -> %d\n", IconBolt, BadgeLevelUp, res.LevelBefore, res.LevelAfter))
	}
	for _, w := range res.Warnings {
		b.WriteString("  " + Warn.Render(IconWarn+" "+w) + "\n")
	}
	b.WriteString(Unlocked(res.Unlocked))
	return b.String()
}

func Loot(d engine.LootDrop) string {
	if d.Kind == engine.LootGold {
		return fmt.Sprintf("%s %s %s", IconCoin, H2.Render("Loot:"), Gold.Render(fmt.Sprintf("+%d bonus gold", d.Gold)))
	}
	return fmt.Sprintf("%s %s %s %s", IconGift, H2.Render("Loot:"), RewardTierStyle(d.Tier).Render(d.Name), Muted.Render("("+d.Tier.Name()+")"))
}

// Character renders the status summary of a character.
func Character(c *engine.Character) string {
	var b strings.Builder
	title := c.Name
	if c.ActiveTitle != nil {
		title += " " + Muted.Render("the "+*c.ActiveTitle)
	}
	b.WriteString(Heading(IconSword, title) + "\n")
	b.WriteString(LabelValue("Class", fmt.Sprintf("%s %s", c.Class, Muted.Render("("+c.Class.Description()+")"))) + "\n")
	b.WriteString(LabelValue("Level", c.Level) + "\n")
	b.WriteString(LabelValue("XP", fmt.Sprintf("%d (%d to next level)", c.TotalXP, c.XPToNextLevel())) + "\n")
	b.WriteString("  " + ProgressBar(engine.LevelProgress(c.TotalXP), 24) + "\n")
	b.WriteString(LabelValue("Gold", Gold.Render(fmt.Sprintf("%d", c.Gold))) + "\n")
	b.WriteString(LabelValue("Quests", c.TasksCompleted) + "\n")
	return b.String()
}

// Stats renders the six stats with their growth toward the cap.
func Stats(c *engine.Character) string {
	var b strings.Builder
	b.WriteString(H2.Render(IconStats+" Stats") + "\n")
	for _, st := range engine.AllStats {
		v := c.Stats.Get(st)
		frac := (v - engine.StatBase) / (engine.StatCap - engine.StatBase)
		b.WriteString(fmt.Sprintf("  %s %5.2f  %s\n", Key.Render(string(st)), v, ProgressBar(frac, 20)))
	}
	return b.String()
}

// Reward renders one shop line.
func Reward(r engine.RewardStatus) string {
	tier := engine.RewardTier(r.Tier)
	line := fmt.Sprintf("%3d  %s  %s  %s",
		r.ID,
		RewardTierStyle(tier).Render(fmt.Sprintf("%-18s", r.Name)),
		Gold.Render(fmt.Sprintf("%5d g", r.Cost)),
		Muted.Render(r.Description),
	)
	if !r.Available() {
		line += " " + Warn.Render(IconClock+" "+engine.FormatCooldown(r.Remaining))
	} else if r.CooldownHours > 0 {
		line += " " + Dim.Render(fmt.Sprintf("(cooldown %s)", engine.FormatCooldown(time.Duration(r.CooldownHours)*time.Hour)))
	}
	return line
}

// HistoryLine renders one journaled completion.
func HistoryLine(c storage.Completion) string {
	desc := c.Description
	if desc == "" {
		desc = Muted.Render("(no description)")
	}
	line := fmt.Sprintf("%s  %s  %s %s",
		Muted.Render(c.CompletedAt.Local().Format("2006-01-02 15:04")),
		desc,
		Good.Render(fmt.Sprintf("+%d XP", c.XPAwarded)),
		Gold.Render(fmt.Sprintf("+%d g", c.GoldAwarded+c.BonusGold)),
	)
	if c.Project != "" {
		line += " " + Dim.Render("["+c.Project+"]")
	}
	if c.LootName != "" {
		line += " " + RewardTierStyle(engine.RewardTier(c.LootTier)).Render(IconGift+" "+c.LootName)
	}
	return line
}
