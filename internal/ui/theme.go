package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shared palette for the CLI output and the character sheet.

const (
	IconSword   = "⚔️"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconCoin    = "💰"
	IconGift    = "🎁"
	IconShop    = "🛒"
	IconClock   = "⏳"
	IconLock    = "🔒"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconScroll  = "📜"
	IconStats   = "📊"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
	cWhite   = lipgloss.Color("255")
	cRare    = lipgloss.Color("39")  // bright blue
	cEpic    = lipgloss.Color("135") // purple
)

func bold(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(c)
}

var (
	Title = bold(cAccent)
	H2    = bold(cPrimary)
	Key   = bold(cPrimary)
	Good  = bold(cGood)
	Warn  = bold(cWarn)
	Bad   = bold(cBad)
	Gold  = bold(cGold)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Dim   = Muted

	Panel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(cMuted).
		Padding(0, 1)
	PanelTitle  = bold(cPrimary)
	SelectedRow = bold(cGold).Background(cPrimary)

	BadgeLevelUp = bold(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// ProgressBar renders a fixed-width bar for a fraction in [0, 1].
func ProgressBar(fraction float64, width int) string {
	if width <= 0 {
		width = 20
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	bar := Good.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %3.0f%%", bar, fraction*100)
}
