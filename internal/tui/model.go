package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskquest/internal/engine"
	"taskquest/internal/storage"
	"taskquest/internal/ui"
)

type tab int

const (
	tabAchievements tab = iota
	tabShop
	tabHistory
)

var tabNames = []string{"Achievements", "Shop", "History"}

const historyLimit = 20

type sheetModel struct {
	ctx context.Context
	src Source

	width  int
	height int

	character    *engine.Character
	achievements []engine.AchievementStatus
	rewards      []engine.RewardStatus
	history      []storage.Completion

	tab      tab
	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	character    *engine.Character
	achievements []engine.AchievementStatus
	rewards      []engine.RewardStatus
	history      []storage.Completion
	err          error
}

type purchasedMsg struct {
	res *engine.PurchaseResult
	err error
}

func newSheetModel(ctx context.Context, src Source) sheetModel {
	return sheetModel{
		ctx:     ctx,
		src:     src,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m sheetModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m sheetModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		c, ledger, err := m.src.Snapshot(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		rewards, err := m.src.ListRewards(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		history, err := m.src.History(m.ctx, historyLimit)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{
			character:    c,
			achievements: engine.AchievementStatuses(ledger, c),
			rewards:      rewards,
			history:      history,
		}
	}
}

func (m sheetModel) purchaseCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		res, err := m.src.Purchase(m.ctx, strconv.FormatInt(id, 10))
		return purchasedMsg{res: res, err: err}
	}
}

func (m sheetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.character = msg.character
		m.achievements = msg.achievements
		m.rewards = msg.rewards
		m.history = msg.history
		m.clampSelection()
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case purchasedMsg:
		if msg.err != nil {
			m.lastLog = "Purchase failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Bought %s for %d gold (%d left).", msg.res.Reward.Name, msg.res.Spent, msg.res.Balance)
		if n := len(msg.res.Unlocked); n > 0 {
			m.lastLog += fmt.Sprintf(" %s %d achievement(s) unlocked!", ui.IconTrophy, n)
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "tab", "right", "l":
			m.tab = (m.tab + 1) % tab(len(tabNames))
			m.selected = 0
			return m, nil
		case "shift+tab", "left", "h":
			m.tab = (m.tab + tab(len(tabNames)) - 1) % tab(len(tabNames))
			m.selected = 0
			return m, nil
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < m.rowCount()-1 {
				m.selected++
			}
			return m, nil
		case "b", "enter":
			if m.tab != tabShop || m.selected >= len(m.rewards) {
				return m, nil
			}
			r := m.rewards[m.selected]
			if !r.Available() {
				m.lastLog = fmt.Sprintf("%s is on cooldown for %s.", r.Name, engine.FormatCooldown(r.Remaining))
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Buying %s…", r.Name)
			return m, m.purchaseCmd(r.ID)
		}
	}
	return m, nil
}

func (m sheetModel) rowCount() int {
	switch m.tab {
	case tabShop:
		return len(m.rewards)
	case tabHistory:
		return len(m.history)
	default:
		return len(m.achievements)
	}
}

func (m *sheetModel) clampSelection() {
	if n := m.rowCount(); m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m sheetModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	leftW := 30
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 20 {
			leftW = 20
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m sheetModel) renderHeader() string {
	if m.character == nil {
		return "TaskQuest — loading…"
	}
	c := m.character
	cur := engine.XPForLevel(c.Level)
	bar := progressBar(c.TotalXP-cur, engine.XPForLevel(c.Level+1)-cur, 30)
	name := c.Name
	if c.ActiveTitle != nil {
		name += " the " + *c.ActiveTitle
	}
	return ui.Title.Render(fmt.Sprintf("TaskQuest | %s | %s | Level %d | XP %d %s", name, c.Class, c.Level, c.TotalXP, bar))
}

func (m sheetModel) renderSidebar() string {
	if m.character == nil {
		return "Character\n\nLoading…"
	}
	c := m.character
	lines := []string{ui.PanelTitle.Render("Character")}
	lines = append(lines, fmt.Sprintf("Gold   %d", c.Gold))
	lines = append(lines, fmt.Sprintf("Quests %d", c.TasksCompleted))
	lines = append(lines, "")
	lines = append(lines, ui.PanelTitle.Render("Stats"))
	for _, st := range engine.AllStats {
		v := c.Stats.Get(st)
		bar := progressBar(int((v-engine.StatBase)*100), int((engine.StatCap-engine.StatBase)*100), 10)
		lines = append(lines, fmt.Sprintf("%s %5.1f %s", st, v, bar))
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- tab/←/→: switch view")
	lines = append(lines, "- b/enter: buy (shop)")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m sheetModel) renderTabs() string {
	var parts []string
	for i, name := range tabNames {
		if tab(i) == m.tab {
			parts = append(parts, ui.SelectedRow.Render(" "+name+" "))
		} else {
			parts = append(parts, ui.Muted.Render(" "+name+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (m sheetModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	out := []string{m.renderTabs(), ""}
	switch m.tab {
	case tabShop:
		out = append(out, m.shopLines()...)
	case tabHistory:
		out = append(out, m.historyLines()...)
	default:
		out = append(out, m.achievementLines()...)
	}
	return strings.Join(out, "\n")
}

func (m sheetModel) cursor(i int) string {
	if i == m.selected {
		return "> "
	}
	return "  "
}

func (m sheetModel) achievementLines() []string {
	unlocked := 0
	for _, a := range m.achievements {
		if a.Unlocked {
			unlocked++
		}
	}
	out := []string{fmt.Sprintf("%d/%d unlocked", unlocked, len(m.achievements))}
	for i, a := range m.achievements {
		mark := "  "
		if a.Unlocked {
			mark = "✓ "
		}
		title := ui.AchievementTierStyle(a.Tier).Render(a.Title)
		if !a.Unlocked {
			title = ui.Dim.Render(a.Title)
		}
		out = append(out, fmt.Sprintf("%s%s%s %s %s", m.cursor(i), mark, a.Icon, title, progressBar(int(a.Progress*100), 100, 10)))
		if i == m.selected {
			out = append(out, "      "+ui.Muted.Render(a.Description+" ("+a.Tier.String()+")"))
		}
	}
	return out
}

func (m sheetModel) shopLines() []string {
	if len(m.rewards) == 0 {
		return []string{"(no rewards)"}
	}
	var out []string
	for i, r := range m.rewards {
		status := ""
		if !r.Available() {
			status = " " + ui.Warn.Render("cooldown "+engine.FormatCooldown(r.Remaining))
		} else if m.character != nil && m.character.Gold < r.Cost {
			status = " " + ui.Muted.Render("need more gold")
		}
		name := ui.RewardTierStyle(engine.RewardTier(r.Tier)).Render(r.Name)
		out = append(out, fmt.Sprintf("%s%3d %s %s%s", m.cursor(i), r.ID, name, ui.Gold.Render(fmt.Sprintf("%dg", r.Cost)), status))
	}
	return out
}

func (m sheetModel) historyLines() []string {
	if len(m.history) == 0 {
		return []string{"(no completed quests yet)"}
	}
	var out []string
	for i, c := range m.history {
		out = append(out, m.cursor(i)+ui.HistoryLine(c))
	}
	return out
}

func (m sheetModel) renderFooter() string {
	return "\n" + m.lastLog
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
