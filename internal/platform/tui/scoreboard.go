package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-creeps/internal/core"
	"github.com/vovakirdan/tui-creeps/internal/registry"
	"github.com/vovakirdan/tui-creeps/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show the mode sidebar
	sidebarWidth       = 20  // Width of mode sidebar
	tableMinWidth      = 60  // Minimum table width before the date column grows
	maxRuns            = 100 // Max runs to load
)

// runOrder selects which runs the scoreboard lists.
type runOrder int

const (
	orderBest runOrder = iota
	orderRecent
)

func (o runOrder) String() string {
	if o == orderRecent {
		return "RECENT RUNS"
	}
	return "BEST RUNS"
}

var (
	sbTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sbDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

var sbBorderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Order    key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.Order, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Order, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("right/tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("left/S-tab", "prev mode"),
		),
		Order: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "best/recent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the run history screen.
type ScoreboardModel struct {
	modes       []registry.GameInfo
	modeCursor  int
	store       *storage.Store
	tickRate    int // Converts stored ticks to survival time
	order       runOrder
	runs        []storage.Run
	killers     map[string]int // Runs ended per enemy kind
	stats       *storage.GameStats
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool
}

// NewScoreboardModel creates a new scoreboard model. A nil store shows an
// empty board.
func NewScoreboardModel(store *storage.Store, cfg core.RuntimeConfig) ScoreboardModel {
	return newScoreboardModel(registry.List(), store, cfg)
}

func newScoreboardModel(modes []registry.GameInfo, store *storage.Store, cfg core.RuntimeConfig) ScoreboardModel {
	h := help.New()
	h.Width = cfg.ScreenW

	m := ScoreboardModel{
		modes:       modes,
		store:       store,
		tickRate:    max(cfg.TickRate, 1),
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       cfg.ScreenW,
		height:      cfg.ScreenH,
		showSidebar: cfg.ScreenW >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.reload()
	return m
}

// createTable creates a new table sized for the current window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 6},
		{Title: "Time", Width: 7},
		{Title: "Killed by", Width: 12},
		{Title: "Seed", Width: 10},
		{Title: "Date", Width: 12},
	}

	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}
	if tableWidth > tableMinWidth {
		columns[5].Width = min(tableWidth-48, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Header, stats, help and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload fetches runs, killers and stats for the selected mode.
func (m *ScoreboardModel) reload() {
	m.runs, m.killers, m.stats = nil, nil, nil
	if m.store != nil && len(m.modes) > 0 {
		id := m.modes[m.modeCursor].ID
		var runs []storage.Run
		var err error
		if m.order == orderRecent {
			runs, err = m.store.RecentRuns(id, maxRuns)
		} else {
			runs, err = m.store.TopRuns(id, maxRuns)
		}
		if err == nil {
			m.runs = runs
		}
		if killers, err := m.store.KillerCounts(id); err == nil {
			m.killers = killers
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		killedBy := r.KilledBy
		if killedBy == "" {
			killedBy = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			survivalTime(r.Ticks, m.tickRate),
			killedBy,
			fmt.Sprintf("%d", r.Seed),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// survivalTime formats a tick count as m:ss.
func survivalTime(ticks, tickRate int) string {
	secs := ticks / max(tickRate, 1)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMode):
			if len(m.modes) > 0 {
				m.modeCursor = (m.modeCursor + 1) % len(m.modes)
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			if len(m.modes) > 0 {
				m.modeCursor = (m.modeCursor + len(m.modes) - 1) % len(m.modes)
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.Order):
			m.order = (m.order + 1) % 2
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := m.order.String()
	if len(m.modes) > 0 {
		title = fmt.Sprintf("%s - %s", title, m.modes[m.modeCursor].Title)
	}
	b.WriteString(centerStyled(sbTitleStyle.Render(title), len(title), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(sbDimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the mode sidebar next to the table.
func (m ScoreboardModel) renderWideLayout() string {
	var sidebar strings.Builder
	sidebar.WriteString("Modes\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, g := range m.modes {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.modeCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		name := g.Title
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	left := sbBorderStyle.Width(sidebarWidth).Render(sidebar.String())
	right := sbBorderStyle.Render(m.renderTableContent())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// renderNarrowLayout shows the current mode between arrows above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	if len(m.modes) > 0 {
		tab := fmt.Sprintf("< %s >", m.modes[m.modeCursor].Title)
		b.WriteString(centerText(tab, m.width))
		b.WriteString("\n\n")
	}
	b.WriteString(sbBorderStyle.Render(m.renderTableContent()))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nSurvive a while to set a high score!")
	}

	parts := []string{m.table.View()}
	if line := statsLine(m.stats, m.tickRate); line != "" {
		parts = append(parts, sbDimStyle.Render(line))
	}
	if line := killerLine(m.killers); line != "" {
		parts = append(parts, sbDimStyle.Render(line))
	}
	return strings.Join(parts, "\n")
}

// statsLine summarizes every recorded run of a mode.
func statsLine(stats *storage.GameStats, tickRate int) string {
	if stats == nil || stats.RunsCount == 0 {
		return ""
	}
	return fmt.Sprintf("Runs: %d  Best: %d  Avg: %.1f  Time played: %s",
		stats.RunsCount, stats.HighScore, stats.AvgScore, survivalTime(int(stats.TotalTicks), tickRate))
}

// killerLine lists enemy kinds by how many runs they ended, most first.
func killerLine(killers map[string]int) string {
	if len(killers) == 0 {
		return ""
	}
	kinds := make([]string, 0, len(killers))
	for k := range killers {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		if killers[kinds[i]] != killers[kinds[j]] {
			return killers[kinds[i]] > killers[kinds[j]]
		}
		return kinds[i] < kinds[j]
	})

	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = fmt.Sprintf("%s %d", k, killers[k])
	}
	return "Deaths: " + strings.Join(parts, " · ")
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, cfg core.RuntimeConfig) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
