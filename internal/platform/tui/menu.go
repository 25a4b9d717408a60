package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-creeps/internal/core"
	"github.com/vovakirdan/tui-creeps/internal/registry"
	"github.com/vovakirdan/tui-creeps/internal/storage"
)

// Difficulties lists the presets the menu cycles through, in order.
var Difficulties = []string{"easy", "normal", "hard", "fixed"}

const defaultDifficulty = 1 // normal

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuCursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuSelectedStyle = lipgloss.NewStyle().Reverse(true)
)

// MenuItem represents a selectable game mode in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	Best        int    // Best recorded score, 0 when none
	Runs        int    // Recorded runs
	Deadliest   string // Enemy kind that ended the most runs, empty when none
}

// MenuModel is the Bubble Tea model for the mode picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	difficulty     int // index into Difficulties
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a mode
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. A nil store shows no history.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	return newMenuModel(registry.List(), store, cfg)
}

func newMenuModel(games []registry.GameInfo, store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	items := make([]MenuItem, 0, len(games))

	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title, Description: g.Description}
		if store != nil {
			loadHistory(store, &item)
		}
		items = append(items, item)
	}

	return MenuModel{
		items:      items,
		difficulty: defaultDifficulty,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
	}
}

// loadHistory fills the stored stats for one mode. Errors leave the zero values.
func loadHistory(store *storage.Store, item *MenuItem) {
	if stats, err := store.GetGameStats(item.GameID); err == nil && stats != nil {
		item.Best = stats.HighScore
		item.Runs = stats.RunsCount
	}
	if counts, err := store.KillerCounts(item.GameID); err == nil {
		item.Deadliest = deadliest(counts)
	}
}

// deadliest picks the kind with the most kills; ties go to the name that sorts first.
func deadliest(counts map[string]int) string {
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	best, top := "", 0
	for _, k := range kinds {
		if counts[k] > top {
			best, top = k, counts[k]
		}
	}
	return best
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.difficulty = (m.difficulty + len(Difficulties) - 1) % len(Difficulties)

	case MenuActionRight:
		m.difficulty = (m.difficulty + 1) % len(Difficulties)

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	line := func(s string, visible int) {
		b.WriteString(centerStyled(s, visible, m.width))
		b.WriteString("\n")
	}

	title := "C R E E P S"
	b.WriteString("\n")
	line(menuTitleStyle.Render(title), len(title))
	b.WriteString("\n")
	subtitle := "Dodge everything. Survive."
	line(menuDimStyle.Render(subtitle), len(subtitle))
	b.WriteString("\n")

	for i, item := range m.items {
		text := fmt.Sprintf("%-26s", item.Title)
		cursor := "  "
		if i == m.cursor {
			cursor = menuCursorStyle.Render("> ")
			text = menuSelectedStyle.Render(text)
		}
		line(cursor+text, 28)

		if item.Runs > 0 {
			stats := fmt.Sprintf("best %d  runs %d", item.Best, item.Runs)
			if item.Deadliest != "" {
				stats += "  nemesis " + item.Deadliest
			}
			stats = fmt.Sprintf("%-28s", stats)
			line(menuDimStyle.Render(stats), len(stats))
		}
	}

	if len(m.items) > 0 {
		if desc := m.items[m.cursor].Description; desc != "" {
			b.WriteString("\n")
			line(menuDimStyle.Render(desc), len(desc))
		}
	}

	b.WriteString("\n")
	diff := fmt.Sprintf("< Difficulty: %-6s >", m.Difficulty())
	line(diff, len(diff))

	b.WriteString("\n")
	controls := "Up/Down: Mode  |  Left/Right: Difficulty  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	line(menuDimStyle.Render(controls), len(controls))

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Difficulty returns the chosen difficulty preset name.
func (m MenuModel) Difficulty() string {
	return Difficulties[m.difficulty]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	return centerStyled(text, len(text), width)
}

// centerStyled centers a string whose printable width is visible; styled
// strings carry escape sequences that len would count.
func centerStyled(text string, visible, width int) string {
	if visible >= width {
		return text
	}
	return strings.Repeat(" ", (width-visible)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Difficulty      string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(), nil
}

func (m MenuModel) result() MenuResult {
	r := MenuResult{Config: m.Config(), Difficulty: m.Difficulty()}
	switch {
	case m.WantsScoreboard():
		r.WantsScoreboard = true
	case m.IsQuitting() || m.Selected() == nil:
		r.Quit = true
	default:
		r.GameID = m.Selected().GameID
	}
	return r
}
