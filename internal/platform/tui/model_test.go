package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-creeps/internal/core"
	"github.com/vovakirdan/tui-creeps/internal/registry"
	"github.com/vovakirdan/tui-creeps/internal/storage"
)

// stubGame records the frames it receives and ends the run on demand.
type stubGame struct {
	frames  []core.InputFrame
	resets  int
	over    bool
	score   int
	summary registry.RunSummary
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++; g.over = false }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{Score: g.score, GameOver: g.over} }
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Summary() (registry.RunSummary, bool) {
	return g.summary, g.over
}

func newTestModel(t *testing.T, g *stubGame) (Model, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 5}, nil)
	m.Init()
	return m, store
}

func step(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelHoldsDirection(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(t, g)

	m = step(m, runeKey('d'))
	for i := 0; i < HoldTicks+2; i++ {
		m = step(m, TickMsg{})
	}

	held := 0
	for _, f := range g.frames {
		if f.Has(core.ActionRight) {
			held++
		}
	}
	if held != HoldTicks {
		t.Errorf("right held for %d ticks, expected %d", held, HoldTicks)
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	g := &stubGame{summary: registry.RunSummary{ID: uuid.New(), GameID: "stub", Score: 12, KilledBy: "rocket"}}
	m, store := newTestModel(t, g)

	m = step(m, TickMsg{})
	g.over = true
	g.score = 12
	m = step(m, TickMsg{})
	m = step(m, TickMsg{})

	runs, err := store.TopRuns("stub", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(runs))
	}
	if runs[0].ID != g.summary.ID || runs[0].KilledBy != "rocket" {
		t.Errorf("saved run differs from summary: %+v", runs[0])
	}

	// Restart with a fixed seed resets the game and re-arms saving.
	m = step(m, runeKey('r'))
	m = step(m, TickMsg{})
	if g.resets != 2 {
		t.Errorf("expected a reset on restart, got %d resets", g.resets)
	}
	if m.scoreSaved {
		t.Error("restart should re-arm run saving")
	}
	if m.config.Seed != 5 {
		t.Errorf("fixed seed should survive restart, got %d", m.config.Seed)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, &stubGame{})
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quit")
	}
}
