package creeps

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-creeps/internal/config"
	"github.com/vovakirdan/tui-creeps/internal/core"
	"github.com/vovakirdan/tui-creeps/internal/registry"
)

// Game IDs registered by this package.
const (
	IDSurvival = "creeps"
	IDClassic  = "creeps_classic"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives simulation logs; nil means log.Default()
var logger *log.Logger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	logger = l
}

func gameLogger() *log.Logger {
	if logger != nil {
		return logger
	}
	return log.Default().WithPrefix("creeps")
}

// Game adapts a Sim to the platform's Game interface.
type Game struct {
	id      string
	title   string
	classic bool

	config core.RuntimeConfig
	creeps config.CreepsConfig
	sim    *Sim
	seed   int64
	runID  uuid.UUID
	paused bool
}

// New creates the escalating survival mode.
func New() *Game {
	return &Game{id: IDSurvival, title: "Creeps"}
}

// NewClassic creates the classic mode: standard enemies only, one per
// second, no escalation.
func NewClassic() *Game {
	return &Game{id: IDClassic, title: "Creeps Classic", classic: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Description summarizes the mode for menus.
func (g *Game) Description() string {
	if g.classic {
		return "Plain creeps, one a second. No surprises."
	}
	return "The swarm grows with your score: cannons, rocket ships, homing rockets."
}

// Reset loads the configuration, seeds the simulation and starts a new run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg

	ccfg, err := config.LoadCreeps(configPath)
	if err != nil {
		gameLogger().Warn("using default config", "err", err)
	}
	if difficultyPreset != "" {
		config.ApplyCreepsPreset(&ccfg, difficultyPreset)
	}
	if g.classic {
		config.ApplyClassic(&ccfg)
	}
	g.creeps = ccfg

	g.startRun()
}

// Restart returns to Playing from any state. It is the only way out of GameOver.
// Every run gets its own sim seeded with the seed its summary reports.
func (g *Game) Restart() {
	if g.sim == nil {
		g.Reset(g.config)
		return
	}
	g.startRun()
}

// startRun picks the run seed and builds a fresh sim from it. A fixed
// config seed is reused so every run replays the same spawns.
func (g *Game) startRun() {
	g.seed = g.config.Seed
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}

	g.sim = NewSim(g.creeps, Options{
		Seed:   g.seed,
		Delta:  g.config.Delta(),
		Logger: gameLogger().With("mode", g.id),
	})
	g.runID = uuid.New()
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil {
		g.Reset(core.DefaultConfig())
	}

	if g.sim.State() == GameOver {
		if in.Has(core.ActionRestart) {
			g.Restart()
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.sim.Tick(in.Intent())

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.sim.Score(),
		GameOver: g.sim.State() == GameOver,
		Paused:   g.paused,
	}
}

// Score returns the current score.
func (g *Game) Score() int {
	if g.sim == nil {
		return 0
	}
	return g.sim.Score()
}

// RunState returns the run lifecycle state.
func (g *Game) RunState() RunState {
	if g.sim == nil {
		return Playing
	}
	return g.sim.State()
}

// Seed returns the seed of the current run.
func (g *Game) Seed() int64 {
	return g.seed
}

// Sim exposes the underlying simulation.
func (g *Game) Sim() *Sim {
	return g.sim
}

// Summary describes the finished run. It reports false while playing.
func (g *Game) Summary() (registry.RunSummary, bool) {
	if g.sim == nil || g.sim.State() != GameOver {
		return registry.RunSummary{}, false
	}
	return registry.RunSummary{
		ID:       g.runID,
		GameID:   g.id,
		Score:    g.sim.Score(),
		Ticks:    g.sim.Ticks(),
		Seed:     g.seed,
		KilledBy: g.sim.KilledBy().String(),
	}, true
}

// Register the game modes with the registry
func init() {
	registry.Register(IDSurvival, func() registry.Game {
		return New()
	})
	registry.Register(IDClassic, func() registry.Game {
		return NewClassic()
	})
}
