// Package registry maps game IDs to factories and defines the contract between
// games and the platform. Games register themselves in init() functions, so
// the CLI and the TUI can discover modes without importing them directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-creeps/internal/core"
)

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "creeps").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Creeps").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Up, Pause, etc.).
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Describer is implemented by games that offer a one-line description for
// menus and `list` output.
type Describer interface {
	Description() string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

// Registry maps game IDs to factories. The zero value is not usable; call New.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	infos     map[string]GameInfo
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		infos:     make(map[string]GameInfo),
	}
}

// Register adds a game factory. Metadata is read from one probe instance.
// Panics if a game with the same ID is already registered.
func (r *Registry) Register(id string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}
	r.factories[id] = f
	r.infos[id] = info
}

// List returns information about all registered games, sorted by ID.
func (r *Registry) List() []GameInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]GameInfo, 0, len(r.infos))
	for _, info := range r.infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game by its ID.
func (r *Registry) Create(id string) (Game, error) {
	r.mu.RLock()
	f, ok := r.factories[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[id]
	return ok
}

// Default is the process-wide registry games add themselves to from init().
var Default = New()

// Register adds a game factory to the default registry.
func Register(id string, f Factory) { Default.Register(id, f) }

// List returns the games in the default registry, sorted by ID.
func List() []GameInfo { return Default.List() }

// Create instantiates a game from the default registry.
func Create(id string) (Game, error) { return Default.Create(id) }

// Exists reports whether the default registry knows id.
func Exists(id string) bool { return Default.Exists(id) }

// RunSummary describes a finished run so the platform can record it.
type RunSummary struct {
	ID       uuid.UUID
	GameID   string
	Score    int
	Ticks    int
	Seed     int64
	KilledBy string
}

// Reporter is implemented by games that can describe their last finished run.
// The second result is false while the run is still in progress.
type Reporter interface {
	Summary() (RunSummary, bool)
}
