package creeps

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-creeps/internal/config"
	"github.com/vovakirdan/tui-creeps/internal/core"
	"github.com/vovakirdan/tui-creeps/internal/ecs"
)

// RunState is the top-level run lifecycle.
type RunState int

const (
	Playing  RunState = iota // Systems run every tick
	GameOver                 // Frozen until restart
)

// String returns a human-readable state name.
func (s RunState) String() string {
	if s == GameOver {
		return "game over"
	}
	return "playing"
}

// system is one named step of the tick pipeline.
type system struct {
	name string
	run  func(dt float64)
}

// Options configure a Sim.
type Options struct {
	Seed   int64
	Delta  float64     // Fixed step in seconds; defaults to 1/60
	Logger *log.Logger // Defaults to log.Default()
}

// Sim owns the world, its resources and the ordered system pipeline.
// It is not safe for concurrent use.
type Sim struct {
	cfg      config.CreepsConfig
	world    *ecs.World
	c        Components
	profiles Profiles
	player   PlayerProfile
	rng      *rand.Rand
	log      *log.Logger
	dt       float64

	director   *Director
	difficulty *config.DifficultyManager
	score      Score
	events     []DifficultyEvent
	state      RunState
	killedBy   EnemyKind
	intent     core.Vec2
	ticks      int

	systems []system
}

// NewSim creates a simulation and enters the Playing state.
func NewSim(cfg config.CreepsConfig, opts Options) *Sim {
	if opts.Delta <= 0 {
		opts.Delta = 1.0 / 60.0
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	w := ecs.NewWorld()
	s := &Sim{
		cfg:        cfg,
		world:      w,
		c:          newComponents(w),
		profiles:   profilesFromConfig(cfg),
		player:     playerFromConfig(cfg.Player),
		rng:        rand.New(rand.NewSource(opts.Seed)),
		log:        opts.Logger,
		dt:         opts.Delta,
		difficulty: config.NewDifficultyManager(cfg.Spawn, cfg.Difficulty),
		score:      newScore(cfg.Difficulty.ScoreInterval),
	}
	s.director = newDirector(s, BaseSpawnParams(cfg.Spawn))

	s.systems = []system{
		{"playerInput", s.playerInput},
		{"applyAcceleration", s.applyAcceleration},
		{"integrateVelocity", s.integrateVelocity},
		{"clampPlayer", s.clampPlayer},
		{"spawnEnemies", s.director.update},
		{"shootCannons", s.shootCannons},
		{"launchRockets", s.launchRockets},
		{"aimRockets", s.aimRockets},
		{"expireRockets", s.expireRockets},
		{"despawnOutOfBounds", s.despawnOutOfBounds},
		{"collide", s.collide},
		{"tickScore", s.tickScore},
		{"applyDifficulty", s.applyDifficulty},
	}

	s.EnterPlaying()
	return s
}

// Tick advances the simulation by one fixed step using the player's
// movement intent. It does nothing once the run is over.
func (s *Sim) Tick(intent core.Vec2) {
	if s.state != Playing {
		return
	}
	s.intent = intent
	s.ticks++

	for _, sys := range s.systems {
		sys.run(s.dt)
		s.world.Flush()
		if s.state != Playing {
			return
		}
	}
}

// SystemNames returns the pipeline order.
func (s *Sim) SystemNames() []string {
	names := make([]string, len(s.systems))
	for i, sys := range s.systems {
		names[i] = sys.name
	}
	return names
}

// State returns the run state.
func (s *Sim) State() RunState {
	return s.state
}

// Score returns the current score.
func (s *Sim) Score() int {
	return s.score.Value
}

// Ticks returns the number of ticks simulated in the current run.
func (s *Sim) Ticks() int {
	return s.ticks
}

// KilledBy returns the kind that ended the run. Only meaningful after GameOver.
func (s *Sim) KilledBy() EnemyKind {
	return s.killedBy
}

// Params returns a copy of the current spawn parameters.
func (s *Sim) Params() SpawnParams {
	return s.director.params
}

// World exposes the entity store for read-only inspection.
func (s *Sim) World() *ecs.World {
	return s.world
}

// Components exposes the component tables for read-only inspection.
func (s *Sim) Components() Components {
	return s.c
}

// EnemyCount returns the number of live enemies.
func (s *Sim) EnemyCount() int {
	return s.c.Enemy.Len()
}

// PlayerPosition returns the player's position, if a player exists.
func (s *Sim) PlayerPosition() (core.Vec2, bool) {
	e, _, ok := s.c.Player.First()
	if !ok {
		return core.Vec2{}, false
	}
	pos, ok := s.c.Position.Get(e)
	if !ok {
		return core.Vec2{}, false
	}
	return pos.P, true
}

// SpawnRadius returns the distance from the origin at which enemies appear.
func (s *Sim) SpawnRadius() float64 {
	return s.cfg.World.SpawnRadius()
}

// DespawnRadius returns the distance beyond which enemies are removed.
func (s *Sim) DespawnRadius() float64 {
	return s.cfg.World.DespawnRadius()
}

// HalfSize returns half the arena side length.
func (s *Sim) HalfSize() float64 {
	return s.cfg.World.HalfSize()
}
