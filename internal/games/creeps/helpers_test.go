package creeps

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-creeps/internal/config"
	"github.com/vovakirdan/tui-creeps/internal/core"
	"github.com/vovakirdan/tui-creeps/internal/ecs"
)

// newTestSim builds a seeded sim with logging discarded.
func newTestSim(t *testing.T, delta float64, mutate ...func(*config.CreepsConfig)) *Sim {
	t.Helper()
	cfg := config.DefaultCreepsConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	return NewSim(cfg, Options{Seed: 42, Delta: delta, Logger: log.New(io.Discard)})
}

func removePlayer(s *Sim) {
	s.c.Player.Each(func(e ecs.Entity, _ *Player) {
		s.world.Despawn(e)
	})
	s.world.Flush()
}

func playerEntity(t *testing.T, s *Sim) ecs.Entity {
	t.Helper()
	e, _, ok := s.c.Player.First()
	if !ok {
		t.Fatal("no player")
	}
	return e
}

func countKind(s *Sim, kind EnemyKind) int {
	n := 0
	s.c.Enemy.Each(func(_ ecs.Entity, en *Enemy) {
		if en.Kind == kind {
			n++
		}
	})
	return n
}

func tickN(s *Sim, n int, intent core.Vec2) {
	for range n {
		s.Tick(intent)
	}
}

// quiet stops the director from spawning on its own during a test.
func quiet(cfg *config.CreepsConfig) {
	cfg.Spawn.Interval = 1e6
}
