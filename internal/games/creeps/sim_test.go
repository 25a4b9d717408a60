package creeps

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-creeps/internal/config"
	"github.com/vovakirdan/tui-creeps/internal/core"
)

func TestSystemOrder(t *testing.T) {
	s := newTestSim(t, 1.0/60)
	assert.Equal(t, []string{
		"playerInput",
		"applyAcceleration",
		"integrateVelocity",
		"clampPlayer",
		"spawnEnemies",
		"shootCannons",
		"launchRockets",
		"aimRockets",
		"expireRockets",
		"despawnOutOfBounds",
		"collide",
		"tickScore",
		"applyDifficulty",
	}, s.SystemNames())
}

func TestCollisionByDistance(t *testing.T) {
	tests := []struct {
		name     string
		offset   float64
		gameOver bool
	}{
		{"overlapping", 15, true},
		{"touching", 20, true},
		{"apart", 25, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSim(t, 1.0/60, quiet)
			s.spawnEnemy(KindStandard, core.V(tc.offset, 0), core.Vec2{})

			s.Tick(core.Vec2{})

			if tc.gameOver {
				assert.Equal(t, GameOver, s.State())
				assert.Equal(t, KindStandard, s.KilledBy())
			} else {
				assert.Equal(t, Playing, s.State())
			}
		})
	}
}

func TestGameOverFreezesSimulation(t *testing.T) {
	s := newTestSim(t, 0.25, quiet)
	tickN(s, 11, core.Vec2{})
	require.Equal(t, 2, s.Score())

	s.spawnEnemy(KindCannon, core.V(0, 0), core.Vec2{})
	// The score timer would elapse on this step; the pipeline stops at the collision.
	s.Tick(core.Vec2{})
	require.Equal(t, GameOver, s.State())
	assert.Equal(t, 2, s.Score())
	assert.Equal(t, KindCannon, s.KilledBy())

	ticks := s.Ticks()
	enemies := s.EnemyCount()
	tickN(s, 100, core.V(1, 0))
	assert.Equal(t, 2, s.Score())
	assert.Equal(t, ticks, s.Ticks())
	assert.Equal(t, enemies, s.EnemyCount())
}

func TestScoreTicksOncePerSecond(t *testing.T) {
	s := newTestSim(t, 0.25, quiet)

	tickN(s, 3, core.Vec2{})
	assert.Equal(t, 0, s.Score())
	s.Tick(core.Vec2{})
	assert.Equal(t, 1, s.Score())
	tickN(s, 8, core.Vec2{})
	assert.Equal(t, 3, s.Score())

	// Events are drained in the same tick they are raised.
	assert.Equal(t, 0, s.PendingEvents())
}

func TestFeedbackMonotonic(t *testing.T) {
	s := newTestSim(t, 1.0/60)
	prev := s.Params()

	for score := 1; score <= 300; score++ {
		s.events = append(s.events, DifficultyEvent{Score: score})
		s.applyDifficulty(0)
		p := s.Params()

		require.GreaterOrEqual(t, p.ProbabilitySpawnAnother, prev.ProbabilitySpawnAnother, "score %d", score)
		require.LessOrEqual(t, p.TimeBetweenSpawns, prev.TimeBetweenSpawns, "score %d", score)
		require.GreaterOrEqual(t, p.MaxSpawnsPerBurst, prev.MaxSpawnsPerBurst, "score %d", score)
		for _, k := range AllKinds {
			require.GreaterOrEqual(t, p.Table.Weight(k), prev.Table.Weight(k), "score %d kind %s", score, k)
		}
		require.LessOrEqual(t, p.ProbabilitySpawnAnother, p.MaxProbability)
		require.GreaterOrEqual(t, p.Interval(), p.MinTimeBetweenSpawns)
		prev = p
	}

	assert.Equal(t, 11, prev.MaxSpawnsPerBurst)
	assert.Equal(t, 30, prev.Table.Weight(KindCannon))
	assert.Equal(t, 20, prev.Table.Weight(KindRocketShip))
	assert.Equal(t, 25, prev.Table.Weight(KindStandard))
}

func TestFeedbackSteps(t *testing.T) {
	s := newTestSim(t, 1.0/60)

	s.events = append(s.events, DifficultyEvent{Score: 10})
	s.applyDifficulty(0)
	p := s.Params()
	assert.Equal(t, 1, p.Table.Weight(KindCannon))
	assert.Equal(t, 0, p.Table.Weight(KindRocketShip))
	assert.Equal(t, 1, p.MaxSpawnsPerBurst)

	s.events = append(s.events, DifficultyEvent{Score: 30})
	s.applyDifficulty(0)
	p = s.Params()
	assert.Equal(t, 3, p.Table.Weight(KindCannon))
	assert.Equal(t, 2, p.Table.Weight(KindRocketShip))
	assert.Equal(t, 2, p.MaxSpawnsPerBurst)
}

func TestFeedbackIsIdempotent(t *testing.T) {
	s := newTestSim(t, 1.0/60)

	s.events = append(s.events, DifficultyEvent{Score: 42})
	s.applyDifficulty(0)
	once := s.Params()

	s.events = append(s.events, DifficultyEvent{Score: 42})
	s.applyDifficulty(0)
	assert.Equal(t, once, s.Params())

	// Draining an empty queue changes nothing.
	s.applyDifficulty(0)
	assert.Equal(t, once, s.Params())
	assert.Equal(t, 0, s.PendingEvents())
}

func TestFeedbackDisabled(t *testing.T) {
	s := newTestSim(t, 1.0/60, func(cfg *config.CreepsConfig) {
		cfg.Difficulty.Enabled = false
	})
	base := s.Params()

	s.events = append(s.events, DifficultyEvent{Score: 500})
	s.applyDifficulty(0)

	assert.Equal(t, base, s.Params())
	assert.Equal(t, 0, s.PendingEvents())
}

func TestEnterPlayingIsIdempotent(t *testing.T) {
	s := newTestSim(t, 1.0/60)
	base := s.Params()

	s.spawnEnemy(KindCannon, core.V(300, 300), core.Vec2{})
	s.spawnEnemy(KindRocket, core.V(-300, 300), core.V(0, -1))
	s.events = append(s.events, DifficultyEvent{Score: 90})
	tickN(s, 120, core.V(1, 0))
	require.NotEqual(t, base, s.Params())

	s.EnterPlaying()
	first := s.Params()
	s.EnterPlaying()

	assert.Equal(t, Playing, s.State())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 0, s.EnemyCount())
	assert.Equal(t, 1, s.c.Player.Len())
	assert.Equal(t, 1, s.world.Len())
	assert.Equal(t, base, first)
	assert.Equal(t, first, s.Params())

	pos, ok := s.PlayerPosition()
	require.True(t, ok)
	assert.Equal(t, core.Vec2{}, pos)
	vel, _ := s.c.Velocity.Get(playerEntity(t, s))
	assert.Equal(t, core.Vec2{}, vel.Value)
}

func TestSeededRunsAreDeterministic(t *testing.T) {
	run := func() ([]Sprite, int, int) {
		cfg := config.DefaultCreepsConfig()
		s := NewSim(cfg, Options{Seed: 7, Logger: log.New(io.Discard)})
		for i := range 1800 {
			var intent core.Vec2
			switch (i / 90) % 4 {
			case 0:
				intent = core.V(1, 0)
			case 1:
				intent = core.V(0, 1)
			case 2:
				intent = core.V(-1, -1)
			}
			s.Tick(intent)
		}
		return s.Sprites(), s.Score(), s.Ticks()
	}

	sprites1, score1, ticks1 := run()
	sprites2, score2, ticks2 := run()

	require.NotEmpty(t, sprites1)
	assert.Equal(t, sprites1, sprites2)
	assert.Equal(t, score1, score2)
	assert.Equal(t, ticks1, ticks2)
}
