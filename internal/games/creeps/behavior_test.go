package creeps

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-creeps/internal/config"
	"github.com/vovakirdan/tui-creeps/internal/core"
	"github.com/vovakirdan/tui-creeps/internal/ecs"
)

func TestVelocityStaysWithinMax(t *testing.T) {
	s := newTestSim(t, 1.0/60)
	rocket := s.spawnEnemy(KindRocket, core.V(300, 300), core.V(1, 0))
	player := playerEntity(t, s)

	intents := []core.Vec2{core.V(1, 0), core.V(1, 1), core.V(-1, 1), core.V(0, -1), {}}
	for i := range 600 {
		s.Tick(intents[(i/40)%len(intents)])
		if s.State() != Playing {
			break
		}
		for _, e := range []ecs.Entity{player, rocket} {
			vel, ok := s.c.Velocity.Get(e)
			if !ok {
				continue
			}
			require.LessOrEqual(t, vel.Value.Len(), vel.Max+1e-6, "tick %d entity %d", i, e)
		}
	}
}

func TestPlayerClampedToArena(t *testing.T) {
	s := newTestSim(t, 1.0/60, quiet)

	tickN(s, 600, core.V(1, 1))

	pos, ok := s.PlayerPosition()
	require.True(t, ok)
	bound := s.HalfSize() - s.player.Size/2
	assert.InDelta(t, bound, pos.X, 1e-9)
	assert.InDelta(t, bound, pos.Y, 1e-9)
}

func TestEnemiesDespawnPastRadius(t *testing.T) {
	s := newTestSim(t, 1.0/60, quiet)
	far := s.spawnEnemy(KindStandard, core.V(s.DespawnRadius()+10, 0), core.V(1, 0))
	leaving := s.spawnEnemy(KindStandard, core.V(0, s.DespawnRadius()-5), core.V(0, 1))
	inside := s.spawnEnemy(KindStandard, core.V(-s.SpawnRadius(), 0), core.V(0, 1))

	s.Tick(core.Vec2{})
	assert.False(t, s.world.Alive(far))
	assert.True(t, s.world.Alive(leaving))
	assert.True(t, s.world.Alive(inside))

	tickN(s, 10, core.Vec2{})
	assert.False(t, s.world.Alive(leaving))
}

func TestCannonFiresRadialVolley(t *testing.T) {
	s := newTestSim(t, 0.125, quiet)
	removePlayer(s)
	cannon := s.spawnEnemy(KindCannon, core.V(0, 0), core.Vec2{})

	// 2.5s at 0.125s per tick.
	tickN(s, 19, core.Vec2{})
	assert.Equal(t, 0, countKind(s, KindBullet))

	s.Tick(core.Vec2{})
	require.Equal(t, 12, countKind(s, KindBullet))
	require.True(t, s.world.Alive(cannon))

	speed := s.profiles.Of(KindBullet).Speed
	var angles []float64
	ecs.Join(s.c.Enemy, s.c.Velocity, func(_ ecs.Entity, en *Enemy, vel *Velocity) {
		if en.Kind != KindBullet {
			return
		}
		assert.InDelta(t, speed, vel.Value.Len(), 1e-9)
		angles = append(angles, math.Atan2(vel.Value.Y, vel.Value.X))
	})
	for i, a := range angles {
		want := 2 * math.Pi * float64(i) / 12
		if want > math.Pi {
			want -= 2 * math.Pi
		}
		assert.InDelta(t, want, a, 1e-9)
	}
}

func TestRocketShipLaunchesAtPlayer(t *testing.T) {
	s := newTestSim(t, 0.125, quiet)
	s.spawnEnemy(KindRocketShip, core.V(400, 0), core.Vec2{})

	tickN(s, 32, core.Vec2{})
	require.Equal(t, 1, countKind(s, KindRocket))

	s.c.HeatSeeker.Each(func(e ecs.Entity, _ *HeatSeeker) {
		acc, ok := s.c.Acceleration.Get(e)
		require.True(t, ok)
		assert.Less(t, acc.Direction.X, -0.99)
	})
}

func TestRocketShipWithoutPlayerUsesDefaultHeading(t *testing.T) {
	s := newTestSim(t, 0.125, quiet)
	removePlayer(s)
	s.spawnEnemy(KindRocketShip, core.V(0, 0), core.Vec2{})

	require.NotPanics(t, func() {
		tickN(s, 33, core.Vec2{})
	})
	require.Equal(t, 1, countKind(s, KindRocket))

	s.c.HeatSeeker.Each(func(e ecs.Entity, _ *HeatSeeker) {
		acc, _ := s.c.Acceleration.Get(e)
		assert.Equal(t, defaultRocketHeading, acc.Direction)
	})
}

func TestRocketReaimsEveryTick(t *testing.T) {
	s := newTestSim(t, 1.0/60, quiet)
	rocket := s.spawnEnemy(KindRocket, core.V(200, 0), core.V(0, 1))

	s.Tick(core.Vec2{})
	acc, ok := s.c.Acceleration.Get(rocket)
	require.True(t, ok)
	assert.Less(t, acc.Direction.X, -0.99)

	ppos, _ := s.c.Position.Get(playerEntity(t, s))
	ppos.P = core.V(200, 300)
	s.Tick(core.Vec2{})
	assert.Greater(t, acc.Direction.Y, 0.99)
}

func TestRocketExpiresAfterLifetime(t *testing.T) {
	tests := []struct {
		name   string
		player bool
	}{
		{"homing on a distant player", true},
		{"no player", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSim(t, 0.125, quiet, func(cfg *config.CreepsConfig) {
				p := cfg.Profiles[config.KindRocket]
				p.Speed = 0
				cfg.Profiles[config.KindRocket] = p
			})
			if !tc.player {
				removePlayer(s)
			}
			rocket := s.spawnEnemy(KindRocket, core.V(400, 0), core.V(1, 0))

			// 5s lifetime at 0.125s per tick.
			tickN(s, 39, core.Vec2{})
			require.True(t, s.world.Alive(rocket))
			if tc.player {
				acc, ok := s.c.Acceleration.Get(rocket)
				require.True(t, ok)
				assert.Less(t, acc.Direction.X, -0.99, "rocket should be aiming at the player")
				assert.Equal(t, Playing, s.State())
			}

			s.Tick(core.Vec2{})
			assert.False(t, s.world.Alive(rocket))
			assert.Equal(t, Playing, s.State())
		})
	}
}

func TestNoPlayerIsNotAnError(t *testing.T) {
	s := newTestSim(t, 1.0/60)
	removePlayer(s)
	s.spawnEnemy(KindRocket, core.V(100, 0), core.V(1, 0))
	s.spawnEnemy(KindRocketShip, core.V(-100, 0), core.V(1, 0))
	s.spawnEnemy(KindCannon, core.V(0, 100), core.V(1, 0))

	require.NotPanics(t, func() {
		tickN(s, 600, core.V(1, 0))
	})
	assert.Equal(t, Playing, s.State())
}
