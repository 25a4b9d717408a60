package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-creeps/internal/config"
	"github.com/vovakirdan/tui-creeps/internal/core"
	"github.com/vovakirdan/tui-creeps/internal/games/creeps"
)

func quietSim(t *testing.T) *creeps.Sim {
	t.Helper()
	cfg := config.DefaultCreepsConfig()
	cfg.Spawn.Interval = 1e6
	return creeps.NewSim(cfg, creeps.Options{Seed: 1, Delta: 0.125, Logger: log.New(io.Discard)})
}

func TestParsePolicy(t *testing.T) {
	for _, name := range []string{"idle", "circle", "flee", "FLEE"} {
		p, err := parsePolicy(name)
		require.NoError(t, err, name)
		assert.NotNil(t, p)
	}

	_, err := parsePolicy("dance")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dance")
}

func TestSetDirection(t *testing.T) {
	tests := []struct {
		name string
		dir  core.Vec2
		want core.Vec2
	}{
		{"zero", core.V(0, 0), core.V(0, 0)},
		{"right", core.V(1, 0), core.V(1, 0)},
		{"down left", core.V(-0.7, -0.7), core.V(-1, -1)},
		{"mostly up", core.V(0.2, 0.98), core.V(0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := core.NewInputFrame()
			setDirection(&f, tt.dir)
			assert.Equal(t, tt.want, f.Intent())
		})
	}
}

func TestCirclePolicyRotates(t *testing.T) {
	s := quietSim(t)

	assert.True(t, circlePolicy(s).Has(core.ActionUp))
	for range circleTicks {
		s.Tick(core.Vec2{})
	}
	assert.True(t, circlePolicy(s).Has(core.ActionRight))
}

func TestFleePolicyIdleAtCentreWithoutEnemies(t *testing.T) {
	s := quietSim(t)
	assert.Equal(t, core.Vec2{}, fleePolicy(s).Intent())
}

func TestFleePolicyReturnsToCentre(t *testing.T) {
	s := quietSim(t)
	for range 40 {
		s.Tick(core.V(1, 0))
	}
	pos, ok := s.PlayerPosition()
	require.True(t, ok)
	require.Greater(t, pos.X, 0.0)

	assert.Equal(t, core.V(-1, 0), fleePolicy(s).Intent())
}
