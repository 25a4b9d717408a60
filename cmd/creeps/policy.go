package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-creeps/internal/core"
	"github.com/vovakirdan/tui-creeps/internal/games/creeps"
)

// policy decides the input for one headless tick.
type policy func(s *creeps.Sim) core.InputFrame

var policies = map[string]policy{
	"idle":   idlePolicy,
	"circle": circlePolicy,
	"flee":   fleePolicy,
}

func policyNames() string {
	return "idle, circle, flee"
}

func parsePolicy(name string) (policy, error) {
	p, ok := policies[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown policy %q (want one of: %s)", name, policyNames())
	}
	return p, nil
}

func idlePolicy(*creeps.Sim) core.InputFrame {
	return core.NewInputFrame()
}

// circleTicks is how long circlePolicy holds each direction.
const circleTicks = 30

var circleOrder = [...]core.Action{core.ActionUp, core.ActionRight, core.ActionDown, core.ActionLeft}

func circlePolicy(s *creeps.Sim) core.InputFrame {
	f := core.NewInputFrame()
	f.Set(circleOrder[(s.Ticks()/circleTicks)%len(circleOrder)])
	return f
}

// fleePolicy steers away from the nearest enemy, and back toward the
// centre when nothing is around.
func fleePolicy(s *creeps.Sim) core.InputFrame {
	f := core.NewInputFrame()
	player, ok := s.PlayerPosition()
	if !ok {
		return f
	}

	nearest := math.Inf(1)
	var away core.Vec2
	for _, sp := range s.Sprites() {
		if sp.Player {
			continue
		}
		d := player.Sub(sp.Pos)
		if l := d.Len(); l < nearest {
			nearest = l
			away = d
		}
	}
	if math.IsInf(nearest, 1) {
		away = player.Scale(-1)
	}

	setDirection(&f, away.NormalizeOrZero())
	return f
}

// setDirection maps a unit vector onto the four directional actions.
// Components under the dead zone are ignored.
func setDirection(f *core.InputFrame, dir core.Vec2) {
	const deadZone = 0.3
	switch {
	case dir.X > deadZone:
		f.Set(core.ActionRight)
	case dir.X < -deadZone:
		f.Set(core.ActionLeft)
	}
	switch {
	case dir.Y > deadZone:
		f.Set(core.ActionUp)
	case dir.Y < -deadZone:
		f.Set(core.ActionDown)
	}
}
