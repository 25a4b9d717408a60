package creeps

import (
	"math"

	"github.com/vovakirdan/tui-creeps/internal/core"
	"github.com/vovakirdan/tui-creeps/internal/ecs"
)

// playerInput turns the movement intent into the player's steering direction.
func (s *Sim) playerInput(float64) {
	e, _, ok := s.c.Player.First()
	if !ok {
		return
	}
	if acc, ok := s.c.Acceleration.Get(e); ok {
		acc.Direction = s.intent.NormalizeOrZero()
	}
}

// applyAcceleration eases each steered velocity towards Direction*Max.
// The blend factor is frame-rate independent, and since both ends of the
// blend are within Max the result is too.
func (s *Sim) applyAcceleration(dt float64) {
	ecs.Join(s.c.Acceleration, s.c.Velocity, func(_ ecs.Entity, acc *Acceleration, vel *Velocity) {
		target := acc.Direction.NormalizeOrZero().Scale(vel.Max)
		vel.Value = vel.Value.Lerp(target, 1-math.Exp(-acc.Rate*dt))
	})
}

// integrateVelocity moves every entity along its velocity.
func (s *Sim) integrateVelocity(dt float64) {
	ecs.Join(s.c.Velocity, s.c.Position, func(_ ecs.Entity, vel *Velocity, pos *Position) {
		pos.P = pos.P.Add(vel.Value.Scale(dt))
	})
}

// clampPlayer keeps the player's body inside the arena.
func (s *Sim) clampPlayer(float64) {
	e, _, ok := s.c.Player.First()
	if !ok {
		return
	}
	pos, ok := s.c.Position.Get(e)
	if !ok {
		return
	}
	b := max(s.cfg.World.HalfSize()-s.player.Size/2, 0)
	pos.P = pos.P.Clamp(core.V(b, b))
}
