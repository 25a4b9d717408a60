package creeps

import (
	"github.com/vovakirdan/tui-creeps/internal/core"
	"github.com/vovakirdan/tui-creeps/internal/ecs"
)

// Position is an entity's location in world units. Y grows upwards.
type Position struct {
	P core.Vec2
}

// Velocity is the current velocity and the speed cap the acceleration
// system steers towards. Max is fixed at spawn.
type Velocity struct {
	Value core.Vec2
	Max   float64
}

// Acceleration steers Velocity towards Direction*Max.
// Rate is the smoothing responsiveness; higher values react faster.
type Acceleration struct {
	Direction core.Vec2
	Rate      float64
}

// Enemy tags an entity with its kind.
type Enemy struct {
	Kind EnemyKind
}

// ShootTimer paces cannon volleys and rocket launches.
type ShootTimer struct {
	Timer Timer
}

// HeatSeeker marks a homing projectile and bounds its lifetime.
type HeatSeeker struct {
	AliveFor Timer
}

// Player marks the controlled entity. At most one exists.
type Player struct{}

// Components groups every component table of a simulation.
type Components struct {
	Position     *ecs.Store[Position]
	Velocity     *ecs.Store[Velocity]
	Acceleration *ecs.Store[Acceleration]
	Enemy        *ecs.Store[Enemy]
	ShootTimer   *ecs.Store[ShootTimer]
	HeatSeeker   *ecs.Store[HeatSeeker]
	Player       *ecs.Store[Player]
}

func newComponents(w *ecs.World) Components {
	return Components{
		Position:     ecs.NewStore[Position](w),
		Velocity:     ecs.NewStore[Velocity](w),
		Acceleration: ecs.NewStore[Acceleration](w),
		Enemy:        ecs.NewStore[Enemy](w),
		ShootTimer:   ecs.NewStore[ShootTimer](w),
		HeatSeeker:   ecs.NewStore[HeatSeeker](w),
		Player:       ecs.NewStore[Player](w),
	}
}
