package creeps

import "github.com/vovakirdan/tui-creeps/internal/ecs"

// despawnOutOfBounds removes enemies that drifted past the despawn radius.
// The player is clamped and never swept.
func (s *Sim) despawnOutOfBounds(float64) {
	limit := s.cfg.World.DespawnRadius()
	ecs.Join(s.c.Enemy, s.c.Position, func(e ecs.Entity, _ *Enemy, pos *Position) {
		if pos.P.Len() > limit {
			s.world.Despawn(e)
		}
	})
}
