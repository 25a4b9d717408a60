package creeps

import (
	"github.com/vovakirdan/tui-creeps/internal/core"
	"github.com/vovakirdan/tui-creeps/internal/ecs"
)

// EnterPlaying is the Playing entry hook. It clears the arena, restores
// score and spawn parameters to their baseline and spawns a fresh player
// at the origin. Running it twice in a row leaves the same state.
func (s *Sim) EnterPlaying() {
	s.c.Player.Each(func(e ecs.Entity, _ *Player) {
		s.world.Despawn(e)
	})
	s.c.Enemy.Each(func(e ecs.Entity, _ *Enemy) {
		s.world.Despawn(e)
	})
	s.world.Flush()

	s.score.reset()
	s.events = s.events[:0]
	s.director.Reset()
	s.state = Playing
	s.killedBy = 0
	s.intent = core.Vec2{}
	s.ticks = 0

	s.spawnPlayer()
	s.log.Info("run started", "interval", s.director.params.Interval(), "feedback", s.difficulty.IsEnabled())
}

func (s *Sim) spawnPlayer() {
	e := s.world.Spawn()
	s.c.Position.Set(e, Position{})
	s.c.Velocity.Set(e, Velocity{Max: s.player.MaxSpeed})
	s.c.Acceleration.Set(e, Acceleration{Rate: s.player.Acceleration})
	s.c.Player.Set(e, Player{})
}
