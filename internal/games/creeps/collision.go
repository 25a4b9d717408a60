package creeps

import (
	"github.com/vovakirdan/tui-creeps/internal/core"
	"github.com/vovakirdan/tui-creeps/internal/ecs"
)

// collide ends the run on the first enemy overlapping the player.
func (s *Sim) collide(float64) {
	player, _, ok := s.c.Player.First()
	if !ok {
		return
	}
	ppos, ok := s.c.Position.Get(player)
	if !ok {
		return
	}
	body := core.NewAABB(ppos.P, s.player.Size)

	hit := false
	var killer EnemyKind
	ecs.Join(s.c.Enemy, s.c.Position, func(_ ecs.Entity, enemy *Enemy, pos *Position) {
		if hit {
			return
		}
		if body.Intersects(core.NewAABB(pos.P, s.profiles.Of(enemy.Kind).Size)) {
			hit = true
			killer = enemy.Kind
		}
	})

	if hit {
		s.state = GameOver
		s.killedBy = killer
		s.log.Info("run over", "score", s.score.Value, "ticks", s.ticks, "killed_by", killer)
	}
}
