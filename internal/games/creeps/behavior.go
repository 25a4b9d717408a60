package creeps

import (
	"math"

	"github.com/vovakirdan/tui-creeps/internal/core"
	"github.com/vovakirdan/tui-creeps/internal/ecs"
)

// defaultRocketHeading is used when a rocket is launched with no player to aim at.
var defaultRocketHeading = core.V(0, -1)

// shootCannons fires a radial volley of bullets from every cannon whose
// timer elapsed this tick.
func (s *Sim) shootCannons(dt float64) {
	s.c.ShootTimer.Each(func(e ecs.Entity, st *ShootTimer) {
		enemy, ok := s.c.Enemy.Get(e)
		if !ok || enemy.Kind != KindCannon {
			return
		}
		pos, ok := s.c.Position.Get(e)
		if !ok {
			return
		}
		n := st.Timer.Tick(dt)
		if n == 0 {
			return
		}

		volley := max(s.profiles.Of(KindCannon).Volley, 1)
		origin := pos.P
		for range n {
			for i := range volley {
				angle := 2 * math.Pi * float64(i) / float64(volley)
				s.spawnEnemy(KindBullet, origin, core.FromAngle(angle))
			}
		}
		s.log.Debug("cannon volley", "entity", e, "bullets", n*volley)
	})
}

// launchRockets fires a rocket from every rocket ship whose timer elapsed.
// Rockets head for the player, or straight down when there is none.
func (s *Sim) launchRockets(dt float64) {
	target, hasTarget := s.PlayerPosition()

	s.c.ShootTimer.Each(func(e ecs.Entity, st *ShootTimer) {
		enemy, ok := s.c.Enemy.Get(e)
		if !ok || enemy.Kind != KindRocketShip {
			return
		}
		pos, ok := s.c.Position.Get(e)
		if !ok {
			return
		}
		n := st.Timer.Tick(dt)
		if n == 0 {
			return
		}

		origin := pos.P
		dir := defaultRocketHeading
		if hasTarget {
			if d := target.Sub(origin).NormalizeOrZero(); !d.IsZero() {
				dir = d
			}
		}
		for range n {
			s.spawnEnemy(KindRocket, origin, dir)
		}
		s.log.Debug("rocket launched", "ship", e, "aimed", hasTarget)
	})
}

// aimRockets re-targets every homing rocket at the player's current position.
// Without a player each rocket keeps its last heading.
func (s *Sim) aimRockets(float64) {
	target, ok := s.PlayerPosition()
	if !ok {
		return
	}
	s.c.HeatSeeker.Each(func(e ecs.Entity, _ *HeatSeeker) {
		pos, ok := s.c.Position.Get(e)
		if !ok {
			return
		}
		acc, ok := s.c.Acceleration.Get(e)
		if !ok {
			return
		}
		acc.Direction = target.Sub(pos.P).NormalizeOrZero()
	})
}

// expireRockets removes homing rockets whose lifetime ran out,
// wherever they are.
func (s *Sim) expireRockets(dt float64) {
	s.c.HeatSeeker.Each(func(e ecs.Entity, hs *HeatSeeker) {
		hs.AliveFor.Tick(dt)
		if hs.AliveFor.Finished() {
			s.world.Despawn(e)
			s.log.Debug("rocket expired", "entity", e)
		}
	})
}
