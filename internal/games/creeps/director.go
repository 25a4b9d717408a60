package creeps

import (
	"math"

	"github.com/vovakirdan/tui-creeps/internal/core"
	"github.com/vovakirdan/tui-creeps/internal/ecs"
)

// Director decides when, what and where enemies appear.
type Director struct {
	sim    *Sim
	base   SpawnParams
	params SpawnParams
	timer  Timer
}

func newDirector(s *Sim, base SpawnParams) *Director {
	d := &Director{sim: s, base: base}
	d.Reset()
	return d
}

// Reset restores the baseline parameters and rewinds the spawn timer.
func (d *Director) Reset() {
	d.params = d.base
	d.timer = NewTimer(d.params.Interval(), TimerRepeating)
}

// Draw picks a kind from the weighted table.
// An empty table or a failed walk falls back to KindStandard with a warning.
func (d *Director) Draw() EnemyKind {
	total := d.params.Table.Total()
	if total <= 0 {
		d.sim.log.Warn("spawn table is empty, falling back", "kind", KindStandard, "table", d.params.Table.Entries())
		return KindStandard
	}

	r := 1 + d.sim.rng.Intn(total)
	acc := 0
	for _, k := range AllKinds {
		acc += d.params.Table.Weight(k)
		if acc >= r {
			return k
		}
	}

	d.sim.log.Warn("spawn draw found no kind, falling back", "kind", KindStandard, "roll", r, "total", total)
	return KindStandard
}

// update is the spawnEnemies system.
func (d *Director) update(dt float64) {
	n := d.timer.Tick(dt)
	for range n {
		d.burst()
	}
	if n > 0 {
		d.timer.SetDuration(d.params.Interval())
	}
}

// burst spawns one enemy, then keeps rolling for extra spawns up to the cap.
func (d *Director) burst() {
	count := 0
	for {
		kind := d.Draw()
		d.spawnAtEdge(kind)
		count++
		if count >= d.params.MaxSpawnsPerBurst || d.sim.rng.Float64() >= d.params.ProbabilitySpawnAnother {
			break
		}
	}
	d.sim.log.Debug("burst", "count", count, "interval", d.params.Interval(), "score", d.sim.score.Value)
}

// spawnAtEdge places an enemy on the spawn circle heading roughly inwards.
func (d *Director) spawnAtEdge(kind EnemyKind) ecs.Entity {
	s := d.sim
	theta := s.rng.Float64() * 2 * math.Pi
	pos := core.FromAngle(theta).Scale(s.cfg.World.SpawnRadius())

	spread := s.cfg.World.SpreadAngle
	offset := (s.rng.Float64()*2 - 1) * spread
	dir := pos.Scale(-1).NormalizeOrZero().Rotate(offset)

	return s.spawnEnemy(kind, pos, dir)
}

// spawnEnemy instantiates an enemy of kind at pos moving along dir.
// Components are attached according to the kind's behavior.
func (s *Sim) spawnEnemy(kind EnemyKind, pos, dir core.Vec2) ecs.Entity {
	p := s.profiles.Of(kind)
	dir = dir.NormalizeOrZero()

	e := s.world.Spawn()
	s.c.Position.Set(e, Position{P: pos})
	s.c.Velocity.Set(e, Velocity{Value: dir.Scale(p.Speed), Max: p.Speed})
	s.c.Enemy.Set(e, Enemy{Kind: kind})

	switch kind {
	case KindCannon, KindRocketShip:
		s.c.ShootTimer.Set(e, ShootTimer{Timer: NewTimer(p.ShootEvery, TimerRepeating)})
	case KindRocket:
		s.c.Acceleration.Set(e, Acceleration{Direction: dir, Rate: p.AccelRate})
		s.c.HeatSeeker.Set(e, HeatSeeker{AliveFor: NewTimer(p.Lifetime, TimerOnce)})
	}
	return e
}
