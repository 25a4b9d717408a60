package creeps

// Score is the survival counter and the timer that drives it.
type Score struct {
	Value int
	timer Timer
}

func newScore(interval float64) Score {
	if interval <= 0 {
		interval = 1
	}
	return Score{timer: NewTimer(interval, TimerRepeating)}
}

func (sc *Score) reset() {
	sc.Value = 0
	sc.timer.Reset()
}

// DifficultyEvent announces that the score reached Score.
type DifficultyEvent struct {
	Score int
}

// tickScore awards a point per elapsed interval and queues a difficulty event for each.
func (s *Sim) tickScore(dt float64) {
	for range s.score.timer.Tick(dt) {
		s.score.Value++
		s.events = append(s.events, DifficultyEvent{Score: s.score.Value})
	}
}

// applyDifficulty drains the event queue and retunes the director.
// Every value is derived from the event's score, and the guards keep the
// parameters from ever getting easier within a run.
func (s *Sim) applyDifficulty(float64) {
	events := s.events
	s.events = s.events[:0]
	if !s.difficulty.IsEnabled() {
		return
	}

	p := &s.director.params
	for _, ev := range events {
		p.ProbabilitySpawnAnother = max(p.ProbabilitySpawnAnother, s.difficulty.Probability(ev.Score))
		p.TimeBetweenSpawns = min(p.TimeBetweenSpawns, s.difficulty.Interval(ev.Score))
		p.MaxSpawnsPerBurst = max(p.MaxSpawnsPerBurst, s.difficulty.MaxSpawns(ev.Score))

		for _, name := range s.difficulty.ScalingKinds() {
			kind, ok := ParseEnemyKind(name)
			if !ok {
				continue
			}
			if w, ok := s.difficulty.Weight(name, ev.Score); ok {
				p.Table.Set(kind, max(p.Table.Weight(kind), w))
			}
		}
	}
	if len(events) > 0 {
		s.log.Debug("difficulty", "score", events[len(events)-1].Score,
			"interval", p.Interval(), "probability", p.ProbabilitySpawnAnother,
			"burst", p.MaxSpawnsPerBurst, "table", p.Table.Entries())
	}
}

// PendingEvents returns the number of undrained difficulty events.
func (s *Sim) PendingEvents() int {
	return len(s.events)
}
