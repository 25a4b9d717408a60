package creeps

// TimerMode selects whether a timer fires once or keeps repeating.
type TimerMode int

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer is a countdown driven by the fixed tick delta.
// Repeating timers carry any overshoot into the next period.
type Timer struct {
	duration float64
	elapsed  float64
	mode     TimerMode
	finished bool
	fired    int
}

// NewTimer creates a timer that elapses after d seconds.
func NewTimer(d float64, mode TimerMode) Timer {
	return Timer{duration: d, mode: mode}
}

// Tick advances the timer by dt and returns how many times it elapsed.
func (t *Timer) Tick(dt float64) int {
	t.fired = 0
	if t.mode == TimerOnce {
		if t.finished {
			return 0
		}
		t.elapsed += dt
		if t.elapsed >= t.duration {
			t.elapsed = t.duration
			t.finished = true
			t.fired = 1
		}
		return t.fired
	}

	// A non-positive period would loop forever; fire once per tick instead.
	if t.duration <= 0 {
		t.fired = 1
		t.finished = true
		return 1
	}

	t.elapsed += dt
	for t.elapsed >= t.duration {
		t.elapsed -= t.duration
		t.fired++
	}
	t.finished = t.fired > 0
	return t.fired
}

// Finished reports whether a once timer is done, or whether a repeating
// timer elapsed during the last Tick.
func (t *Timer) Finished() bool {
	return t.finished
}

// Reset rewinds the timer keeping its duration.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.fired = 0
}

// SetDuration changes the period. Elapsed time is kept.
func (t *Timer) SetDuration(d float64) {
	t.duration = d
}

// Duration returns the configured period.
func (t *Timer) Duration() float64 {
	return t.duration
}

// Elapsed returns seconds accumulated in the current period.
func (t *Timer) Elapsed() float64 {
	return t.elapsed
}

// Remaining returns seconds left until the timer next elapses.
func (t *Timer) Remaining() float64 {
	return max(t.duration-t.elapsed, 0)
}
