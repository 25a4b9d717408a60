package config

// DifficultyManager derives the spawn parameters for a given score.
//
// Every value is a pure function of the score and the configured baseline,
// so processing the same score twice yields the same result. Values saturate
// at their configured bounds.
type DifficultyManager struct {
	cfg   DifficultyConfig
	spawn SpawnConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(spawn SpawnConfig, cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:   cfg,
		spawn: spawn,
	}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Probability returns the chance of extending a burst at the given score.
func (d *DifficultyManager) Probability(score int) float64 {
	if !d.IsEnabled() {
		return d.spawn.Probability
	}
	p := d.spawn.Probability + d.cfg.ProbabilityStep*float64(max(score, 0))
	return min(p, d.spawn.MaxProbability)
}

// Interval returns the seconds between bursts at the given score,
// never below the configured floor.
func (d *DifficultyManager) Interval(score int) float64 {
	if !d.IsEnabled() {
		return max(d.spawn.Interval, d.spawn.MinInterval)
	}
	iv := d.spawn.Interval - d.cfg.IntervalStep*float64(max(score, 0))
	return max(iv, d.spawn.MinInterval)
}

// MaxSpawns returns the burst cap at the given score.
func (d *DifficultyManager) MaxSpawns(score int) int {
	base := max(d.spawn.MaxPerBurst, 1)
	if !d.IsEnabled() || d.cfg.BurstEvery <= 0 {
		return base
	}
	return base + max(score, 0)/d.cfg.BurstEvery
}

// Weight returns the table weight for kind at the given score.
// The second result is false for kinds whose weight does not scale with score.
func (d *DifficultyManager) Weight(kind string, score int) (int, bool) {
	if !d.IsEnabled() {
		return 0, false
	}
	n, ok := d.cfg.WeightEvery[kind]
	if !ok || n <= 0 {
		return 0, false
	}
	return max(score, 0) / n, true
}

// ScalingKinds returns the kinds whose weight follows the score, in canonical order.
func (d *DifficultyManager) ScalingKinds() []string {
	kinds := make([]string, 0, len(d.cfg.WeightEvery))
	for _, k := range KnownKinds {
		if _, ok := d.cfg.WeightEvery[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
