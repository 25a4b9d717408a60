package creeps

import (
	"github.com/vovakirdan/tui-creeps/internal/config"
)

// SpawnTable holds a non-negative weight per kind.
// Iteration always follows the canonical kind order.
type SpawnTable struct {
	weights [kindCount]int
}

// NewSpawnTable builds a table from config keys. Unknown keys are ignored.
func NewSpawnTable(weights map[string]int) SpawnTable {
	var t SpawnTable
	for name, w := range weights {
		if k, ok := ParseEnemyKind(name); ok {
			t.Set(k, w)
		}
	}
	return t
}

// Set stores the weight for k. Negative weights are stored as zero.
func (t *SpawnTable) Set(k EnemyKind, w int) {
	if k < 0 || k >= kindCount {
		return
	}
	t.weights[k] = max(w, 0)
}

// Weight returns the weight for k.
func (t SpawnTable) Weight(k EnemyKind) int {
	if k < 0 || k >= kindCount {
		return 0
	}
	return t.weights[k]
}

// Total returns the sum of all weights.
func (t SpawnTable) Total() int {
	total := 0
	for _, w := range t.weights {
		total += w
	}
	return total
}

// Entries returns the non-zero weights in canonical order.
func (t SpawnTable) Entries() []SpawnEntry {
	var out []SpawnEntry
	for _, k := range AllKinds {
		if w := t.weights[k]; w > 0 {
			out = append(out, SpawnEntry{Kind: k, Weight: w})
		}
	}
	return out
}

// SpawnEntry is one row of a SpawnTable.
type SpawnEntry struct {
	Kind   EnemyKind
	Weight int
}

// SpawnParams are the director's tunables. They start from the configured
// baseline on every run and only the difficulty feedback changes them.
type SpawnParams struct {
	TimeBetweenSpawns       float64
	MinTimeBetweenSpawns    float64
	ProbabilitySpawnAnother float64
	MaxProbability          float64
	MaxSpawnsPerBurst       int
	Table                   SpawnTable
}

// BaseSpawnParams returns the baseline parameters described by cfg.
func BaseSpawnParams(cfg config.SpawnConfig) SpawnParams {
	return SpawnParams{
		TimeBetweenSpawns:       cfg.Interval,
		MinTimeBetweenSpawns:    cfg.MinInterval,
		ProbabilitySpawnAnother: cfg.Probability,
		MaxProbability:          cfg.MaxProbability,
		MaxSpawnsPerBurst:       max(cfg.MaxPerBurst, 1),
		Table:                   NewSpawnTable(cfg.Weights),
	}
}

// Interval returns the time between bursts, never below the floor.
func (p SpawnParams) Interval() float64 {
	return max(p.TimeBetweenSpawns, p.MinTimeBetweenSpawns)
}
