// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// Enemy kind keys used in YAML profiles and weight tables.
const (
	KindStandard   = "standard"
	KindBullet     = "bullet"
	KindCannon     = "cannon"
	KindRocket     = "rocket"
	KindRocketShip = "rocket_ship"
)

// KnownKinds lists every enemy kind key in canonical order.
var KnownKinds = []string{KindStandard, KindBullet, KindCannon, KindRocket, KindRocketShip}

// CreepsConfig contains all configuration for the Creeps survival game.
type CreepsConfig struct {
	World      WorldConfig              `yaml:"world"`
	Player     PlayerConfig             `yaml:"player"`
	Spawn      SpawnConfig              `yaml:"spawn"`
	Difficulty DifficultyConfig         `yaml:"difficulty"`
	Profiles   map[string]ProfileConfig `yaml:"profiles"`
}

// WorldConfig defines the arena geometry in world units.
// The arena is a square centered on the origin.
type WorldConfig struct {
	Size          float64 `yaml:"size"`           // Full side length of the playable square
	SpawnMargin   float64 `yaml:"spawn_margin"`   // Spawn radius = size/2 + spawn_margin
	DespawnMargin float64 `yaml:"despawn_margin"` // Despawn radius = spawn radius + despawn_margin
	SpreadAngle   float64 `yaml:"spread_angle"`   // Max deviation (radians) from a centripetal heading
}

// HalfSize returns half the arena side length.
func (w WorldConfig) HalfSize() float64 {
	return w.Size / 2
}

// SpawnRadius returns the distance from the origin at which enemies appear.
func (w WorldConfig) SpawnRadius() float64 {
	return w.HalfSize() + w.SpawnMargin
}

// DespawnRadius returns the distance beyond which enemies are removed.
func (w WorldConfig) DespawnRadius() float64 {
	return w.SpawnRadius() + w.DespawnMargin
}

// PlayerConfig defines the player's movement model and look.
type PlayerConfig struct {
	Size         float64 `yaml:"size"`
	MaxSpeed     float64 `yaml:"max_speed"`
	Acceleration float64 `yaml:"acceleration"` // Responsiveness of the velocity smoothing
	Color        string  `yaml:"color"`
	Glyph        string  `yaml:"glyph"`
}

// SpawnConfig defines the spawn director baseline restored on every new run.
type SpawnConfig struct {
	Interval       float64        `yaml:"interval"`        // Seconds between bursts
	MinInterval    float64        `yaml:"min_interval"`    // Floor for the interval
	Probability    float64        `yaml:"probability"`     // Chance to spawn another enemy in a burst
	MaxProbability float64        `yaml:"max_probability"` // Ceiling for the chance above
	MaxPerBurst    int            `yaml:"max_per_burst"`   // Hard cap on a burst at score 0
	Weights        map[string]int `yaml:"weights"`         // Base weighted table
}

// DifficultyConfig defines how spawn parameters ratchet up as the score rises.
type DifficultyConfig struct {
	Enabled         bool           `yaml:"enabled"`
	ScoreInterval   float64        `yaml:"score_interval"`   // Seconds per score point
	ProbabilityStep float64        `yaml:"probability_step"` // Added per score point
	IntervalStep    float64        `yaml:"interval_step"`    // Seconds removed per score point
	BurstEvery      int            `yaml:"burst_every"`      // Score points per extra burst slot
	WeightEvery     map[string]int `yaml:"weight_every"`     // Kind weight = score / n
}

// ProfileConfig is the static look and motion profile of an enemy kind.
type ProfileConfig struct {
	Size       float64 `yaml:"size"`
	Speed      float64 `yaml:"speed"`
	Color      string  `yaml:"color"`
	Glyph      string  `yaml:"glyph"`
	ShootEvery float64 `yaml:"shoot_every,omitempty"` // Seconds between volleys or launches
	Volley     int     `yaml:"volley,omitempty"`      // Bullets per volley
	Lifetime   float64 `yaml:"lifetime,omitempty"`    // Seconds before a homing projectile expires
	AccelRate  float64 `yaml:"accel_rate,omitempty"`  // Steering responsiveness of homing projectiles
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string onto a preset. Empty and unknown strings
// return "" which means "use the config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
