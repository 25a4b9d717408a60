package config

import (
	_ "embed"
)

//go:embed defaults/creeps.yaml
var defaultCreepsYAML []byte

// DefaultCreepsConfig returns the built-in Creeps configuration.
// It mirrors defaults/creeps.yaml and is the last fallback of LoadCreeps.
func DefaultCreepsConfig() CreepsConfig {
	return CreepsConfig{
		World: WorldConfig{
			Size:          1000,
			SpawnMargin:   50,
			DespawnMargin: 100,
			SpreadAngle:   0.3,
		},
		Player: PlayerConfig{
			Size:         20,
			MaxSpeed:     200,
			Acceleration: 50,
			Color:        "bright_blue",
			Glyph:        "@",
		},
		Spawn: SpawnConfig{
			Interval:       1.0,
			MinInterval:    0.25,
			Probability:    0.1,
			MaxProbability: 0.6,
			MaxPerBurst:    1,
			Weights: map[string]int{
				KindStandard: 25,
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			ScoreInterval:   1.0,
			ProbabilityStep: 0.005,
			IntervalStep:    0.01,
			BurstEvery:      30,
			WeightEvery: map[string]int{
				KindCannon:     10,
				KindRocketShip: 15,
			},
		},
		Profiles: map[string]ProfileConfig{
			KindStandard: {
				Size:  20,
				Speed: 150,
				Color: "red",
				Glyph: "■",
			},
			KindBullet: {
				Size:  8,
				Speed: 250,
				Color: "orange",
				Glyph: "•",
			},
			KindCannon: {
				Size:       40,
				Speed:      30,
				Color:      "magenta",
				Glyph:      "◉",
				ShootEvery: 2.5,
				Volley:     12,
			},
			KindRocket: {
				Size:      12,
				Speed:     220,
				Color:     "yellow",
				Glyph:     "▲",
				Lifetime:  5,
				AccelRate: 2,
			},
			KindRocketShip: {
				Size:       30,
				Speed:      60,
				Color:      "cyan",
				Glyph:      "◆",
				ShootEvery: 4,
			},
		},
	}
}

// ClassicCreepsConfig returns the original single-enemy rule set:
// standard enemies only, one per second, no escalation.
func ClassicCreepsConfig() CreepsConfig {
	cfg := DefaultCreepsConfig()
	ApplyClassic(&cfg)
	return cfg
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultCreepsYAML
}
