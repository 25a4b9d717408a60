package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// LoadCreeps loads the Creeps configuration.
// Search order: customPath -> ~/.arcade/configs/creeps.yaml -> ./configs/creeps.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names.
func LoadCreeps(customPath string) (CreepsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultCreepsConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseCreeps(data)
		if err != nil {
			return DefaultCreepsConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("creeps.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseCreeps(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/creeps.yaml"); err == nil {
		if cfg, err := parseCreeps(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseCreeps(defaultCreepsYAML)
	if err != nil {
		return DefaultCreepsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// weightTables holds the weight maps an override file sets, if any.
type weightTables struct {
	Spawn struct {
		Weights map[string]int `yaml:"weights"`
	} `yaml:"spawn"`
	Difficulty struct {
		WeightEvery map[string]int `yaml:"weight_every"`
	} `yaml:"difficulty"`
}

// parseCreeps decodes YAML over the built-in defaults and validates the result.
// Scalars override single keys; a weight table given in the file replaces the
// default table instead of merging into it.
func parseCreeps(data []byte) (CreepsConfig, error) {
	cfg := DefaultCreepsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	var tables weightTables
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return cfg, err
	}
	if tables.Spawn.Weights != nil {
		cfg.Spawn.Weights = tables.Spawn.Weights
	}
	if tables.Difficulty.WeightEvery != nil {
		cfg.Difficulty.WeightEvery = tables.Difficulty.WeightEvery
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate reports every inconsistent field at once.
func (c CreepsConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.World.Size <= 0 {
		fail("world.size must be positive, got %v", c.World.Size)
	}
	if c.World.SpawnMargin < 0 || c.World.DespawnMargin < 0 {
		fail("world margins must not be negative")
	}
	if c.Player.Size <= 0 {
		fail("player.size must be positive, got %v", c.Player.Size)
	}
	if c.Player.MaxSpeed < 0 || c.Player.Acceleration < 0 {
		fail("player speed and acceleration must not be negative")
	}
	if c.Spawn.MinInterval <= 0 {
		fail("spawn.min_interval must be positive, got %v", c.Spawn.MinInterval)
	}
	if c.Spawn.Interval < c.Spawn.MinInterval {
		fail("spawn.interval %v is below spawn.min_interval %v", c.Spawn.Interval, c.Spawn.MinInterval)
	}
	if !inUnit(c.Spawn.Probability) || !inUnit(c.Spawn.MaxProbability) {
		fail("spawn probabilities must be within [0, 1]")
	}
	if c.Spawn.Probability > c.Spawn.MaxProbability {
		fail("spawn.probability %v exceeds spawn.max_probability %v", c.Spawn.Probability, c.Spawn.MaxProbability)
	}
	if c.Spawn.MaxPerBurst < 1 {
		fail("spawn.max_per_burst must be at least 1, got %d", c.Spawn.MaxPerBurst)
	}
	for kind, w := range c.Spawn.Weights {
		if !slices.Contains(KnownKinds, kind) {
			fail("spawn.weights: unknown kind %q", kind)
		}
		if w < 0 {
			fail("spawn.weights.%s must not be negative, got %d", kind, w)
		}
	}
	if c.Difficulty.ScoreInterval <= 0 {
		fail("difficulty.score_interval must be positive, got %v", c.Difficulty.ScoreInterval)
	}
	if c.Difficulty.ProbabilityStep < 0 || c.Difficulty.IntervalStep < 0 {
		fail("difficulty steps must not be negative")
	}
	if c.Difficulty.BurstEvery < 1 {
		fail("difficulty.burst_every must be at least 1, got %d", c.Difficulty.BurstEvery)
	}
	for kind, n := range c.Difficulty.WeightEvery {
		if !slices.Contains(KnownKinds, kind) {
			fail("difficulty.weight_every: unknown kind %q", kind)
		}
		if n < 1 {
			fail("difficulty.weight_every.%s must be at least 1, got %d", kind, n)
		}
	}
	for _, kind := range KnownKinds {
		p, ok := c.Profiles[kind]
		if !ok {
			fail("profiles.%s is missing", kind)
			continue
		}
		if p.Size <= 0 || p.Speed < 0 {
			fail("profiles.%s needs a positive size and a non-negative speed", kind)
		}
		switch kind {
		case KindCannon, KindRocketShip:
			if p.ShootEvery <= 0 {
				fail("profiles.%s.shoot_every must be positive, got %v", kind, p.ShootEvery)
			}
		case KindRocket:
			if p.Lifetime <= 0 {
				fail("profiles.%s.lifetime must be positive, got %v", kind, p.Lifetime)
			}
		}
		if kind == KindCannon && p.Volley < 1 {
			fail("profiles.%s.volley must be at least 1, got %d", kind, p.Volley)
		}
	}
	for kind := range c.Profiles {
		if !slices.Contains(KnownKinds, kind) {
			fail("profiles: unknown kind %q", kind)
		}
	}

	return errors.Join(errs...)
}

func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}

// ApplyCreepsPreset modifies the config based on a difficulty preset.
func ApplyCreepsPreset(cfg *CreepsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Spawn.Interval *= 1.25
		cfg.Difficulty.ProbabilityStep /= 2
		cfg.Difficulty.IntervalStep /= 2
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Spawn.Interval = max(cfg.Spawn.MinInterval, cfg.Spawn.Interval*0.75)
		cfg.Spawn.MaxProbability = min(1, cfg.Spawn.MaxProbability+0.15)
		cfg.Difficulty.ProbabilityStep *= 1.5
		cfg.Difficulty.IntervalStep *= 1.5
	}
}

// ApplyClassic reduces the config to the original rule set: a single
// standard enemy every second and no escalation.
func ApplyClassic(cfg *CreepsConfig) {
	cfg.Difficulty.Enabled = false
	cfg.Spawn.Interval = 1.0
	cfg.Spawn.MinInterval = min(cfg.Spawn.MinInterval, 1.0)
	cfg.Spawn.Probability = 0
	cfg.Spawn.MaxPerBurst = 1
	cfg.Spawn.Weights = map[string]int{KindStandard: 25}
}
