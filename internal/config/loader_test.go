package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchBuiltins(t *testing.T) {
	var cfg CreepsConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultCreepsConfig()) {
		t.Errorf("embedded YAML and DefaultCreepsConfig() differ:\n%+v\n%+v", cfg, DefaultCreepsConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultCreepsConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if err := ClassicCreepsConfig().Validate(); err != nil {
		t.Fatalf("classic config should validate: %v", err)
	}
}

func TestLoadCreepsCustomPathOverridesKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creeps.yaml")
	data := "world:\n  size: 800\nspawn:\n  interval: 2.0\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCreeps(path)
	if err != nil {
		t.Fatalf("LoadCreeps() failed: %v", err)
	}

	if cfg.World.Size != 800 {
		t.Errorf("world.size = %v, expected 800", cfg.World.Size)
	}
	if cfg.Spawn.Interval != 2.0 {
		t.Errorf("spawn.interval = %v, expected 2.0", cfg.Spawn.Interval)
	}
	// Untouched keys keep their defaults
	if cfg.Player.Size != 20 {
		t.Errorf("player.size = %v, expected default 20", cfg.Player.Size)
	}
	if cfg.Spawn.Weights[KindStandard] != 25 {
		t.Errorf("standard weight = %d, expected default 25", cfg.Spawn.Weights[KindStandard])
	}
}

func TestLoadCreepsWeightTablesReplaceDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creeps.yaml")
	data := "spawn:\n  weights:\n    rocket_ship: 4\ndifficulty:\n  weight_every:\n    cannon: 5\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCreeps(path)
	if err != nil {
		t.Fatalf("LoadCreeps() failed: %v", err)
	}

	if want := map[string]int{KindRocketShip: 4}; !reflect.DeepEqual(cfg.Spawn.Weights, want) {
		t.Errorf("spawn.weights = %v, expected %v", cfg.Spawn.Weights, want)
	}
	if want := map[string]int{KindCannon: 5}; !reflect.DeepEqual(cfg.Difficulty.WeightEvery, want) {
		t.Errorf("difficulty.weight_every = %v, expected %v", cfg.Difficulty.WeightEvery, want)
	}
}

func TestLoadCreepsMissingFile(t *testing.T) {
	_, err := LoadCreeps(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadCreepsRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := "spawn:\n  probability: 1.5\n  weights:\n    dragon: 3\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadCreeps(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "probabilities") || !strings.Contains(msg, "dragon") {
		t.Errorf("validation should report every problem, got: %v", err)
	}
}

func TestValidateIntervalFloor(t *testing.T) {
	cfg := DefaultCreepsConfig()
	cfg.Spawn.MinInterval = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero min_interval must be rejected")
	}
}

func TestApplyCreepsPreset(t *testing.T) {
	base := DefaultCreepsConfig()

	fixed := DefaultCreepsConfig()
	ApplyCreepsPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	easy := DefaultCreepsConfig()
	ApplyCreepsPreset(&easy, DifficultyEasy)
	if easy.Spawn.Interval <= base.Spawn.Interval {
		t.Error("easy preset should lengthen the spawn interval")
	}

	hard := DefaultCreepsConfig()
	ApplyCreepsPreset(&hard, DifficultyHard)
	if hard.Spawn.Interval >= base.Spawn.Interval {
		t.Error("hard preset should shorten the spawn interval")
	}
	if hard.Spawn.Interval < hard.Spawn.MinInterval {
		t.Error("hard preset must respect the interval floor")
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown presets should map to empty")
	}
	if !IsFixedPreset(ParsePreset("fixed")) {
		t.Error("fixed should be recognised as fixed")
	}
}

func TestWorldRadii(t *testing.T) {
	w := DefaultCreepsConfig().World
	if w.SpawnRadius() != 550 {
		t.Errorf("SpawnRadius() = %v, expected 550", w.SpawnRadius())
	}
	if w.DespawnRadius() != 650 {
		t.Errorf("DespawnRadius() = %v, expected 650", w.DespawnRadius())
	}
}
