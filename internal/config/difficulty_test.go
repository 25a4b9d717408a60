package config

import "testing"

func TestDifficultyMonotonic(t *testing.T) {
	cfg := DefaultCreepsConfig()
	d := NewDifficultyManager(cfg.Spawn, cfg.Difficulty)

	prevP := d.Probability(0)
	prevI := d.Interval(0)
	prevN := d.MaxSpawns(0)

	for score := 1; score <= 500; score++ {
		p, iv, n := d.Probability(score), d.Interval(score), d.MaxSpawns(score)
		if p < prevP {
			t.Fatalf("probability decreased at score %d: %v -> %v", score, prevP, p)
		}
		if iv > prevI {
			t.Fatalf("interval increased at score %d: %v -> %v", score, prevI, iv)
		}
		if n < prevN {
			t.Fatalf("max spawns decreased at score %d: %d -> %d", score, prevN, n)
		}
		if p > cfg.Spawn.MaxProbability {
			t.Fatalf("probability %v above ceiling at score %d", p, score)
		}
		if iv < cfg.Spawn.MinInterval {
			t.Fatalf("interval %v below floor at score %d", iv, score)
		}
		prevP, prevI, prevN = p, iv, n
	}
}

func TestDifficultySaturates(t *testing.T) {
	cfg := DefaultCreepsConfig()
	d := NewDifficultyManager(cfg.Spawn, cfg.Difficulty)

	if got := d.Interval(10000); got != cfg.Spawn.MinInterval {
		t.Errorf("Interval(10000) = %v, expected floor %v", got, cfg.Spawn.MinInterval)
	}
	if got := d.Probability(10000); got != cfg.Spawn.MaxProbability {
		t.Errorf("Probability(10000) = %v, expected ceiling %v", got, cfg.Spawn.MaxProbability)
	}
}

func TestDifficultyStepFunctions(t *testing.T) {
	cfg := DefaultCreepsConfig()
	d := NewDifficultyManager(cfg.Spawn, cfg.Difficulty)

	tests := []struct {
		score               int
		spawns, cannon, shp int
	}{
		{0, 1, 0, 0},
		{9, 1, 0, 0},
		{10, 1, 1, 0},
		{15, 1, 1, 1},
		{29, 1, 2, 1},
		{30, 2, 3, 2},
		{95, 4, 9, 6},
	}

	for _, tc := range tests {
		if got := d.MaxSpawns(tc.score); got != tc.spawns {
			t.Errorf("MaxSpawns(%d) = %d, expected %d", tc.score, got, tc.spawns)
		}
		if got, _ := d.Weight(KindCannon, tc.score); got != tc.cannon {
			t.Errorf("Weight(cannon, %d) = %d, expected %d", tc.score, got, tc.cannon)
		}
		if got, _ := d.Weight(KindRocketShip, tc.score); got != tc.shp {
			t.Errorf("Weight(rocket_ship, %d) = %d, expected %d", tc.score, got, tc.shp)
		}
	}

	if _, ok := d.Weight(KindStandard, 100); ok {
		t.Error("standard weight must not scale with score")
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DefaultCreepsConfig()
	d := NewDifficultyManager(cfg.Spawn, cfg.Difficulty)
	d.SetEnabled(false)

	if d.Probability(1000) != cfg.Spawn.Probability {
		t.Error("disabled manager should keep the base probability")
	}
	if d.Interval(1000) != cfg.Spawn.Interval {
		t.Error("disabled manager should keep the base interval")
	}
	if d.MaxSpawns(1000) != cfg.Spawn.MaxPerBurst {
		t.Error("disabled manager should keep the base burst cap")
	}
	if _, ok := d.Weight(KindCannon, 1000); ok {
		t.Error("disabled manager should not scale weights")
	}
}

func TestScalingKindsCanonicalOrder(t *testing.T) {
	cfg := DefaultCreepsConfig()
	d := NewDifficultyManager(cfg.Spawn, cfg.Difficulty)

	got := d.ScalingKinds()
	if len(got) != 2 || got[0] != KindCannon || got[1] != KindRocketShip {
		t.Errorf("ScalingKinds() = %v, expected [cannon rocket_ship]", got)
	}
}
