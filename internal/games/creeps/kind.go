// Package creeps implements a top-down survival game: the player dodges
// waves of enemies that stream in from outside the arena, and the longer
// the run lasts the denser and deadlier the waves become.
//
// The package is pure simulation. The platform feeds a movement intent on
// every fixed tick and reads back score, run state and sprites.
package creeps

import (
	"fmt"

	"github.com/vovakirdan/tui-creeps/internal/config"
	"github.com/vovakirdan/tui-creeps/internal/core"
)

// EnemyKind is the closed set of enemy variants.
type EnemyKind int

const (
	KindStandard EnemyKind = iota // Flies straight across the arena
	KindBullet                    // Ballistic projectile fired by cannons
	KindCannon                    // Slow, fires a radial volley of bullets
	KindRocket                    // Homing projectile with a limited lifetime
	KindRocketShip                // Launches rockets at the player

	kindCount
)

// AllKinds lists every kind in canonical order.
var AllKinds = []EnemyKind{KindStandard, KindBullet, KindCannon, KindRocket, KindRocketShip}

// String returns the config key of the kind.
func (k EnemyKind) String() string {
	switch k {
	case KindStandard:
		return config.KindStandard
	case KindBullet:
		return config.KindBullet
	case KindCannon:
		return config.KindCannon
	case KindRocket:
		return config.KindRocket
	case KindRocketShip:
		return config.KindRocketShip
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseEnemyKind resolves a config key.
func ParseEnemyKind(s string) (EnemyKind, bool) {
	for _, k := range AllKinds {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// Profile is the static description of a kind. It is shared by every
// instance and never mutated during a run.
type Profile struct {
	Size       float64
	Speed      float64
	Color      core.Color
	Glyph      rune
	ShootEvery float64
	Volley     int
	Lifetime   float64
	AccelRate  float64
}

// PlayerProfile describes the player's body and movement model.
type PlayerProfile struct {
	Size         float64
	MaxSpeed     float64
	Acceleration float64
	Color        core.Color
	Glyph        rune
}

// Profiles is the closed lookup from kind to profile.
type Profiles [kindCount]Profile

// Of returns the profile for k.
func (p *Profiles) Of(k EnemyKind) Profile {
	if k < 0 || k >= kindCount {
		return p[KindStandard]
	}
	return p[k]
}

func profilesFromConfig(cfg config.CreepsConfig) Profiles {
	var out Profiles
	for _, k := range AllKinds {
		pc := cfg.Profiles[k.String()]
		out[k] = Profile{
			Size:       pc.Size,
			Speed:      pc.Speed,
			Color:      colorOr(pc.Color, core.ColorRed),
			Glyph:      glyphOr(pc.Glyph, '#'),
			ShootEvery: pc.ShootEvery,
			Volley:     pc.Volley,
			Lifetime:   pc.Lifetime,
			AccelRate:  pc.AccelRate,
		}
	}
	return out
}

func playerFromConfig(cfg config.PlayerConfig) PlayerProfile {
	return PlayerProfile{
		Size:         cfg.Size,
		MaxSpeed:     cfg.MaxSpeed,
		Acceleration: cfg.Acceleration,
		Color:        colorOr(cfg.Color, core.ColorBrightBlue),
		Glyph:        glyphOr(cfg.Glyph, '@'),
	}
}

func colorOr(name string, fallback core.Color) core.Color {
	if c, ok := core.ParseColor(name); ok {
		return c
	}
	return fallback
}

func glyphOr(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
