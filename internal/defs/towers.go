// internal/defs/towers.go
package defs

import (
	"fmt"
	"strings"
)

// WeaponKind defines how a tower resolves its attack.
type WeaponKind string

const (
	WeaponProjectile WeaponKind = "PROJECTILE" // снаряд с временем полёта
	WeaponHitScan    WeaponKind = "HITSCAN"    // мгновенное попадание (снайпер)
	WeaponBeam       WeaponKind = "BEAM"       // непрерывный пробивающий луч
)

// TargetMode — политика выбора цели башней.
type TargetMode int

const (
	TargetClosest TargetMode = iota
	TargetStrongest
	TargetMostArmored
	TargetFirstOnPath
)

// TargetModeCycle is the fixed order used when the player cycles modes.
var TargetModeCycle = []TargetMode{TargetClosest, TargetStrongest, TargetMostArmored, TargetFirstOnPath}

var targetModeNames = map[TargetMode]string{
	TargetClosest:     "closest",
	TargetStrongest:   "strongest",
	TargetMostArmored: "most-armored",
	TargetFirstOnPath: "first-on-path",
}

func (m TargetMode) String() string {
	if name, ok := targetModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("TargetMode(%d)", int(m))
}

// Next returns the mode following m in TargetModeCycle, wrapping around.
func (m TargetMode) Next() TargetMode {
	for i, mode := range TargetModeCycle {
		if mode == m {
			return TargetModeCycle[(i+1)%len(TargetModeCycle)]
		}
	}
	return TargetModeCycle[0]
}

// ParseTargetMode accepts the canonical names plus the short aliases used in data files.
func ParseTargetMode(s string) (TargetMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "closest", "close":
		return TargetClosest, nil
	case "strongest", "strong":
		return TargetStrongest, nil
	case "most-armored", "armored":
		return TargetMostArmored, nil
	case "first-on-path", "first":
		return TargetFirstOnPath, nil
	}
	return TargetClosest, fmt.Errorf("unknown target mode %q", s)
}

func (m TargetMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *TargetMode) UnmarshalText(b []byte) error {
	mode, err := ParseTargetMode(string(b))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// TierSpec — характеристики башни на одном уровне улучшения.
type TierSpec struct {
	Cost   int     `json:"cost"`
	Damage int     `json:"damage"`
	Range  float64 `json:"range"`
	FireMs float64 `json:"fire_ms"`
	Tint   uint32  `json:"tint"`  // только для рендера
	Scale  float64 `json:"scale"` // только для рендера
}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Description       string      `json:"description"`
	Hotkey            string      `json:"hotkey"`
	UnlockWave        int         `json:"unlock_wave"`
	DefaultTargetMode *TargetMode `json:"default_target_mode,omitempty"`
	Weapon            WeaponKind  `json:"weapon"`
	Tiers             []TierSpec  `json:"tiers"`
}

// TargetMode returns the catalog default, or closest when the type has none.
func (d TowerDefinition) TargetMode() TargetMode {
	if d.DefaultTargetMode != nil {
		return *d.DefaultTargetMode
	}
	return TargetClosest
}

// MaxTier returns the number of tiers (tier indices are 1-based).
func (d TowerDefinition) MaxTier() int {
	return len(d.Tiers)
}

// Tier returns the spec for a 1-based tier index.
func (d TowerDefinition) Tier(tier int) (TierSpec, bool) {
	if tier < 1 || tier > len(d.Tiers) {
		return TierSpec{}, false
	}
	return d.Tiers[tier-1], true
}

// UnlockedAt reports whether the type can be placed during the given wave.
func (d TowerDefinition) UnlockedAt(wave int) bool {
	return wave >= d.UnlockWave
}
