// internal/component/projectile.go
package component

import "go-tower-sim/internal/types"

// Projectile представляет летящий самонаводящийся снаряд.
type Projectile struct {
	SourceID   types.EntityID
	TargetID   types.EntityID // слабая ссылка: цель может исчезнуть в полёте
	Speed      float64
	Damage     int
	HitRadius  float64
	SpawnedAt  float64
	LifetimeMs float64
}

// Expired reports whether the projectile outlived its lifetime at time now.
func (p *Projectile) Expired(now float64) bool {
	return now-p.SpawnedAt >= p.LifetimeMs
}
