// internal/system/combat.go
package system

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/types"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update проходит по башням в порядке постройки. deltaTime в миллисекундах.
func (s *CombatSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.TowerIDs() {
		tower, hasTower := s.ecs.Towers[id]
		combat, hasCombat := s.ecs.Combats[id]
		pos, hasPos := s.ecs.Positions[id]
		if !hasTower || !hasCombat || !hasPos {
			continue
		}

		if tower.Weapon == defs.WeaponBeam {
			beam, ok := s.ecs.Beams[id]
			if !ok {
				beam = &component.Beam{}
				s.ecs.Beams[id] = beam
			}
			s.updateBeam(id, tower, combat, beam, pos.Vec(), deltaTime)
			continue
		}

		if s.ecs.GameTime < combat.NextShotAt {
			continue
		}
		target := FindTarget(s.ecs, pos.Vec(), combat.Range, tower.TargetMode)
		if target == 0 {
			continue
		}
		combat.NextShotAt = s.ecs.GameTime + combat.FireMs

		switch tower.Weapon {
		case defs.WeaponHitScan:
			s.fireHitScan(id, combat, pos.Vec(), target)
		default:
			s.fireProjectile(id, combat, pos.Vec(), target)
		}
	}
}

// fireHitScan наносит урон мгновенно; трассер рисует подписчик ShotFired.
func (s *CombatSystem) fireHitScan(towerID types.EntityID, combat *component.Combat, from types.Vec2, target types.EntityID) {
	enemy := s.ecs.Enemies[target]
	to := s.ecs.Positions[target].Vec()
	damage := ArmorDamage(combat.Damage, enemy.Armor)

	s.eventDispatcher.Dispatch(event.Event{Type: event.ShotFired, Data: event.ShotData{
		TowerID:  towerID,
		TargetID: target,
		From:     from,
		To:       to,
		Damage:   damage,
	}})
	ApplyDamage(s.ecs, s.eventDispatcher, towerID, target, damage)
}

func (s *CombatSystem) fireProjectile(towerID types.EntityID, combat *component.Combat, from types.Vec2, target types.EntityID) {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: from.X, Y: from.Y}
	s.ecs.Projectiles[id] = &component.Projectile{
		SourceID:   towerID,
		TargetID:   target,
		Speed:      config.ProjectileSpeed,
		Damage:     combat.Damage,
		HitRadius:  config.ProjectileHitRadius,
		SpawnedAt:  s.ecs.GameTime,
		LifetimeMs: config.ProjectileLifetimeMs,
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileSpawn, Data: event.EntityData{ID: id, DefID: s.ecs.Towers[towerID].DefID, Pos: from}})
}
