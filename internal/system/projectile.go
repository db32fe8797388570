// internal/system/projectile.go
package system

import (
	"math"

	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/types"
	"go-tower-sim/internal/utils"
)

// ProjectileSystem двигает самонаводящиеся снаряды и проверяет попадания.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update двигает снаряды. deltaTime в миллисекундах.
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.ProjectileIDs() {
		proj := s.ecs.Projectiles[id]
		pos, ok := s.ecs.Positions[id]
		if !ok {
			s.remove(id)
			continue
		}
		// цель исчезла в полёте или время жизни вышло: снаряд пропадает без эффекта
		if !s.ecs.IsEnemyAlive(proj.TargetID) || proj.Expired(s.ecs.GameTime) {
			s.remove(id)
			continue
		}

		target := s.ecs.Positions[proj.TargetID]
		dx, dy := target.X-pos.X, target.Y-pos.Y
		dist := math.Hypot(dx, dy)
		step := proj.Speed * deltaTime / 1000

		prevX, prevY := pos.X, pos.Y
		if dist > 0 {
			pos.X += dx / dist * step
			pos.Y += dy / dist * step
		}

		r := proj.HitRadius
		hit := utils.SegmentCircleHit(prevX, prevY, pos.X, pos.Y, target.X, target.Y, r) ||
			utils.Dist2(pos.X, pos.Y, target.X, target.Y) <= r*r
		if !hit {
			continue
		}
		enemy := s.ecs.Enemies[proj.TargetID]
		ApplyDamage(s.ecs, s.eventDispatcher, proj.SourceID, proj.TargetID, ArmorDamage(proj.Damage, enemy.Armor))
		s.remove(id)
	}
}

func (s *ProjectileSystem) remove(id types.EntityID) {
	var p types.Vec2
	if pos, ok := s.ecs.Positions[id]; ok {
		p = pos.Vec()
	}
	s.ecs.RemoveProjectile(id)
	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileGone, Data: event.EntityData{ID: id, Pos: p}})
}
