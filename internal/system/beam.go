package system

import (
	"math"
	"slices"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/types"
	"go-tower-sim/internal/utils"
)

// BeamRamp returns the damage multiplier for a lock held lockMs:
// 1 at acquisition, growing linearly to 2.5 at two seconds and capped there.
func BeamRamp(lockMs float64) float64 {
	return 1 + config.BeamRampMaxBonus*utils.Clamp01(lockMs/config.BeamRampFullMs)
}

// BeamDamage returns the damage of the i-th pierced enemy (0-based).
func BeamDamage(base int, ramp float64, i int, armor int) int {
	raw := math.Floor(float64(base) * ramp * math.Pow(config.BeamFalloff, float64(i)))
	return max(1, int(raw)-armor)
}

func (s *CombatSystem) updateBeam(id types.EntityID, tower *component.Tower, combat *component.Combat, beam *component.Beam, from types.Vec2, deltaTime float64) {
	if beam.Locked() && !s.inRange(beam.Target, from, combat.Range) {
		beam.Reset()
	}
	if !beam.Locked() {
		target := FindTarget(s.ecs, from, combat.Range, tower.TargetMode)
		if target == 0 {
			return
		}
		beam.Target = target
	}

	beam.LockMs += deltaTime
	beam.TickAcc += deltaTime
	if combat.FireMs <= 0 {
		return
	}
	for beam.TickAcc >= combat.FireMs {
		beam.TickAcc -= combat.FireMs
		s.beamTick(id, combat, beam, from)
		if !s.ecs.IsEnemyAlive(beam.Target) {
			// захват потерян: следующий кадр ищет новую цель с нулевым разгоном
			beam.Reset()
			return
		}
	}
}

// beamTick прожигает до BeamMaxPierce врагов вдоль луча от башни через цель
// на всю дальность. Захваченная цель всегда первая в списке.
func (s *CombatSystem) beamTick(id types.EntityID, combat *component.Combat, beam *component.Beam, from types.Vec2) {
	target := s.ecs.Positions[beam.Target].Vec()
	dx, dy := target.X-from.X, target.Y-from.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		dx, dy, length = 1, 0, 1
	}
	endX := from.X + dx/length*combat.Range
	endY := from.Y + dy/length*combat.Range
	beam.EndX, beam.EndY = endX, endY

	type hit struct {
		id types.EntityID
		d2 float64
	}
	var hits []hit
	for _, eid := range s.ecs.EnemyIDs() {
		if eid == beam.Target || !s.ecs.IsEnemyAlive(eid) {
			continue
		}
		p := s.ecs.Positions[eid]
		if utils.SegmentCircleHit(from.X, from.Y, endX, endY, p.X, p.Y, config.EnemyHitRadius) {
			hits = append(hits, hit{id: eid, d2: utils.Dist2(from.X, from.Y, p.X, p.Y)})
		}
	}
	slices.SortStableFunc(hits, func(a, b hit) int {
		switch {
		case a.d2 < b.d2:
			return -1
		case a.d2 > b.d2:
			return 1
		}
		return 0
	})

	ordered := make([]types.EntityID, 0, config.BeamMaxPierce)
	ordered = append(ordered, beam.Target)
	for _, h := range hits {
		if len(ordered) >= config.BeamMaxPierce {
			break
		}
		ordered = append(ordered, h.id)
	}

	ramp := BeamRamp(beam.LockMs)
	beam.LastHits = append(beam.LastHits[:0], ordered...)
	for i, eid := range ordered {
		enemy, ok := s.ecs.Enemies[eid]
		if !ok {
			continue
		}
		ApplyDamage(s.ecs, s.eventDispatcher, id, eid, BeamDamage(combat.Damage, ramp, i, enemy.Armor))
	}
}

func (s *CombatSystem) inRange(target types.EntityID, from types.Vec2, r float64) bool {
	if !s.ecs.IsEnemyAlive(target) {
		return false
	}
	p := s.ecs.Positions[target]
	return utils.Dist2(from.X, from.Y, p.X, p.Y) <= r*r
}
