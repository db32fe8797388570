package system

import (
	"math"

	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/types"
	"go-tower-sim/internal/utils"
)

// FindTarget выбирает врага в радиусе rangeRadius от from по политике mode.
// Враги перебираются в порядке появления, при равенстве побеждает первый.
// Возвращает 0, если в радиусе никого нет. Состояние не меняет.
func FindTarget(ecs *entity.ECS, from types.Vec2, rangeRadius float64, mode defs.TargetMode) types.EntityID {
	r2 := rangeRadius * rangeRadius

	var best types.EntityID
	bestMetric := math.Inf(-1)
	var closest types.EntityID
	closestD := math.Inf(1)
	bestArmor := 0

	for _, id := range ecs.EnemyIDs() {
		if !ecs.IsEnemyAlive(id) {
			continue
		}
		pos := ecs.Positions[id]
		d := utils.Dist2(from.X, from.Y, pos.X, pos.Y)
		if d > r2 {
			continue
		}
		if d < closestD {
			closestD = d
			closest = id
		}

		switch mode {
		case defs.TargetClosest:
			// closest уже посчитан выше
		case defs.TargetStrongest:
			if m := float64(ecs.Healths[id].Value); m > bestMetric {
				bestMetric = m
				best = id
			}
		case defs.TargetMostArmored:
			armor := ecs.Enemies[id].Armor
			if armor <= 0 {
				continue
			}
			// больше брони лучше; при равной броне ближе лучше
			if armor > bestArmor || (armor == bestArmor && -d > bestMetric) {
				bestArmor = armor
				bestMetric = -d
				best = id
			}
		case defs.TargetFirstOnPath:
			if m := ProgressScore(ecs, id); m > bestMetric {
				bestMetric = m
				best = id
			}
		default:
			panic("system: unhandled target mode " + mode.String())
		}
	}

	if mode == defs.TargetClosest || best == 0 {
		// most-armored без бронированных врагов откатывается к ближайшему
		return closest
	}
	return best
}

// ProgressScore is monotonic in distance travelled along the path:
// segmentIndex*ProgressSegmentW - distance to the next waypoint.
func ProgressScore(ecs *entity.ECS, id types.EntityID) float64 {
	path, ok := ecs.Paths[id]
	pos, hasPos := ecs.Positions[id]
	if !ok || !hasPos || len(path.Waypoints) == 0 {
		return math.Inf(-1)
	}
	next := path.Next()
	return float64(path.CurrentIndex)*config.ProgressSegmentW - utils.Dist(pos.X, pos.Y, next.X, next.Y)
}
