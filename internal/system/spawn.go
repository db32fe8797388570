package system

import (
	"log/slog"
	"math"
	"slices"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/types"
)

// EnemyStats — характеристики врага после масштабирования по волне и сложности.
type EnemyStats struct {
	HP     int
	Speed  float64
	Reward int
	Armor  int
}

// ScaleEnemy applies the wave and difficulty multipliers:
// hp = max(1, floor(baseHp*(1+(w-1)*scaleHp)*hpMul)),
// speed = floor(baseSpeed*(1+(w-1)*scaleSpeed)*spMul),
// reward = max(1, floor(reward*rewardMul)).
func ScaleEnemy(def defs.EnemyDefinition, wave int, d defs.Difficulty) EnemyStats {
	hp := math.Floor(float64(def.BaseHP) * def.HPScale(wave) * d.EnemyHPMul)
	speed := math.Floor(def.BaseSpeed * def.SpeedScale(wave) * d.EnemySpeedMul)
	reward := math.Floor(float64(def.Reward) * d.EnemyRewardMul)
	return EnemyStats{
		HP:     max(1, int(hp)),
		Speed:  speed,
		Reward: max(1, int(reward)),
		Armor:  def.Armor,
	}
}

// SpawnEnemy создаёт врага в первой точке пути. Неизвестный тип заменяется бегуном.
func SpawnEnemy(ecs *entity.ECS, dispatcher *event.Dispatcher, defID string, wave int, swarm bool) types.EntityID {
	def, ok := defs.LookupEnemy(defID)
	if !ok {
		slog.Warn("unknown enemy type, spawning runner", "type", defID)
		def, ok = defs.LookupEnemy(defs.EnemyRunner)
		if !ok {
			return 0
		}
	}
	if len(ecs.Path) == 0 {
		return 0
	}
	stats := ScaleEnemy(def, wave, ecs.Difficulty)
	start := ecs.Path[0]

	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	ecs.Velocities[id] = &component.Velocity{Speed: stats.Speed}
	ecs.Paths[id] = &component.Path{Waypoints: slices.Clone(ecs.Path)}
	ecs.Healths[id] = &component.Health{Value: stats.HP, Max: stats.HP}
	ecs.Enemies[id] = &component.Enemy{
		DefID:       def.ID,
		Armor:       stats.Armor,
		Reward:      stats.Reward,
		ScoreWeight: def.ScoreWeight,
		IsSwarm:     swarm,
		Wave:        wave,
	}

	dispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EntityData{ID: id, DefID: def.ID, Pos: start}})
	return id
}
