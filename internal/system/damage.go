package system

import (
	"math"

	"go-tower-sim/internal/config"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/types"
)

// ArmorDamage returns max(1, raw-armor): armor never reduces a hit to zero.
func ArmorDamage(raw, armor int) int {
	return max(1, raw-armor)
}

// ApplyDamage наносит уже рассчитанный урон врагу и, если здоровье упало до нуля,
// разрешает убийство. Возвращает true, если этот вызов убил врага.
// Для исчезнувшей цели ничего не делает, поэтому убийство засчитывается ровно один раз.
func ApplyDamage(ecs *entity.ECS, dispatcher *event.Dispatcher, towerID, enemyID types.EntityID, damage int) bool {
	if !ecs.IsEnemyAlive(enemyID) || damage <= 0 {
		return false
	}
	health := ecs.Healths[enemyID]
	health.Value -= damage
	if health.Value > 0 {
		return false
	}
	health.Value = 0
	resolveKill(ecs, dispatcher, towerID, enemyID)
	return true
}

// KillScore returns the score for a kill: reward + round(weight*10), then the
// difficulty multiplier, rounded.
func KillScore(reward int, scoreWeight, scoreMul float64) int {
	gain := float64(reward) + math.Round(scoreWeight*config.KillScoreWeightFactor)
	return int(math.Round(gain * scoreMul))
}

func resolveKill(ecs *entity.ECS, dispatcher *event.Dispatcher, towerID, enemyID types.EntityID) {
	enemy := ecs.Enemies[enemyID]
	pos := ecs.Positions[enemyID]

	gain := KillScore(enemy.Reward, enemy.ScoreWeight, scoreMul(ecs))
	ecs.Economy.Money += enemy.Reward
	ecs.Economy.Score += gain
	ecs.Economy.Kills++

	data := event.EnemyKilledData{
		EnemyID:   enemyID,
		TowerID:   towerID,
		DefID:     enemy.DefID,
		Reward:    enemy.Reward,
		ScoreGain: gain,
		IsSwarm:   enemy.IsSwarm,
		Pos:       pos.Vec(),
	}
	removed := event.EntityData{ID: enemyID, DefID: enemy.DefID, Pos: pos.Vec()}
	ecs.RemoveEnemy(enemyID)

	dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: data})
	dispatcher.Dispatch(event.Event{Type: event.EnemyRemoved, Data: removed})
}

func scoreMul(ecs *entity.ECS) float64 {
	if ecs.Difficulty.ScoreMul <= 0 {
		return 1
	}
	return ecs.Difficulty.ScoreMul
}
