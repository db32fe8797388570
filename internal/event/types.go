// internal/event/types.go
package event

import "go-tower-sim/internal/types"

const (
	EnemySpawned    EventType = "EnemySpawned" // создать визуал врага
	EnemyKilled     EventType = "EnemyKilled"  // враг убит башней
	EnemyRemoved    EventType = "EnemyRemoved" // визуал врага больше не нужен
	LifeLost        EventType = "LifeLost"     // враг дошёл до конца пути
	TowerPlaced     EventType = "TowerPlaced"  // Башня построена
	TowerUpgraded   EventType = "TowerUpgraded"
	TowerRemoved    EventType = "TowerRemoved" // башня продана
	ShotFired       EventType = "ShotFired"    // мгновенный выстрел, для трассера
	ProjectileSpawn EventType = "ProjectileSpawn"
	ProjectileGone  EventType = "ProjectileGone"
	WaveStarted     EventType = "WaveStarted"
	WaveCleared     EventType = "WaveCleared" // Волна закончилась
	GameOver        EventType = "GameOver"
)

// EnemyKilledData is the payload of EnemyKilled.
type EnemyKilledData struct {
	EnemyID   types.EntityID
	TowerID   types.EntityID
	DefID     string
	Reward    int
	ScoreGain int
	IsSwarm   bool
	Pos       types.Vec2
}

// EntityData is the payload of spawn/removal events for visual collaborators.
type EntityData struct {
	ID    types.EntityID
	DefID string
	Pos   types.Vec2
}

// LifeLostData is the payload of LifeLost.
type LifeLostData struct {
	EnemyID        types.EntityID
	LivesRemaining int
}

// ShotData is the payload of ShotFired.
type ShotData struct {
	TowerID  types.EntityID
	TargetID types.EntityID
	From, To types.Vec2
	Damage   int
}

// TowerData is the payload of tower lifecycle events.
type TowerData struct {
	ID     types.EntityID
	DefID  string
	Tier   int
	Pos    types.Vec2
	Amount int // цена постройки/улучшения или возврат при продаже
}

// WaveData is the payload of WaveStarted and WaveCleared.
type WaveData struct {
	Wave        int
	BonusMoney  int
	BonusScore  int
	ActiveWaves int
}

// FinalStats is the payload of GameOver.
type FinalStats struct {
	SessionID  string
	Difficulty string
	Score      int
	Kills      int
	Wave       int
	Money      int
	GameTimeMs float64
}

// Outcome returns the stats without the session id, for comparing runs.
func (s FinalStats) Outcome() FinalStats {
	s.SessionID = ""
	return s
}
