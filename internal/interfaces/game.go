package interfaces

import (
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/types"
)

// Game — командная поверхность сессии для хостов и бота.
type Game interface {
	Snapshot() entity.Snapshot
	CheckPlacement(x, y float64, towerType string) (types.Vec2, error)
	PlaceTower(x, y float64, towerType string) (types.EntityID, bool)
	UpgradeTower(id types.EntityID) bool
	CanStartWave() bool
	RequestStartWave() bool
	IsGameOver() bool
}
