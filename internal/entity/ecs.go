// internal/entity/ecs.go
package entity

import (
	"slices"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/types"
)

// ECS — единственный владелец всего изменяемого состояния симуляции.
// Системы получают его по указателю; внешние коллабораторы видят только снимки.
type ECS struct {
	GameTime    float64 // мс симулированного времени, пауза сюда не попадает
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Paths       map[types.EntityID]*component.Path
	Healths     map[types.EntityID]*component.Health
	Enemies     map[types.EntityID]*component.Enemy
	Towers      map[types.EntityID]*component.Tower
	Combats     map[types.EntityID]*component.Combat
	Beams       map[types.EntityID]*component.Beam
	Projectiles map[types.EntityID]*component.Projectile
	Spawners    []*component.Spawner
	GameState   *component.GameState
	Economy     *component.Economy
	Difficulty  defs.Difficulty
	Path        []types.Vec2
}

func NewECS(difficulty defs.Difficulty, lives int) *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Paths:       make(map[types.EntityID]*component.Path),
		Healths:     make(map[types.EntityID]*component.Health),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Towers:      make(map[types.EntityID]*component.Tower),
		Combats:     make(map[types.EntityID]*component.Combat),
		Beams:       make(map[types.EntityID]*component.Beam),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		GameState: &component.GameState{
			WaveState: component.Intermission,
			Wave:      1,
			NextWave:  1,
		},
		Economy: &component.Economy{
			Money: difficulty.StartingMoney,
			Lives: lives,
		},
		Difficulty: difficulty,
		Path:       slices.Clone(config.Path),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// EnemyIDs returns live enemy ids in spawn order. Iterating a copy keeps
// removals during the loop safe and makes "first encountered" deterministic.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	return sortedIDs(ecs.Enemies)
}

// TowerIDs returns tower ids in placement order.
func (ecs *ECS) TowerIDs() []types.EntityID {
	return sortedIDs(ecs.Towers)
}

// ProjectileIDs returns projectile ids in creation order.
func (ecs *ECS) ProjectileIDs() []types.EntityID {
	return sortedIDs(ecs.Projectiles)
}

// IsEnemyAlive reports whether id still resolves to a live enemy.
func (ecs *ECS) IsEnemyAlive(id types.EntityID) bool {
	if id == 0 {
		return false
	}
	h, ok := ecs.Healths[id]
	_, isEnemy := ecs.Enemies[id]
	return ok && isEnemy && h.Value > 0
}

// RemoveEnemy deletes every component of an enemy.
func (ecs *ECS) RemoveEnemy(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.Enemies, id)
}

// RemoveTower deletes every component of a tower, beam lock included.
func (ecs *ECS) RemoveTower(id types.EntityID) {
	if beam, ok := ecs.Beams[id]; ok {
		beam.Reset()
	}
	delete(ecs.Positions, id)
	delete(ecs.Towers, id)
	delete(ecs.Combats, id)
	delete(ecs.Beams, id)
}

// RemoveProjectile deletes a projectile.
func (ecs *ECS) RemoveProjectile(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Projectiles, id)
}

// TowerAt returns the tower occupying the exact cell centre (x, y).
func (ecs *ECS) TowerAt(x, y float64) (types.EntityID, bool) {
	for _, id := range ecs.TowerIDs() {
		if pos, ok := ecs.Positions[id]; ok && pos.X == x && pos.Y == y {
			return id, true
		}
	}
	return 0, false
}

func sortedIDs[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
