// internal/system/movement.go
package system

import (
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/types"
	"go-tower-sim/internal/utils"
)

// MovementSystem ведёт врагов по пути и снимает жизни за дошедших до конца.
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update двигает врагов. deltaTime в миллисекундах.
func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.EnemyIDs() {
		if !s.ecs.IsEnemyAlive(id) {
			continue
		}
		path := s.ecs.Paths[id]
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		if path == nil || pos == nil || vel == nil {
			continue
		}

		if path.Finished() {
			s.leak(id)
			continue
		}

		a := path.Waypoints[path.CurrentIndex]
		b := path.Waypoints[path.CurrentIndex+1]
		segLen := utils.Dist(a.X, a.Y, b.X, b.Y)
		move := vel.Speed * deltaTime / 1000
		if segLen == 0 {
			pos.X, pos.Y = b.X, b.Y
			path.CurrentIndex++
			continue
		}

		// направление берётся вдоль отрезка, а не на текущую позицию
		ux, uy := (b.X-a.X)/segLen, (b.Y-a.Y)/segLen
		remaining := utils.Dist(pos.X, pos.Y, b.X, b.Y)
		pos.X += ux * move
		pos.Y += uy * move

		snap := config.WaypointSnapRadius
		if move >= remaining || utils.Dist2(pos.X, pos.Y, b.X, b.Y) < snap*snap {
			pos.X, pos.Y = b.X, b.Y
			path.CurrentIndex++
		}
	}
}

// leak убирает врага, дошедшего до последней точки, и отнимает жизнь.
func (s *MovementSystem) leak(id types.EntityID) {
	enemy := s.ecs.Enemies[id]
	pos := s.ecs.Positions[id].Vec()
	s.ecs.RemoveEnemy(id)
	s.ecs.Economy.Lives = max(0, s.ecs.Economy.Lives-1)

	s.eventDispatcher.Dispatch(event.Event{Type: event.LifeLost, Data: event.LifeLostData{
		EnemyID:        id,
		LivesRemaining: s.ecs.Economy.Lives,
	}})
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyRemoved, Data: event.EntityData{ID: id, DefID: enemy.DefID, Pos: pos}})
}
