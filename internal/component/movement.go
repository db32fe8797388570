// component/movement.go
package component

import "go-tower-sim/internal/types"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Vec returns the position as a types.Vec2.
func (p Position) Vec() types.Vec2 {
	return types.Vec2{X: p.X, Y: p.Y}
}

// Velocity — компонент скорости (пикселей в секунду)
type Velocity struct {
	Speed float64
}

// Path — компонент пути. CurrentIndex is the index of the last waypoint
// reached, so the enemy is travelling along segment CurrentIndex.
type Path struct {
	Waypoints    []types.Vec2
	CurrentIndex int
}

// Next returns the waypoint the entity is heading for, clamped to the last one.
func (p *Path) Next() types.Vec2 {
	return p.Waypoints[min(p.CurrentIndex+1, len(p.Waypoints)-1)]
}

// Finished reports whether the last waypoint has been reached.
func (p *Path) Finished() bool {
	return p.CurrentIndex >= len(p.Waypoints)-1
}
