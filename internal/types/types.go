// internal/types/types.go
package types

// EntityID — стабильный дескриптор сущности. Ноль никогда не выдаётся.
type EntityID uint64

// Vec2 is a point or direction on the playfield, in pixels.
type Vec2 struct {
	X, Y float64
}
