package component

import "go-tower-sim/internal/types"

// Tracer — короткая линия мгновенного выстрела. Только для отрисовки.
type Tracer struct {
	From, To types.Vec2
	Timer    float64 // Сколько времени эффект уже активен
	Duration float64 // Общая продолжительность эффекта
}

// KillFlash — вспышка на месте убитого врага.
type KillFlash struct {
	At       types.Vec2
	Swarm    bool
	Timer    float64
	Duration float64
}

// Progress returns how far the effect is through its life, in [0, 1].
func (t Tracer) Progress() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return min(1, t.Timer/t.Duration)
}

// Progress returns how far the effect is through its life, in [0, 1].
func (k KillFlash) Progress() float64 {
	if k.Duration <= 0 {
		return 1
	}
	return min(1, k.Timer/k.Duration)
}
