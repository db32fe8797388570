// internal/ui/rlui/speed_button.go
package rlui

import (
	"image/color"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SpeedButton — кнопка скорости воспроизведения.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []rl.Color
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA) *SpeedButton {
	colors := make([]rl.Color, len(stateColors))
	for i, c := range stateColors {
		colors[i] = ColorToRL(c)
	}
	return &SpeedButton{X: x, Y: y, Size: size, StateColors: colors}
}

func (b *SpeedButton) Draw() {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	triangleSize := b.Size * float32(scale)
	c := b.StateColors[b.CurrentState]

	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	for _, dx := range []float32{0, offset} {
		p1 := rl.NewVector2(b.X-width+dx, b.Y-height/2)
		p2 := rl.NewVector2(b.X-width+dx, b.Y+height/2)
		p3 := rl.NewVector2(b.X+dx, b.Y)
		// raylib ждёт вершины против часовой стрелки
		rl.DrawTriangle(p1, p2, p3, c)
		rl.DrawTriangleLines(p1, p2, p3, rl.White)
	}
}

func (b *SpeedButton) IsClicked(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointCircle(mousePos, rl.NewVector2(b.X, b.Y), b.Size*1.5)
}

// ToggleState переключает состояние и возвращает новый индекс.
func (b *SpeedButton) ToggleState() int {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
	return b.CurrentState
}
