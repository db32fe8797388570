// internal/ui/rlui/lives_indicator.go
package rlui

import (
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	LivesCols          = 5
	LivesCircleRadius  = 6.0
	LivesCircleSpacing = 3.0
)

// LivesIndicator рисует жизни сеткой кружков.
type LivesIndicator struct {
	Position rl.Vector2
}

func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{Position: rl.NewVector2(x, y)}
}

// Draw рисует lives из maxLives; при половине и меньше кружки краснеют.
func (i *LivesIndicator) Draw(lives, maxLives int) {
	startX := i.Position.X
	startY := i.Position.Y
	step := float32(LivesCircleRadius*2 + LivesCircleSpacing)

	fill := rl.SkyBlue
	if lives*2 <= maxLives {
		fill = rl.Red
	}
	for j := 0; j < maxLives; j++ {
		x := startX + float32(j%LivesCols)*step + LivesCircleRadius
		y := startY + float32(j/LivesCols)*step + LivesCircleRadius
		c := rl.Black
		if j < lives {
			c = fill
		}
		rl.DrawCircle(int32(x), int32(y), LivesCircleRadius, c)
		rl.DrawCircleLines(int32(x), int32(y), LivesCircleRadius, rl.White)
	}

	label := strconv.Itoa(lives) + "/" + strconv.Itoa(maxLives)
	rl.DrawText(label, int32(startX+LivesCols*step+8), int32(startY), 16, rl.White)
}
