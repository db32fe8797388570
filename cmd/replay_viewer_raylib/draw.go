package main

import (
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/ui/rlui"
	"go-tower-sim/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func vec(x, y float64) rl.Vector2 {
	return rl.NewVector2(float32(x), float32(y))
}

// drawField рисует снимок мира: сетку, путь, башни, врагов и снаряды.
func drawField(snap entity.Snapshot) {
	grid := rlui.ColorToRL(config.GridColor)
	for x := 0.0; x <= config.ScreenWidth; x += config.GridSize {
		rl.DrawLineV(vec(x, config.TopUIHeight), vec(x, config.ScreenHeight), grid)
	}
	for y := config.TopUIHeight; y <= config.ScreenHeight; y += config.GridSize {
		rl.DrawLineV(vec(0, y), vec(config.ScreenWidth, y), grid)
	}

	pathColor := rlui.ColorToRL(config.PathColor)
	for i := 0; i+1 < len(snap.Path); i++ {
		a, b := snap.Path[i], snap.Path[i+1]
		rl.DrawLineEx(vec(a.X, a.Y), vec(b.X, b.Y), config.PathStrokeWidth*2, pathColor)
	}
	for _, p := range snap.Path {
		rl.DrawCircleV(vec(p.X, p.Y), config.PathStrokeWidth, rlui.ColorToRL(config.WaypointColor))
	}

	beam := rlui.ColorToRL(config.BeamColor)
	for _, t := range snap.Towers {
		if t.BeamTarget != 0 {
			rl.DrawLineEx(vec(t.X, t.Y), vec(t.BeamEnd.X, t.BeamEnd.Y), 3, beam)
		}
		c := rl.LightGray
		scale := 1.0
		if def, ok := defs.LookupTower(t.DefID); ok {
			if tier, ok := def.Tier(t.Tier); ok {
				c = rlui.ColorToRL(render.Tint(tier.Tint))
				scale = tier.Scale
			}
		}
		size := float32(config.TowerDrawSize * scale)
		rl.DrawRectangleV(rl.NewVector2(float32(t.X)-size/2, float32(t.Y)-size/2), rl.NewVector2(size, size), c)
		rl.DrawRectangleLines(int32(float32(t.X)-size/2), int32(float32(t.Y)-size/2), int32(size), int32(size), rl.Black)
	}

	for _, e := range snap.Enemies {
		c := rl.Red
		if def, ok := defs.LookupEnemy(e.DefID); ok {
			c = rlui.ColorToRL(render.Tint(def.Tint))
		}
		r := float32(config.EnemyDrawSize / 2)
		if e.IsSwarm {
			r *= 0.8
		}
		rl.DrawCircleV(vec(e.X, e.Y), r, c)
		if e.Armor > 0 {
			rl.DrawCircleLines(int32(e.X), int32(e.Y), r+2, rlui.ColorToRL(config.ArmorFlashColor))
		}
		if e.MaxHP > 0 && e.HP < e.MaxHP {
			frac := float32(e.HP) / float32(e.MaxHP)
			w := float32(config.EnemyDrawSize)
			rl.DrawRectangleV(rl.NewVector2(float32(e.X)-w/2, float32(e.Y)-r-7), rl.NewVector2(w*frac, 3), rlui.ColorToRL(config.HealthBarColor))
		}
	}

	proj := rlui.ColorToRL(config.ProjectileColor)
	for _, p := range snap.Projectiles {
		rl.DrawCircleV(vec(p.X, p.Y), config.ProjectileRadius/2, proj)
	}
}
