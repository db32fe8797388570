// internal/system/render.go
package system

import (
	"image/color"
	"math"

	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/types"
	"go-tower-sim/internal/utils"
	"go-tower-sim/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует снимок мира и эффекты
type RenderSystem struct {
	effects    *VisualEffectSystem
	background *ebiten.Image
}

func NewRenderSystem(effects *VisualEffectSystem) *RenderSystem {
	return &RenderSystem{effects: effects}
}

// Draw рисует поле, путь, башни, врагов, снаряды и эффекты.
func (s *RenderSystem) Draw(screen *ebiten.Image, snap entity.Snapshot, selected types.EntityID) {
	if s.background == nil {
		s.background = renderBackground(snap.Path)
	}
	screen.DrawImage(s.background, nil)

	for _, t := range snap.Towers {
		if t.ID == selected {
			vector.StrokeCircle(screen, float32(t.X), float32(t.Y), float32(t.Range), 1.5, config.RangeRingColor, true)
		}
		if t.BeamTarget != 0 {
			// луч толще по мере разгона
			w := float32(2 + 3*(BeamRamp(t.BeamRampMs)-1)/config.BeamRampMaxBonus)
			vector.StrokeLine(screen, float32(t.X), float32(t.Y), float32(t.BeamEnd.X), float32(t.BeamEnd.Y), w, config.BeamColor, true)
		}
		drawTower(screen, t)
	}

	for _, e := range snap.Enemies {
		drawEnemy(screen, e)
	}

	for _, p := range snap.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), config.ProjectileRadius/2, config.ProjectileColor, true)
	}

	if s.effects == nil {
		return
	}
	for _, tr := range s.effects.Tracers() {
		c := render.WithAlpha(config.TracerColor, uint8(float64(config.TracerColor.A)*(1-tr.Progress())))
		vector.StrokeLine(screen, float32(tr.From.X), float32(tr.From.Y), float32(tr.To.X), float32(tr.To.Y), 2, c, true)
	}
	for _, f := range s.effects.Flashes() {
		half := float32(config.EnemyDrawSize / 2)
		r := utils.Lerp(half, half*2, float32(f.Progress()))
		c := render.WithAlpha(color.RGBA{255, 255, 255, 255}, uint8(200*(1-f.Progress())))
		vector.StrokeCircle(screen, float32(f.At.X), float32(f.At.Y), r, 2, c, true)
	}
}

// renderBackground рисует сетку и путь один раз.
func renderBackground(path []types.Vec2) *ebiten.Image {
	img := ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	img.Fill(config.BackgroundColor)

	for x := 0.0; x <= config.ScreenWidth; x += config.GridSize {
		vector.StrokeLine(img, float32(x), config.TopUIHeight, float32(x), config.ScreenHeight, 1, config.GridColor, false)
	}
	for y := config.TopUIHeight; y <= config.ScreenHeight; y += config.GridSize {
		vector.StrokeLine(img, 0, float32(y), config.ScreenWidth, float32(y), 1, config.GridColor, false)
	}

	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		vector.StrokeLine(img, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), config.PathStrokeWidth*2, config.PathColor, true)
	}
	for _, p := range path {
		vector.DrawFilledCircle(img, float32(p.X), float32(p.Y), config.PathStrokeWidth, config.WaypointColor, true)
	}
	return img
}

func drawTower(screen *ebiten.Image, t entity.TowerView) {
	def, ok := defs.LookupTower(t.DefID)
	base := color.RGBA{200, 200, 200, 255}
	scale := 1.0
	if ok {
		if tier, ok := def.Tier(t.Tier); ok {
			base = render.Tint(tier.Tint)
			scale = tier.Scale
		}
	}
	size := float32(config.TowerDrawSize * scale)
	x, y := float32(t.X)-size/2, float32(t.Y)-size/2
	vector.DrawFilledRect(screen, x, y, size, size, render.DarkenColor(base), true)
	vector.DrawFilledRect(screen, x+3, y+3, size-6, size-6, base, true)
	// точки уровня
	for i := 0; i < t.Tier; i++ {
		vector.DrawFilledCircle(screen, x+6+float32(i)*7, y+size+4, 2, config.TextLightColor, true)
	}
}

func drawEnemy(screen *ebiten.Image, e entity.EnemyView) {
	def, ok := defs.LookupEnemy(e.DefID)
	c := color.RGBA{255, 77, 109, 255}
	if ok {
		c = render.Tint(def.Tint)
	}
	r := float32(config.EnemyDrawSize / 2)
	if e.IsSwarm {
		r *= 0.8
	}
	vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), r, c, true)
	if e.Armor > 0 {
		vector.StrokeCircle(screen, float32(e.X), float32(e.Y), r+2, 2, config.ArmorFlashColor, true)
	}

	if e.MaxHP > 0 && e.HP < e.MaxHP {
		frac := float32(math.Max(0, float64(e.HP)/float64(e.MaxHP)))
		w := float32(config.EnemyDrawSize)
		bx, by := float32(e.X)-w/2, float32(e.Y)-r-7
		vector.DrawFilledRect(screen, bx, by, w, 3, render.DarkenColor(config.HealthBarColor), false)
		vector.DrawFilledRect(screen, bx, by, w*frac, 3, config.HealthBarColor, false)
	}
}
