// internal/ui/hud.go
package ui

import (
	"fmt"
	"image"
	"image/color"

	"go-tower-sim/internal/app"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// HUD — верхняя полоса: счётчики, палитра башен и кнопки управления.
type HUD struct {
	fontFace  font.Face
	titleFace font.Face

	Palette   []Button
	Indicator *StateIndicator
	Speed     *SpeedButton
	Pause     *PauseButton
}

func NewHUD(face, titleFace font.Face) *HUD {
	right := float32(config.ScreenWidth - config.IndicatorOffsetX)
	return &HUD{
		fontFace:  face,
		titleFace: titleFace,
		Indicator: NewStateIndicator(right, config.SpeedButtonY, config.IndicatorRadius),
		Speed:     NewSpeedButton(right-config.PauseButtonOffset, config.SpeedButtonY, config.SpeedButtonSize, config.SpeedButtonColors),
		Pause:     NewPauseButton(right-2*config.PauseButtonOffset, config.SpeedButtonY, config.SpeedButtonSize, config.PauseButtonColor, config.PlayButtonColor),
	}
}

// Contains reports whether a click belongs to the HUD rather than the field.
func (h *HUD) Contains(x, y int) bool {
	return float64(y) < config.TopUIHeight
}

// PaletteAt returns the tower id of the palette button under the cursor.
func (h *HUD) PaletteAt(x, y int, options []app.TowerOption) (string, bool) {
	h.layoutPalette(len(options))
	for i, b := range h.Palette {
		if b.contains(x, y) {
			return options[i].DefID, true
		}
	}
	return "", false
}

func (h *HUD) layoutPalette(n int) {
	if len(h.Palette) == n {
		return
	}
	h.Palette = make([]Button, n)
	for i := range h.Palette {
		x := 20 + i*(config.PaletteButtonW+10)
		h.Palette[i].Rect = image.Rect(x, config.PaletteTop, x+config.PaletteButtonW, config.PaletteTop+config.PaletteButtonH)
	}
}

// Draw рисует полосу HUD. armed — башня, выбранная для постройки.
func (h *HUD) Draw(screen *ebiten.Image, snap entity.Snapshot, options []app.TowerOption, armed string, canStart bool) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.TopUIHeight, config.PanelColor, false)

	line := fmt.Sprintf("$%d   Lives %d   Score %d   Kills %d   Wave %d", snap.Money, snap.Lives, snap.Score, snap.Kills, snap.Wave)
	text.Draw(screen, line, h.titleFace, 20, 30, config.TextLightColor)

	status := snap.Difficulty
	switch {
	case snap.WaveRunning:
		status = fmt.Sprintf("%s  spawning %d/%d  x%d", snap.Difficulty, snap.Spawned, snap.SpawnTotal, snap.ActiveWaves)
	case snap.NextWaveInMs > 0:
		status = fmt.Sprintf("%s  next wave in %.1fs", snap.Difficulty, snap.NextWaveInMs/1000)
	}
	text.Draw(screen, status, h.fontFace, 20, 48, config.TextDimColor)

	h.layoutPalette(len(options))
	for i, opt := range options {
		h.drawPaletteButton(screen, h.Palette[i], opt, opt.DefID == armed)
	}

	stateColor := config.IntermissionColor
	if snap.WaveRunning {
		stateColor = config.WaveRunningColor
		if canStart {
			stateColor = config.WaveStackColor
		}
	}
	h.Indicator.Draw(screen, stateColor)
	h.Speed.Draw(screen)
	h.Pause.Draw(screen)
}

func (h *HUD) drawPaletteButton(screen *ebiten.Image, b Button, opt app.TowerOption, armed bool) {
	r := b.Rect
	bg := color.RGBA{R: 30, G: 40, B: 56, A: 255}
	fg := config.TextLightColor
	label := fmt.Sprintf("[%s] %s", opt.Hotkey, opt.Name)
	sub := fmt.Sprintf("$%d", opt.Cost)
	switch {
	case !opt.Unlocked:
		fg = config.LockedColor
		sub = fmt.Sprintf("wave %d", opt.UnlockWave)
	case !opt.Affordable:
		fg = config.TextDimColor
	}
	if armed {
		bg = color.RGBA{R: 50, G: 90, B: 130, A: 255}
	}
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, true)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, config.GridColor, true)
	text.Draw(screen, label, h.fontFace, r.Min.X+8, r.Min.Y+20, fg)
	text.Draw(screen, sub, h.fontFace, r.Min.X+8, r.Min.Y+40, fg)
}
