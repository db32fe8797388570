// internal/ui/menu_button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// MenuButton представляет собой простую кнопку для использования в меню.
type MenuButton struct {
	Rect     image.Rectangle
	Text     string
	Selected bool
	bgColor  color.RGBA
	selColor color.RGBA
	fgColor  color.RGBA
	font     font.Face
}

// NewMenuButton создает новую кнопку меню.
func NewMenuButton(rect image.Rectangle, label string, face font.Face) *MenuButton {
	return &MenuButton{
		Rect:     rect,
		Text:     label,
		bgColor:  color.RGBA{R: 40, G: 48, B: 64, A: 255},
		selColor: color.RGBA{R: 70, G: 130, B: 180, A: 255},
		fgColor:  color.RGBA{R: 230, G: 236, B: 255, A: 255},
		font:     face,
	}
}

// IsClicked проверяет, попадает ли точка в кнопку.
func (b *MenuButton) IsClicked(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку.
func (b *MenuButton) Draw(screen *ebiten.Image) {
	bg := b.bgColor
	if b.Selected {
		bg = b.selColor
	}
	r := b.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, true)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)

	bounds := text.BoundString(b.font, b.Text)
	x := r.Min.X + (r.Dx()-bounds.Dx())/2
	y := r.Min.Y + (r.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, b.font, x, y, b.fgColor)
}
