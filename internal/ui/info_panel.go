// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"go-tower-sim/internal/app"
	"go-tower-sim/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelWidth     = config.InspectorWidth
	panelTop       = config.TopUIHeight + 10
	panelHeight    = 250
	panelMargin    = 10
	animationSpeed = 24.0
	lineHeight     = 20
	btnHeight      = 30
)

// PanelAction — кнопка инспектора, нажатая в этом кадре.
type PanelAction int

const (
	PanelNone PanelAction = iota
	PanelUpgrade
	PanelSell
	PanelCycleTarget
	PanelClose
)

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect image.Rectangle
	Text string
}

func (b Button) contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// InfoPanel выезжает справа и показывает характеристики выбранной башни.
type InfoPanel struct {
	IsVisible     bool
	stats         app.TowerStats
	fontFace      font.Face
	titleFontFace font.Face
	currentX      float64
	targetX       float64

	UpgradeButton Button
	SellButton    Button
	TargetButton  Button
	CloseButton   Button
}

// NewInfoPanel creates a hidden inspector.
func NewInfoPanel(font font.Face, titleFont font.Face) *InfoPanel {
	p := &InfoPanel{
		fontFace:      font,
		titleFontFace: titleFont,
		currentX:      config.ScreenWidth,
		targetX:       config.ScreenWidth,
	}
	p.layoutButtons()
	return p
}

// SetStats shows the panel for a tower; called every frame while selected.
func (p *InfoPanel) SetStats(stats app.TowerStats) {
	p.stats = stats
	p.IsVisible = true
	p.targetX = config.ScreenWidth - panelWidth - panelMargin
}

func (p *InfoPanel) Hide() {
	p.targetX = config.ScreenWidth
}

// Contains reports whether a screen point lies on the visible panel.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && image.Pt(x, y).In(p.rect())
}

func (p *InfoPanel) rect() image.Rectangle {
	x := int(p.currentX)
	return image.Rect(x, panelTop, x+panelWidth, panelTop+panelHeight)
}

// Update animates the panel and returns the clicked button, if any.
func (p *InfoPanel) Update() PanelAction {
	if p.currentX != p.targetX {
		diff := p.targetX - p.currentX
		if math.Abs(diff) < animationSpeed {
			p.currentX = p.targetX
		} else if diff > 0 {
			p.currentX += animationSpeed
		} else {
			p.currentX -= animationSpeed
		}
		if p.currentX >= config.ScreenWidth {
			p.IsVisible = false
		}
	}
	p.layoutButtons()

	if !p.IsVisible || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return PanelNone
	}
	x, y := ebiten.CursorPosition()
	switch {
	case p.UpgradeButton.contains(x, y):
		if p.stats.IsMaxTier {
			return PanelNone
		}
		return PanelUpgrade
	case p.SellButton.contains(x, y):
		return PanelSell
	case p.TargetButton.contains(x, y):
		return PanelCycleTarget
	case p.CloseButton.contains(x, y):
		return PanelClose
	}
	return PanelNone
}

func (p *InfoPanel) layoutButtons() {
	r := p.rect()
	inner := r.Inset(12)
	half := (inner.Dx() - 8) / 2
	bottom := inner.Max.Y

	p.TargetButton.Rect = image.Rect(inner.Min.X, bottom-2*btnHeight-8, inner.Max.X, bottom-btnHeight-8)
	p.UpgradeButton.Rect = image.Rect(inner.Min.X, bottom-btnHeight, inner.Min.X+half, bottom)
	p.SellButton.Rect = image.Rect(inner.Max.X-half, bottom-btnHeight, inner.Max.X, bottom)
	p.CloseButton.Rect = image.Rect(inner.Max.X-18, inner.Min.Y, inner.Max.X, inner.Min.Y+18)
}

func (p *InfoPanel) Draw(screen *ebiten.Image) {
	if !p.IsVisible && p.currentX >= config.ScreenWidth {
		return
	}
	r := p.rect()
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), config.PanelColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, borderColor, true)

	st := p.stats
	x, y := r.Min.X+12, r.Min.Y+12+18
	text.Draw(screen, fmt.Sprintf("%s  T%d/%d", st.Name, st.Tier, st.MaxTier), p.titleFontFace, x, y, config.TextLightColor)
	y += lineHeight + 6

	lines := []string{
		fmt.Sprintf("Damage: %d", st.Damage),
		fmt.Sprintf("Rate:   %.1f/s", st.ShotsPerSec),
		fmt.Sprintf("DPS:    %.1f", st.DPS),
		fmt.Sprintf("Range:  %.0f", st.Range),
		fmt.Sprintf("Target: %s", st.TargetMode),
	}
	for _, l := range lines {
		text.Draw(screen, l, p.fontFace, x, y, config.TextDimColor)
		y += lineHeight
	}

	upgrade := "MAX"
	if !st.IsMaxTier {
		upgrade = fmt.Sprintf("Up $%d", st.NextUpgradeCost)
	}
	p.UpgradeButton.Text = upgrade
	p.SellButton.Text = fmt.Sprintf("Sell $%d", st.SellRefund)
	p.TargetButton.Text = "Cycle target (T)"
	p.CloseButton.Text = "x"

	p.drawButton(screen, p.TargetButton, color.RGBA{R: 50, G: 70, B: 110, A: 255})
	upColor := color.RGBA{R: 60, G: 120, B: 60, A: 255}
	if st.IsMaxTier {
		upColor = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	}
	p.drawButton(screen, p.UpgradeButton, upColor)
	p.drawButton(screen, p.SellButton, color.RGBA{R: 120, G: 60, B: 60, A: 255})
	text.Draw(screen, p.CloseButton.Text, p.fontFace, p.CloseButton.Rect.Min.X+4, p.CloseButton.Rect.Max.Y-4, config.TextDimColor)
}

func (p *InfoPanel) drawButton(screen *ebiten.Image, b Button, bg color.RGBA) {
	r := b.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, true)

	textBounds := text.BoundString(p.fontFace, b.Text)
	textX := r.Min.X + (r.Dx()-textBounds.Dx())/2
	textY := r.Min.Y + (r.Dy()-textBounds.Dy())/2 - textBounds.Min.Y
	text.Draw(screen, b.Text, p.fontFace, textX, textY, color.White)
}
