// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"
	"time"

	"go-tower-sim/internal/app"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/replay"
	"go-tower-sim/internal/system"
	"go-tower-sim/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const messageDuration = 2 * time.Second

var hotkeys = map[ebiten.Key]string{
	ebiten.Key1: "1", ebiten.Key2: "2", ebiten.Key3: "3", ebiten.Key4: "4",
}

// GameState — состояние игры
type GameState struct {
	sm        *StateMachine
	game      *app.Game
	effects   *system.VisualEffectSystem
	renderer  *system.RenderSystem
	hud       *ui.HUD
	infoPanel *ui.InfoPanel
	autosave  *replay.Autosaver

	armed         string // тип башни для постройки кликом
	lastClickTime time.Time
	message       string
	messageUntil  time.Time
}

// NewGameState starts a session with the host options and wires the
// session collaborators to its dispatcher.
func NewGameState(sm *StateMachine) (*GameState, error) {
	host := sm.Host
	g, err := app.NewGame(host.Options)
	if err != nil {
		return nil, err
	}
	effects := system.NewVisualEffectSystem(g.EventDispatcher)
	if host.Leaderboard != nil {
		g.EventDispatcher.Subscribe(event.GameOver, host.Leaderboard)
	}
	var autosave *replay.Autosaver
	if host.ReplayDir != "" {
		autosave = replay.NewAutosaver(g, host.ReplayDir)
	}

	return &GameState{
		sm:            sm,
		game:          g,
		effects:       effects,
		renderer:      system.NewRenderSystem(effects),
		hud:           ui.NewHUD(host.Face, host.TitleFace),
		infoPanel:     ui.NewInfoPanel(host.Face, host.TitleFace),
		autosave:      autosave,
		armed:         "basic",
		lastClickTime: time.Now(),
	}, nil
}

// Game exposes the session to the pause overlay.
func (g *GameState) Game() *app.Game { return g.game }

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.enterPause()
		return
	}
	if g.game.IsGameOver() {
		g.updateGameOver(deltaTime)
		return
	}

	g.handleKeys()

	switch g.infoPanel.Update() {
	case ui.PanelUpgrade:
		g.upgradeSelected()
	case ui.PanelSell:
		g.sellSelected()
	case ui.PanelCycleTarget:
		g.cycleSelected()
	case ui.PanelClose:
		g.game.ClearSelection()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && g.clickReady() {
		x, y := ebiten.CursorPosition()
		switch {
		case g.infoPanel.Contains(x, y):
			// кнопки панели обработаны выше
		case g.hud.Contains(x, y):
			g.handleUIClick(x, y)
		default:
			g.handleGameClick(x, y)
		}
		g.lastClickTime = time.Now()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.game.ClearSelection()
		g.armed = ""
	}

	g.game.Update(deltaTime)
	g.effects.Update(deltaTime * g.game.SpeedMultiplier * 1000)
	g.syncWidgets()
}

func (g *GameState) updateGameOver(deltaTime float64) {
	g.effects.Update(deltaTime * 1000)
	g.infoPanel.Hide()
	g.infoPanel.Update()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.sm.SetState(NewMenuState(g.sm))
	}
}

func (g *GameState) handleKeys() {
	for key, hotkey := range hotkeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		for _, opt := range g.game.AvailableTowers() {
			if opt.Hotkey != hotkey {
				continue
			}
			if !opt.Unlocked {
				g.flash(fmt.Sprintf("%s unlocks at wave %d", opt.Name, opt.UnlockWave))
				continue
			}
			g.armed = opt.DefID
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.startWave()
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		g.upgradeSelected()
	case inpututil.IsKeyJustPressed(ebiten.KeyS), inpututil.IsKeyJustPressed(ebiten.KeyDelete):
		g.sellSelected()
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.cycleSelected()
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.game.CycleSpeed()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		if g.game.Selected() != 0 {
			g.game.ClearSelection()
		} else {
			g.sm.SetState(NewMenuState(g.sm))
		}
	}
}

func (g *GameState) clickReady() bool {
	return time.Since(g.lastClickTime) >= time.Duration(config.ClickCooldown)*time.Millisecond
}

// handleUIClick обрабатывает клики, которые точно попали в HUD
func (g *GameState) handleUIClick(x, y int) {
	switch {
	case g.hud.Indicator.IsClicked(x, y):
		g.hud.Indicator.HandleClick()
		g.startWave()
	case g.hud.Speed.IsClicked(x, y):
		g.game.CycleSpeed()
	case g.hud.Pause.IsClicked(x, y):
		g.enterPause()
	default:
		if id, ok := g.hud.PaletteAt(x, y, g.game.AvailableTowers()); ok {
			g.armed = id
		}
	}
}

// handleGameClick: клик по башне выбирает её, по пустой клетке строит.
func (g *GameState) handleGameClick(x, y int) {
	fx, fy := float64(x), float64(y)
	if id, ok := g.game.TowerAt(fx, fy); ok {
		g.game.SelectTower(id)
		return
	}
	g.game.ClearSelection()
	if g.armed == "" {
		return
	}
	if _, err := g.game.CheckPlacement(fx, fy, g.armed); err != nil {
		g.flash(err.Error())
		return
	}
	g.game.PlaceTower(fx, fy, g.armed)
}

func (g *GameState) startWave() {
	if !g.game.RequestStartWave() {
		g.flash("cannot start a wave now")
	}
}

func (g *GameState) upgradeSelected() {
	id := g.game.Selected()
	if id == 0 {
		return
	}
	if !g.game.UpgradeTower(id) {
		g.flash("upgrade unavailable")
	}
}

func (g *GameState) sellSelected() {
	if id := g.game.Selected(); id != 0 {
		if refund, ok := g.game.SellTower(id); ok {
			g.flash(fmt.Sprintf("sold for $%d", refund))
		}
	}
}

func (g *GameState) cycleSelected() {
	if id := g.game.Selected(); id != 0 {
		if mode, ok := g.game.CycleTargetMode(id); ok {
			g.flash("target: " + mode.String())
		}
	}
}

func (g *GameState) enterPause() {
	if g.game.IsGameOver() {
		return
	}
	g.game.Pause()
	g.hud.Pause.SetPaused(true)
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) restart() {
	g.game.Restart()
	g.effects.Clear()
	if g.autosave != nil {
		g.autosave.Rearm()
	}
	g.armed = "basic"
	g.message = ""
	g.syncWidgets()
}

func (g *GameState) flash(msg string) {
	g.message = msg
	g.messageUntil = time.Now().Add(messageDuration)
}

// syncWidgets подтягивает состояние кнопок и инспектора из сессии.
func (g *GameState) syncWidgets() {
	g.hud.Speed.SetState(g.game.SpeedIndex())
	g.hud.Pause.SetPaused(g.game.IsPaused())
	if stats, ok := g.game.TowerStats(g.game.Selected()); ok {
		g.infoPanel.SetStats(stats)
	} else {
		g.infoPanel.Hide()
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	g.renderer.Draw(screen, snap, g.game.Selected())
	g.drawPlacementPreview(screen)
	g.hud.Draw(screen, snap, g.game.AvailableTowers(), g.armed, g.game.CanStartWave())
	g.infoPanel.Draw(screen)

	if g.message != "" && time.Now().Before(g.messageUntil) {
		text.Draw(screen, g.message, g.sm.Host.Face, 20, config.ScreenHeight-16, config.TextLightColor)
	}
	if snap.GameOver {
		g.drawGameOver(screen)
	}
}

// drawPlacementPreview подсвечивает клетку под курсором.
func (g *GameState) drawPlacementPreview(screen *ebiten.Image) {
	if g.armed == "" || g.game.IsGameOver() {
		return
	}
	x, y := ebiten.CursorPosition()
	if float64(y) < config.TopUIHeight || g.infoPanel.Contains(x, y) {
		return
	}
	cell, err := g.game.CheckPlacement(float64(x), float64(y), g.armed)
	if cell.X == 0 && cell.Y == 0 {
		return
	}
	c := color.RGBA{80, 220, 120, 90}
	if err != nil {
		c = color.RGBA{220, 60, 60, 90}
	}
	half := float32(config.GridSize / 2)
	vector.DrawFilledRect(screen, float32(cell.X)-half, float32(cell.Y)-half, half*2, half*2, c, false)
}

func (g *GameState) drawGameOver(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	stats := g.game.FinalStats()
	host := g.sm.Host
	cx, cy := config.ScreenWidth/2-160, config.ScreenHeight/2-40
	text.Draw(screen, "GAME OVER", host.TitleFace, cx, cy, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Score %d   Wave %d   Kills %d", stats.Score, stats.Wave, stats.Kills), host.Face, cx, cy+30, config.TextLightColor)
	text.Draw(screen, "R restart   Esc menu", host.Face, cx, cy+56, config.TextDimColor)
	if g.autosave != nil && g.autosave.LastSaved() != "" {
		text.Draw(screen, "replay: "+g.autosave.LastSaved(), host.Face, cx, cy+82, config.TextDimColor)
	}
}

func (g *GameState) Exit() {}
