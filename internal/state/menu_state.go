// internal/state/menu_state.go
package state

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"time"

	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/storage"
	"go-tower-sim/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

const leaderboardRows = 10

// MenuState — выбор сложности и таблица рекордов.
type MenuState struct {
	sm       *StateMachine
	buttons  []*ui.MenuButton
	selected int
	top      []storage.Entry
}

func NewMenuState(sm *StateMachine) *MenuState {
	m := &MenuState{sm: sm}
	for i, key := range defs.DifficultyOrder {
		d := defs.DifficultyLibrary[key]
		x := config.ScreenWidth/2 - 330 + i*230
		rect := image.Rect(x, 220, x+200, 280)
		m.buttons = append(m.buttons, ui.NewMenuButton(rect, fmt.Sprintf("%d  %s", i+1, d.Label), sm.Host.TitleFace))
		if key == sm.Host.Options.Difficulty {
			m.selected = i
		}
	}
	return m
}

func (m *MenuState) Enter() {
	m.top = nil
	if m.sm.Host.Leaderboard == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	top, err := m.sm.Host.Leaderboard.Top(ctx, leaderboardRows)
	if err != nil {
		slog.Error("leaderboard read failed", "err", err)
		return
	}
	m.top = top
}

func (m *MenuState) Update(deltaTime float64) {
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
		if i < len(m.buttons) && inpututil.IsKeyJustPressed(key) {
			m.selected = i
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		for i, b := range m.buttons {
			if b.IsClicked(x, y) {
				m.selected = i
				m.start()
				return
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.start()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.sm.Quit()
	}
}

func (m *MenuState) start() {
	m.sm.Host.Options.Difficulty = defs.DifficultyOrder[m.selected]
	gs, err := NewGameState(m.sm)
	if err != nil {
		slog.Error("cannot start session", "err", err)
		return
	}
	m.sm.SetState(gs)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	host := m.sm.Host
	text.Draw(screen, "TOWER DEFENSE", host.TitleFace, config.ScreenWidth/2-70, 140, config.TextLightColor)
	text.Draw(screen, "1-3 difficulty   Space start   Esc quit", host.Face, config.ScreenWidth/2-170, 180, config.TextDimColor)

	for i, b := range m.buttons {
		b.Selected = i == m.selected
		b.Draw(screen)
	}

	y := 340
	text.Draw(screen, "Top scores", host.TitleFace, config.ScreenWidth/2-330, y, config.TextLightColor)
	y += 30
	if len(m.top) == 0 {
		text.Draw(screen, "no games yet", host.Face, config.ScreenWidth/2-330, y, config.TextDimColor)
		return
	}
	for i, e := range m.top {
		row := fmt.Sprintf("%2d. %-7s %7d  wave %3d  kills %4d  %s", i+1, e.Difficulty, e.Score, e.Wave, e.Kills, e.CreatedAt.Format("2006-01-02"))
		text.Draw(screen, row, host.Face, config.ScreenWidth/2-330, y, config.TextDimColor)
		y += 22
	}
}

func (m *MenuState) Exit() {}
