// cmd/replay_viewer_raylib/main.go
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"go-tower-sim/internal/config"
	"go-tower-sim/internal/logging"
	"go-tower-sim/internal/replay"
	"go-tower-sim/internal/ui/rlui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// viewer держит проигрыватель и виджеты управления.
type viewer struct {
	file   replay.File
	player *replay.Player
	paused bool
	speed  int

	speedBtn *rlui.SpeedButton
	pauseBtn *rlui.PauseButton
	waveInd  *rlui.WaveIndicator
	livesInd *rlui.LivesIndicator
	maxLives int
}

func main() {
	path := flag.String("file", "", "replay file to play")
	flag.Parse()
	slog.SetDefault(logging.Setup(os.Stderr))

	f, err := replay.Load(*path)
	if err != nil {
		slog.Error("cannot load replay", "path", *path, "err", err)
		os.Exit(1)
	}
	v, err := newViewer(f)
	if err != nil {
		slog.Error("cannot play replay", "path", *path, "err", err)
		os.Exit(1)
	}

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Replay "+f.Header.SessionID+" | Space pause, F speed, Right step, R rewind")
	rl.SetTargetFPS(60)
	defer rl.CloseWindow()

	for !rl.WindowShouldClose() {
		v.update()

		rl.BeginDrawing()
		rl.ClearBackground(rlui.ColorToRL(config.BackgroundColor))
		v.draw()
		rl.EndDrawing()
	}
}

func newViewer(f replay.File) (*viewer, error) {
	p, err := replay.NewPlayer(f)
	if err != nil {
		return nil, err
	}
	right := float32(config.ScreenWidth - config.IndicatorOffsetX)
	return &viewer{
		file:     f,
		player:   p,
		speed:    1,
		speedBtn: rlui.NewSpeedButton(right, config.SpeedButtonY, config.SpeedButtonSize, config.SpeedButtonColors),
		pauseBtn: rlui.NewPauseButton(right-config.PauseButtonOffset, config.SpeedButtonY, config.SpeedButtonSize, config.PauseButtonColor, config.PlayButtonColor),
		waveInd:  rlui.NewWaveIndicator(config.ScreenWidth/2, 12, 40),
		livesInd: rlui.NewLivesIndicator(20, 60),
		maxLives: p.Game().ECS.Economy.Lives,
	}, nil
}

func (v *viewer) update() {
	mouse := rl.GetMousePosition()
	clicked := rl.IsMouseButtonPressed(rl.MouseLeftButton)

	if rl.IsKeyPressed(rl.KeySpace) || (clicked && v.pauseBtn.IsClicked(mouse)) {
		v.paused = v.pauseBtn.TogglePause()
	}
	if rl.IsKeyPressed(rl.KeyF) || (clicked && v.speedBtn.IsClicked(mouse)) {
		v.speed = int(config.SpeedMultipliers[v.speedBtn.ToggleState()])
	}
	if rl.IsKeyPressed(rl.KeyR) {
		if p, err := replay.NewPlayer(v.file); err == nil {
			v.player = p
		}
	}

	switch {
	case v.paused && rl.IsKeyPressed(rl.KeyRight):
		v.player.Step()
	case !v.paused:
		for i := 0; i < v.speed; i++ {
			if !v.player.Step() {
				break
			}
		}
	}
}

func (v *viewer) draw() {
	snap := v.player.Game().Snapshot()
	drawField(snap)

	font := rl.GetFontDefault()
	v.waveInd.Draw(snap.Wave, font)
	v.livesInd.Draw(snap.Lives, v.maxLives)
	v.speedBtn.Draw()
	v.pauseBtn.Draw()

	hud := fmt.Sprintf("$%d  score %d  kills %d  %s", snap.Money, snap.Score, snap.Kills, snap.Difficulty)
	rl.DrawText(hud, 20, 20, 20, rlui.ColorToRL(config.TextLightColor))

	played, total := v.player.Progress()
	drawProgress(played, total)
	if v.player.Done() {
		verdict, c := "outcome matches recording", rl.Green
		if v.player.Game().FinalStats().Outcome() != v.file.Final.Outcome() {
			verdict, c = "outcome DIVERGED from recording", rl.Red
		}
		rl.DrawText(verdict, 20, int32(config.TopUIHeight)-24, 18, c)
	}
}

func drawProgress(played, total int) {
	if total == 0 {
		return
	}
	w := float32(config.ScreenWidth - 40)
	y := float32(config.TopUIHeight - 6)
	rl.DrawRectangleV(rl.NewVector2(20, y), rl.NewVector2(w, 3), rl.DarkGray)
	rl.DrawRectangleV(rl.NewVector2(20, y), rl.NewVector2(w*float32(played)/float32(total), 3), rl.SkyBlue)
}
