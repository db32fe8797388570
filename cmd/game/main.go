// cmd/game/main.go
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"go-tower-sim/internal/app"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/logging"
	"go-tower-sim/internal/state"
	"go-tower-sim/internal/storage"
	"go-tower-sim/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.ShouldQuit() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	difficulty := flag.String("difficulty", config.DefaultDifficulty, "easy, medium or hard")
	seed := flag.Int64("seed", 0, "session seed, 0 picks one from the clock")
	dbPath := flag.String("db", "scores.db", "sqlite leaderboard path, empty to disable")
	replayDir := flag.String("replays", "replays", "directory for recorded sessions, empty to disable")
	towersPath := flag.String("towers", "", "optional JSON tower catalog")
	enemiesPath := flag.String("enemies", "", "optional JSON enemy catalog")
	skipMenu := flag.Bool("play", false, "start a session right away")
	flag.Parse()

	logger := logging.Setup(os.Stderr)
	slog.SetDefault(logger)

	if err := loadCatalogs(*towersPath, *enemiesPath); err != nil {
		slog.Error("catalog load failed", "err", err)
		os.Exit(1)
	}
	if _, err := defs.LookupDifficulty(*difficulty); err != nil {
		slog.Error("bad -difficulty", "err", err)
		os.Exit(2)
	}

	face, err := render.LoadFace(14)
	if err != nil {
		slog.Error("font load failed", "err", err)
		os.Exit(1)
	}
	titleFace, err := render.LoadFace(20)
	if err != nil {
		slog.Error("font load failed", "err", err)
		os.Exit(1)
	}

	opts := app.DefaultOptions()
	opts.Difficulty = *difficulty
	opts.Seed = *seed

	host := &state.Host{
		Options:   opts,
		ReplayDir: *replayDir,
		Face:      face,
		TitleFace: titleFace,
	}
	if *dbPath != "" {
		lb, err := storage.Open(*dbPath)
		if err != nil {
			// без таблицы рекордов играть всё равно можно
			slog.Warn("leaderboard disabled", "path", *dbPath, "err", err)
		} else {
			defer lb.Close()
			host.Leaderboard = lb
		}
	}

	sm := state.NewStateMachine(host)
	if *skipMenu {
		gs, err := state.NewGameState(sm)
		if err != nil {
			slog.Error("cannot start session", "err", err)
			os.Exit(1)
		}
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewMenuState(sm))
	}

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tower Defense")
	if err := ebiten.RunGame(game); err != nil {
		slog.Error("game loop failed", "err", err)
		os.Exit(1)
	}
}

func loadCatalogs(towers, enemies string) error {
	if towers != "" {
		if err := defs.LoadTowerDefinitions(towers); err != nil {
			return err
		}
	}
	if enemies != "" {
		if err := defs.LoadEnemyDefinitions(enemies); err != nil {
			return err
		}
	}
	return nil
}
