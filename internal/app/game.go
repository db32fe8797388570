// internal/app/game.go
package app

import (
	"log/slog"

	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/system"
	"go-tower-sim/internal/types"
	"go-tower-sim/internal/utils"

	"github.com/google/uuid"
)

// Game holds the session state and orders the simulation tick.
type Game struct {
	ECS              *entity.ECS
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService
	WaveSystem       *system.WaveSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	MovementSystem   *system.MovementSystem
	SessionID        string
	SpeedMultiplier  float64

	opts       Options
	speedIndex int
	selected   types.EntityID
	tick       uint64
	recorder   Recorder
}

// NewGame initializes a new session. The dispatcher is created here and
// survives Restart, so collaborators subscribe once.
func NewGame(opts Options) (*Game, error) {
	g := &Game{
		EventDispatcher: event.NewDispatcher(),
		SpeedMultiplier: 1,
	}
	if err := g.reset(opts); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) reset(opts Options) error {
	if opts.Difficulty == "" {
		opts.Difficulty = config.DefaultDifficulty
	}
	difficulty, err := defs.LookupDifficulty(opts.Difficulty)
	if err != nil {
		return err
	}
	if opts.Lives <= 0 {
		opts.Lives = config.StartingLives
	}

	g.opts = opts
	g.Rng = utils.NewPRNGService(opts.Seed)
	g.ECS = entity.NewECS(difficulty, opts.Lives)
	g.WaveSystem = system.NewWaveSystem(g.ECS, g.EventDispatcher, g.Rng, opts.waveOptions())
	g.CombatSystem = system.NewCombatSystem(g.ECS, g.EventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(g.ECS, g.EventDispatcher)
	g.MovementSystem = system.NewMovementSystem(g.ECS, g.EventDispatcher)
	g.SessionID = uuid.NewString()
	g.selected = 0
	g.tick = 0
	// новая сессия пишется только новым рекордером
	g.recorder = nil

	slog.Info("session started", "session", g.SessionID, "difficulty", difficulty.Key, "seed", g.Rng.Seed())
	return nil
}

// Update progresses the game by one host frame. deltaTime в секундах,
// множитель скорости применяется здесь.
func (g *Game) Update(deltaTime float64) {
	g.Step(deltaTime * g.SpeedMultiplier * 1000)
}

// Step advances the simulation by dtMs milliseconds. Ticks while paused or
// after game over are discarded, never caught up.
func (g *Game) Step(dtMs float64) {
	gs := g.ECS.GameState
	if gs.Paused || gs.GameOver || dtMs <= 0 {
		return
	}
	if g.recorder != nil {
		g.recorder.RecordStep(g.tick, dtMs)
	}
	g.tick++
	g.ECS.GameTime += dtMs

	g.WaveSystem.Update()
	g.CombatSystem.Update(dtMs)
	g.MovementSystem.Update(dtMs)
	if g.ECS.Economy.Lives <= 0 {
		g.endGame()
		return
	}
	g.ProjectileSystem.Update(dtMs)
	g.WaveSystem.CheckCleared()
}

func (g *Game) endGame() {
	gs := g.ECS.GameState
	if gs.GameOver {
		return
	}
	gs.GameOver = true
	g.WaveSystem.CancelTimers()
	g.selected = 0

	stats := g.FinalStats()
	slog.Info("game over", "session", g.SessionID, "score", stats.Score, "wave", stats.Wave, "kills", stats.Kills)
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: stats})
}

// FinalStats returns the summary carried by the GameOver event.
func (g *Game) FinalStats() event.FinalStats {
	return event.FinalStats{
		SessionID:  g.SessionID,
		Difficulty: g.ECS.Difficulty.Key,
		Score:      g.ECS.Economy.Score,
		Kills:      g.ECS.Economy.Kills,
		Wave:       g.ECS.GameState.Wave,
		Money:      g.ECS.Economy.Money,
		GameTimeMs: g.ECS.GameTime,
	}
}

// Snapshot returns a read-only copy of the world for hosts.
func (g *Game) Snapshot() entity.Snapshot {
	return g.ECS.BuildSnapshot()
}

// Restart builds a fresh session with the same options.
func (g *Game) Restart() {
	if err := g.reset(g.opts); err != nil {
		// опции уже проверены при создании
		panic(err)
	}
}

// SetDifficulty starts a new session on the given difficulty.
func (g *Game) SetDifficulty(key string) error {
	opts := g.opts
	opts.Difficulty = key
	if _, err := defs.LookupDifficulty(key); err != nil {
		return err
	}
	return g.reset(opts)
}

func (g *Game) Pause() {
	if !g.ECS.GameState.GameOver {
		g.ECS.GameState.Paused = true
	}
}

func (g *Game) Resume() {
	g.ECS.GameState.Paused = false
}

func (g *Game) TogglePause() {
	if g.ECS.GameState.Paused {
		g.Resume()
	} else {
		g.Pause()
	}
}

// IsPaused возвращает текущее состояние паузы.
func (g *Game) IsPaused() bool {
	return g.ECS.GameState.Paused
}

// IsGameOver reports whether the session has ended.
func (g *Game) IsGameOver() bool {
	return g.ECS.GameState.GameOver
}

// CycleSpeed switches the host speed multiplier x1 -> x2 -> x4 -> x1.
func (g *Game) CycleSpeed() float64 {
	g.speedIndex = (g.speedIndex + 1) % len(config.SpeedMultipliers)
	g.SpeedMultiplier = config.SpeedMultipliers[g.speedIndex]
	return g.SpeedMultiplier
}

// SpeedIndex returns the position of the current multiplier in config.SpeedMultipliers.
func (g *Game) SpeedIndex() int {
	return g.speedIndex
}

func (g *Game) Options() Options {
	return g.opts
}

// Seed returns the seed actually used, also when Options.Seed was 0.
func (g *Game) Seed() int64 {
	return g.Rng.Seed()
}

// Tick returns the number of simulation steps taken this session.
func (g *Game) Tick() uint64 {
	return g.tick
}

// CanStartWave reports whether RequestStartWave would be accepted.
func (g *Game) CanStartWave() bool {
	return g.WaveSystem.CanStartWave()
}

// RequestStartWave starts the next wave if the schedule allows it.
func (g *Game) RequestStartWave() bool {
	if g.ECS.GameState.GameOver {
		return false
	}
	if _, ok := g.WaveSystem.StartWave(); !ok {
		return false
	}
	g.record(Command{Kind: CmdStartWave})
	return true
}
