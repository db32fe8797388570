// internal/system/wave.go
package system

import (
	"log/slog"
	"math"
	"slices"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/utils"
)

// WaveOptions настраивает расписание волн.
type WaveOptions struct {
	AutoStart       bool    // автостарт после перерыва
	AllowEarlyStart bool    // старт до конца перерыва
	AllowStacking   bool    // старт новой волны, пока идут старые
	MaxSpawners     int     // предел одновременно работающих спавнеров
	IntermissionMs  float64 // длина перерыва между волнами
	// WaveConfig подменяет кривую волн, nil означает defs.ComputeWaveConfig.
	WaveConfig func(wave int) defs.WaveConfig
}

// DefaultWaveOptions returns the standard schedule.
func DefaultWaveOptions() WaveOptions {
	return WaveOptions{
		AutoStart:       true,
		AllowEarlyStart: true,
		AllowStacking:   true,
		MaxSpawners:     config.MaxConcurrentSpawners,
		IntermissionMs:  config.IntermissionMs,
	}
}

type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	opts            WaveOptions
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, opts WaveOptions) *WaveSystem {
	if opts.WaveConfig == nil {
		opts.WaveConfig = defs.ComputeWaveConfig
	}
	if opts.MaxSpawners <= 0 {
		opts.MaxSpawners = 1
	}
	ws := &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		opts:            opts,
	}
	ws.enterIntermission(true)
	return ws
}

// CanStartWave reports whether StartWave would be accepted now.
func (s *WaveSystem) CanStartWave() bool {
	gs := s.ecs.GameState
	if gs.GameOver {
		return false
	}
	if gs.WaveState == component.Running {
		return s.opts.AllowStacking && s.activeSpawners() < s.opts.MaxSpawners
	}
	if !gs.StartedFirstWave || s.opts.AllowEarlyStart {
		return true
	}
	return s.ecs.GameTime >= gs.NextWaveAvailableAt
}

// StartWave запускает спавнер следующей волны. Возвращает номер волны
// и false, если старт сейчас невозможен.
func (s *WaveSystem) StartWave() (int, bool) {
	if !s.CanStartWave() {
		return 0, false
	}
	gs := s.ecs.GameState
	number := gs.NextWave
	cfg := s.opts.WaveConfig(number)

	s.ecs.Spawners = append(s.ecs.Spawners, &component.Spawner{
		Wave:        number,
		Config:      cfg,
		NextSpawnAt: s.ecs.GameTime + config.FirstSpawnDelayMs,
	})
	gs.NextWave++
	gs.Wave = number
	gs.WaveState = component.Running
	gs.StartedFirstWave = true
	gs.AutoStartAt = 0

	slog.Debug("wave started", "wave", number, "total", cfg.Total, "active", len(s.ecs.Spawners))
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{
		Wave:        number,
		ActiveWaves: len(s.ecs.Spawners),
	}})
	return number, true
}

// Update двигает спавнеры и автостарт. Вызывается раз за тик до боя.
func (s *WaveSystem) Update() {
	gs := s.ecs.GameState
	if gs.GameOver {
		return
	}
	if gs.WaveState == component.Intermission {
		if s.opts.AutoStart && gs.AutoStartAt > 0 && s.ecs.GameTime >= gs.AutoStartAt {
			s.StartWave()
		}
		return
	}
	for _, sp := range s.ecs.Spawners {
		s.step(sp)
	}
	s.retireFinished()
}

// finished: волна заспавнена целиком и её враги мертвы или ушли.
func (s *WaveSystem) finished(sp *component.Spawner) bool {
	if !sp.Done() || sp.SwarmRemaining > 0 {
		return false
	}
	for _, e := range s.ecs.Enemies {
		if e.Wave == sp.Wave {
			return false
		}
	}
	return true
}

// activeSpawners counts spawners that still hold a stacking slot.
func (s *WaveSystem) activeSpawners() int {
	n := 0
	for _, sp := range s.ecs.Spawners {
		if !s.finished(sp) {
			n++
		}
	}
	return n
}

// retireFinished убирает отработавшие спавнеры. Зачёт волн остаётся
// глобальным и идёт через CheckCleared.
func (s *WaveSystem) retireFinished() {
	s.ecs.Spawners = slices.DeleteFunc(s.ecs.Spawners, s.finished)
}

// step делает не больше одного спавна за тик для данного спавнера.
func (s *WaveSystem) step(sp *component.Spawner) {
	now := s.ecs.GameTime
	cfg := sp.Config

	if sp.SwarmRemaining > 0 && now >= sp.NextSwarmAt {
		SpawnEnemy(s.ecs, s.eventDispatcher, defs.EnemyRunner, sp.Wave, true)
		sp.Spawned++
		sp.SwarmRemaining--
		sp.NextSwarmAt = now + config.SwarmSpacingMs
		return
	}
	if sp.SwarmRemaining > 0 || sp.Done() || now < sp.NextSpawnAt {
		// обычный темп ждёт, пока рой не выйдет целиком
		return
	}

	if cfg.PackEvery > 0 && sp.Spawned > 0 && sp.Spawned%cfg.PackEvery == 0 {
		// рой: первый бегун сразу, остальные через SwarmSpacingMs
		pack := min(cfg.PackSize, cfg.Total-sp.Spawned)
		SpawnEnemy(s.ecs, s.eventDispatcher, defs.EnemyRunner, sp.Wave, true)
		sp.Spawned++
		sp.SwarmRemaining = max(0, pack-1)
		sp.NextSwarmAt = now + config.SwarmSpacingMs
	} else {
		defID := defs.EnemyRunner
		if len(cfg.Weights) > 0 {
			defID = s.rng.ChooseWeighted(cfg.Weights)
		}
		SpawnEnemy(s.ecs, s.eventDispatcher, defID, sp.Wave, false)
		sp.Spawned++
	}
	sp.NextSpawnAt = now + cfg.SpawnDelayMs
}

// CheckCleared засчитывает волны, когда все спавнеры отработали и врагов
// не осталось. Бонус начисляется за каждую закрытую волну ровно один раз.
func (s *WaveSystem) CheckCleared() bool {
	gs := s.ecs.GameState
	if gs.GameOver || gs.WaveState != component.Running {
		return false
	}
	for _, sp := range s.ecs.Spawners {
		if !sp.Done() || sp.SwarmRemaining > 0 {
			return false
		}
	}
	if len(s.ecs.Enemies) > 0 {
		return false
	}

	highest := gs.NextWave - 1
	for w := gs.LastClearedWave + 1; w <= highest; w++ {
		money := config.WaveClearMoneyBase + config.WaveClearMoneyPerWave*w
		score := int(math.Round(float64(config.WaveClearScorePerWave*w) * scoreMul(s.ecs)))
		s.ecs.Economy.Money += money
		s.ecs.Economy.Score += score
		slog.Debug("wave cleared", "wave", w, "money", money, "score", score)
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveCleared, Data: event.WaveData{
			Wave:       w,
			BonusMoney: money,
			BonusScore: score,
		}})
	}
	gs.LastClearedWave = highest
	s.ecs.Spawners = nil
	s.enterIntermission(false)
	return true
}

// CancelTimers снимает автостарт и останавливает спавнеры; используется при конце игры.
func (s *WaveSystem) CancelTimers() {
	s.ecs.GameState.AutoStartAt = 0
	s.ecs.Spawners = nil
}

// Progress returns spawned and total enemy counts over active spawners.
func (s *WaveSystem) Progress() (spawned, total int) {
	for _, sp := range s.ecs.Spawners {
		spawned += sp.Spawned
		total += sp.Config.Total
	}
	return spawned, total
}

// NextWaveInMs returns the time left until auto-start, or 0 if none is scheduled.
func (s *WaveSystem) NextWaveInMs() float64 {
	gs := s.ecs.GameState
	if gs.WaveState != component.Intermission || gs.AutoStartAt == 0 {
		return 0
	}
	return math.Max(0, gs.AutoStartAt-s.ecs.GameTime)
}

// enterIntermission: первый перерыв доступен сразу и не стартует сам.
func (s *WaveSystem) enterIntermission(initial bool) {
	gs := s.ecs.GameState
	gs.WaveState = component.Intermission
	if initial {
		gs.NextWaveAvailableAt = s.ecs.GameTime
		gs.AutoStartAt = 0
		return
	}
	gs.NextWaveAvailableAt = s.ecs.GameTime + s.opts.IntermissionMs
	if s.opts.AutoStart {
		gs.AutoStartAt = gs.NextWaveAvailableAt
	} else {
		gs.AutoStartAt = 0
	}
}
