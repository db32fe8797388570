package bot

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"go-tower-sim/internal/app"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/replay"

	"golang.org/x/sync/errgroup"
)

// BatchConfig describes a set of headless bot sessions.
type BatchConfig struct {
	Runs     int
	Parallel int // 0 — без ограничения
	BaseSeed int64
	Options  app.Options
	MaxWave  int     // сессия заканчивается, когда эта волна зачищена
	MaxSteps int     // страховка от бесконечной сессии
	StepMs   float64 // фиксированный шаг симуляции
	Record   bool    // сохранять реплей в Result
}

// DefaultBatchConfig returns a small batch on the default options.
func DefaultBatchConfig() BatchConfig {
	return BatchConfig{
		Runs:     8,
		Parallel: 4,
		BaseSeed: 1,
		Options:  app.DefaultOptions(),
		MaxWave:  10,
		MaxSteps: 200_000,
		StepMs:   16,
	}
}

// Result is the outcome of one bot session.
type Result struct {
	Seed   int64
	Stats  event.FinalStats
	Steps  int
	Ended  bool // true — проиграна, false — остановлена по MaxWave или MaxSteps
	Replay *replay.File
}

// RunSession plays one session with a fresh AutoPlayer.
func RunSession(ctx context.Context, cfg BatchConfig, seed int64) (Result, error) {
	opts := cfg.Options
	opts.Seed = seed
	g, err := app.NewGame(opts)
	if err != nil {
		return Result{}, err
	}
	var rec *replay.Recorder
	if cfg.Record {
		rec = replay.NewRecorder(g)
	}
	player := NewAutoPlayer(g.ECS.Path)

	steps := 0
	for ; steps < cfg.MaxSteps && !g.IsGameOver(); steps++ {
		if steps%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		if cfg.MaxWave > 0 && g.ECS.GameState.LastClearedWave >= cfg.MaxWave {
			break
		}
		player.Decide(g)
		g.Step(cfg.StepMs)
	}

	res := Result{Seed: g.Seed(), Stats: g.FinalStats(), Steps: steps, Ended: g.IsGameOver()}
	if rec != nil {
		f := rec.Finish(res.Stats)
		res.Replay = &f
	}
	slog.Debug("bot session finished", "seed", res.Seed, "wave", res.Stats.Wave, "score", res.Stats.Score, "steps", steps)
	return res, nil
}

// RunBatch plays cfg.Runs sessions with seeds BaseSeed, BaseSeed+1, ...
// sink, if set, is called from worker goroutines as each session ends.
// Results come back ordered by seed.
func RunBatch(ctx context.Context, cfg BatchConfig, sink func(context.Context, Result) error) ([]Result, error) {
	if cfg.Runs <= 0 {
		return nil, nil
	}
	if cfg.StepMs <= 0 {
		return nil, fmt.Errorf("step must be positive, got %v", cfg.StepMs)
	}

	results := make([]Result, cfg.Runs)
	eg, ctx := errgroup.WithContext(ctx)
	if cfg.Parallel > 0 {
		eg.SetLimit(cfg.Parallel)
	}
	for i := 0; i < cfg.Runs; i++ {
		eg.Go(func() error {
			res, err := RunSession(ctx, cfg, cfg.BaseSeed+int64(i))
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			results[i] = res
			if sink != nil {
				return sink(ctx, res)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	slices.SortFunc(results, func(a, b Result) int {
		switch {
		case a.Seed < b.Seed:
			return -1
		case a.Seed > b.Seed:
			return 1
		}
		return 0
	})
	return results, nil
}
