// cmd/simbatch/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"text/tabwriter"

	"go-tower-sim/internal/bot"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/logging"
	"go-tower-sim/internal/replay"
	"go-tower-sim/internal/storage"
)

func main() {
	cfg := bot.DefaultBatchConfig()
	flag.IntVar(&cfg.Runs, "runs", cfg.Runs, "number of sessions")
	flag.IntVar(&cfg.Parallel, "parallel", cfg.Parallel, "sessions run at once, 0 for no limit")
	flag.Int64Var(&cfg.BaseSeed, "seed", cfg.BaseSeed, "seed of the first session, the rest count up")
	flag.StringVar(&cfg.Options.Difficulty, "difficulty", cfg.Options.Difficulty, "easy, medium or hard")
	flag.IntVar(&cfg.MaxWave, "waves", cfg.MaxWave, "stop a session once this wave is cleared, 0 to play until lost")
	flag.IntVar(&cfg.MaxSteps, "max-steps", cfg.MaxSteps, "hard cap on simulation steps per session")
	flag.Float64Var(&cfg.StepMs, "step", cfg.StepMs, "simulation step in milliseconds")
	dbPath := flag.String("db", "", "sqlite leaderboard to record results in")
	replayDir := flag.String("replays", "", "directory to save every session replay to")
	flag.Parse()

	slog.SetDefault(logging.Setup(os.Stderr))
	if err := run(cfg, *dbPath, *replayDir); err != nil {
		slog.Error("batch failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg bot.BatchConfig, dbPath, replayDir string) error {
	if _, err := defs.LookupDifficulty(cfg.Options.Difficulty); err != nil {
		return err
	}
	cfg.Record = replayDir != ""

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var lb *storage.Leaderboard
	if dbPath != "" {
		var err error
		if lb, err = storage.Open(dbPath); err != nil {
			return err
		}
		defer lb.Close()
	}

	sink := func(ctx context.Context, res bot.Result) error {
		if lb != nil {
			entry := storage.Entry{
				SessionID:  res.Stats.SessionID,
				Difficulty: res.Stats.Difficulty,
				Score:      res.Stats.Score,
				Wave:       res.Stats.Wave,
				Kills:      res.Stats.Kills,
			}
			if err := lb.Record(ctx, entry); err != nil {
				return err
			}
		}
		if res.Replay != nil {
			path := filepath.Join(replayDir, fmt.Sprintf("seed-%d.replay", res.Seed))
			if err := replay.Save(path, *res.Replay); err != nil {
				return err
			}
		}
		return nil
	}

	slog.Info("batch started", "runs", cfg.Runs, "parallel", cfg.Parallel, "difficulty", cfg.Options.Difficulty)
	results, err := bot.RunBatch(ctx, cfg, sink)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "seed\twave\tscore\tkills\tmoney\tsteps\tlost\t")
	var total int
	for _, r := range results {
		total += r.Stats.Score
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%d\t%v\t\n", r.Seed, r.Stats.Wave, r.Stats.Score, r.Stats.Kills, r.Stats.Money, r.Steps, r.Ended)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if len(results) > 0 {
		slog.Info("batch finished", "runs", len(results), "mean_score", total/len(results))
	}
	return nil
}
