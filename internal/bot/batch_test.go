package bot_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"go-tower-sim/internal/bot"
	"go-tower-sim/internal/replay"
)

func smallBatch() bot.BatchConfig {
	cfg := bot.DefaultBatchConfig()
	cfg.Runs = 3
	cfg.Parallel = 2
	cfg.BaseSeed = 40
	cfg.MaxWave = 2
	cfg.MaxSteps = 6000
	cfg.StepMs = 20
	return cfg
}

func TestRunBatchOrdersBySeedAndCallsSink(t *testing.T) {
	var calls atomic.Int32
	results, err := bot.RunBatch(context.Background(), smallBatch(), func(_ context.Context, _ bot.Result) error {
		calls.Add(1)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 || calls.Load() != 3 {
		t.Fatalf("results=%d sink calls=%d", len(results), calls.Load())
	}
	for i, r := range results {
		if r.Seed != 40+int64(i) {
			t.Errorf("result %d has seed %d", i, r.Seed)
		}
		if r.Stats.SessionID == "" || r.Steps == 0 {
			t.Errorf("result %d looks empty: %+v", i, r)
		}
	}
}

func TestRunBatchIsDeterministic(t *testing.T) {
	a, err := bot.RunBatch(context.Background(), smallBatch(), nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := bot.RunBatch(context.Background(), smallBatch(), nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i].Stats.Outcome() != b[i].Stats.Outcome() || a[i].Steps != b[i].Steps {
			t.Errorf("seed %d diverged: %+v vs %+v", a[i].Seed, a[i].Stats, b[i].Stats)
		}
	}
}

func TestRunBatchSinkErrorStopsBatch(t *testing.T) {
	boom := errors.New("disk full")
	_, err := bot.RunBatch(context.Background(), smallBatch(), func(context.Context, bot.Result) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}

func TestRecordedBotSessionReplays(t *testing.T) {
	cfg := smallBatch()
	cfg.Record = true
	res, err := bot.RunSession(context.Background(), cfg, 77)
	if err != nil {
		t.Fatal(err)
	}
	if res.Replay == nil || len(res.Replay.Frames) != res.Steps {
		t.Fatalf("replay missing or short: steps=%d", res.Steps)
	}
	g, match, err := replay.Play(*res.Replay)
	if err != nil {
		t.Fatal(err)
	}
	if !match {
		t.Errorf("replay diverged:\nrecorded %+v\nreplayed %+v", res.Stats, g.FinalStats())
	}
}

func TestRunSessionHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bot.RunSession(ctx, smallBatch(), 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}
