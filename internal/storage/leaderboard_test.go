package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"go-tower-sim/internal/event"
)

func openTemp(t *testing.T) *Leaderboard {
	t.Helper()
	lb, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { lb.Close() })
	return lb
}

func TestTopOrdersByScore(t *testing.T) {
	lb := openTemp(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	for i, e := range []Entry{
		{SessionID: "a", Difficulty: "easy", Score: 100, Wave: 3, Kills: 20},
		{SessionID: "b", Difficulty: "hard", Score: 900, Wave: 12, Kills: 150},
		{SessionID: "c", Difficulty: "medium", Score: 400, Wave: 7, Kills: 60},
	} {
		e.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := lb.Record(ctx, e); err != nil {
			t.Fatal(err)
		}
	}

	top, err := lb.Top(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 2 || top[0].SessionID != "b" || top[1].SessionID != "c" {
		t.Fatalf("top = %+v", top)
	}
	if top[0].Wave != 12 || top[0].Kills != 150 || top[0].Difficulty != "hard" {
		t.Errorf("entry = %+v", top[0])
	}
}

func TestRecordUpsertsSession(t *testing.T) {
	lb := openTemp(t)
	ctx := context.Background()
	lb.Record(ctx, Entry{SessionID: "s", Difficulty: "easy", Score: 10})
	lb.Record(ctx, Entry{SessionID: "s", Difficulty: "easy", Score: 50})

	top, err := lb.Top(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 1 || top[0].Score != 50 {
		t.Errorf("top = %+v", top)
	}
}

func TestRecordNeedsSessionID(t *testing.T) {
	lb := openTemp(t)
	if err := lb.Record(context.Background(), Entry{Score: 1}); !errors.Is(err, ErrNoSessionID) {
		t.Errorf("err = %v", err)
	}
}

func TestGameOverEventWritesRow(t *testing.T) {
	lb, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer lb.Close()

	d := event.NewDispatcher()
	d.Subscribe(event.GameOver, lb)
	d.Dispatch(event.Event{Type: event.GameOver, Data: event.FinalStats{
		SessionID: "over", Difficulty: "medium", Score: 321, Wave: 5, Kills: 44,
	}})

	top, err := lb.Top(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 1 || top[0].SessionID != "over" || top[0].Score != 321 {
		t.Errorf("top = %+v", top)
	}
}
