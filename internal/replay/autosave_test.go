package replay

import (
	"testing"

	"go-tower-sim/internal/app"
)

func TestAutosaverWritesOnGameOver(t *testing.T) {
	opts := app.DefaultOptions()
	opts.Seed = 3
	opts.Lives = 1
	g, err := app.NewGame(opts)
	if err != nil {
		t.Fatal(err)
	}
	a := NewAutosaver(g, t.TempDir())

	g.RequestStartWave()
	for i := 0; i < 2000 && !g.IsGameOver(); i++ {
		g.Step(50)
	}
	if !g.IsGameOver() {
		t.Fatal("undefended session never ended")
	}
	if a.LastSaved() != a.Path(g.SessionID) {
		t.Fatalf("saved %q, want %q", a.LastSaved(), a.Path(g.SessionID))
	}

	f, err := Load(a.LastSaved())
	if err != nil {
		t.Fatal(err)
	}
	if f.Final.SessionID != g.SessionID || len(f.Frames) != int(g.Tick()) {
		t.Errorf("final %+v frames %d ticks %d", f.Final, len(f.Frames), g.Tick())
	}
	if _, match, err := Play(f); err != nil || !match {
		t.Errorf("replay match=%v err=%v", match, err)
	}

	// после рестарта пишется новая сессия
	g.Restart()
	a.Rearm()
	g.RequestStartWave()
	for i := 0; i < 2000 && !g.IsGameOver(); i++ {
		g.Step(50)
	}
	if a.LastSaved() != a.Path(g.SessionID) {
		t.Errorf("second session not saved: %q", a.LastSaved())
	}
}
