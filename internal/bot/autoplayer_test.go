package bot_test

import (
	"testing"

	"go-tower-sim/internal/app"
	"go-tower-sim/internal/bot"
	"go-tower-sim/internal/interfaces"
)

var _ interfaces.Game = (*app.Game)(nil)

func TestAutoPlayerBuildsAndClearsWaves(t *testing.T) {
	opts := app.DefaultOptions()
	opts.Seed = 3
	g, err := app.NewGame(opts)
	if err != nil {
		t.Fatal(err)
	}
	ap := bot.NewAutoPlayer(g.ECS.Path)

	for i := 0; i < 20000 && !g.IsGameOver(); i++ {
		ap.Decide(g)
		g.Step(16)
	}

	snap := g.Snapshot()
	if len(snap.Towers) == 0 {
		t.Fatal("bot built nothing")
	}
	if snap.Kills == 0 || snap.LastClearedWave == 0 {
		t.Errorf("kills=%d lastCleared=%d", snap.Kills, snap.LastClearedWave)
	}
}

func TestAutoPlayerIsDeterministic(t *testing.T) {
	run := func() *app.Game {
		opts := app.DefaultOptions()
		opts.Seed = 11
		g, err := app.NewGame(opts)
		if err != nil {
			t.Fatal(err)
		}
		ap := bot.NewAutoPlayer(g.ECS.Path)
		for i := 0; i < 8000 && !g.IsGameOver(); i++ {
			ap.Decide(g)
			g.Step(16)
		}
		return g
	}
	a, b := run(), run()
	if a.FinalStats().Outcome() != b.FinalStats().Outcome() {
		t.Errorf("runs diverged:\n%+v\n%+v", a.FinalStats(), b.FinalStats())
	}
}
