package replay

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go-tower-sim/internal/app"

	"github.com/vmihailenco/msgpack/v5"
)

func recordSession(t *testing.T) File {
	t.Helper()
	opts := app.DefaultOptions()
	opts.Seed = 99
	g, err := app.NewGame(opts)
	if err != nil {
		t.Fatal(err)
	}
	rec := NewRecorder(g)

	g.PlaceTower(500, 260, "basic")
	id, _ := g.PlaceTower(580, 260, "basic")
	g.PlaceTower(20, 20, "basic") // отклонено, не записывается
	for i := 0; i < 2500; i++ {
		if i == 400 {
			g.UpgradeTower(id)
			g.CycleTargetMode(id)
		}
		if !g.ECS.GameState.StartedFirstWave {
			g.RequestStartWave()
		}
		g.Step(16)
	}
	g.PlaceTower(660, 340, "basic")
	return rec.Finish(g.FinalStats())
}

func TestPlayReproducesSession(t *testing.T) {
	f := recordSession(t)
	if len(f.Frames) == 0 || len(f.Frames) > 2500 {
		t.Fatalf("frames = %d", len(f.Frames))
	}
	g, match, err := Play(f)
	if err != nil {
		t.Fatal(err)
	}
	if g.Tick() != uint64(len(f.Frames)) {
		t.Errorf("ticks = %d", g.Tick())
	}
	if !match {
		t.Errorf("final stats differ:\nrecorded %+v\nreplayed %+v", f.Final, g.FinalStats())
	}
}

func TestRoundTripAndMatch(t *testing.T) {
	opts := app.DefaultOptions()
	opts.Seed = 7
	g, err := app.NewGame(opts)
	if err != nil {
		t.Fatal(err)
	}
	rec := NewRecorder(g)
	g.PlaceTower(500, 260, "basic")
	g.PlaceTower(580, 260, "basic")
	for i := 0; i < 3000; i++ {
		if g.CanStartWave() {
			g.RequestStartWave()
		}
		g.Step(20)
	}
	f := rec.Finish(g.FinalStats())

	path := filepath.Join(t.TempDir(), "runs", "session.replay")
	if err := Save(path, f); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Header.Seed != 7 || len(loaded.Frames) != len(f.Frames) {
		t.Fatalf("header=%+v frames=%d", loaded.Header, len(loaded.Frames))
	}

	replayed, match, err := Play(loaded)
	if err != nil {
		t.Fatal(err)
	}
	if !match {
		t.Errorf("final stats differ:\nrecorded %+v\nreplayed %+v", f.Final, replayed.FinalStats())
	}
}

func TestLoadRejectsOtherVersion(t *testing.T) {
	f := File{Header: Header{Version: Version + 1}}
	blob, err := msgpack.Marshal(&f)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "old.replay")
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrVersion) {
		t.Errorf("err = %v, want ErrVersion", err)
	}
}

func TestVerifyCatalogHash(t *testing.T) {
	f := recordSession(t)
	f.Header.CatalogHash = "deadbeef"
	if _, err := NewPlayer(f); !errors.Is(err, ErrCatalogMismatch) {
		t.Errorf("err = %v, want ErrCatalogMismatch", err)
	}
}

func TestSaveEmptyPath(t *testing.T) {
	if err := Save("", File{Header: Header{Version: Version}}); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("err = %v, want ErrEmptyPath", err)
	}
}
