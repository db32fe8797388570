package system

import (
	"testing"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/utils"
)

func fixedWave(total, packEvery, packSize int, delay float64) func(int) defs.WaveConfig {
	return func(w int) defs.WaveConfig {
		return defs.WaveConfig{
			Wave:         w,
			Total:        total,
			SpawnDelayMs: delay,
			Weights:      []utils.WeightedEntry{{Key: defs.EnemyRunner, Weight: 1}},
			PackEvery:    packEvery,
			PackSize:     packSize,
		}
	}
}

func newWaveSystem(t *testing.T, opts WaveOptions) (*WaveSystem, *recorder) {
	t.Helper()
	ecs, d, rec := newTestWorld(t)
	return NewWaveSystem(ecs, d, utils.NewPRNGService(7), opts), rec
}

func TestSingleRunnerWaveClearsOnce(t *testing.T) {
	opts := DefaultWaveOptions()
	opts.WaveConfig = fixedWave(1, 0, 0, 500)
	ws, rec := newWaveSystem(t, opts)
	ecs := ws.ecs
	money := ecs.Economy.Money

	if _, ok := ws.StartWave(); !ok {
		t.Fatal("first wave must be startable immediately")
	}

	ecs.GameTime = 200
	ws.Update()
	if len(ecs.Enemies) != 0 {
		t.Fatal("spawned before the first spawn delay")
	}

	ecs.GameTime = config.FirstSpawnDelayMs
	ws.Update()
	if len(ecs.Enemies) != 1 {
		t.Fatalf("enemies = %d, want 1", len(ecs.Enemies))
	}
	if ws.CheckCleared() {
		t.Fatal("wave cleared while its enemy is alive")
	}

	for _, id := range ecs.EnemyIDs() {
		ApplyDamage(ecs, ws.eventDispatcher, 0, id, 1000)
	}
	if !ws.CheckCleared() {
		t.Fatal("wave should clear once the last enemy dies")
	}
	if ws.CheckCleared() {
		t.Fatal("wave cleared twice")
	}

	// 6 за убийство + 25 + 5*1 бонус
	if got := ecs.Economy.Money - money; got != 36 {
		t.Errorf("money gain = %d, want 36", got)
	}
	if ecs.Economy.Score != 13+50 {
		t.Errorf("score = %d, want 63", ecs.Economy.Score)
	}
	if rec.count(event.WaveCleared) != 1 {
		t.Errorf("WaveCleared = %d, want 1", rec.count(event.WaveCleared))
	}
	gs := ecs.GameState
	if gs.WaveState != component.Intermission || gs.LastClearedWave != 1 {
		t.Errorf("state=%s lastCleared=%d", gs.WaveState, gs.LastClearedWave)
	}
	if gs.AutoStartAt != ecs.GameTime+config.IntermissionMs {
		t.Errorf("auto start at %v, want %v", gs.AutoStartAt, ecs.GameTime+config.IntermissionMs)
	}
}

func TestFirstIntermissionNeverAutoStarts(t *testing.T) {
	ws, _ := newWaveSystem(t, DefaultWaveOptions())
	ws.ecs.GameTime = 60000
	ws.Update()
	if len(ws.ecs.Spawners) != 0 || ws.ecs.GameState.StartedFirstWave {
		t.Fatal("first wave started without a request")
	}
}

func TestAutoStartAfterIntermission(t *testing.T) {
	opts := DefaultWaveOptions()
	opts.WaveConfig = fixedWave(1, 0, 0, 500)
	ws, _ := newWaveSystem(t, opts)
	ecs := ws.ecs

	ws.StartWave()
	ecs.GameTime = 300
	ws.Update()
	for _, id := range ecs.EnemyIDs() {
		ApplyDamage(ecs, ws.eventDispatcher, 0, id, 1000)
	}
	ws.CheckCleared()

	ecs.GameTime += config.IntermissionMs - 1
	ws.Update()
	if ecs.GameState.WaveState != component.Intermission {
		t.Fatal("auto-started early")
	}
	ecs.GameTime += 1
	ws.Update()
	if ecs.GameState.WaveState != component.Running || ecs.GameState.Wave != 2 {
		t.Errorf("state=%s wave=%d, want running wave 2", ecs.GameState.WaveState, ecs.GameState.Wave)
	}
}

func TestEarlyStartPolicy(t *testing.T) {
	tests := []struct {
		name  string
		early bool
	}{
		{"allowed", true},
		{"wait for intermission", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultWaveOptions()
			opts.AllowEarlyStart = tt.early
			opts.WaveConfig = fixedWave(1, 0, 0, 500)
			ws, _ := newWaveSystem(t, opts)
			ecs := ws.ecs

			if !ws.CanStartWave() {
				t.Fatal("first wave must be startable immediately")
			}
			ws.StartWave()
			ecs.GameTime = 300
			ws.Update()
			for _, id := range ecs.EnemyIDs() {
				ApplyDamage(ecs, ws.eventDispatcher, 0, id, 1000)
			}
			ws.CheckCleared()

			ecs.GameTime += config.IntermissionMs / 2
			if got := ws.CanStartWave(); got != tt.early {
				t.Errorf("mid-intermission CanStartWave = %v, want %v", got, tt.early)
			}
			ecs.GameTime = ecs.GameState.NextWaveAvailableAt
			if !ws.CanStartWave() {
				t.Error("start refused after the intermission elapsed")
			}
		})
	}
}

func TestSwarmPack(t *testing.T) {
	opts := DefaultWaveOptions()
	opts.WaveConfig = fixedWave(5, 2, 3, 100)
	ws, _ := newWaveSystem(t, opts)
	ecs := ws.ecs
	ws.StartWave()

	for i := 0; i <= 70; i++ {
		ecs.GameTime = float64(i * 10)
		ws.Update()
	}

	sp := ecs.Spawners[0]
	if !sp.Done() || sp.SwarmRemaining != 0 {
		t.Fatalf("spawned=%d swarmRemaining=%d", sp.Spawned, sp.SwarmRemaining)
	}
	swarm := 0
	for _, e := range ecs.Enemies {
		if e.IsSwarm {
			swarm++
			if e.DefID != defs.EnemyRunner {
				t.Errorf("swarm member is %q, want runner", e.DefID)
			}
		}
	}
	if len(ecs.Enemies) != 5 || swarm != 3 {
		t.Errorf("enemies=%d swarm=%d, want 5 and 3", len(ecs.Enemies), swarm)
	}
}

func TestStackingIsBounded(t *testing.T) {
	ws, rec := newWaveSystem(t, DefaultWaveOptions())
	for i := 1; i <= config.MaxConcurrentSpawners; i++ {
		if w, ok := ws.StartWave(); !ok || w != i {
			t.Fatalf("start %d: got wave %d ok=%v", i, w, ok)
		}
	}
	if _, ok := ws.StartWave(); ok {
		t.Fatal("started more spawners than allowed")
	}
	if rec.count(event.WaveStarted) != config.MaxConcurrentSpawners {
		t.Errorf("WaveStarted = %d", rec.count(event.WaveStarted))
	}
}

func TestFinishedWaveFreesStackingSlot(t *testing.T) {
	opts := DefaultWaveOptions()
	opts.MaxSpawners = 2
	opts.WaveConfig = func(w int) defs.WaveConfig {
		total := 50
		if w == 1 {
			total = 1
		}
		return fixedWave(total, 0, 0, 500)(w)
	}
	ws, _ := newWaveSystem(t, opts)
	ecs := ws.ecs
	ws.StartWave()
	ws.StartWave()

	ecs.GameTime = 300
	ws.Update()
	if ws.CanStartWave() {
		t.Fatal("both slots are busy, stacking must be refused")
	}

	for _, id := range ecs.EnemyIDs() {
		if ecs.Enemies[id].Wave == 1 {
			ApplyDamage(ecs, ws.eventDispatcher, 0, id, 1000)
		}
	}
	if ws.CheckCleared() {
		t.Fatal("wave 2 is still spawning, nothing may clear")
	}
	if !ws.CanStartWave() {
		t.Fatal("finished wave 1 still holds a stacking slot")
	}

	ecs.GameTime = 310
	ws.Update()
	if len(ecs.Spawners) != 1 || ecs.Spawners[0].Wave != 2 {
		t.Fatalf("spawners = %d, want only wave 2", len(ecs.Spawners))
	}
	if w, ok := ws.StartWave(); !ok || w != 3 {
		t.Fatalf("StartWave = %d, %v; want wave 3", w, ok)
	}
	if ecs.GameState.LastClearedWave != 0 {
		t.Errorf("lastCleared = %d, clearing stays global", ecs.GameState.LastClearedWave)
	}
}

func TestStackedWavesEachPayBonus(t *testing.T) {
	opts := DefaultWaveOptions()
	opts.WaveConfig = fixedWave(1, 0, 0, 500)
	ws, rec := newWaveSystem(t, opts)
	ecs := ws.ecs
	ws.StartWave()
	ws.StartWave()

	ecs.GameTime = 300
	ws.Update()
	for _, id := range ecs.EnemyIDs() {
		ApplyDamage(ecs, ws.eventDispatcher, 0, id, 1000)
	}
	money := ecs.Economy.Money
	if !ws.CheckCleared() {
		t.Fatal("both waves should clear together")
	}
	if got := ecs.Economy.Money - money; got != (25+5)+(25+10) {
		t.Errorf("bonus = %d, want 65", got)
	}
	if rec.count(event.WaveCleared) != 2 {
		t.Errorf("WaveCleared = %d, want 2", rec.count(event.WaveCleared))
	}
}

func TestScaleEnemy(t *testing.T) {
	runner, _ := defs.LookupEnemy(defs.EnemyRunner)
	easy := defs.DifficultyLibrary["easy"]

	got := ScaleEnemy(runner, 1, easy)
	if got.HP != 18 || got.Speed != 120 || got.Reward != 6 {
		t.Errorf("wave 1 easy runner = %+v", got)
	}

	hard := defs.DifficultyLibrary["hard"]
	got = ScaleEnemy(runner, 11, hard)
	// 18 * 1.85 * 1.45 = 48.28; 120 * 1.1 * 1.15 = 151.8; 6 * 1.1 = 6.6
	if got.HP != 48 || got.Speed != 151 || got.Reward != 6 {
		t.Errorf("wave 11 hard runner = %+v", got)
	}
}
