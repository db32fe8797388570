package defs

import (
	"math"
	"testing"

	"go-tower-sim/internal/utils"
)

func TestComputeWaveConfigCurve(t *testing.T) {
	tests := []struct {
		wave      int
		total     int
		delay     float64
		keys      []string
		packEvery int
		packSize  int
	}{
		{wave: 1, total: 14, delay: 632, keys: []string{"runner"}, packEvery: 14, packSize: 3},
		{wave: 0, total: 14, delay: 632, keys: []string{"runner"}, packEvery: 14, packSize: 3},
		{wave: 10, total: 55, delay: 470, keys: []string{"runner", "brute"}, packEvery: 9, packSize: 6},
		{wave: 20, total: 88, delay: 290, keys: []string{"runner", "brute", "armored"}, packEvery: 9, packSize: 7},
		{wave: 40, total: 148, delay: 260, keys: []string{"runner", "brute", "armored"}, packEvery: 9, packSize: 7},
	}
	for _, tt := range tests {
		cfg := ComputeWaveConfig(tt.wave)
		if cfg.Total != tt.total {
			t.Errorf("wave %d: total = %d, want %d", tt.wave, cfg.Total, tt.total)
		}
		if cfg.SpawnDelayMs != tt.delay {
			t.Errorf("wave %d: delay = %v, want %v", tt.wave, cfg.SpawnDelayMs, tt.delay)
		}
		if cfg.PackEvery != tt.packEvery || cfg.PackSize != tt.packSize {
			t.Errorf("wave %d: pack = %d/%d, want %d/%d", tt.wave, cfg.PackEvery, cfg.PackSize, tt.packEvery, tt.packSize)
		}
		if len(cfg.Weights) != len(tt.keys) {
			t.Fatalf("wave %d: %d weight entries, want %d", tt.wave, len(cfg.Weights), len(tt.keys))
		}
		for i, key := range tt.keys {
			if cfg.Weights[i].Key != key {
				t.Errorf("wave %d: weight[%d] = %q, want %q", tt.wave, i, cfg.Weights[i].Key, key)
			}
		}
	}
}

func TestComputeWaveConfigWeightRamp(t *testing.T) {
	at := func(wave int, key string) float64 {
		for _, e := range ComputeWaveConfig(wave).Weights {
			if e.Key == key {
				return e.Weight
			}
		}
		t.Fatalf("wave %d has no %q entry", wave, key)
		return 0
	}

	if got := at(10, EnemyBrute); got != 0.6 {
		t.Fatalf("brute weight at unlock = %v, want 0.6", got)
	}
	if got := at(15, EnemyBrute); math.Abs(got-1.05) > 1e-9 {
		t.Fatalf("brute weight at 15 = %v, want 1.05", got)
	}
	if at(30, EnemyBrute) != at(50, EnemyBrute) {
		t.Fatal("brute weight should be clamped past the ramp")
	}
	if got := at(20, EnemyArmored); got != 0.15 {
		t.Fatalf("armored weight at unlock = %v, want 0.15", got)
	}
	if at(1, EnemyRunner) != 1.6 {
		t.Fatal("runner weight must stay fixed")
	}
}

func TestWaveOneDrawsOnlyRunners(t *testing.T) {
	cfg := ComputeWaveConfig(1)
	rng := utils.NewPRNGService(99)
	for i := 0; i < 20; i++ {
		if got := rng.ChooseWeighted(cfg.Weights); got != EnemyRunner {
			t.Fatalf("draw %d = %q, want runner", i, got)
		}
	}
}
