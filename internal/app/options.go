package app

import (
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/system"
)

// Options — параметры сессии, фиксируются при старте.
type Options struct {
	Difficulty            string  `json:"difficulty" msgpack:"difficulty"`
	Seed                  int64   `json:"seed" msgpack:"seed"` // 0 — случайный
	Lives                 int     `json:"lives" msgpack:"lives"`
	AutoStartWaves        bool    `json:"auto_start_waves" msgpack:"auto_start_waves"`
	AllowStacking         bool    `json:"allow_stacking" msgpack:"allow_stacking"`
	AllowEarlyStart       bool    `json:"allow_early_start" msgpack:"allow_early_start"`
	MaxConcurrentSpawners int     `json:"max_concurrent_spawners" msgpack:"max_concurrent_spawners"`
	IntermissionMs        float64 `json:"intermission_ms" msgpack:"intermission_ms"`
}

// DefaultOptions returns the standard session on the default difficulty.
func DefaultOptions() Options {
	return Options{
		Difficulty:            config.DefaultDifficulty,
		Lives:                 config.StartingLives,
		AutoStartWaves:        true,
		AllowStacking:         true,
		AllowEarlyStart:       true,
		MaxConcurrentSpawners: config.MaxConcurrentSpawners,
		IntermissionMs:        config.IntermissionMs,
	}
}

func (o Options) waveOptions() system.WaveOptions {
	w := system.DefaultWaveOptions()
	w.AutoStart = o.AutoStartWaves
	w.AllowStacking = o.AllowStacking
	w.AllowEarlyStart = o.AllowEarlyStart
	if o.MaxConcurrentSpawners > 0 {
		w.MaxSpawners = o.MaxConcurrentSpawners
	}
	if o.IntermissionMs > 0 {
		w.IntermissionMs = o.IntermissionMs
	}
	return w
}
