package defs

import (
	"math"

	"go-tower-sim/internal/config"
	"go-tower-sim/internal/utils"
)

// WaveConfig описывает параметры одной волны врагов.
type WaveConfig struct {
	Wave         int                   `json:"wave" msgpack:"wave"`
	Total        int                   `json:"total" msgpack:"total"`
	SpawnDelayMs float64               `json:"spawn_delay_ms" msgpack:"spawn_delay_ms"`
	Weights      []utils.WeightedEntry `json:"weights" msgpack:"weights"`
	PackEvery    int                   `json:"pack_every" msgpack:"pack_every"`
	PackSize     int                   `json:"pack_size" msgpack:"pack_size"`
}

// Ключи базовых типов врагов, на которые опирается кривая волн.
const (
	EnemyRunner  = "runner"
	EnemyBrute   = "brute"
	EnemyArmored = "armored"
)

// ComputeWaveConfig is a pure function of the wave number. Waves below 1 count as 1.
func ComputeWaveConfig(wave int) WaveConfig {
	w := max(1, wave)
	fw := float64(w)

	total := int(math.Floor(config.WaveBaseCount + fw*config.WaveCountPerWave +
		math.Min(config.WaveCountSoftCap, fw*config.WaveCountSoftCapRate)))
	delay := math.Max(config.SpawnDelayFloorMs, config.SpawnDelayBaseMs-fw*config.SpawnDelayPerWaveMs)

	weights := []utils.WeightedEntry{{Key: EnemyRunner, Weight: config.RunnerWeight}}
	if w >= config.BruteUnlockWave {
		ramp := utils.Clamp01(float64(w-config.BruteUnlockWave)/config.WeightRampWaves) * config.BruteRampWeight
		weights = append(weights, utils.WeightedEntry{Key: EnemyBrute, Weight: config.BruteBaseWeight + ramp})
	}
	if w >= config.ArmoredUnlockWave {
		ramp := utils.Clamp01(float64(w-config.ArmoredUnlockWave)/config.WeightRampWaves) * config.ArmoredRampWeight
		weights = append(weights, utils.WeightedEntry{Key: EnemyArmored, Weight: config.ArmoredBaseWeight + ramp})
	}

	return WaveConfig{
		Wave:         w,
		Total:        total,
		SpawnDelayMs: delay,
		Weights:      weights,
		PackEvery:    max(config.PackEveryMin, config.PackEveryMax-w/2),
		PackSize:     min(config.PackSizeMax, config.PackSizeBase+w/3),
	}
}
