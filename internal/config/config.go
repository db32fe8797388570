// internal/config/config.go
package config

import (
	"image/color"

	"go-tower-sim/internal/types"
)

const (
	ScreenWidth       = 1080
	ScreenHeight      = 730
	GridSize          = 40.0
	TopUIHeight       = 120.0 // полоса HUD сверху, башни туда не ставятся
	MaxDeltaTime      = 0.06
	ClickCooldown     = 150
	InspectorWidth    = 260
	IndicatorOffsetX  = 30
	IndicatorRadius   = 10.0
	SpeedButtonY      = 30
	SpeedButtonSize   = 12.0
	PauseButtonOffset = 70
	PaletteButtonW    = 150
	PaletteButtonH    = 50
	PaletteTop        = 56
	TowerDrawSize     = 30.0
	EnemyDrawSize     = 24.0
	ProjectileRadius  = 6.0
	TracerDurationMs  = 50.0
	HitFlashMs        = 80.0
	PathStrokeWidth   = 10.0
	StartingLives     = 20
	DefaultDifficulty = "easy"
)

// Движение по пути
const (
	PathBlockRadius    = 24.0 // клетки ближе этого к пути заняты дорогой
	WaypointSnapRadius = 14.0
	EnemyHitRadius     = 12.0
	ProgressSegmentW   = 100000.0
)

// Снаряды и лучи
const (
	ProjectileSpeed      = 780.0 // pixels per second
	ProjectileHitRadius  = 14.0
	ProjectileLifetimeMs = 900.0
	BeamMaxPierce        = 5
	BeamFalloff          = 0.7
	BeamRampFullMs       = 2000.0
	BeamRampMaxBonus     = 1.5
)

// Волны
const (
	WaveBaseCount         = 10
	WaveCountPerWave      = 3
	WaveCountSoftCap      = 18
	WaveCountSoftCapRate  = 1.5
	SpawnDelayBaseMs      = 650.0
	SpawnDelayPerWaveMs   = 18.0
	SpawnDelayFloorMs     = 260.0
	BruteUnlockWave       = 10
	ArmoredUnlockWave     = 20
	RunnerWeight          = 1.6
	BruteBaseWeight       = 0.6
	BruteRampWeight       = 0.9
	ArmoredBaseWeight     = 0.15
	ArmoredRampWeight     = 0.8
	WeightRampWaves       = 10.0
	PackEveryMax          = 14
	PackEveryMin          = 9
	PackSizeBase          = 3
	PackSizeMax           = 7
	FirstSpawnDelayMs     = 250.0
	SwarmSpacingMs        = 90.0
	IntermissionMs        = 5000.0
	MaxConcurrentSpawners = 3
)

// Экономика
const (
	SellRefundRate        = 0.7
	KillScoreWeightFactor = 10.0
	WaveClearMoneyBase    = 25
	WaveClearMoneyPerWave = 5
	WaveClearScorePerWave = 50
)

// Path — ломаная, по которой идут враги. Вершины лежат на линиях сетки,
// поэтому соседние клетки тоже считаются дорогой.
var Path = []types.Vec2{
	{X: 40, Y: 200},
	{X: 1000, Y: 200},
	{X: 1000, Y: 640},
	{X: 120, Y: 640},
	{X: 120, Y: 400},
	{X: 880, Y: 400},
}

var (
	BackgroundColor   = color.RGBA{11, 15, 20, 255}
	GridColor         = color.RGBA{20, 32, 51, 255}
	PathColor         = color.RGBA{27, 42, 67, 255}
	WaypointColor     = color.RGBA{42, 63, 99, 255}
	TextLightColor    = color.RGBA{219, 231, 255, 255}
	TextDimColor      = color.RGBA{159, 179, 216, 255}
	ProjectileColor   = color.RGBA{0, 255, 255, 255}
	TracerColor       = color.RGBA{255, 237, 192, 242}
	BeamColor         = color.RGBA{255, 107, 255, 220}
	RangeRingColor    = color.RGBA{0, 255, 255, 90}
	PanelColor        = color.RGBA{16, 24, 36, 230}
	OverlayColor      = color.RGBA{0, 0, 0, 160}
	HealthBarColor    = color.RGBA{80, 220, 120, 255}
	ArmorFlashColor   = color.RGBA{132, 216, 255, 255}
	IntermissionColor = color.RGBA{70, 130, 180, 255}  // можно запускать волну
	WaveRunningColor  = color.RGBA{220, 60, 60, 255}   // волна идёт, стек запрещён
	WaveStackColor    = color.RGBA{194, 178, 128, 255} // волна идёт, можно добавить ещё
	PauseButtonColor  = color.RGBA{219, 231, 255, 220}
	PlayButtonColor   = color.RGBA{80, 220, 120, 230}
	LockedColor       = color.RGBA{90, 90, 100, 255}
	SpeedButtonColors = []color.RGBA{
		{70, 130, 180, 220},  // x1
		{220, 60, 60, 220},   // x2
		{194, 178, 128, 255}, // x4, песочно-жёлтый
	}
	SpeedMultipliers = []float64{1, 2, 4}
)
