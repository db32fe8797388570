package defs

import "errors"

var (
	ErrUnknownTower      = errors.New("unknown tower type")
	ErrUnknownEnemy      = errors.New("unknown enemy type")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrInvalidDefinition = errors.New("invalid definition")
)

// TowerOrder lists tower ids in hotkey order.
var TowerOrder = []string{"basic", "rapid", "sniper", "laser"}

func modePtr(m TargetMode) *TargetMode { return &m }

// DefaultTowerDefinitions returns the built-in tower catalog.
func DefaultTowerDefinitions() []TowerDefinition {
	return []TowerDefinition{
		{
			ID: "basic", Name: "Basic", Description: "Balanced damage and range.",
			Hotkey: "1", UnlockWave: 1, Weapon: WeaponProjectile,
			Tiers: []TierSpec{
				{Cost: 50, Damage: 10, Range: 95, FireMs: 260, Tint: 0x3bd3ff, Scale: 1.0},
				{Cost: 75, Damage: 16, Range: 110, FireMs: 210, Tint: 0x7cf0ff, Scale: 1.0},
				{Cost: 120, Damage: 24, Range: 130, FireMs: 170, Tint: 0xb9f5ff, Scale: 1.15},
			},
		},
		{
			ID: "rapid", Name: "Rapid", Description: "High rate of fire, lower damage.",
			Hotkey: "2", UnlockWave: 10, Weapon: WeaponProjectile,
			Tiers: []TierSpec{
				{Cost: 65, Damage: 6, Range: 85, FireMs: 140, Tint: 0x39ff8f, Scale: 0.95},
				{Cost: 90, Damage: 8, Range: 95, FireMs: 115, Tint: 0x7fffc2, Scale: 1.0},
				{Cost: 140, Damage: 10, Range: 105, FireMs: 95, Tint: 0xc7ffe5, Scale: 1.1},
			},
		},
		{
			ID: "sniper", Name: "Sniper", Description: "Long range, heavy hits (prefers Strong).",
			Hotkey: "3", UnlockWave: 20, Weapon: WeaponHitScan,
			DefaultTargetMode: modePtr(TargetStrongest),
			Tiers: []TierSpec{
				{Cost: 90, Damage: 28, Range: 165, FireMs: 520, Tint: 0xffc857, Scale: 1.05},
				{Cost: 140, Damage: 42, Range: 185, FireMs: 470, Tint: 0xffda85, Scale: 1.1},
				{Cost: 210, Damage: 64, Range: 205, FireMs: 420, Tint: 0xffedc0, Scale: 1.15},
			},
		},
		{
			ID: "laser", Name: "Laser", Description: "Fast ticks, best vs Armored (prefers Armored).",
			Hotkey: "4", UnlockWave: 40, Weapon: WeaponBeam,
			DefaultTargetMode: modePtr(TargetMostArmored),
			Tiers: []TierSpec{
				{Cost: 220, Damage: 6, Range: 145, FireMs: 110, Tint: 0xff6bff, Scale: 1.05},
			},
		},
	}
}

// DefaultEnemyDefinitions returns the built-in enemy catalog.
func DefaultEnemyDefinitions() []EnemyDefinition {
	return []EnemyDefinition{
		{
			ID: EnemyRunner, Name: "Runner", BaseHP: 18, BaseSpeed: 120, Reward: 6, Armor: 0,
			ScaleHPPerWave: 0.085, ScaleSpeedPerWave: 0.01, ScoreWeight: 0.7, Tint: 0xff4d6d,
		},
		{
			ID: EnemyBrute, Name: "Brute", BaseHP: 70, BaseSpeed: 52, Reward: 12, Armor: 0,
			ScaleHPPerWave: 0.14, ScaleSpeedPerWave: 0.007, ScoreWeight: 1.5, Tint: 0xb54dff,
		},
		{
			ID: EnemyArmored, Name: "Armored", BaseHP: 40, BaseSpeed: 72, Reward: 10, Armor: 4,
			ScaleHPPerWave: 0.12, ScaleSpeedPerWave: 0.01, ScoreWeight: 1.8, Tint: 0x8fb3c9,
		},
	}
}

func init() {
	// Встроенный каталог; JSON-файлы могут его переопределить через Load*Definitions.
	TowerLibrary = indexTowers(DefaultTowerDefinitions())
	EnemyLibrary = indexEnemies(DefaultEnemyDefinitions())
}

// LookupTower returns the tower definition for id.
func LookupTower(id string) (TowerDefinition, bool) {
	def, ok := TowerLibrary[id]
	return def, ok
}

// LookupEnemy returns the enemy definition for id.
func LookupEnemy(id string) (EnemyDefinition, bool) {
	def, ok := EnemyLibrary[id]
	return def, ok
}
