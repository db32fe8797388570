// internal/defs/loader.go
package defs

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
)

// TowerLibrary is a map to hold all tower definitions, keyed by their ID.
var TowerLibrary map[string]TowerDefinition

// EnemyLibrary is a map to hold all enemy definitions, keyed by their ID.
var EnemyLibrary map[string]EnemyDefinition

// LoadTowerDefinitions reads the tower configuration file and replaces the TowerLibrary.
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := json.Unmarshal(file, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}
	for _, def := range towerDefs {
		if err := ValidateTower(def); err != nil {
			return err
		}
	}

	TowerLibrary = indexTowers(towerDefs)
	slog.Info("loaded tower definitions", "count", len(TowerLibrary), "path", path)
	return nil
}

// LoadEnemyDefinitions reads the enemy configuration file and replaces the EnemyLibrary.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}
	for _, def := range enemyDefs {
		if err := ValidateEnemy(def); err != nil {
			return err
		}
	}

	EnemyLibrary = indexEnemies(enemyDefs)
	slog.Info("loaded enemy definitions", "count", len(EnemyLibrary), "path", path)
	return nil
}

// ValidateTower rejects definitions the simulation cannot run.
func ValidateTower(def TowerDefinition) error {
	if def.ID == "" {
		return fmt.Errorf("%w: tower without id", ErrInvalidDefinition)
	}
	if len(def.Tiers) == 0 {
		return fmt.Errorf("%w: tower %q has no tiers", ErrInvalidDefinition, def.ID)
	}
	switch def.Weapon {
	case WeaponProjectile, WeaponHitScan, WeaponBeam:
	default:
		return fmt.Errorf("%w: tower %q has weapon %q", ErrInvalidDefinition, def.ID, def.Weapon)
	}
	for i, tier := range def.Tiers {
		if tier.FireMs <= 0 || tier.Range <= 0 || tier.Cost < 0 {
			return fmt.Errorf("%w: tower %q tier %d", ErrInvalidDefinition, def.ID, i+1)
		}
	}
	return nil
}

// ValidateEnemy rejects definitions the simulation cannot run.
func ValidateEnemy(def EnemyDefinition) error {
	if def.ID == "" {
		return fmt.Errorf("%w: enemy without id", ErrInvalidDefinition)
	}
	if def.BaseHP <= 0 || def.BaseSpeed <= 0 || def.Armor < 0 {
		return fmt.Errorf("%w: enemy %q", ErrInvalidDefinition, def.ID)
	}
	return nil
}

// Fingerprint hashes the active catalog so recorded sessions can detect drift.
func Fingerprint() string {
	towers := make([]TowerDefinition, 0, len(TowerLibrary))
	for _, id := range sortedKeys(TowerLibrary) {
		towers = append(towers, TowerLibrary[id])
	}
	enemies := make([]EnemyDefinition, 0, len(EnemyLibrary))
	for _, id := range sortedKeys(EnemyLibrary) {
		enemies = append(enemies, EnemyLibrary[id])
	}
	blob, err := json.Marshal(struct {
		Towers  []TowerDefinition `json:"towers"`
		Enemies []EnemyDefinition `json:"enemies"`
	}{towers, enemies})
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(blob)
	return hex.EncodeToString(sum[:])
}

func indexTowers(list []TowerDefinition) map[string]TowerDefinition {
	lib := make(map[string]TowerDefinition, len(list))
	order := make([]string, 0, len(list))
	for _, def := range list {
		lib[def.ID] = def
		order = append(order, def.ID)
	}
	sort.SliceStable(order, func(i, j int) bool {
		return lib[order[i]].Hotkey < lib[order[j]].Hotkey
	})
	TowerOrder = order
	return lib
}

func indexEnemies(list []EnemyDefinition) map[string]EnemyDefinition {
	lib := make(map[string]EnemyDefinition, len(list))
	for _, def := range list {
		lib[def.ID] = def
	}
	return lib
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
