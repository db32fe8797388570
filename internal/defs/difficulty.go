package defs

import "fmt"

// Difficulty carries the multipliers chosen once at session start.
type Difficulty struct {
	Key            string  `json:"key"`
	Label          string  `json:"label"`
	EnemyHPMul     float64 `json:"enemy_hp_mul"`
	EnemySpeedMul  float64 `json:"enemy_speed_mul"`
	EnemyRewardMul float64 `json:"enemy_reward_mul"`
	ScoreMul       float64 `json:"score_mul"`
	StartingMoney  int     `json:"starting_money"`
}

// DifficultyOrder is the menu order of DifficultyLibrary keys.
var DifficultyOrder = []string{"easy", "medium", "hard"}

// DifficultyLibrary holds the selectable difficulties, keyed by Key.
var DifficultyLibrary = map[string]Difficulty{
	"easy": {
		Key: "easy", Label: "Easy",
		EnemyHPMul: 1, EnemySpeedMul: 1, EnemyRewardMul: 1,
		ScoreMul: 1, StartingMoney: 120,
	},
	"medium": {
		Key: "medium", Label: "Medium",
		EnemyHPMul: 1.2, EnemySpeedMul: 1.08, EnemyRewardMul: 1.05,
		ScoreMul: 1.1, StartingMoney: 105,
	},
	"hard": {
		Key: "hard", Label: "Hard",
		EnemyHPMul: 1.45, EnemySpeedMul: 1.15, EnemyRewardMul: 1.1,
		ScoreMul: 1.25, StartingMoney: 90,
	},
}

// LookupDifficulty returns the difficulty for key.
func LookupDifficulty(key string) (Difficulty, error) {
	d, ok := DifficultyLibrary[key]
	if !ok {
		return Difficulty{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, key)
	}
	return d, nil
}
