// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	BaseHP            int     `json:"base_hp"`
	BaseSpeed         float64 `json:"base_speed"` // пикселей в секунду
	Reward            int     `json:"reward"`
	Armor             int     `json:"armor"` // плоское снижение урона
	ScaleHPPerWave    float64 `json:"scale_hp_per_wave"`
	ScaleSpeedPerWave float64 `json:"scale_speed_per_wave"`
	ScoreWeight       float64 `json:"score_weight"`
	Tint              uint32  `json:"tint"`
}

// HPScale returns 1 + (wave-1)*ScaleHPPerWave; waves below 1 count as 1.
func (d EnemyDefinition) HPScale(wave int) float64 {
	return 1 + float64(max(1, wave)-1)*d.ScaleHPPerWave
}

// SpeedScale returns 1 + (wave-1)*ScaleSpeedPerWave; waves below 1 count as 1.
func (d EnemyDefinition) SpeedScale(wave int) float64 {
	return 1 + float64(max(1, wave)-1)*d.ScaleSpeedPerWave
}
