package entity

import (
	"math"
	"slices"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/types"
)

// EnemyView — копия врага для отрисовки.
type EnemyView struct {
	ID      types.EntityID `json:"id"`
	DefID   string         `json:"def_id"`
	X       float64        `json:"x"`
	Y       float64        `json:"y"`
	HP      int            `json:"hp"`
	MaxHP   int            `json:"max_hp"`
	Armor   int            `json:"armor"`
	IsSwarm bool           `json:"is_swarm"`
}

// TowerView — копия башни для отрисовки.
type TowerView struct {
	ID         types.EntityID   `json:"id"`
	DefID      string           `json:"def_id"`
	X          float64          `json:"x"`
	Y          float64          `json:"y"`
	Tier       int              `json:"tier"`
	Range      float64          `json:"range"`
	TargetMode defs.TargetMode  `json:"target_mode"`
	BeamTarget types.EntityID   `json:"beam_target,omitempty"`
	BeamEnd    types.Vec2       `json:"beam_end"`
	BeamRampMs float64          `json:"beam_ramp_ms,omitempty"`
	BeamHits   []types.EntityID `json:"beam_hits,omitempty"`
}

// ProjectileView — копия снаряда для отрисовки.
type ProjectileView struct {
	ID types.EntityID `json:"id"`
	X  float64        `json:"x"`
	Y  float64        `json:"y"`
}

// Snapshot is a read-only copy of the world handed to hosts after each tick.
// Mutating it has no effect on the simulation.
type Snapshot struct {
	GameTime   float64 `json:"game_time"`
	Difficulty string  `json:"difficulty"`

	Money int `json:"money"`
	Score int `json:"score"`
	Lives int `json:"lives"`
	Kills int `json:"kills"`

	Wave            int     `json:"wave"`
	LastClearedWave int     `json:"last_cleared_wave"`
	WaveRunning     bool    `json:"wave_running"`
	ActiveWaves     int     `json:"active_waves"`
	Spawned         int     `json:"spawned"`
	SpawnTotal      int     `json:"spawn_total"`
	NextWaveInMs    float64 `json:"next_wave_in_ms"`
	Paused          bool    `json:"paused"`
	GameOver        bool    `json:"game_over"`

	Path        []types.Vec2     `json:"path"`
	Enemies     []EnemyView      `json:"enemies"`
	Towers      []TowerView      `json:"towers"`
	Projectiles []ProjectileView `json:"projectiles"`
}

// BuildSnapshot copies the current world into a Snapshot.
func (ecs *ECS) BuildSnapshot() Snapshot {
	gs := ecs.GameState
	s := Snapshot{
		GameTime:        ecs.GameTime,
		Difficulty:      ecs.Difficulty.Key,
		Money:           ecs.Economy.Money,
		Score:           ecs.Economy.Score,
		Lives:           ecs.Economy.Lives,
		Kills:           ecs.Economy.Kills,
		Wave:            gs.Wave,
		LastClearedWave: gs.LastClearedWave,
		WaveRunning:     gs.WaveState == component.Running,
		ActiveWaves:     len(ecs.Spawners),
		Paused:          gs.Paused,
		GameOver:        gs.GameOver,
		Path:            slices.Clone(ecs.Path),
	}
	for _, sp := range ecs.Spawners {
		s.Spawned += sp.Spawned
		s.SpawnTotal += sp.Config.Total
	}
	if !s.WaveRunning && gs.AutoStartAt > 0 {
		s.NextWaveInMs = math.Max(0, gs.AutoStartAt-ecs.GameTime)
	}

	for _, id := range ecs.EnemyIDs() {
		pos, h, e := ecs.Positions[id], ecs.Healths[id], ecs.Enemies[id]
		if pos == nil || h == nil {
			continue
		}
		s.Enemies = append(s.Enemies, EnemyView{
			ID: id, DefID: e.DefID, X: pos.X, Y: pos.Y,
			HP: h.Value, MaxHP: h.Max, Armor: e.Armor, IsSwarm: e.IsSwarm,
		})
	}
	for _, id := range ecs.TowerIDs() {
		pos, t, c := ecs.Positions[id], ecs.Towers[id], ecs.Combats[id]
		if pos == nil || c == nil {
			continue
		}
		v := TowerView{
			ID: id, DefID: t.DefID, X: pos.X, Y: pos.Y,
			Tier: t.Tier, Range: c.Range, TargetMode: t.TargetMode,
		}
		if b, ok := ecs.Beams[id]; ok && b.Locked() {
			v.BeamTarget = b.Target
			v.BeamEnd = types.Vec2{X: b.EndX, Y: b.EndY}
			v.BeamRampMs = b.LockMs
			v.BeamHits = slices.Clone(b.LastHits)
		}
		s.Towers = append(s.Towers, v)
	}
	for _, id := range ecs.ProjectileIDs() {
		if pos := ecs.Positions[id]; pos != nil {
			s.Projectiles = append(s.Projectiles, ProjectileView{ID: id, X: pos.X, Y: pos.Y})
		}
	}
	return s
}
