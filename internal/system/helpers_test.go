package system

import (
	"testing"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/types"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newTestWorld(t *testing.T) (*entity.ECS, *event.Dispatcher, *recorder) {
	t.Helper()
	ecs := entity.NewECS(defs.DifficultyLibrary["easy"], 20)
	d := event.NewDispatcher()
	rec := &recorder{}
	d.SubscribeAll(rec,
		event.EnemySpawned, event.EnemyKilled, event.EnemyRemoved, event.LifeLost,
		event.ShotFired, event.ProjectileSpawn, event.ProjectileGone,
		event.WaveStarted, event.WaveCleared)
	return ecs, d, rec
}

// addEnemy кладёт неподвижного врага в (x, y) на первый отрезок пути.
func addEnemy(ecs *entity.ECS, x, y float64, hp, armor int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{}
	ecs.Paths[id] = &component.Path{Waypoints: ecs.Path}
	ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	ecs.Enemies[id] = &component.Enemy{DefID: defs.EnemyRunner, Armor: armor, Reward: 6, ScoreWeight: 0.7}
	return id
}

func addTower(t *testing.T, ecs *entity.ECS, defID string, x, y float64, mode defs.TargetMode) types.EntityID {
	t.Helper()
	def, ok := defs.LookupTower(defID)
	if !ok {
		t.Fatalf("tower %q not in catalog", defID)
	}
	tier, _ := def.Tier(1)
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Towers[id] = &component.Tower{DefID: def.ID, Weapon: def.Weapon, Tier: 1, Spent: tier.Cost, TargetMode: mode}
	combat := &component.Combat{}
	combat.ApplyTier(tier)
	ecs.Combats[id] = combat
	if def.Weapon == defs.WeaponBeam {
		ecs.Beams[id] = &component.Beam{}
	}
	return id
}
