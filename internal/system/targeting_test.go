package system

import (
	"testing"

	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/types"
)

func TestFindTarget(t *testing.T) {
	ecs, _, _ := newTestWorld(t)
	from := types.Vec2{X: 100, Y: 100}

	near := addEnemy(ecs, 130, 100, 10, 0)
	tough := addEnemy(ecs, 160, 100, 90, 0)
	plated := addEnemy(ecs, 170, 100, 20, 4)
	ahead := addEnemy(ecs, 100, 150, 5, 0)
	addEnemy(ecs, 400, 400, 999, 9) // вне радиуса

	ecs.Paths[ahead].CurrentIndex = 2

	tests := []struct {
		name string
		mode defs.TargetMode
		want types.EntityID
	}{
		{"closest", defs.TargetClosest, near},
		{"strongest", defs.TargetStrongest, tough},
		{"most armored", defs.TargetMostArmored, plated},
		{"first on path", defs.TargetFirstOnPath, ahead},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindTarget(ecs, from, 100, tt.mode); got != tt.want {
				t.Errorf("FindTarget(%s) = %d, want %d", tt.mode, got, tt.want)
			}
		})
	}
}

func TestFindTargetFirstOnPathSameSegment(t *testing.T) {
	ecs, _, _ := newTestWorld(t)
	// оба на первом отрезке, к вершине (1000, 200)
	behind := addEnemy(ecs, 280, 200, 10, 0)
	ahead := addEnemy(ecs, 370, 200, 10, 0)

	from := types.Vec2{X: 300, Y: 260}
	if got := FindTarget(ecs, from, 100, defs.TargetFirstOnPath); got != ahead {
		t.Errorf("got %d, want %d (nearer its next waypoint)", got, ahead)
	}
	if got := FindTarget(ecs, from, 100, defs.TargetClosest); got != behind {
		t.Errorf("closest = %d, want %d", got, behind)
	}
}

func TestFindTargetMostArmoredFallsBackToClosest(t *testing.T) {
	ecs, _, _ := newTestWorld(t)
	addEnemy(ecs, 180, 100, 10, 0)
	near := addEnemy(ecs, 120, 100, 10, 0)

	if got := FindTarget(ecs, types.Vec2{X: 100, Y: 100}, 100, defs.TargetMostArmored); got != near {
		t.Errorf("got %d, want closest %d", got, near)
	}
}

func TestFindTargetTiesKeepFirstEncountered(t *testing.T) {
	ecs, _, _ := newTestWorld(t)
	first := addEnemy(ecs, 150, 100, 10, 0)
	addEnemy(ecs, 50, 100, 10, 0)

	from := types.Vec2{X: 100, Y: 100}
	for _, mode := range defs.TargetModeCycle {
		if got := FindTarget(ecs, from, 100, mode); got != first {
			t.Errorf("%s: got %d, want %d", mode, got, first)
		}
	}
}

func TestFindTargetEmpty(t *testing.T) {
	ecs, _, _ := newTestWorld(t)
	addEnemy(ecs, 500, 500, 10, 0)
	if got := FindTarget(ecs, types.Vec2{}, 50, defs.TargetClosest); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}
