// Package bot drives a session without a human: it builds along the path,
// upgrades when it can and starts waves.
package bot

import (
	"errors"
	"slices"

	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/interfaces"
	"go-tower-sim/internal/types"
	"go-tower-sim/internal/utils"
)

// Controller decides what to do on one frame.
type Controller interface {
	Decide(g interfaces.Game)
}

// AutoPlayer — простая жадная стратегия: одна покупка за решение.
type AutoPlayer struct {
	cells      []types.Vec2
	ThinkEvery int  // решения раз в N кадров
	StackWaves bool // стартовать новую волну, не дожидаясь конца текущей
	MinTowers  int  // до этого числа башен только строим
	frame      int
}

// NewAutoPlayer precomputes buildable cells ordered by how much path they cover.
func NewAutoPlayer(path []types.Vec2) *AutoPlayer {
	return &AutoPlayer{
		cells:      rankCells(path, 100),
		ThinkEvery: 10,
		MinTowers:  4,
	}
}

func (a *AutoPlayer) Decide(g interfaces.Game) {
	a.frame++
	if g.IsGameOver() || (a.ThinkEvery > 1 && a.frame%a.ThinkEvery != 0) {
		return
	}
	snap := g.Snapshot()
	if (a.StackWaves || !snap.WaveRunning) && g.CanStartWave() {
		g.RequestStartWave()
	}

	if len(snap.Towers) >= a.MinTowers && a.upgradeCheapest(g, snap) {
		return
	}
	a.placeBest(g, snap)
}

// placeBest ставит самую дорогую открытую и доступную башню в лучшую свободную клетку.
func (a *AutoPlayer) placeBest(g interfaces.Game, snap entity.Snapshot) bool {
	order := slices.Clone(defs.TowerOrder)
	slices.Reverse(order)
	for _, key := range order {
		def, ok := defs.LookupTower(key)
		if !ok || !def.UnlockedAt(snap.Wave) {
			continue
		}
		tier, _ := def.Tier(1)
		if snap.Money < tier.Cost {
			continue
		}
		for _, c := range a.cells {
			_, err := g.CheckPlacement(c.X, c.Y, key)
			if errors.Is(err, defs.ErrUnknownTower) {
				break
			}
			if err != nil {
				continue
			}
			_, placed := g.PlaceTower(c.X, c.Y, key)
			return placed
		}
	}
	return false
}

func (a *AutoPlayer) upgradeCheapest(g interfaces.Game, snap entity.Snapshot) bool {
	var best types.EntityID
	bestCost := 0
	for _, t := range snap.Towers {
		def, ok := defs.LookupTower(t.DefID)
		if !ok {
			continue
		}
		next, ok := def.Tier(t.Tier + 1)
		if !ok || next.Cost > snap.Money {
			continue
		}
		if best == 0 || next.Cost < bestCost {
			best, bestCost = t.ID, next.Cost
		}
	}
	return best != 0 && g.UpgradeTower(best)
}

// rankCells returns grid cell centres off the path, most path coverage first.
// Coverage is the number of path samples (every 20 px) within reach.
func rankCells(path []types.Vec2, reach float64) []types.Vec2 {
	var samples []types.Vec2
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		n := max(1, int(utils.Dist(a.X, a.Y, b.X, b.Y)/20))
		for k := 0; k < n; k++ {
			t := float64(k) / float64(n)
			samples = append(samples, types.Vec2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t})
		}
	}

	type scored struct {
		cell  types.Vec2
		cover int
	}
	var cells []scored
	const g = config.GridSize
	for y := config.TopUIHeight + g/2; y+g/2 <= config.ScreenHeight; y += g {
		for x := g / 2; x < config.ScreenWidth; x += g {
			c := types.Vec2{X: x, Y: y}
			if utils.NearPolyline(path, c.X, c.Y, config.PathBlockRadius) {
				continue
			}
			cover := 0
			for _, s := range samples {
				if utils.Dist2(c.X, c.Y, s.X, s.Y) <= reach*reach {
					cover++
				}
			}
			if cover > 0 {
				cells = append(cells, scored{cell: c, cover: cover})
			}
		}
	}
	slices.SortStableFunc(cells, func(a, b scored) int { return b.cover - a.cover })

	out := make([]types.Vec2, len(cells))
	for i, s := range cells {
		out[i] = s.cell
	}
	return out
}
