// internal/app/tower_management.go
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/types"
	"go-tower-sim/internal/utils"
)

// Причины отказа в постройке. Команды возвращают bool, эти ошибки нужны
// только для подсказок игроку и логов.
var (
	ErrGameOver          = errors.New("game is over")
	ErrOutOfBounds       = errors.New("outside the playfield")
	ErrOnPath            = errors.New("cell is on the enemy path")
	ErrCellOccupied      = errors.New("cell is occupied")
	ErrTowerLocked       = errors.New("tower type is not unlocked yet")
	ErrInsufficientFunds = errors.New("not enough money")
)

// SnapToGrid returns the centre of the grid cell containing (x, y).
func SnapToGrid(x, y float64) types.Vec2 {
	const g = config.GridSize
	cx := math.Floor(x/g)*g + g/2
	cy := math.Floor((y-config.TopUIHeight)/g)*g + g/2 + config.TopUIHeight
	return types.Vec2{X: cx, Y: cy}
}

// IsOnPath reports whether a cell centre lies within PathBlockRadius of the path.
func IsOnPath(path []types.Vec2, p types.Vec2) bool {
	return utils.NearPolyline(path, p.X, p.Y, config.PathBlockRadius)
}

// CheckPlacement validates a placement without mutating anything and returns
// the snapped cell centre.
func (g *Game) CheckPlacement(x, y float64, towerType string) (types.Vec2, error) {
	if g.ECS.GameState.GameOver {
		return types.Vec2{}, ErrGameOver
	}
	def, ok := defs.LookupTower(towerType)
	if !ok {
		return types.Vec2{}, fmt.Errorf("%w: %q", defs.ErrUnknownTower, towerType)
	}
	if y < config.TopUIHeight || x < 0 || x >= config.ScreenWidth || y >= config.ScreenHeight {
		return types.Vec2{}, ErrOutOfBounds
	}
	cell := SnapToGrid(x, y)
	if cell.Y+config.GridSize/2 > config.ScreenHeight {
		return cell, ErrOutOfBounds
	}
	if IsOnPath(g.ECS.Path, cell) {
		return cell, ErrOnPath
	}
	if !def.UnlockedAt(g.ECS.GameState.Wave) {
		return cell, fmt.Errorf("%w: %s unlocks at wave %d", ErrTowerLocked, def.ID, def.UnlockWave)
	}
	if _, taken := g.ECS.TowerAt(cell.X, cell.Y); taken {
		return cell, ErrCellOccupied
	}
	tier, _ := def.Tier(1)
	if !g.ECS.Economy.CanAfford(tier.Cost) {
		return cell, ErrInsufficientFunds
	}
	return cell, nil
}

// PlaceTower attempts to place a tower at the grid cell containing (x, y).
func (g *Game) PlaceTower(x, y float64, towerType string) (types.EntityID, bool) {
	cell, err := g.CheckPlacement(x, y, towerType)
	if err != nil {
		slog.Debug("placement rejected", "type", towerType, "x", x, "y", y, "reason", err)
		return 0, false
	}
	def, _ := defs.LookupTower(towerType)
	tier, _ := def.Tier(1)
	g.ECS.Economy.Spend(tier.Cost)

	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: cell.X, Y: cell.Y}
	g.ECS.Towers[id] = &component.Tower{
		DefID:      def.ID,
		Weapon:     def.Weapon,
		Tier:       1,
		Spent:      tier.Cost,
		TargetMode: def.TargetMode(),
	}
	combat := &component.Combat{NextShotAt: g.ECS.GameTime}
	combat.ApplyTier(tier)
	g.ECS.Combats[id] = combat
	if def.Weapon == defs.WeaponBeam {
		g.ECS.Beams[id] = &component.Beam{}
	}

	g.record(Command{Kind: CmdPlaceTower, X: x, Y: y, TowerType: towerType})
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerData{
		ID: id, DefID: def.ID, Tier: 1, Pos: cell, Amount: tier.Cost,
	}})
	return id, true
}

// UpgradeTower moves a tower to its next tier. No-op at max tier, when
// money is short or when the id no longer names a tower.
func (g *Game) UpgradeTower(id types.EntityID) bool {
	if g.ECS.GameState.GameOver {
		return false
	}
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return false
	}
	def, ok := defs.LookupTower(tower.DefID)
	if !ok {
		return false
	}
	next, ok := def.Tier(tower.Tier + 1)
	if !ok || !g.ECS.Economy.Spend(next.Cost) {
		return false
	}
	tower.Spent += next.Cost
	tower.Tier++
	combat := g.ECS.Combats[id]
	combat.ApplyTier(next)
	combat.NextShotAt = g.ECS.GameTime

	g.record(Command{Kind: CmdUpgradeTower, TowerID: id})
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: event.TowerData{
		ID: id, DefID: tower.DefID, Tier: tower.Tier, Pos: g.ECS.Positions[id].Vec(), Amount: next.Cost,
	}})
	return true
}

// SellRefund returns floor(spent * SellRefundRate).
func SellRefund(spent int) int {
	return int(math.Floor(float64(spent) * config.SellRefundRate))
}

// SellTower removes a tower and credits the refund. A beam lock is cleared with it.
func (g *Game) SellTower(id types.EntityID) (int, bool) {
	if g.ECS.GameState.GameOver {
		return 0, false
	}
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return 0, false
	}
	refund := SellRefund(tower.Spent)
	pos := g.ECS.Positions[id].Vec()
	g.ECS.Economy.Money += refund
	g.ECS.RemoveTower(id)
	if g.selected == id {
		g.selected = 0
	}

	g.record(Command{Kind: CmdSellTower, TowerID: id})
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerRemoved, Data: event.TowerData{
		ID: id, DefID: tower.DefID, Tier: tower.Tier, Pos: pos, Amount: refund,
	}})
	return refund, true
}

// CycleTargetMode advances the tower's target mode in the fixed cycle.
func (g *Game) CycleTargetMode(id types.EntityID) (defs.TargetMode, bool) {
	if g.ECS.GameState.GameOver {
		return 0, false
	}
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return 0, false
	}
	tower.TargetMode = tower.TargetMode.Next()
	g.record(Command{Kind: CmdCycleTargetMode, TowerID: id})
	return tower.TargetMode, true
}

// SelectTower marks a tower for the inspector.
func (g *Game) SelectTower(id types.EntityID) bool {
	if _, ok := g.ECS.Towers[id]; !ok {
		return false
	}
	g.selected = id
	return true
}

func (g *Game) ClearSelection() {
	g.selected = 0
}

// Selected returns the selected tower, or 0.
func (g *Game) Selected() types.EntityID {
	if _, ok := g.ECS.Towers[g.selected]; !ok {
		g.selected = 0
	}
	return g.selected
}

// TowerAt returns the tower in the grid cell containing (x, y).
func (g *Game) TowerAt(x, y float64) (types.EntityID, bool) {
	cell := SnapToGrid(x, y)
	return g.ECS.TowerAt(cell.X, cell.Y)
}
