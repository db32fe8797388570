package app

import (
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/types"
	"go-tower-sim/internal/utils"
)

// TowerStats — данные для инспектора башни.
type TowerStats struct {
	ID              types.EntityID
	DefID           string
	Name            string
	Weapon          defs.WeaponKind
	Tier            int
	MaxTier         int
	Damage          int
	FireMs          float64
	ShotsPerSec     float64 // округлено до десятых
	DPS             float64 // округлено до десятых, без брони и разгона луча
	Range           float64
	NextUpgradeCost int // 0 на максимальном уровне
	IsMaxTier       bool
	SellRefund      int
	TargetMode      defs.TargetMode
}

// TowerStats returns inspector data for a live tower.
func (g *Game) TowerStats(id types.EntityID) (TowerStats, bool) {
	tower, ok := g.ECS.Towers[id]
	combat, hasCombat := g.ECS.Combats[id]
	if !ok || !hasCombat {
		return TowerStats{}, false
	}
	def, _ := defs.LookupTower(tower.DefID)

	st := TowerStats{
		ID:         id,
		DefID:      tower.DefID,
		Name:       def.Name,
		Weapon:     tower.Weapon,
		Tier:       tower.Tier,
		MaxTier:    def.MaxTier(),
		Damage:     combat.Damage,
		FireMs:     combat.FireMs,
		Range:      combat.Range,
		SellRefund: SellRefund(tower.Spent),
		TargetMode: tower.TargetMode,
	}
	if combat.FireMs > 0 {
		shots := 1000 / combat.FireMs
		st.ShotsPerSec = utils.Round1(shots)
		st.DPS = utils.Round1(float64(combat.Damage) * shots)
	}
	if next, ok := def.Tier(tower.Tier + 1); ok {
		st.NextUpgradeCost = next.Cost
	} else {
		st.IsMaxTier = true
	}
	return st, true
}

// AvailableTowers returns the catalog in hotkey order with unlock and
// affordability for the current wave and money.
func (g *Game) AvailableTowers() []TowerOption {
	out := make([]TowerOption, 0, len(defs.TowerOrder))
	for _, key := range defs.TowerOrder {
		def, ok := defs.LookupTower(key)
		if !ok {
			continue
		}
		tier, _ := def.Tier(1)
		out = append(out, TowerOption{
			DefID:      def.ID,
			Name:       def.Name,
			Hotkey:     def.Hotkey,
			Cost:       tier.Cost,
			UnlockWave: def.UnlockWave,
			Unlocked:   def.UnlockedAt(g.ECS.GameState.Wave),
			Affordable: g.ECS.Economy.CanAfford(tier.Cost),
		})
	}
	return out
}

// TowerOption — строка палитры постройки.
type TowerOption struct {
	DefID      string
	Name       string
	Hotkey     string
	Cost       int
	UnlockWave int
	Unlocked   bool
	Affordable bool
}
