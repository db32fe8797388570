// component/tower.go
package component

import "go-tower-sim/internal/defs"

// Tower — башня игрока. Tier is 1-based and never decreases.
type Tower struct {
	DefID      string
	Weapon     defs.WeaponKind
	Tier       int
	Spent      int // сумма всех оплат, из неё считается возврат при продаже
	TargetMode defs.TargetMode
}

// Combat — боевые параметры башни, копируются из TierSpec текущего уровня.
type Combat struct {
	Damage     int
	Range      float64
	FireMs     float64
	NextShotAt float64 // время симуляции (мс), когда башня снова может стрелять
}

// ApplyTier copies the tier stats onto the combat component.
func (c *Combat) ApplyTier(tier defs.TierSpec) {
	c.Damage = tier.Damage
	c.Range = tier.Range
	c.FireMs = tier.FireMs
}
