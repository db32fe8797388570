package component

import "go-tower-sim/internal/types"

// Beam holds the lock state of a continuous-beam tower.
type Beam struct {
	Target  types.EntityID // 0 — захвата нет
	LockMs  float64        // сколько держится текущий захват
	TickAcc float64        // накопитель до следующего тика урона
	// Последний тик, только для рендера.
	EndX, EndY float64
	LastHits   []types.EntityID
}

// Locked reports whether the beam currently holds a target.
func (b *Beam) Locked() bool {
	return b.Target != 0
}

// Reset drops the lock and clears ramp and tick accumulators.
func (b *Beam) Reset() {
	b.Target = 0
	b.LockMs = 0
	b.TickAcc = 0
	b.LastHits = b.LastHits[:0]
}
