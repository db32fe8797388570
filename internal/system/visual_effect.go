// internal/system/visual_effect.go
package system

import (
	"slices"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/event"
)

// VisualEffectSystem управляет визуальными эффектами: трассерами и вспышками убийств.
// Живёт на стороне хоста и не влияет на симуляцию.
type VisualEffectSystem struct {
	tracers []component.Tracer
	flashes []component.KillFlash
}

// NewVisualEffectSystem создает новую систему визуальных эффектов и подписывает её.
func NewVisualEffectSystem(d *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{}
	d.SubscribeAll(s, event.ShotFired, event.EnemyKilled)
	return s
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.ShotData:
		s.tracers = append(s.tracers, component.Tracer{From: data.From, To: data.To, Duration: config.TracerDurationMs})
	case event.EnemyKilledData:
		s.flashes = append(s.flashes, component.KillFlash{At: data.Pos, Swarm: data.IsSwarm, Duration: config.HitFlashMs})
	}
}

// Update обновляет все активные визуальные эффекты. deltaTime в миллисекундах.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for i := range s.tracers {
		s.tracers[i].Timer += deltaTime
	}
	s.tracers = slices.DeleteFunc(s.tracers, func(t component.Tracer) bool { return t.Timer >= t.Duration })

	for i := range s.flashes {
		s.flashes[i].Timer += deltaTime
	}
	s.flashes = slices.DeleteFunc(s.flashes, func(k component.KillFlash) bool { return k.Timer >= k.Duration })
}

func (s *VisualEffectSystem) Tracers() []component.Tracer     { return s.tracers }
func (s *VisualEffectSystem) Flashes() []component.KillFlash { return s.flashes }

// Clear drops every effect, used on restart.
func (s *VisualEffectSystem) Clear() {
	s.tracers = s.tracers[:0]
	s.flashes = s.flashes[:0]
}
