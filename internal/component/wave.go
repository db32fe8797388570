package component

import "go-tower-sim/internal/defs"

// Spawner tracks one wave's spawn progress. Several may run at once.
type Spawner struct {
	Wave           int
	Config         defs.WaveConfig
	Spawned        int
	NextSpawnAt    float64
	SwarmRemaining int
	NextSwarmAt    float64
}

// Done reports whether every enemy of the wave has been spawned.
func (s *Spawner) Done() bool {
	return s.Spawned >= s.Config.Total
}
