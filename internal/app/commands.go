package app

import (
	"go-tower-sim/internal/types"
)

// CommandKind — тип команды игрока, влияющей на симуляцию.
type CommandKind string

const (
	CmdPlaceTower      CommandKind = "place"
	CmdUpgradeTower    CommandKind = "upgrade"
	CmdSellTower       CommandKind = "sell"
	CmdCycleTargetMode CommandKind = "cycle_target"
	CmdStartWave       CommandKind = "start_wave"
)

// Command is an accepted player command. Selection, pause and speed are host
// concerns and are not recorded: speed is already folded into each step's dt.
type Command struct {
	Kind      CommandKind    `json:"kind" msgpack:"k"`
	X         float64        `json:"x,omitempty" msgpack:"x,omitempty"`
	Y         float64        `json:"y,omitempty" msgpack:"y,omitempty"`
	TowerType string         `json:"tower_type,omitempty" msgpack:"t,omitempty"`
	TowerID   types.EntityID `json:"tower_id,omitempty" msgpack:"id,omitempty"`
}

// Recorder receives every accepted command and every simulation step.
// tick is the number of steps taken before the call.
type Recorder interface {
	RecordCommand(tick uint64, cmd Command)
	RecordStep(tick uint64, dtMs float64)
}

// SetRecorder attaches r; nil detaches. Restart and SetDifficulty detach
// the recorder, so callers attach a fresh one for the new session.
func (g *Game) SetRecorder(r Recorder) {
	g.recorder = r
}

func (g *Game) record(cmd Command) {
	if g.recorder != nil {
		g.recorder.RecordCommand(g.tick, cmd)
	}
}

// Execute applies a recorded command. Returns false if it was rejected.
func (g *Game) Execute(cmd Command) bool {
	switch cmd.Kind {
	case CmdPlaceTower:
		_, ok := g.PlaceTower(cmd.X, cmd.Y, cmd.TowerType)
		return ok
	case CmdUpgradeTower:
		return g.UpgradeTower(cmd.TowerID)
	case CmdSellTower:
		_, ok := g.SellTower(cmd.TowerID)
		return ok
	case CmdCycleTargetMode:
		_, ok := g.CycleTargetMode(cmd.TowerID)
		return ok
	case CmdStartWave:
		return g.RequestStartWave()
	default:
		return false
	}
}
