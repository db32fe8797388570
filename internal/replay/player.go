package replay

import (
	"fmt"
	"log/slog"

	"go-tower-sim/internal/app"
)

// Player steps a recorded session frame by frame.
type Player struct {
	game *app.Game
	file File
	next int
}

// NewPlayer verifies f and builds a fresh session from its header.
func NewPlayer(f File) (*Player, error) {
	if err := Verify(f); err != nil {
		return nil, err
	}
	opts := f.Header.Options
	opts.Seed = f.Header.Seed
	g, err := app.NewGame(opts)
	if err != nil {
		return nil, fmt.Errorf("replay session: %w", err)
	}
	return &Player{game: g, file: f}, nil
}

func (p *Player) Game() *app.Game { return p.game }

// Done reports whether every frame has been played.
func (p *Player) Done() bool { return p.next >= len(p.file.Frames) }

// Progress returns played and total frame counts.
func (p *Player) Progress() (int, int) { return p.next, len(p.file.Frames) }

// Step plays one frame: its commands, then the simulation step.
// After the last frame the trailing commands are applied. Returns false when done.
func (p *Player) Step() bool {
	if p.Done() {
		return false
	}
	fr := p.file.Frames[p.next]
	p.apply(fr.Commands)
	p.game.Step(fr.DtMs)
	p.next++
	if p.Done() {
		p.apply(p.file.Trailing)
	}
	return true
}

func (p *Player) apply(cmds []app.Command) {
	for _, cmd := range cmds {
		if !p.game.Execute(cmd) {
			slog.Warn("replayed command rejected", "tick", p.game.Tick(), "kind", cmd.Kind)
		}
	}
}

// Play runs f to the end and reports whether the final stats match the recording.
func Play(f File) (*app.Game, bool, error) {
	p, err := NewPlayer(f)
	if err != nil {
		return nil, false, err
	}
	for p.Step() {
	}
	if len(p.file.Frames) == 0 {
		p.apply(p.file.Trailing)
	}
	return p.game, p.game.FinalStats().Outcome() == f.Final.Outcome(), nil
}
