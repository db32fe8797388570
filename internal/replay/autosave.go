package replay

import (
	"log/slog"
	"path/filepath"

	"go-tower-sim/internal/app"
	"go-tower-sim/internal/event"
)

// Autosaver records every session of a game and writes the replay to Dir
// when the session ends.
type Autosaver struct {
	Dir  string
	game *app.Game
	rec  *Recorder
	last string
}

// NewAutosaver subscribes to GameOver on g. The dispatcher survives
// Restart, so only Rearm is needed for later sessions.
func NewAutosaver(g *app.Game, dir string) *Autosaver {
	a := &Autosaver{Dir: dir, game: g}
	a.Rearm()
	g.EventDispatcher.Subscribe(event.GameOver, a)
	return a
}

// Rearm starts recording the current session from scratch.
func (a *Autosaver) Rearm() {
	a.rec = NewRecorder(a.game)
}

// Path returns where the replay of a session is written.
func (a *Autosaver) Path(sessionID string) string {
	return filepath.Join(a.Dir, sessionID+".replay")
}

// LastSaved returns the path of the most recent replay, or "".
func (a *Autosaver) LastSaved() string {
	return a.last
}

func (a *Autosaver) OnEvent(e event.Event) {
	stats, ok := e.Data.(event.FinalStats)
	if !ok || a.rec == nil {
		return
	}
	f := a.rec.Finish(stats)
	a.rec = nil
	path := a.Path(stats.SessionID)
	if err := Save(path, f); err != nil {
		slog.Error("replay save failed", "session", stats.SessionID, "err", err)
		return
	}
	a.last = path
	slog.Info("replay saved", "path", path, "frames", len(f.Frames))
}
