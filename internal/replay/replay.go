// Package replay records the accepted commands and step sizes of a session
// and plays them back on a fresh session with the same seed.
package replay

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go-tower-sim/internal/app"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/event"

	"github.com/vmihailenco/msgpack/v5"
)

const Version = 1

var (
	ErrEmptyPath       = errors.New("replay path is empty")
	ErrVersion         = errors.New("unsupported replay version")
	ErrCatalogMismatch = errors.New("replay was recorded with a different catalog")
)

type Header struct {
	Version     int         `msgpack:"version"`
	SessionID   string      `msgpack:"session_id"`
	Seed        int64       `msgpack:"seed"`
	Options     app.Options `msgpack:"options"`
	CatalogHash string      `msgpack:"catalog_hash"`
}

// Frame — один шаг симуляции и команды, принятые перед ним.
type Frame struct {
	Tick     uint64        `msgpack:"tick"`
	DtMs     float64       `msgpack:"dt"`
	Commands []app.Command `msgpack:"cmds,omitempty"`
}

type File struct {
	Header   Header           `msgpack:"header"`
	Frames   []Frame          `msgpack:"frames"`
	Trailing []app.Command    `msgpack:"trailing,omitempty"` // команды после последнего шага
	Final    event.FinalStats `msgpack:"final"`
}

// Recorder implements app.Recorder.
type Recorder struct {
	file    File
	pending []app.Command
}

// NewRecorder attaches a recorder to g. Call it right after NewGame or Restart.
func NewRecorder(g *app.Game) *Recorder {
	opts := g.Options()
	opts.Seed = g.Seed()
	r := &Recorder{file: File{Header: Header{
		Version:     Version,
		SessionID:   g.SessionID,
		Seed:        g.Seed(),
		Options:     opts,
		CatalogHash: defs.Fingerprint(),
	}}}
	g.SetRecorder(r)
	return r
}

func (r *Recorder) RecordCommand(_ uint64, cmd app.Command) {
	r.pending = append(r.pending, cmd)
}

func (r *Recorder) RecordStep(tick uint64, dtMs float64) {
	r.file.Frames = append(r.file.Frames, Frame{Tick: tick, DtMs: dtMs, Commands: r.pending})
	r.pending = nil
}

// Finish closes the recording with the session's final stats.
func (r *Recorder) Finish(final event.FinalStats) File {
	r.file.Trailing = r.pending
	r.pending = nil
	r.file.Final = final
	return r.file
}

// Verify checks that f can be played with the current build and catalog.
func Verify(f File) error {
	if f.Header.Version != Version {
		return fmt.Errorf("%w: got %d want %d", ErrVersion, f.Header.Version, Version)
	}
	if f.Header.CatalogHash != defs.Fingerprint() {
		return ErrCatalogMismatch
	}
	return nil
}

// Save пишет файл через временный файл и rename.
func Save(path string, f File) error {
	if path == "" {
		return ErrEmptyPath
	}
	if f.Header.Version != Version {
		return fmt.Errorf("%w: got %d want %d", ErrVersion, f.Header.Version, Version)
	}
	blob, err := msgpack.Marshal(&f)
	if err != nil {
		return fmt.Errorf("marshal replay: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure replay dir: %w", err)
		}
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, blob, 0o644); err != nil {
		return fmt.Errorf("write replay temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename replay temp file: %w", err)
	}
	return nil
}

func Load(path string) (File, error) {
	if path == "" {
		return File{}, ErrEmptyPath
	}
	blob, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read replay file: %w", err)
	}
	var f File
	if err := msgpack.Unmarshal(blob, &f); err != nil {
		return File{}, fmt.Errorf("decode replay file: %w", err)
	}
	if f.Header.Version != Version {
		return File{}, fmt.Errorf("%w: got %d want %d", ErrVersion, f.Header.Version, Version)
	}
	return f, nil
}
