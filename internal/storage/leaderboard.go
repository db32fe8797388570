// Package storage keeps finished sessions in a sqlite leaderboard.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go-tower-sim/internal/event"

	_ "github.com/mattn/go-sqlite3"
)

var ErrNoSessionID = errors.New("entry has no session id")

const schema = `
CREATE TABLE IF NOT EXISTS scores (
	session_id TEXT PRIMARY KEY,
	difficulty TEXT NOT NULL,
	score      INTEGER NOT NULL,
	wave       INTEGER NOT NULL,
	kills      INTEGER NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS scores_by_score ON scores(score DESC);
`

// Entry — строка таблицы рекордов.
type Entry struct {
	SessionID  string
	Difficulty string
	Score      int
	Wave       int
	Kills      int
	CreatedAt  time.Time
}

// Leaderboard is a sqlite-backed score table. It is safe for concurrent use.
type Leaderboard struct {
	db *sql.DB
}

// Open opens or creates the database at path. ":memory:" works for tests.
func Open(path string) (*Leaderboard, error) {
	dsn := path
	if path != ":memory:" {
		// пакетный прогон пишет из нескольких горутин
		dsn += "?_busy_timeout=5000&_journal_mode=WAL"
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if path == ":memory:" {
		// у каждого соединения своя in-memory база
		db.SetMaxOpenConns(1)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create scores table: %w", err)
	}
	return &Leaderboard{db: db}, nil
}

func (l *Leaderboard) Close() error {
	return l.db.Close()
}

// Record upserts an entry keyed by session id.
func (l *Leaderboard) Record(ctx context.Context, e Entry) error {
	if e.SessionID == "" {
		return ErrNoSessionID
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	const query = `
	INSERT INTO scores (session_id, difficulty, score, wave, kills, created_at)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(session_id) DO UPDATE SET
		difficulty = excluded.difficulty,
		score = excluded.score,
		wave = excluded.wave,
		kills = excluded.kills;
	`
	if _, err := l.db.ExecContext(ctx, query, e.SessionID, e.Difficulty, e.Score, e.Wave, e.Kills, e.CreatedAt); err != nil {
		return fmt.Errorf("save score %s: %w", e.SessionID, err)
	}
	return nil
}

// Top returns up to limit entries, best score first. Ties go to the earlier run.
func (l *Leaderboard) Top(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := l.db.QueryContext(ctx, `
	SELECT session_id, difficulty, score, wave, kills, created_at
	FROM scores
	ORDER BY score DESC, created_at ASC
	LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query top scores: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.SessionID, &e.Difficulty, &e.Score, &e.Wave, &e.Kills, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scores: %w", err)
	}
	return out, nil
}

// OnEvent записывает итог сессии по событию GameOver.
func (l *Leaderboard) OnEvent(e event.Event) {
	if e.Type != event.GameOver {
		return
	}
	stats, ok := e.Data.(event.FinalStats)
	if !ok {
		return
	}
	entry := Entry{
		SessionID:  stats.SessionID,
		Difficulty: stats.Difficulty,
		Score:      stats.Score,
		Wave:       stats.Wave,
		Kills:      stats.Kills,
	}
	if err := l.Record(context.Background(), entry); err != nil {
		slog.Error("leaderboard write failed", "session", stats.SessionID, "err", err)
	}
}
