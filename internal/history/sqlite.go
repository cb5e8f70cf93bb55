// internal/history/sqlite.go
//
// SQLite-backed result history for the HTTP server.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying the embedded schema (idempotent).
//   - Recording finished games and aggregating them into a Histogram.
//
// The terminal game keeps its plain-text scoreboard (history.go); this
// store exists for the server, where results belong to users or anonymous
// sessions and outlive a single process.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at    TEXT NOT NULL,
    games_played  INTEGER NOT NULL DEFAULT 0,
    wins          INTEGER NOT NULL DEFAULT 0,
    streak        INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS results (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    game_id      TEXT NOT NULL,
    user_id      TEXT,
    anonymous_id TEXT,
    won          INTEGER NOT NULL,
    guesses      INTEGER NOT NULL,
    created_at   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_results_user ON results(user_id);
CREATE INDEX IF NOT EXISTS idx_results_anon ON results(anonymous_id);
`

// Result is one finished game.
type Result struct {
	GameID      string
	UserID      string // empty for guests
	AnonymousID string // empty for signed-in users
	Won         bool
	Guesses     int
}

// SQLStore persists results in SQLite.
type SQLStore struct {
	db *sql.DB
}

// OpenSQL opens (creating if missing) the SQLite database at dsn and
// applies the schema.
func OpenSQL(dsn string) (*SQLStore, error) {
	// Ensure directory exists for ./data/app.db, etc.
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLStore{db: db}, nil
}

// DB exposes the handle for callers that manage their own tables (auth).
func (s *SQLStore) DB() *sql.DB { return s.db }

// Close closes the underlying database.
func (s *SQLStore) Close() error { return s.db.Close() }

// RecordResult inserts one finished game.
func (s *SQLStore) RecordResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO results (game_id, user_id, anonymous_id, won, guesses, created_at)
        VALUES (?, NULLIF(?,''), NULLIF(?,''), ?, ?, ?)`,
		r.GameID, r.UserID, r.AnonymousID, r.Won, r.Guesses,
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// UserHistogram aggregates a user's wins into the same bucketed histogram
// the terminal scoreboard uses.
func (s *SQLStore) UserHistogram(ctx context.Context, userID string) (*Histogram, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT guesses, COUNT(1) FROM results
        WHERE user_id=? AND won=1
        GROUP BY guesses`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var h Histogram
	for rows.Next() {
		var guesses, n int
		if err := rows.Scan(&guesses, &n); err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			h.Record(guesses)
		}
	}
	return &h, rows.Err()
}

// RecentResults returns a user's latest finished games, newest first.
func (s *SQLStore) RecentResults(ctx context.Context, userID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT game_id, COALESCE(user_id,''), COALESCE(anonymous_id,''), won, guesses
        FROM results
        WHERE user_id=?
        ORDER BY created_at DESC
        LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Result, 0, limit)
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.GameID, &r.UserID, &r.AnonymousID, &r.Won, &r.Guesses); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ClaimAnonResults transfers guest results to a user account after auth.
func (s *SQLStore) ClaimAnonResults(ctx context.Context, anonID, userID string) error {
	if anonID == "" || userID == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE results SET user_id=?, anonymous_id=NULL WHERE anonymous_id=?`,
		userID, anonID)
	return err
}
