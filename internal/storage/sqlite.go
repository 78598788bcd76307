// Package storage provides SQLite-based persistence for finished runs and
// the durable high score.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished run.
type RunRecord struct {
	ID         int64
	GameID     string
	Score      int
	Frames     int
	Seed       int64
	Difficulty string
	CreatedAt  time.Time
}

// Stats aggregates the run history of one game.
type Stats struct {
	GameID     string
	Runs       int
	BestRun    int
	AvgScore   float64
	TotalTicks int64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	path, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// One writer; SSH sessions share the handle.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// dsn applies per-connection pragmas. High scores are written on every
// improving tick, so the journal runs in WAL mode with relaxed syncing.
func dsn(path string) string {
	return "file:" + path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(5000)"
}

func expandHome(p string) (string, error) {
	if p == "" || p[0] != '~' {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// migrate creates the schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			frames INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			difficulty TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS high_scores (
			game_id TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun stores a finished run and returns its ID.
func (s *Store) RecordRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (game_id, score, frames, seed, difficulty) VALUES (?, ?, ?, ?, ?)",
		r.GameID, r.Score, r.Frames, r.Seed, r.Difficulty,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns returns the best runs for a game, highest score first.
func (s *Store) TopRuns(gameID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, frames, seed, difficulty, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Score, &r.Frames, &r.Seed, &r.Difficulty, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// HighScore returns the durable high score for a game, or 0 if none is set.
func (s *Store) HighScore(gameID string) (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM high_scores WHERE game_id = ?", gameID).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score, nil
}

// SetHighScore raises the stored high score. A lower score never replaces
// a higher one, so concurrent sessions cannot roll it back.
func (s *Store) SetHighScore(gameID string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_scores (game_id, score) VALUES (?, ?)
		 ON CONFLICT(game_id) DO UPDATE SET
		   score = MAX(high_scores.score, excluded.score),
		   updated_at = CURRENT_TIMESTAMP`,
		gameID, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot set high score: %w", err)
	}
	return nil
}

// Reset deletes the run history and high score for a game.
func (s *Store) Reset(gameID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin reset: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM runs WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM high_scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear high score: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit reset: %w", err)
	}
	return nil
}

// Stats aggregates the run history of a game.
func (s *Store) Stats(gameID string) (*Stats, error) {
	st := &Stats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(frames), 0), MAX(created_at)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&st.Runs, &st.BestRun, &st.AvgScore, &st.TotalTicks, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	st.LastPlayed = parseTime(lastPlayed)

	return st, nil
}

// parseTime handles both time.Time and the string form SQLite returns for
// aggregated DATETIME columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
