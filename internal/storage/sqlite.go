// Package storage provides SQLite-based persistence for best scores and
// session history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// BestEntry is one row of the best-score table: the highest score reached
// for a language and difficulty pair.
type BestEntry struct {
	Language   string
	Difficulty string
	Score      int
	UpdatedAt  time.Time
}

// SessionEntry is one finished run.
type SessionEntry struct {
	ID         int64
	Language   string
	Difficulty string
	Score      int
	Hits       int
	Shots      int
	Duration   float64 // simulation time units
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_scores (
			language TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (language, difficulty)
		);

		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			language TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL,
			hits INTEGER NOT NULL DEFAULT 0,
			shots INTEGER NOT NULL DEFAULT 0,
			duration REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_lang ON sessions(language, difficulty);
		CREATE INDEX IF NOT EXISTS idx_sessions_recent ON sessions(created_at DESC);
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

// Best returns the stored best score for a language and difficulty pair.
// Returns 0 if none exists.
func (s *Store) Best(language, difficulty string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT score FROM high_scores WHERE language = ? AND difficulty = ?",
		language, difficulty,
	).Scan(&score)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	return int(score.Int64), nil
}

// SaveBest stores a best score. The row only ever moves upward: an upsert
// that loses to the stored score leaves it untouched, so a stale caller can
// never lower a best.
func (s *Store) SaveBest(language, difficulty string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_scores (language, difficulty, score)
		 VALUES (?, ?, ?)
		 ON CONFLICT (language, difficulty) DO UPDATE
		 SET score = excluded.score, updated_at = CURRENT_TIMESTAMP
		 WHERE excluded.score > high_scores.score`,
		language, difficulty, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// RecordSession appends one finished run to the history.
func (s *Store) RecordSession(language, difficulty string, score, hits, shots int, duration float64) error {
	_, err := s.db.Exec(
		`INSERT INTO sessions (language, difficulty, score, hits, shots, duration)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		language, difficulty, score, hits, shots, duration,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record session: %w", err)
	}
	return nil
}

// AllBests retrieves every stored best score, ordered by language then
// difficulty.
func (s *Store) AllBests() ([]BestEntry, error) {
	rows, err := s.db.Query(
		`SELECT language, difficulty, score, updated_at
		 FROM high_scores
		 ORDER BY language, difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best scores: %w", err)
	}
	defer rows.Close()

	var entries []BestEntry
	for rows.Next() {
		var e BestEntry
		var updatedAt any
		if err := rows.Scan(&e.Language, &e.Difficulty, &e.Score, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.UpdatedAt = parseTime(updatedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// RecentSessions retrieves the most recent finished runs.
func (s *Store) RecentSessions(limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, language, difficulty, score, hits, shots, duration, created_at
		 FROM sessions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Language, &e.Difficulty, &e.Score, &e.Hits, &e.Shots, &e.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// ClearBests deletes the stored best scores for one language, or all
// languages when language is empty.
func (s *Store) ClearBests(language string) error {
	var err error
	if language == "" {
		_, err = s.db.Exec("DELETE FROM high_scores")
	} else {
		_, err = s.db.Exec("DELETE FROM high_scores WHERE language = ?", language)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear best scores: %w", err)
	}
	return nil
}

// parseTime handles the driver returning DATETIME columns as either
// time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
