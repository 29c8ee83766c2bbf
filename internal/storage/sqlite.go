// Package storage provides SQLite-based persistence for accounts, best scores
// and finished runs. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
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

var (
	// ErrUserExists is returned when creating a username that is taken.
	ErrUserExists = errors.New("storage: user already exists")
	// ErrNotFound is returned when a user does not exist.
	ErrNotFound = errors.New("storage: not found")
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// User is a registered account.
type User struct {
	Username     string
	PasswordHash string
	BestScore    int
	CreatedAt    time.Time
}

// Run is one finished session.
type Run struct {
	ID        int64
	SessionID string
	Username  string
	Score     int
	Total     int
	Outcome   string // "won" or "lost"
	CreatedAt time.Time
}

// PlayerEntry is one scoreboard row.
type PlayerEntry struct {
	Username   string
	BestScore  int
	Runs       int
	Wins       int
	LastPlayed time.Time
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

	// The notifier goroutine and the UI share the handle.
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS users (
			username TEXT PRIMARY KEY,
			password_hash TEXT NOT NULL,
			best_score INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			username TEXT NOT NULL,
			score INTEGER NOT NULL,
			total INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_username ON runs(username);
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

// CreateUser inserts a new account with a best score of 0.
func (s *Store) CreateUser(username, passwordHash string) error {
	res, err := s.db.Exec(
		`INSERT INTO users (username, password_hash) VALUES (?, ?)
		 ON CONFLICT(username) DO NOTHING`,
		username, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot create user: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot create user: %w", err)
	}
	if n == 0 {
		return ErrUserExists
	}
	return nil
}

// UserByName returns the account for username or ErrNotFound.
func (s *Store) UserByName(username string) (*User, error) {
	var u User
	var createdAt any
	err := s.db.QueryRow(
		`SELECT username, password_hash, best_score, created_at
		 FROM users WHERE username = ?`,
		username,
	).Scan(&u.Username, &u.PasswordHash, &u.BestScore, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query user: %w", err)
	}

	u.CreatedAt = parseTimestamp(createdAt)
	return &u, nil
}

// RecordBestScore raises the user's best score to score if it is higher.
// Lower scores leave the stored value unchanged.
func (s *Store) RecordBestScore(username string, score int) error {
	res, err := s.db.Exec(
		"UPDATE users SET best_score = MAX(best_score, ?) WHERE username = ?",
		score, username,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record best score: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot record best score: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("storage: user %q: %w", username, ErrNotFound)
	}
	return nil
}

// BestScore returns the user's best score.
func (s *Store) BestScore(username string) (int, error) {
	var best int
	err := s.db.QueryRow(
		"SELECT best_score FROM users WHERE username = ?",
		username,
	).Scan(&best)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	return best, nil
}

// SaveRun records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (session_id, username, score, total, outcome)
		 VALUES (?, ?, ?, ?, ?)`,
		run.SessionID, run.Username, run.Score, run.Total, run.Outcome,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs, newest first.
// An empty username returns runs of every user.
func (s *Store) RecentRuns(username string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, username, score, total, outcome, created_at
		 FROM runs
		 WHERE ? = '' OR username = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		username, username, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Username, &r.Score, &r.Total, &r.Outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// TopPlayers retrieves the best scores of all users, highest first.
func (s *Store) TopPlayers(limit int) ([]PlayerEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT u.username, u.best_score,
		        COUNT(r.id),
		        COALESCE(SUM(CASE WHEN r.outcome = 'won' THEN 1 ELSE 0 END), 0),
		        MAX(r.created_at)
		 FROM users u
		 LEFT JOIN runs r ON r.username = u.username
		 GROUP BY u.username
		 ORDER BY u.best_score DESC, u.username ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query players: %w", err)
	}
	defer rows.Close()

	var entries []PlayerEntry
	for rows.Next() {
		var e PlayerEntry
		var lastPlayed any
		if err := rows.Scan(&e.Username, &e.BestScore, &e.Runs, &e.Wins, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.LastPlayed = parseTimestamp(lastPlayed)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTimestamp handles both time.Time and string values from the driver.
func parseTimestamp(v any) time.Time {
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
