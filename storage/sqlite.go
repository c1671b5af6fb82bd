// Package storage keeps minigame records in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for minigame records.
type Store struct {
	db *sql.DB
}

// Record is one finished minigame attempt.
type Record struct {
	ID    int64
	Kind  string
	Won   bool
	Ticks int
	// Stage the door belonged to
	Stage     string
	CreatedAt time.Time
}

// Summary counts attempts per minigame.
type Summary struct {
	Kind      string
	Wins      int
	Losses    int
	BestTicks int // zero when never won
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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
		CREATE TABLE IF NOT EXISTS minigame_records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			won INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			stage TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_records_kind ON minigame_records(kind);
		CREATE INDEX IF NOT EXISTS idx_records_best ON minigame_records(kind, won, ticks);
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

// SaveRecord stores one attempt and returns its ID.
func (s *Store) SaveRecord(kind, stage string, won bool, ticks int) (int64, error) {
	wonInt := 0
	if won {
		wonInt = 1
	}
	result, err := s.db.Exec(
		"INSERT INTO minigame_records (kind, won, ticks, stage) VALUES (?, ?, ?, ?)",
		kind, wonInt, ticks, stage,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// BestTimes returns the fastest wins for kind, fewest ticks first.
func (s *Store) BestTimes(kind string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		`SELECT id, kind, won, ticks, stage, created_at
		 FROM minigame_records
		 WHERE kind = ? AND won = 1
		 ORDER BY ticks ASC, id ASC
		 LIMIT ?`,
		kind, limit,
	)
}

// Recent returns the latest attempts of every kind, newest first.
func (s *Store) Recent(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		`SELECT id, kind, won, ticks, stage, created_at
		 FROM minigame_records
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// Summaries aggregates wins, losses and the best win per kind, by kind name.
func (s *Store) Summaries() ([]Summary, error) {
	rows, err := s.db.Query(
		`SELECT kind,
		        SUM(CASE WHEN won = 1 THEN 1 ELSE 0 END),
		        SUM(CASE WHEN won = 0 THEN 1 ELSE 0 END),
		        COALESCE(MIN(CASE WHEN won = 1 THEN ticks END), 0)
		 FROM minigame_records
		 GROUP BY kind
		 ORDER BY kind`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query summaries: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		if err := rows.Scan(&sum.Kind, &sum.Wins, &sum.Losses, &sum.BestTicks); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

func (s *Store) query(q string, args ...any) ([]Record, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var won int
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Kind, &won, &r.Ticks, &r.Stage, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Won = won == 1

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}
