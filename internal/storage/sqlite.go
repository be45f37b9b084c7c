// Package storage keeps the run leaderboard in an in-memory SQLite database.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Nothing is written to disk: the leaderboard lives as long as the process.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the in-memory leaderboard database.
// It is safe for concurrent use by multiple sessions.
type Store struct {
	db *sql.DB
}

// RunEntry is one completed run of the level.
type RunEntry struct {
	ID        int64
	Player    string
	Coins     int // Coins collected when the goal was reached
	Frames    int // Simulated frames from (re)start to goal
	Falls     int // Times the player fell out of the world
	CreatedAt time.Time
}

// Stats contains aggregated leaderboard statistics.
type Stats struct {
	Runs         int
	Players      int
	BestCoins    int
	FewestFrames int
	TotalFalls   int
	LastRun      time.Time
}

// Open creates an empty in-memory leaderboard and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to ":memory:" is a separate database.
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

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			coins INTEGER NOT NULL,
			frames INTEGER NOT NULL,
			falls INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(coins DESC, frames ASC);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database. The leaderboard is gone afterwards.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a completed run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run RunEntry) (int64, error) {
	if run.Player == "" {
		run.Player = "anonymous"
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (player, coins, frames, falls) VALUES (?, ?, ?, ?)",
		run.Player, run.Coins, run.Frames, run.Falls,
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

// TopRuns retrieves the best N runs: most coins first, then fewest frames.
func (s *Store) TopRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, coins, frames, falls, created_at
		 FROM runs
		 ORDER BY coins DESC, frames ASC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Player, &e.Coins, &e.Frames, &e.Falls, &createdAt); err != nil {
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

// PlayerBest returns the best run of a player.
// The boolean is false if the player has no runs.
func (s *Store) PlayerBest(player string) (RunEntry, bool, error) {
	var e RunEntry
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, player, coins, frames, falls, created_at
		 FROM runs
		 WHERE player = ?
		 ORDER BY coins DESC, frames ASC, id ASC
		 LIMIT 1`,
		player,
	).Scan(&e.ID, &e.Player, &e.Coins, &e.Frames, &e.Falls, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return RunEntry{}, false, nil
	}
	if err != nil {
		return RunEntry{}, false, fmt.Errorf("storage: cannot query player best: %w", err)
	}

	e.CreatedAt = parseTime(createdAt)
	return e, true, nil
}

// Stats retrieves aggregated statistics over all runs.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	var lastRun any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT player), COALESCE(MAX(coins), 0),
		        COALESCE(MIN(frames), 0), COALESCE(SUM(falls), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&st.Runs, &st.Players, &st.BestCoins, &st.FewestFrames, &st.TotalFalls, &lastRun)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	st.LastRun = parseTime(lastRun)
	return st, nil
}

// Clear deletes all runs.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
