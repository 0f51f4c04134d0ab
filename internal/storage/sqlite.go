// Package storage provides SQLite-based persistence for finished games.
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

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result records one finished game.
type Result struct {
	ID        int64
	Strategy  string
	Depth     int
	Seed      int64
	Target    int
	MaxTile   int
	Moves     int
	Won       bool
	Duration  time.Duration
	CreatedAt time.Time
}

// Stats contains aggregated statistics for one strategy, or for all
// strategies combined when Strategy is empty.
type Stats struct {
	Strategy   string
	Games      int
	Wins       int
	BestTile   int
	AvgMoves   float64
	LastPlayed time.Time
}

// WinRate returns the fraction of games that reached the target tile.
func (st Stats) WinRate() float64 {
	if st.Games == 0 {
		return 0
	}
	return float64(st.Wins) / float64(st.Games)
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			strategy TEXT NOT NULL,
			depth INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			target INTEGER NOT NULL,
			max_tile INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_strategy ON results(strategy);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(strategy, max_tile DESC);
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

// SaveResult records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO results (strategy, depth, seed, target, max_tile, moves, won, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Strategy, r.Depth, r.Seed, r.Target, r.MaxTile, r.Moves, r.Won, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopResults retrieves the best results, ordered by max tile descending
// with fewer moves breaking ties. An empty strategy matches every strategy.
func (s *Store) TopResults(strategy string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, strategy, depth, seed, target, max_tile, moves, won, duration_ms, created_at
		 FROM results`
	var args []any
	if strategy != "" {
		query += " WHERE strategy = ?"
		args = append(args, strategy)
	}
	query += " ORDER BY max_tile DESC, moves ASC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}

	return scanResults(rows)
}

// RecentResults retrieves the most recently recorded results across all
// strategies.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, strategy, depth, seed, target, max_tile, moves, won, duration_ms, created_at
		 FROM results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}

	return scanResults(rows)
}

// Stats retrieves aggregated statistics for one strategy, or for all
// recorded games when strategy is empty.
func (s *Store) Stats(strategy string) (*Stats, error) {
	st := &Stats{Strategy: strategy}

	var where string
	var args []any
	if strategy != "" {
		where = " WHERE strategy = ?"
		args = append(args, strategy)
	}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(max_tile), 0), COALESCE(AVG(moves), 0)
		 FROM results`+where,
		args...,
	).Scan(&st.Games, &st.Wins, &st.BestTile, &st.AvgMoves)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		"SELECT created_at FROM results"+where+" ORDER BY created_at DESC LIMIT 1",
		args...,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		st.LastPlayed = parseTimestamp(lastPlayed)
	}

	return st, nil
}

// StatsByStrategy retrieves aggregated statistics for every strategy that
// has recorded games.
func (s *Store) StatsByStrategy() (map[string]*Stats, error) {
	rows, err := s.db.Query(
		`SELECT strategy, COUNT(*), SUM(won), MAX(max_tile), AVG(moves), MAX(created_at)
		 FROM results
		 GROUP BY strategy`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get strategy stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*Stats)
	for rows.Next() {
		var st Stats
		var lastPlayed any
		if err := rows.Scan(&st.Strategy, &st.Games, &st.Wins, &st.BestTile, &st.AvgMoves, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTimestamp(lastPlayed)
		stats[st.Strategy] = &st
	}

	return stats, nil
}

// Strategies lists the strategies that have recorded games, sorted by name.
func (s *Store) Strategies() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT strategy FROM results ORDER BY strategy")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query strategies: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return names, nil
}

// scanResults drains a result query into a slice. It owns the rows and
// closes them.
func scanResults(rows *sql.Rows) ([]Result, error) {
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var durationMS int64
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.Strategy, &r.Depth, &r.Seed, &r.Target,
			&r.MaxTile, &r.Moves, &r.Won, &durationMS, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTimestamp(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// parseTimestamp handles both shapes the driver hands back for DATETIME
// columns.
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
