// Package storage provides SQLite-based persistence for finished rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only round summaries are stored; in-progress boards are never persisted.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/aluzhin/tui-sweeper/internal/core"
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// ResultEntry is a single finished-round record.
type ResultEntry struct {
	ID           int64
	Preset       string
	Rows         int
	Cols         int
	Mines        int
	Seed         int64
	Won          bool
	DurationSecs int
	CellsOpened  int
	CreatedAt    time.Time
}

// PresetStats contains aggregated statistics for one preset.
type PresetStats struct {
	Preset       string
	Played       int
	Won          int
	BestTimeSecs int // Fastest win; 0 when no wins recorded
	LastPlayed   time.Time
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			preset TEXT NOT NULL,
			rows INTEGER NOT NULL,
			cols INTEGER NOT NULL,
			mines INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			won INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL,
			cells_opened INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_preset ON results(preset);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(preset, won, duration_secs);
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

// SaveResult records a finished round. Returns the inserted record's ID.
func (s *Store) SaveResult(r core.GameResult) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO results (preset, rows, cols, mines, seed, won, duration_secs, cells_opened)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Preset, r.Rows, r.Cols, r.Mines, r.Seed, r.Won, r.DurationSecs, r.CellsOpened,
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

// BestTimes retrieves the fastest wins for the given preset, ordered by
// duration ascending.
func (s *Store) BestTimes(preset string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, preset, rows, cols, mines, seed, won, duration_secs, cells_opened, created_at
		 FROM results
		 WHERE preset = ? AND won = 1
		 ORDER BY duration_secs ASC, created_at ASC
		 LIMIT ?`,
		preset, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best times: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

// RecentResults retrieves the most recent rounds across all presets.
func (s *Store) RecentResults(limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, preset, rows, cols, mines, seed, won, duration_secs, cells_opened, created_at
		 FROM results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent results: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

// Stats retrieves aggregated statistics for one preset.
func (s *Store) Stats(preset string) (*PresetStats, error) {
	stats := &PresetStats{Preset: preset}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0),
		        COALESCE(MIN(CASE WHEN won = 1 THEN duration_secs END), 0)
		 FROM results WHERE preset = ?`,
		preset,
	).Scan(&stats.Played, &stats.Won, &stats.BestTimeSecs)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results WHERE preset = ? ORDER BY created_at DESC LIMIT 1`,
		preset,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// AllStats retrieves statistics for every preset that has been played.
func (s *Store) AllStats() (map[string]*PresetStats, error) {
	rows, err := s.db.Query(
		`SELECT preset, COUNT(*), COALESCE(SUM(won), 0),
		        COALESCE(MIN(CASE WHEN won = 1 THEN duration_secs END), 0),
		        MAX(created_at)
		 FROM results
		 GROUP BY preset`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PresetStats)
	for rows.Next() {
		var ps PresetStats
		var lastPlayed any
		if err := rows.Scan(&ps.Preset, &ps.Played, &ps.Won, &ps.BestTimeSecs, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.LastPlayed = parseTimestamp(lastPlayed)
		stats[ps.Preset] = &ps
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearResults deletes all results for the given preset.
func (s *Store) ClearResults(preset string) error {
	if _, err := s.db.Exec("DELETE FROM results WHERE preset = ?", preset); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

func scanResults(rows *sql.Rows) ([]ResultEntry, error) {
	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Preset, &e.Rows, &e.Cols, &e.Mines, &e.Seed,
			&e.Won, &e.DurationSecs, &e.CellsOpened, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// parseTimestamp handles the driver returning either time.Time or a string.
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
