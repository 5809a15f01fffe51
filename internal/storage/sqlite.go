// Package storage provides SQLite-based persistence for finished-game scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreRecord is one finished game.
type ScoreRecord struct {
	ID        int64
	Variant   string
	SessionID string // UUID; generated on save when empty
	Score     int
	Length    int    // final body length
	EndReason string // "out_of_bounds", "self_collision", "board_full", "quit", "restart"
	Ticks     uint64
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
// A leading "~" is not expanded here; callers pass config.ExpandHome paths.
func Open(dbPath string) (*Store, error) {
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			variant TEXT NOT NULL,
			session_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL DEFAULT '',
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_variant ON scores(variant);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(variant, score DESC);
		CREATE INDEX IF NOT EXISTS idx_scores_session ON scores(session_id);
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

// SaveScore records a finished game and returns the ID of the inserted row.
func (s *Store) SaveScore(rec ScoreRecord) (int64, error) {
	if rec.Variant == "" {
		return 0, errors.New("storage: cannot save score: empty variant")
	}
	if rec.SessionID == "" {
		rec.SessionID = uuid.NewString()
	} else if _, err := uuid.Parse(rec.SessionID); err != nil {
		return 0, fmt.Errorf("storage: cannot save score: bad session id %q: %w", rec.SessionID, err)
	}

	result, err := s.db.Exec(
		`INSERT INTO scores (variant, session_id, score, length, end_reason, ticks)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Variant, rec.SessionID, rec.Score, rec.Length, rec.EndReason, int64(rec.Ticks),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const selectScores = `SELECT id, variant, session_id, score, length, end_reason, ticks, created_at FROM scores`

// TopScores retrieves the top N scores for the given variant.
// Results are ordered by score descending; ties go to the earlier game.
func (s *Store) TopScores(variant string, limit int) ([]ScoreRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		selectScores+` WHERE variant = ? ORDER BY score DESC, id ASC LIMIT ?`,
		variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanScores(rows)
}

// AllScores retrieves all scores for the given variant (no limit).
func (s *Store) AllScores(variant string) ([]ScoreRecord, error) {
	rows, err := s.db.Query(
		selectScores+` WHERE variant = ? ORDER BY score DESC, id ASC`,
		variant,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanScores(rows)
}

// SessionScores retrieves every game played in one session, oldest first.
func (s *Store) SessionScores(sessionID string) ([]ScoreRecord, error) {
	rows, err := s.db.Query(
		selectScores+` WHERE session_id = ? ORDER BY id ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session scores: %w", err)
	}
	return scanScores(rows)
}

func scanScores(rows *sql.Rows) ([]ScoreRecord, error) {
	defer rows.Close()

	var records []ScoreRecord
	for rows.Next() {
		var r ScoreRecord
		var ticks int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Variant, &r.SessionID, &r.Score, &r.Length, &r.EndReason, &ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// parseTime handles both time.Time and string, depending on how the driver
// saw the column type.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the highest score for the given variant.
// Returns 0 if no scores exist.
func (s *Store) HighScore(variant string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE variant = ?",
		variant,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given variant.
func (s *Store) ClearScores(variant string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE variant = ?", variant)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// VariantStats contains aggregated statistics for a board variant.
type VariantStats struct {
	Variant      string
	GamesCount   int
	HighScore    int
	AvgScore     float64
	TotalScore   int64
	LongestSnake int
	Wins         int // games that filled the board
	LastPlayed   time.Time
}

// Stats retrieves aggregated statistics for one variant.
func (s *Store) Stats(variant string) (*VariantStats, error) {
	stats := &VariantStats{Variant: variant}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0),
		        COALESCE(MAX(length), 0), COALESCE(SUM(end_reason = 'board_full'), 0), MAX(created_at)
		 FROM scores WHERE variant = ?`,
		variant,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore,
		&stats.LongestSnake, &stats.Wins, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get variant stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// AllStats retrieves statistics for every variant that has been played.
func (s *Store) AllStats() (map[string]*VariantStats, error) {
	rows, err := s.db.Query(
		`SELECT variant, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(length),
		        SUM(end_reason = 'board_full'), MAX(created_at)
		 FROM scores
		 GROUP BY variant`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all variant stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*VariantStats)
	for rows.Next() {
		var vs VariantStats
		var lastPlayed any
		if err := rows.Scan(&vs.Variant, &vs.GamesCount, &vs.HighScore, &vs.AvgScore, &vs.TotalScore,
			&vs.LongestSnake, &vs.Wins, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		vs.LastPlayed = parseTime(lastPlayed)
		stats[vs.Variant] = &vs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
