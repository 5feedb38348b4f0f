// Package storage provides SQLite-based persistence for finished match results.
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

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// ResultEntry is one finished match.
type ResultEntry struct {
	ID        int64
	MatchID   string // UUID, generated by SaveResult when empty
	GameID    string
	Player    string // Who played: local user name or SSH user
	Score     [2]int // Final root score per player
	Headline  int    // Single number used for high-score tables
	Winner    int    // Winning player, -1 for none
	Plays     int
	Detail    string
	CreatedAt time.Time
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	Wins       [2]int // Matches won by player 0 and player 1
	LastPlayed time.Time
}

const timeLayout = "2006-01-02 15:04:05"

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
			match_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			score0 INTEGER NOT NULL DEFAULT 0,
			score1 INTEGER NOT NULL DEFAULT 0,
			headline INTEGER NOT NULL DEFAULT 0,
			winner INTEGER NOT NULL DEFAULT -1,
			plays INTEGER NOT NULL DEFAULT 0,
			detail TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_game_id ON results(game_id);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(game_id, headline DESC);
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

// SaveResult records a finished match and returns its match ID.
func (s *Store) SaveResult(e ResultEntry) (string, error) {
	if e.MatchID == "" {
		e.MatchID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO results
		 (match_id, game_id, player, score0, score1, headline, winner, plays, detail)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.MatchID, e.GameID, e.Player, e.Score[0], e.Score[1], e.Headline, e.Winner, e.Plays, e.Detail,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save result: %w", err)
	}
	return e.MatchID, nil
}

const resultColumns = `id, match_id, game_id, player, score0, score1, headline, winner, plays, detail, created_at`

// ResultByMatchID retrieves a result by its match ID. Returns nil if not found.
func (s *Store) ResultByMatchID(matchID string) (*ResultEntry, error) {
	row := s.db.QueryRow(`SELECT `+resultColumns+` FROM results WHERE match_id = ?`, matchID)

	e, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query result: %w", err)
	}
	return &e, nil
}

// RecentResults retrieves the most recent results for the given game.
func (s *Store) RecentResults(gameID string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryResults(
		`SELECT `+resultColumns+` FROM results
		 WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, limit,
	)
}

// TopScores retrieves the top N results for the given game.
// Results are ordered by headline score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryResults(
		`SELECT `+resultColumns+` FROM results
		 WHERE game_id = ?
		 ORDER BY headline DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
}

func (s *Store) queryResults(query string, args ...any) ([]ResultEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		e, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanResult(sc scanner) (ResultEntry, error) {
	var e ResultEntry
	var createdAt any
	err := sc.Scan(
		&e.ID,
		&e.MatchID,
		&e.GameID,
		&e.Player,
		&e.Score[0],
		&e.Score[1],
		&e.Headline,
		&e.Winner,
		&e.Plays,
		&e.Detail,
		&createdAt,
	)
	if err != nil {
		return e, err
	}
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the highest headline score for the given game.
// Returns 0 if no results exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(headline) FROM results WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearResults deletes all results for the given game.
func (s *Store) ClearResults(gameID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for a specific game.
func (s *Store) Stats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(MAX(headline), 0),
		        COALESCE(AVG(headline), 0),
		        COALESCE(SUM(CASE WHEN winner = 0 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 1 THEN 1 ELSE 0 END), 0),
		        MAX(created_at)
		 FROM results WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.Wins[0], &stats.Wins[1], &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}
