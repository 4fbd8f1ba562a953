package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// ScoreEntry is one saved final score.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// GameStats aggregates the scores and round history of one game mode.
type GameStats struct {
	GameID     string
	Games      int // rounds that ended with a saved score
	Best       int
	Average    float64
	Rounds     int // every recorded round, scoring or not
	Cleared    int // cells cleared over all rounds
	LastPlayed time.Time
}

// SaveScore records a final score for the given game and returns its row ID.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO scores (game_id, score) VALUES (?, ?)`, gameID, score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score for %s: %w", gameID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

func scanScore(row rowScanner) (ScoreEntry, error) {
	var e ScoreEntry
	var createdAt any
	if err := row.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
		return ScoreEntry{}, err
	}
	e.CreatedAt = parseTimestamp(createdAt)
	return e, nil
}

// TopScores returns the best scores for the given game. Ties keep the order
// they were set in. A non-positive limit defaults to 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	entries, err := queryAll(s.db, scanScore,
		`SELECT id, game_id, score, created_at FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return entries, nil
}

// HighScore returns the best score for the given game, or 0 when none exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow(`SELECT MAX(score) FROM scores WHERE game_id = ?`, gameID).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(best.Int64), nil
}

// ClearGame deletes the scores and rounds of one game mode and returns how
// many scores were removed.
func (s *Store) ClearGame(gameID string) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear %s: %w", gameID, err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM scores WHERE game_id = ?`, gameID)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM rounds WHERE game_id = ?`, gameID); err != nil {
		return 0, fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot clear %s: %w", gameID, err)
	}
	return res.RowsAffected()
}

// statsQuery covers every mode that has scores or rounds, so a mode whose
// rounds all scored 0 still reports its rounds.
const statsQuery = `SELECT g.game_id,
	COALESCE(s.games, 0), COALESCE(s.best, 0), COALESCE(s.average, 0.0),
	MAX(COALESCE(s.last, ''), COALESCE(r.last, '')),
	COALESCE(r.rounds, 0), COALESCE(r.cleared, 0)
 FROM (SELECT game_id FROM scores UNION SELECT game_id FROM rounds) g
 LEFT JOIN (SELECT game_id, COUNT(*) AS games, MAX(score) AS best, AVG(score) AS average, MAX(created_at) AS last
	FROM scores GROUP BY game_id) s ON s.game_id = g.game_id
 LEFT JOIN (SELECT game_id, COUNT(*) AS rounds, SUM(cleared) AS cleared, MAX(created_at) AS last
	FROM rounds GROUP BY game_id) r ON r.game_id = g.game_id`

func scanStats(row rowScanner) (GameStats, error) {
	var gs GameStats
	var lastPlayed any
	if err := row.Scan(&gs.GameID, &gs.Games, &gs.Best, &gs.Average, &lastPlayed, &gs.Rounds, &gs.Cleared); err != nil {
		return GameStats{}, err
	}
	gs.LastPlayed = parseTimestamp(lastPlayed)
	return gs, nil
}

// Stats aggregates one game mode. A mode that was never played reports zero values.
func (s *Store) Stats(gameID string) (GameStats, error) {
	stats, err := queryAll(s.db, scanStats, statsQuery+` WHERE g.game_id = ?`, gameID)
	if err != nil {
		return GameStats{}, fmt.Errorf("storage: cannot get stats for %s: %w", gameID, err)
	}
	if len(stats) == 0 {
		return GameStats{GameID: gameID}, nil
	}
	return stats[0], nil
}

// AllStats aggregates every game mode with scores or rounds, ordered by game ID.
func (s *Store) AllStats() ([]GameStats, error) {
	stats, err := queryAll(s.db, scanStats, statsQuery+` ORDER BY g.game_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	return stats, nil
}
