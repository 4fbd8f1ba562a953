package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrRoundNotFound is returned by RoundByID for unknown round IDs.
var ErrRoundNotFound = errors.New("storage: round not found")

// Round is one finished run of a game, kept for the history view.
type Round struct {
	ID        int64
	RoundID   string // UUID, assigned by SaveRound when empty
	GameID    string
	Session   string // SSH session ID, empty for local play
	Score     int
	Moves     int
	Boards    int
	Cleared   int
	Ticks     uint64
	CreatedAt time.Time
}

// SaveRound records a finished round and returns its round ID.
func (s *Store) SaveRound(r Round) (string, error) {
	if r.RoundID == "" {
		r.RoundID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO rounds
		 (round_id, game_id, session, score, moves, boards, cleared, ticks)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RoundID,
		r.GameID,
		r.Session,
		r.Score,
		r.Moves,
		r.Boards,
		r.Cleared,
		int64(r.Ticks),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save round: %w", err)
	}
	return r.RoundID, nil
}

const roundColumns = `id, round_id, game_id, session, score, moves, boards, cleared, ticks, created_at`

func scanRound(row rowScanner) (Round, error) {
	var r Round
	var ticks int64
	var createdAt any
	err := row.Scan(
		&r.ID,
		&r.RoundID,
		&r.GameID,
		&r.Session,
		&r.Score,
		&r.Moves,
		&r.Boards,
		&r.Cleared,
		&ticks,
		&createdAt,
	)
	if err != nil {
		return Round{}, err
	}
	r.Ticks = uint64(ticks)
	r.CreatedAt = parseTimestamp(createdAt)
	return r, nil
}

// RoundByID retrieves a round by its UUID.
func (s *Store) RoundByID(roundID string) (Round, error) {
	row := s.db.QueryRow(
		`SELECT `+roundColumns+` FROM rounds WHERE round_id = ?`,
		roundID,
	)
	r, err := scanRound(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Round{}, fmt.Errorf("%w: %s", ErrRoundNotFound, roundID)
	}
	if err != nil {
		return Round{}, fmt.Errorf("storage: cannot query round: %w", err)
	}
	return r, nil
}

// RecentRounds retrieves the most recent rounds, newest first.
// An empty gameID returns rounds of every game. A non-positive limit defaults to 20.
func (s *Store) RecentRounds(gameID string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + roundColumns + ` FROM rounds`
	args := []any{}
	if gameID != "" {
		query += ` WHERE game_id = ?`
		args = append(args, gameID)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rounds, err := queryAll(s.db, scanRound, query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	return rounds, nil
}
