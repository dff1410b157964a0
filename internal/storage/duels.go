package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Duel outcomes stored in the winner column.
const (
	DuelDraw    = 0
	DuelPlayer1 = 1
	DuelPlayer2 = 2
)

// DuelResult is the outcome of a two-board game in one terminal.
type DuelResult struct {
	ID        string // UUID, assigned by SaveDuel when empty
	GameID    string
	Score1    int
	Score2    int
	Winner    int // DuelDraw, DuelPlayer1 or DuelPlayer2
	Duration  time.Duration
	CreatedAt time.Time
}

// DuelTally counts duel outcomes.
type DuelTally struct {
	Player1Wins int
	Player2Wins int
	Draws       int
}

// SaveDuel records a duel and returns its ID.
func (s *Store) SaveDuel(r DuelResult) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	} else if _, err := uuid.Parse(r.ID); err != nil {
		return "", fmt.Errorf("storage: invalid duel id %q: %w", r.ID, err)
	}
	if r.Winner < DuelDraw || r.Winner > DuelPlayer2 {
		return "", fmt.Errorf("storage: invalid duel winner %d", r.Winner)
	}

	_, err := s.db.Exec(
		`INSERT INTO duels (id, game_id, score1, score2, winner, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.GameID, r.Score1, r.Score2, r.Winner, int64(r.Duration/time.Second),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save duel: %w", err)
	}
	return r.ID, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDuel(row rowScanner) (DuelResult, error) {
	var r DuelResult
	var secs int64
	var createdAt any
	if err := row.Scan(&r.ID, &r.GameID, &r.Score1, &r.Score2, &r.Winner, &secs, &createdAt); err != nil {
		return DuelResult{}, err
	}
	r.Duration = time.Duration(secs) * time.Second
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// DuelByID retrieves a duel by its ID. Returns nil, nil if it does not exist.
func (s *Store) DuelByID(id string) (*DuelResult, error) {
	row := s.db.QueryRow(
		`SELECT id, game_id, score1, score2, winner, duration_secs, created_at
		 FROM duels WHERE id = ?`,
		id,
	)
	r, err := scanDuel(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query duel: %w", err)
	}
	return &r, nil
}

// RecentDuels retrieves the most recent duels, newest first.
func (s *Store) RecentDuels(limit int) ([]DuelResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score1, score2, winner, duration_secs, created_at
		 FROM duels
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query duels: %w", err)
	}
	defer rows.Close()

	var results []DuelResult
	for rows.Next() {
		r, err := scanDuel(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// Tally counts wins and draws for one game, or across all games when gameID is empty.
func (s *Store) Tally(gameID string) (DuelTally, error) {
	var t DuelTally
	err := s.db.QueryRow(
		`SELECT
		   COALESCE(SUM(CASE WHEN winner = 1 THEN 1 ELSE 0 END), 0),
		   COALESCE(SUM(CASE WHEN winner = 2 THEN 1 ELSE 0 END), 0),
		   COALESCE(SUM(CASE WHEN winner = 0 THEN 1 ELSE 0 END), 0)
		 FROM duels
		 WHERE ? = '' OR game_id = ?`,
		gameID, gameID,
	).Scan(&t.Player1Wins, &t.Player2Wins, &t.Draws)
	if err != nil {
		return DuelTally{}, fmt.Errorf("storage: cannot tally duels: %w", err)
	}
	return t, nil
}
