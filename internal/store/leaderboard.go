package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Entry is one leaderboard row. Rows are append-only: created once per
// completed scoring event, never updated or deleted.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// AddEntry appends a leaderboard row and returns it.
func (s *Store) AddEntry(ctx context.Context, username string, score int) (Entry, error) {
	e := Entry{
		ID:       uuid.New(),
		Username: username,
		Score:    score,
	}

	err := s.pool.QueryRow(ctx, `
		INSERT INTO leaderboard (id, username, score, created_at)
		VALUES ($1, $2, $3, now())
		RETURNING created_at`,
		e.ID, e.Username, e.Score,
	).Scan(&e.CreatedAt)
	if err != nil {
		return Entry{}, fmt.Errorf("insert leaderboard entry: %w", err)
	}

	return e, nil
}

// ListEntries returns leaderboard rows ordered by score descending,
// optionally filtered to a single username.
func (s *Store) ListEntries(ctx context.Context, username string) ([]Entry, error) {
	query := `
		SELECT id, username, score, created_at
		FROM leaderboard
		ORDER BY score DESC`
	args := []any{}

	if username != "" {
		query = `
		SELECT id, username, score, created_at
		FROM leaderboard
		WHERE username = $1
		ORDER BY score DESC`
		args = append(args, username)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Username, &e.Score, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan leaderboard entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read leaderboard rows: %w", err)
	}

	return entries, nil
}
