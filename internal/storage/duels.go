package storage

import (
	"fmt"
	"time"

	"github.com/vovakirdan/outpost-arcade/internal/multiplayer"
)

// DuelRecord is one stored duel.
type DuelRecord struct {
	ID          int64
	MatchID     string
	Session     string
	Winner      string // "player", "cpu" or "draw"
	EndReason   string
	PlayerScore int
	CPUScore    int
	Duration    time.Duration
	CreatedAt   time.Time
}

// DuelTally summarizes a session's duel history.
type DuelTally struct {
	Wins, Losses, Draws int
}

// SaveMatchResult implements multiplayer.ResultSaver.
func (s *Store) SaveMatchResult(r multiplayer.Result) error {
	_, err := s.db.Exec(
		`INSERT INTO duels
		 (match_id, session, winner, end_reason, player_score, cpu_score, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(r.MatchID),
		string(r.Session),
		r.Winner.String(),
		string(r.Reason),
		r.PlayerScore,
		r.CPUScore,
		r.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save duel %s: %w", r.MatchID, err)
	}
	return nil
}

var _ multiplayer.ResultSaver = (*Store)(nil)

// RecentDuels returns the latest duels, newest first. An empty session
// returns duels of every session.
func (s *Store) RecentDuels(session string, limit int) ([]DuelRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, match_id, session, winner, end_reason, player_score, cpu_score, duration_ms, created_at
		 FROM duels
		 WHERE ? = '' OR session = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		session, session, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query duels: %w", err)
	}
	defer rows.Close()

	var out []DuelRecord
	for rows.Next() {
		var d DuelRecord
		var ms int64
		var createdAt any
		if err := rows.Scan(&d.ID, &d.MatchID, &d.Session, &d.Winner, &d.EndReason,
			&d.PlayerScore, &d.CPUScore, &ms, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan duel row: %w", err)
		}
		d.Duration = time.Duration(ms) * time.Millisecond
		d.CreatedAt = parseTime(createdAt)
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// Tally counts wins, losses and draws for a session ("" for all).
func (s *Store) Tally(session string) (DuelTally, error) {
	var t DuelTally
	err := s.db.QueryRow(
		`SELECT
		   COALESCE(SUM(winner = 'player'), 0),
		   COALESCE(SUM(winner = 'cpu'), 0),
		   COALESCE(SUM(winner = 'draw'), 0)
		 FROM duels
		 WHERE ? = '' OR session = ?`,
		session, session,
	).Scan(&t.Wins, &t.Losses, &t.Draws)
	if err != nil {
		return t, fmt.Errorf("storage: cannot tally duels: %w", err)
	}
	return t, nil
}
