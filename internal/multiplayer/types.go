// Package multiplayer describes who is playing a match and how it ended.
// The duel is played against a CPU pilot; results are handed to a
// ResultSaver so the platform can persist them without games knowing
// about storage.
package multiplayer

import (
	"time"

	"github.com/google/uuid"
)

// SessionID names a player (SSH user or "local") or one of their connections.
type SessionID string

// MatchID uniquely identifies a game match.
type MatchID string

// MatchMode defines how a game match is configured.
type MatchMode int

const (
	// MatchModeSolo is a single-player game (survival).
	MatchModeSolo MatchMode = iota

	// MatchModeVsCPU is player vs computer (duel).
	MatchModeVsCPU
)

// String returns a human-readable name for the match mode.
func (m MatchMode) String() string {
	switch m {
	case MatchModeSolo:
		return "Solo"
	case MatchModeVsCPU:
		return "vs CPU"
	default:
		return "Unknown"
	}
}

// Match ties a session to one run of a game.
type Match struct {
	id      MatchID
	mode    MatchMode
	gameID  string
	session SessionID
	started time.Time
}

// NewMatch starts a match now.
func NewMatch(gameID string, mode MatchMode, session SessionID) *Match {
	now := time.Now()
	return &Match{
		id:      MatchID(gameID + "-" + uuid.NewString()),
		mode:    mode,
		gameID:  gameID,
		session: session,
		started: now,
	}
}

// ID returns the match identifier.
func (m *Match) ID() MatchID { return m.id }

// Mode returns the match mode.
func (m *Match) Mode() MatchMode { return m.mode }

// GameID returns the game being played.
func (m *Match) GameID() string { return m.gameID }

// Session returns the session playing the match.
func (m *Match) Session() SessionID { return m.session }
