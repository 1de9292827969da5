package multiplayer

import "time"

// Side names a participant of a versus match.
type Side int

const (
	SideNone Side = iota // draw
	SidePlayer
	SideCPU
)

// String returns the label stored with results.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideCPU:
		return "cpu"
	default:
		return "draw"
	}
}

// EndReason records why a match finished.
type EndReason string

const (
	EndDestroyed EndReason = "destroyed" // one ship was destroyed
	EndMutual    EndReason = "mutual"    // both ships died on the same tick
	EndAbandoned EndReason = "abandoned" // the player quit before a result
)

// Outcome is what a game knows about the end of a match.
type Outcome struct {
	Winner      Side
	Reason      EndReason
	PlayerScore int
	CPUScore    int
	Ticks       int
}

// Decider is implemented by games that produce a winner.
// Outcome returns false while the match is still undecided.
type Decider interface {
	Outcome() (Outcome, bool)
}

// Result is a finished match ready to be persisted.
type Result struct {
	MatchID     MatchID
	GameID      string
	Session     SessionID
	Winner      Side
	Reason      EndReason
	PlayerScore int
	CPUScore    int
	Duration    time.Duration
}

// ResultSaver persists match results.
type ResultSaver interface {
	SaveMatchResult(Result) error
}

// Finish turns a game outcome into a Result. Duration is taken from
// simulation ticks so paused time does not count.
func (m *Match) Finish(o Outcome, tickRate int) Result {
	if tickRate <= 0 {
		tickRate = 60
	}
	return Result{
		MatchID:     m.id,
		GameID:      m.gameID,
		Session:     m.session,
		Winner:      o.Winner,
		Reason:      o.Reason,
		PlayerScore: o.PlayerScore,
		CPUScore:    o.CPUScore,
		Duration:    time.Duration(o.Ticks) * time.Second / time.Duration(tickRate),
	}
}

// Abandon records a match the player left early.
func (m *Match) Abandon(ticks, tickRate int) Result {
	return m.Finish(Outcome{Winner: SideCPU, Reason: EndAbandoned, Ticks: ticks}, tickRate)
}
