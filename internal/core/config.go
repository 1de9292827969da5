package core

// Play-field size in simulation units, shared by both games.
const (
	FieldWidth  = 960
	FieldHeight = 640
)

// RuntimeConfig contains configuration passed to games at reset.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters, 0 for window play
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// DT returns the fixed timestep in seconds.
func (c RuntimeConfig) DT() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(c.TickRate)
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// EventKind identifies a notable thing that happened during a tick.
type EventKind int

const (
	EventWaveStarted EventKind = iota
	EventRunEnded
	EventHighScore
	EventPickup
	EventDuelEnded
)

// Event is reported to the platform for logging and persistence.
type Event struct {
	Kind  EventKind
	Value int    // wave number, score, ...
	Note  string // free-form detail
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
