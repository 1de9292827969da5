// Package tui runs the arcade in a terminal with Bubble Tea: the game loop,
// key and mouse mapping, menus, scoreboards and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the game loop that scheduled it.
type TickMsg struct {
	At  time.Time
	Gen int64
}

var tickGen atomic.Int64

// nextGen returns a fresh loop generation so stale ticks from a finished
// game cannot speed up the next one.
func nextGen() int64 {
	return tickGen.Add(1)
}

// tickCmd schedules the next tick of loop gen at the given rate.
func tickCmd(tickRate int, gen int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}
