package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/outpost-arcade/internal/multiplayer"
	"github.com/vovakirdan/outpost-arcade/internal/storage"
)

func TestScoreboardShowsSelectedGame(t *testing.T) {
	st, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()
	for _, s := range []int{120, 340} {
		if _, err := st.SaveScore("menu-b", s); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}

	m := NewScoreboardModel(st, 80, 30)
	if rows := m.table.Rows(); len(rows) != 0 {
		t.Fatalf("first game has rows %v, want none", rows)
	}

	m.SelectGame("menu-b")
	rows := m.table.Rows()
	if len(rows) != 2 || rows[0][1] != "340" {
		t.Fatalf("rows = %v, want 340 first", rows)
	}
	if view := m.View(); !strings.Contains(view, "2 games") {
		t.Errorf("view missing stats line:\n%s", view)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.cursor != 0 {
		t.Errorf("tab from the last game: cursor = %d, want 0", m.cursor)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() || cmd == nil {
		t.Error("esc did not go back")
	}
}

func TestHistoryTogglesScope(t *testing.T) {
	st, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	results := []multiplayer.Result{
		{MatchID: "m1", GameID: "duel", Session: "alice", Winner: multiplayer.SidePlayer, Reason: multiplayer.EndDestroyed},
		{MatchID: "m2", GameID: "duel", Session: "alice", Winner: multiplayer.SideCPU, Reason: multiplayer.EndAbandoned},
		{MatchID: "m3", GameID: "duel", Session: "bob", Winner: multiplayer.SideNone, Reason: multiplayer.EndMutual},
	}
	for _, r := range results {
		if err := st.SaveMatchResult(r); err != nil {
			t.Fatalf("SaveMatchResult: %v", err)
		}
	}

	m := NewHistoryModel(st, "alice", 100, 30)
	if len(m.records) != 2 || m.tally != (storage.DuelTally{Wins: 1, Losses: 1}) {
		t.Fatalf("alice: %d records, tally %+v", len(m.records), m.tally)
	}
	if got := m.table.Rows()[0][1]; got != "lost" {
		t.Errorf("newest result = %q, want lost", got)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	if len(m.records) != 3 || m.tally.Draws != 1 {
		t.Errorf("everyone: %d records, tally %+v", len(m.records), m.tally)
	}
	if view := m.View(); !strings.Contains(view, "DUELS - everyone") {
		t.Errorf("view title wrong:\n%s", view)
	}
}
