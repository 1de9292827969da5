package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/outpost-arcade/internal/multiplayer"
	"github.com/vovakirdan/outpost-arcade/internal/storage"
)

const maxDuels = 50

// HistoryModel lists recent duel results with a win/loss tally.
// Tab switches between the current player's duels and everyone's.
type HistoryModel struct {
	store   *storage.Store
	session string
	all     bool
	records []storage.DuelRecord
	tally   storage.DuelTally
	err     error
	table   table.Model
	help    help.Model
	keys    listKeys
	width   int
	height  int

	quitting  bool
	goingBack bool
}

// NewHistoryModel creates a duel history view for session.
// An empty session shows every duel.
func NewHistoryModel(store *storage.Store, session multiplayer.SessionID, width, height int) HistoryModel {
	m := HistoryModel{
		store:   store,
		session: string(session),
		all:     session == "",
		help:    help.New(),
		keys:    newListKeys("view"),
		width:   width,
		height:  height,
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m *HistoryModel) newTable() table.Model {
	return newTable([]table.Column{
		{Title: "When", Width: 13},
		{Title: "Result", Width: 8},
		{Title: "How", Width: 10},
		{Title: "Score", Width: 7},
		{Title: "CPU", Width: 7},
		{Title: "Time", Width: 7},
	}, m.height)
}

func (m *HistoryModel) scope() string {
	if m.all {
		return ""
	}
	return m.session
}

// load refreshes records and tally for the current scope.
func (m *HistoryModel) load() {
	m.records, m.tally, m.err = nil, storage.DuelTally{}, nil
	if m.store != nil {
		if m.records, m.err = m.store.RecentDuels(m.scope(), maxDuels); m.err == nil {
			m.tally, m.err = m.store.Tally(m.scope())
		}
	}

	rows := make([]table.Row, len(m.records))
	for i, d := range m.records {
		rows[i] = table.Row{
			d.CreatedAt.Format("Jan 02 15:04"),
			resultLabel(d.Winner),
			d.EndReason,
			strconv.Itoa(d.PlayerScore),
			strconv.Itoa(d.CPUScore),
			fmt.Sprintf("%.1fs", d.Duration.Seconds()),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func resultLabel(winner string) string {
	switch winner {
	case multiplayer.SidePlayer.String():
		return "won"
	case multiplayer.SideCPU.String():
		return "lost"
	default:
		return "draw"
	}
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Prev):
			if m.session != "" {
				m.all = !m.all
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		rows := m.table.Rows()
		m.table = m.newTable()
		m.table.SetRows(rows)
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	title := "DUELS - everyone"
	if !m.all {
		title = "DUELS - " + m.session
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	t := m.tally
	summary := fmt.Sprintf("%d won   %d lost   %d drawn", t.Wins, t.Losses, t.Draws)
	b.WriteString(centerText(summary, m.width))
	b.WriteString("\n\n")

	var body string
	switch {
	case m.err != nil:
		body = emptyStyle.Render("Could not load duels: " + m.err.Error())
	case len(m.records) == 0:
		body = emptyStyle.Render("No duels fought yet.")
	default:
		body = m.table.View()
	}
	b.WriteString(centerText(panelStyle.Render(body), m.width))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the duel history screen.
func RunHistory(store *storage.Store, session multiplayer.SessionID, width, height int) error {
	_, err := tea.NewProgram(NewHistoryModel(store, session, width, height), tea.WithAltScreen()).Run()
	return err
}
