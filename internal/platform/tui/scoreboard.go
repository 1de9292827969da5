package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/outpost-arcade/internal/registry"
	"github.com/vovakirdan/outpost-arcade/internal/storage"
)

const maxScores = 100

var (
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	tabStyle       = dimStyle.Padding(0, 1)
	emptyStyle     = dimStyle.Italic(true).Padding(1, 2)
)

// listKeys are the bindings shared by the score and duel tables.
type listKeys struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k listKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newListKeys(noun string) listKeys {
	return listKeys{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next "+noun)),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev "+noun)),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// newTable builds a focused table sized to the terminal.
func newTable(columns []table.Column, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, height-9)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)
	return t
}

// ScoreboardModel shows the best scores of each game.
type ScoreboardModel struct {
	games  []registry.GameInfo
	cursor int
	store  *storage.Store
	stats  *storage.GameStats
	err    error
	table  table.Model
	help   help.Model
	keys   listKeys
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard opened on the first game.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		help:   help.New(),
		keys:   newListKeys("game"),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.load()
	return m
}

// SelectGame moves the scoreboard to gameID if it is registered.
func (m *ScoreboardModel) SelectGame(gameID string) {
	for i, g := range m.games {
		if g.ID == gameID {
			m.cursor = i
			m.load()
			return
		}
	}
}

func (m *ScoreboardModel) newTable() table.Model {
	return newTable([]table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 16},
	}, m.height)
}

// load fills the table with the current game's scores.
func (m *ScoreboardModel) load() {
	m.stats, m.err = nil, nil
	var rows []table.Row
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.cursor].ID
		scores, err := m.store.TopScores(id, maxScores)
		if err != nil {
			m.err = err
		}
		for i, s := range scores {
			rows = append(rows, table.Row{
				"#" + strconv.Itoa(i+1),
				strconv.Itoa(s.Score),
				s.CreatedAt.Format("Jan 02 15:04"),
			})
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
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

func (m *ScoreboardModel) step(d int) {
	if n := len(m.games); n > 0 {
		m.cursor = (m.cursor + d + n) % n
		m.load()
	}
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(truncate(g.Title, 16))
		} else {
			tabs[i] = tabStyle.Render(truncate(g.Title, 16))
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	var body string
	switch {
	case m.err != nil:
		body = emptyStyle.Render("Could not load scores: " + m.err.Error())
	case len(m.table.Rows()) == 0:
		body = emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	default:
		body = m.table.View()
	}
	b.WriteString(centerText(panelStyle.Render(body), m.width))
	b.WriteString("\n")

	if s := m.stats; s != nil && s.GamesCount > 0 {
		line := fmt.Sprintf("%s   best %d   avg %.0f   last %s",
			plural(s.GamesCount, "game"), s.HighScore, s.AvgScore, s.LastPlayed.Format("Jan 02 15:04"))
		b.WriteString(centerText(dimStyle.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen opened on gameID, or on the first
// game when gameID is empty.
func RunScoreboard(store *storage.Store, gameID string, width, height int) error {
	model := NewScoreboardModel(store, width, height)
	model.SelectGame(gameID)

	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
