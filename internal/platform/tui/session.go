package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/outpost-arcade/internal/core"
	"github.com/vovakirdan/outpost-arcade/internal/platform/runner"
	"github.com/vovakirdan/outpost-arcade/internal/registry"
)

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenScores
	screenHistory
)

// SessionModel manages the full arcade flow: menu, then a game, the
// scoreboard or duel history, then back to the menu. Sub-screens end with
// tea.Quit; the session swallows it and switches screens instead.
type SessionModel struct {
	svc    runner.Services
	config core.RuntimeConfig
	screen screen

	menu    MenuModel
	game    GameModel
	scores  ScoreboardModel
	history HistoryModel

	quitting bool
}

// NewSessionModel creates a session that starts on the menu.
func NewSessionModel(svc runner.Services, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		svc:    svc,
		config: cfg,
		menu:   NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	case screenHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		return m.quit()

	case m.menu.Selected() != nil:
		game, err := registry.Create(m.menu.Selected().ID)
		if err != nil {
			m.svc.Log().Error("cannot create game", "error", err)
			return m.toMenu()
		}
		m.game = NewGameModel(game, m.svc, m.config)
		m.screen = screenGame
		return m, tea.Batch(m.game.Init(), tea.EnableMouseAllMotion)

	case m.menu.Next() == MenuActionScoreboard:
		m.scores = NewScoreboardModel(m.svc.Store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.scores.Init()

	case m.menu.Next() == MenuActionHistory:
		m.history = NewHistoryModel(m.svc.Store, m.svc.Session, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenHistory
		return m, m.history.Init()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(GameModel)

	switch {
	case m.game.IsQuitting():
		return m.quit()
	case m.game.BackToMenu():
		id := m.game.run.Game().ID()
		m.scores = NewScoreboardModel(m.svc.Store, m.config.ScreenW, m.config.ScreenH)
		m.scores.SelectGame(id)
		m.screen = screenScores
		return m, tea.Batch(m.scores.Init(), tea.DisableMouse)
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	switch {
	case m.scores.IsQuitting():
		return m.quit()
	case m.scores.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.history.Update(msg)
	m.history = next.(HistoryModel)

	switch {
	case m.history.IsQuitting():
		return m.quit()
	case m.history.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.config)
	m.screen = screenMenu
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	case screenHistory:
		return m.history.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the interactive menu in the local terminal.
func RunSession(svc runner.Services, cfg core.RuntimeConfig) error {
	_, err := tea.NewProgram(NewSessionModel(svc, cfg), tea.WithAltScreen()).Run()
	return err
}
