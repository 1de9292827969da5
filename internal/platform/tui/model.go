package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/outpost-arcade/internal/core"
	"github.com/vovakirdan/outpost-arcade/internal/platform/runner"
	"github.com/vovakirdan/outpost-arcade/internal/registry"
)

// GameModel is the Bubble Tea model that runs one game.
type GameModel struct {
	run    *runner.Runner
	screen *core.Screen
	log    *log.Logger
	config core.RuntimeConfig
	gen    int64

	keys     *KeyMapper
	frame    core.InputFrame
	pointer  core.Vec2
	pointing bool
	mouseBtn bool

	standalone bool // quit the program instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for game. A zero seed is replaced by the
// current time.
func NewGameModel(game registry.Game, svc runner.Services, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return GameModel{
		run:    runner.New(game, svc, cfg),
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		log:    svc.Log().With("game", game.ID()),
		config: cfg,
		gen:    nextGen(),
		keys:   NewKeyMapper(cfg.TickRate),
		frame:  core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen || m.quitting || m.backToMenu {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		if path, err := m.saveScreenshot(); err != nil {
			m.log.Warn("screenshot failed", "error", err)
		} else {
			m.log.Info("screenshot saved", "path", path)
		}
		return m, nil
	case "esc", "b":
		return m.leave(false)
	}

	if m.keys.Press(msg, &m.frame) {
		return m.leave(true)
	}
	return m, nil
}

// handleMouse tracks the pointer in field units and the left button.
func (m *GameModel) handleMouse(msg tea.MouseMsg) {
	sc := core.Scene{Width: core.FieldWidth, Height: core.FieldHeight}
	if p, ok := sc.FieldPoint(msg.X, msg.Y, m.screen.Width(), m.screen.Height()); ok {
		m.pointer, m.pointing = p, true
	}
	if msg.Button == tea.MouseButtonLeft {
		switch msg.Action {
		case tea.MouseActionPress:
			m.mouseBtn = true
		case tea.MouseActionRelease:
			m.mouseBtn = false
		}
	}
}

// handleTick runs one simulation step.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	m.keys.Frame(&m.frame)
	m.frame.Pointer, m.frame.HasPointer = m.pointer, m.pointing
	if m.mouseBtn {
		m.frame.Set(core.ActionFire)
	}

	if m.run.State().GameOver && m.frame.Has(core.ActionRestart) {
		m.config.Seed = time.Now().UnixNano()
		m.run.Restart(m.config)
		m.keys.Release()
	} else {
		m.run.Step(m.frame)
	}

	m.frame.Clear()
	return m, tickCmd(m.config.TickRate, m.gen)
}

// leave ends the game screen. Unsaved results are flushed first.
func (m GameModel) leave(quit bool) (tea.Model, tea.Cmd) {
	m.run.Leave()
	if quit || m.standalone {
		m.quitting = true
	} else {
		m.backToMenu = true
	}
	return m, tea.Quit
}

// saveScreenshot writes the current screen as plain text under
// ~/.arcade/screenshots.
func (m GameModel) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	game := m.run.Game()
	game.Scene().Rasterize(m.screen)
	name := fmt.Sprintf("%s_%s.txt", game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	return RenderScene(m.run.Game().Scene(), m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal until the player quits.
func Run(game registry.Game, svc runner.Services, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, svc, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
