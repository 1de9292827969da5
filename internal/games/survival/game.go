// Package survival implements Outpost Sigma, a twin-stick wave-survival
// shooter: hold out against growing waves of chasers, collect upgrades
// and beat the stored high score.
package survival

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/outpost-arcade/internal/config"
	"github.com/vovakirdan/outpost-arcade/internal/core"
	"github.com/vovakirdan/outpost-arcade/internal/multiplayer"
	"github.com/vovakirdan/outpost-arcade/internal/registry"
	"github.com/vovakirdan/outpost-arcade/internal/sim"
)

// HighScoreStore persists the best score across runs.
type HighScoreStore interface {
	Load() int
	Save(score int) (int, error)
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	highScores       HighScoreStore
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset; unknown names are ignored.
func SetDifficultyPreset(preset string) {
	if p, ok := config.ParsePreset(preset); ok {
		difficultyPreset = p
	}
}

// SetHighScoreStore sets where high scores are read and written.
// With no store the high score lives only as long as the process.
func SetHighScoreStore(s HighScoreStore) {
	highScores = s
}

// Game implements Outpost Sigma.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.SurvivalConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	world  *sim.World
	player *Player

	tick      uint64
	wave      int
	waveTimer float64
	hi        int

	gameOver bool
	paused   bool
	saved    bool // high score written for this run
	saveErr  error

	events []core.Event
}

// New creates a new Outpost Sigma game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "survival" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Outpost Sigma" }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadSurvival(configPath)
	if err != nil {
		cfg = config.DefaultSurvivalConfig()
	}
	cfg.Difficulty.Apply(difficultyPreset)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.world = sim.NewWorld(sim.Field{W: core.FieldWidth, H: core.FieldHeight})
	pc := cfg.Player
	g.player = &Player{
		body: sim.Body{
			Kind:   sim.KindPlayer,
			Pos:    core.V(core.FieldWidth/2, core.FieldHeight/2),
			W:      pc.Size,
			H:      pc.Size,
			Bounds: sim.BoundsClamp,
		},
		hp:          pc.HP,
		maxHP:       pc.HP,
		speed:       pc.Speed,
		damping:     pc.Damping,
		damage:      pc.Damage,
		bulletSpeed: pc.BulletSpeed,
		gun:         sim.Cooldown{Period: pc.FirePeriod},
		facing:      core.V(0, -1),
	}
	g.world.Spawn(g.player)

	g.tick = 0
	g.wave = 0
	g.waveTimer = cfg.Waves.FirstDelay
	g.gameOver = false
	g.paused = false
	g.saved = false
	g.saveErr = nil
	g.events = nil

	if highScores != nil {
		g.hi = highScores.Load()
	}
}

// Step advances the simulation by one tick.
// Order: intent, movement, collisions, wave spawner, cleanup.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.tick++
	dt := g.runtime.DT()

	g.applyIntent(g.intent(in))
	sim.Step(g.world, dt)
	g.resolveCollisions()
	if !g.gameOver {
		g.tickWaves(dt)
	}
	g.world.Sweep()

	return g.result()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.player.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Finish writes the high score if the run has not done so yet.
// Called by the platform when the player leaves mid-run.
func (g *Game) Finish() {
	g.persistHighScore()
}

// Wave returns the current wave number.
func (g *Game) Wave() int { return g.wave }

// HighScore returns the best score known to this game.
func (g *Game) HighScore() int { return g.hi }

// SaveError returns the last high-score write failure, if any.
func (g *Game) SaveError() error { return g.saveErr }

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) emit(kind core.EventKind, value int, note string) {
	g.events = append(g.events, core.Event{Kind: kind, Value: value, Note: note})
}

// endRun stops the simulation and records the result.
func (g *Game) endRun() {
	if g.gameOver {
		return
	}
	g.gameOver = true
	g.world.Remove(g.player.body.Handle)
	g.emit(core.EventRunEnded, g.player.score, fmt.Sprintf("wave %d", g.wave))
	g.persistHighScore()
}

func (g *Game) persistHighScore() {
	if g.saved || g.player == nil {
		return
	}
	g.saved = true
	score := g.player.score
	if highScores == nil {
		g.hi = max(g.hi, score)
		return
	}
	hi, err := highScores.Save(score)
	if err != nil {
		g.saveErr = err
		g.hi = max(g.hi, score)
		return
	}
	if hi > g.hi {
		g.emit(core.EventHighScore, hi, "")
	}
	g.hi = hi
}

func init() {
	registry.Register(registry.GameInfo{
		ID:       "survival",
		Title:    "Outpost Sigma",
		Mode:     multiplayer.MatchModeSolo,
		Controls: "WASD move, arrows/IJKL aim+fire, mouse aim, P pause, R restart",
	}, func() registry.Game { return New() })
}
