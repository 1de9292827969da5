// Package duel implements a single space duel: the player's ship against one
// CPU ship on a wrapping field, with cannon, homing missiles, a shared heat
// budget and limited point-defense.
package duel

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/outpost-arcade/internal/config"
	"github.com/vovakirdan/outpost-arcade/internal/core"
	"github.com/vovakirdan/outpost-arcade/internal/multiplayer"
	"github.com/vovakirdan/outpost-arcade/internal/registry"
	"github.com/vovakirdan/outpost-arcade/internal/sim"
)

// Score rewards.
const (
	hitScore = 10  // per point of damage dealt
	winBonus = 100 // for destroying the opponent
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
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

// Game implements the duel.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.DuelConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	world     *sim.World
	player    *Ship
	cpu       *Ship
	autopilot bool // CPU ship flies itself

	tick     uint64
	gameOver bool
	paused   bool
	outcome  multiplayer.Outcome

	events []core.Event
}

// New creates a new duel instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "duel" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Duel" }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadDuel(configPath)
	if err != nil {
		cfg = config.DefaultDuelConfig()
	}
	cfg.Difficulty.Apply(difficultyPreset)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.world = sim.NewWorld(sim.Field{W: core.FieldWidth, H: core.FieldHeight})
	jitter := (g.rng.Float64()*2 - 1) * core.FieldHeight / 8
	g.player = g.newShip(multiplayer.SidePlayer, sim.KindPlayer,
		core.V(core.FieldWidth*0.25, core.FieldHeight/2), 0)
	g.cpu = g.newShip(multiplayer.SideCPU, sim.KindEnemy,
		core.V(core.FieldWidth*0.75, core.FieldHeight/2+jitter), math.Pi)
	g.world.Spawn(g.player)
	g.world.Spawn(g.cpu)
	g.autopilot = true

	g.tick = 0
	g.gameOver = false
	g.paused = false
	g.outcome = multiplayer.Outcome{}
	g.events = nil
}

func (g *Game) newShip(side multiplayer.Side, kind sim.Kind, pos core.Vec2, angle float64) *Ship {
	c := g.cfg
	return &Ship{
		body: sim.Body{
			Kind:   kind,
			Pos:    pos,
			W:      c.Ship.Size,
			H:      c.Ship.Size,
			Bounds: sim.BoundsWrap,
		},
		side:       side,
		hp:         c.Ship.HP,
		maxHP:      c.Ship.HP,
		angle:      angle,
		handling:   c.Ship,
		thrustHeat: c.Heat.ThrustHeat,
		heat:       sim.Heat{Max: c.Heat.Max, Decay: c.Heat.Decay},
		guns: [weaponCount]sim.Cooldown{
			WeaponCannon:  {Period: c.Cannon.Period},
			WeaponMissile: {Period: c.Missile.Period},
		},
		pd:      sim.Cooldown{Period: c.PointDefense.Period},
		pdShots: c.PointDefense.Shots,
	}
}

// Step advances the simulation by one tick.
// Order: commands, weapons, movement, collisions, outcome, cleanup.
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

	g.player.cmd = g.playerCommand(in)
	if g.autopilot {
		g.cpu.cmd = g.pilot()
	}
	g.act(g.player)
	g.act(g.cpu)

	sim.Step(g.world, dt)
	g.exhaust()
	g.resolveCollisions()
	g.checkOutcome()
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

// Outcome reports the result once a ship has been destroyed.
func (g *Game) Outcome() (multiplayer.Outcome, bool) {
	return g.outcome, g.gameOver
}

// Ticks returns the number of simulated ticks in this match.
func (g *Game) Ticks() int { return int(g.tick) }

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) emit(kind core.EventKind, value int, note string) {
	g.events = append(g.events, core.Event{Kind: kind, Value: value, Note: note})
}

// checkOutcome ends the match when either ship is gone.
func (g *Game) checkOutcome() {
	playerDead := !g.world.Alive(g.player.body.Handle)
	cpuDead := !g.world.Alive(g.cpu.body.Handle)
	if !playerDead && !cpuDead {
		return
	}

	o := multiplayer.Outcome{Reason: multiplayer.EndDestroyed}
	switch {
	case playerDead && cpuDead:
		o.Winner = multiplayer.SideNone
		o.Reason = multiplayer.EndMutual
	case playerDead:
		o.Winner = multiplayer.SideCPU
		g.cpu.score += winBonus
	default:
		o.Winner = multiplayer.SidePlayer
		g.player.score += winBonus
	}
	o.PlayerScore = g.player.score
	o.CPUScore = g.cpu.score
	o.Ticks = int(g.tick)

	g.outcome = o
	g.gameOver = true
	g.emit(core.EventDuelEnded, g.player.score, o.Winner.String())
}

func init() {
	registry.Register(registry.GameInfo{
		ID:       "duel",
		Title:    "Duel",
		Mode:     multiplayer.MatchModeVsCPU,
		Controls: "A/D turn, W thrust, space fire, 1/2/tab weapon, F point-defense, X reload",
	}, func() registry.Game { return New() })
}
