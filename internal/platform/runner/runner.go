// Package runner drives one game for a platform: it steps the simulation,
// counts played ticks, logs game events and stores scores and duel results.
// The terminal and window platforms only translate input and draw.
package runner

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/outpost-arcade/internal/core"
	"github.com/vovakirdan/outpost-arcade/internal/multiplayer"
	"github.com/vovakirdan/outpost-arcade/internal/registry"
	"github.com/vovakirdan/outpost-arcade/internal/storage"
)

// Services are the collaborators a run reports to. Every field may be nil.
type Services struct {
	Store   *storage.Store
	Logger  *log.Logger
	Session multiplayer.SessionID
}

// Log returns the logger, discarding output when none is set.
func (s Services) Log() *log.Logger {
	if s.Logger == nil {
		return log.New(io.Discard)
	}
	return s.Logger
}

// Runner owns a game between resets.
type Runner struct {
	game  registry.Game
	info  registry.GameInfo
	svc   Services
	log   *log.Logger
	match *multiplayer.Match

	tickRate int
	state    core.GameState
	ticks    int
	recorded bool // results for the current run are stored
}

// New resets game with cfg and starts tracking its first run.
func New(game registry.Game, svc Services, cfg core.RuntimeConfig) *Runner {
	info, ok := registry.Info(game.ID())
	if !ok {
		info = registry.GameInfo{ID: game.ID(), Title: game.Title()}
	}
	r := &Runner{
		game: game,
		info: info,
		svc:  svc,
		log:  svc.Log().With("game", game.ID()),
	}
	r.Restart(cfg)
	return r
}

// Game returns the running game.
func (r *Runner) Game() registry.Game { return r.game }

// Info returns the registry metadata of the running game.
func (r *Runner) Info() registry.GameInfo { return r.info }

// State returns the state after the last step.
func (r *Runner) State() core.GameState { return r.state }

// Ticks returns the number of unpaused ticks played in this run.
func (r *Runner) Ticks() int { return r.ticks }

// Recorded reports whether this run's results are stored.
func (r *Runner) Recorded() bool { return r.recorded }

// Restart resets the game with cfg and begins a new match.
func (r *Runner) Restart(cfg core.RuntimeConfig) {
	r.tickRate = cfg.TickRate
	r.game.Reset(cfg)
	r.state = r.game.State()
	r.match = multiplayer.NewMatch(r.game.ID(), r.info.Mode, r.svc.Session)
	r.ticks = 0
	r.recorded = false
}

// Step advances the game by one tick and stores results once the run ends.
func (r *Runner) Step(in core.InputFrame) core.StepResult {
	res := r.game.Step(in)
	if !r.state.GameOver && !res.State.Paused {
		r.ticks++
	}
	r.state = res.State
	r.logEvents(res.Events)

	if r.state.GameOver && !r.recorded {
		r.record()
	}
	return res
}

// Leave flushes what a player leaving mid-run is owed: any pending high
// score and an abandoned duel.
func (r *Runner) Leave() {
	if f, ok := r.game.(registry.Finisher); ok {
		f.Finish()
	}
	if r.recorded || r.ticks == 0 {
		return
	}
	r.recorded = true
	if _, ok := r.game.(multiplayer.Decider); ok {
		r.saveResult(r.match.Abandon(r.ticks, r.tickRate))
	}
}

func (r *Runner) record() {
	r.recorded = true
	if r.state.Score > 0 && r.svc.Store != nil {
		if _, err := r.svc.Store.SaveScore(r.game.ID(), r.state.Score); err != nil {
			r.log.Warn("could not save score", "error", err)
		}
	}
	if d, ok := r.game.(multiplayer.Decider); ok {
		if o, done := d.Outcome(); done {
			r.saveResult(r.match.Finish(o, r.tickRate))
		}
	}
}

func (r *Runner) saveResult(res multiplayer.Result) {
	r.log.Info("match finished", "match", res.MatchID, "winner", res.Winner, "reason", res.Reason, "duration", res.Duration)
	if r.svc.Store == nil {
		return
	}
	if err := r.svc.Store.SaveMatchResult(res); err != nil {
		r.log.Warn("could not save match result", "error", err)
	}
}

func (r *Runner) logEvents(events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventWaveStarted:
			r.log.Info("wave started", "wave", ev.Value)
		case core.EventRunEnded:
			r.log.Info("run ended", "score", ev.Value, "detail", ev.Note)
		case core.EventHighScore:
			r.log.Info("new high score", "score", ev.Value)
		case core.EventPickup:
			r.log.Debug("pickup", "kind", ev.Note)
		case core.EventDuelEnded:
			r.log.Info("duel ended", "winner", ev.Note, "score", ev.Value)
		}
	}
}
