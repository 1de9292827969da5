// arcade-window plays an arcade game in a window with keyboard, mouse or
// touch twin sticks.
//
// Usage:
//
//	arcade-window [game] [flags]
//
// The game defaults to survival. Flags match the terminal arcade.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/outpost-arcade/internal/core"
	"github.com/vovakirdan/outpost-arcade/internal/launch"
	"github.com/vovakirdan/outpost-arcade/internal/platform/gfx"
	"github.com/vovakirdan/outpost-arcade/internal/platform/runner"
	"github.com/vovakirdan/outpost-arcade/internal/registry"

	// Import games to register them
	_ "github.com/vovakirdan/outpost-arcade/internal/games/duel"
	_ "github.com/vovakirdan/outpost-arcade/internal/games/survival"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogPath    string
	flagHiScore    string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade-window [game]",
	Short: "Play Outpost Arcade in a window",
	Long: `Open a 960x640 window and play a game.

Survival: WASD moves, arrows/IJKL or the mouse aim, Space or the left
button fires. On touch screens the lower-left half is the move stick and
the lower-right half the aim stick.

Duel: A/D turn, W thrusts, Space fires, 1/2/Tab select weapons,
F fires point-defense and X reloads it.

R restarts after game over, P pauses, Esc or Q quits.

Examples:
  arcade-window
  arcade-window duel --difficulty hard
  arcade-window survival --seed 42 --log ./window.log`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.Flags().StringVar(&flagLogPath, "log", "", "Path to a log file (default: no logging)")
	rootCmd.Flags().StringVar(&flagHiScore, "hiscore", "~/.arcade/highscore.json", "Path to the survival high-score file")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func run(_ *cobra.Command, args []string) error {
	gameID := "survival"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q", gameID)
	}

	logger, closer, err := launch.OpenLog(flagLogPath, "arcade-window")
	if err != nil {
		return err
	}
	defer closer.Close()

	err = launch.ConfigureGames(launch.Options{
		GameID:        gameID,
		ConfigPath:    flagConfig,
		Difficulty:    flagDifficulty,
		HighScorePath: flagHiScore,
	})
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := launch.OpenStore(flagDBPath, logger)
	if store != nil {
		defer store.Close()
	}

	cfg := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}
	svc := runner.Services{Store: store, Logger: logger, Session: "local"}
	return gfx.Run(game, svc, cfg)
}
