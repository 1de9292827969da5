package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/outpost-arcade/internal/launch"
	"github.com/vovakirdan/outpost-arcade/internal/platform/runner"
	"github.com/vovakirdan/outpost-arcade/internal/platform/tui"
	"github.com/vovakirdan/outpost-arcade/internal/registry"
)

// localSession names duel results recorded from this machine.
const localSession = "local"

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls (survival):
  WASD            - Move
  Arrows/IJKL     - Aim and fire
  Space/Mouse     - Fire toward facing or pointer
  P               - Pause
  R               - Restart (after game over)
  Esc/Q/Ctrl+C    - Quit

Controls (duel):
  A/D, W          - Turn, thrust
  Space           - Fire
  1/2/Tab         - Select weapon
  F, X            - Point-defense, reload

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play survival
  arcade play survival --difficulty easy
  arcade play duel --difficulty hard
  arcade play survival --config ./my-survival.yaml --log ./arcade.log`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	logger, closer, err := setup(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := launch.OpenStore(flagDBPath, logger)
	if store != nil {
		defer store.Close()
	}

	svc := runner.Services{Store: store, Logger: logger, Session: localSession}
	if err := tui.Run(game, svc, runtimeConfig()); err != nil {
		logger.Error("game exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
