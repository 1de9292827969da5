// arcade runs Outpost Sigma and the duel in the terminal.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//	arcade duels             - Show recent duel results
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.arcade/scores.db)
//	--log <path>      - Write a debug log (the game owns the terminal)
//	--hiscore <path>  - Survival high-score file (default: ~/.arcade/highscore.json)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/outpost-arcade/internal/core"
	"github.com/vovakirdan/outpost-arcade/internal/launch"

	// Import games to register them
	_ "github.com/vovakirdan/outpost-arcade/internal/games/duel"
	_ "github.com/vovakirdan/outpost-arcade/internal/games/survival"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagHiScore string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Outpost Arcade - twin-stick survival and ship duels in your terminal",
	Long: `Outpost Arcade plays two small action games in the terminal:
Outpost Sigma, a wave-survival twin-stick shooter, and Duel, a one-on-one
ship fight against a CPU pilot.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  duels    - View recent duel results

Examples:
  arcade list
  arcade play survival
  arcade play duel --difficulty hard
  arcade menu
  arcade serve --ssh :2222
  arcade scores survival`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Path to a log file (default: no logging)")
	rootCmd.PersistentFlags().StringVar(&flagHiScore, "hiscore", "~/.arcade/highscore.json", "Path to the survival high-score file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(duelsCmd)
}

// runtimeConfig sizes the simulation to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// setup configures games and opens the log. gameID and the config flags
// are only set by play.
func setup(gameID string) (*log.Logger, io.Closer, error) {
	logger, closer, err := launch.OpenLog(flagLogPath, "arcade")
	if err != nil {
		return nil, nil, err
	}
	err = launch.ConfigureGames(launch.Options{
		GameID:        gameID,
		ConfigPath:    flagConfig,
		Difficulty:    flagDifficulty,
		HighScorePath: flagHiScore,
	})
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	return logger, closer, nil
}
