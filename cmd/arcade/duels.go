package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/outpost-arcade/internal/multiplayer"
	"github.com/vovakirdan/outpost-arcade/internal/platform/tui"
	"github.com/vovakirdan/outpost-arcade/internal/storage"
)

var (
	flagDuelSession     string
	flagDuelLimit       int
	flagDuelInteractive bool
)

var duelsCmd = &cobra.Command{
	Use:   "duels",
	Short: "Show recent duel results",
	Long: `List the most recent duels with winner, reason, scores and duration.

Local games are recorded under the session "local"; SSH games under the
user name. An empty --session lists every session.

Examples:
  arcade duels
  arcade duels --session alice
  arcade duels --session "" --limit 50
  arcade duels -i`,
	Run: runDuels,
}

func init() {
	duelsCmd.Flags().StringVar(&flagDuelSession, "session", localSession, "Session to list (empty for all)")
	duelsCmd.Flags().IntVar(&flagDuelLimit, "limit", 20, "Number of duels to show")
	duelsCmd.Flags().BoolVarP(&flagDuelInteractive, "interactive", "i", false, "Open the interactive history")
}

func runDuels(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagDuelInteractive {
		cfg := runtimeConfig()
		if err := tui.RunHistory(store, multiplayer.SessionID(flagDuelSession), cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	duels, err := store.RecentDuels(flagDuelSession, flagDuelLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving duels: %v\n", err)
		os.Exit(1)
	}
	if len(duels) == 0 {
		fmt.Println("No duels recorded yet.")
		fmt.Println()
		fmt.Println("Play 'arcade play duel' to fight the CPU.")
		return
	}

	fmt.Printf("  %-16s  %-8s  %-10s  %-6s  %-6s  %-8s  %s\n", "Date", "Winner", "Reason", "You", "CPU", "Time", "Session")
	fmt.Printf("  %-16s  %-8s  %-10s  %-6s  %-6s  %-8s  %s\n", "----", "------", "------", "---", "---", "----", "-------")
	for _, d := range duels {
		fmt.Printf("  %-16s  %-8s  %-10s  %-6d  %-6d  %-8s  %s\n",
			d.CreatedAt.Format("2006-01-02 15:04"), d.Winner, d.EndReason,
			d.PlayerScore, d.CPUScore, d.Duration.Round(time.Second/10), d.Session)
	}

	tally, err := store.Tally(flagDuelSession)
	if err == nil {
		fmt.Println()
		fmt.Printf("Won %d   Lost %d   Drawn %d\n", tally.Wins, tally.Losses, tally.Draws)
	}
}
