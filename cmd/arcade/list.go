package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/outpost-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade with their controls.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen, maxTitleLen := len("ID"), len("Title")
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %-6s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Mode", "Controls")
	fmt.Printf("  %-*s  %-*s  %-6s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "----", "--------")
	for _, g := range games {
		fmt.Printf("  %-*s  %-*s  %-6s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, g.Mode, g.Controls)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
