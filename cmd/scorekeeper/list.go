package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/scorekeeper/internal/config"
	"github.com/vovakirdan/scorekeeper/internal/games/bowling"
	"github.com/vovakirdan/scorekeeper/internal/games/tennis"
	"github.com/vovakirdan/scorekeeper/internal/registry"
)

// gamePresets lists the rule presets each game accepts.
var gamePresets = map[string][]config.Preset{
	bowling.ID: config.BowlingPresets,
	tennis.ID:  config.TennisPresets,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games that can be scored, with their rule presets.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID" and "Title" headers
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Presets")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-------")

	for _, g := range games {
		presets := make([]string, len(gamePresets[g.ID]))
		for i, p := range gamePresets[g.ID] {
			presets[i] = string(p)
		}
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, strings.Join(presets, ", "))
	}

	fmt.Println()
	fmt.Println("Run 'scorekeeper play <id>' to score a match.")
}
