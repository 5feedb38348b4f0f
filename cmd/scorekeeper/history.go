package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/scorekeeper/internal/platform/tui"
	"github.com/vovakirdan/scorekeeper/internal/registry"
	"github.com/vovakirdan/scorekeeper/internal/storage"
)

var (
	flagRecent bool
	flagLimit  int
	flagClear  bool
)

var historyCmd = &cobra.Command{
	Use:   "history <game>",
	Short: "Show stored results for a game",
	Long: `Display the best (or most recent) stored results for the specified game.

In a terminal the interactive scoreboard opens unless --plain is given.

Examples:
  scorekeeper history bowling
  scorekeeper history tennis --recent --plain
  scorekeeper history bowling --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the most recent results instead of the best")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to list")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored results for the game")
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the TUI")
}

func runHistory(cmd *cobra.Command, args []string) {
	gameID := args[0]
	exitOnUnknownGame(gameID)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared all %s results.\n", gameID)
		return
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		cfg := tui.RuntimeConfig{ScreenW: width, ScreenH: height, Player: playerName()}
		if _, err := tui.RunScoreboard(store, cfg, gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	printHistory(store, gameID)
}

// printHistory prints the results table and stats for gameID.
func printHistory(store *storage.Store, gameID string) {
	var (
		results []storage.ResultEntry
		err     error
		heading = "Best Results"
	)
	if flagRecent {
		heading = "Recent Results"
		results, err = store.RecentResults(gameID, flagLimit)
	} else {
		results, err = store.TopScores(gameID, flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		return
	}

	title := gameID
	for _, g := range registry.List() {
		if g.ID == gameID {
			title = g.Title
		}
	}

	fmt.Printf("%s - %s\n", heading, title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'scorekeeper play %s' to record the first one!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-5s  %-10s  %-16s  %s\n", "Rank", "Score", "Player", "Date", "Detail")
	fmt.Printf("  %-4s  %-5s  %-10s  %-16s  %s\n", "----", "-----", "------", "----", "------")

	for i, r := range results {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-5d  %-10s  %-16s  %s\n", i+1, r.Headline, r.Player, dateStr, r.Detail)
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Matches: %d  Best: %d  Average: %.1f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	if w := stats.Wins; w[0]+w[1] > 0 {
		fmt.Printf("Wins: player 0 %d, player 1 %d\n", w[0], w[1])
	}
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
