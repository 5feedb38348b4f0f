package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/scorekeeper/internal/registry"
	"github.com/vovakirdan/scorekeeper/internal/scoring"
	"github.com/vovakirdan/scorekeeper/internal/storage"
)

var (
	flagTree bool
	flagSave bool
)

var scoreCmd = &cobra.Command{
	Use:   "score <game> <play>...",
	Short: "Score a list of plays and print the scorecard",
	Long: `Feed every play to a new match and print the resulting scorecard.

Plays after the end of the match are rejected. With --tree the scoring
tree is dumped as well, which is handy when checking custom rules.

Examples:
  scorekeeper score bowling 10 7 3 9 0 10 0 8 8 2 0 6 10 10 10 8 1
  scorekeeper score tennis 0 0 1 0 0 --tree
  scorekeeper score bowling 10 10 10 10 10 10 10 10 10 10 10 10 --save`,
	Args: cobra.MinimumNArgs(1),
	Run:  runScore,
}

func init() {
	scoreCmd.Flags().BoolVar(&flagTree, "tree", false, "Print the scoring tree after the scorecard")
	scoreCmd.Flags().BoolVar(&flagSave, "save", false, "Store the result if the match is complete")
}

func runScore(cmd *cobra.Command, args []string) {
	gameID := args[0]
	exitOnUnknownGame(gameID)

	logger := newLogger("scorekeeper")

	game, err := registry.Create(gameID, matchOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	for i, arg := range args[1:] {
		value, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: play %d: not a number: %q\n", i+1, arg)
			os.Exit(1)
		}
		if err := game.Play(value); err != nil {
			fmt.Fprintf(os.Stderr, "Error: play %d (%d): %v\n", i+1, value, err)
			os.Exit(1)
		}
		logger.Debug("play", "game", gameID, "value", value)
	}

	fmt.Println(game.Scorecard())

	if flagTree {
		fmt.Println()
		if err := scoring.Describe(os.Stdout, game.Root()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println()
	if !game.IsComplete() {
		fmt.Printf("In progress after %d plays\n", len(args)-1)
		return
	}
	printResult(game)

	if !flagSave {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}

	id, err := store.SaveGame(game, playerName())
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved as %s\n", id)
}
