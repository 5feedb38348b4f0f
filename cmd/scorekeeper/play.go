package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/scorekeeper/internal/platform/console"
	"github.com/vovakirdan/scorekeeper/internal/platform/tui"
	"github.com/vovakirdan/scorekeeper/internal/registry"
	"github.com/vovakirdan/scorekeeper/internal/storage"
)

var flagPlain bool

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Score a match interactively",
	Long: `Start scoring a match of the specified game.

Enter one play at a time: pins knocked down for bowling, or the player
(0 or 1) who won the point for tennis. The scorecard updates after every
play and the result is stored when the match ends.

Controls:
  Enter    - Record play
  Ctrl+T   - Show the scoring tree
  Ctrl+S   - Save the scorecard to ~/.scorekeeper/cards
  R        - New match (after game over)
  Esc      - Leave
  Ctrl+C   - Quit

Without a terminal, or with --plain, plays are read line by line from stdin
and "q" quits.

Examples:
  scorekeeper play bowling
  scorekeeper play bowling --preset kids
  scorekeeper play tennis --config ./club-rules.yaml
  printf '0\n0\n0\n0\n' | scorekeeper play tennis --plain`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Use line-oriented input instead of the TUI")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]
	exitOnUnknownGame(gameID)

	logger := newLogger("scorekeeper")

	game, err := registry.Create(gameID, matchOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - scoring still works
		store = nil
	}

	var runErr error
	if flagPlain || !term.IsTerminal(int(os.Stdin.Fd())) {
		runErr = playPlain(cmd, game, store, logger)
	} else {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		runErr = tui.RunPlay(game, store, tui.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Player:  playerName(),
			Options: matchOptions(),
			Logger:  logger,
		})
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// playPlain runs the game over stdin/stdout and stores the result.
func playPlain(cmd *cobra.Command, game registry.Game, store *storage.Store, logger *log.Logger) error {
	runner := console.NewRunner(os.Stdin, os.Stdout, logger)

	err := runner.Run(cmd.Context(), game)
	switch {
	case errors.Is(err, console.ErrQuit):
		return nil
	case err != nil:
		return err
	}

	printResult(game)

	if store == nil {
		return nil
	}
	id, err := store.SaveGame(game, playerName())
	if err != nil {
		logger.Warn("could not save result", "game", game.ID(), "error", err)
		return nil
	}
	logger.Info("result saved", "game", game.ID(), "match", id)
	fmt.Printf("Saved as %s\n", id)
	return nil
}

// printResult prints the one-line summary of a finished match.
func printResult(game registry.Game) {
	r := game.Result()
	if r.Winner >= 0 {
		fmt.Printf("Player %d wins %s (%s)\n", r.Winner, r.Final, r.Detail)
		return
	}
	fmt.Printf("Final score: %d\n", r.Headline)
}
