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

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick games to score from a menu",
	Long: `Start scorekeeper in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After leaving a match, you return to the menu to start another.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Result history
  Q            - Quit

Examples:
  scorekeeper menu
  scorekeeper menu --preset best-of-3
  scorekeeper menu --db ./results.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger := newLogger("scorekeeper")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		store = nil
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := tui.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Player:  playerName(),
		Options: matchOptions(),
		Logger:  logger,
	}

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsHistory {
			goBack, sbErr := tui.RunScoreboard(store, cfg, "")
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		game, err := registry.Create(menuResult.GameID, cfg.Options)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			break
		}

		if err := tui.RunPlay(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
