// scorekeeper keeps score for turn-based games in the terminal.
//
// Usage:
//
//	scorekeeper list                  - List available games and rule presets
//	scorekeeper play <game>           - Score a match interactively
//	scorekeeper score <game> <plays>  - Score a list of plays and print the card
//	scorekeeper menu                  - Pick games from a menu
//	scorekeeper history <game>        - Show stored results for a game
//	scorekeeper rules <game>          - Print the rules a match would use
//	scorekeeper serve                 - Start SSH server for remote scoring
//
// Global flags:
//
//	--db <path>         - Set database path (default: ~/.scorekeeper/results.db)
//	--config <path>     - Load rules from a custom YAML file
//	--preset <name>     - Apply a rule preset (kids, best-of-3, fast4, ...)
//	--log-level <level> - Set log verbosity (default: warn)
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/scorekeeper/internal/config"
	"github.com/vovakirdan/scorekeeper/internal/registry"

	// Import games to register them
	_ "github.com/vovakirdan/scorekeeper/internal/games/bowling"
	_ "github.com/vovakirdan/scorekeeper/internal/games/tennis"
)

var (
	// Global flags
	flagDBPath   string
	flagConfig   string
	flagPreset   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scorekeeper",
	Short: "Scorekeeper - keep score for bowling and tennis in your terminal",
	Long: `Scorekeeper records every play of a match and keeps the scorecard
up to date: strikes and spares in bowling, deuce, sets and tie-breaks in tennis.

Available commands:
  list     - Show all available games
  play     - Score a match interactively
  score    - Score a list of plays in one go
  menu     - Interactive game picker menu
  history  - View stored results
  rules    - Print the rules a match would use
  serve    - Start SSH server for remote scoring

Examples:
  scorekeeper list
  scorekeeper play bowling
  scorekeeper play tennis --preset fast4
  scorekeeper score bowling 10 10 10 10 10 10 10 10 10 10 10 10
  scorekeeper serve --ssh :2222
  scorekeeper history bowling`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.scorekeeper/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Rule preset (see 'scorekeeper list')")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger creates a stderr logger at the level given by --log-level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		level = log.WarnLevel
	}
	logger.SetLevel(level)

	return logger
}

// matchOptions returns the rule selection given on the command line.
func matchOptions() registry.Options {
	return registry.Options{
		ConfigPath: flagConfig,
		Preset:     config.Preset(flagPreset),
	}
}

// playerName returns the name stored with local results.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}

// exitOnUnknownGame prints a hint and exits when gameID is not registered.
func exitOnUnknownGame(gameID string) {
	if registry.Exists(gameID) {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
	fmt.Fprintln(os.Stderr, "Run 'scorekeeper list' to see available games.")
	os.Exit(1)
}
