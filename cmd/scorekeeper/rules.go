package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/scorekeeper/internal/config"
	"github.com/vovakirdan/scorekeeper/internal/games/bowling"
	"github.com/vovakirdan/scorekeeper/internal/games/tennis"
)

var flagDefaults bool

var rulesCmd = &cobra.Command{
	Use:   "rules <game>",
	Short: "Print the rules a match would use",
	Long: `Print, as YAML, the rules a new match of the game would be played under
after applying --config and --preset.

With --defaults the built-in rules file is printed instead; it is a good
starting point for ~/.scorekeeper/configs/<game>.yaml.

Examples:
  scorekeeper rules tennis --preset fast4
  scorekeeper rules bowling --defaults > ~/.scorekeeper/configs/bowling.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runRules,
}

func init() {
	rulesCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in rules file")
}

func runRules(_ *cobra.Command, args []string) {
	gameID := args[0]
	exitOnUnknownGame(gameID)

	if flagDefaults {
		os.Stdout.Write(config.GetDefaultYAML(gameID))
		return
	}

	rules, err := loadRules(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := yaml.Marshal(rules)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}

// loadRules loads and validates the rules for gameID the same way the
// game factory does.
func loadRules(gameID string) (any, error) {
	switch gameID {
	case bowling.ID:
		cfg, err := config.LoadBowling(flagConfig)
		if err != nil {
			return nil, err
		}
		if err := config.ApplyBowlingPreset(&cfg, config.Preset(flagPreset)); err != nil {
			return nil, err
		}
		return cfg, cfg.Validate()

	case tennis.ID:
		cfg, err := config.LoadTennis(flagConfig)
		if err != nil {
			return nil, err
		}
		if err := config.ApplyTennisPreset(&cfg, config.Preset(flagPreset)); err != nil {
			return nil, err
		}
		return cfg, cfg.Validate()
	}

	return nil, fmt.Errorf("no rules file for %q", gameID)
}
