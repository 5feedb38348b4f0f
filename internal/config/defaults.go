package config

import (
	_ "embed"
)

//go:embed defaults/bowling.yaml
var defaultBowlingYAML []byte

//go:embed defaults/tennis.yaml
var defaultTennisYAML []byte

// DefaultBowlingConfig returns standard ten-pin rules.
func DefaultBowlingConfig() BowlingConfig {
	return BowlingConfig{
		Frames:          10,
		Pins:            10,
		BallsPerFrame:   2,
		FinalFrameBalls: 3,
		Bonuses:         true,
		BonusPlays:      3,
	}
}

// DefaultTennisConfig returns best-of-five rules with tie-breaks at 6-6
// in every set but the last.
func DefaultTennisConfig() TennisConfig {
	return TennisConfig{
		SetsToWin: 3,
		Set: TennisSet{
			Games:  6,
			Margin: 2,
		},
		Game: TennisGame{
			Points: 4,
			Margin: 2,
		},
		Tiebreak: TennisTiebreak{
			At:       6,
			Points:   7,
			Margin:   1,
			FinalSet: false,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "bowling":
		return defaultBowlingYAML
	case "tennis":
		return defaultTennisYAML
	default:
		return nil
	}
}
