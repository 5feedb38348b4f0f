// Package config provides YAML-based rule configuration for the scored games
// and named rule presets.
package config

import (
	"errors"
	"fmt"
)

// BowlingConfig contains the rule parameters for ten-pin style bowling.
type BowlingConfig struct {
	Frames          int  `yaml:"frames"`
	Pins            int  `yaml:"pins"`
	BallsPerFrame   int  `yaml:"balls_per_frame"`
	FinalFrameBalls int  `yaml:"final_frame_balls"` // Throws allowed in the last frame after a strike or spare
	Bonuses         bool `yaml:"bonuses"`           // Strike and spare bonuses; off for kids rules
	BonusPlays      int  `yaml:"bonus_plays"`       // Frame plus bonus throws after which a strike/spare stops collecting
}

// TennisConfig contains the rule parameters for a tennis match.
type TennisConfig struct {
	SetsToWin int            `yaml:"sets_to_win"`
	Set       TennisSet      `yaml:"set"`
	Game      TennisGame     `yaml:"game"`
	Tiebreak  TennisTiebreak `yaml:"tiebreak"`
}

// TennisSet defines how many games win a set.
type TennisSet struct {
	Games  int `yaml:"games"`
	Margin int `yaml:"margin"`
}

// TennisGame defines how many points win a game.
type TennisGame struct {
	Points int `yaml:"points"`
	Margin int `yaml:"margin"`
}

// TennisTiebreak defines when a set turns into a tie-break and how it is won.
type TennisTiebreak struct {
	At       int  `yaml:"at"`        // Games each at which the tie-break starts
	Points   int  `yaml:"points"`    // Points needed to win the tie-break
	Margin   int  `yaml:"margin"`    // Lead needed to win the tie-break
	FinalSet bool `yaml:"final_set"` // Whether the deciding set also has a tie-break
}

// maxIndexed bounds rounds that get their own scorecard column, which is
// addressed by a single digit.
const maxIndexed = 10

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate rejects rule parameters under which a game could never finish.
func (c BowlingConfig) Validate() error {
	switch {
	case c.Frames < 1 || c.Frames > maxIndexed:
		return invalid("frames must be between 1 and %d, got %d", maxIndexed, c.Frames)
	case c.Pins < 1:
		return invalid("pins must be positive, got %d", c.Pins)
	case c.BallsPerFrame < 1 || c.BallsPerFrame > maxIndexed:
		return invalid("balls_per_frame must be between 1 and %d, got %d", maxIndexed, c.BallsPerFrame)
	case c.FinalFrameBalls > maxIndexed:
		return invalid("final_frame_balls must be at most %d, got %d", maxIndexed, c.FinalFrameBalls)
	case c.Bonuses && c.FinalFrameBalls < c.BallsPerFrame:
		return invalid("final_frame_balls (%d) is less than balls_per_frame (%d)", c.FinalFrameBalls, c.BallsPerFrame)
	case c.Bonuses && c.BonusPlays < 1:
		return invalid("bonus_plays must be positive, got %d", c.BonusPlays)
	}
	return nil
}

// Validate rejects rule parameters under which a match could never finish.
func (c TennisConfig) Validate() error {
	switch {
	case c.SetsToWin < 1 || c.MaxSets() > maxIndexed:
		return invalid("sets_to_win must be between 1 and %d, got %d", (maxIndexed+1)/2, c.SetsToWin)
	case c.Set.Games < 1 || c.Set.Margin < 1:
		return invalid("set needs positive games and margin, got %d/%d", c.Set.Games, c.Set.Margin)
	case c.Game.Points < 1 || c.Game.Margin < 1:
		return invalid("game needs positive points and margin, got %d/%d", c.Game.Points, c.Game.Margin)
	case c.Tiebreak.At < 0:
		return invalid("tiebreak.at must not be negative, got %d", c.Tiebreak.At)
	case c.Tiebreak.At > 0 && (c.Tiebreak.Points < 1 || c.Tiebreak.Margin < 1):
		return invalid("tiebreak needs positive points and margin, got %d/%d", c.Tiebreak.Points, c.Tiebreak.Margin)
	}
	return nil
}

// MaxSets returns the longest possible match length in sets.
func (c TennisConfig) MaxSets() int {
	return 2*c.SetsToWin - 1
}
