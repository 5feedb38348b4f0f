package config

import "fmt"

// Preset represents a named rule variant applied on top of a loaded config.
type Preset string

const (
	PresetStandard  Preset = "standard"
	PresetKids      Preset = "kids"       // Bowling: five frames, three balls, no bonuses
	PresetBestOf3   Preset = "best-of-3"  // Tennis: two sets to win, tie-break in every set
	PresetGrandSlam Preset = "grand-slam" // Tennis: three sets to win, no final set tie-break
	PresetFast4     Preset = "fast4"      // Tennis: short sets, no-ad games
)

// BowlingPresets lists the presets ApplyBowlingPreset understands.
var BowlingPresets = []Preset{PresetStandard, PresetKids}

// TennisPresets lists the presets ApplyTennisPreset understands.
var TennisPresets = []Preset{PresetStandard, PresetBestOf3, PresetGrandSlam, PresetFast4}

// ApplyBowlingPreset modifies the config based on a rule preset.
// PresetStandard and the empty preset leave the config untouched.
func ApplyBowlingPreset(cfg *BowlingConfig, preset Preset) error {
	switch preset {
	case "", PresetStandard:
	case PresetKids:
		cfg.Frames = 5
		cfg.BallsPerFrame = 3
		cfg.FinalFrameBalls = 3
		cfg.Bonuses = false
	default:
		return fmt.Errorf("config: unknown bowling preset %q", preset)
	}
	return nil
}

// ApplyTennisPreset modifies the config based on a rule preset.
// PresetStandard and the empty preset leave the config untouched.
func ApplyTennisPreset(cfg *TennisConfig, preset Preset) error {
	switch preset {
	case "", PresetStandard:
	case PresetBestOf3:
		cfg.SetsToWin = 2
		cfg.Tiebreak.FinalSet = true
	case PresetGrandSlam:
		cfg.SetsToWin = 3
		cfg.Tiebreak.FinalSet = false
	case PresetFast4:
		cfg.SetsToWin = 2
		cfg.Set = TennisSet{Games: 4, Margin: 2}
		cfg.Game = TennisGame{Points: 4, Margin: 1}
		cfg.Tiebreak = TennisTiebreak{At: 3, Points: 5, Margin: 1, FinalSet: true}
	default:
		return fmt.Errorf("config: unknown tennis preset %q", preset)
	}
	return nil
}
