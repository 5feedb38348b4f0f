package bowling

import (
	"github.com/vovakirdan/scorekeeper/internal/config"
	"github.com/vovakirdan/scorekeeper/internal/scoring"
)

// Template wires the scoring tree for one player's game:
//
//	game (frames)
//	└── bonus (strike and spare bonuses)
//	    └── frame (balls)
//	        └── ball
//
// With bonuses disabled the bonus layer is left out and every frame, the last
// one included, follows the regular completion rule.
func Template(cfg config.BowlingConfig) scoring.Node {
	last := cfg.Frames - 1

	frame := scoring.Must(scoring.NewSequence("frame", scoring.NewLeaf("ball"),
		func(frameNumber, balls int, pins scoring.Score) bool {
			if frameNumber < last || !cfg.Bonuses {
				return balls == cfg.BallsPerFrame || pins[0] >= cfg.Pins
			}
			// The last frame keeps going after a strike or spare.
			return balls == cfg.BallsPerFrame && pins[0] < cfg.Pins || balls == cfg.FinalFrameBalls
		}))

	var perFrame scoring.Node = frame
	if cfg.Bonuses {
		perFrame = scoring.Must(scoring.NewBonus("bonus", frame, func(plays, score int) bool {
			return score < cfg.Pins || plays >= cfg.BonusPlays
		}))
	}

	return scoring.Must(scoring.NewSequence("game", perFrame, func(_, frames int, _ scoring.Score) bool {
		return frames == cfg.Frames
	}))
}
