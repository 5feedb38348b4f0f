package tennis

import (
	"github.com/vovakirdan/scorekeeper/internal/config"
	"github.com/vovakirdan/scorekeeper/internal/scoring"
)

// Template wires the scoring tree for a match:
//
//	match (sets)
//	└── set winner
//	    └── switch
//	        ├── set (games)
//	        │   └── game winner
//	        │       └── game (points)
//	        │           └── point
//	        └── tiebreak winner
//	            └── tiebreak (points)
//	                └── point
//
// The switch moves a set into its tie-break when both players reach
// cfg.Tiebreak.At games. With tie-breaks disabled the switch is left out.
func Template(cfg config.TennisConfig) scoring.Node {
	game := scoring.Must(scoring.NewSequence("game", scoring.NewLeaf("point"),
		func(_, _ int, s scoring.Score) bool {
			return s.Max() >= cfg.Game.Points && s.Margin() >= cfg.Game.Margin
		}))

	set := scoring.Must(scoring.NewSequence("set", scoring.Must(scoring.NewWinnerPoint("game winner", game)),
		func(_, _ int, s scoring.Score) bool {
			return s.Max() >= cfg.Set.Games && s.Margin() >= cfg.Set.Margin
		}))

	var perSet scoring.Node = set
	if cfg.Tiebreak.At > 0 {
		tiebreak := scoring.Must(scoring.NewSequence("tiebreak", scoring.NewLeaf("point"),
			func(_, _ int, s scoring.Score) bool {
				return s.Max() >= cfg.Tiebreak.Points && s.Margin() >= cfg.Tiebreak.Margin
			}))

		finalSet := cfg.MaxSets() - 1
		perSet = scoring.Must(scoring.NewBranch("switch", set, scoring.Must(scoring.NewWinnerPoint("tiebreak winner", tiebreak)),
			func(setNumber, _ int, s scoring.Score) bool {
				if setNumber == finalSet && !cfg.Tiebreak.FinalSet {
					return false
				}
				return s[0] == cfg.Tiebreak.At && s[1] == cfg.Tiebreak.At
			}))
	}

	return scoring.Must(scoring.NewSequence("match", scoring.Must(scoring.NewWinnerPoint("set winner", perSet)),
		func(_, _ int, s scoring.Score) bool {
			return s.Max() >= cfg.SetsToWin
		}))
}
