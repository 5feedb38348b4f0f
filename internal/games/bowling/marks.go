package bowling

import (
	"strconv"

	"github.com/vovakirdan/scorekeeper/internal/config"
)

const (
	markStrike = "X"
	markSpare  = "/"
	markMiss   = "-"
)

// Marks translates pin counts into scorecard notation, frame by frame:
//
//	7,2      -> "7","2"
//	7,0      -> "7","-"
//	7,3      -> "7","/"
//	0,10     -> "-","/"
//	10       -> "","X"  (regular frames put the strike in the last box)
//	10,0     -> "X","-" (last frame)
//	10,7,3   -> "X","7","/"
//	10,10,10 -> "X","X","X"
//
// The result has the same shape as frames.
func Marks(frames [][]int, cfg config.BowlingConfig) [][]string {
	out := make([][]string, len(frames))
	for i, throws := range frames {
		regular := i < cfg.Frames-1 || !cfg.Bonuses
		if regular && len(throws) > 0 && throws[0] >= cfg.Pins {
			marks := make([]string, cfg.BallsPerFrame)
			marks[len(marks)-1] = markStrike
			out[i] = marks
			continue
		}
		out[i] = rackMarks(throws, cfg.Pins)
	}
	return out
}

// rackMarks marks throws in order, resetting the rack after every strike
// and spare.
func rackMarks(throws []int, pins int) []string {
	marks := make([]string, 0, len(throws))
	down, thrown := 0, 0
	for _, p := range throws {
		switch {
		case p == 0:
			marks = append(marks, markMiss)
		case thrown > 0 && down+p >= pins:
			marks = append(marks, markSpare)
		case thrown == 0 && p >= pins:
			marks = append(marks, markStrike)
		default:
			marks = append(marks, strconv.Itoa(p))
		}

		down += p
		thrown++
		if down >= pins {
			down, thrown = 0, 0
		}
	}
	return marks
}
