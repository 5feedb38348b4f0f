package bowling

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/scorekeeper/internal/config"
)

// drawing lays out one row of frames. Each ball gets a box addressed as
// F<frame><ball>, and each frame a running total addressed as T<frame>:
//
//	---------------------
//	|F00|F01|F10|F11|F12|
//	|    ---|        ---|
//	|  T0-  |    T1-    |
//	---------------------
func drawing(cfg config.BowlingConfig) string {
	var balls, boxes, totals strings.Builder

	for i := 0; i < cfg.Frames; i++ {
		n := cfg.BallsPerFrame
		if i == cfg.Frames-1 && cfg.Bonuses {
			n = cfg.FinalFrameBalls
		}
		frame := strconv.Itoa(i)

		for j := 0; j < n; j++ {
			balls.WriteString("|F" + frame + strconv.Itoa(j))
		}

		inner := 4*n - 1
		boxes.WriteString("|" + strings.Repeat(" ", inner-3) + "---")

		left := (inner - 3) / 2
		totals.WriteString("|" + strings.Repeat(" ", left) + "T" + frame + "-" + strings.Repeat(" ", inner-3-left))
	}
	balls.WriteString("|")
	boxes.WriteString("|")
	totals.WriteString("|")

	border := strings.Repeat("-", balls.Len())
	return strings.Join([]string{border, balls.String(), boxes.String(), totals.String(), border}, "\n") + "\n"
}
