package tennis

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/scorekeeper/internal/config"
	"github.com/vovakirdan/scorekeeper/internal/scoring"
)

// drawing lays out one row per player: sets won, games in each set, and the
// current game call.
//
//	----------------------------
//	| M0  |S00|S10|S20|  G0--- |
//	| M1  |S01|S11|S21|  G1--- |
//	----------------------------
func drawing(cfg config.TennisConfig) string {
	rows := make([]string, scoring.Players)
	for p := range rows {
		var b strings.Builder
		player := strconv.Itoa(p)
		b.WriteString("| M" + player + "  ")
		for s := 0; s < cfg.MaxSets(); s++ {
			b.WriteString("|S" + strconv.Itoa(s) + player)
		}
		b.WriteString("|  G" + player + "--- |")
		rows[p] = b.String()
	}

	border := strings.Repeat("-", len(rows[0]))
	return border + "\n" + strings.Join(rows, "\n") + "\n" + border + "\n"
}
