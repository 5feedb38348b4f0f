package tennis

import (
	"strconv"

	"github.com/vovakirdan/scorekeeper/internal/config"
	"github.com/vovakirdan/scorekeeper/internal/scoring"
)

var pointNames = [...]string{"love", "15", "30", "40"}

// Call translates a game's raw point score into the umpire's call for each
// player:
//
//	1,0 -> "15","love"
//	3,3 -> "deuce",""
//	4,3 -> "adv",""
//	3,4 -> "","adv"
//	4,2 -> "game",""
//
// Games not played to four points use plain numbers instead of love/15/30/40.
// Games shorter than three points have no deuce.
func Call(points scoring.Score, rules config.TennisGame) [2]string {
	var call [2]string
	for p := range scoring.Players {
		o := 1 - p
		if points[p] >= rules.Points && points[p]-points[o] >= rules.Margin {
			call[p] = "game"
			return call
		}
	}

	if rules.Points >= 3 && points[0] >= rules.Points-1 && points[1] >= rules.Points-1 {
		switch {
		case points[0] > points[1]:
			call[0] = "adv"
		case points[1] > points[0]:
			call[1] = "adv"
		default:
			call[0] = "deuce"
		}
		return call
	}

	for p := range scoring.Players {
		call[p] = pointName(points[p], rules.Points)
	}
	return call
}

func pointName(n, gamePoints int) string {
	if gamePoints == len(pointNames) && n < len(pointNames) {
		return pointNames[n]
	}
	return strconv.Itoa(n)
}
