package tennis

import (
	"testing"

	"github.com/vovakirdan/scorekeeper/internal/config"
	"github.com/vovakirdan/scorekeeper/internal/scoring"
)

func TestCall(t *testing.T) {
	standard := config.DefaultTennisConfig().Game
	noAd := config.TennisGame{Points: 4, Margin: 1}
	short := config.TennisGame{Points: 3, Margin: 2}
	single := config.TennisGame{Points: 1, Margin: 1}
	two := config.TennisGame{Points: 2, Margin: 2}

	tests := []struct {
		name   string
		points scoring.Score
		rules  config.TennisGame
		want   [2]string
	}{
		{"love all", scoring.Score{0, 0}, standard, [2]string{"love", "love"}},
		{"fifteen love", scoring.Score{1, 0}, standard, [2]string{"15", "love"}},
		{"thirty forty", scoring.Score{2, 3}, standard, [2]string{"30", "40"}},
		{"game", scoring.Score{4, 0}, standard, [2]string{"game", ""}},
		{"game to receiver", scoring.Score{2, 4}, standard, [2]string{"", "game"}},
		{"deuce", scoring.Score{3, 3}, standard, [2]string{"deuce", ""}},
		{"second deuce", scoring.Score{5, 5}, standard, [2]string{"deuce", ""}},
		{"advantage", scoring.Score{4, 3}, standard, [2]string{"adv", ""}},
		{"advantage receiver", scoring.Score{5, 6}, standard, [2]string{"", "adv"}},
		{"no-ad game", scoring.Score{4, 3}, noAd, [2]string{"game", ""}},
		{"short game numbers", scoring.Score{1, 0}, short, [2]string{"1", "0"}},
		{"short game deuce", scoring.Score{2, 2}, short, [2]string{"deuce", ""}},
		{"one point game start", scoring.Score{0, 0}, single, [2]string{"0", "0"}},
		{"one point game won", scoring.Score{0, 1}, single, [2]string{"", "game"}},
		{"two point game level", scoring.Score{1, 1}, two, [2]string{"1", "1"}},
		{"two point game lead", scoring.Score{2, 1}, two, [2]string{"2", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Call(tt.points, tt.rules); got != tt.want {
				t.Errorf("Call(%v) = %q, want %q", tt.points, got, tt.want)
			}
		})
	}
}
