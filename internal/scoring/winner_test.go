package scoring

import (
	"errors"
	"testing"
)

// tennisGame completes when a player has at least four points and leads by two.
func tennisGame() *Sequence {
	return Must(NewSequence("game", NewLeaf("point"), func(_, _ int, s Score) bool {
		return s.Max() >= 4 && s.Margin() >= 2
	}))
}

func TestWinnerPointScore(t *testing.T) {
	tests := []struct {
		name    string
		winners []int
		want    Score
	}{
		{"no plays", nil, Score{0, 0}},
		{"in progress", []int{0, 0, 1}, Score{0, 0}},
		{"deuce is not finished", []int{0, 1, 0, 1, 0, 1}, Score{0, 0}},
		{"player 0 wins", []int{0, 0, 0, 0}, Score{1, 0}},
		{"player 1 wins", []int{0, 1, 1, 1, 1}, Score{0, 1}},
		{"player 0 wins from deuce", []int{0, 1, 0, 1, 0, 1, 0, 0}, Score{1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Must(NewWinnerPoint("winner", tennisGame()))
			for _, p := range tt.winners {
				w.RecordPlay(p, 1)
			}
			if got := w.Score(); got != tt.want {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWinnerPointIgnoresPlaysAfterCompletion(t *testing.T) {
	game := tennisGame()
	w := Must(NewWinnerPoint("winner", game))

	for range 4 {
		w.RecordPlay(1, 1)
	}
	w.RecordPlay(0, 1)

	if want := (Score{0, 4}); game.Score() != want {
		t.Errorf("downstream Score() = %v, want %v", game.Score(), want)
	}
	if want := (Score{0, 1}); w.Score() != want {
		t.Errorf("Score() = %v, want %v", w.Score(), want)
	}
	if !w.IsComplete() {
		t.Error("winner point should delegate completion")
	}
	if w.PlayCount() != 4 {
		t.Errorf("PlayCount() = %d, want 4", w.PlayCount())
	}
}

func TestWinnerPointTieScoresNothing(t *testing.T) {
	drawn := Must(NewSequence("drawn", NewLeaf("point"), func(_, plays int, _ Score) bool { return plays == 2 }))
	w := Must(NewWinnerPoint("winner", drawn))

	w.RecordPlay(0, 1)
	w.RecordPlay(1, 1)

	if !w.IsComplete() {
		t.Fatal("expected completion")
	}
	if w.Score() != (Score{}) {
		t.Errorf("Score() = %v, want zero on a tie", w.Score())
	}
}

func TestWinnerPointChildren(t *testing.T) {
	game := tennisGame()
	w := Must(NewWinnerPoint("winner", game))

	children := w.Children()
	if len(children) != 1 || children[0] != Node(game) {
		t.Error("Children() should expose the wrapped round")
	}

	c := w.CloneAsChild(2)
	if c.Children()[0].Ordinal() != 2 {
		t.Errorf("cloned downstream ordinal = %d, want 2", c.Children()[0].Ordinal())
	}
}

func TestNewWinnerPointRequiresDownstream(t *testing.T) {
	if _, err := NewWinnerPoint("winner", nil); !errors.Is(err, ErrNilDownstream) {
		t.Errorf("error = %v, want ErrNilDownstream", err)
	}
}
