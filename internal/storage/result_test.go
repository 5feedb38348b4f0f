package storage

import (
	"testing"

	"github.com/vovakirdan/scorekeeper/internal/registry"
	"github.com/vovakirdan/scorekeeper/internal/scoring"
)

// finishedGame is a registry.Game stub reporting a fixed result.
type finishedGame struct {
	registry.Game
	result registry.Result
}

func (g finishedGame) ID() string              { return "tennis" }
func (g finishedGame) Result() registry.Result { return g.result }

func TestNewResultEntry(t *testing.T) {
	r := registry.Result{
		Final:    scoring.Score{1, 2},
		Headline: 2,
		Winner:   1,
		Plays:    130,
		Detail:   "6-4 2-6 3-6",
	}

	e := NewResultEntry("tennis", "cat", r)
	if e.GameID != "tennis" || e.Player != "cat" {
		t.Errorf("entry = %+v, want tennis/cat", e)
	}
	if e.Score != [2]int{1, 2} || e.Headline != 2 || e.Winner != 1 || e.Plays != 130 || e.Detail != r.Detail {
		t.Errorf("entry = %+v does not carry result %+v", e, r)
	}
	if e.MatchID != "" {
		t.Errorf("MatchID = %q, want empty until saved", e.MatchID)
	}
}

func TestStoreSaveGame(t *testing.T) {
	store := openTestStore(t)

	g := finishedGame{result: registry.Result{Final: scoring.Score{0, 3}, Headline: 3, Winner: 1, Plays: 90, Detail: "4-6 4-6 4-6"}}
	id, err := store.SaveGame(g, "dan")
	if err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	got, err := store.ResultByMatchID(id)
	if err != nil {
		t.Fatalf("ResultByMatchID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("saved game not found")
	}
	if got.GameID != "tennis" || got.Player != "dan" || got.Winner != 1 || got.Detail != "4-6 4-6 4-6" {
		t.Errorf("stored entry = %+v", got)
	}
}
