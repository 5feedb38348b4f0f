package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/scorekeeper/internal/scoring"
)

// countGame completes after a fixed number of plays.
type countGame struct {
	root  *scoring.Sequence
	limit int
}

func newCountGame(limit int) *countGame {
	return &countGame{
		root: scoring.Must(scoring.NewSequence("game", scoring.NewLeaf("play"), func(_, plays int, _ scoring.Score) bool {
			return plays == limit
		})),
		limit: limit,
	}
}

func (g *countGame) ID() string     { return "count" }
func (g *countGame) Title() string  { return "Counter" }
func (g *countGame) Prompt() string { return "Enter a value:" }

func (g *countGame) Play(value int) error {
	if g.IsComplete() {
		return ErrGameOver
	}
	g.root.RecordPlay(0, value)
	return nil
}

func (g *countGame) IsComplete() bool   { return g.root.IsComplete() }
func (g *countGame) Root() scoring.Node { return g.root }
func (g *countGame) Scorecard() string  { return g.root.Score().String() }

func (g *countGame) Result() Result {
	return Result{Final: g.root.Score(), Headline: g.root.Score()[0], Winner: -1, Plays: g.root.PlayCount()}
}

func resetRegistry(t *testing.T) {
	t.Helper()
	mu.Lock()
	savedF, savedT := factories, titles
	factories = make(map[string]Factory)
	titles = make(map[string]string)
	mu.Unlock()

	t.Cleanup(func() {
		mu.Lock()
		factories, titles = savedF, savedT
		mu.Unlock()
	})
}

func TestRegisterAndCreate(t *testing.T) {
	resetRegistry(t)

	Register("count", "Counter", func(Options) (Game, error) { return newCountGame(3), nil })

	if !Exists("count") {
		t.Fatal("Exists() = false after Register")
	}

	g, err := Create("count", Options{})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	for _, v := range []int{1, 2, 3} {
		if err := g.Play(v); err != nil {
			t.Fatalf("Play(%d) failed: %v", v, err)
		}
	}
	if !g.IsComplete() {
		t.Error("game should be complete after three plays")
	}
	if err := g.Play(4); !errors.Is(err, ErrGameOver) {
		t.Errorf("Play() after completion = %v, want ErrGameOver", err)
	}
	if r := g.Result(); r.Headline != 6 || r.Plays != 3 {
		t.Errorf("Result() = %+v", r)
	}

	// Each Create returns an independent match.
	g2, _ := Create("count", Options{})
	if g2.IsComplete() || g2.Root() == g.Root() {
		t.Error("Create() should return a fresh match")
	}
}

func TestCreateErrors(t *testing.T) {
	resetRegistry(t)

	if _, err := Create("nope", Options{}); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() unknown = %v, want ErrUnknownGame", err)
	}

	boom := errors.New("bad rules")
	Register("broken", "Broken", func(Options) (Game, error) { return nil, boom })
	if _, err := Create("broken", Options{}); !errors.Is(err, boom) {
		t.Errorf("Create() = %v, want wrapped factory error", err)
	}
}

func TestListSorted(t *testing.T) {
	resetRegistry(t)

	f := func(Options) (Game, error) { return newCountGame(1), nil }
	Register("tennis", "Tennis", f)
	Register("bowling", "Ten-Pin Bowling", f)

	list := List()
	if len(list) != 2 {
		t.Fatalf("List() returned %d games, want 2", len(list))
	}
	if list[0].ID != "bowling" || list[1].ID != "tennis" {
		t.Errorf("List() not sorted: %+v", list)
	}
	if list[0].Title != "Ten-Pin Bowling" {
		t.Errorf("Title = %q", list[0].Title)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	resetRegistry(t)

	f := func(Options) (Game, error) { return newCountGame(1), nil }
	Register("count", "Counter", f)

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("count", "Counter", f)
}
