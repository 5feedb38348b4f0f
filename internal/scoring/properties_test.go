package scoring

import (
	"math/rand/v2"
	"strings"
	"testing"
)

// matchTemplate wires a small two-level tennis-like structure: a match of sets
// that switch into a tie-break at 2-2, each set made of games.
func matchTemplate() Node {
	game := Must(NewSequence("game", NewLeaf("point"), func(_, _ int, s Score) bool {
		return s.Max() >= 4 && s.Margin() >= 2
	}))
	set := Must(NewSequence("set", Must(NewWinnerPoint("game winner", game)), func(_, _ int, s Score) bool {
		return s.Max() >= 3 && s.Margin() >= 2
	}))
	tiebreak := Must(NewWinnerPoint("tiebreak winner", Must(NewSequence("tiebreak", NewLeaf("point"), func(_, _ int, s Score) bool {
		return s.Max() >= 5
	}))))
	branch := Must(NewBranch("switch", set, tiebreak, func(_, _ int, s Score) bool {
		return s == Score{2, 2}
	}))
	return Must(NewSequence("match", Must(NewWinnerPoint("set winner", branch)), func(_, _ int, s Score) bool {
		return s.Max() == 2
	}))
}

// walk calls fn for every node reachable through Children.
func walk(n Node, fn func(Node)) {
	fn(n)
	for _, c := range n.Children() {
		walk(c, fn)
	}
}

func TestTreeInvariantsUnderRandomPlay(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed*31))
		root := matchTemplate().CloneAsChild(0)

		completed := map[Node]bool{}
		counts := map[Node]int{}

		for step := 0; step < 2000 && !root.IsComplete(); step++ {
			root.RecordPlay(rng.IntN(2), 1)

			walk(root, func(n Node) {
				if completed[n] && !n.IsComplete() {
					t.Fatalf("seed %d: node %q became incomplete", seed, n.Name())
				}
				if n.IsComplete() {
					completed[n] = true
				}
				if s, ok := n.(*Sequence); ok {
					if s.PlayCount() != len(s.Children()) {
						t.Fatalf("seed %d: %q PlayCount %d != children %d", seed, s.Name(), s.PlayCount(), len(s.Children()))
					}
					if s.PlayCount() < counts[n] {
						t.Fatalf("seed %d: %q PlayCount decreased", seed, s.Name())
					}
					counts[n] = s.PlayCount()
				}
				if n.Score() != n.Score() {
					t.Fatalf("seed %d: %q Score is not stable", seed, n.Name())
				}
			})
		}

		if !root.IsComplete() {
			t.Fatalf("seed %d: match did not finish", seed)
		}
		if root.Score().Max() != 2 {
			t.Errorf("seed %d: final match score %v", seed, root.Score())
		}

		// A finished tree no longer changes.
		before := DescribeString(root)
		for range 10 {
			root.RecordPlay(rng.IntN(2), 1)
		}
		if after := DescribeString(root); after != before {
			t.Errorf("seed %d: finished tree changed after extra plays", seed)
		}
	}
}

func TestEmptyTreeQueries(t *testing.T) {
	root := matchTemplate().CloneAsChild(0)

	if root.IsComplete() {
		t.Error("empty tree should not be complete")
	}
	if root.Score() != (Score{}) {
		t.Errorf("Score() = %v, want zero", root.Score())
	}
	if root.PlayCount() != 0 {
		t.Errorf("PlayCount() = %d, want 0", root.PlayCount())
	}
	if len(root.Children()) != 0 {
		t.Errorf("len(Children()) = %d, want 0", len(root.Children()))
	}
}

func TestDescribe(t *testing.T) {
	root := matchTemplate().CloneAsChild(0)
	root.RecordPlay(0, 1)

	out := DescribeString(root)
	for _, want := range []string{
		"match #0 plays=1 score=0-0 complete=false",
		"  set winner #0",
		"    switch #0",
		"switched=false",
		"            point #0 plays=1 score=1-0 complete=true",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Describe output missing %q:\n%s", want, out)
		}
	}
}
