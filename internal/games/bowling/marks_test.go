package bowling

import (
	"testing"

	"github.com/vovakirdan/scorekeeper/internal/config"
)

func TestMarks(t *testing.T) {
	cfg := config.DefaultBowlingConfig()

	tests := []struct {
		name  string
		frame int
		pins  []int
		want  []string
	}{
		{"open", 0, []int{7, 2}, []string{"7", "2"}},
		{"miss", 0, []int{7, 0}, []string{"7", "-"}},
		{"gutter then pins", 0, []int{0, 3}, []string{"-", "3"}},
		{"spare", 0, []int{7, 3}, []string{"7", "/"}},
		{"spare from gutter", 0, []int{0, 10}, []string{"-", "/"}},
		{"strike", 3, []int{10}, []string{"", "X"}},
		{"last frame strike then miss", 9, []int{10, 0}, []string{"X", "-"}},
		{"last frame spare", 9, []int{7, 3, 2}, []string{"7", "/", "2"}},
		{"last frame strike then spare", 9, []int{10, 7, 3}, []string{"X", "7", "/"}},
		{"last frame spare then strike", 9, []int{0, 10, 10}, []string{"-", "/", "X"}},
		{"last frame three strikes", 9, []int{10, 10, 10}, []string{"X", "X", "X"}},
		{"last frame spare then spare pins", 9, []int{5, 5, 5}, []string{"5", "/", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frames := make([][]int, tt.frame+1)
			frames[tt.frame] = tt.pins

			got := Marks(frames, cfg)[tt.frame]
			if len(got) != len(tt.want) {
				t.Fatalf("Marks() = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Marks() = %q, want %q", got, tt.want)
					break
				}
			}
		})
	}
}

func TestScorecardLayout(t *testing.T) {
	cfg := config.DefaultBowlingConfig()
	cfg.Frames = 2

	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	empty := "---------------------\n" +
		"|   |   |   |   |   |\n" +
		"|    ---|        ---|\n" +
		"|       |           |\n" +
		"---------------------\n"
	if got := g.Scorecard(); got != empty {
		t.Errorf("empty Scorecard() =\n%s\nwant\n%s", got, empty)
	}

	for _, p := range []int{10, 7, 3, 5} {
		if err := g.Play(p); err != nil {
			t.Fatalf("Play(%d) failed: %v", p, err)
		}
	}

	want := "---------------------\n" +
		"|   |  X|  7|  /|  5|\n" +
		"|    ---|        ---|\n" +
		"|   20  |     35    |\n" +
		"---------------------\n"
	if got := g.Scorecard(); got != want {
		t.Errorf("Scorecard() =\n%s\nwant\n%s", got, want)
	}
}
