package scorecard

import (
	"strings"
	"testing"
)

func TestRenderFields(t *testing.T) {
	tests := []struct {
		name     string
		drawing  string
		bindings []Binding
		want     string
	}{
		{
			name:     "scalar padded to field width",
			drawing:  "|T---|",
			bindings: []Binding{Scalar('T', func() string { return "42" })},
			want:     "|  42|",
		},
		{
			name:     "list by index",
			drawing:  "|M0|M1|",
			bindings: []Binding{List('M', func() []string { return []string{"2", "1"} })},
			want:     "| 2| 1|",
		},
		{
			name:     "grid by row then column",
			drawing:  "|S00|S01|S10|S11|",
			bindings: []Binding{Grid('S', func() [][]string { return [][]string{{"6", "4"}, {"3"}} })},
			want:     "|  6|  4|  3|   |",
		},
		{
			name:     "out of range renders blank",
			drawing:  "[T5-]",
			bindings: []Binding{List('T', func() []string { return []string{"9"} })},
			want:     "[   ]",
		},
		{
			name:     "unbound letters are untouched",
			drawing:  "| X T |",
			bindings: []Binding{Scalar('T', func() string { return "1" })},
			want:     "| X 1 |",
		},
		{
			name:     "shape mismatch renders blank",
			drawing:  "|T|T0|",
			bindings: []Binding{Grid('T', func() [][]string { return [][]string{{"1"}} })},
			want:     "| |  |",
		},
		{
			name:     "long values are not truncated",
			drawing:  "|G0|",
			bindings: []Binding{List('G', func() []string { return []string{"deuce"} })},
			want:     "|deuce|",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.drawing, tt.bindings...)
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}
			if got := c.Render(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderCallsSourcesOncePerRender(t *testing.T) {
	calls := 0
	c, err := New("|F00|F01|F10|F11|", Grid('F', func() [][]string {
		calls++
		return [][]string{{"X"}, {"7", "/"}}
	}))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if got, want := c.Render(), "|  X|   |  7|  /|"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
	if calls != 1 {
		t.Errorf("source called %d times, want 1", calls)
	}

	c.Render()
	if calls != 2 {
		t.Errorf("source called %d times after second render, want 2", calls)
	}
}

func TestRenderReflectsLiveValues(t *testing.T) {
	total := 0
	c, err := New("T0-", List('T', func() []string { return Ints([]int{total}) }))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	first := c.Render()
	total = 300
	if got := c.Render(); got == first || !strings.HasSuffix(got, "300") {
		t.Errorf("Render() = %q, want live value 300", got)
	}
}

func TestNewRejectsBadLabels(t *testing.T) {
	noop := func() string { return "" }

	if _, err := New("a", Scalar('a', noop)); err == nil {
		t.Error("lower case label should be rejected")
	}
	if _, err := New("T", Scalar('T', noop), Scalar('T', noop)); err == nil {
		t.Error("duplicate label should be rejected")
	}
}

func TestIntGrid(t *testing.T) {
	got := IntGrid([][]int{{10}, {7, 3}})
	if len(got) != 2 || got[0][0] != "10" || got[1][1] != "3" {
		t.Errorf("IntGrid() = %v", got)
	}
}
