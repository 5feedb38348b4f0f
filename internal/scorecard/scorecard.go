// Package scorecard fills an ASCII drawing of a scoreboard with live values.
//
// A drawing marks fields with a capital letter, optionally followed by one or
// two index digits, optionally followed by dashes that widen the field:
//
//	| M0  |S00|S10|  G0--- |
//
// Each letter is bound to a value source. Indexed fields look up an element of
// a list (one digit) or a grid (row digit, then column digit). Values are
// right-aligned to the field width; fields whose index is out of range render
// blank, and letters without a binding are left as they are.
package scorecard

import (
	"fmt"
	"regexp"
	"strings"
)

var fieldPattern = regexp.MustCompile(`(([A-Z][0-9][0-9])|([A-Z][0-9])|([A-Z]))-*`)

// Binding connects a field letter to a value source.
type Binding struct {
	label  rune
	scalar func() string
	list   func() []string
	grid   func() [][]string
}

// Scalar binds a single value to fields such as "T" or "T---".
func Scalar(label rune, f func() string) Binding {
	return Binding{label: label, scalar: f}
}

// List binds a one-dimensional value source to fields such as "T3" or "T3--".
func List(label rune, f func() []string) Binding {
	return Binding{label: label, list: f}
}

// Grid binds a two-dimensional value source to fields such as "F91".
func Grid(label rune, f func() [][]string) Binding {
	return Binding{label: label, grid: f}
}

// Label returns the field letter this binding fills.
func (b Binding) Label() rune { return b.label }

// Card is a drawing plus the bindings that fill it.
type Card struct {
	drawing  string
	bindings map[rune]Binding
}

// New creates a card. Labels must be capital ASCII letters and unique.
func New(drawing string, bindings ...Binding) (*Card, error) {
	c := &Card{
		drawing:  drawing,
		bindings: make(map[rune]Binding, len(bindings)),
	}
	for _, b := range bindings {
		if b.label < 'A' || b.label > 'Z' {
			return nil, fmt.Errorf("scorecard: label %q is not a capital letter", b.label)
		}
		if _, dup := c.bindings[b.label]; dup {
			return nil, fmt.Errorf("scorecard: label %q bound twice", b.label)
		}
		c.bindings[b.label] = b
	}
	return c, nil
}

// Drawing returns the unfilled template.
func (c *Card) Drawing() string { return c.drawing }

// Render returns the drawing with every bound field replaced by its current
// value. Each source function is called at most once per render.
func (c *Card) Render() string {
	r := renderer{card: c}
	return fieldPattern.ReplaceAllStringFunc(c.drawing, r.field)
}

// renderer caches source values for the duration of one render.
type renderer struct {
	card    *Card
	scalars map[rune]string
	lists   map[rune][]string
	grids   map[rune][][]string
}

func (r *renderer) field(match string) string {
	label := rune(match[0])
	b, ok := r.card.bindings[label]
	if !ok {
		return match
	}

	name := strings.TrimRight(match, "-")
	var value string
	switch len(name) {
	case 1:
		value = r.scalar(b)
	case 2:
		value = r.item(b, int(name[1]-'0'))
	case 3:
		value = r.cell(b, int(name[1]-'0'), int(name[2]-'0'))
	}
	return pad(value, len(match))
}

func (r *renderer) scalar(b Binding) string {
	if b.scalar == nil {
		return ""
	}
	if r.scalars == nil {
		r.scalars = make(map[rune]string)
	}
	v, ok := r.scalars[b.label]
	if !ok {
		v = b.scalar()
		r.scalars[b.label] = v
	}
	return v
}

func (r *renderer) item(b Binding, i int) string {
	if b.list == nil {
		return ""
	}
	if r.lists == nil {
		r.lists = make(map[rune][]string)
	}
	v, ok := r.lists[b.label]
	if !ok {
		v = b.list()
		r.lists[b.label] = v
	}
	if i >= len(v) {
		return ""
	}
	return v[i]
}

func (r *renderer) cell(b Binding, row, col int) string {
	if b.grid == nil {
		return ""
	}
	if r.grids == nil {
		r.grids = make(map[rune][][]string)
	}
	v, ok := r.grids[b.label]
	if !ok {
		v = b.grid()
		r.grids[b.label] = v
	}
	if row >= len(v) || col >= len(v[row]) {
		return ""
	}
	return v[row][col]
}

// pad right-aligns s in a field of the given width. Longer values are kept
// whole and push the rest of the line right.
func pad(s string, width int) string {
	if n := len(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}
