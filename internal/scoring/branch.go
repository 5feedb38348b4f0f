package scoring

// Branch routes play into one of two alternative structures. Play goes to A
// until the switch predicate holds for A's state, then to B for the rest of
// the round. A tennis set that turns into a tie-break at 6-6 is the typical
// use.
//
// The predicate is evaluated on every query rather than latched. A stops
// receiving plays once it has switched, so its state, and with it the
// decision, cannot change afterwards.
type Branch struct {
	name     string
	ordinal  int
	a, b     Node
	switchTo SwitchFunc
}

// NewBranch creates a branch between a and b.
func NewBranch(name string, a, b Node, switchTo SwitchFunc) (*Branch, error) {
	if a == nil || b == nil {
		return nil, configError("branch", name, ErrNilDownstream)
	}
	if switchTo == nil {
		return nil, configError("branch", name, ErrNilPredicate)
	}
	return &Branch{name: name, a: a, b: b, switchTo: switchTo}, nil
}

// Switched reports whether play has been diverted to B.
func (br *Branch) Switched() bool {
	return br.switchTo(br.ordinal, br.a.PlayCount(), br.a.Score())
}

func (br *Branch) active() Node {
	if br.Switched() {
		return br.b
	}
	return br.a
}

func (br *Branch) RecordPlay(player, value int) { br.active().RecordPlay(player, value) }

func (br *Branch) IsComplete() bool { return br.active().IsComplete() }

// Score returns A's score, plus B's once the branch has switched.
func (br *Branch) Score() Score {
	if br.Switched() {
		return br.a.Score().Add(br.b.Score())
	}
	return br.a.Score()
}

func (br *Branch) PlayCount() int { return br.active().PlayCount() }

// Children exposes only the active structure.
func (br *Branch) Children() []Node { return []Node{br.active()} }

func (br *Branch) CloneAsChild(ordinal int) Node {
	return &Branch{
		name:     br.name,
		ordinal:  ordinal,
		a:        br.a.CloneAsChild(ordinal),
		b:        br.b.CloneAsChild(ordinal),
		switchTo: br.switchTo,
	}
}

func (br *Branch) Name() string { return br.name }

func (br *Branch) Ordinal() int { return br.ordinal }
