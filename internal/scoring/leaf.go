package scoring

// Leaf records exactly one play event.
type Leaf struct {
	name     string
	ordinal  int
	score    Score
	complete bool
}

// NewLeaf creates a leaf node.
func NewLeaf(name string) *Leaf {
	return &Leaf{name: name}
}

// RecordPlay credits value to player and completes the leaf.
func (l *Leaf) RecordPlay(player, value int) {
	if l.complete {
		return
	}
	l.score[player] += value
	l.complete = true
}

func (l *Leaf) IsComplete() bool { return l.complete }

func (l *Leaf) Score() Score { return l.score }

func (l *Leaf) PlayCount() int {
	if l.complete {
		return 1
	}
	return 0
}

func (l *Leaf) Children() []Node { return nil }

func (l *Leaf) CloneAsChild(ordinal int) Node {
	return &Leaf{name: l.name, ordinal: ordinal}
}

func (l *Leaf) Name() string { return l.name }

func (l *Leaf) Ordinal() int { return l.ordinal }
