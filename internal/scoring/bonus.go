package scoring

// Bonus wraps a round and keeps scoring after that round has finished. Plays
// that arrive once the downstream round is complete are added to player 0 as
// bonus until the closing predicate holds.
//
// Completion is taken from the downstream round, so a parent Sequence moves
// on to the next round while the bonus is still being collected.
type Bonus struct {
	name       string
	ordinal    int
	downstream Node
	closed     BonusFunc
	bonus      int
	bonusPlays int
}

// NewBonus wraps downstream. closed is evaluated with the total number of
// plays (downstream plus bonus) and the downstream score for player 0.
func NewBonus(name string, downstream Node, closed BonusFunc) (*Bonus, error) {
	if downstream == nil {
		return nil, configError("bonus", name, ErrNilDownstream)
	}
	if closed == nil {
		return nil, configError("bonus", name, ErrNilPredicate)
	}
	return &Bonus{name: name, downstream: downstream, closed: closed}, nil
}

// RecordPlay forwards the play downstream and, once the downstream round is
// complete, also counts it as bonus.
func (b *Bonus) RecordPlay(player, value int) {
	if b.BonusClosed() {
		return
	}
	if b.downstream.IsComplete() {
		b.bonus += value
		b.bonusPlays++
	}
	b.downstream.RecordPlay(player, value)
}

// BonusClosed reports whether the bonus has stopped collecting plays.
func (b *Bonus) BonusClosed() bool {
	if !b.downstream.IsComplete() {
		return false
	}
	return b.closed(b.downstream.PlayCount()+b.bonusPlays, b.downstream.Score()[0])
}

// BonusScore returns the bonus collected so far.
func (b *Bonus) BonusScore() int { return b.bonus }

// BonusPlays returns the number of plays counted as bonus.
func (b *Bonus) BonusPlays() int { return b.bonusPlays }

func (b *Bonus) IsComplete() bool { return b.downstream.IsComplete() }

// Score returns the downstream score with the bonus added to player 0.
func (b *Bonus) Score() Score {
	s := b.downstream.Score()
	s[0] += b.bonus
	return s
}

func (b *Bonus) PlayCount() int { return b.downstream.PlayCount() }

// Children returns the downstream round's children, so the decorator is
// transparent when walking the tree.
func (b *Bonus) Children() []Node { return b.downstream.Children() }

func (b *Bonus) CloneAsChild(ordinal int) Node {
	return &Bonus{
		name:       b.name,
		ordinal:    ordinal,
		downstream: b.downstream.CloneAsChild(ordinal),
		closed:     b.closed,
	}
}

func (b *Bonus) Name() string { return b.name }

func (b *Bonus) Ordinal() int { return b.ordinal }
