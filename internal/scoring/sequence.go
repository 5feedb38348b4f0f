package scoring

// Sequence is a round made of an ordered, growing list of sub-rounds. Each
// sub-round is cloned from the template when the previous one completes.
type Sequence struct {
	name     string
	ordinal  int
	template Node
	done     CompletionFunc
	children []Node
}

// NewSequence creates a sequence whose sub-rounds are cloned from template.
// done may be nil, in which case the sequence completes together with its
// first sub-round.
func NewSequence(name string, template Node, done CompletionFunc) (*Sequence, error) {
	if template == nil {
		return nil, configError("sequence", name, ErrNilTemplate)
	}
	return &Sequence{name: name, template: template, done: done}, nil
}

// RecordPlay starts a new sub-round if the last one has finished, then hands
// the play to every sub-round. Finished sub-rounds ignore it unless a
// decorator such as Bonus is still collecting.
func (s *Sequence) RecordPlay(player, value int) {
	if s.IsComplete() {
		return
	}
	if n := len(s.children); n == 0 || s.children[n-1].IsComplete() {
		s.children = append(s.children, s.template.CloneAsChild(n))
	}
	for _, c := range s.children {
		c.RecordPlay(player, value)
	}
}

// IsComplete is true once the last sub-round has finished and the completion
// predicate, if any, accepts the current state.
func (s *Sequence) IsComplete() bool {
	n := len(s.children)
	if n == 0 {
		return false
	}
	if !s.children[n-1].IsComplete() {
		return false
	}
	return s.done == nil || s.done(s.ordinal, n, s.Score())
}

// Score sums the scores of all sub-rounds.
func (s *Sequence) Score() Score {
	var total Score
	for _, c := range s.children {
		total = total.Add(c.Score())
	}
	return total
}

// PlayCount returns the number of sub-rounds created so far.
func (s *Sequence) PlayCount() int { return len(s.children) }

func (s *Sequence) Children() []Node { return s.children }

// CloneAsChild returns an empty sequence with the same template and predicate.
// The template is shared; it is only ever read.
func (s *Sequence) CloneAsChild(ordinal int) Node {
	return &Sequence{
		name:     s.name,
		ordinal:  ordinal,
		template: s.template,
		done:     s.done,
	}
}

func (s *Sequence) Name() string { return s.name }

func (s *Sequence) Ordinal() int { return s.ordinal }
