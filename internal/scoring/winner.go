package scoring

// WinnerPoint reduces a finished round to a single point for whichever player
// scored more in it, e.g. a 6-4 set becomes 1-0.
type WinnerPoint struct {
	name       string
	ordinal    int
	downstream Node
}

// NewWinnerPoint wraps downstream.
func NewWinnerPoint(name string, downstream Node) (*WinnerPoint, error) {
	if downstream == nil {
		return nil, configError("winner point", name, ErrNilDownstream)
	}
	return &WinnerPoint{name: name, downstream: downstream}, nil
}

func (w *WinnerPoint) RecordPlay(player, value int) {
	if w.downstream.IsComplete() {
		return
	}
	w.downstream.RecordPlay(player, value)
}

func (w *WinnerPoint) IsComplete() bool { return w.downstream.IsComplete() }

// Score is zero until the downstream round finishes. After that the player
// with the strictly higher downstream score holds one point; a tie scores
// nothing.
func (w *WinnerPoint) Score() Score {
	var s Score
	if !w.downstream.IsComplete() {
		return s
	}
	if p, ok := w.downstream.Score().Leader(); ok {
		s[p] = 1
	}
	return s
}

func (w *WinnerPoint) PlayCount() int { return w.downstream.PlayCount() }

func (w *WinnerPoint) Children() []Node { return []Node{w.downstream} }

func (w *WinnerPoint) CloneAsChild(ordinal int) Node {
	return &WinnerPoint{
		name:       w.name,
		ordinal:    ordinal,
		downstream: w.downstream.CloneAsChild(ordinal),
	}
}

func (w *WinnerPoint) Name() string { return w.name }

func (w *WinnerPoint) Ordinal() int { return w.ordinal }
