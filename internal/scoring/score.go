package scoring

import "fmt"

// Players is the number of slots in a Score vector.
const Players = 2

// Score holds one tally per player. It is a value type, so handing it out
// never exposes a node's internal state.
type Score [Players]int

// Add returns the element-wise sum of s and o.
func (s Score) Add(o Score) Score {
	for i := range s {
		s[i] += o[i]
	}
	return s
}

// Max returns the highest tally.
func (s Score) Max() int {
	m := s[0]
	for _, v := range s[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Margin returns the absolute difference between the two players.
func (s Score) Margin() int {
	d := s[0] - s[1]
	if d < 0 {
		return -d
	}
	return d
}

// Leader returns the index of the player with the strictly highest tally.
// ok is false on a tie.
func (s Score) Leader() (player int, ok bool) {
	switch {
	case s[0] > s[1]:
		return 0, true
	case s[1] > s[0]:
		return 1, true
	default:
		return -1, false
	}
}

// String formats the score as "a-b".
func (s Score) String() string {
	return fmt.Sprintf("%d-%d", s[0], s[1])
}
