package scoring

import (
	"fmt"
	"io"
	"strings"
)

// Describe writes an indented dump of the tree rooted at n. Only the public
// accessors are used, so the dump can be taken at any point in a game.
func Describe(w io.Writer, n Node) error {
	return describe(w, n, 0)
}

// DescribeString returns the Describe dump as a string.
func DescribeString(n Node) string {
	var sb strings.Builder
	//nolint:errcheck // strings.Builder never fails
	Describe(&sb, n)
	return sb.String()
}

func describe(w io.Writer, n Node, depth int) error {
	indent := strings.Repeat("  ", depth)

	line := fmt.Sprintf("%s%s #%d plays=%d score=%s complete=%t",
		indent, n.Name(), n.Ordinal(), n.PlayCount(), n.Score(), n.IsComplete())

	switch v := n.(type) {
	case *Bonus:
		line += fmt.Sprintf(" bonus=%d/%d closed=%t", v.BonusScore(), v.BonusPlays(), v.BonusClosed())
	case *Branch:
		line += fmt.Sprintf(" switched=%t", v.Switched())
	}

	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}

	for _, c := range n.Children() {
		if err := describe(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}
