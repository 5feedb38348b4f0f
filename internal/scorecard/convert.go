package scorecard

import "strconv"

// Ints formats a slice of integers for a List binding.
func Ints(values []int) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.Itoa(v)
	}
	return out
}

// IntGrid formats rows of integers for a Grid binding.
func IntGrid(rows [][]int) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = Ints(row)
	}
	return out
}
