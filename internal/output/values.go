package output

import (
	"strconv"

	"calcterm/internal/calculator"
)

// resultValues returns the numeric results in chronological order, for
// plotting. Entries are given most recent first.
func resultValues(recent []calculator.HistoryEntry) []float64 {
	out := make([]float64, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		v, err := strconv.ParseFloat(recent[i].Result, 64)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}
