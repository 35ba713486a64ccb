package engine

import (
	"math"
	"strconv"
)

// Magnitudes outside [sciLow, sciHigh) switch to exponent notation.
const (
	sciLow  = 1e-6
	sciHigh = 1e21
)

// FormatResult renders v in its shortest round-trip decimal form. Whole
// numbers carry no fractional part and negative zero prints as "0".
func FormatResult(v float64) string {
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs >= sciHigh || abs < sciLow {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
