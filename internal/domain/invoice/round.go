package invoice

import "math"

// round2 rounds to two decimals, half away from zero. Matches the rounding
// used by the pricing calculators.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
