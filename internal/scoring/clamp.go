package scoring

import "math"

// Clamp bounds v to [lo, hi]. NaN maps to lo so no non-finite value escapes.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampScore bounds v to the score range [0, 100].
func ClampScore(v float64) float64 {
	return Clamp(v, 0, 100)
}

// ClampInt rounds v to the nearest integer score in [0, 100].
func ClampInt(v float64) int {
	return int(math.Round(ClampScore(v)))
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
