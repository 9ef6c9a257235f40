package confidence

import (
	"math"

	"github.com/MOYARU/tenancyscore/internal/scoring"
)

// Interval is a normal-approximation confidence interval around a score.
type Interval struct {
	Lower  float64 `json:"lower"`
	Upper  float64 `json:"upper"`
	Margin float64 `json:"margin"`
	Level  int     `json:"level"`
}

// zScore maps a confidence level in percent to its two-sided z value.
// Unlisted levels use 95.
func zScore(level int) float64 {
	switch level {
	case 90:
		return 1.645
	case 99:
		return 2.576
	default:
		return 1.96
	}
}

// CalculateConfidenceInterval returns the interval around score (0-100) for
// the given level and sample size. Sizes below one are treated as one.
func CalculateConfidenceInterval(score float64, level, n int) Interval {
	if n < 1 {
		n = 1
	}
	score = scoring.ClampScore(score)
	p := score / 100
	se := math.Sqrt(p * (1 - p) / float64(n))
	margin := scoring.Round2(zScore(level) * se * 100)

	return Interval{
		Lower:  scoring.Round2(scoring.ClampScore(score - margin)),
		Upper:  scoring.Round2(scoring.ClampScore(score + margin)),
		Margin: margin,
		Level:  level,
	}
}
