// Package scoring turns classified findings into numeric scores: the
// per-violation impact score, the document compliance score and the
// severity thresholds derived from the same configuration.
//
// Everything here is a pure function of its arguments and the weights.Config.
package scoring

import (
	"github.com/MOYARU/tenancyscore/internal/taxonomy"
	"github.com/MOYARU/tenancyscore/internal/weights"
)

// Score computes the impact score (0-100, two decimals) of one violation.
// Unknown types, severities and context factors fall back to neutral values.
func Score(t taxonomy.ViolationType, s taxonomy.Severity, factors []taxonomy.ContextFactor, cfg *weights.Config) float64 {
	score := cfg.TypeWeight(t)
	score *= cfg.SeverityWeight(s)
	score *= cfg.ContextProduct(factors)

	// The pro-tenant skew only ever raises the score and is inert at 50.
	if bias := cfg.TenantProtectionBias(); bias > 50 {
		score += score * (bias/100 - 0.5) * 0.5
	}

	return Round2(ClampScore(score))
}
