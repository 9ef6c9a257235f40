// Package impact translates violations into three views of their
// consequences for the tenant: money at stake, legal exposure and the effect on
// day-to-day living.
package impact

import (
	"github.com/MOYARU/tenancyscore/internal/analysis"
	"github.com/MOYARU/tenancyscore/internal/weights"
)

// Assessment is the combined impact of one analysis.
type Assessment struct {
	Financial Financial `json:"financial_impact"`
	Legal     Legal     `json:"legal_impact"`
	Practical Practical `json:"practical_impact"`
}

// Compute assesses violations and warning insights. res supplies the
// financial terms used to impute ongoing risk and may be nil.
func Compute(violations []analysis.Violation, insights []analysis.Insight, res *analysis.Result, ctx analysis.Context, cfg *weights.Config) Assessment {
	var terms *analysis.FinancialTerms
	if res != nil {
		terms = res.FinancialTerms
	}
	return Assessment{
		Financial: ComputeFinancial(violations, terms.MonthlyRentAmount()),
		Legal:     ComputeLegal(violations, cfg),
		Practical: ComputePractical(violations, insights, ctx.TenantProfile, cfg),
	}
}

// accumulate folds one violation's contribution into totals. Per-violation
// escalation scales the contribution alone; compounding scales the running
// totals after adding it, so earlier violations are multiplied again by every
// later one.
func accumulate(totals, contribution []float64, multiplier float64, mode weights.Escalation) {
	for i := range totals {
		if mode == weights.EscalationCompounding {
			totals[i] = (totals[i] + contribution[i]) * multiplier
			continue
		}
		totals[i] += contribution[i] * multiplier
	}
}
