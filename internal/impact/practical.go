package impact

import (
	"github.com/MOYARU/tenancyscore/internal/analysis"
	"github.com/MOYARU/tenancyscore/internal/scoring"
	"github.com/MOYARU/tenancyscore/internal/weights"
)

// Practical is the effect on the tenant's lived experience of the home.
type Practical struct {
	LivingConditions int `json:"living_conditions"`
	SecurityOfTenure int `json:"security_of_tenure"`
	DayToDayLiving   int `json:"day_to_day_living"`
	FutureOptions    int `json:"future_options"`
}

func (w practicalWeight) values() []float64 {
	return []float64{w.living, w.security, w.daily, w.future}
}

// ComputePractical scores the four lived-experience axes. Warning insights
// add a quarter of their type's weight, unscaled by severity. A vulnerable
// tenant feels living conditions and daily disruption more, a first-time
// tenant feels insecurity of tenure more.
func ComputePractical(violations []analysis.Violation, insights []analysis.Insight, profile *analysis.TenantProfile, cfg *weights.Config) Practical {
	totals := make([]float64, 4)

	for _, v := range violations {
		accumulate(totals, practicalWeights[v.ViolationType].values(),
			cfg.ImpactMultiplier(v.Severity), cfg.Escalation())
	}
	for _, in := range insights {
		if !in.IsWarning() {
			continue
		}
		for i, w := range practicalWeights[in.ViolationType].values() {
			totals[i] += w * warningShare
		}
	}

	if profile.Vulnerable() {
		totals[0] *= vulnerableLivingScale
		totals[2] *= vulnerableDailyScale
	}
	if profile.FirstTime() {
		totals[1] *= firstTimeSecurityScale
	}

	return Practical{
		LivingConditions: scoring.ClampInt(totals[0]),
		SecurityOfTenure: scoring.ClampInt(totals[1]),
		DayToDayLiving:   scoring.ClampInt(totals[2]),
		FutureOptions:    scoring.ClampInt(totals[3]),
	}
}
