package impact

import (
	"sort"

	"github.com/MOYARU/tenancyscore/internal/analysis"
	"github.com/MOYARU/tenancyscore/internal/scoring"
	"github.com/MOYARU/tenancyscore/internal/weights"
)

// Legal is the tenant's exposure in terms of rights and enforcement.
type Legal struct {
	RightsAtRisk    []string `json:"rights_at_risk"`
	EnforcementRisk int      `json:"enforcement_risk"`
	LitigationRisk  int      `json:"litigation_risk"`
	RegulatoryRisk  int      `json:"regulatory_risk"`
}

func ComputeLegal(violations []analysis.Violation, cfg *weights.Config) Legal {
	seen := make(map[string]bool)
	rightsAtRisk := []string{}
	totals := make([]float64, 3)

	for _, v := range violations {
		if r, ok := rights[v.ViolationType]; ok && !seen[r] {
			seen[r] = true
			rightsAtRisk = append(rightsAtRisk, r)
		}
		risk := legalRiskFor(v.ViolationType)
		accumulate(totals, []float64{risk.enforcement, risk.litigation, risk.regulatory},
			cfg.ImpactMultiplier(v.Severity), cfg.Escalation())
	}
	sort.Strings(rightsAtRisk)

	return Legal{
		RightsAtRisk:    rightsAtRisk,
		EnforcementRisk: scoring.ClampInt(totals[0]),
		LitigationRisk:  scoring.ClampInt(totals[1]),
		RegulatoryRisk:  scoring.ClampInt(totals[2]),
	}
}
