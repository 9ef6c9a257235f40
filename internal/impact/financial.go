package impact

import (
	"github.com/MOYARU/tenancyscore/internal/analysis"
	"github.com/MOYARU/tenancyscore/internal/scoring"
	"github.com/MOYARU/tenancyscore/internal/taxonomy"
)

// Risk category keys always present in Financial.RiskCategories. Violation
// types with explicit amounts are keyed by their type name.
const (
	CategoryImmediate  = "immediate"
	CategoryOngoing    = "ongoing"
	CategoryLegalCosts = "legal_costs"
)

// MaxExposure caps every monetary figure so sums of very large amounts stay
// finite.
const MaxExposure = 1e12

func capped(v float64) float64 {
	return scoring.Clamp(v, 0, MaxExposure)
}

// Financial is the monetary exposure, in the currency of the agreement.
type Financial struct {
	ImmediateRisk  float64            `json:"immediate_risk"`
	OngoingRisk    float64            `json:"ongoing_risk"`
	TotalExposure  float64            `json:"total_exposure"`
	RiskCategories map[string]float64 `json:"risk_categories"`
}

// ComputeFinancial buckets explicit amounts into immediate and annualised
// ongoing risk. Serious and critical violations with no amount add a flat
// legal consultation cost. When nothing ongoing was found, a share of
// monthlyRent per violation is imputed as ongoing risk.
func ComputeFinancial(violations []analysis.Violation, monthlyRent float64) Financial {
	var immediate, ongoing, legal float64
	categories := map[string]float64{}

	for _, v := range violations {
		amount, ok := v.Amount()
		if !ok {
			if v.Severity.AtLeast(taxonomy.SeveritySerious) {
				legal += legalConsultationCost
			}
			continue
		}
		amount = capped(amount)
		categories[string(v.ViolationType)] = capped(categories[string(v.ViolationType)] + amount)
		switch bucketFor(v.ViolationType) {
		case bucketOngoing:
			ongoing = capped(ongoing + amount*months)
		default:
			immediate = capped(immediate + amount)
		}
	}

	if ongoing == 0 && len(violations) > 0 {
		ongoing = capped(monthlyRent * imputedRentShare * float64(len(violations)))
	}

	for k, v := range categories {
		categories[k] = scoring.Round2(v)
	}
	categories[CategoryImmediate] = scoring.Round2(immediate)
	categories[CategoryOngoing] = scoring.Round2(ongoing)
	categories[CategoryLegalCosts] = scoring.Round2(legal)

	return Financial{
		ImmediateRisk:  scoring.Round2(immediate),
		OngoingRisk:    scoring.Round2(ongoing),
		TotalExposure:  scoring.Round2(capped(immediate + ongoing)),
		RiskCategories: categories,
	}
}
