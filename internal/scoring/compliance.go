package scoring

import (
	"math"

	"github.com/MOYARU/tenancyscore/internal/analysis"
	"github.com/MOYARU/tenancyscore/internal/taxonomy"
	"github.com/MOYARU/tenancyscore/internal/weights"
)

// categoryPenaltyRate is the share of a violation's score charged against
// each legal area it belongs to.
const categoryPenaltyRate = 0.2

// PenaltyCounts tallies violations by severity class.
type PenaltyCounts struct {
	Critical int `json:"critical"`
	Serious  int `json:"serious"`
	Moderate int `json:"moderate"`
	Minor    int `json:"minor"`
}

type ComplianceScoring struct {
	TotalScore     int                        `json:"total_score"`
	CategoryScores map[taxonomy.LegalArea]int `json:"category_scores"`
	PenaltyCounts  PenaltyCounts              `json:"penalty_counts"`
	TotalPenalty   float64                    `json:"total_penalty"`
	FinalScore     int                        `json:"final_score"`
}

// PenaltyFraction is the share of a violation's score that becomes a
// compliance penalty. Unknown severities are charged as moderate.
func PenaltyFraction(s taxonomy.Severity) float64 {
	switch s {
	case taxonomy.SeverityCritical:
		return 0.40
	case taxonomy.SeveritySerious:
		return 0.25
	case taxonomy.SeverityModerate:
		return 0.15
	case taxonomy.SeverityMinor:
		return 0.08
	case taxonomy.SeverityInformational:
		return 0.02
	default:
		return 0.15
	}
}

// WarningFraction is the discounted fraction used for warning insights.
func WarningFraction(s taxonomy.Severity) float64 {
	return PenaltyFraction(s) / 2
}

// Compliance aggregates the findings for one document into its compliance
// score. With no violations and no warning insights the final score is 100.
func Compliance(violations []analysis.Violation, insights []analysis.Insight, factors []taxonomy.ContextFactor, cfg *weights.Config) ComplianceScoring {
	out := ComplianceScoring{
		CategoryScores: make(map[taxonomy.LegalArea]int, len(taxonomy.LegalAreas)),
	}

	scores := make([]float64, len(violations))
	var penalty float64
	for i, v := range violations {
		scores[i] = Score(v.ViolationType, v.Severity, factors, cfg)
		penalty += scores[i] * PenaltyFraction(v.Severity)
		countPenalty(&out.PenaltyCounts, v.Severity)
	}

	for _, in := range insights {
		if !in.IsWarning() {
			continue
		}
		penalty += Score(in.ViolationType, in.Severity, factors, cfg) * WarningFraction(in.Severity)
	}

	out.TotalScore = ClampInt(100 - penalty)

	if c := cfg.ConservatismFactor(); c > 50 {
		penalty += penalty * (c/100 - 0.5) * 0.3
	}
	if math.IsNaN(penalty) || math.IsInf(penalty, 0) {
		penalty = 100
	}
	out.TotalPenalty = Round2(math.Max(penalty, 0))
	out.FinalScore = ClampInt(100 - penalty)

	for _, area := range taxonomy.LegalAreas {
		out.CategoryScores[area] = categoryScore(area, violations, scores)
	}

	return out
}

func categoryScore(area taxonomy.LegalArea, violations []analysis.Violation, scores []float64) int {
	var deduction float64
	matched := false
	for i, v := range violations {
		if !taxonomy.InArea(v.ViolationType, area) {
			continue
		}
		matched = true
		deduction += scores[i] * categoryPenaltyRate
	}
	if !matched {
		return 100
	}
	return ClampInt(100 - deduction)
}

func countPenalty(c *PenaltyCounts, s taxonomy.Severity) {
	switch s {
	case taxonomy.SeverityCritical:
		c.Critical++
	case taxonomy.SeveritySerious:
		c.Serious++
	case taxonomy.SeverityModerate:
		c.Moderate++
	case taxonomy.SeverityMinor:
		c.Minor++
	}
}
