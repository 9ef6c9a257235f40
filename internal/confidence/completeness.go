package confidence

import (
	"strings"
	"unicode/utf8"

	"github.com/MOYARU/tenancyscore/internal/analysis"
	"github.com/MOYARU/tenancyscore/internal/scoring"
)

const detailedInsightChars = 100

// AssessAnalysisCompleteness scores whether the analysis covers the sections
// a report needs and whether its insights carry enough detail.
func AssessAnalysisCompleteness(res *analysis.Result, ctx analysis.Context) int {
	if res == nil {
		res = &analysis.Result{}
	}
	score := 100.0

	sections := []bool{
		strings.TrimSpace(res.Summary) != "",
		res.Insights != nil,
		res.Recommendations != nil,
		res.PropertyDetails != nil,
		res.FinancialTerms != nil,
		res.TenancyTerms != nil,
	}
	for _, present := range sections {
		if !present {
			score -= 15
		}
	}

	switch n := len(res.Insights); {
	case n == 0:
		score -= 25
	case n < 3:
		score -= 10
	}

	if n := len(res.Insights); n > 0 {
		detailed := 0
		for _, in := range res.Insights {
			if utf8.RuneCountInString(strings.TrimSpace(in.Content)) > detailedInsightChars {
				detailed++
			}
		}
		if detailed*2 < n {
			score -= 15
		}
	}

	switch n := len(res.Recommendations); {
	case n == 0:
		score -= 20
	case n < 3:
		score -= 10
	}

	if ctx.AnalysisDepth.Thorough() {
		if res.Violations == nil {
			score -= 15
		}
		if strings.TrimSpace(res.RiskAssessment) == "" {
			score -= 15
		}
		if strings.TrimSpace(res.ImpactAnalysis) == "" {
			score -= 15
		}
	}

	return scoring.ClampInt(score)
}
