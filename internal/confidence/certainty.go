package confidence

import (
	"strings"

	"github.com/MOYARU/tenancyscore/internal/analysis"
	"github.com/MOYARU/tenancyscore/internal/scoring"
)

const hedgingRatioLimit = 0.3

// AssessLegalCertainty scores how firmly the insights are grounded in law.
func AssessLegalCertainty(res *analysis.Result) int {
	if res == nil {
		res = &analysis.Result{}
	}
	score := 100.0

	cited, numeric, hedged := 0, 0, 0
	for _, in := range res.Insights {
		if hasLegalBasis(in.LegalBasis) {
			cited++
		}
		body := strings.Join(append([]string{in.Title, in.Content, in.EvidenceText}, in.LegalBasis...), " ")
		if reCitation.MatchString(body) {
			numeric++
		}
		if reHedging.MatchString(in.Title + " " + in.Content) {
			hedged++
		}
	}

	if cited == 0 {
		score -= 25
	}
	if numeric == 0 {
		score -= 15
	}
	if n := len(res.Insights); n > 0 && float64(hedged)/float64(n) > hedgingRatioLimit {
		score -= 20
	}
	if cs := res.ComplianceScore; cs != nil && (*cs == 0 || *cs == 100) {
		score -= 10
	}

	return scoring.ClampInt(score)
}

func hasLegalBasis(basis []string) bool {
	for _, b := range basis {
		if strings.TrimSpace(b) != "" {
			return true
		}
	}
	return false
}
