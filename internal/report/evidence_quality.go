package report

import (
	"strings"

	"github.com/MOYARU/tenancyscore/internal/analysis"
)

// ScoreEvidenceQuality rates how well a violation is supported, in [0,100].
func ScoreEvidenceQuality(v analysis.Violation) int {
	score := 30

	cited := 0
	for _, b := range v.LegalBasis {
		if strings.TrimSpace(b) != "" {
			cited++
		}
	}
	switch {
	case cited >= 2:
		score += 25
	case cited == 1:
		score += 15
	}

	eLen := len(strings.TrimSpace(v.EvidenceText))
	switch {
	case eLen >= 160:
		score += 20
	case eLen >= 80:
		score += 12
	case eLen >= 30:
		score += 6
	case eLen == 0:
		score -= 15
	}

	if strings.TrimSpace(v.Remediation) != "" {
		score += 15
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
