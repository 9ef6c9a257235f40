// Package confidence scores how far the analysis itself can be trusted,
// independently of what it found. Four sub-scores start at 100 and collect
// penalties and bonuses from regex heuristics over the document text and the
// analysis result; each is clamped to [0,100] and the overall confidence is
// their plain average.
package confidence

import (
	"math"

	"github.com/MOYARU/tenancyscore/internal/analysis"
	"github.com/MOYARU/tenancyscore/internal/scoring"
	"github.com/MOYARU/tenancyscore/internal/weights"
)

// Metrics is the confidence assessment of one analysis.
type Metrics struct {
	OverallConfidence    int             `json:"overall_confidence"`
	DataQuality          int             `json:"data_quality"`
	AnalysisCompleteness int             `json:"analysis_completeness"`
	LegalCertainty       int             `json:"legal_certainty"`
	DocumentClarity      int             `json:"document_clarity"`
	FactorBreakdown      FactorBreakdown `json:"factor_breakdown"`
	Interval             Interval        `json:"interval"`
}

const subScoreWeight = 0.25

// Compute runs every confidence heuristic. A nil result is treated as an
// analysis with nothing in it.
func Compute(text string, res *analysis.Result, ctx analysis.Context, cfg *weights.Config) Metrics {
	if res == nil {
		res = &analysis.Result{}
	}

	m := Metrics{
		DataQuality:          AssessDocumentQuality(text),
		AnalysisCompleteness: AssessAnalysisCompleteness(res, ctx),
		LegalCertainty:       AssessLegalCertainty(res),
		DocumentClarity:      AssessDocumentClarity(text),
		FactorBreakdown:      Breakdown(text, res, cfg),
	}

	overall := float64(m.DataQuality)*subScoreWeight +
		float64(m.AnalysisCompleteness)*subScoreWeight +
		float64(m.LegalCertainty)*subScoreWeight +
		float64(m.DocumentClarity)*subScoreWeight
	m.OverallConfidence = scoring.ClampInt(math.Round(overall))

	m.Interval = CalculateConfidenceInterval(float64(m.OverallConfidence), 95, len(res.Insights)+len(res.Violations))
	return m
}
