package confidence

import (
	"strings"

	"github.com/MOYARU/tenancyscore/internal/analysis"
	"github.com/MOYARU/tenancyscore/internal/scoring"
	"github.com/MOYARU/tenancyscore/internal/taxonomy"
	"github.com/MOYARU/tenancyscore/internal/weights"
)

// FactorBreakdown holds finer-grained document metrics reported next to the
// four headline sub-scores. Each is clamped to [0,100] on its own.
type FactorBreakdown struct {
	DocumentCompleteness int `json:"document_completeness"`
	ClauseClarity        int `json:"clause_clarity"`
	StandardCompliance   int `json:"standard_compliance"`
	LegalComplexity      int `json:"legal_complexity"`
	AmbiguityLevel       int `json:"ambiguity_level"`
}

const (
	wordsPerSentenceLimit = 25
	maxSentenceLengthCost = 50
)

// Breakdown computes the factor breakdown for text and the analysis result.
func Breakdown(text string, res *analysis.Result, cfg *weights.Config) FactorBreakdown {
	if res == nil {
		res = &analysis.Result{}
	}
	return FactorBreakdown{
		DocumentCompleteness: documentCompleteness(text),
		ClauseClarity:        clauseClarity(text),
		StandardCompliance:   standardCompliance(text, res.DocumentType),
		LegalComplexity:      legalComplexity(text, res.Violations, cfg),
		AmbiguityLevel:       scoring.ClampInt(6 * float64(len(reVague.FindAllStringIndex(text, -1)))),
	}
}

func documentCompleteness(text string) int {
	found := countMatching(text, clauseTopics)
	return scoring.ClampInt(float64(found) / float64(len(clauseTopics)) * 100)
}

func clauseClarity(text string) int {
	score := 100.0

	if ss := sentences(text); len(ss) > 0 {
		words := 0
		for _, s := range ss {
			words += len(strings.Fields(s))
		}
		avg := float64(words) / float64(len(ss))
		if over := avg - wordsPerSentenceLimit; over > 0 {
			cost := 2 * over
			if cost > maxSentenceLengthCost {
				cost = maxSentenceLengthCost
			}
			score -= cost
		}
	}

	score -= 4 * float64(countMatching(text, jargonPatterns))
	if !reStructure.MatchString(text) {
		score -= 10
	}
	return scoring.ClampInt(score)
}

func standardCompliance(text string, doc taxonomy.DocumentType) int {
	score := 40 + 10*float64(countMatching(text, statutoryAnchors))
	if doc.Known() {
		score += 10
	}
	return scoring.ClampInt(score)
}

func legalComplexity(text string, violations []analysis.Violation, cfg *weights.Config) int {
	score := 5 * float64(countMatching(text, jargonPatterns))

	statutes := make(map[string]struct{})
	for _, m := range reStatute.FindAllString(text, -1) {
		statutes[strings.ToLower(m)] = struct{}{}
	}
	score += 8 * float64(len(statutes))

	implicated := make(map[taxonomy.LegalArea]bool)
	for _, v := range violations {
		for _, a := range taxonomy.AreasFor(v.ViolationType) {
			implicated[a] = true
		}
	}
	for _, a := range taxonomy.LegalAreas {
		if implicated[a] {
			score += cfg.AreaWeight(a) * 10
		}
	}
	return scoring.ClampInt(score)
}
