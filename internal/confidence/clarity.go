package confidence

import (
	"strings"
	"unicode/utf8"

	"github.com/MOYARU/tenancyscore/internal/scoring"
)

const (
	longSentenceChars      = 200
	longSentencePenalty    = 2
	maxLongSentencePenalty = 20
	jargonPenalty          = 3
)

// AssessDocumentClarity scores how readable the agreement is for a tenant.
func AssessDocumentClarity(text string) int {
	score := 100.0

	long := 0
	for _, s := range sentences(text) {
		if utf8.RuneCountInString(s) > longSentenceChars {
			long++
		}
	}
	penalty := long * longSentencePenalty
	if penalty > maxLongSentencePenalty {
		penalty = maxLongSentencePenalty
	}
	score -= float64(penalty)

	score -= jargonPenalty * float64(countMatching(text, jargonPatterns))

	if reStructure.MatchString(text) {
		score += 10
	}
	if reHeading.MatchString(text) {
		score += 10
	}
	if reDefinitions.MatchString(text) {
		score += 5
	}

	return scoring.ClampInt(score)
}

func sentences(text string) []string {
	parts := reSentence.Split(text, -1)
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
