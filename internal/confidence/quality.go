package confidence

import (
	"unicode/utf8"

	"github.com/MOYARU/tenancyscore/internal/scoring"
)

const maxPlaceholderPenalty = 30

// AssessDocumentQuality scores the source text: its length, structure,
// coverage of key tenancy terms, signs of a finished document, and leftover
// template placeholders.
func AssessDocumentQuality(text string) int {
	score := 100.0

	switch n := utf8.RuneCountInString(text); {
	case n < 1000:
		score -= 30
	case n < 2000:
		score -= 15
	}

	if !reStructure.MatchString(text) {
		score -= 20
	}

	score -= 5 * float64(len(keyTerms)-countMatching(text, keyTerms))
	score += 3 * float64(countMatching(text, qualityIndicators))

	occurrences := 0
	for _, re := range placeholders {
		occurrences += len(re.FindAllStringIndex(text, -1))
	}
	penalty := 3 * occurrences
	if penalty > maxPlaceholderPenalty {
		penalty = maxPlaceholderPenalty
	}
	score -= float64(penalty)

	return scoring.ClampInt(score)
}
