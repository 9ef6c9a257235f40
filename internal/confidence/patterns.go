package confidence

import "regexp"

var keyTerms = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\brent`),
	regexp.MustCompile(`(?i)\bdeposit`),
	regexp.MustCompile(`(?i)\blandlord`),
	regexp.MustCompile(`(?i)\btenant`),
	regexp.MustCompile(`(?i)\bpropert(?:y|ies)`),
	regexp.MustCompile(`(?i)\bterm\b|\bterms\b`),
	regexp.MustCompile(`(?i)\bnotice`),
	regexp.MustCompile(`(?i)\brepair`),
	regexp.MustCompile(`(?i)\bagreement`),
	regexp.MustCompile(`(?i)\bpayment|\bpayable\b`),
}

var qualityIndicators = []*regexp.Regexp{
	regexp.MustCompile(`\b(?i:address)\b|\b[A-Z]{1,2}\d[A-Z\d]?\s*\d[A-Z]{2}\b`),
	regexp.MustCompile(`\b\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4}\b|(?i)\b\d{1,2}(?:st|nd|rd|th)?\s+(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{4}\b`),
	regexp.MustCompile(`(?i)\bsign(?:ed|ature|atures)\b`),
	regexp.MustCompile(`(?i)\bwitness`),
	regexp.MustCompile(`(?i)\bschedule\b`),
}

var placeholders = []*regexp.Regexp{
	regexp.MustCompile(`\[[^\]\n]*\]`),
	regexp.MustCompile(`\{[^}\n]*\}`),
	regexp.MustCompile(`_{5,}`),
	regexp.MustCompile(`(?i)\bTBD\b`),
}

var (
	reStructure   = regexp.MustCompile(`(?im)^\s*(?:(?:clause|section)\s+\d+|\d+(?:\.\d+)*[.)]\s+\S|\d+\.\d+\s+\S)`)
	reHeading     = regexp.MustCompile(`(?m)^[ \t]*(?:[A-Z][A-Z0-9 ,&'\-]{3,}|\d+\.[ \t]+[A-Z][A-Za-z ]{2,40})[ \t]*:?[ \t]*$`)
	reDefinitions = regexp.MustCompile(`(?i)\bdefinitions\b|\binterpretation\b|["“][^"”\n]+["”]\s+(?:means|shall mean)\b|\bshall mean\b`)
	reSentence    = regexp.MustCompile(`[.!?]+\s+|\n{2,}`)
	reStatute     = regexp.MustCompile(`\b(?:[A-Z][a-z]+\s+){1,5}Act\s+(?:19|20)\d{2}\b`)
	reCitation    = regexp.MustCompile(`(?i)\b(?:19|20)\d{2}\b|\bs\.\s?\d+|\bsection\s+\d+|\bschedule\s+\d+|\bregulation\s+\d+`)
	reHedging     = regexp.MustCompile(`(?i)\b(?:may|might|could|possibly|perhaps|unclear|uncertain|potentially|likely|appears?|seems?)\b`)
	reVague       = regexp.MustCompile(`(?i)\breasonable\b|\bfrom time to time\b|\bas appropriate\b|\bat the landlord'?s (?:sole |absolute )?discretion\b|\bmay\b|\bor otherwise\b|\bincluding but not limited to\b`)
)

var jargonTerms = []string{
	"hereinafter", "heretofore", "notwithstanding", "whereas", "thereof", "hereby",
	"herein", "aforementioned", "forthwith", "pursuant", "indemnify", "covenant",
}

var jargonPatterns = compileWords(jargonTerms)

// clauseTopics are the topics a complete tenancy agreement covers.
var clauseTopics = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bparties\b|\bbetween\b.+\band\b`),
	regexp.MustCompile(`(?i)\bpropert(?:y|ies)\b|\bpremises\b`),
	regexp.MustCompile(`(?i)\bterm\b|\bcommencing\b|\bstart date\b`),
	regexp.MustCompile(`(?i)\brent\b`),
	regexp.MustCompile(`(?i)\bdeposit\b`),
	regexp.MustCompile(`(?i)\brepair|\bmaintenance\b`),
	regexp.MustCompile(`(?i)\btermina|\bnotice to quit\b|\bend the tenancy\b`),
	regexp.MustCompile(`(?i)\bsign(?:ed|ature)`),
}

// statutoryAnchors are references a compliant English tenancy usually makes.
var statutoryAnchors = []*regexp.Regexp{
	regexp.MustCompile(`(?i)deposit (?:protection|protected)|tenancy deposit scheme|\bDPS\b|mydeposits`),
	regexp.MustCompile(`(?i)how to rent`),
	regexp.MustCompile(`(?i)gas safety (?:certificate|record)`),
	regexp.MustCompile(`(?i)energy performance|\bEPC\b`),
	regexp.MustCompile(`(?i)tenant fees act`),
	regexp.MustCompile(`(?i)housing act`),
	regexp.MustCompile(`(?i)right to rent`),
}

func compileWords(words []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(words))
	for i, w := range words {
		out[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w) + `\b`)
	}
	return out
}

func countMatching(text string, patterns []*regexp.Regexp) int {
	n := 0
	for _, re := range patterns {
		if re.MatchString(text) {
			n++
		}
	}
	return n
}
