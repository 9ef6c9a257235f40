package report

import (
	"fmt"
	"regexp"
)

const redacted = "<redacted>"

var (
	reEmail    = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	reSortCode = regexp.MustCompile(`\b\d{2}-\d{2}-\d{2}\b`)
	rePhone    = regexp.MustCompile(`(?:\+44\s?(?:\(0\)\s?)?|\b0)\d{2,4}[\s-]?\d{3,4}[\s-]?\d{3,4}\b`)
	reAccount  = regexp.MustCompile(`(?i)\b(account(?:\s+(?:no\.?|number))?\s*[:#]?\s*)\d{8}\b`)

	defaultSanitizer = &Sanitizer{}
)

// Sanitizer removes personal data from evidence excerpts before they are
// reported. Extra patterns are applied after the built-in ones.
type Sanitizer struct {
	extra []*regexp.Regexp
}

// NewSanitizer compiles extra redaction patterns.
func NewSanitizer(patterns []string) (*Sanitizer, error) {
	s := &Sanitizer{}
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("redaction pattern %q: %w", p, err)
		}
		s.extra = append(s.extra, re)
	}
	return s, nil
}

// Text redacts e-mail addresses, account numbers, sort codes and UK phone
// numbers, then any extra patterns.
func (s *Sanitizer) Text(in string) string {
	out := reEmail.ReplaceAllString(in, redacted)
	out = reAccount.ReplaceAllString(out, "${1}"+redacted)
	out = reSortCode.ReplaceAllString(out, redacted)
	out = rePhone.ReplaceAllString(out, redacted)
	if s == nil {
		return out
	}
	for _, re := range s.extra {
		out = re.ReplaceAllString(out, redacted)
	}
	return out
}

// SanitizeText applies the built-in redactions only.
func SanitizeText(s string) string {
	return defaultSanitizer.Text(s)
}
