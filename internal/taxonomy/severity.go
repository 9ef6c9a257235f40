// Package taxonomy holds the closed vocabularies used to classify findings
// in a tenancy agreement: severities, violation types, legal areas, context
// factors and document types. It is pure data.
package taxonomy

import "strings"

type Severity string

const (
	SeverityCritical      Severity = "critical"
	SeveritySerious       Severity = "serious"
	SeverityModerate      Severity = "moderate"
	SeverityMinor         Severity = "minor"
	SeverityInformational Severity = "informational"
)

// Severities lists every level from most to least severe.
var Severities = []Severity{
	SeverityCritical,
	SeveritySerious,
	SeverityModerate,
	SeverityMinor,
	SeverityInformational,
}

// Rank orders severities: critical is 4, informational 0, anything else -1.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeveritySerious:
		return 3
	case SeverityModerate:
		return 2
	case SeverityMinor:
		return 1
	case SeverityInformational:
		return 0
	default:
		return -1
	}
}

func (s Severity) Known() bool {
	return s.Rank() >= 0
}

// AtLeast reports whether s is as severe as other. Unknown severities never are.
func (s Severity) AtLeast(other Severity) bool {
	return s.Known() && s.Rank() >= other.Rank()
}

func (s Severity) String() string {
	return string(s)
}

// ParseSeverity normalises upstream severity labels. Labels it does not
// recognise are kept verbatim so lookups can fall back to neutral defaults.
func ParseSeverity(raw string) Severity {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "critical", "severe", "blocker":
		return SeverityCritical
	case "serious", "high", "major":
		return SeveritySerious
	case "moderate", "medium", "warning":
		return SeverityModerate
	case "minor", "low":
		return SeverityMinor
	case "informational", "info", "information", "note":
		return SeverityInformational
	default:
		return Severity(raw)
	}
}
