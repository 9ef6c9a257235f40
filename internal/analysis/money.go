package analysis

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultMonthlyRent is used when the rent cannot be read from the terms.
const DefaultMonthlyRent = 1000.0

var (
	reMoney  = regexp.MustCompile(`(\d{1,3}(?:,\d{3})+|\d+)(?:\.(\d{1,2}))?`)
	reWeekly = regexp.MustCompile(`(?i)(per\s+week|weekly|\bpw\b|p\.w\.)`)
)

// ParseMoney extracts the first amount in s, ignoring currency symbols and
// thousands separators.
func ParseMoney(s string) (float64, bool) {
	m := reMoney.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	num := strings.ReplaceAll(m[1], ",", "")
	if m[2] != "" {
		num += "." + m[2]
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// MonthlyRentAmount reads the rent from the financial terms. Weekly figures are
// converted to a calendar month. Missing or unparsable rent, and zero
// amounts, fall back to DefaultMonthlyRent.
func (t *FinancialTerms) MonthlyRentAmount() float64 {
	if t == nil {
		return DefaultMonthlyRent
	}
	v, ok := ParseMoney(t.MonthlyRent)
	if !ok || v <= 0 {
		return DefaultMonthlyRent
	}
	if reWeekly.MatchString(t.MonthlyRent) || strings.EqualFold(strings.TrimSpace(t.PaymentFrequency), "weekly") {
		v = v * 52 / 12
	}
	return v
}
