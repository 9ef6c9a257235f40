package report

import "testing"

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"email", "Write to landlord@example.co.uk today", "Write to <redacted> today"},
		{"mobile", "Call 07700 900123 for repairs", "Call <redacted> for repairs"},
		{"international", "Phone +44 (0)20 7946 0018", "Phone <redacted>"},
		{"landline", "Office 020 7946 0018.", "Office <redacted>."},
		{"sort code", "Sort code 20-00-00", "Sort code <redacted>"},
		{"account number", "Account number: 12345678", "Account number: <redacted>"},
		{"money untouched", "A fee of £1,250 is payable", "A fee of £1,250 is payable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeText(tt.in); got != tt.want {
				t.Fatalf("SanitizeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewSanitizerExtraPatterns(t *testing.T) {
	s, err := NewSanitizer([]string{`REF-\d+`})
	if err != nil {
		t.Fatalf("NewSanitizer() error: %v", err)
	}
	if got := s.Text("Tenant REF-0042, a@b.io"); got != "Tenant <redacted>, <redacted>" {
		t.Fatalf("unexpected sanitized text: %q", got)
	}
	if _, err := NewSanitizer([]string{"("}); err == nil {
		t.Fatalf("expected error for invalid pattern")
	}
}
