package analysis

import (
	"errors"
	"strings"
	"testing"

	"github.com/MOYARU/tenancyscore/internal/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRequestRequiresInsights(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"missing analysis", `{"document_text":"x"}`, ErrMissingAnalysis},
		{"missing insights", `{"analysis":{"summary":"s"}}`, ErrMissingInsights},
		{"null insights", `{"analysis":{"insights":null}}`, ErrMissingInsights},
		{"empty insights", `{"analysis":{"insights":[]}}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRequest(strings.NewReader(tt.body))
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecodeRequestMalformedJSON(t *testing.T) {
	_, err := DecodeRequest(strings.NewReader(`{"analysis":`))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrMissingInsights))
}

func TestDecodeNormalizesLabels(t *testing.T) {
	body := `{"insights":[{"violation_type":" Prohibited_Fees ","severity":"HIGH","kind":"Warning"}],
	"violations":[{"violation_type":"deposit_violation","severity":"medium","financial_impact":-20}]}`
	res, err := DecodeResult(strings.NewReader(body))
	require.NoError(t, err)

	require.Len(t, res.Insights, 1)
	assert.Equal(t, taxonomy.ProhibitedFees, res.Insights[0].ViolationType)
	assert.Equal(t, taxonomy.SeveritySerious, res.Insights[0].Severity)
	assert.True(t, res.Insights[0].IsWarning())

	require.Len(t, res.Violations, 1)
	amount, ok := res.Violations[0].Amount()
	assert.True(t, ok)
	assert.Equal(t, 0.0, amount, "negative amounts clamp to zero")
}

func TestContextFactorsIgnoreProfile(t *testing.T) {
	ctx := Context{
		ContextFactors: []taxonomy.ContextFactor{taxonomy.SocialHousing, "", taxonomy.SocialHousing},
		TenantProfile:  &TenantProfile{VulnerablePerson: true, Experience: "FIRST_TIME"},
	}
	assert.Equal(t, []taxonomy.ContextFactor{taxonomy.SocialHousing}, ctx.Factors())
	assert.True(t, ctx.TenantProfile.Vulnerable())
	assert.True(t, ctx.TenantProfile.FirstTime())
	assert.Empty(t, Context{}.Factors())
}

func TestMonthlyRentAmount(t *testing.T) {
	tests := []struct {
		name  string
		terms *FinancialTerms
		want  float64
	}{
		{"nil terms", nil, DefaultMonthlyRent},
		{"pcm with separators", &FinancialTerms{MonthlyRent: "£1,250.50 pcm"}, 1250.50},
		{"weekly", &FinancialTerms{MonthlyRent: "£300 per week"}, 1300},
		{"weekly frequency", &FinancialTerms{MonthlyRent: "300", PaymentFrequency: "Weekly"}, 1300},
		{"garbage", &FinancialTerms{MonthlyRent: "to be agreed"}, DefaultMonthlyRent},
		{"zero", &FinancialTerms{MonthlyRent: "£0"}, DefaultMonthlyRent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.terms.MonthlyRentAmount(), 1e-9)
		})
	}
}

func TestTextFromHTML(t *testing.T) {
	src := `<html><head><style>p{color:red}</style><script>var x = 1;</script></head>
<body><h1>TENANCY AGREEMENT</h1><p>1. The   Tenant shall pay rent of &pound;900.</p><ul><li>Deposit: &pound;1,000</li></ul></body></html>`
	got := TextFromHTML(src)
	want := "TENANCY AGREEMENT\n1. The Tenant shall pay rent of £900.\nDeposit: £1,000"
	assert.Equal(t, want, got)
}

func TestRequestTextPrefersPlainText(t *testing.T) {
	r := Request{DocumentText: "plain", DocumentHTML: "<p>html</p>"}
	assert.Equal(t, "plain", r.Text())
	r.DocumentText = "  "
	assert.Equal(t, "html", r.Text())
}

func TestDepthThorough(t *testing.T) {
	assert.True(t, DepthExpert.Thorough())
	assert.True(t, Depth("Comprehensive").Thorough())
	assert.False(t, DepthStandard.Thorough())
	assert.False(t, Depth("").Thorough())
}
