package impact

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/MOYARU/tenancyscore/internal/analysis"
	"github.com/MOYARU/tenancyscore/internal/taxonomy"
	"github.com/MOYARU/tenancyscore/internal/weights"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func violation(t taxonomy.ViolationType, s taxonomy.Severity) analysis.Violation {
	return analysis.Violation{Finding: analysis.Finding{ViolationType: t, Severity: s}}
}

func withAmount(v analysis.Violation, amount float64) analysis.Violation {
	v.FinancialImpact = &amount
	return v
}

func TestComputeFinancialBuckets(t *testing.T) {
	got := ComputeFinancial([]analysis.Violation{
		withAmount(violation(taxonomy.ProhibitedFees, taxonomy.SeverityModerate), 300),
		withAmount(violation(taxonomy.UnfairTerms, taxonomy.SeverityMinor), 50),
		withAmount(violation(taxonomy.GasSafety, taxonomy.SeveritySerious), 120),
		violation(taxonomy.Discrimination, taxonomy.SeverityCritical),
		violation(taxonomy.NoticePeriod, taxonomy.SeverityModerate),
	}, analysis.DefaultMonthlyRent)

	assert.Equal(t, 420.0, got.ImmediateRisk)
	assert.Equal(t, 600.0, got.OngoingRisk)
	assert.Equal(t, 1020.0, got.TotalExposure)

	want := map[string]float64{
		"prohibited_fees":  300,
		"unfair_terms":     50,
		"gas_safety":       120,
		CategoryImmediate:  420,
		CategoryOngoing:    600,
		CategoryLegalCosts: 500,
	}
	if diff := cmp.Diff(want, got.RiskCategories); diff != "" {
		t.Errorf("risk categories mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeFinancialImputesOngoingRisk(t *testing.T) {
	vs := []analysis.Violation{violation(taxonomy.RepairResponsibility, taxonomy.SeverityModerate)}
	res := &analysis.Result{FinancialTerms: &analysis.FinancialTerms{MonthlyRent: "£900 pcm"}}

	got := Compute(vs, nil, res, analysis.Context{}, nil).Financial
	assert.InDelta(t, 90, got.OngoingRisk, 0.001)
	assert.InDelta(t, 90, got.TotalExposure, 0.001)

	fallback := Compute(append(vs, vs...), nil, nil, analysis.Context{}, nil).Financial
	assert.InDelta(t, 200, fallback.OngoingRisk, 0.001)
}

func TestComputeFinancialNegativeAmountIsZero(t *testing.T) {
	got := ComputeFinancial([]analysis.Violation{
		withAmount(violation(taxonomy.DepositViolation, taxonomy.SeverityCritical), -50),
	}, 1000)
	assert.Equal(t, 0.0, got.ImmediateRisk)
	assert.Equal(t, 0.0, got.RiskCategories[CategoryLegalCosts])
}

func TestComputeFinancialHugeAmountsStayFinite(t *testing.T) {
	got := ComputeFinancial([]analysis.Violation{
		withAmount(violation(taxonomy.UnfairTerms, taxonomy.SeveritySerious), 1e308),
		withAmount(violation(taxonomy.ProhibitedFees, taxonomy.SeveritySerious), 1e308),
		withAmount(violation(taxonomy.DepositViolation, taxonomy.SeveritySerious), 1e308),
	}, 1e308)

	assert.Equal(t, MaxExposure, got.OngoingRisk)
	assert.Equal(t, MaxExposure, got.ImmediateRisk)
	assert.Equal(t, MaxExposure, got.TotalExposure)
	for k, v := range got.RiskCategories {
		assert.LessOrEqual(t, v, MaxExposure, k)
	}
	_, err := json.Marshal(got)
	assert.NoError(t, err)
}

func TestComputeFinancialNonFiniteAmountIsAbsent(t *testing.T) {
	got := ComputeFinancial([]analysis.Violation{
		withAmount(violation(taxonomy.ProhibitedFees, taxonomy.SeveritySerious), math.Inf(1)),
		withAmount(violation(taxonomy.UnfairTerms, taxonomy.SeverityMinor), math.NaN()),
	}, 1000)

	assert.Equal(t, 0.0, got.ImmediateRisk)
	assert.Equal(t, 200.0, got.OngoingRisk)
	assert.Equal(t, 500.0, got.RiskCategories[CategoryLegalCosts])
	assert.NotContains(t, got.RiskCategories, "prohibited_fees")
}

func TestComputeEmpty(t *testing.T) {
	got := Compute(nil, nil, nil, analysis.Context{}, nil)
	assert.Equal(t, 0.0, got.Financial.TotalExposure)
	assert.Len(t, got.Financial.RiskCategories, 3)
	assert.NotNil(t, got.Legal.RightsAtRisk)
	assert.Empty(t, got.Legal.RightsAtRisk)
	assert.Equal(t, Practical{}, got.Practical)
}

func TestComputeLegalEscalation(t *testing.T) {
	two := []analysis.Violation{
		violation(taxonomy.GasSafety, taxonomy.SeverityCritical),
		violation(taxonomy.GasSafety, taxonomy.SeverityCritical),
	}

	perViolation := ComputeLegal(two, nil)
	assert.Equal(t, 90, perViolation.EnforcementRisk)
	assert.Equal(t, 45, perViolation.LitigationRisk)
	assert.Equal(t, 90, perViolation.RegulatoryRisk)

	compounding := weights.New(weights.WithEscalation(weights.EscalationCompounding))
	legacy := ComputeLegal(two, compounding)
	assert.Equal(t, 100, legacy.EnforcementRisk)
	assert.Equal(t, 56, legacy.LitigationRisk)
	assert.Equal(t, 100, legacy.RegulatoryRisk)
}

func TestCompoundingDependsOnOrder(t *testing.T) {
	minor := violation(taxonomy.GasSafety, taxonomy.SeverityMinor)
	critical := violation(taxonomy.GasSafety, taxonomy.SeverityCritical)
	compounding := weights.New(weights.WithEscalation(weights.EscalationCompounding))

	assert.Equal(t, 72, ComputeLegal([]analysis.Violation{minor, critical}, compounding).EnforcementRisk)
	assert.Equal(t, 45, ComputeLegal([]analysis.Violation{critical, minor}, compounding).EnforcementRisk)

	assert.Equal(t, 63, ComputeLegal([]analysis.Violation{minor, critical}, nil).EnforcementRisk)
	assert.Equal(t, 63, ComputeLegal([]analysis.Violation{critical, minor}, nil).EnforcementRisk)
}

func TestRightsAtRiskSortedAndDeduplicated(t *testing.T) {
	got := ComputeLegal([]analysis.Violation{
		violation(taxonomy.GasSafety, taxonomy.SeverityMinor),
		violation(taxonomy.DepositViolation, taxonomy.SeverityMinor),
		violation(taxonomy.DepositViolation, taxonomy.SeverityMinor),
		violation("mystery_clause", taxonomy.SeverityMinor),
	}, nil)
	assert.Equal(t, []string{"Deposit protection rights", "Right to gas safety checks"}, got.RightsAtRisk)
}

func TestComputePractical(t *testing.T) {
	repair := []analysis.Violation{violation(taxonomy.RepairResponsibility, taxonomy.SeveritySerious)}

	assert.Equal(t, Practical{LivingConditions: 30, DayToDayLiving: 18, FutureOptions: 6},
		ComputePractical(repair, nil, nil, nil))

	vulnerable := &analysis.TenantProfile{VulnerablePerson: true}
	assert.Equal(t, Practical{LivingConditions: 39, DayToDayLiving: 22, FutureOptions: 6},
		ComputePractical(repair, nil, vulnerable, nil))

	firstTime := &analysis.TenantProfile{Experience: analysis.ExperienceFirstTime}
	notice := []analysis.Violation{violation(taxonomy.NoticePeriod, taxonomy.SeverityModerate)}
	assert.Equal(t, 36, ComputePractical(notice, nil, firstTime, nil).SecurityOfTenure)
}

func TestComputePracticalWarnings(t *testing.T) {
	fire := analysis.Finding{ViolationType: taxonomy.FireSafety, Severity: taxonomy.SeverityCritical}
	insights := []analysis.Insight{
		{Finding: fire, Kind: analysis.InsightWarning},
		{Finding: fire, Kind: analysis.InsightObservation},
	}
	got := ComputePractical(nil, insights, nil, nil)
	assert.Equal(t, 9, got.LivingConditions)
	assert.Equal(t, 4, got.DayToDayLiving)
}

func TestComputePracticalClamped(t *testing.T) {
	var vs []analysis.Violation
	for i := 0; i < 5; i++ {
		vs = append(vs, violation(taxonomy.IllegalEviction, taxonomy.SeverityCritical))
	}
	got := ComputePractical(vs, nil, nil, nil)
	assert.Equal(t, 100, got.SecurityOfTenure)
	assert.Equal(t, 100, got.LivingConditions)
}
