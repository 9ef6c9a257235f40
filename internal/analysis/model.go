// Package analysis is the ingestion boundary for findings produced by the
// upstream document-extraction service. It types the results object, checks
// the one hard contract (insights must be present) and normalises labels so
// the calculators never have to cope with untyped input.
package analysis

import (
	"math"
	"strings"

	"github.com/MOYARU/tenancyscore/internal/taxonomy"
)

// Finding is one detected issue in the agreement.
type Finding struct {
	ViolationType taxonomy.ViolationType `json:"violation_type"`
	Severity      taxonomy.Severity      `json:"severity"`
	Title         string                 `json:"title,omitempty"`
	Content       string                 `json:"content,omitempty"`
	EvidenceText  string                 `json:"evidence_text,omitempty"`
	LegalBasis    []string               `json:"legal_basis,omitempty"`
}

type InsightKind string

const (
	InsightWarning     InsightKind = "warning"
	InsightObservation InsightKind = "observation"
	InsightPositive    InsightKind = "positive"
)

// Insight is a finding that was not escalated to a violation.
type Insight struct {
	Finding
	Kind InsightKind `json:"kind,omitempty"`
}

func (i Insight) IsWarning() bool {
	return strings.EqualFold(strings.TrimSpace(string(i.Kind)), string(InsightWarning))
}

// Violation is a confirmed finding with remediation guidance and an optional
// monetary estimate. A nil FinancialImpact means no amount was given.
type Violation struct {
	Finding
	Remediation     string   `json:"remediation,omitempty"`
	FinancialImpact *float64 `json:"financial_impact,omitempty"`
}

// Amount returns the explicit financial impact, or false when none was given
// or it is not a finite number. Negative amounts are reported as zero.
func (v Violation) Amount() (float64, bool) {
	if v.FinancialImpact == nil || math.IsNaN(*v.FinancialImpact) || math.IsInf(*v.FinancialImpact, 0) {
		return 0, false
	}
	if *v.FinancialImpact < 0 {
		return 0, true
	}
	return *v.FinancialImpact, true
}

type Recommendation struct {
	Title    string `json:"title"`
	Detail   string `json:"detail,omitempty"`
	Priority string `json:"priority,omitempty"`
}

type PropertyDetails struct {
	Address      string `json:"address,omitempty"`
	PropertyType string `json:"property_type,omitempty"`
	Bedrooms     int    `json:"bedrooms,omitempty"`
	Furnished    *bool  `json:"furnished,omitempty"`
}

type FinancialTerms struct {
	MonthlyRent      string   `json:"monthly_rent,omitempty"`
	Deposit          string   `json:"deposit,omitempty"`
	PaymentFrequency string   `json:"payment_frequency,omitempty"`
	Fees             []string `json:"fees,omitempty"`
}

type TenancyTerms struct {
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
	Term         string `json:"term,omitempty"`
	NoticePeriod string `json:"notice_period,omitempty"`
	BreakClause  string `json:"break_clause,omitempty"`
}

// Result is the analysis results object. Only Insights is mandatory, and it
// may be empty. Violations distinguishes "absent" (nil) from "none found".
type Result struct {
	Summary         string                `json:"summary,omitempty"`
	DocumentType    taxonomy.DocumentType `json:"document_type,omitempty"`
	Insights        []Insight             `json:"insights"`
	Violations      []Violation           `json:"violations,omitempty"`
	Recommendations []Recommendation      `json:"recommendations,omitempty"`
	PropertyDetails *PropertyDetails      `json:"property_details,omitempty"`
	FinancialTerms  *FinancialTerms       `json:"financial_terms,omitempty"`
	TenancyTerms    *TenancyTerms         `json:"tenancy_terms,omitempty"`
	RiskAssessment  string                `json:"risk_assessment,omitempty"`
	ImpactAnalysis  string                `json:"impact_analysis,omitempty"`
	ComplianceScore *int                  `json:"compliance_score,omitempty"`
}

type Depth string

const (
	DepthBasic         Depth = "basic"
	DepthStandard      Depth = "standard"
	DepthComprehensive Depth = "comprehensive"
	DepthExpert        Depth = "expert"
)

// Thorough reports whether the depth demands risk and impact sections.
func (d Depth) Thorough() bool {
	switch Depth(strings.ToLower(string(d))) {
	case DepthComprehensive, DepthExpert:
		return true
	default:
		return false
	}
}

type Experience string

const (
	ExperienceFirstTime   Experience = "first_time"
	ExperienceExperienced Experience = "experienced"
)

type TenantProfile struct {
	VulnerablePerson bool       `json:"vulnerable_person,omitempty"`
	Experience       Experience `json:"experience,omitempty"`
}

func (p *TenantProfile) Vulnerable() bool {
	return p != nil && p.VulnerablePerson
}

func (p *TenantProfile) FirstTime() bool {
	return p != nil && strings.EqualFold(string(p.Experience), string(ExperienceFirstTime))
}

// Context describes how the analysis was run and who it is for.
type Context struct {
	AnalysisDepth           Depth                    `json:"analysis_depth,omitempty"`
	TenantProfile           *TenantProfile           `json:"tenant_profile,omitempty"`
	RequiredSpecializations []string                 `json:"required_specializations,omitempty"`
	ContextFactors          []taxonomy.ContextFactor `json:"context_factors,omitempty"`
}

// Factors returns the explicit context factors, deduplicated, in first-seen
// order. The tenant profile is not folded in: it only scales practical impact.
func (c Context) Factors() []taxonomy.ContextFactor {
	out := make([]taxonomy.ContextFactor, 0, len(c.ContextFactors))
	seen := make(map[taxonomy.ContextFactor]struct{}, len(c.ContextFactors))
	for _, f := range c.ContextFactors {
		if f == "" {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
