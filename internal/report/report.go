// Package report combines the compliance, confidence and impact calculators
// into one assessment per analysis request.
package report

import (
	"slices"
	"time"

	"github.com/MOYARU/tenancyscore/internal/analysis"
	"github.com/MOYARU/tenancyscore/internal/confidence"
	"github.com/MOYARU/tenancyscore/internal/impact"
	"github.com/MOYARU/tenancyscore/internal/scoring"
	"github.com/MOYARU/tenancyscore/internal/taxonomy"
	"github.com/MOYARU/tenancyscore/internal/version"
	"github.com/MOYARU/tenancyscore/internal/weights"
)

// ViolationEntry is one violation as scored for the report.
type ViolationEntry struct {
	ViolationType       taxonomy.ViolationType `json:"violation_type"`
	Severity            taxonomy.Severity      `json:"severity"`
	Title               string                 `json:"title,omitempty"`
	Score               float64                `json:"score"`
	RecommendedSeverity taxonomy.Severity      `json:"recommended_severity"`
	EvidenceQuality     int                    `json:"evidence_quality"`
	Evidence            string                 `json:"evidence,omitempty"`
	Remediation         string                 `json:"remediation,omitempty"`
	LegalAreas          []taxonomy.LegalArea   `json:"legal_areas,omitempty"`
}

// Metadata is kept apart from the numeric results, which depend only on the
// request and the config.
type Metadata struct {
	GeneratedAt   time.Time             `json:"generated_at"`
	EngineVersion string                `json:"engine_version"`
	DocumentType  taxonomy.DocumentType `json:"document_type,omitempty"`
}

type Assessment struct {
	Compliance scoring.ComplianceScoring `json:"compliance"`
	Confidence confidence.Metrics        `json:"confidence"`
	Impact     impact.Assessment         `json:"impact"`
	Violations []ViolationEntry          `json:"violations"`
	Thresholds scoring.Thresholds        `json:"thresholds"`
	Metadata   Metadata                  `json:"metadata"`
}

type options struct {
	sanitizer *Sanitizer
	now       func() time.Time
}

type Option func(*options)

// WithSanitizer replaces the default evidence sanitizer.
func WithSanitizer(s *Sanitizer) Option {
	return func(o *options) {
		if s != nil {
			o.sanitizer = s
		}
	}
}

// WithClock sets the source of Metadata.GeneratedAt.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// Assess validates req and runs every calculator over it. The request is not
// modified.
func Assess(req analysis.Request, cfg *weights.Config, opts ...Option) (*Assessment, error) {
	o := options{sanitizer: defaultSanitizer, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	res := *req.Analysis
	res.Insights = slices.Clone(res.Insights)
	res.Violations = slices.Clone(res.Violations)
	res.Normalize()

	factors := req.Context.Factors()
	compliance := scoring.Compliance(res.Violations, res.Insights, factors, cfg)

	final := compliance.FinalScore
	res.ComplianceScore = &final
	metrics := confidence.Compute(req.Text(), &res, req.Context, cfg)

	thresholds := scoring.CalibrateThresholds(cfg)

	entries := make([]ViolationEntry, 0, len(res.Violations))
	for _, v := range res.Violations {
		score := scoring.Score(v.ViolationType, v.Severity, factors, cfg)
		entries = append(entries, ViolationEntry{
			ViolationType:       v.ViolationType,
			Severity:            v.Severity,
			Title:               v.Title,
			Score:               score,
			RecommendedSeverity: thresholds.RecommendedSeverity(score),
			EvidenceQuality:     ScoreEvidenceQuality(v),
			Evidence:            o.sanitizer.Text(v.EvidenceText),
			Remediation:         v.Remediation,
			LegalAreas:          taxonomy.AreasFor(v.ViolationType),
		})
	}

	return &Assessment{
		Compliance: compliance,
		Confidence: metrics,
		Impact:     impact.Compute(res.Violations, res.Insights, &res, req.Context, cfg),
		Violations: entries,
		Thresholds: thresholds,
		Metadata: Metadata{
			GeneratedAt:   o.now().UTC(),
			EngineVersion: version.Engine(),
			DocumentType:  res.DocumentType,
		},
	}, nil
}
