// Package metrics exposes Prometheus collectors for assessments. A nil
// *Metrics is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// Assessments by outcome: ok, invalid, error
	Assessments *prometheus.CounterVec

	AssessLatency prometheus.Histogram

	// Distribution of final compliance and overall confidence scores
	ComplianceScore prometheus.Histogram
	Confidence      prometheus.Histogram

	// Violations seen by recommended severity
	Violations *prometheus.CounterVec
}

var scoreBuckets = prometheus.LinearBuckets(0, 10, 11)

// New registers the collectors with reg, or the default registerer when reg
// is nil.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		Assessments: f.NewCounterVec(prometheus.CounterOpts{
			Name: "tenancyscore_assessments_total",
			Help: "Assessments by outcome",
		}, []string{"outcome"}),

		AssessLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "tenancyscore_assess_duration_seconds",
			Help:    "Duration of a single assessment",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),

		ComplianceScore: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "tenancyscore_compliance_final_score",
			Help:    "Final compliance scores produced",
			Buckets: scoreBuckets,
		}),

		Confidence: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "tenancyscore_confidence_overall",
			Help:    "Overall confidence of assessed analyses",
			Buckets: scoreBuckets,
		}),

		Violations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "tenancyscore_violations_total",
			Help: "Violations assessed by recommended severity",
		}, []string{"severity"}),
	}
}

func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.Assessments.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) ObserveAssessLatency(d time.Duration) {
	if m != nil {
		m.AssessLatency.Observe(d.Seconds())
	}
}

// ObserveScores records one assessment's headline scores.
func (m *Metrics) ObserveScores(finalScore, confidence int) {
	if m != nil {
		m.ComplianceScore.Observe(float64(finalScore))
		m.Confidence.Observe(float64(confidence))
	}
}

func (m *Metrics) IncrementViolation(severity string) {
	if m != nil {
		m.Violations.WithLabelValues(severity).Inc()
	}
}
