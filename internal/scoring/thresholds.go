package scoring

import (
	"github.com/MOYARU/tenancyscore/internal/taxonomy"
	"github.com/MOYARU/tenancyscore/internal/weights"
)

// Base cut points and the floors calibration may not push them below.
const (
	BaseCritical = 85.0
	BaseSerious  = 70.0
	BaseModerate = 40.0
	BaseMinor    = 15.0

	FloorCritical = 75.0
	FloorSerious  = 60.0
	FloorModerate = 30.0
	FloorMinor    = 10.0

	maxAdjustment = 0.2
)

// Thresholds are the minimum scores for each severity classification.
type Thresholds struct {
	Critical float64 `json:"critical"`
	Serious  float64 `json:"serious"`
	Moderate float64 `json:"moderate"`
	Minor    float64 `json:"minor"`
}

// CalibrateThresholds derives severity cut points from the same bias and
// conservatism settings the scorer uses. A pro-tenant or conservative
// configuration lowers every cut point by the same proportion (at most 20%).
func CalibrateThresholds(cfg *weights.Config) Thresholds {
	adj := (cfg.TenantProtectionBias()-50)/50 + (cfg.ConservatismFactor()-50)/50
	adj = Clamp(adj*0.1, -maxAdjustment, maxAdjustment)

	shift := func(base, floor float64) float64 {
		return Round2(Clamp(base*(1-adj), floor, 100))
	}

	return Thresholds{
		Critical: shift(BaseCritical, FloorCritical),
		Serious:  shift(BaseSerious, FloorSerious),
		Moderate: shift(BaseModerate, FloorModerate),
		Minor:    shift(BaseMinor, FloorMinor),
	}
}

// RecommendedSeverity classifies a raw violation score.
func (t Thresholds) RecommendedSeverity(score float64) taxonomy.Severity {
	switch {
	case score >= t.Critical:
		return taxonomy.SeverityCritical
	case score >= t.Serious:
		return taxonomy.SeveritySerious
	case score >= t.Moderate:
		return taxonomy.SeverityModerate
	case score >= t.Minor:
		return taxonomy.SeverityMinor
	default:
		return taxonomy.SeverityInformational
	}
}

// RecommendedSeverity calibrates thresholds from cfg and classifies score.
func RecommendedSeverity(score float64, cfg *weights.Config) taxonomy.Severity {
	return CalibrateThresholds(cfg).RecommendedSeverity(score)
}
