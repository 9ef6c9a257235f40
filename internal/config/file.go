// Package config loads the optional ".tenancy.yaml" overlay onto the default
// scoring weights and reads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MOYARU/tenancyscore/internal/taxonomy"
	"github.com/MOYARU/tenancyscore/internal/weights"
)

// DefaultPath is the overlay file looked up when no path is given.
const DefaultPath = ".tenancy.yaml"

// ErrInvalidConfig wraps every out-of-range override.
var ErrInvalidConfig = errors.New("invalid scoring config")

// File is the on-disk shape of the overlay. Absent keys keep their defaults.
type File struct {
	TenantProtectionBias *float64           `yaml:"tenant_protection_bias"`
	ConservatismFactor   *float64           `yaml:"conservatism_factor"`
	ImpactEscalation     string             `yaml:"impact_escalation"`
	ViolationTypeWeights map[string]float64 `yaml:"violation_type_weights"`
	SeverityWeights      map[string]float64 `yaml:"severity_weights"`
	AreaWeights          map[string]float64 `yaml:"area_weights"`
	ContextModifiers     map[string]float64 `yaml:"context_modifiers"`
	ImpactSeverity       map[string]float64 `yaml:"impact_severity"`
	RedactionPatterns    []string           `yaml:"redaction_patterns"`
}

// ReadFile parses the overlay at path. A missing file yields an empty File.
func ReadFile(path string) (File, error) {
	var f File
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return f, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("parse %s: %w", path, err)
	}
	return f, nil
}

// LoadScoringConfig overlays the file at path onto the default weights.
func LoadScoringConfig(path string) (*weights.Config, error) {
	f, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return f.ScoringConfig()
}

// ScoringConfig validates the overrides and builds a new config from them.
func (f File) ScoringConfig() (*weights.Config, error) {
	var opts []weights.Option

	if f.TenantProtectionBias != nil {
		if err := percent("tenant_protection_bias", *f.TenantProtectionBias); err != nil {
			return nil, err
		}
		opts = append(opts, weights.WithTenantProtectionBias(*f.TenantProtectionBias))
	}
	if f.ConservatismFactor != nil {
		if err := percent("conservatism_factor", *f.ConservatismFactor); err != nil {
			return nil, err
		}
		opts = append(opts, weights.WithConservatismFactor(*f.ConservatismFactor))
	}
	if mode := strings.TrimSpace(strings.ToLower(f.ImpactEscalation)); mode != "" {
		switch e := weights.Escalation(mode); e {
		case weights.EscalationPerViolation, weights.EscalationCompounding:
			opts = append(opts, weights.WithEscalation(e))
		default:
			return nil, fmt.Errorf("%w: impact_escalation %q", ErrInvalidConfig, f.ImpactEscalation)
		}
	}

	for k, w := range f.ViolationTypeWeights {
		if !(w >= 0) {
			return nil, fmt.Errorf("%w: violation_type_weights.%s must be a non-negative number", ErrInvalidConfig, k)
		}
		opts = append(opts, weights.WithTypeWeight(taxonomy.ViolationType(key(k)), w))
	}
	for k, w := range f.SeverityWeights {
		if !(w >= 0) {
			return nil, fmt.Errorf("%w: severity_weights.%s must be a non-negative number", ErrInvalidConfig, k)
		}
		opts = append(opts, weights.WithSeverityWeight(taxonomy.ParseSeverity(k), w))
	}
	for k, w := range f.AreaWeights {
		if !(w >= 0) {
			return nil, fmt.Errorf("%w: area_weights.%s must be a non-negative number", ErrInvalidConfig, k)
		}
		opts = append(opts, weights.WithAreaWeight(taxonomy.LegalArea(key(k)), w))
	}
	for k, m := range f.ContextModifiers {
		if !(m >= taxonomy.MinContextModifier && m <= taxonomy.MaxContextModifier) {
			return nil, fmt.Errorf("%w: context_modifiers.%s %v outside %v..%v",
				ErrInvalidConfig, k, m, taxonomy.MinContextModifier, taxonomy.MaxContextModifier)
		}
		opts = append(opts, weights.WithContextModifier(taxonomy.ContextFactor(key(k)), m))
	}
	for k, m := range f.ImpactSeverity {
		if !(m >= 0) {
			return nil, fmt.Errorf("%w: impact_severity.%s must be a non-negative number", ErrInvalidConfig, k)
		}
		opts = append(opts, weights.WithImpactSeverity(taxonomy.ParseSeverity(k), m))
	}

	cfg := weights.New(opts...)
	if err := severityOrder(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func percent(name string, v float64) error {
	if !(v >= 0 && v <= 100) {
		return fmt.Errorf("%w: %s %v outside 0..100", ErrInvalidConfig, name, v)
	}
	return nil
}

// severityOrder keeps the scorer monotone: a more severe class never weighs
// less than a milder one.
func severityOrder(cfg *weights.Config) error {
	for i := 1; i < len(taxonomy.Severities); i++ {
		hi, lo := taxonomy.Severities[i-1], taxonomy.Severities[i]
		if cfg.SeverityWeight(hi) < cfg.SeverityWeight(lo) {
			return fmt.Errorf("%w: severity_weights.%s is below %s", ErrInvalidConfig, hi, lo)
		}
	}
	return nil
}

func key(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}
