// Package weights defines the weighted scoring configuration threaded through
// every calculation. A Config is immutable once built: options only apply
// while a new value is being constructed, and lookups are total functions
// that fall back to neutral defaults for values they do not know.
package weights

import (
	"maps"

	"github.com/MOYARU/tenancyscore/internal/taxonomy"
)

// Escalation selects how impact severity multipliers combine.
type Escalation string

const (
	// EscalationPerViolation scales each violation's own contribution.
	EscalationPerViolation Escalation = "per_violation"
	// EscalationCompounding multiplies the running totals after every
	// violation, in input order. Matches the legacy report engine.
	EscalationCompounding Escalation = "compounding"
)

const (
	DefaultTenantProtectionBias = 70
	DefaultConservatismFactor   = 70

	FallbackTypeWeight = 50
	NeutralMultiplier  = 1.0
)

// DefaultSeverityWeights are the ViolationScorer multipliers.
var DefaultSeverityWeights = map[taxonomy.Severity]float64{
	taxonomy.SeverityCritical:      1.5,
	taxonomy.SeveritySerious:       1.2,
	taxonomy.SeverityModerate:      1.0,
	taxonomy.SeverityMinor:         0.7,
	taxonomy.SeverityInformational: 0.3,
}

// DefaultImpactSeverity are the multipliers applied by impact assessment.
var DefaultImpactSeverity = map[taxonomy.Severity]float64{
	taxonomy.SeverityCritical:      1.5,
	taxonomy.SeveritySerious:       1.2,
	taxonomy.SeverityModerate:      1.0,
	taxonomy.SeverityMinor:         0.6,
	taxonomy.SeverityInformational: 0.3,
}

type Config struct {
	typeWeights          map[taxonomy.ViolationType]float64
	severityWeights      map[taxonomy.Severity]float64
	areaWeights          map[taxonomy.LegalArea]float64
	contextModifiers     map[taxonomy.ContextFactor]float64
	impactSeverity       map[taxonomy.Severity]float64
	tenantProtectionBias float64
	conservatismFactor   float64
	escalation           Escalation
}

// Option adjusts a Config under construction.
type Option func(*Config)

var defaultConfig = New()

// Default returns the canonical configuration. It is shared and must be
// treated as read-only; derive variants with With.
func Default() *Config {
	return defaultConfig
}

// New builds a Config from the package defaults and applies opts in order.
func New(opts ...Option) *Config {
	c := &Config{
		typeWeights:          maps.Clone(taxonomy.DefaultTypeWeights),
		severityWeights:      maps.Clone(DefaultSeverityWeights),
		areaWeights:          maps.Clone(taxonomy.DefaultAreaWeights),
		contextModifiers:     maps.Clone(taxonomy.DefaultContextModifiers),
		impactSeverity:       maps.Clone(DefaultImpactSeverity),
		tenantProtectionBias: DefaultTenantProtectionBias,
		conservatismFactor:   DefaultConservatismFactor,
		escalation:           EscalationPerViolation,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// With returns a copy of c with opts applied. c itself is left untouched.
func (c *Config) With(opts ...Option) *Config {
	src := c.orDefault()
	cp := &Config{
		typeWeights:          maps.Clone(src.typeWeights),
		severityWeights:      maps.Clone(src.severityWeights),
		areaWeights:          maps.Clone(src.areaWeights),
		contextModifiers:     maps.Clone(src.contextModifiers),
		impactSeverity:       maps.Clone(src.impactSeverity),
		tenantProtectionBias: src.tenantProtectionBias,
		conservatismFactor:   src.conservatismFactor,
		escalation:           src.escalation,
	}
	for _, opt := range opts {
		opt(cp)
	}
	return cp
}

func WithTypeWeight(t taxonomy.ViolationType, w float64) Option {
	return func(c *Config) { c.typeWeights[t] = w }
}

func WithSeverityWeight(s taxonomy.Severity, w float64) Option {
	return func(c *Config) { c.severityWeights[s] = w }
}

func WithAreaWeight(a taxonomy.LegalArea, w float64) Option {
	return func(c *Config) { c.areaWeights[a] = w }
}

func WithContextModifier(f taxonomy.ContextFactor, m float64) Option {
	return func(c *Config) { c.contextModifiers[f] = m }
}

// WithoutContextModifier removes a factor so it no longer affects scores.
func WithoutContextModifier(f taxonomy.ContextFactor) Option {
	return func(c *Config) { delete(c.contextModifiers, f) }
}

func WithImpactSeverity(s taxonomy.Severity, m float64) Option {
	return func(c *Config) { c.impactSeverity[s] = m }
}

func WithTenantProtectionBias(bias float64) Option {
	return func(c *Config) { c.tenantProtectionBias = bias }
}

func WithConservatismFactor(f float64) Option {
	return func(c *Config) { c.conservatismFactor = f }
}

// WithEscalation sets the impact escalation mode. Unknown modes are ignored.
func WithEscalation(e Escalation) Option {
	return func(c *Config) {
		if e == EscalationPerViolation || e == EscalationCompounding {
			c.escalation = e
		}
	}
}

func (c *Config) orDefault() *Config {
	if c == nil {
		return defaultConfig
	}
	return c
}
