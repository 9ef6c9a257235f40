package weights

import "github.com/MOYARU/tenancyscore/internal/taxonomy"

// TypeWeight returns the base score for a violation type, FallbackTypeWeight when unknown.
func (c *Config) TypeWeight(t taxonomy.ViolationType) float64 {
	if v, ok := c.orDefault().typeWeights[t]; ok {
		return v
	}
	return FallbackTypeWeight
}

// SeverityWeight returns the scorer multiplier for a severity, 1.0 when unknown.
func (c *Config) SeverityWeight(s taxonomy.Severity) float64 {
	if v, ok := c.orDefault().severityWeights[s]; ok {
		return v
	}
	return NeutralMultiplier
}

// AreaWeight returns the weight of a legal area, 1.0 when unknown.
func (c *Config) AreaWeight(a taxonomy.LegalArea) float64 {
	if v, ok := c.orDefault().areaWeights[a]; ok {
		return v
	}
	return NeutralMultiplier
}

// ContextModifier returns the multiplier for a factor. Unregistered factors are neutral.
func (c *Config) ContextModifier(f taxonomy.ContextFactor) float64 {
	if v, ok := c.orDefault().contextModifiers[f]; ok {
		return v
	}
	return NeutralMultiplier
}

// ContextProduct multiplies the modifiers of every factor given.
func (c *Config) ContextProduct(factors []taxonomy.ContextFactor) float64 {
	product := NeutralMultiplier
	for _, f := range factors {
		product *= c.ContextModifier(f)
	}
	return product
}

// ImpactMultiplier returns the impact severity multiplier, 1.0 when unknown.
func (c *Config) ImpactMultiplier(s taxonomy.Severity) float64 {
	if v, ok := c.orDefault().impactSeverity[s]; ok {
		return v
	}
	return NeutralMultiplier
}

func (c *Config) TenantProtectionBias() float64 {
	return c.orDefault().tenantProtectionBias
}

func (c *Config) ConservatismFactor() float64 {
	return c.orDefault().conservatismFactor
}

func (c *Config) Escalation() Escalation {
	return c.orDefault().escalation
}
