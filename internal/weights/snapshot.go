package weights

import (
	"maps"

	"github.com/MOYARU/tenancyscore/internal/taxonomy"
)

// Snapshot is a serialisable copy of a Config. Changing it has no effect on
// the Config it came from.
type Snapshot struct {
	TenantProtectionBias float64                            `json:"tenant_protection_bias" yaml:"tenant_protection_bias"`
	ConservatismFactor   float64                            `json:"conservatism_factor" yaml:"conservatism_factor"`
	Escalation           Escalation                         `json:"impact_escalation" yaml:"impact_escalation"`
	ViolationTypeWeights map[taxonomy.ViolationType]float64 `json:"violation_type_weights" yaml:"violation_type_weights"`
	SeverityWeights      map[taxonomy.Severity]float64      `json:"severity_weights" yaml:"severity_weights"`
	AreaWeights          map[taxonomy.LegalArea]float64     `json:"area_weights" yaml:"area_weights"`
	ContextModifiers     map[taxonomy.ContextFactor]float64 `json:"context_modifiers" yaml:"context_modifiers"`
	ImpactSeverity       map[taxonomy.Severity]float64      `json:"impact_severity" yaml:"impact_severity"`
}

func (c *Config) Snapshot() Snapshot {
	src := c.orDefault()
	return Snapshot{
		TenantProtectionBias: src.tenantProtectionBias,
		ConservatismFactor:   src.conservatismFactor,
		Escalation:           src.escalation,
		ViolationTypeWeights: maps.Clone(src.typeWeights),
		SeverityWeights:      maps.Clone(src.severityWeights),
		AreaWeights:          maps.Clone(src.areaWeights),
		ContextModifiers:     maps.Clone(src.contextModifiers),
		ImpactSeverity:       maps.Clone(src.impactSeverity),
	}
}
