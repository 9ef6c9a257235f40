package taxonomy

// ContextFactor is a situational tag that scales violation scores.
type ContextFactor string

const (
	VulnerableTenant     ContextFactor = "vulnerable_tenant"
	DisabledTenant       ContextFactor = "disabled_tenant"
	ElderlyTenant        ContextFactor = "elderly_tenant"
	LowIncome            ContextFactor = "low_income"
	HMOProperty          ContextFactor = "hmo_property"
	FamiliesWithChildren ContextFactor = "families_with_children"
	FirstTimeTenant      ContextFactor = "first_time_tenant"
	SocialHousing        ContextFactor = "social_housing"
	StudentLet           ContextFactor = "student_let"
	FurnishedProperty    ContextFactor = "furnished_property"
	CorporateLandlord    ContextFactor = "corporate_landlord"
	NewBuild             ContextFactor = "new_build"
	LongTermTenancy      ContextFactor = "long_term_tenancy"
	ShortTermLet         ContextFactor = "short_term_let"
	LicensedAgent        ContextFactor = "licensed_agent"
)

// Context modifiers must stay within [MinContextModifier, MaxContextModifier].
const (
	MinContextModifier = 0.8
	MaxContextModifier = 1.3
)

var DefaultContextModifiers = map[ContextFactor]float64{
	VulnerableTenant:     1.3,
	DisabledTenant:       1.3,
	ElderlyTenant:        1.25,
	LowIncome:            1.2,
	HMOProperty:          1.2,
	FamiliesWithChildren: 1.15,
	FirstTimeTenant:      1.15,
	SocialHousing:        1.1,
	StudentLet:           1.1,
	FurnishedProperty:    1.0,
	CorporateLandlord:    0.95,
	NewBuild:             0.9,
	LongTermTenancy:      0.9,
	ShortTermLet:         0.85,
	LicensedAgent:        0.8,
}
