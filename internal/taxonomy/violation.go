package taxonomy

type ViolationType string

const (
	DepositViolation       ViolationType = "deposit_violation"
	ProhibitedFees         ViolationType = "prohibited_fees"
	UnfairTerms            ViolationType = "unfair_terms"
	RepairResponsibility   ViolationType = "repair_responsibility"
	Discrimination         ViolationType = "discrimination"
	FireSafety             ViolationType = "fire_safety"
	GasSafety              ViolationType = "gas_safety"
	ElectricalSafety       ViolationType = "electrical_safety"
	CarbonMonoxide         ViolationType = "carbon_monoxide"
	IllegalEviction        ViolationType = "illegal_eviction"
	RetaliatoryEviction    ViolationType = "retaliatory_eviction"
	Harassment             ViolationType = "harassment"
	NoticePeriod           ViolationType = "notice_period"
	TerminationRights      ViolationType = "termination_rights"
	BreakClause            ViolationType = "break_clause"
	RentIncrease           ViolationType = "rent_increase"
	QuietEnjoyment         ViolationType = "quiet_enjoyment"
	AccessRights           ViolationType = "access_rights"
	MaintenanceObligations ViolationType = "maintenance_obligations"
	SafetyStandards        ViolationType = "safety_standards"
	Legionella             ViolationType = "legionella"
	HMOLicensing           ViolationType = "hmo_licensing"
	RightToRent            ViolationType = "right_to_rent"
	HowToRentGuide         ViolationType = "how_to_rent_guide"
	EnergyPerformance      ViolationType = "energy_performance"
	LandlordIdentity       ViolationType = "landlord_identity"
	DataProtection         ViolationType = "data_protection"
	UtilityCharges         ViolationType = "utility_charges"
	CouncilTax             ViolationType = "council_tax"
	GuarantorTerms         ViolationType = "guarantor_terms"
	SublettingRestrictions ViolationType = "subletting_restrictions"
	PetRestrictions        ViolationType = "pet_restrictions"
	InventoryDeficiency    ViolationType = "inventory_deficiency"
	SuccessionRights       ViolationType = "succession_rights"
)

// ViolationTypes is the full catalogue in a stable order.
var ViolationTypes = []ViolationType{
	DepositViolation,
	ProhibitedFees,
	UnfairTerms,
	RepairResponsibility,
	Discrimination,
	FireSafety,
	GasSafety,
	ElectricalSafety,
	CarbonMonoxide,
	IllegalEviction,
	RetaliatoryEviction,
	Harassment,
	NoticePeriod,
	TerminationRights,
	BreakClause,
	RentIncrease,
	QuietEnjoyment,
	AccessRights,
	MaintenanceObligations,
	SafetyStandards,
	Legionella,
	HMOLicensing,
	RightToRent,
	HowToRentGuide,
	EnergyPerformance,
	LandlordIdentity,
	DataProtection,
	UtilityCharges,
	CouncilTax,
	GuarantorTerms,
	SublettingRestrictions,
	PetRestrictions,
	InventoryDeficiency,
	SuccessionRights,
}

// DefaultTypeWeights are the base scores (0-100) per violation type.
var DefaultTypeWeights = map[ViolationType]float64{
	DepositViolation:       85,
	ProhibitedFees:         90,
	UnfairTerms:            70,
	RepairResponsibility:   75,
	Discrimination:         95,
	FireSafety:             90,
	GasSafety:              90,
	ElectricalSafety:       85,
	CarbonMonoxide:         85,
	IllegalEviction:        95,
	RetaliatoryEviction:    85,
	Harassment:             90,
	NoticePeriod:           70,
	TerminationRights:      70,
	BreakClause:            45,
	RentIncrease:           65,
	QuietEnjoyment:         65,
	AccessRights:           60,
	MaintenanceObligations: 65,
	SafetyStandards:        80,
	Legionella:             60,
	HMOLicensing:           80,
	RightToRent:            75,
	HowToRentGuide:         60,
	EnergyPerformance:      55,
	LandlordIdentity:       50,
	DataProtection:         55,
	UtilityCharges:         45,
	CouncilTax:             40,
	GuarantorTerms:         50,
	SublettingRestrictions: 35,
	PetRestrictions:        30,
	InventoryDeficiency:    40,
	SuccessionRights:       45,
}

func (t ViolationType) Known() bool {
	_, ok := DefaultTypeWeights[t]
	return ok
}

func (t ViolationType) String() string {
	return string(t)
}
