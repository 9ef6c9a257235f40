package taxonomy

type LegalArea string

const (
	TenantFeesAct               LegalArea = "tenant_fees_act"
	HousingAct1988              LegalArea = "housing_act_1988"
	HousingAct2004              LegalArea = "housing_act_2004"
	DepositProtection           LegalArea = "deposit_protection"
	LandlordTenantAct1985       LegalArea = "landlord_tenant_act_1985"
	ProtectionFromEvictionAct   LegalArea = "protection_from_eviction_act"
	ConsumerRightsAct           LegalArea = "consumer_rights_act"
	EqualityAct                 LegalArea = "equality_act"
	DeregulationAct             LegalArea = "deregulation_act"
	ImmigrationAct              LegalArea = "immigration_act"
	GasSafetyRegulations        LegalArea = "gas_safety_regulations"
	SmokeCOAlarmRegulations     LegalArea = "smoke_co_alarm_regulations"
	ElectricalSafetyRegulations LegalArea = "electrical_safety_regulations"
	EnergyEfficiencyRegulations LegalArea = "energy_efficiency_regulations"
	DataProtectionAct           LegalArea = "data_protection_act"
	HomesFitnessAct             LegalArea = "homes_fitness_act"
)

var LegalAreas = []LegalArea{
	TenantFeesAct,
	HousingAct1988,
	HousingAct2004,
	DepositProtection,
	LandlordTenantAct1985,
	ProtectionFromEvictionAct,
	ConsumerRightsAct,
	EqualityAct,
	DeregulationAct,
	ImmigrationAct,
	GasSafetyRegulations,
	SmokeCOAlarmRegulations,
	ElectricalSafetyRegulations,
	EnergyEfficiencyRegulations,
	DataProtectionAct,
	HomesFitnessAct,
}

// DefaultAreaWeights express how heavily an area counts towards legal complexity.
var DefaultAreaWeights = map[LegalArea]float64{
	TenantFeesAct:               1.3,
	HousingAct1988:              1.2,
	HousingAct2004:              1.2,
	DepositProtection:           1.3,
	LandlordTenantAct1985:       1.1,
	ProtectionFromEvictionAct:   1.4,
	ConsumerRightsAct:           1.0,
	EqualityAct:                 1.4,
	DeregulationAct:             1.0,
	ImmigrationAct:              0.9,
	GasSafetyRegulations:        1.3,
	SmokeCOAlarmRegulations:     1.2,
	ElectricalSafetyRegulations: 1.2,
	EnergyEfficiencyRegulations: 0.8,
	DataProtectionAct:           0.8,
	HomesFitnessAct:             1.1,
}

var areaTypes = map[LegalArea][]ViolationType{
	TenantFeesAct:               {ProhibitedFees, UtilityCharges, GuarantorTerms},
	HousingAct1988:              {RetaliatoryEviction, NoticePeriod, TerminationRights, BreakClause, RentIncrease, SublettingRestrictions, SuccessionRights},
	HousingAct2004:              {DepositViolation, FireSafety, SafetyStandards, Legionella, HMOLicensing},
	DepositProtection:           {DepositViolation, InventoryDeficiency},
	LandlordTenantAct1985:       {RepairResponsibility, QuietEnjoyment, AccessRights, MaintenanceObligations, LandlordIdentity},
	ProtectionFromEvictionAct:   {IllegalEviction, Harassment},
	ConsumerRightsAct:           {UnfairTerms, BreakClause, UtilityCharges, CouncilTax, GuarantorTerms, PetRestrictions},
	EqualityAct:                 {Discrimination},
	DeregulationAct:             {RetaliatoryEviction, HowToRentGuide},
	ImmigrationAct:              {RightToRent},
	GasSafetyRegulations:        {GasSafety},
	SmokeCOAlarmRegulations:     {FireSafety, CarbonMonoxide},
	ElectricalSafetyRegulations: {ElectricalSafety},
	EnergyEfficiencyRegulations: {EnergyPerformance},
	DataProtectionAct:           {DataProtection},
	HomesFitnessAct:             {RepairResponsibility, MaintenanceObligations, SafetyStandards},
}

// InArea reports whether violations of type t fall under the area.
func InArea(t ViolationType, area LegalArea) bool {
	for _, v := range areaTypes[area] {
		if v == t {
			return true
		}
	}
	return false
}

// AreasFor returns the areas a violation type belongs to, in LegalAreas order.
func AreasFor(t ViolationType) []LegalArea {
	var out []LegalArea
	for _, area := range LegalAreas {
		if InArea(t, area) {
			out = append(out, area)
		}
	}
	return out
}

func (a LegalArea) String() string {
	return string(a)
}
