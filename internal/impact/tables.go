package impact

import "github.com/MOYARU/tenancyscore/internal/taxonomy"

const (
	legalConsultationCost = 500.0
	months                = 12
	imputedRentShare      = 0.1
	warningShare          = 0.25
)

type bucket int

const (
	bucketImmediate bucket = iota
	bucketOngoing
)

var ongoingTypes = map[taxonomy.ViolationType]bool{
	taxonomy.UnfairTerms:            true,
	taxonomy.RepairResponsibility:   true,
	taxonomy.MaintenanceObligations: true,
	taxonomy.RentIncrease:           true,
}

func bucketFor(t taxonomy.ViolationType) bucket {
	if ongoingTypes[t] {
		return bucketOngoing
	}
	return bucketImmediate
}

var rights = map[taxonomy.ViolationType]string{
	taxonomy.DepositViolation:       "Deposit protection rights",
	taxonomy.ProhibitedFees:         "Protection from prohibited fees",
	taxonomy.UnfairTerms:            "Protection from unfair contract terms",
	taxonomy.RepairResponsibility:   "Right to repairs by the landlord",
	taxonomy.Discrimination:         "Right to equal treatment",
	taxonomy.FireSafety:             "Right to a fire-safe home",
	taxonomy.GasSafety:              "Right to gas safety checks",
	taxonomy.ElectricalSafety:       "Right to electrical safety checks",
	taxonomy.CarbonMonoxide:         "Right to working carbon monoxide alarms",
	taxonomy.IllegalEviction:        "Protection from unlawful eviction",
	taxonomy.RetaliatoryEviction:    "Protection from retaliatory eviction",
	taxonomy.Harassment:             "Protection from harassment",
	taxonomy.NoticePeriod:           "Right to proper notice",
	taxonomy.TerminationRights:      "Statutory termination rights",
	taxonomy.BreakClause:            "Fair break clause terms",
	taxonomy.RentIncrease:           "Protection from unlawful rent increases",
	taxonomy.QuietEnjoyment:         "Right to quiet enjoyment",
	taxonomy.AccessRights:           "Right to notice before landlord access",
	taxonomy.MaintenanceObligations: "Right to a maintained property",
	taxonomy.SafetyStandards:        "Right to a safe home",
	taxonomy.Legionella:             "Right to water safety assessment",
	taxonomy.HMOLicensing:           "Protections of licensed HMO housing",
	taxonomy.RightToRent:            "Lawful right to rent checks",
	taxonomy.HowToRentGuide:         "Right to the How to Rent guide",
	taxonomy.EnergyPerformance:      "Right to an energy performance certificate",
	taxonomy.LandlordIdentity:       "Right to know the landlord's identity",
	taxonomy.DataProtection:         "Personal data rights",
	taxonomy.UtilityCharges:         "Fair utility charging",
	taxonomy.CouncilTax:             "Correct council tax liability",
	taxonomy.GuarantorTerms:         "Fair guarantor obligations",
	taxonomy.SublettingRestrictions: "Reasonable subletting consent",
	taxonomy.PetRestrictions:        "Reasonable consent for pets",
	taxonomy.InventoryDeficiency:    "Right to a fair check-in inventory",
	taxonomy.SuccessionRights:       "Tenancy succession rights",
}

type legalRisk struct {
	enforcement, litigation, regulatory float64
}

var fallbackLegalRisk = legalRisk{5, 5, 5}

var legalRisks = map[taxonomy.ViolationType]legalRisk{
	taxonomy.DepositViolation:       {20, 25, 15},
	taxonomy.ProhibitedFees:         {20, 15, 20},
	taxonomy.UnfairTerms:            {10, 20, 10},
	taxonomy.RepairResponsibility:   {15, 20, 15},
	taxonomy.Discrimination:         {25, 30, 20},
	taxonomy.FireSafety:             {25, 15, 30},
	taxonomy.GasSafety:              {30, 15, 30},
	taxonomy.ElectricalSafety:       {25, 15, 25},
	taxonomy.CarbonMonoxide:         {25, 15, 25},
	taxonomy.IllegalEviction:        {30, 30, 20},
	taxonomy.RetaliatoryEviction:    {20, 25, 15},
	taxonomy.Harassment:             {25, 30, 15},
	taxonomy.NoticePeriod:           {10, 15, 5},
	taxonomy.TerminationRights:      {10, 15, 5},
	taxonomy.BreakClause:            {5, 15, 5},
	taxonomy.RentIncrease:           {10, 15, 10},
	taxonomy.QuietEnjoyment:         {10, 15, 5},
	taxonomy.AccessRights:           {10, 10, 5},
	taxonomy.MaintenanceObligations: {10, 15, 10},
	taxonomy.SafetyStandards:        {20, 15, 25},
	taxonomy.Legionella:             {15, 10, 20},
	taxonomy.HMOLicensing:           {25, 10, 30},
	taxonomy.RightToRent:            {15, 5, 25},
	taxonomy.HowToRentGuide:         {10, 5, 15},
	taxonomy.EnergyPerformance:      {10, 5, 20},
	taxonomy.LandlordIdentity:       {10, 5, 10},
	taxonomy.DataProtection:         {10, 10, 20},
	taxonomy.UtilityCharges:         {10, 10, 10},
	taxonomy.CouncilTax:             {5, 5, 10},
	taxonomy.GuarantorTerms:         {10, 10, 10},
	taxonomy.SublettingRestrictions: {5, 5, 0},
	taxonomy.PetRestrictions:        {5, 5, 0},
	taxonomy.InventoryDeficiency:    {10, 15, 5},
	taxonomy.SuccessionRights:       {10, 20, 5},
}

func legalRiskFor(t taxonomy.ViolationType) legalRisk {
	if r, ok := legalRisks[t]; ok {
		return r
	}
	return fallbackLegalRisk
}

// practicalWeight is how much a violation type affects each lived-experience
// axis before severity scaling. Unlisted types contribute nothing.
type practicalWeight struct {
	living, security, daily, future float64
}

var practicalWeights = map[taxonomy.ViolationType]practicalWeight{
	taxonomy.DepositViolation:       {0, 5, 5, 20},
	taxonomy.ProhibitedFees:         {0, 0, 10, 15},
	taxonomy.UnfairTerms:            {5, 10, 10, 10},
	taxonomy.RepairResponsibility:   {25, 0, 15, 5},
	taxonomy.Discrimination:         {10, 15, 10, 25},
	taxonomy.FireSafety:             {35, 0, 15, 0},
	taxonomy.GasSafety:              {35, 0, 15, 0},
	taxonomy.ElectricalSafety:       {30, 0, 15, 0},
	taxonomy.CarbonMonoxide:         {35, 0, 10, 0},
	taxonomy.IllegalEviction:        {20, 40, 20, 20},
	taxonomy.RetaliatoryEviction:    {10, 35, 10, 15},
	taxonomy.Harassment:             {20, 20, 25, 10},
	taxonomy.NoticePeriod:           {0, 30, 5, 10},
	taxonomy.TerminationRights:      {0, 30, 5, 10},
	taxonomy.BreakClause:            {0, 20, 5, 10},
	taxonomy.RentIncrease:           {0, 15, 10, 10},
	taxonomy.QuietEnjoyment:         {10, 5, 20, 0},
	taxonomy.AccessRights:           {5, 5, 20, 0},
	taxonomy.MaintenanceObligations: {25, 0, 15, 0},
	taxonomy.SafetyStandards:        {30, 0, 10, 0},
	taxonomy.Legionella:             {20, 0, 5, 0},
	taxonomy.HMOLicensing:           {15, 10, 5, 5},
	taxonomy.RightToRent:            {0, 15, 5, 15},
	taxonomy.HowToRentGuide:         {0, 10, 0, 5},
	taxonomy.EnergyPerformance:      {10, 0, 10, 5},
	taxonomy.LandlordIdentity:       {0, 5, 10, 5},
	taxonomy.DataProtection:         {0, 0, 5, 10},
	taxonomy.UtilityCharges:         {0, 0, 15, 5},
	taxonomy.CouncilTax:             {0, 0, 10, 5},
	taxonomy.GuarantorTerms:         {0, 5, 5, 15},
	taxonomy.SublettingRestrictions: {0, 5, 5, 10},
	taxonomy.PetRestrictions:        {0, 5, 10, 5},
	taxonomy.InventoryDeficiency:    {0, 0, 5, 15},
	taxonomy.SuccessionRights:       {0, 20, 5, 15},
}

const (
	vulnerableLivingScale  = 1.3
	vulnerableDailyScale   = 1.2
	firstTimeSecurityScale = 1.2
)
