package taxonomy

type DocumentType string

const (
	AssuredShortholdTenancy DocumentType = "assured_shorthold_tenancy"
	AssuredTenancy          DocumentType = "assured_tenancy"
	RegulatedTenancy        DocumentType = "regulated_tenancy"
	PeriodicTenancy         DocumentType = "periodic_tenancy"
	LicenceToOccupy         DocumentType = "licence_to_occupy"
	LodgerAgreement         DocumentType = "lodger_agreement"
	CompanyLet              DocumentType = "company_let"
	HMOTenancy              DocumentType = "hmo_tenancy"
	SocialHousingTenancy    DocumentType = "social_housing_tenancy"
	DocumentUnknown         DocumentType = "unknown"
)

var DocumentTypes = []DocumentType{
	AssuredShortholdTenancy,
	AssuredTenancy,
	RegulatedTenancy,
	PeriodicTenancy,
	LicenceToOccupy,
	LodgerAgreement,
	CompanyLet,
	HMOTenancy,
	SocialHousingTenancy,
}

// Known is false for DocumentUnknown, the empty string and unlisted values.
func (d DocumentType) Known() bool {
	for _, t := range DocumentTypes {
		if t == d {
			return true
		}
	}
	return false
}
