package models

// ApplicantSubmission is the full intake payload posted by the application
// form. Field paths in validation errors follow the json tags, so the tag
// names here are part of the API contract with the form.

type Address struct {
	Street   string `json:"street"   validate:"required"`
	City     string `json:"city"     validate:"required"`
	State    string `json:"state"    validate:"len=2"`
	Zip      string `json:"zip"      validate:"min=3"`
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
}

type CurrentAddress struct {
	Street          string `json:"street"          validate:"required"`
	City            string `json:"city"            validate:"required"`
	State           string `json:"state"           validate:"len=2"`
	Zip             string `json:"zip"             validate:"min=3"`
	YearsAtAddress  int    `json:"yearsAtAddress"  validate:"min=0"`
	MonthsAtAddress int    `json:"monthsAtAddress" validate:"min=0,max=11"`
}

type PersonalInfo struct {
	FullName          string         `json:"fullName" validate:"required"`
	DOB               string         `json:"dob"      validate:"required"`
	SSNLast4          string         `json:"ssnLast4" validate:"len=4"`
	Phone             string         `json:"phone"    validate:"min=7"`
	Email             string         `json:"email"    validate:"required,email"`
	CurrentAddress    CurrentAddress `json:"currentAddress"`
	PreviousAddresses []Address      `json:"previousAddresses" validate:"omitempty,dive"`
}

type PriorEmployment struct {
	HasWorkedHereBefore string `json:"hasWorkedHereBefore" validate:"oneof=yes no"`
	When                string `json:"when"`
	Position            string `json:"position"`
}

type TeamPartner struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email" validate:"omitempty,email"`
}

type PositionEligibility struct {
	PositionAppliedFor       string          `json:"positionAppliedFor" validate:"required"`
	EmploymentType           string          `json:"employmentType"     validate:"oneof=full-time part-time team"`
	AvailableStartDate       string          `json:"availableStartDate" validate:"required"`
	AuthorizedToWorkUS       string          `json:"authorizedToWorkUS" validate:"oneof=yes no"`
	Is21OrOlder              string          `json:"is21OrOlder"        validate:"oneof=yes no"`
	PriorEmploymentWithEagle PriorEmployment `json:"priorEmploymentWithEagle"`
	TeamPartner              TeamPartner     `json:"teamPartner"`
}

type LicenseDeniedHistory struct {
	HasBeenDenied string `json:"hasBeenDenied" validate:"oneof=yes no"`
	Explanation   string `json:"explanation"`
}

type LicenseSuspendedHistory struct {
	HasBeenSuspendedOrRevoked string `json:"hasBeenSuspendedOrRevoked" validate:"oneof=yes no"`
	Explanation               string `json:"explanation"`
}

type CDLInfo struct {
	LicenseType               string                  `json:"licenseType"    validate:"oneof=CDL-A CDL-B Other"`
	LicenseNumber             string                  `json:"licenseNumber"  validate:"required"`
	IssuingState              string                  `json:"issuingState"   validate:"len=2"`
	ExpirationDate            string                  `json:"expirationDate" validate:"required"`
	Endorsements              []string                `json:"endorsements"   validate:"omitempty,dive,oneof=T N H X"`
	CDLValidUnrestricted      string                  `json:"cdlValidUnrestricted" validate:"oneof=yes no"`
	CDLRestrictionExplanation string                  `json:"cdlRestrictionExplanation"`
	DOTMedicalValid           string                  `json:"dotMedicalValid" validate:"oneof=yes no"`
	DOTMedicalExpiration      string                  `json:"dotMedicalExpiration"`
	LicenseDeniedHistory      LicenseDeniedHistory    `json:"licenseDeniedHistory"`
	LicenseSuspendedHistory   LicenseSuspendedHistory `json:"licenseSuspendedHistory"`
}

type EquipmentExperience struct {
	EquipmentType   string `json:"equipmentType" validate:"required"`
	Years           int    `json:"years"         validate:"min=0"`
	Months          int    `json:"months"        validate:"min=0,max=11"`
	AvgMilesPerWeek int    `json:"avgMilesPerWeek" validate:"min=0"`
	Regions         string `json:"regions"`
	Linehaul        bool   `json:"linehaul"`
	Local           bool   `json:"local"`
	NightDriving    bool   `json:"nightDriving"`
	MountainRoutes  bool   `json:"mountainRoutes"`
	MajorCarriers   string `json:"majorCarriers"`
}

type DrivingExperience struct {
	TotalYearsCDLA      float64               `json:"totalYearsCdlA"      validate:"min=0"`
	EquipmentExperience []EquipmentExperience `json:"equipmentExperience" validate:"min=1,dive"`
}

type Employer struct {
	Name               string `json:"name"      validate:"required"`
	City               string `json:"city"      validate:"required"`
	State              string `json:"state"     validate:"len=2"`
	Phone              string `json:"phone"     validate:"min=7"`
	StartDate          string `json:"startDate" validate:"required"`
	EndDate            string `json:"endDate"   validate:"required"`
	Position           string `json:"position"  validate:"required"`
	DOTSafetySensitive string `json:"dotSafetySensitive" validate:"oneof=yes no"`
	ReasonForLeaving   string `json:"reasonForLeaving"   validate:"required"`
	MayContact         string `json:"mayContact"         validate:"oneof=yes no"`
}

type EmploymentHistory struct {
	Employers                       []Employer `json:"employers" validate:"min=1,dive"`
	CertifyLast3YearsListed         bool       `json:"certifyLast3YearsListed"         validate:"eq=true"`
	CertifyLast10YearsDrivingListed bool       `json:"certifyLast10YearsDrivingListed" validate:"eq=true"`
}

type Accident struct {
	Date                      string `json:"date"        validate:"required"`
	City                      string `json:"city"        validate:"required"`
	State                     string `json:"state"       validate:"len=2"`
	VehicleType               string `json:"vehicleType" validate:"required"`
	Description               string `json:"description" validate:"required"`
	Injuries                  string `json:"injuries"`
	Fatalities                string `json:"fatalities"`
	CitationIssued            string `json:"citationIssued" validate:"oneof=yes no"`
	CitationDetails           string `json:"citationDetails"`
	Preventable               string `json:"preventable" validate:"oneof=yes no"`
	PreventabilityExplanation string `json:"preventabilityExplanation"`
}

type Violation struct {
	Date          string `json:"date"          validate:"required"`
	City          string `json:"city"          validate:"required"`
	State         string `json:"state"         validate:"len=2"`
	ViolationType string `json:"violationType" validate:"required"`
	VehicleType   string `json:"vehicleType"   validate:"oneof=commercial personal"`
	Disposition   string `json:"disposition"`
}

type DUIHistory struct {
	HasDuiOrRefusal string `json:"hasDuiOrRefusal" validate:"oneof=yes no"`
	Details         string `json:"details"`
}

type DOTDrugAlcohol struct {
	PositiveOrRefusedLast2Years string `json:"positiveOrRefusedLast2Years" validate:"oneof=yes no"`
	PositiveOrRefusedDetails    string `json:"positiveOrRefusedDetails"`
	CurrentDotDisqualification  string `json:"currentDotDisqualification" validate:"oneof=yes no"`
	DisqualificationDetails     string `json:"disqualificationDetails"`
	ConsentDrugTesting          bool   `json:"consentDrugTesting"    validate:"eq=true"`
	ConsentHistoryRelease       bool   `json:"consentHistoryRelease" validate:"eq=true"`
}

type BackgroundCheck struct {
	ConsentBackgroundInvestigation bool `json:"consentBackgroundInvestigation" validate:"eq=true"`
	ConsentEmployerRecordRelease   bool `json:"consentEmployerRecordRelease"   validate:"eq=true"`
}

type WorkPreferences struct {
	Solo                   bool   `json:"solo"`
	Team                   bool   `json:"team"`
	NightShift             bool   `json:"nightShift"`
	DayShift               bool   `json:"dayShift"`
	Weekend                bool   `json:"weekend"`
	HomeTimePreference     string `json:"homeTimePreference"`
	WillingDedicated       bool   `json:"willingDedicated"`
	WillingLinehaul        bool   `json:"willingLinehaul"`
	MinWeeklyMilesOrIncome string `json:"minWeeklyMilesOrIncome"`
}

type EmergencyContact struct {
	Name         string `json:"name"         validate:"required"`
	Relationship string `json:"relationship" validate:"required"`
	Phone        string `json:"phone"        validate:"min=7"`
	AltPhone     string `json:"altPhone"`
}

type CultureFit struct {
	AboutYou string `json:"aboutYou"`
}

// Attachments hold inline-encoded blobs captured client-side; the applicant
// path never round-trips through the blob store.
type Attachments struct {
	CDLFront   string `json:"cdlFront"`
	CDLBack    string `json:"cdlBack"`
	DOTMedical string `json:"dotMedical"`
	MVR        string `json:"mvr"`
	Resume     string `json:"resume"`
}

type Certification struct {
	CertificationTextAccepted bool   `json:"certificationTextAccepted" validate:"eq=true"`
	SignatureName             string `json:"signatureName" validate:"required"`
	SignatureDate             string `json:"signatureDate" validate:"required"`
	SignatureConsentCheckbox  bool   `json:"signatureConsentCheckbox" validate:"eq=true"`
}

type SubmissionMeta struct {
	Source      string `json:"source"`
	UTMSource   string `json:"utm_source"`
	UTMMedium   string `json:"utm_medium"`
	UTMCampaign string `json:"utm_campaign"`
	UserAgent   string `json:"user_agent"`
	// Website is the honeypot. Real users never fill it; the submission
	// endpoint silently accepts when it is set.
	Website string `json:"website" validate:"max=0"`
}

type ApplicantSubmission struct {
	PersonalInfo        PersonalInfo        `json:"personalInfo"`
	PositionEligibility PositionEligibility `json:"positionEligibility"`
	CDLInfo             CDLInfo             `json:"cdlInfo"`
	DrivingExperience   DrivingExperience   `json:"drivingExperience"`
	EmploymentHistory   EmploymentHistory   `json:"employmentHistory"`
	AccidentHistory     []Accident          `json:"accidentHistory"   validate:"omitempty,dive"`
	TrafficViolations   []Violation         `json:"trafficViolations" validate:"omitempty,dive"`
	DUIHistory          DUIHistory          `json:"duiHistory"`
	DOTDrugAlcohol      DOTDrugAlcohol      `json:"dotDrugAlcohol"`
	BackgroundCheck     BackgroundCheck     `json:"backgroundCheck"`
	WorkPreferences     WorkPreferences     `json:"workPreferences"`
	EmergencyContact    EmergencyContact    `json:"emergencyContact"`
	CultureFit          CultureFit          `json:"cultureFit"`
	Attachments         Attachments         `json:"attachments"`
	Certification       Certification       `json:"certification"`
	Meta                SubmissionMeta      `json:"meta"`
}
