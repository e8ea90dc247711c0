package validation

import (
	"strings"
	"testing"

	. "server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() ApplicantSubmission {
	return ApplicantSubmission{
		PersonalInfo: PersonalInfo{
			FullName: "John Driver",
			DOB:      "1985-06-15",
			SSNLast4: "1234",
			Phone:    "5551234567",
			Email:    "john@example.com",
			CurrentAddress: CurrentAddress{
				Street:         "100 Main St",
				City:           "Dallas",
				State:          "TX",
				Zip:            "75001",
				YearsAtAddress: 5,
			},
		},
		PositionEligibility: PositionEligibility{
			PositionAppliedFor: "OTR Driver",
			EmploymentType:     "full-time",
			AvailableStartDate: "2026-09-15",
			AuthorizedToWorkUS: "yes",
			Is21OrOlder:        "yes",
			PriorEmploymentWithEagle: PriorEmployment{
				HasWorkedHereBefore: "no",
			},
		},
		CDLInfo: CDLInfo{
			LicenseType:          "CDL-A",
			LicenseNumber:        "D1234567",
			IssuingState:         "TX",
			ExpirationDate:       "2027-01-01",
			Endorsements:         []string{"T"},
			CDLValidUnrestricted: "yes",
			DOTMedicalValid:      "yes",
			DOTMedicalExpiration: "2027-03-01",
			LicenseDeniedHistory: LicenseDeniedHistory{
				HasBeenDenied: "no",
			},
			LicenseSuspendedHistory: LicenseSuspendedHistory{
				HasBeenSuspendedOrRevoked: "no",
			},
		},
		DrivingExperience: DrivingExperience{
			TotalYearsCDLA: 5,
			EquipmentExperience: []EquipmentExperience{
				{
					EquipmentType:   "Dry van",
					Years:           5,
					AvgMilesPerWeek: 2500,
				},
			},
		},
		EmploymentHistory: EmploymentHistory{
			Employers: []Employer{
				{
					Name:               "Previous Carrier",
					City:               "Fort Worth",
					State:              "TX",
					Phone:              "5552223333",
					StartDate:          "2020-01-01",
					EndDate:            "2025-12-31",
					Position:           "Driver",
					DOTSafetySensitive: "yes",
					ReasonForLeaving:   "Relocation",
					MayContact:         "yes",
				},
			},
			CertifyLast3YearsListed:         true,
			CertifyLast10YearsDrivingListed: true,
		},
		DUIHistory: DUIHistory{HasDuiOrRefusal: "no"},
		DOTDrugAlcohol: DOTDrugAlcohol{
			PositiveOrRefusedLast2Years: "no",
			CurrentDotDisqualification:  "no",
			ConsentDrugTesting:          true,
			ConsentHistoryRelease:       true,
		},
		BackgroundCheck: BackgroundCheck{
			ConsentBackgroundInvestigation: true,
			ConsentEmployerRecordRelease:   true,
		},
		EmergencyContact: EmergencyContact{
			Name:         "Jane Driver",
			Relationship: "Spouse",
			Phone:        "5559876543",
		},
		Certification: Certification{
			CertificationTextAccepted: true,
			SignatureName:             "John Driver",
			SignatureDate:             "2026-08-30",
			SignatureConsentCheckbox:  true,
		},
	}
}

func paths(fieldErrors []FieldError) []string {
	out := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		out = append(out, fe.Path)
	}
	return out
}

func findError(fieldErrors []FieldError, path string) *FieldError {
	for i := range fieldErrors {
		if fieldErrors[i].Path == path {
			return &fieldErrors[i]
		}
	}
	return nil
}

func TestValidateAcceptsCompleteSubmission(t *testing.T) {
	sub := validSubmission()

	fieldErrors := NewApplicantValidator().Validate(&sub)

	assert.Empty(t, fieldErrors, "unexpected errors: %v", fieldErrors)
}

func TestValidateAgeFloor(t *testing.T) {
	sub := validSubmission()
	sub.PersonalInfo.DOB = "2010-01-01"

	fieldErrors := NewApplicantValidator().Validate(&sub)

	fe := findError(fieldErrors, "personalInfo.dob")
	require.NotNil(t, fe, "expected an error at personalInfo.dob, got %v", paths(fieldErrors))
	assert.Equal(t, "Must be at least 21", fe.Message)
}

func TestValidateUnparseableDOB(t *testing.T) {
	sub := validSubmission()
	sub.PersonalInfo.DOB = "not a date"

	fieldErrors := NewApplicantValidator().Validate(&sub)

	fe := findError(fieldErrors, "personalInfo.dob")
	require.NotNil(t, fe)
	assert.Equal(t, "Enter a valid DOB", fe.Message)
}

func TestValidateAddressHistoryWindow(t *testing.T) {
	sub := validSubmission()
	sub.PersonalInfo.CurrentAddress.YearsAtAddress = 2
	sub.PersonalInfo.CurrentAddress.MonthsAtAddress = 3

	fieldErrors := NewApplicantValidator().Validate(&sub)
	require.NotNil(t, findError(fieldErrors, "personalInfo.previousAddresses"),
		"short tenure without previous addresses should fail")

	sub.PersonalInfo.PreviousAddresses = []Address{
		{Street: "5 Old Rd", City: "Austin", State: "TX", Zip: "78701"},
	}
	fieldErrors = NewApplicantValidator().Validate(&sub)
	assert.Nil(t, findError(fieldErrors, "personalInfo.previousAddresses"))
}

func TestValidateConditionalExplanations(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(sub *ApplicantSubmission)
		wantPath string
	}{
		{
			name: "cdl restriction",
			mutate: func(sub *ApplicantSubmission) {
				sub.CDLInfo.CDLValidUnrestricted = "no"
			},
			wantPath: "cdlInfo.cdlRestrictionExplanation",
		},
		{
			name: "dot medical expiration",
			mutate: func(sub *ApplicantSubmission) {
				sub.CDLInfo.DOTMedicalExpiration = ""
			},
			wantPath: "cdlInfo.dotMedicalExpiration",
		},
		{
			name: "license denied",
			mutate: func(sub *ApplicantSubmission) {
				sub.CDLInfo.LicenseDeniedHistory.HasBeenDenied = "yes"
			},
			wantPath: "cdlInfo.licenseDeniedHistory.explanation",
		},
		{
			name: "license suspended",
			mutate: func(sub *ApplicantSubmission) {
				sub.CDLInfo.LicenseSuspendedHistory.HasBeenSuspendedOrRevoked = "yes"
			},
			wantPath: "cdlInfo.licenseSuspendedHistory.explanation",
		},
		{
			name: "dui details",
			mutate: func(sub *ApplicantSubmission) {
				sub.DUIHistory.HasDuiOrRefusal = "yes"
			},
			wantPath: "duiHistory.details",
		},
		{
			name: "positive or refused test",
			mutate: func(sub *ApplicantSubmission) {
				sub.DOTDrugAlcohol.PositiveOrRefusedLast2Years = "yes"
			},
			wantPath: "dotDrugAlcohol.positiveOrRefusedDetails",
		},
		{
			name: "dot disqualification",
			mutate: func(sub *ApplicantSubmission) {
				sub.DOTDrugAlcohol.CurrentDotDisqualification = "yes"
			},
			wantPath: "dotDrugAlcohol.disqualificationDetails",
		},
	}

	validator := NewApplicantValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.mutate(&sub)

			fieldErrors := validator.Validate(&sub)

			require.Len(t, fieldErrors, 1, "want exactly one error, got %v", paths(fieldErrors))
			assert.Equal(t, tt.wantPath, fieldErrors[0].Path)
		})
	}

	t.Run("explanation provided clears the rule", func(t *testing.T) {
		sub := validSubmission()
		sub.DUIHistory.HasDuiOrRefusal = "yes"
		sub.DUIHistory.Details = "One refusal in 2015, resolved"

		assert.Empty(t, validator.Validate(&sub))
	})
}

func TestValidateTeamPartnerRequirement(t *testing.T) {
	validator := NewApplicantValidator()

	sub := validSubmission()
	sub.PositionEligibility.EmploymentType = "team"

	fieldErrors := validator.Validate(&sub)
	assert.NotNil(t, findError(fieldErrors, "positionEligibility.teamPartner.name"))
	assert.NotNil(t, findError(fieldErrors, "positionEligibility.teamPartner.phone"))

	sub.PositionEligibility.TeamPartner = TeamPartner{Name: "Pat Codriver", Phone: "5550001111"}
	assert.Empty(t, validator.Validate(&sub))
}

func TestValidateHoneypotViolationReported(t *testing.T) {
	sub := validSubmission()
	sub.Meta.Website = "http://spam.example"

	fieldErrors := NewApplicantValidator().Validate(&sub)

	fe := findError(fieldErrors, "meta.website")
	require.NotNil(t, fe)
	assert.Equal(t, "Leave this field empty", fe.Message)
}

func TestValidateStepScopesErrors(t *testing.T) {
	sub := validSubmission()
	sub.PersonalInfo.FullName = ""
	sub.CDLInfo.LicenseNumber = ""

	validator := NewApplicantValidator()

	tests := []struct {
		name     string
		step     string
		wantOnly string
	}{
		{name: "personal step", step: "personal", wantOnly: "personalInfo"},
		{name: "cdl step", step: "cdl", wantOnly: "cdlInfo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scoped := validator.ValidateStep(&sub, tt.step)

			require.NotEmpty(t, scoped)
			for _, fe := range scoped {
				assert.True(t, strings.HasPrefix(fe.Path, tt.wantOnly),
					"path %q leaked into step %q", fe.Path, tt.step)
			}
		})
	}

	t.Run("unknown step returns everything", func(t *testing.T) {
		all := validator.ValidateStep(&sub, "bogus")
		assert.NotNil(t, findError(all, "personalInfo.fullName"))
		assert.NotNil(t, findError(all, "cdlInfo.licenseNumber"))
	})

	t.Run("clean step yields no errors", func(t *testing.T) {
		assert.Empty(t, validator.ValidateStep(&sub, "preferences"))
	})
}
