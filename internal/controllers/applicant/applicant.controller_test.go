package applicantController

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"server/config"
	"server/internal/services"
	"server/internal/validation"

	. "server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApplicantRepo struct {
	created []*Applicant
	err     error
}

func (f *fakeApplicantRepo) Create(ctx context.Context, applicant *Applicant) error {
	if f.err != nil {
		return f.err
	}
	applicant.ID = "applicant-1"
	f.created = append(f.created, applicant)
	return nil
}

func (f *fakeApplicantRepo) GetByID(ctx context.Context, id string) (*Applicant, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeApplicantRepo) GetRecent(ctx context.Context, limit int) ([]*Applicant, error) {
	return nil, errors.New("not implemented")
}

func newTestController(repo *fakeApplicantRepo) *ApplicantController {
	return New(repo, validation.NewApplicantValidator(), services.NewEmailService(config.Config{}))
}

func testSubmission() ApplicantSubmission {
	return ApplicantSubmission{
		PersonalInfo: PersonalInfo{
			FullName: "John Q Driver",
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
			PositionAppliedFor:       "OTR Driver",
			EmploymentType:           "full-time",
			AvailableStartDate:       "2026-09-15",
			AuthorizedToWorkUS:       "yes",
			Is21OrOlder:              "yes",
			PriorEmploymentWithEagle: PriorEmployment{HasWorkedHereBefore: "no"},
		},
		CDLInfo: CDLInfo{
			LicenseType:             "CDL-A",
			LicenseNumber:           "D1234567",
			IssuingState:            "TX",
			ExpirationDate:          "2027-01-01",
			Endorsements:            []string{"T", "X"},
			CDLValidUnrestricted:    "yes",
			DOTMedicalValid:         "yes",
			DOTMedicalExpiration:    "2027-03-01",
			LicenseDeniedHistory:    LicenseDeniedHistory{HasBeenDenied: "no"},
			LicenseSuspendedHistory: LicenseSuspendedHistory{HasBeenSuspendedOrRevoked: "no"},
		},
		DrivingExperience: DrivingExperience{
			TotalYearsCDLA: 7.5,
			EquipmentExperience: []EquipmentExperience{
				{EquipmentType: "Dry van", Years: 7, AvgMilesPerWeek: 2500},
			},
		},
		EmploymentHistory: EmploymentHistory{
			Employers: []Employer{
				{
					Name: "Previous Carrier", City: "Fort Worth", State: "TX",
					Phone: "5552223333", StartDate: "2020-01-01", EndDate: "2025-12-31",
					Position: "Driver", DOTSafetySensitive: "yes",
					ReasonForLeaving: "Relocation", MayContact: "yes",
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
		WorkPreferences: WorkPreferences{DayShift: true},
		EmergencyContact: EmergencyContact{
			Name: "Jane Driver", Relationship: "Spouse", Phone: "5559876543",
		},
		Certification: Certification{
			CertificationTextAccepted: true,
			SignatureName:             "John Q Driver",
			SignatureDate:             "2026-08-30",
			SignatureConsentCheckbox:  true,
		},
		Meta: SubmissionMeta{
			Source:    "landing-page",
			UTMSource: "google",
			UserAgent: "test-agent",
		},
	}
}

func TestSubmitHoneypotSkipsEverything(t *testing.T) {
	repo := &fakeApplicantRepo{}
	controller := newTestController(repo)

	// Deliberately invalid payload: the honeypot gate must run before
	// validation, so a bot never learns what the schema wants.
	sub := ApplicantSubmission{Meta: SubmissionMeta{Website: "http://spam.example"}}

	result, err := controller.Submit(context.Background(), &sub, "198.51.100.7", "bot-agent")
	require.NoError(t, err)

	assert.True(t, result.Accepted)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.ApplicantID)
	assert.Empty(t, repo.created, "honeypot submissions must not touch storage")
}

func TestSubmitReturnsValidationErrors(t *testing.T) {
	repo := &fakeApplicantRepo{}
	controller := newTestController(repo)

	sub := ApplicantSubmission{}
	result, err := controller.Submit(context.Background(), &sub, "", "")
	require.NoError(t, err)

	assert.False(t, result.Accepted)
	assert.NotEmpty(t, result.Errors)
	assert.Empty(t, repo.created)
}

func TestSubmitPersistsApplicant(t *testing.T) {
	repo := &fakeApplicantRepo{}
	controller := newTestController(repo)

	sub := testSubmission()
	result, err := controller.Submit(context.Background(), &sub, "203.0.113.9", "test-agent")
	require.NoError(t, err)

	assert.True(t, result.Accepted)
	assert.Equal(t, "applicant-1", result.ApplicantID)
	assert.False(t, result.EmailSent, "no email key configured")

	require.Len(t, repo.created, 1)
	applicant := repo.created[0]

	assert.Equal(t, "John", applicant.FirstName)
	assert.Equal(t, "Q Driver", applicant.LastName)
	assert.Equal(t, "john@example.com", applicant.Email)
	assert.Equal(t, "Dallas", applicant.City)
	assert.Equal(t, "TX", applicant.State)
	assert.Equal(t, "CDL-A", applicant.CDLClass)
	assert.Equal(t, "7.5", applicant.YearsExperience)
	assert.Equal(t, "day", applicant.ShiftPref)
	assert.Equal(t, StatusApplied, applicant.Status)
	assert.Equal(t, "landing-page", applicant.Source)
	assert.Equal(t, "google", applicant.UTMSource)

	sum := sha256.Sum256([]byte("203.0.113.9"))
	assert.Equal(t, hex.EncodeToString(sum[:]), applicant.IPHash)

	require.NotNil(t, applicant.AvailabilityDate)
	assert.Equal(t, "2026-09-15", applicant.AvailabilityDate.Format("2006-01-02"))

	assert.Equal(t, "test-agent", applicant.Meta["user_agent"])
	assert.NotNil(t, applicant.Meta["submission"], "full intake payload rides along in meta")
}

func TestSubmitSurfacesRepositoryFailure(t *testing.T) {
	repo := &fakeApplicantRepo{err: errors.New("connection refused")}
	controller := newTestController(repo)

	sub := testSubmission()
	_, err := controller.Submit(context.Background(), &sub, "", "")
	assert.Error(t, err)
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantFirst string
		wantLast  string
	}{
		{name: "two parts", input: "John Driver", wantFirst: "John", wantLast: "Driver"},
		{name: "middle name folds into last", input: "John Q Driver", wantFirst: "John", wantLast: "Q Driver"},
		{name: "single token", input: "Cher", wantFirst: "Cher", wantLast: "(none)"},
		{name: "surrounding whitespace", input: "  Ana Lima  ", wantFirst: "Ana", wantLast: "Lima"},
		{name: "empty", input: "", wantFirst: "(none)", wantLast: "(none)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := SplitName(tt.input)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantLast, last)
		})
	}
}

func TestHashIP(t *testing.T) {
	assert.Empty(t, HashIP(""))

	hashed := HashIP("198.51.100.7")
	assert.Len(t, hashed, 64)
	assert.NotEqual(t, "198.51.100.7", hashed)
	assert.Equal(t, hashed, HashIP("198.51.100.7"))
}
