package applicantController

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"server/internal/logger"
	"server/internal/repositories"
	"server/internal/services"
	"server/internal/validation"

	. "server/internal/models"
)

type ApplicantController struct {
	applicantRepo repositories.ApplicantRepository
	validator     *validation.ApplicantValidator
	emailService  *services.EmailService
	log           logger.Logger
}

func New(
	applicantRepo repositories.ApplicantRepository,
	validator *validation.ApplicantValidator,
	emailService *services.EmailService,
) *ApplicantController {
	return &ApplicantController{
		applicantRepo: applicantRepo,
		validator:     validator,
		emailService:  emailService,
		log:           logger.New("ApplicantController"),
	}
}

// SubmitResult is what the submission endpoint reports back. Accepted with no
// ID means the request was silently dropped (honeypot).
type SubmitResult struct {
	Accepted    bool
	ApplicantID string
	EmailSent   bool
	Errors      []validation.FieldError
}

// Submit runs the full intake pipeline: honeypot gate, schema validation,
// persistence, then a best-effort notification email.
func (c *ApplicantController) Submit(ctx context.Context, submission *ApplicantSubmission, clientIP, userAgent string) (*SubmitResult, error) {
	log := c.log.Function("Submit")

	// Bots that fill the hidden field get a success response and nothing
	// else: no row, no email, no validation feedback to learn from.
	if submission.Meta.Website != "" {
		log.Info("honeypot tripped, dropping submission", "ipHash", HashIP(clientIP))
		return &SubmitResult{Accepted: true}, nil
	}

	if fieldErrors := c.validator.Validate(submission); len(fieldErrors) > 0 {
		return &SubmitResult{Errors: fieldErrors}, nil
	}

	applicant := buildApplicant(submission, clientIP, userAgent)

	if err := c.applicantRepo.Create(ctx, applicant); err != nil {
		return nil, log.Err("failed to persist applicant", err)
	}

	emailSent := c.emailService.SendApplicantNotification(ctx, applicant, submission)

	log.Info("applicant submitted", "applicantID", applicant.ID, "emailSent", emailSent)

	return &SubmitResult{
		Accepted:    true,
		ApplicantID: applicant.ID,
		EmailSent:   emailSent,
	}, nil
}

// ValidateStep re-checks one wizard section without persisting anything.
func (c *ApplicantController) ValidateStep(submission *ApplicantSubmission, step string) []validation.FieldError {
	return c.validator.ValidateStep(submission, step)
}

func buildApplicant(sub *ApplicantSubmission, clientIP, userAgent string) *Applicant {
	firstName, lastName := SplitName(sub.PersonalInfo.FullName)

	applicant := &Applicant{
		FirstName:       firstName,
		LastName:        lastName,
		Email:           sub.PersonalInfo.Email,
		Phone:           sub.PersonalInfo.Phone,
		City:            sub.PersonalInfo.CurrentAddress.City,
		State:           sub.PersonalInfo.CurrentAddress.State,
		CDLClass:        sub.CDLInfo.LicenseType,
		YearsExperience: strconv.FormatFloat(sub.DrivingExperience.TotalYearsCDLA, 'f', -1, 64),
		Endorsements:    sub.CDLInfo.Endorsements,
		ShiftPref:       shiftPreference(sub.WorkPreferences),
		Status:          StatusApplied,
		Source:          sub.Meta.Source,
		UTMSource:       sub.Meta.UTMSource,
		UTMMedium:       sub.Meta.UTMMedium,
		UTMCampaign:     sub.Meta.UTMCampaign,
		IPHash:          HashIP(clientIP),
		Meta: map[string]any{
			"user_agent": userAgent,
			"submission": sub,
		},
	}

	if start, err := time.Parse("2006-01-02", strings.TrimSpace(sub.PositionEligibility.AvailableStartDate)); err == nil {
		applicant.AvailabilityDate = &start
	}

	// Attachments arrive inline-encoded; only an actual URL is worth keeping
	// on the promoted column.
	if strings.HasPrefix(sub.Attachments.Resume, "http") {
		applicant.ResumeURL = sub.Attachments.Resume
	}

	return applicant
}

// SplitName splits a full name at the first space. A single token becomes the
// first name with "(none)" for the last, so the row still satisfies NOT NULL.
func SplitName(fullName string) (string, string) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return "(none)", "(none)"
	}

	parts := strings.SplitN(fullName, " ", 2)
	if len(parts) == 1 {
		return parts[0], "(none)"
	}
	return parts[0], strings.TrimSpace(parts[1])
}

// HashIP stores a SHA-256 digest instead of the raw address; enough for
// dedupe and abuse review without keeping PII.
func HashIP(ip string) string {
	if ip == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:])
}

func shiftPreference(prefs WorkPreferences) string {
	switch {
	case prefs.NightShift && prefs.DayShift:
		return "any"
	case prefs.NightShift:
		return "night"
	case prefs.DayShift:
		return "day"
	default:
		return ""
	}
}
