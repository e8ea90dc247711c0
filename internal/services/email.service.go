package services

import (
	"context"
	"fmt"

	appconfig "server/config"
	"server/internal/logger"
	. "server/internal/models"

	"github.com/resend/resend-go/v2"
)

// EmailService sends the best-effort applicant notification. Failures are
// logged and swallowed; the submission request never fails because of email.
type EmailService struct {
	client *resend.Client
	from   string
	to     string
	log    logger.Logger
}

func NewEmailService(config appconfig.Config) *EmailService {
	service := &EmailService{
		from: config.EmailFrom,
		to:   config.EmailTo,
		log:  logger.New("EmailService"),
	}

	if config.ResendAPIKey == "" {
		service.log.Info("No email API key configured, notifications disabled")
		return service
	}

	service.client = resend.NewClient(config.ResendAPIKey)
	return service
}

// SendApplicantNotification reports whether the notification actually went
// out; the caller surfaces that flag but does not act on it.
func (s *EmailService) SendApplicantNotification(ctx context.Context, applicant *Applicant, submission *ApplicantSubmission) bool {
	log := s.log.Function("SendApplicantNotification")

	if s.client == nil || s.to == "" {
		return false
	}

	body := fmt.Sprintf(
		"New driver application\n\nName: %s %s\nPhone: %s\nEmail: %s\nCity/State: %s, %s\nCDL class: %s\nYears CDL-A: %s\nPosition: %s\nAvailable: %s\nSource: %s\n",
		applicant.FirstName, applicant.LastName,
		applicant.Phone, applicant.Email,
		applicant.City, applicant.State,
		applicant.CDLClass, applicant.YearsExperience,
		submission.PositionEligibility.PositionAppliedFor,
		submission.PositionEligibility.AvailableStartDate,
		applicant.Source,
	)

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{s.to},
		Subject: fmt.Sprintf("New driver application: %s %s", applicant.FirstName, applicant.LastName),
		Text:    body,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		log.Er("failed to send applicant notification", err, "applicantID", applicant.ID)
		return false
	}

	log.Info("applicant notification sent", "applicantID", applicant.ID)
	return true
}
