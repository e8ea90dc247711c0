package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"server/config"
	"server/internal/app"
	"server/internal/auth"
	adminController "server/internal/controllers/admin"
	applicantController "server/internal/controllers/applicant"
	captureController "server/internal/controllers/capture"
	"server/internal/handlers/middleware"
	"server/internal/services"
	"server/internal/utils"
	"server/internal/validation"

	. "server/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubApplicantRepo struct {
	created int
}

func (s *stubApplicantRepo) Create(ctx context.Context, applicant *Applicant) error {
	s.created++
	applicant.ID = "applicant-1"
	return nil
}

func (s *stubApplicantRepo) GetByID(ctx context.Context, id string) (*Applicant, error) {
	return nil, errors.New("not implemented")
}

func (s *stubApplicantRepo) GetRecent(ctx context.Context, limit int) ([]*Applicant, error) {
	return nil, errors.New("not implemented")
}

type stubCaptureRepo struct{}

func (s *stubCaptureRepo) Create(ctx context.Context, capture *ChromeCapture) error { return nil }

func (s *stubCaptureRepo) GetRecent(ctx context.Context, limit int) ([]*ChromeCapture, error) {
	return nil, nil
}

type stubUploadRepo struct{}

func (s *stubUploadRepo) Create(ctx context.Context, upload *Upload) error { return nil }

func (s *stubUploadRepo) ReplaceSettlementRecords(ctx context.Context, uploadID string, rows []utils.SettlementRow) error {
	return nil
}

type stubMetricsRepo struct{}

func (s *stubMetricsRepo) Dashboard(ctx context.Context) (*DashboardMetrics, error) {
	return &DashboardMetrics{}, nil
}

type stubBlobStore struct{}

func (s *stubBlobStore) Enabled() bool { return true }

func (s *stubBlobStore) Store(ctx context.Context, key, contentType string, data []byte) (string, error) {
	return "https://blobs.example/" + key, nil
}

func newTestApp(repo *stubApplicantRepo, cfg config.Config) *fiber.App {
	application := app.App{
		Middleware: middleware.New(cfg),
		ApplicantController: applicantController.New(
			repo,
			validation.NewApplicantValidator(),
			services.NewEmailService(cfg),
		),
		AdminController: adminController.New(
			repo,
			&stubUploadRepo{},
			&stubMetricsRepo{},
			&stubBlobStore{},
			auth.NewVerifier(cfg),
			services.NewActivityLog(),
			cfg,
		),
		CaptureController: captureController.New(&stubCaptureRepo{}, services.NewActivityLog()),
	}

	server := fiber.New()
	api := server.Group("/api")
	NewApplicantHandler(application, api).Register()
	NewAdminHandler(application, api).Register()
	NewCaptureHandler(application, api).Register()

	return server
}

func postJSON(t *testing.T, server *fiber.App, path string, payload any) (int, map[string]any) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := server.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp.StatusCode, decoded
}

func TestSubmitEndpointRejectsInvalidPayload(t *testing.T) {
	repo := &stubApplicantRepo{}
	server := newTestApp(repo, config.Config{})

	status, body := postJSON(t, server, "/api/applicants/", ApplicantSubmission{})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["ok"])
	assert.NotEmpty(t, body["errors"])
	assert.Zero(t, repo.created)
}

func TestSubmitEndpointHoneypotLooksLikeSuccess(t *testing.T) {
	repo := &stubApplicantRepo{}
	server := newTestApp(repo, config.Config{})

	sub := ApplicantSubmission{Meta: SubmissionMeta{Website: "filled by a bot"}}
	status, body := postJSON(t, server, "/api/applicants/", sub)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["ok"])
	_, hasID := body["id"]
	assert.False(t, hasID, "a dropped submission gets no id back")
	assert.Zero(t, repo.created)
}

func TestValidateEndpointScopesToStep(t *testing.T) {
	server := newTestApp(&stubApplicantRepo{}, config.Config{})

	// Broken personal section, but we only ask about preferences.
	request := StepValidationRequest{Step: "preferences", Data: ApplicantSubmission{}}
	status, body := postJSON(t, server, "/api/applicants/validate", request)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, body["ok"], "emergency contact fields are part of preferences")

	request.Data.EmergencyContact = EmergencyContact{
		Name: "Jane Driver", Relationship: "Spouse", Phone: "5559876543",
	}
	status, body = postJSON(t, server, "/api/applicants/validate", request)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["ok"], "personal-section errors must not leak into preferences")
}

func TestAuthEndpointResponses(t *testing.T) {
	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)

	server := newTestApp(&stubApplicantRepo{}, config.Config{
		AdminUsername:     "ops@example.com",
		AdminPasswordHash: hash,
	})

	t.Run("success returns message key", func(t *testing.T) {
		status, body := postJSON(t, server, "/api/admin/auth", LoginRequest{
			Username: "ops@example.com",
			Password: "correct horse",
		})

		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "Authenticated", body["message"])
	})

	t.Run("missing fields", func(t *testing.T) {
		status, body := postJSON(t, server, "/api/admin/auth", LoginRequest{Username: "ops@example.com"})

		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "Missing credentials", body["message"])
	})

	t.Run("failure modes share one body", func(t *testing.T) {
		status, wrongPassword := postJSON(t, server, "/api/admin/auth", LoginRequest{
			Username: "ops@example.com", Password: "wrong",
		})
		assert.Equal(t, fiber.StatusUnauthorized, status)

		status, unknownUser := postJSON(t, server, "/api/admin/auth", LoginRequest{
			Username: "ghost@example.com", Password: "correct horse",
		})
		assert.Equal(t, fiber.StatusUnauthorized, status)

		assert.Equal(t, wrongPassword, unknownUser)
		assert.Equal(t, "Invalid credentials", wrongPassword["message"])
	})
}

func TestResetEndpointResponses(t *testing.T) {
	server := newTestApp(&stubApplicantRepo{}, config.Config{
		AdminResetSecret: "rotate-me",
	})

	t.Run("secret checked before field presence", func(t *testing.T) {
		status, body := postJSON(t, server, "/api/admin/reset", ResetRequest{})

		assert.Equal(t, fiber.StatusForbidden, status)
		assert.Equal(t, "Reset secret missing or invalid", body["message"])
	})

	t.Run("missing username", func(t *testing.T) {
		status, body := postJSON(t, server, "/api/admin/reset", ResetRequest{
			Secret: "rotate-me", NewPassword: "new password",
		})

		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "Missing username or newPassword", body["message"])
	})

	t.Run("success echoes username with the hash", func(t *testing.T) {
		status, body := postJSON(t, server, "/api/admin/reset", ResetRequest{
			Secret: "rotate-me", Username: "ops@example.com", NewPassword: "new password",
		})

		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "ops@example.com", body["username"])
		assert.NotEmpty(t, body["passwordHash"])
		assert.Contains(t, body["message"], "Password hashed")
	})
}

func TestCaptureEndpoints(t *testing.T) {
	server := newTestApp(&stubApplicantRepo{}, config.Config{})

	status, _ := postJSON(t, server, "/api/chrome-capture/", CaptureRequest{Title: "no url"})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body := postJSON(t, server, "/api/chrome-capture/", CaptureRequest{
		URL:       "https://example.com",
		Title:     "Example",
		Timestamp: "2026-08-30T10:00:00Z",
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Captured", body["message"])
	assert.Equal(t, float64(1), body["total"])

	req := httptest.NewRequest(fiber.MethodGet, "/api/chrome-capture/", nil)
	resp, err := server.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var listing struct {
		Events []CaptureEvent `json:"events"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listing))
	require.Len(t, listing.Events, 1)
	assert.Equal(t, "https://example.com", listing.Events[0].URL)
}
