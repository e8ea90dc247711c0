package adminController

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	"server/config"
	"server/internal/auth"
	"server/internal/logger"
	"server/internal/repositories"
	"server/internal/services"
	"server/internal/utils"

	. "server/internal/models"
)

// ErrBlobUnavailable marks an upload that failed before anything was
// persisted; the handler maps it to a gateway timeout.
var ErrBlobUnavailable = errors.New("blob store unavailable")

// ErrResetNotAllowed means the reset secret is unset or did not match.
var ErrResetNotAllowed = errors.New("reset secret missing or invalid")

// ErrResetFieldsMissing means the request cleared the secret gate but left
// out the username or the new password.
var ErrResetFieldsMissing = errors.New("missing username or newPassword")

type AdminController struct {
	applicantRepo repositories.ApplicantRepository
	uploadRepo    repositories.UploadRepository
	metricsRepo   repositories.MetricsRepository
	blobStore     services.BlobStore
	verifier      *auth.Verifier
	activity      *services.ActivityLog
	Config        config.Config
	log           logger.Logger
}

func New(
	applicantRepo repositories.ApplicantRepository,
	uploadRepo repositories.UploadRepository,
	metricsRepo repositories.MetricsRepository,
	blobStore services.BlobStore,
	verifier *auth.Verifier,
	activity *services.ActivityLog,
	config config.Config,
) *AdminController {
	return &AdminController{
		applicantRepo: applicantRepo,
		uploadRepo:    uploadRepo,
		metricsRepo:   metricsRepo,
		blobStore:     blobStore,
		verifier:      verifier,
		activity:      activity,
		Config:        config,
		log:           logger.New("AdminController"),
	}
}

// Authenticate checks the credentials against the admin role. Pass/fail only.
func (c *AdminController) Authenticate(username, password string) bool {
	return c.verifier.Verify(username, password, "admin")
}

// ResetHash generates a fresh bcrypt hash for the given password, gated on
// the deploy-time reset secret. The secret is checked before field presence;
// callers without it never see field-level errors. The hash is returned for
// manual rollout; the running process never swaps its own credentials.
func (c *AdminController) ResetHash(secret, username, newPassword string) (string, error) {
	log := c.log.Function("ResetHash")

	if c.Config.AdminResetSecret == "" || secret != c.Config.AdminResetSecret {
		log.Warn("rejected password hash reset")
		return "", ErrResetNotAllowed
	}
	if username == "" || newPassword == "" {
		return "", ErrResetFieldsMissing
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return "", log.Err("failed to hash password", err)
	}

	log.Info("generated replacement password hash", "username", username)
	return hash, nil
}

type UploadInput struct {
	Target      string
	Filename    string
	ContentType string
	Data        []byte
}

type UploadResult struct {
	BlobURL  string `json:"blobUrl"`
	Rows     int    `json:"rows"`
	Uploads  int    `json:"uploads"`
	Recorded bool   `json:"recorded"`
}

// Upload stores the raw file first and treats everything after the blob write
// as best effort: database failures are logged and the caller still gets the
// blob URL back. A blob failure aborts before any row exists, so a retry
// cannot leave half an upload behind.
func (c *AdminController) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	log := c.log.Function("Upload")

	if !c.blobStore.Enabled() {
		log.Warn("upload rejected, blob store not configured")
		return nil, ErrBlobUnavailable
	}

	key := services.BuildBlobKey(input.Target, input.Filename, time.Now())
	blobURL, err := c.blobStore.Store(ctx, key, input.ContentType, input.Data)
	if err != nil {
		log.Er("blob store rejected upload", err, "key", key)
		return nil, ErrBlobUnavailable
	}

	result := &UploadResult{BlobURL: blobURL}

	upload := &Upload{
		Target:   input.Target,
		Filename: input.Filename,
		Size:     int64(len(input.Data)),
		BlobURL:  blobURL,
	}
	if err := c.uploadRepo.Create(ctx, upload); err != nil {
		log.Er("failed to record upload row, blob kept", err, "key", key)
	} else {
		result.Recorded = true

		if isSettlementCSV(input) {
			result.Rows = c.replaceSettlements(ctx, upload.ID, input)
		}
	}

	result.Uploads = c.activity.RecordUpload(UploadSummary{
		Target:    input.Target,
		Filename:  input.Filename,
		Size:      int64(len(input.Data)),
		Timestamp: time.Now(),
	})

	return result, nil
}

func (c *AdminController) replaceSettlements(ctx context.Context, uploadID string, input UploadInput) int {
	log := c.log.Function("replaceSettlements")

	rows, err := utils.NormalizeSettlementCSV(bytes.NewReader(input.Data))
	if err != nil {
		log.Er("failed to parse settlement csv", err, "filename", input.Filename)
		return 0
	}

	if err := c.uploadRepo.ReplaceSettlementRecords(ctx, uploadID, rows); err != nil {
		log.Er("failed to replace settlement records", err, "uploadID", uploadID)
		return 0
	}

	return len(rows)
}

// Metrics never fails outward: an unreachable database yields zeroed
// aggregates so the dashboard still renders.
func (c *AdminController) Metrics(ctx context.Context) *DashboardMetrics {
	log := c.log.Function("Metrics")

	metrics, err := c.metricsRepo.Dashboard(ctx)
	if err != nil {
		log.Er("failed to load dashboard metrics", err)
		return &DashboardMetrics{}
	}

	return metrics
}

// RecentUploads returns the in-memory upload summaries, newest first.
func (c *AdminController) RecentUploads(limit int) []UploadSummary {
	return c.activity.RecentUploads(limit)
}

// RecentApplicants lists the latest submissions for the dashboard.
func (c *AdminController) RecentApplicants(ctx context.Context, limit int) ([]*Applicant, error) {
	return c.applicantRepo.GetRecent(ctx, limit)
}

// Applicant fetches one submission, cache-first.
func (c *AdminController) Applicant(ctx context.Context, id string) (*Applicant, error) {
	return c.applicantRepo.GetByID(ctx, id)
}

func isSettlementCSV(input UploadInput) bool {
	if strings.Contains(strings.ToLower(input.ContentType), "csv") {
		return true
	}
	return strings.HasSuffix(strings.ToLower(input.Filename), ".csv")
}
