package app

import (
	"context"

	"server/config"
	"server/internal/auth"
	"server/internal/database"
	"server/internal/handlers/middleware"
	"server/internal/logger"
	"server/internal/repositories"
	"server/internal/services"
	"server/internal/validation"

	adminController "server/internal/controllers/admin"
	applicantController "server/internal/controllers/applicant"
	captureController "server/internal/controllers/capture"
)

type App struct {
	Database   database.DB
	Middleware middleware.Middleware
	Config     config.Config

	// Services
	TransactionService *services.TransactionService
	BlobStore          services.BlobStore
	EmailService       *services.EmailService
	ActivityLog        *services.ActivityLog
	Verifier           *auth.Verifier
	Validator          *validation.ApplicantValidator

	// Repositories
	ApplicantRepo repositories.ApplicantRepository
	UploadRepo    repositories.UploadRepository
	CaptureRepo   repositories.CaptureRepository
	MetricsRepo   repositories.MetricsRepository

	// Controllers
	ApplicantController *applicantController.ApplicantController
	AdminController     *adminController.AdminController
	CaptureController   *captureController.CaptureController
}

func New(ctx context.Context) (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	// Initialize services
	transactionService := services.NewTransactionService(db)
	blobStore, err := services.NewBlobStore(ctx, config)
	if err != nil {
		return &App{}, log.Err("failed to create blob store", err)
	}
	emailService := services.NewEmailService(config)
	activityLog := services.NewActivityLog()
	verifier := auth.NewVerifier(config)
	validator := validation.NewApplicantValidator()

	// Initialize repositories
	applicantRepo := repositories.NewApplicant(db)
	uploadRepo := repositories.NewUpload(db)
	captureRepo := repositories.NewCapture(db)
	metricsRepo := repositories.NewMetrics(db)

	// Initialize controllers with repositories and services
	middleware := middleware.New(config)
	applicantCtrl := applicantController.New(applicantRepo, validator, emailService)
	adminCtrl := adminController.New(applicantRepo, uploadRepo, metricsRepo, blobStore, verifier, activityLog, config)
	captureCtrl := captureController.New(captureRepo, activityLog)

	app := &App{
		Database:           db,
		Config:             config,
		Middleware:         middleware,
		TransactionService: transactionService,
		BlobStore:          blobStore,
		EmailService:       emailService,
		ActivityLog:        activityLog,
		Verifier:           verifier,
		Validator:          validator,
		ApplicantRepo:      applicantRepo,
		UploadRepo:         uploadRepo,
		CaptureRepo:        captureRepo,
		MetricsRepo:        metricsRepo,

		ApplicantController: applicantCtrl,
		AdminController:     adminCtrl,
		CaptureController:   captureCtrl,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")
	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.TransactionService,
		a.BlobStore,
		a.EmailService,
		a.ActivityLog,
		a.Verifier,
		a.Validator,
		a.ApplicantRepo,
		a.UploadRepo,
		a.CaptureRepo,
		a.MetricsRepo,
		a.ApplicantController,
		a.AdminController,
		a.CaptureController,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() error {
	return a.Database.Close()
}
