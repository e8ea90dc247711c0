package repositories

import (
	"context"

	"server/internal/database"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/services"

	"gorm.io/gorm"
)

type CaptureRepository interface {
	Create(ctx context.Context, capture *ChromeCapture) error
	GetRecent(ctx context.Context, limit int) ([]*ChromeCapture, error)
}

type captureRepository struct {
	db  database.DB
	log logger.Logger
}

func NewCapture(db database.DB) CaptureRepository {
	return &captureRepository{
		db:  db,
		log: logger.New("captureRepository"),
	}
}

func (r *captureRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *captureRepository) Create(ctx context.Context, capture *ChromeCapture) error {
	log := r.log.Function("Create")

	if err := r.db.EnsureCaptureSchema(ctx); err != nil {
		return err
	}

	if err := r.getDB(ctx).Create(capture).Error; err != nil {
		return log.Err("failed to create capture", err, "url", capture.URL)
	}

	return nil
}

func (r *captureRepository) GetRecent(ctx context.Context, limit int) ([]*ChromeCapture, error) {
	log := r.log.Function("GetRecent")

	var captures []*ChromeCapture
	if err := r.getDB(ctx).Order("created_at DESC").Limit(limit).Find(&captures).Error; err != nil {
		return nil, log.Err("failed to get recent captures", err)
	}

	return captures, nil
}
