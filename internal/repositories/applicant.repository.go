package repositories

import (
	"context"
	"time"

	"server/internal/database"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/services"

	"gorm.io/gorm"
)

const APPLICANT_CACHE_EXPIRY = 24 * time.Hour

type ApplicantRepository interface {
	Create(ctx context.Context, applicant *Applicant) error
	GetByID(ctx context.Context, id string) (*Applicant, error)
	GetRecent(ctx context.Context, limit int) ([]*Applicant, error)
}

type applicantRepository struct {
	db  database.DB
	log logger.Logger
}

func NewApplicant(db database.DB) ApplicantRepository {
	return &applicantRepository{
		db:  db,
		log: logger.New("applicantRepository"),
	}
}

func (r *applicantRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *applicantRepository) Create(ctx context.Context, applicant *Applicant) error {
	log := r.log.Function("Create")

	if err := r.db.EnsureApplicantSchema(ctx); err != nil {
		return err
	}

	if err := r.getDB(ctx).Create(applicant).Error; err != nil {
		return log.Err("failed to create applicant", err, "email", applicant.Email)
	}

	if err := r.addApplicantToCache(ctx, applicant); err != nil {
		log.Warn("failed to add applicant to cache", "applicantID", applicant.ID, "error", err)
	}

	return nil
}

func (r *applicantRepository) GetByID(ctx context.Context, id string) (*Applicant, error) {
	log := r.log.Function("GetByID")

	var applicant Applicant
	found, err := database.NewCacheBuilder(r.db.Cache.Applicant, id).
		WithContext(ctx).
		Get(&applicant)
	if err != nil {
		log.Warn("failed to get applicant from cache", "applicantID", id, "error", err)
	}
	if found {
		return &applicant, nil
	}

	if err := r.getDB(ctx).First(&applicant, "id = ?", id).Error; err != nil {
		return nil, log.Err("failed to get applicant by id", err, "id", id)
	}

	if err := r.addApplicantToCache(ctx, &applicant); err != nil {
		log.Warn("failed to add applicant to cache", "applicantID", id, "error", err)
	}

	return &applicant, nil
}

func (r *applicantRepository) GetRecent(ctx context.Context, limit int) ([]*Applicant, error) {
	log := r.log.Function("GetRecent")

	var applicants []*Applicant
	if err := r.getDB(ctx).Order("created_at DESC").Limit(limit).Find(&applicants).Error; err != nil {
		return nil, log.Err("failed to get recent applicants", err)
	}

	return applicants, nil
}

func (r *applicantRepository) addApplicantToCache(ctx context.Context, applicant *Applicant) error {
	return database.NewCacheBuilder(r.db.Cache.Applicant, applicant.ID).
		WithStruct(applicant).
		WithTTL(APPLICANT_CACHE_EXPIRY).
		WithContext(ctx).
		Set()
}
