package repositories

import (
	"context"

	"server/internal/database"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/services"
	"server/internal/utils"

	"gorm.io/gorm"
)

type UploadRepository interface {
	Create(ctx context.Context, upload *Upload) error
	ReplaceSettlementRecords(ctx context.Context, uploadID string, rows []utils.SettlementRow) error
}

type uploadRepository struct {
	db  database.DB
	log logger.Logger
}

func NewUpload(db database.DB) UploadRepository {
	return &uploadRepository{
		db:  db,
		log: logger.New("uploadRepository"),
	}
}

func (r *uploadRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *uploadRepository) Create(ctx context.Context, upload *Upload) error {
	log := r.log.Function("Create")

	if err := r.db.EnsureUploadSchema(ctx); err != nil {
		return err
	}

	if err := r.getDB(ctx).Create(upload).Error; err != nil {
		return log.Err("failed to create upload", err, "target", upload.Target)
	}

	return nil
}

// ReplaceSettlementRecords drops any prior rows for the upload and inserts
// the new batch in one multi-row statement. Re-processing the same upload is
// therefore idempotent.
func (r *uploadRepository) ReplaceSettlementRecords(ctx context.Context, uploadID string, rows []utils.SettlementRow) error {
	log := r.log.Function("ReplaceSettlementRecords")

	if err := r.db.EnsureUploadSchema(ctx); err != nil {
		return err
	}

	db := r.getDB(ctx)

	if err := db.Where("upload_id = ?", uploadID).Delete(&SettlementRecord{}).Error; err != nil {
		return log.Err("failed to delete prior settlement records", err, "uploadID", uploadID)
	}

	if len(rows) == 0 {
		return nil
	}

	records := make([]SettlementRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, SettlementRecord{
			UploadID:  uploadID,
			TripDate:  row.TripDate,
			Vehicle:   row.Vehicle,
			Driver:    row.Driver,
			Route:     row.Route,
			Miles:     row.Miles,
			FuelRate:  row.FuelRate,
			TotalRate: row.TotalRate,
			FuelSpend: row.FuelSpend,
			TotalPay:  row.TotalPay,
		})
	}

	if err := db.Create(&records).Error; err != nil {
		return log.Err("failed to insert settlement records", err,
			"uploadID", uploadID, "rows", len(records))
	}

	log.Info("settlement records replaced", "uploadID", uploadID, "rows", len(records))
	return nil
}
