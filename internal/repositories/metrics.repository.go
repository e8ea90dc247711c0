package repositories

import (
	"context"
	"time"

	"server/internal/database"
	"server/internal/logger"
	. "server/internal/models"

	"gorm.io/gorm"
)

const (
	METRICS_CACHE_KEY    = "dashboard"
	METRICS_CACHE_EXPIRY = 30 * time.Second
)

type MetricsRepository interface {
	Dashboard(ctx context.Context) (*DashboardMetrics, error)
}

type metricsRepository struct {
	db  database.DB
	log logger.Logger
}

func NewMetrics(db database.DB) MetricsRepository {
	return &metricsRepository{
		db:  db,
		log: logger.New("metricsRepository"),
	}
}

func (r *metricsRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.SQLWithContext(ctx)
}

// Dashboard aggregates trip, mile, fuel, and pay counters across settlement
// records plus upload totals. Results are cached briefly so dashboard polls
// do not hammer the aggregates.
func (r *metricsRepository) Dashboard(ctx context.Context) (*DashboardMetrics, error) {
	log := r.log.Function("Dashboard")

	var cached DashboardMetrics
	found, err := database.NewCacheBuilder(r.db.Cache.Metrics, METRICS_CACHE_KEY).
		WithContext(ctx).
		Get(&cached)
	if err != nil {
		log.Warn("failed to get metrics from cache", "error", err)
	}
	if found {
		return &cached, nil
	}

	if err := r.db.EnsureUploadSchema(ctx); err != nil {
		return nil, err
	}

	var settlementRow struct {
		TripCount      int64
		TotalMiles     float64
		TotalFuelSpend float64
		TotalPay       float64
	}
	if err := r.getDB(ctx).Model(&SettlementRecord{}).
		Select("COUNT(*) AS trip_count, COALESCE(SUM(miles), 0) AS total_miles, COALESCE(SUM(fuel_spend), 0) AS total_fuel_spend, COALESCE(SUM(total_pay), 0) AS total_pay").
		Scan(&settlementRow).Error; err != nil {
		return nil, log.Err("failed to aggregate settlement metrics", err)
	}

	var uploadRow struct {
		UploadCount int64
		LastUpload  *time.Time
	}
	if err := r.getDB(ctx).Model(&Upload{}).
		Select("COUNT(*) AS upload_count, MAX(created_at) AS last_upload").
		Scan(&uploadRow).Error; err != nil {
		return nil, log.Err("failed to aggregate upload metrics", err)
	}

	metrics := &DashboardMetrics{
		TripCount:      settlementRow.TripCount,
		TotalMiles:     settlementRow.TotalMiles,
		TotalFuelSpend: settlementRow.TotalFuelSpend,
		TotalPay:       settlementRow.TotalPay,
		UploadCount:    uploadRow.UploadCount,
	}
	if uploadRow.LastUpload != nil {
		formatted := uploadRow.LastUpload.UTC().Format(time.RFC3339)
		metrics.LastUpload = &formatted
	}

	if err := database.NewCacheBuilder(r.db.Cache.Metrics, METRICS_CACHE_KEY).
		WithStruct(metrics).
		WithTTL(METRICS_CACHE_EXPIRY).
		WithContext(ctx).
		Set(); err != nil {
		log.Warn("failed to cache dashboard metrics", "error", err)
	}

	return metrics, nil
}
