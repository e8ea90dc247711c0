package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Upload records one admin file upload. The raw bytes live in the blob store;
// only the reference is kept here. Never mutated after creation.
type Upload struct {
	BaseUUIDModel
	Target   string `gorm:"type:text;not null" json:"target"`
	Filename string `gorm:"type:text;not null" json:"filename"`
	Size     int64  `gorm:"not null"           json:"size"`
	BlobURL  string `gorm:"type:text;not null" json:"blobUrl"`
}

// SettlementRecord is one parsed row of a carrier settlement CSV. Monetary
// fields are nullable: a row survives with partial data as long as it has a
// trip date and miles.
type SettlementRecord struct {
	BaseUUIDModel
	UploadID  string           `gorm:"type:varchar(64);index;not null" json:"uploadId"`
	TripDate  time.Time        `gorm:"type:date"       json:"tripDate"`
	Vehicle   *string          `gorm:"type:text"       json:"vehicle"`
	Driver    *string          `gorm:"type:text"       json:"driver"`
	Route     *string          `gorm:"type:text"       json:"route"`
	Miles     *decimal.Decimal `gorm:"type:numeric"    json:"miles"`
	FuelRate  *decimal.Decimal `gorm:"type:numeric"    json:"fuelRate"`
	TotalRate *decimal.Decimal `gorm:"type:numeric"    json:"totalRate"`
	FuelSpend *decimal.Decimal `gorm:"type:numeric"    json:"fuelSpend"`
	TotalPay  *decimal.Decimal `gorm:"type:numeric"    json:"totalPay"`
}

// UploadSummary is the process-lifetime recent-upload entry kept in memory
// for the dashboard; it is deliberately not durable.
type UploadSummary struct {
	Target    string    `json:"target"`
	Filename  string    `json:"fileName"`
	Size      int64     `json:"size"`
	Timestamp time.Time `json:"timestamp"`
}

type DashboardMetrics struct {
	TripCount      int64   `json:"tripCount"`
	TotalMiles     float64 `json:"totalMiles"`
	TotalFuelSpend float64 `json:"totalFuelSpend"`
	TotalPay       float64 `json:"totalPay"`
	UploadCount    int64   `json:"uploadCount"`
	LastUpload     *string `json:"lastUpload"`
}
