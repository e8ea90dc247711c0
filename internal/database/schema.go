package database

import (
	"context"
	"sync"

	. "server/internal/models"
)

// SchemaState guards lazy table creation. Each table group is created at most
// once per process lifetime; the ready flag is only set on success, so a
// failed attempt is retried on the next request.
type SchemaState struct {
	mu              sync.Mutex
	applicantsReady bool
	uploadsReady    bool
	capturesReady   bool
}

func (s *DB) EnsureApplicantSchema(ctx context.Context) error {
	s.Schema.mu.Lock()
	defer s.Schema.mu.Unlock()

	if s.Schema.applicantsReady {
		return nil
	}

	if err := s.SQLWithContext(ctx).AutoMigrate(&Applicant{}); err != nil {
		return s.log.Function("EnsureApplicantSchema").Err("failed to migrate applicants", err)
	}

	s.Schema.applicantsReady = true
	return nil
}

func (s *DB) EnsureUploadSchema(ctx context.Context) error {
	s.Schema.mu.Lock()
	defer s.Schema.mu.Unlock()

	if s.Schema.uploadsReady {
		return nil
	}

	if err := s.SQLWithContext(ctx).AutoMigrate(&Upload{}, &SettlementRecord{}); err != nil {
		return s.log.Function("EnsureUploadSchema").Err("failed to migrate uploads", err)
	}

	s.Schema.uploadsReady = true
	return nil
}

func (s *DB) EnsureCaptureSchema(ctx context.Context) error {
	s.Schema.mu.Lock()
	defer s.Schema.mu.Unlock()

	if s.Schema.capturesReady {
		return nil
	}

	if err := s.SQLWithContext(ctx).AutoMigrate(&ChromeCapture{}); err != nil {
		return s.log.Function("EnsureCaptureSchema").Err("failed to migrate captures", err)
	}

	s.Schema.capturesReady = true
	return nil
}
