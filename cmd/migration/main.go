package main

import (
	"context"
	"os"

	"server/config"
	"server/internal/database"
	"server/internal/logger"
)

// Creates every table group up front. The server creates tables lazily on
// first use; this command exists for deployments that want the schema in
// place before taking traffic.
func main() {
	log := logger.New("migration")

	config, err := config.InitConfig()
	if err != nil {
		log.Er("failed to initialize config", err)
		os.Exit(1)
	}

	db, err := database.New(config)
	if err != nil {
		log.Er("failed to connect to database", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	steps := []struct {
		name string
		run  func(context.Context) error
	}{
		{"applicants", db.EnsureApplicantSchema},
		{"uploads", db.EnsureUploadSchema},
		{"captures", db.EnsureCaptureSchema},
	}

	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			log.Er("migration failed", err, "tables", step.name)
			os.Exit(1)
		}
		log.Info("migrated", "tables", step.name)
	}
}
