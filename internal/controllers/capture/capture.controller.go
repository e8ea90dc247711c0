package captureController

import (
	"context"
	"errors"
	"time"

	"server/internal/logger"
	"server/internal/repositories"
	"server/internal/services"

	. "server/internal/models"
)

var ErrInvalidCapture = errors.New("capture requires url and timestamp")

const recentCaptureLimit = 20

type CaptureController struct {
	captureRepo repositories.CaptureRepository
	activity    *services.ActivityLog
	log         logger.Logger
}

func New(captureRepo repositories.CaptureRepository, activity *services.ActivityLog) *CaptureController {
	return &CaptureController{
		captureRepo: captureRepo,
		activity:    activity,
		log:         logger.New("CaptureController"),
	}
}

// Record appends the event to the in-memory ring and persists a copy. The
// ring is what the dashboard reads; a database failure only costs history
// past a restart, so it is logged and swallowed.
func (c *CaptureController) Record(ctx context.Context, request CaptureRequest) (int, error) {
	log := c.log.Function("Record")

	if request.URL == "" || request.Timestamp == "" {
		return 0, ErrInvalidCapture
	}

	total := c.activity.RecordCapture(CaptureEvent{
		URL:        request.URL,
		Title:      request.Title,
		Timestamp:  request.Timestamp,
		ReceivedAt: time.Now(),
	})

	capture := &ChromeCapture{
		URL:       request.URL,
		Title:     request.Title,
		Timestamp: request.Timestamp,
	}
	if err := c.captureRepo.Create(ctx, capture); err != nil {
		log.Er("failed to persist capture, ring retains it", err, "url", request.URL)
	}

	return total, nil
}

// Recent returns up to the last 20 events, newest first. The ring is the
// primary source; after a restart it is empty, so the persisted rows back
// it up. A database failure here only costs the pre-restart history.
func (c *CaptureController) Recent(ctx context.Context) []CaptureEvent {
	events := c.activity.RecentCaptures(recentCaptureLimit)
	if len(events) > 0 {
		return events
	}

	captures, err := c.captureRepo.GetRecent(ctx, recentCaptureLimit)
	if err != nil {
		c.log.Function("Recent").Er("failed to load persisted captures", err)
		return events
	}

	for _, capture := range captures {
		events = append(events, CaptureEvent{
			URL:        capture.URL,
			Title:      capture.Title,
			Timestamp:  capture.Timestamp,
			ReceivedAt: capture.CreatedAt,
		})
	}
	return events
}
