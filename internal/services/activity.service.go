package services

import (
	"sync"

	. "server/internal/models"
)

const captureRingCap = 200

// ActivityLog holds the process-lifetime recent-activity state: upload
// summaries and the capture ring the dashboard polls. Nothing here survives
// a restart and nothing is shared across instances.
type ActivityLog struct {
	mu           sync.Mutex
	uploads      []UploadSummary
	captures     []CaptureEvent
	captureTotal int
}

func NewActivityLog() *ActivityLog {
	return &ActivityLog{}
}

// RecordUpload appends an upload summary and returns the running total.
func (a *ActivityLog) RecordUpload(summary UploadSummary) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.uploads = append(a.uploads, summary)
	return len(a.uploads)
}

func (a *ActivityLog) RecentUploads(limit int) []UploadSummary {
	a.mu.Lock()
	defer a.mu.Unlock()

	return lastReversed(a.uploads, limit)
}

// RecordCapture appends to the capture ring and returns the total number of
// captures seen this process lifetime.
func (a *ActivityLog) RecordCapture(event CaptureEvent) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.captures = append(a.captures, event)
	if len(a.captures) > captureRingCap {
		a.captures = a.captures[len(a.captures)-captureRingCap:]
	}
	a.captureTotal++
	return a.captureTotal
}

// RecentCaptures returns up to limit events, newest first.
func (a *ActivityLog) RecentCaptures(limit int) []CaptureEvent {
	a.mu.Lock()
	defer a.mu.Unlock()

	return lastReversed(a.captures, limit)
}

func lastReversed[T any](items []T, limit int) []T {
	if limit <= 0 || limit > len(items) {
		limit = len(items)
	}

	out := make([]T, 0, limit)
	for i := len(items) - 1; i >= len(items)-limit; i-- {
		out = append(out, items[i])
	}
	return out
}
