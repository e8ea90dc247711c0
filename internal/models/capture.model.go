package models

import "time"

// ChromeCapture is one extension-forwarded browser event. Append-only.
type ChromeCapture struct {
	BaseUUIDModel
	URL       string `gorm:"type:text;not null" json:"url"`
	Title     string `gorm:"type:text"          json:"title"`
	Timestamp string `gorm:"type:text;not null" json:"timestamp"`
}

type CaptureRequest struct {
	URL       string `json:"url"`
	Title     string `json:"title"`
	Timestamp string `json:"timestamp"`
}

// CaptureEvent is the in-memory ring entry served to the dashboard poll.
type CaptureEvent struct {
	URL        string    `json:"url"`
	Title      string    `json:"title"`
	Timestamp  string    `json:"timestamp"`
	ReceivedAt time.Time `json:"receivedAt"`
}
