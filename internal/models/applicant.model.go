package models

import "time"

type ApplicantStatus string

// Hiring pipeline stages. Transitions are driven by admins outside this
// service; the enum only fixes the vocabulary.
const (
	StatusApplied       ApplicantStatus = "APPLIED"
	StatusContacted     ApplicantStatus = "CONTACTED"
	StatusCallScheduled ApplicantStatus = "CALL_SCHEDULED"
	StatusRideAlong     ApplicantStatus = "RIDE_ALONG"
	StatusHired         ApplicantStatus = "HIRED"
	StatusRejected      ApplicantStatus = "REJECTED"
)

// Applicant is the persisted row for one submitted application. Key fields
// are promoted to columns for querying; the full intake payload is kept in
// Meta as an opaque JSON document.
type Applicant struct {
	BaseUUIDModel
	FirstName        string          `gorm:"type:text;not null"            json:"firstName"`
	LastName         string          `gorm:"type:text;not null"            json:"lastName"`
	Email            string          `gorm:"type:text"                     json:"email"`
	Phone            string          `gorm:"type:text"                     json:"phone"`
	City             string          `gorm:"type:text"                     json:"city"`
	State            string          `gorm:"type:varchar(2)"               json:"state"`
	CDLClass         string          `gorm:"type:text"                     json:"cdlClass"`
	YearsExperience  string          `gorm:"type:text"                     json:"yearsExperience"`
	Endorsements     []string        `gorm:"serializer:json"               json:"endorsements"`
	AvailabilityDate *time.Time      `gorm:"type:date"                     json:"availabilityDate"`
	ShiftPref        string          `gorm:"type:text"                     json:"shiftPref"`
	ResumeURL        string          `gorm:"type:text"                     json:"resumeUrl"`
	Status           ApplicantStatus `gorm:"type:varchar(20);default:APPLIED" json:"status"`
	Source           string          `gorm:"type:text"                     json:"source"`
	UTMSource        string          `gorm:"type:text"                     json:"utmSource"`
	UTMMedium        string          `gorm:"type:text"                     json:"utmMedium"`
	UTMCampaign      string          `gorm:"type:text"                     json:"utmCampaign"`
	IPHash           string          `gorm:"type:text"                     json:"ipHash"`
	Meta             map[string]any  `gorm:"serializer:json"               json:"meta"`
}
