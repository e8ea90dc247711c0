package models

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResetRequest struct {
	Secret      string `json:"secret"`
	Username    string `json:"username"`
	NewPassword string `json:"newPassword"`
}

// StepValidationRequest carries one wizard section's worth of re-validation.
// Step ids match the form sections: personal, cdl, employment, preferences,
// attachments. An unknown or empty step validates everything.
type StepValidationRequest struct {
	Step string              `json:"step"`
	Data ApplicantSubmission `json:"data"`
}
