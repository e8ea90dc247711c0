package validation

import "github.com/go-playground/validator/v10"

// Per-path messages mirror the copy the form shows inline. Anything not
// listed falls back to a per-tag default.
var pathMessages = map[string]string{
	"personalInfo.fullName":                       "Full legal name is required",
	"personalInfo.dob":                            "Date of birth required",
	"personalInfo.ssnLast4":                       "Last 4 SSN required",
	"personalInfo.phone":                          "Enter a valid phone",
	"personalInfo.email":                          "Enter a valid email",
	"personalInfo.previousAddresses":              "List previous addresses for the last 3 years",
	"cdlInfo.licenseNumber":                       "License number required",
	"cdlInfo.expirationDate":                      "Expiration date required",
	"cdlInfo.cdlRestrictionExplanation":           "Explain CDL restriction",
	"cdlInfo.dotMedicalExpiration":                "Enter DOT medical expiration",
	"cdlInfo.licenseDeniedHistory.explanation":    "Explain license denial",
	"cdlInfo.licenseSuspendedHistory.explanation": "Explain suspension/revocation",
	"duiHistory.details":                          "Provide DUI/refusal details",
	"dotDrugAlcohol.positiveOrRefusedDetails":     "Provide DOT test details",
	"dotDrugAlcohol.disqualificationDetails":      "Provide disqualification details",
	"drivingExperience.equipmentExperience":       "Add at least one equipment experience",
	"employmentHistory.employers":                 "At least one employer required",
	"positionEligibility.availableStartDate":      "Start date required",
	"positionEligibility.teamPartner.name":        "Team partner name required",
	"positionEligibility.teamPartner.phone":       "Team partner phone required",
	"emergencyContact.name":                       "Name required",
	"emergencyContact.relationship":               "Relationship required",
	"emergencyContact.phone":                      "Phone required",
	"certification.signatureName":                 "Signature required",
	"certification.signatureDate":                 "Date required",
	"meta.website":                                "Leave this field empty",
}

var customTagMessages = map[string]string{
	"dob_invalid":             "Enter a valid DOB",
	"dob_min_age":             "Must be at least 21",
	"prev_addresses_required": "List previous addresses for the last 3 years",
	"explanation_required":    "Required",
	"team_partner_required":   "Required",
}

func messageFor(path string, fe validator.FieldError) string {
	if msg, ok := customTagMessages[fe.Tag()]; ok {
		// Conditional rules carry field-specific copy where available.
		if pathMsg, found := pathMessages[path]; found && fe.Tag() != "dob_invalid" && fe.Tag() != "dob_min_age" {
			return pathMsg
		}
		return msg
	}

	if msg, ok := pathMessages[path]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required", "eq":
		return "Required"
	case "email":
		return "Enter a valid email"
	case "len":
		if fe.Param() == "2" {
			return "State must be 2 letters"
		}
		return "Use last 4"
	case "min":
		switch fe.Param() {
		case "7":
			return "Enter a valid phone"
		case "3":
			return "ZIP required"
		case "1":
			return "Add at least one entry"
		}
		return "Value too small"
	case "max":
		if fe.Param() == "11" {
			return "Months 0-11"
		}
		return "Value too large"
	case "oneof":
		return "Invalid value"
	}

	return "Invalid value"
}
