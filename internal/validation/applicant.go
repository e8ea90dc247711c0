package validation

import (
	"errors"
	"reflect"
	"strings"
	"time"

	. "server/internal/models"

	"github.com/go-playground/validator/v10"
)

// FieldError addresses one violated rule by the json path of the offending
// field, e.g. "cdlInfo.licenseDeniedHistory.explanation".
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type ApplicantValidator struct {
	validate *validator.Validate
}

func NewApplicantValidator() *ApplicantValidator {
	v := validator.New()

	// Error paths follow json tags so the form can address fields directly.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterStructValidation(applicantCrossChecks, ApplicantSubmission{})

	return &ApplicantValidator{validate: v}
}

// Validate returns the complete set of violations, one entry per rule, or nil
// when the submission is admissible. It never panics on malformed input.
func (av *ApplicantValidator) Validate(sub *ApplicantSubmission) []FieldError {
	err := av.validate.Struct(sub)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Path: "", Message: "Invalid submission"}}
	}

	fieldErrors := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		path := trimRootNamespace(fe.Namespace())
		fieldErrors = append(fieldErrors, FieldError{
			Path:    path,
			Message: messageFor(path, fe),
		})
	}

	return fieldErrors
}

// Form sections and the top-level field paths each one owns. Advancing past a
// wizard step re-validates only that step's paths.
var stepSections = map[string][]string{
	"personal":    {"personalInfo", "positionEligibility"},
	"cdl":         {"cdlInfo", "drivingExperience"},
	"employment":  {"employmentHistory", "accidentHistory", "trafficViolations", "duiHistory", "dotDrugAlcohol", "backgroundCheck"},
	"preferences": {"workPreferences", "emergencyContact", "cultureFit"},
	"attachments": {"attachments", "certification", "meta"},
}

// ValidateStep restricts the error set to the given form section. An unknown
// or empty step returns the full set.
func (av *ApplicantValidator) ValidateStep(sub *ApplicantSubmission, step string) []FieldError {
	all := av.Validate(sub)
	sections, ok := stepSections[step]
	if !ok {
		return all
	}

	var scoped []FieldError
	for _, fieldError := range all {
		root := fieldError.Path
		if idx := strings.IndexAny(root, ".["); idx >= 0 {
			root = root[:idx]
		}
		for _, section := range sections {
			if root == section {
				scoped = append(scoped, fieldError)
				break
			}
		}
	}

	return scoped
}

func trimRootNamespace(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

// applicantCrossChecks holds every cross-field conditional rule: the paired
// yes/no indicators with companion explanation fields, the age floor, the
// address-history window, and the team-partner contact requirement.
func applicantCrossChecks(sl validator.StructLevel) {
	sub := sl.Current().Interface().(ApplicantSubmission)

	if sub.PersonalInfo.DOB != "" {
		dob, err := parseDOB(sub.PersonalInfo.DOB)
		if err != nil {
			sl.ReportError(sub.PersonalInfo.DOB, "personalInfo.dob", "DOB", "dob_invalid", "")
		} else if ageAt(dob, time.Now()) < 21 {
			sl.ReportError(sub.PersonalInfo.DOB, "personalInfo.dob", "DOB", "dob_min_age", "")
		}
	}

	current := sub.PersonalInfo.CurrentAddress
	if current.YearsAtAddress*12+current.MonthsAtAddress < 36 && len(sub.PersonalInfo.PreviousAddresses) == 0 {
		sl.ReportError(sub.PersonalInfo.PreviousAddresses,
			"personalInfo.previousAddresses", "PreviousAddresses", "prev_addresses_required", "")
	}

	if sub.CDLInfo.CDLValidUnrestricted == "no" && sub.CDLInfo.CDLRestrictionExplanation == "" {
		sl.ReportError(sub.CDLInfo.CDLRestrictionExplanation,
			"cdlInfo.cdlRestrictionExplanation", "CDLRestrictionExplanation", "explanation_required", "")
	}
	if sub.CDLInfo.DOTMedicalValid == "yes" && sub.CDLInfo.DOTMedicalExpiration == "" {
		sl.ReportError(sub.CDLInfo.DOTMedicalExpiration,
			"cdlInfo.dotMedicalExpiration", "DOTMedicalExpiration", "explanation_required", "")
	}
	if sub.CDLInfo.LicenseDeniedHistory.HasBeenDenied == "yes" && sub.CDLInfo.LicenseDeniedHistory.Explanation == "" {
		sl.ReportError(sub.CDLInfo.LicenseDeniedHistory.Explanation,
			"cdlInfo.licenseDeniedHistory.explanation", "Explanation", "explanation_required", "")
	}
	if sub.CDLInfo.LicenseSuspendedHistory.HasBeenSuspendedOrRevoked == "yes" && sub.CDLInfo.LicenseSuspendedHistory.Explanation == "" {
		sl.ReportError(sub.CDLInfo.LicenseSuspendedHistory.Explanation,
			"cdlInfo.licenseSuspendedHistory.explanation", "Explanation", "explanation_required", "")
	}
	if sub.DUIHistory.HasDuiOrRefusal == "yes" && sub.DUIHistory.Details == "" {
		sl.ReportError(sub.DUIHistory.Details,
			"duiHistory.details", "Details", "explanation_required", "")
	}
	if sub.DOTDrugAlcohol.PositiveOrRefusedLast2Years == "yes" && sub.DOTDrugAlcohol.PositiveOrRefusedDetails == "" {
		sl.ReportError(sub.DOTDrugAlcohol.PositiveOrRefusedDetails,
			"dotDrugAlcohol.positiveOrRefusedDetails", "PositiveOrRefusedDetails", "explanation_required", "")
	}
	if sub.DOTDrugAlcohol.CurrentDotDisqualification == "yes" && sub.DOTDrugAlcohol.DisqualificationDetails == "" {
		sl.ReportError(sub.DOTDrugAlcohol.DisqualificationDetails,
			"dotDrugAlcohol.disqualificationDetails", "DisqualificationDetails", "explanation_required", "")
	}

	if sub.PositionEligibility.EmploymentType == "team" {
		if sub.PositionEligibility.TeamPartner.Name == "" {
			sl.ReportError(sub.PositionEligibility.TeamPartner.Name,
				"positionEligibility.teamPartner.name", "Name", "team_partner_required", "")
		}
		if sub.PositionEligibility.TeamPartner.Phone == "" {
			sl.ReportError(sub.PositionEligibility.TeamPartner.Phone,
				"positionEligibility.teamPartner.phone", "Phone", "team_partner_required", "")
		}
	}
}

var dobFormats = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"01/02/2006",
	"1/2/2006",
}

func parseDOB(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	for _, format := range dobFormats {
		if parsed, err := time.Parse(format, input); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, errors.New("unrecognized date")
}

// ageAt computes whole years, decremented when the month/day has not yet
// been reached.
func ageAt(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}
