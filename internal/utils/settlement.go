package utils

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SettlementRow is one normalized settlement line. Monetary fields are nil
// when the source cell was missing or unparseable; the row itself survives
// as long as it carries a trip date and miles.
type SettlementRow struct {
	TripDate  time.Time
	Vehicle   *string
	Driver    *string
	Route     *string
	Miles     *decimal.Decimal
	FuelRate  *decimal.Decimal
	TotalRate *decimal.Decimal
	FuelSpend *decimal.Decimal
	TotalPay  *decimal.Decimal
}

// Carrier sheets disagree on column names; every synonym list is matched
// against trimmed, upper-cased headers.
var settlementHeaderSynonyms = map[string][]string{
	"date":      {"DATE", "TRIP DATE"},
	"vehicle":   {"VEHICLE", "VEHICLE ID", "TRUCK"},
	"driver":    {"DRIVER #1", "DRIVER 1", "DRIVER"},
	"origin":    {"LEG ORG", "LEG ORIG", "ORIGIN"},
	"dest":      {"LEG DEST", "DESTINATION", "DEST"},
	"miles":     {"MILES", "MILES QTY", "TOTAL MILES"},
	"fuelRate":  {"FUEL", "FUEL RATE"},
	"totalRate": {"TOTAL RATE", "RATE"},
}

var monthAbbreviations = map[string]time.Month{
	"JAN": time.January, "FEB": time.February, "MAR": time.March,
	"APR": time.April, "MAY": time.May, "JUN": time.June,
	"JUL": time.July, "AUG": time.August, "SEP": time.September,
	"OCT": time.October, "NOV": time.November, "DEC": time.December,
}

var tripDateFormats = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	time.RFC3339,
}

var (
	numericScrub   = regexp.MustCompile(`[^0-9.\-]`)
	dayMonthYearRe = regexp.MustCompile(`^(\d{1,2})-([A-Za-z]{3})-(\d{2,4})$`)
)

// NormalizeSettlementCSV converts a carrier settlement CSV into typed rows.
// Rows without a parseable trip date or miles value are dropped.
func NormalizeSettlementCSV(r io.Reader) ([]SettlementRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read settlement headers: %w", err)
	}

	columns := make(map[string]int, len(headers))
	for i, header := range headers {
		columns[strings.ToUpper(strings.TrimSpace(header))] = i
	}

	lookup := func(record []string, field string) string {
		for _, synonym := range settlementHeaderSynonyms[field] {
			if idx, ok := columns[synonym]; ok && idx < len(record) {
				return strings.TrimSpace(record[idx])
			}
		}
		return ""
	}

	var rows []SettlementRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read settlement row: %w", err)
		}

		tripDate, ok := ParseTripDate(lookup(record, "date"))
		if !ok {
			continue
		}

		miles := ParseLooseNumber(lookup(record, "miles"))
		if miles == nil {
			continue
		}

		fuelRate := ParseLooseNumber(lookup(record, "fuelRate"))
		totalRate := ParseLooseNumber(lookup(record, "totalRate"))

		row := SettlementRow{
			TripDate:  tripDate,
			Vehicle:   optionalString(lookup(record, "vehicle")),
			Driver:    optionalString(lookup(record, "driver")),
			Route:     buildRoute(lookup(record, "origin"), lookup(record, "dest")),
			Miles:     miles,
			FuelRate:  fuelRate,
			TotalRate: totalRate,
			FuelSpend: multiplyRate(fuelRate, miles),
			TotalPay:  multiplyRate(totalRate, miles),
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// ParseTripDate tries the generic format list first, then falls back to the
// DD-MMM-YYYY pattern some carriers export.
func ParseTripDate(input string) (time.Time, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, false
	}

	for _, format := range tripDateFormats {
		if parsed, err := time.Parse(format, input); err == nil {
			return parsed.UTC(), true
		}
	}

	matches := dayMonthYearRe.FindStringSubmatch(input)
	if matches == nil {
		return time.Time{}, false
	}

	month, ok := monthAbbreviations[strings.ToUpper(matches[2])]
	if !ok {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(matches[1])
	year, _ := strconv.Atoi(matches[3])
	if year < 100 {
		year += 2000
	}
	if day < 1 || day > 31 {
		return time.Time{}, false
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true
}

// ParseLooseNumber strips everything but digits, decimal point, and minus
// sign before parsing. An unparseable result is nil, not an error.
func ParseLooseNumber(input string) *decimal.Decimal {
	cleaned := numericScrub.ReplaceAllString(input, "")
	if cleaned == "" || cleaned == "-" || cleaned == "." {
		return nil
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil
	}

	return &value
}

func multiplyRate(rate, miles *decimal.Decimal) *decimal.Decimal {
	if rate == nil || miles == nil {
		return nil
	}
	product := rate.Mul(*miles)
	return &product
}

// buildRoute joins the non-empty endpoints; a lone endpoint stands alone
// rather than carrying a dangling arrow.
func buildRoute(origin, dest string) *string {
	var route string
	switch {
	case origin != "" && dest != "":
		route = origin + " → " + dest
	case origin != "":
		route = origin
	case dest != "":
		route = dest
	default:
		return nil
	}
	return &route
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
