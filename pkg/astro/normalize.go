package astro

import (
	"fmt"
	"strconv"
	"strings"

	"vedic-chart-api/pkg/models"
)

// MissingFieldError indicates a required birth-data field was absent or
// of the wrong type, before any parsing was attempted.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %q is missing or invalid", e.Field)
}

// ValidationError indicates the birth date or time was present but could
// not be decomposed into numbers.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NormalizeBirthInput converts the form-level birth data into the
// numeric payload shape the external calculation API expects.
// The month stays 1-12 and the hour becomes decimal (4h33min -> 4.55).
//
// Calendar legality (e.g. February 31st) and timezone range are not
// checked here; the external service is the authority on domain
// validity. A coordinate or timezone of exactly 0.0 is valid, which is
// why presence is checked against nil pointers and never against the
// zero value.
func NormalizeBirthInput(in models.BirthInput) (models.CalculationRequest, error) {
	var empty models.CalculationRequest

	if in.BirthDate == "" {
		return empty, &MissingFieldError{Field: "birthDate"}
	}
	if in.BirthTime == "" {
		return empty, &MissingFieldError{Field: "birthTime"}
	}
	if in.Timezone == nil {
		return empty, &MissingFieldError{Field: "timezone"}
	}
	if in.Latitude == nil {
		return empty, &MissingFieldError{Field: "latitude"}
	}
	if in.Longitude == nil {
		return empty, &MissingFieldError{Field: "longitude"}
	}

	dateParts := strings.Split(in.BirthDate, "-")
	if len(dateParts) != 3 {
		return empty, &ValidationError{Reason: "invalid date format, expected YYYY-MM-DD"}
	}

	year, errY := strconv.Atoi(dateParts[0])
	month, errM := strconv.Atoi(dateParts[1])
	day, errD := strconv.Atoi(dateParts[2])
	if errY != nil || errM != nil || errD != nil {
		return empty, &ValidationError{Reason: "invalid date format, expected YYYY-MM-DD"}
	}

	timeParts := strings.Split(in.BirthTime, ":")
	if len(timeParts) < 2 {
		return empty, &ValidationError{Reason: "invalid time format, expected HH:MM"}
	}

	hours, errH := strconv.Atoi(timeParts[0])
	minutes, errMin := strconv.Atoi(timeParts[1])
	if errH != nil || errMin != nil {
		return empty, &ValidationError{Reason: "invalid time format, expected HH:MM"}
	}

	decimalHour := float64(hours) + float64(minutes)/60

	return models.CalculationRequest{
		Year:     year,
		Month:    month,
		Day:      day,
		Hour:     decimalHour,
		Timezone: *in.Timezone,
		Lat:      *in.Latitude,
		Lon:      *in.Longitude,
	}, nil
}
