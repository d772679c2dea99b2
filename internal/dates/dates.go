// Package dates validates request dates and renders the timestamps and
// durations used in generated listings.
package dates

import (
	"fmt"
	"regexp"
	"time"

	"github.com/dharmasatrya/travelassistant/internal/models"
)

const DateLayout = "2006-01-02"

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks value against the literal YYYY-MM-DD shape before asking the
// calendar whether the date exists.
func Validate(value, field string) (time.Time, error) {
	if !isoDatePattern.MatchString(value) {
		return time.Time{}, models.NewSearchError(
			models.KindInvalidDateFormat,
			field,
			fmt.Sprintf("%s must be in ISO format (YYYY-MM-DD), got: %s", field, value),
			nil,
		)
	}

	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, models.NewSearchError(
			models.KindInvalidDate,
			field,
			fmt.Sprintf("Invalid %s: %v", field, err),
			err,
		)
	}

	return t, nil
}

// ValidateRange requires end to fall strictly after start.
func ValidateRange(start, end time.Time, startField, endField string) error {
	if end.After(start) {
		return nil
	}
	return models.NewSearchError(
		models.KindInvalidDateRange,
		endField,
		fmt.Sprintf("%s date must be after %s date", endField, startField),
		nil,
	)
}

// At places a clock time on the given calendar day.
func At(day time.Time, hour, minute int) models.Timestamp {
	return models.Timestamp(time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC))
}

func Minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}

func FormatDuration(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
