package schedule

import (
	"time"

	pkgvalidator "github.com/durvibangera/sorte/internal/pkg/validator"
	apperrors "github.com/durvibangera/sorte/pkg/errors"
)

var validRecurrences = map[string]bool{
	RecurrenceNone:    true,
	RecurrenceDaily:   true,
	RecurrenceWeekly:  true,
	RecurrenceMonthly: true,
	RecurrenceYearly:  true,
}

// ValidateTimeRange requires end to be strictly after start
func ValidateTimeRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return apperrors.Validation("Start and end time are required")
	}
	if !end.After(start) {
		return apperrors.Validation("End time must be after start time")
	}
	return nil
}

// validateEvent checks a fully merged event before it is written
func validateEvent(e *Event) error {
	if pkgvalidator.IsBlank(e.Title) {
		return apperrors.Validation("Title is required")
	}
	if err := ValidateTimeRange(e.StartTime, e.EndTime); err != nil {
		return err
	}
	if !validRecurrences[e.Recurrence] {
		return apperrors.Validation("Recurrence must be one of none, daily, weekly, monthly, yearly")
	}
	if !pkgvalidator.IsValidColor(e.Color) {
		return apperrors.Validation("Invalid color")
	}
	return nil
}
