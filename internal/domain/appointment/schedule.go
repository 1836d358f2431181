package appointment

import (
	"time"

	"github.com/barberia-elite/booking-api/internal/httperr"
)

// Business calendar: Monday through Saturday, 9:00 to 18:00, with 17:30 as
// the last bookable start.

const (
	OpeningHour     = 9
	ClosingHour     = 18
	LastStartHour   = 17
	LastStartMinute = 30
)

func WithinBusinessHours(start time.Time) bool {
	hour := start.Hour()
	if hour < OpeningHour || hour >= ClosingHour {
		return false
	}
	if hour == LastStartHour && start.Minute() > LastStartMinute {
		return false
	}
	return true
}

func IsBusinessDay(start time.Time) bool {
	return start.Weekday() != time.Sunday
}

// ValidateStart applies every calendar rule to a proposed start, failing fast
// with the rule-specific message.
func ValidateStart(start, now time.Time) error {
	if start.Before(now) {
		return httperr.ErrValidation("cannot book appointments in the past")
	}
	if !WithinBusinessHours(start) {
		return httperr.ErrValidation("appointments must be between 9:00 and 18:00")
	}
	if !IsBusinessDay(start) {
		return httperr.ErrValidation("no appointments on Sundays")
	}
	return nil
}
