package timezone

import "time"

// The shop runs on a single fixed local calendar. Every parsed date, business
// rule and "today" window uses this location.
const BusinessTimezone = "America/Argentina/Buenos_Aires"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location() *time.Location {
	loc, err := time.LoadLocation(BusinessTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// DayBounds returns the half-open [start, end) window covering the calendar
// day of t in the business timezone.
func DayBounds(t time.Time) (time.Time, time.Time) {
	local := t.In(Location())
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Location())
	return start, start.Add(24 * time.Hour)
}
