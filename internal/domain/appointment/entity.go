package appointment

import (
	"time"

	"github.com/barberia-elite/booking-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment, now time.Time) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.ConfirmedAt = &now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// Interval returns the half-open window [start, end) occupied by the
// appointment, derived from the duration snapshotted at booking time.
func Interval(ap *models.Appointment) (time.Time, time.Time) {
	return ap.StartTime, ap.StartTime.Add(time.Duration(ap.DurationMin) * time.Minute)
}
