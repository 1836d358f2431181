package appointment

import "github.com/barberia-elite/booking-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// ===============================
// Transition guards
// ===============================

// Allowed transitions: pending -> confirmed, pending -> cancelled,
// confirmed -> cancelled. Cancelled is terminal.

func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrConflict("only pending appointments can be confirmed")
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrConflict("appointment is already cancelled")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
