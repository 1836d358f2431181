package httperr

import (
	"errors"
	"fmt"
	"time"
)

// Error taxonomy of the booking core. Handlers translate these into HTTP
// statuses via Respond; anything outside the taxonomy is treated as internal
// and its detail is kept out of the response body.

type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func ErrValidation(message string) error {
	return ValidationError{Message: message}
}

type NotFoundError struct {
	Entity string
}

func (e NotFoundError) Error() string {
	return e.Entity + " not found"
}

func ErrNotFound(entity string) error {
	return NotFoundError{Entity: entity}
}

type ConflictError struct {
	Message string
	BusyAt  time.Time
}

func (e ConflictError) Error() string {
	return e.Message
}

// ErrSlotTaken marks a scheduling collision. When the conflicting start time
// is known it is included so the caller can offer the user an alternative.
func ErrSlotTaken(busyAt time.Time) error {
	return ConflictError{
		Message: fmt.Sprintf("barber is not available at that time, there is already an appointment at %s", busyAt.Format("15:04")),
		BusyAt:  busyAt,
	}
}

// ErrDuplicateSlot covers storage-level uniqueness violations caught at the
// commit boundary, where the conflicting row was not read back.
func ErrDuplicateSlot() error {
	return ConflictError{Message: "an appointment already exists for that barber at that time"}
}

func ErrConflict(message string) error {
	return ConflictError{Message: message}
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nfe NotFoundError
	return errors.As(err, &nfe)
}

func IsConflict(err error) bool {
	var ce ConflictError
	return errors.As(err, &ce)
}
