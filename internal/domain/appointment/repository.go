package appointment

import (
	"context"
	"time"

	"github.com/barberia-elite/booking-api/internal/models"
)

// Filter narrows ListAll. Nil fields are ignored; there is deliberately no
// free-form clause, the two optional fields are the whole contract.
type Filter struct {
	Date   *time.Time
	Status *Status
}

type Repository interface {
	// Transaction runs fn against a repository bound to a single storage
	// transaction. The booking path uses it so the conflict scan and the
	// insert cannot interleave with another writer's.
	Transaction(
		ctx context.Context,
		fn func(Repository) error,
	) error

	// -------- Catalog --------
	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Appointment (create / conflict) --------

	// FindConflicting returns every non-cancelled appointment for the barber
	// whose occupied interval intersects the half-open window [start, end),
	// ordered by start time. Touching intervals do not conflict.
	FindConflicting(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// CreateAppointment persists a new appointment. A storage-level violation
	// of the (barber_id, start_time) unique key surfaces as a ConflictError.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (read) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	GetAppointmentWithRelations(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListForDateAndBarber(
		ctx context.Context,
		date time.Time,
		barberID uint,
	) ([]models.Appointment, error)

	ListAll(
		ctx context.Context,
		filter Filter,
	) ([]models.Appointment, error)

	// -------- Appointment (state change) --------
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
