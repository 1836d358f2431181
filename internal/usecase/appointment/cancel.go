package appointment

import (
	"context"
	"time"

	"github.com/barberia-elite/booking-api/internal/audit"
	domain "github.com/barberia-elite/booking-api/internal/domain/appointment"
	"github.com/barberia-elite/booking-api/internal/models"
	"github.com/barberia-elite/booking-api/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		now:   timezone.Now,
	}
}

// Execute cancels a pending or confirmed appointment. Cancelled rows are
// excluded from the conflict scan, so the slot becomes bookable again.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(ap, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
