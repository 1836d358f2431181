package appointment

import (
	"context"
	"time"

	domain "github.com/barberia-elite/booking-api/internal/domain/appointment"
	"github.com/barberia-elite/booking-api/internal/dto"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

// Execute returns the barber's non-cancelled appointments for the calendar
// day of date, earliest first.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date time.Time,
	barberID uint,
) ([]dto.AppointmentDTO, error) {

	if _, err := uc.repo.GetBarber(ctx, barberID); err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListForDateAndBarber(ctx, date, barberID)
	if err != nil {
		return nil, err
	}

	return dto.FromAppointments(appointments), nil
}
