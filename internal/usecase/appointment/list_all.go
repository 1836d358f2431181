package appointment

import (
	"context"

	domain "github.com/barberia-elite/booking-api/internal/domain/appointment"
	"github.com/barberia-elite/booking-api/internal/dto"
	"github.com/barberia-elite/booking-api/internal/httperr"
)

type ListAllAppointments struct {
	repo domain.Repository
}

func NewListAllAppointments(
	repo domain.Repository,
) *ListAllAppointments {
	return &ListAllAppointments{
		repo: repo,
	}
}

// Execute lists every appointment matching the typed filter, newest start
// first. Cancelled rows are included here, the admin panel wants them.
func (uc *ListAllAppointments) Execute(
	ctx context.Context,
	filter domain.Filter,
) ([]dto.AppointmentDTO, error) {

	if filter.Status != nil && !filter.Status.Valid() {
		return nil, httperr.ErrValidation("invalid status filter")
	}

	appointments, err := uc.repo.ListAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	return dto.FromAppointments(appointments), nil
}
