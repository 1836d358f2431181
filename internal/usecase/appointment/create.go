package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/barberia-elite/booking-api/internal/audit"
	domain "github.com/barberia-elite/booking-api/internal/domain/appointment"
	"github.com/barberia-elite/booking-api/internal/dto"
	"github.com/barberia-elite/booking-api/internal/httperr"
	"github.com/barberia-elite/booking-api/internal/lock"
	"github.com/barberia-elite/booking-api/internal/models"
	"github.com/barberia-elite/booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BarberID  uint
	ServiceID uint

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	// Raw timestamp as received from the caller.
	AppointmentDate string
}

// Accepted timestamp shapes, tried in order.
var startLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	locks *lock.Keyed
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	locks *lock.Keyed,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		locks: locks,
		audit: audit,
		now:   timezone.Now,
	}
}

// WithNow overrides the clock source.
func (uc *CreateAppointment) WithNow(now func() time.Time) *CreateAppointment {
	uc.now = now
	return uc
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*dto.AppointmentDTO, error) {

	// --------------------------------------------------
	// Required fields
	// --------------------------------------------------
	if in.BarberID == 0 || in.ServiceID == 0 ||
		in.CustomerName == "" || in.CustomerPhone == "" ||
		in.AppointmentDate == "" {
		return nil, httperr.ErrValidation("barber, service, customer name, phone and appointment date are required")
	}

	// --------------------------------------------------
	// Date parsing
	// --------------------------------------------------
	start, err := parseStart(in.AppointmentDate)
	if err != nil {
		return nil, httperr.ErrValidation("invalid date")
	}

	// --------------------------------------------------
	// Calendar rules: past, business hours, business day
	// --------------------------------------------------
	if err := domain.ValidateStart(start, uc.now()); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Service (duration source) and barber
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	// --------------------------------------------------
	// Overlap check + commit, serialized per (barber, day) in-process and
	// sharing one storage transaction. The unique key on
	// (barber_id, start_time) remains the tie-breaker for racing writers
	// outside this process.
	// --------------------------------------------------
	release := uc.locks.Acquire(bookingKey(in.BarberID, start))
	defer release()

	ap := &models.Appointment{
		BarberID:      in.BarberID,
		ServiceID:     service.ID,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		CustomerEmail: in.CustomerEmail,
		StartTime:     start,
		DurationMin:   service.DurationMin,
		EndTime:       end,
		Status:        string(domain.InitialStatus()),
	}

	err = uc.repo.Transaction(ctx, func(txRepo domain.Repository) error {
		conflicts, err := txRepo.FindConflicting(ctx, in.BarberID, start, end)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			busyAt := conflicts[0].StartTime.In(timezone.Location())

			uc.audit.Dispatch(audit.Event{
				Action: "appointment_conflict",
				Entity: "appointment",
				Metadata: map[string]any{
					"barber_id": in.BarberID,
					"start":     start,
					"end":       end,
				},
			})

			return httperr.ErrSlotTaken(busyAt)
		}

		return txRepo.CreateAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	// --------------------------------------------------
	// Enrichment: read-after-write, not part of the booking decision.
	// --------------------------------------------------
	full, err := uc.repo.GetAppointmentWithRelations(ctx, ap.ID)
	if err != nil {
		ap.Barber = *barber
		ap.Service = *service
		full = ap
	}

	out := dto.FromAppointment(full)
	return &out, nil
}

func parseStart(raw string) (time.Time, error) {
	loc := timezone.Location()
	for _, layout := range startLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", raw)
}

func bookingKey(barberID uint, start time.Time) string {
	return fmt.Sprintf("%d|%s", barberID, start.In(timezone.Location()).Format("2006-01-02"))
}
