package appointment

import (
	"context"
	"sort"
	"time"

	domain "github.com/barberia-elite/booking-api/internal/domain/appointment"
	"github.com/barberia-elite/booking-api/internal/httperr"
	"github.com/barberia-elite/booking-api/internal/models"
	"github.com/barberia-elite/booking-api/internal/timezone"
)

// fakeRepo is an in-memory domain.Repository. It mirrors the storage
// semantics the use cases rely on: cancelled rows are invisible to the
// conflict scan and the (barber, start) pair is unique.
type fakeRepo struct {
	barbers      map[uint]models.Barber
	services     map[uint]models.Service
	appointments map[uint]models.Appointment

	nextID    uint
	createErr error
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		barbers:      make(map[uint]models.Barber),
		services:     make(map[uint]models.Service),
		appointments: make(map[uint]models.Appointment),
	}
}

func (r *fakeRepo) Transaction(ctx context.Context, fn func(domain.Repository) error) error {
	return fn(r)
}

func (r *fakeRepo) addBarber(id uint, name string) {
	r.barbers[id] = models.Barber{ID: id, Name: name}
}

func (r *fakeRepo) addService(id uint, name string, durationMin int, price float64) {
	r.services[id] = models.Service{ID: id, Name: name, DurationMin: durationMin, Price: price}
}

func (r *fakeRepo) GetBarber(ctx context.Context, id uint) (*models.Barber, error) {
	b, ok := r.barbers[id]
	if !ok {
		return nil, httperr.ErrNotFound("barber")
	}
	return &b, nil
}

func (r *fakeRepo) GetService(ctx context.Context, id uint) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, httperr.ErrNotFound("service")
	}
	return &s, nil
}

func (r *fakeRepo) FindConflicting(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.BarberID != barberID || ap.Status == string(domain.StatusCancelled) {
			continue
		}
		if domain.Overlaps(ap.StartTime, ap.EndTime, start, end) {
			out = append(out, ap)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func (r *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}

	for _, existing := range r.appointments {
		if existing.BarberID == ap.BarberID && existing.StartTime.Equal(ap.StartTime) {
			return httperr.ErrDuplicateSlot()
		}
	}

	r.nextID++
	ap.ID = r.nextID
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, httperr.ErrNotFound("appointment")
	}
	return &ap, nil
}

func (r *fakeRepo) GetAppointmentWithRelations(ctx context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, httperr.ErrNotFound("appointment")
	}
	ap.Barber = r.barbers[ap.BarberID]
	ap.Service = r.services[ap.ServiceID]
	return &ap, nil
}

func (r *fakeRepo) ListForDateAndBarber(
	ctx context.Context,
	date time.Time,
	barberID uint,
) ([]models.Appointment, error) {

	dayStart, dayEnd := timezone.DayBounds(date)

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.BarberID != barberID || ap.Status == string(domain.StatusCancelled) {
			continue
		}
		if ap.StartTime.Before(dayStart) || !ap.StartTime.Before(dayEnd) {
			continue
		}
		out = append(out, ap)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func (r *fakeRepo) ListAll(ctx context.Context, filter domain.Filter) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if filter.Status != nil && ap.Status != string(*filter.Status) {
			continue
		}
		if filter.Date != nil {
			dayStart, dayEnd := timezone.DayBounds(*filter.Date)
			if ap.StartTime.Before(dayStart) || !ap.StartTime.Before(dayEnd) {
				continue
			}
		}
		out = append(out, ap)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[j].StartTime.Before(out[i].StartTime)
	})
	return out, nil
}

func (r *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if _, ok := r.appointments[ap.ID]; !ok {
		return httperr.ErrNotFound("appointment")
	}
	r.appointments[ap.ID] = *ap
	return nil
}
