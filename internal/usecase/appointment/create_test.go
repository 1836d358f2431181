package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberia-elite/booking-api/internal/audit"
	domain "github.com/barberia-elite/booking-api/internal/domain/appointment"
	"github.com/barberia-elite/booking-api/internal/httperr"
	"github.com/barberia-elite/booking-api/internal/lock"
	"github.com/barberia-elite/booking-api/internal/timezone"
)

// The fixed clock sits on Monday 2025-03-03 at 08:00; bookings in the tests
// target the following Monday, 2025-03-10.
func fixedNow() time.Time {
	return slotAt(3, 8, 0)
}

func slotAt(day, hour, minute int) time.Time {
	return time.Date(2025, 3, day, hour, minute, 0, 0, timezone.Location())
}

func newCreateUC(repo *fakeRepo) *CreateAppointment {
	return NewCreateAppointment(repo, lock.NewKeyed(), audit.NewDispatcher(nil)).
		WithNow(fixedNow)
}

func validInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		BarberID:        1,
		ServiceID:       1,
		CustomerName:    "Juan Perez",
		CustomerPhone:   "+54 11 5555-0101",
		CustomerEmail:   "juan@example.com",
		AppointmentDate: "2025-03-10 10:00",
	}
}

func seededRepo() *fakeRepo {
	repo := newFakeRepo()
	repo.addBarber(1, "Barbero Principal")
	repo.addBarber(2, "Segundo Barbero")
	repo.addService(1, "Corte de Cabello", 40, 25)
	return repo
}

func TestCreateAppointmentValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *CreateAppointmentInput)
		wantErr string
	}{
		{
			name:    "missing barber",
			mutate:  func(in *CreateAppointmentInput) { in.BarberID = 0 },
			wantErr: "barber, service, customer name, phone and appointment date are required",
		},
		{
			name:    "missing customer name",
			mutate:  func(in *CreateAppointmentInput) { in.CustomerName = "" },
			wantErr: "barber, service, customer name, phone and appointment date are required",
		},
		{
			name:    "unparseable date",
			mutate:  func(in *CreateAppointmentInput) { in.AppointmentDate = "next tuesday" },
			wantErr: "invalid date",
		},
		{
			name:    "past date",
			mutate:  func(in *CreateAppointmentInput) { in.AppointmentDate = "2025-03-01 10:00" },
			wantErr: "cannot book appointments in the past",
		},
		{
			name:    "before opening",
			mutate:  func(in *CreateAppointmentInput) { in.AppointmentDate = "2025-03-10 08:30" },
			wantErr: "appointments must be between 9:00 and 18:00",
		},
		{
			name:    "after last bookable start",
			mutate:  func(in *CreateAppointmentInput) { in.AppointmentDate = "2025-03-10 17:45" },
			wantErr: "appointments must be between 9:00 and 18:00",
		},
		{
			name:    "sunday",
			mutate:  func(in *CreateAppointmentInput) { in.AppointmentDate = "2025-03-09 10:00" },
			wantErr: "no appointments on Sundays",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newCreateUC(seededRepo())

			in := validInput()
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			require.Error(t, err)
			assert.True(t, httperr.IsValidation(err))
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestCreateAppointmentUnknownCatalog(t *testing.T) {
	uc := newCreateUC(seededRepo())

	in := validInput()
	in.ServiceID = 999
	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsNotFound(err))
	assert.EqualError(t, err, "service not found")

	in = validInput()
	in.BarberID = 999
	_, err = uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsNotFound(err))
	assert.EqualError(t, err, "barber not found")
}

func TestCreateAppointmentSuccess(t *testing.T) {
	repo := seededRepo()
	uc := newCreateUC(repo)

	out, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), out.Status)
	assert.Equal(t, 40, out.Duration)
	assert.True(t, out.StartTime.Equal(slotAt(10, 10, 0)))
	assert.True(t, out.EndTime.Equal(slotAt(10, 10, 40)))

	// Enriched with the joined catalog data.
	assert.Equal(t, "Corte de Cabello", out.ServiceName)
	assert.Equal(t, 25.0, out.ServicePrice)
	assert.Equal(t, "Barbero Principal", out.BarberName)
}

func TestCreateAppointmentOverlapRejected(t *testing.T) {
	repo := seededRepo()
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	// 10:20 lands inside the 10:00-10:40 window.
	in := validInput()
	in.AppointmentDate = "2025-03-10 10:20"

	_, err = uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsConflict(err))
	assert.Contains(t, err.Error(), "10:00")

	var ce httperr.ConflictError
	require.ErrorAs(t, err, &ce)
	assert.True(t, ce.BusyAt.Equal(slotAt(10, 10, 0)))
}

func TestCreateAppointmentBackToBack(t *testing.T) {
	repo := seededRepo()
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	// 10:40 touches the end of the 10:00-10:40 window, touching is legal.
	in := validInput()
	in.AppointmentDate = "2025-03-10 10:40"

	out, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, out.StartTime.Equal(slotAt(10, 10, 40)))
}

func TestCreateAppointmentOtherBarberUnaffected(t *testing.T) {
	repo := seededRepo()
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	in := validInput()
	in.BarberID = 2

	_, err = uc.Execute(context.Background(), in)
	require.NoError(t, err)
}

func TestCreateAppointmentCancelledSlotReopens(t *testing.T) {
	repo := seededRepo()
	uc := newCreateUC(repo)

	first, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	cancelUC := NewCancelAppointment(repo, audit.NewDispatcher(nil))
	_, err = cancelUC.Execute(context.Background(), first.ID)
	require.NoError(t, err)

	in := validInput()
	in.AppointmentDate = "2025-03-10 10:20"

	_, err = uc.Execute(context.Background(), in)
	require.NoError(t, err)
}

func TestCreateAppointmentDuplicateKeySurfacesConflict(t *testing.T) {
	repo := seededRepo()
	repo.createErr = httperr.ErrDuplicateSlot()
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), validInput())
	require.Error(t, err)
	assert.True(t, httperr.IsConflict(err))
}

func TestCreateAppointmentAcceptedLayouts(t *testing.T) {
	for _, raw := range []string{
		"2025-03-10T10:00",
		"2025-03-10 10:00",
		"2025-03-10 10:00:00",
	} {
		t.Run(raw, func(t *testing.T) {
			uc := newCreateUC(seededRepo())

			in := validInput()
			in.AppointmentDate = raw

			out, err := uc.Execute(context.Background(), in)
			require.NoError(t, err)
			assert.True(t, out.StartTime.Equal(slotAt(10, 10, 0)))
		})
	}
}
