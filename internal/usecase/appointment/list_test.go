package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/barberia-elite/booking-api/internal/domain/appointment"
	"github.com/barberia-elite/booking-api/internal/httperr"
	"github.com/barberia-elite/booking-api/internal/models"
)

func seedDaySchedule(t *testing.T, repo *fakeRepo) {
	t.Helper()

	rows := []models.Appointment{
		{BarberID: 1, ServiceID: 1, StartTime: slotAt(10, 14, 0), EndTime: slotAt(10, 14, 40), DurationMin: 40, Status: string(domain.StatusPending)},
		{BarberID: 1, ServiceID: 1, StartTime: slotAt(10, 9, 0), EndTime: slotAt(10, 9, 40), DurationMin: 40, Status: string(domain.StatusConfirmed)},
		{BarberID: 1, ServiceID: 1, StartTime: slotAt(10, 11, 0), EndTime: slotAt(10, 11, 40), DurationMin: 40, Status: string(domain.StatusCancelled)},
		{BarberID: 2, ServiceID: 1, StartTime: slotAt(10, 9, 0), EndTime: slotAt(10, 9, 40), DurationMin: 40, Status: string(domain.StatusPending)},
		{BarberID: 1, ServiceID: 1, StartTime: slotAt(11, 9, 0), EndTime: slotAt(11, 9, 40), DurationMin: 40, Status: string(domain.StatusPending)},
	}
	for i := range rows {
		ap := rows[i]
		require.NoError(t, repo.CreateAppointment(context.Background(), &ap))
	}
}

func TestListAppointmentsByDate(t *testing.T) {
	repo := seededRepo()
	seedDaySchedule(t, repo)

	uc := NewListAppointmentsByDate(repo)

	out, err := uc.Execute(context.Background(), slotAt(10, 0, 0), 1)
	require.NoError(t, err)

	// Cancelled rows, other barbers and other days are excluded; the rest is
	// earliest first.
	require.Len(t, out, 2)
	assert.True(t, out[0].StartTime.Equal(slotAt(10, 9, 0)))
	assert.True(t, out[1].StartTime.Equal(slotAt(10, 14, 0)))
}

func TestListAppointmentsByDateUnknownBarber(t *testing.T) {
	uc := NewListAppointmentsByDate(seededRepo())

	_, err := uc.Execute(context.Background(), slotAt(10, 0, 0), 999)
	require.Error(t, err)
	assert.True(t, httperr.IsNotFound(err))
	assert.EqualError(t, err, "barber not found")
}

func TestListAllAppointments(t *testing.T) {
	repo := seededRepo()
	seedDaySchedule(t, repo)

	uc := NewListAllAppointments(repo)

	out, err := uc.Execute(context.Background(), domain.Filter{})
	require.NoError(t, err)
	// Unlike the public listing, cancelled rows are included.
	require.Len(t, out, 5)

	// Newest start first.
	for i := 1; i < len(out); i++ {
		assert.False(t, out[i-1].StartTime.Before(out[i].StartTime))
	}
}

func TestListAllAppointmentsFiltered(t *testing.T) {
	repo := seededRepo()
	seedDaySchedule(t, repo)

	uc := NewListAllAppointments(repo)

	cancelled := domain.StatusCancelled
	out, err := uc.Execute(context.Background(), domain.Filter{Status: &cancelled})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, string(domain.StatusCancelled), out[0].Status)

	date := slotAt(11, 0, 0)
	out, err = uc.Execute(context.Background(), domain.Filter{Date: &date})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].StartTime.Equal(slotAt(11, 9, 0)))
}

func TestListAllAppointmentsInvalidStatus(t *testing.T) {
	uc := NewListAllAppointments(seededRepo())

	bogus := domain.Status("scheduled")
	_, err := uc.Execute(context.Background(), domain.Filter{Status: &bogus})
	require.Error(t, err)
	assert.True(t, httperr.IsValidation(err))
	assert.EqualError(t, err, "invalid status filter")
}
