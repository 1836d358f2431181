package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberia-elite/booking-api/internal/audit"
	domain "github.com/barberia-elite/booking-api/internal/domain/appointment"
	"github.com/barberia-elite/booking-api/internal/httperr"
	"github.com/barberia-elite/booking-api/internal/models"
)

func bookPending(t *testing.T, repo *fakeRepo) uint {
	t.Helper()

	ap := &models.Appointment{
		BarberID:    1,
		ServiceID:   1,
		StartTime:   slotAt(10, 10, 0),
		EndTime:     slotAt(10, 10, 40),
		DurationMin: 40,
		Status:      string(domain.StatusPending),
	}
	require.NoError(t, repo.CreateAppointment(context.Background(), ap))
	return ap.ID
}

func TestConfirmAppointment(t *testing.T) {
	repo := seededRepo()
	id := bookPending(t, repo)

	uc := NewConfirmAppointment(repo, audit.NewDispatcher(nil))

	ap, err := uc.Execute(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), ap.Status)
	require.NotNil(t, ap.ConfirmedAt)

	// Persisted, not just mutated in memory.
	stored, err := repo.GetAppointment(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), stored.Status)

	// A second confirm hits the transition guard.
	_, err = uc.Execute(context.Background(), id)
	require.Error(t, err)
	assert.True(t, httperr.IsConflict(err))
	assert.EqualError(t, err, "only pending appointments can be confirmed")
}

func TestConfirmAppointmentNotFound(t *testing.T) {
	uc := NewConfirmAppointment(seededRepo(), audit.NewDispatcher(nil))

	_, err := uc.Execute(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, httperr.IsNotFound(err))
}

func TestCancelAppointment(t *testing.T) {
	repo := seededRepo()
	id := bookPending(t, repo)

	uc := NewCancelAppointment(repo, audit.NewDispatcher(nil))

	ap, err := uc.Execute(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)

	// Cancelled is terminal.
	_, err = uc.Execute(context.Background(), id)
	require.Error(t, err)
	assert.True(t, httperr.IsConflict(err))
	assert.EqualError(t, err, "appointment is already cancelled")

	confirmUC := NewConfirmAppointment(repo, audit.NewDispatcher(nil))
	_, err = confirmUC.Execute(context.Background(), id)
	require.Error(t, err)
	assert.True(t, httperr.IsConflict(err))
}

func TestCancelConfirmedAppointment(t *testing.T) {
	repo := seededRepo()
	id := bookPending(t, repo)

	confirmUC := NewConfirmAppointment(repo, audit.NewDispatcher(nil))
	_, err := confirmUC.Execute(context.Background(), id)
	require.NoError(t, err)

	cancelUC := NewCancelAppointment(repo, audit.NewDispatcher(nil))
	ap, err := cancelUC.Execute(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), ap.Status)
}

func TestCancelAppointmentNotFound(t *testing.T) {
	uc := NewCancelAppointment(seededRepo(), audit.NewDispatcher(nil))

	_, err := uc.Execute(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, httperr.IsNotFound(err))
}
