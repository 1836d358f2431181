package httperr

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrNotFoundMessage(t *testing.T) {
	assert.EqualError(t, ErrNotFound("barber"), "barber not found")
	assert.EqualError(t, ErrNotFound("service"), "service not found")
	assert.EqualError(t, ErrNotFound("appointment"), "appointment not found")
}

func TestErrSlotTaken(t *testing.T) {
	busyAt := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	err := ErrSlotTaken(busyAt)
	assert.EqualError(t, err, "barber is not available at that time, there is already an appointment at 10:00")

	var ce ConflictError
	require.ErrorAs(t, err, &ce)
	assert.True(t, ce.BusyAt.Equal(busyAt))
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		validation bool
		notFound   bool
		conflict   bool
	}{
		{"validation", ErrValidation("invalid date"), true, false, false},
		{"not found", ErrNotFound("barber"), false, true, false},
		{"slot taken", ErrSlotTaken(time.Now()), false, false, true},
		{"duplicate slot", ErrDuplicateSlot(), false, false, true},
		{"plain error", errors.New("boom"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.validation, IsValidation(tt.err))
			assert.Equal(t, tt.notFound, IsNotFound(tt.err))
			assert.Equal(t, tt.conflict, IsConflict(tt.err))
		})
	}
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("creating appointment: %w", ErrNotFound("barber"))
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsConflict(wrapped))
}
