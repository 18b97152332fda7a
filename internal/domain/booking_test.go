package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse(DateFormat, value)
	require.NoError(t, err)
	return date
}

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCompleted, false},
		// Переходов в rejected из актуальных статусов нет
		{StatusPending, StatusRejected, false},
		{StatusConfirmed, StatusRejected, false},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestBookingStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusRejected.IsValid())
	assert.False(t, BookingStatus("approved").IsValid())
	assert.False(t, BookingStatus("").IsValid())
}

func TestBooking_IsActive(t *testing.T) {
	booking := &Booking{Status: StatusPending}
	assert.True(t, booking.IsActive())

	booking.Status = StatusConfirmed
	assert.True(t, booking.IsActive())

	booking.Status = StatusCompleted
	assert.True(t, booking.IsActive())

	booking.Status = StatusCancelled
	assert.False(t, booking.IsActive())

	booking.Status = StatusRejected
	assert.False(t, booking.IsActive())
}

func TestService_SlotStep(t *testing.T) {
	short := &Service{DurationMinutes: 15}
	assert.Equal(t, MinSlotStepMinutes, short.SlotStep())

	exact := &Service{DurationMinutes: 30}
	assert.Equal(t, 30, exact.SlotStep())

	long := &Service{DurationMinutes: 45}
	assert.Equal(t, 45, long.SlotStep())
}
