package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_CanBeCancelled(t *testing.T) {
	testCases := []struct {
		status   BookingStatus
		expected bool
	}{
		{StatusPending, true},
		{StatusConfirmed, true},
		{StatusActive, false},
		{StatusCompleted, false},
		{StatusCancelled, false},
	}

	for _, tc := range testCases {
		booking := &Booking{Status: tc.status}
		assert.Equal(t, tc.expected, booking.CanBeCancelled(), "status=%s", tc.status)
	}
}

func TestBooking_CanBeAccepted(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanBeAccepted())
	assert.False(t, (&Booking{Status: StatusConfirmed}).CanBeAccepted())
	assert.False(t, (&Booking{Status: StatusActive}).CanBeAccepted())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeAccepted())
}

func TestBooking_CanBeCompleted(t *testing.T) {
	assert.False(t, (&Booking{Status: StatusPending}).CanBeCompleted())
	assert.False(t, (&Booking{Status: StatusConfirmed}).CanBeCompleted())
	assert.True(t, (&Booking{Status: StatusActive}).CanBeCompleted())
	assert.False(t, (&Booking{Status: StatusCompleted}).CanBeCompleted())
}

// Тест: вкладка completed показывает только завершённые поездки,
// отменённые видны только на вкладке all
func TestBooking_InTab(t *testing.T) {
	testCases := []struct {
		status   BookingStatus
		tab      string
		expected bool
	}{
		{StatusPending, TabActive, true},
		{StatusConfirmed, TabActive, true},
		{StatusActive, TabActive, true},
		{StatusCompleted, TabActive, false},
		{StatusCancelled, TabActive, false},

		{StatusCompleted, TabCompleted, true},
		{StatusCancelled, TabCompleted, false},
		{StatusActive, TabCompleted, false},

		{StatusPending, TabAll, true},
		{StatusCancelled, TabAll, true},
		{StatusCompleted, TabAll, true},
	}

	for _, tc := range testCases {
		booking := &Booking{Status: tc.status}
		assert.Equal(t, tc.expected, booking.InTab(tc.tab), "status=%s tab=%s", tc.status, tc.tab)
	}
}

func TestBooking_IsPaid(t *testing.T) {
	assert.True(t, (&Booking{PaymentStatus: PaymentPaid}).IsPaid())
	assert.False(t, (&Booking{PaymentStatus: PaymentPending}).IsPaid())
}
