package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCancellationStateAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		start         time.Time
		status        BookingStatus
		cancellable   bool
		hours         int
		countdownText string
	}{
		{
			name:          "pending well before cutoff",
			start:         now.Add(25 * time.Hour),
			status:        BookingStatusPending,
			cancellable:   true,
			hours:         25,
			countdownText: "1h 0m 0s left",
		},
		{
			name:          "confirmed well before cutoff",
			start:         now.Add(48 * time.Hour),
			status:        BookingStatusConfirmed,
			cancellable:   true,
			hours:         48,
			countdownText: "24h 0m 0s left",
		},
		{
			name:          "countdown includes minutes and seconds",
			start:         now.Add(24*time.Hour + time.Hour + 2*time.Minute + 3*time.Second),
			status:        BookingStatusPending,
			cancellable:   true,
			hours:         25,
			countdownText: "1h 2m 3s left",
		},
		{
			name:        "inside cutoff window",
			start:       now.Add(23 * time.Hour),
			status:      BookingStatusPending,
			cancellable: false,
			hours:       23,
		},
		{
			name:        "exactly at cutoff",
			start:       now.Add(24 * time.Hour),
			status:      BookingStatusPending,
			cancellable: false,
			hours:       24,
		},
		{
			name:        "rental already started",
			start:       now.Add(-2 * time.Hour),
			status:      BookingStatusConfirmed,
			cancellable: false,
			hours:       -2,
		},
		{
			name:        "cancelled booking never cancellable",
			start:       now.Add(48 * time.Hour),
			status:      BookingStatusCancelled,
			cancellable: false,
			hours:       48,
		},
		{
			name:        "completed booking never cancellable",
			start:       now.Add(48 * time.Hour),
			status:      BookingStatusCompleted,
			cancellable: false,
			hours:       48,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := CancellationStateAt(tt.start, tt.status, now)

			assert.Equal(t, tt.cancellable, state.IsCancellable)
			assert.Equal(t, tt.hours, state.HoursUntilStart)
			assert.Equal(t, tt.countdownText, state.CountdownText)
		})
	}
}

func TestCancellationStateAtZeroStart(t *testing.T) {
	state := CancellationStateAt(time.Time{}, BookingStatusPending, time.Now())

	assert.False(t, state.IsCancellable)
	assert.Equal(t, 0, state.HoursUntilStart)
	assert.Empty(t, state.CountdownText)
}

func TestBookingCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusConfirmed, false},
		{BookingStatusCancelled, BookingStatusConfirmed, false},
		{BookingStatusCancelled, BookingStatusCancelled, false},
		{BookingStatusCompleted, BookingStatusCancelled, false},
		{BookingStatusPending, BookingStatusCompleted, false},
		{BookingStatusPending, BookingStatusPending, false},
	}

	for _, tt := range tests {
		booking := &Booking{Status: tt.from}
		assert.Equal(t, tt.allowed, booking.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestBookingStatusIsTerminal(t *testing.T) {
	assert.False(t, BookingStatusPending.IsTerminal())
	assert.False(t, BookingStatusConfirmed.IsTerminal())
	assert.True(t, BookingStatusCompleted.IsTerminal())
	assert.True(t, BookingStatusCancelled.IsTerminal())
}
