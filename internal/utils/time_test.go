package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingDate(t *testing.T) {
	parsed, err := ParseBookingDate("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseBookingDate("01/06/2025")
	assert.Error(t, err)

	_, err = ParseBookingDate("")
	assert.Error(t, err)
}

func TestCalendarDaysBetween(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
	}

	assert.Equal(t, 0, CalendarDaysBetween(day(1), day(1)))
	assert.Equal(t, 1, CalendarDaysBetween(day(1), day(2)))
	assert.Equal(t, 3, CalendarDaysBetween(day(1), day(4)))
	assert.Equal(t, -3, CalendarDaysBetween(day(4), day(1)))

	// Intra-day times are normalized away before counting.
	late := time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)
	early := time.Date(2025, 6, 2, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, CalendarDaysBetween(late, early))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1h 2m 3s", FormatDuration(time.Hour+2*time.Minute+3*time.Second))
	assert.Equal(t, "5m 0s", FormatDuration(5*time.Minute))
	assert.Equal(t, "42s", FormatDuration(42*time.Second))
}
