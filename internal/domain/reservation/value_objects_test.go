//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotel-reservation-api/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

func TestNewStayDates(t *testing.T) {
	testCases := []struct {
		name     string
		checkIn  string
		checkOut string
		errIs    error
	}{
		{
			name:     "valid future range OK",
			checkIn:  "2999-01-10",
			checkOut: "2999-01-12",
		},
		{
			name:     "check-in today OK",
			checkIn:  "2024-06-15",
			checkOut: "2024-06-16",
		},
		{
			name:     "one-night stay OK",
			checkIn:  "2024-07-01",
			checkOut: "2024-07-02",
		},
		{
			name:     "check-in yesterday NG",
			checkIn:  "2024-06-14",
			checkOut: "2024-06-20",
			errIs:    reservation.ErrStayDatesInPast,
		},
		{
			name:     "both dates in the past NG",
			checkIn:  "2000-01-01",
			checkOut: "2000-01-05",
			errIs:    reservation.ErrStayDatesInPast,
		},
		{
			name:     "reversed range NG",
			checkIn:  "2999-01-12",
			checkOut: "2999-01-10",
			errIs:    reservation.ErrCheckOutNotAfterCheckIn,
		},
		{
			name:     "same-day check-out NG",
			checkIn:  "2999-01-10",
			checkOut: "2999-01-10",
			errIs:    reservation.ErrCheckOutNotAfterCheckIn,
		},
		{
			name:     "malformed check-in NG",
			checkIn:  "10-01-2999",
			checkOut: "2999-01-12",
			errIs:    reservation.ErrInvalidDateFormat,
		},
		{
			name:     "malformed check-out NG",
			checkIn:  "2999-01-10",
			checkOut: "someday",
			errIs:    reservation.ErrInvalidDateFormat,
		},
		{
			name:     "empty check-in NG",
			checkIn:  "",
			checkOut: "2999-01-12",
			errIs:    reservation.ErrInvalidDateFormat,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stay, err := reservation.NewStayDates(tc.checkIn, tc.checkOut, today)

			if tc.errIs != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.errIs)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.checkIn, stay.CheckInString())
			assert.Equal(t, tc.checkOut, stay.CheckOutString())
			assert.True(t, stay.CheckOut().After(stay.CheckIn()))
		})
	}
}

func TestStayDatesIgnoresTimeOfDay(t *testing.T) {
	// A check-in equal to today's date must pass even late in the day.
	lateToday := time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC)

	stay, err := reservation.NewStayDates("2024-06-15", "2024-06-16", lateToday)
	require.NoError(t, err)
	assert.Equal(t, 1, stay.Nights())
}

func TestStayDatesNights(t *testing.T) {
	stay, err := reservation.NewStayDates("2999-01-10", "2999-01-17", today)
	require.NoError(t, err)
	assert.Equal(t, 7, stay.Nights())
}
