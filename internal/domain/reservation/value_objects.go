package reservation

import (
	"errors"
	"time"
)

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

var (
	ErrInvalidDateFormat       = errors.New("invalid date format")
	ErrStayDatesInPast         = errors.New("stay dates must not be in the past")
	ErrCheckOutNotAfterCheckIn = errors.New("check-out date must be after check-in date")
)

// StayDates is the validated check-in/check-out pair. Both bounds are
// calendar dates; time-of-day never participates in the comparison.
type StayDates struct {
	checkIn  time.Time
	checkOut time.Time
}

// NewStayDates parses and validates a stay range against today.
// Rules: both dates parse as YYYY-MM-DD, neither is before today,
// and check-out is strictly after check-in.
func NewStayDates(checkIn, checkOut string, today time.Time) (StayDates, error) {
	in, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return StayDates{}, ErrInvalidDateFormat
	}

	out, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return StayDates{}, ErrInvalidDateFormat
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if in.Before(day) || out.Before(day) {
		return StayDates{}, ErrStayDatesInPast
	}

	if !out.After(in) {
		return StayDates{}, ErrCheckOutNotAfterCheckIn
	}

	return StayDates{checkIn: in, checkOut: out}, nil
}

func (s StayDates) CheckIn() time.Time {
	return s.checkIn
}

func (s StayDates) CheckOut() time.Time {
	return s.checkOut
}

func (s StayDates) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

// CheckInString returns the check-in date in wire format.
func (s StayDates) CheckInString() string {
	return s.checkIn.Format(DateLayout)
}

// CheckOutString returns the check-out date in wire format.
func (s StayDates) CheckOutString() string {
	return s.checkOut.Format(DateLayout)
}
