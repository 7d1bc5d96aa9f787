package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Persisted dates are ISO "YYYY-MM-DD" strings and times are "HH:MM" 24-hour
// strings, matching the remote store's representation.

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidTime = errors.New("invalid time, expected HH:MM")
)

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func ParseClock(s string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidTime
	}
	return t, nil
}

// HoursBetween returns the fractional hours between two HH:MM clock values on
// the same day. The result is negative when end precedes start; callers guard
// against inverted ranges.
func HoursBetween(start, end string) (decimal.Decimal, error) {
	st, err := ParseClock(start)
	if err != nil {
		return decimal.Zero, err
	}
	et, err := ParseClock(end)
	if err != nil {
		return decimal.Zero, err
	}
	minutes := et.Sub(st).Minutes()
	return decimal.NewFromFloat(minutes).Div(decimal.NewFromInt(60)), nil
}
