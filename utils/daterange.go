package utils

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for all stay dates.
const DateLayout = "2006-01-02"

// TruncateToDay drops the time-of-day component, normalising to midnight UTC
// so date comparisons are calendar comparisons.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar day at midnight UTC.
func Today() time.Time {
	return TruncateToDay(time.Now().UTC())
}

// ParseDate parses a yyyy-mm-dd string into a midnight-UTC time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected %s", s, DateLayout)
	}
	return TruncateToDay(t), nil
}

// Nights is the number of nights between check-in and check-out. Zero or
// negative means the pair is not a valid stay.
func Nights(checkIn, checkOut time.Time) int {
	return int(TruncateToDay(checkOut).Sub(TruncateToDay(checkIn)).Hours() / 24)
}

// Overlaps tests two half-open ranges [aIn, aOut) and [bIn, bOut). A checkout
// on the same day as the other range's check-in is not an overlap.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && aOut.After(bIn)
}

// BeforeToday reports whether the day is in the past.
func BeforeToday(t time.Time) bool {
	return TruncateToDay(t).Before(Today())
}
