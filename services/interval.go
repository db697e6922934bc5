package services

import (
	"time"
)

// DateLayout is the wire format for calendar dates. No time-of-day component;
// time zone handling belongs to the caller.
const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// NormalizeDate drops any time-of-day component, keeping midnight UTC.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Interval is the half-open range [CheckIn, CheckOut) a reservation occupies.
type Interval struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func NewInterval(checkIn, checkOut time.Time) Interval {
	return Interval{CheckIn: NormalizeDate(checkIn), CheckOut: NormalizeDate(checkOut)}
}

func (iv Interval) Valid() bool {
	return iv.CheckIn.Before(iv.CheckOut)
}

// Overlaps uses the half-open definition: a checkout on day D and a check-in on
// day D are back-to-back, not a conflict.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(iv.CheckOut)
}

// Nights is the whole-day length of the interval, at least 1 for any valid interval.
func (iv Interval) Nights() int {
	return int(iv.CheckOut.Sub(iv.CheckIn).Hours() / 24)
}
