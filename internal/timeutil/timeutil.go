package timeutil

import "time"

// All booking math runs in UTC; slot timestamps are absolute instants
// and schedule windows are minute-of-day offsets from UTC midnight.

const DateLayout = "2006-01-02"

func ParseDateUTC(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

func DayStartUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func NowUTC() time.Time {
	return time.Now().UTC()
}

// IsSlotAligned reports whether t sits on the half-hour grid relative to
// UTC midnight.
func IsSlotAligned(t time.Time, granularity time.Duration) bool {
	u := t.UTC()
	if u.Second() != 0 || u.Nanosecond() != 0 {
		return false
	}
	offset := time.Duration(u.Hour())*time.Hour + time.Duration(u.Minute())*time.Minute
	return offset%granularity == 0
}
