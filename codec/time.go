package codec

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// EpochSeconds returns the seconds between the Unix epoch and t's wall
// clock, ignoring t's zone (the wall clock is read as UTC).
func EpochSeconds(t time.Time) float64 {
	naive := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	return float64(naive.Unix()) + float64(naive.Nanosecond())/1e9
}

// FromEpochSeconds converts fractional epoch seconds to a UTC time, rounded
// to the microsecond.
func FromEpochSeconds(f float64) time.Time {
	sec, frac := math.Modf(f)
	usec := math.Round(frac * 1e6)
	return time.Unix(int64(sec), int64(usec)*int64(time.Microsecond)).UTC()
}

var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseTime accepts RFC3339 (with or without fractional seconds) and naive
// ISO-8601 forms, which are read as UTC.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("codec: invalid datetime %q", s)
}

// FormatTime renders t in UTC using RFC3339Nano.
func FormatTime(t time.Time) string { return t.UTC().Format(time.RFC3339Nano) }
