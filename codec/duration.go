package codec

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrCalendarUnit is returned for ISO-8601 durations using years or months,
// which have no fixed length.
var ErrCalendarUnit = errors.New("codec: year and month duration units are not supported")

const day = 24 * time.Hour

// FormatISODuration renders d as an ISO-8601 duration such as P1DT2H or
// PT0.5S. Zero components are omitted; the zero duration is PT0S.
func FormatISODuration(d time.Duration) string {
	if d == 0 {
		return "PT0S"
	}
	b := &strings.Builder{}
	if d < 0 {
		b.WriteByte('-')
		if d == math.MinInt64 {
			d = math.MaxInt64
		} else {
			d = -d
		}
	}
	b.WriteByte('P')
	if days := d / day; days > 0 {
		fmt.Fprintf(b, "%dD", days)
		d -= days * day
	}
	if d == 0 {
		return b.String()
	}
	b.WriteByte('T')
	if h := d / time.Hour; h > 0 {
		fmt.Fprintf(b, "%dH", h)
		d -= h * time.Hour
	}
	if m := d / time.Minute; m > 0 {
		fmt.Fprintf(b, "%dM", m)
		d -= m * time.Minute
	}
	if d > 0 {
		sec := d / time.Second
		ns := d - sec*time.Second
		if ns == 0 {
			fmt.Fprintf(b, "%dS", sec)
		} else {
			frac := strings.TrimRight(fmt.Sprintf("%09d", ns), "0")
			fmt.Fprintf(b, "%d.%sS", sec, frac)
		}
	}
	return b.String()
}

// ParseISODuration parses ISO-8601 durations with week, day, hour, minute and
// (fractional) second components, e.g. "P1DT2H", "-PT1.5S", "P2W".
func ParseISODuration(s string) (time.Duration, error) {
	orig := s
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if !strings.HasPrefix(s, "P") || len(s) < 2 {
		return 0, fmt.Errorf("codec: invalid ISO-8601 duration %q", orig)
	}
	s = s[1:]
	var total float64
	inTime := false
	seen := false
	for len(s) > 0 {
		if s[0] == 'T' {
			if inTime || len(s) == 1 {
				return 0, fmt.Errorf("codec: invalid ISO-8601 duration %q", orig)
			}
			inTime = true
			s = s[1:]
			continue
		}
		i := 0
		for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.' || s[i] == ',') {
			i++
		}
		if i == 0 || i == len(s) {
			return 0, fmt.Errorf("codec: invalid ISO-8601 duration %q", orig)
		}
		n, err := strconv.ParseFloat(strings.ReplaceAll(s[:i], ",", "."), 64)
		if err != nil {
			return 0, fmt.Errorf("codec: invalid ISO-8601 duration %q: %w", orig, err)
		}
		unit := s[i]
		s = s[i+1:]
		seen = true
		switch {
		case !inTime && (unit == 'Y' || unit == 'M'):
			return 0, ErrCalendarUnit
		case !inTime && unit == 'W':
			total += n * float64(7*day)
		case !inTime && unit == 'D':
			total += n * float64(day)
		case inTime && unit == 'H':
			total += n * float64(time.Hour)
		case inTime && unit == 'M':
			total += n * float64(time.Minute)
		case inTime && unit == 'S':
			total += n * float64(time.Second)
		default:
			return 0, fmt.Errorf("codec: invalid ISO-8601 duration %q: unexpected unit %q", orig, unit)
		}
	}
	if !seen {
		return 0, fmt.Errorf("codec: invalid ISO-8601 duration %q", orig)
	}
	if total > math.MaxInt64 {
		return 0, fmt.Errorf("codec: ISO-8601 duration %q overflows", orig)
	}
	d := time.Duration(math.Round(total))
	if neg {
		d = -d
	}
	return d, nil
}
