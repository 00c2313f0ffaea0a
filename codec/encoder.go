package codec

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// DefaultEncoder converts the values whose wire form differs from what JSON
// libraries produce natively: datetimes become epoch seconds (a float, zone
// ignored) and durations ISO-8601 text. It matches jsonx.EncoderFunc.
func DefaultEncoder(v any) (any, bool) {
	switch t := v.(type) {
	case time.Time:
		return FloatNumber(EpochSeconds(t)), true
	case *time.Time:
		if t == nil {
			return nil, true
		}
		return FloatNumber(EpochSeconds(*t)), true
	case time.Duration:
		return FormatISODuration(t), true
	}
	return nil, false
}

// FloatNumber renders f as a JSON number that always reads as a float,
// e.g. 3600.0 rather than 3600.
func FloatNumber(f float64) json.Number {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return json.Number(s)
}
