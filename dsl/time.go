package dsl

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/reoring/pollyskema"
	"github.com/reoring/pollyskema/codec"
	"github.com/reoring/pollyskema/i18n"
	js "github.com/reoring/pollyskema/jsonschema"
)

// Time accepts time.Time, RFC3339 or naive ISO-8601 text (read as UTC) and
// epoch seconds, which is how the API reports timestamps. Values keep the
// zone they were given in; numbers and naive text yield UTC.
func Time() Adapter {
	return Adapter{
		parse: func(_ context.Context, v any) (any, error) {
			switch t := v.(type) {
			case time.Time:
				return t, nil
			case *time.Time:
				if t != nil {
					return *t, nil
				}
			case string:
				p, err := codec.ParseTime(t)
				if err != nil {
					return nil, formatIssue("datetime", err)
				}
				return p, nil
			default:
				if _, isBool := v.(bool); !isBool {
					if f, ok := toFloat(v); ok {
						if err := checkSeconds(f, maxEpochSeconds, "datetime"); err != nil {
							return nil, err
						}
						return codec.FromEpochSeconds(f), nil
					}
				}
			}
			return nil, typeIssue("datetime")
		},
		jsonSchema: func() *js.Schema { return &js.Schema{Type: "number", Format: "epoch-seconds"} },
	}
}

// Duration accepts time.Duration, ISO-8601 duration text and seconds.
func Duration() Adapter {
	return Adapter{
		parse: func(_ context.Context, v any) (any, error) {
			switch d := v.(type) {
			case time.Duration:
				return d, nil
			case string:
				p, err := codec.ParseISODuration(d)
				if err != nil {
					return nil, formatIssue("duration", err)
				}
				return p, nil
			default:
				if _, isBool := v.(bool); !isBool {
					if f, ok := toFloat(v); ok {
						if err := checkSeconds(f, maxDurationSeconds, "duration"); err != nil {
							return nil, err
						}
						return time.Duration(f * float64(time.Second)), nil
					}
				}
			}
			return nil, typeIssue("duration")
		},
		jsonSchema: func() *js.Schema { return &js.Schema{Type: "string", Format: "duration"} },
	}
}

const (
	// 9999-12-31T23:59:59Z, the last instant RFC3339 can print.
	maxEpochSeconds    = 253402300799
	maxDurationSeconds = float64(math.MaxInt64) / float64(time.Second)
)

// checkSeconds rejects numbers that would overflow once scaled to
// nanoseconds.
func checkSeconds(f, limit float64, format string) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return formatIssue(format, errors.New("not a finite number"))
	}
	if math.Abs(f) > limit {
		return issue(pollyskema.CodeTooBig, "max", limit, "got", f)
	}
	return nil
}

func formatIssue(format string, err error) pollyskema.Issues {
	hint := format
	if errors.Is(err, codec.ErrCalendarUnit) {
		hint = "use weeks, days or time units"
	}
	return pollyskema.Issues{{
		Path:    "/",
		Code:    pollyskema.CodeInvalidFormat,
		Message: i18n.T(pollyskema.CodeInvalidFormat, map[string]string{"expected": format}),
		Hint:    hint,
		Cause:   err,
	}}
}
