package dsl

import (
	"context"
	"encoding/json"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/reoring/pollyskema"
	"github.com/reoring/pollyskema/i18n"
	js "github.com/reoring/pollyskema/jsonschema"
)

// String accepts strings, including named string types.
func String() Adapter {
	return Adapter{
		parse: func(_ context.Context, v any) (any, error) {
			if s, ok := v.(string); ok {
				return s, nil
			}
			if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
				return rv.String(), nil
			}
			return nil, typeIssue("string")
		},
		jsonSchema: func() *js.Schema { return &js.Schema{Type: "string"} },
	}
}

// Bool accepts booleans and the strings "true"/"false".
func Bool() Adapter {
	return Adapter{
		parse: func(_ context.Context, v any) (any, error) {
			switch b := v.(type) {
			case bool:
				return b, nil
			case string:
				if p, err := strconv.ParseBool(b); err == nil {
					return p, nil
				}
			}
			return nil, typeIssue("boolean")
		},
		jsonSchema: func() *js.Schema { return &js.Schema{Type: "boolean"} },
	}
}

// Int accepts integral numbers and numeric strings and yields int64.
func Int() Adapter {
	return Adapter{
		parse: func(_ context.Context, v any) (any, error) {
			switch n := v.(type) {
			case int64:
				return n, nil
			case string:
				if i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
					return i, nil
				}
				return nil, typeIssue("integer")
			case json.Number:
				if i, err := n.Int64(); err == nil {
					return i, nil
				}
			}
			rv := reflect.ValueOf(v)
			switch rv.Kind() {
			case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
				return rv.Int(), nil
			case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
				if rv.Uint() > math.MaxInt64 {
					return nil, issue(pollyskema.CodeTooBig, "max", int64(math.MaxInt64))
				}
				return int64(rv.Uint()), nil
			}
			if f, ok := toFloat(v); ok && f == math.Trunc(f) && math.Abs(f) < 1<<63 {
				return int64(f), nil
			}
			return nil, typeIssue("integer")
		},
		jsonSchema: func() *js.Schema { return &js.Schema{Type: "integer"} },
	}
}

// Float accepts numbers and numeric strings and yields float64.
func Float() Adapter {
	return Adapter{
		parse: func(_ context.Context, v any) (any, error) {
			if s, ok := v.(string); ok {
				if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
					return f, nil
				}
				return nil, typeIssue("number")
			}
			if _, isBool := v.(bool); isBool {
				return nil, typeIssue("number")
			}
			if f, ok := toFloat(v); ok {
				return f, nil
			}
			return nil, typeIssue("number")
		},
		jsonSchema: func() *js.Schema { return &js.Schema{Type: "number"} },
	}
}

// Enum accepts one of the given strings. Values are stored as plain strings.
func Enum(values ...string) Adapter {
	allowed := make(map[string]struct{}, len(values))
	for _, v := range values {
		allowed[v] = struct{}{}
	}
	str := String()
	return Adapter{
		parse: func(ctx context.Context, v any) (any, error) {
			s, err := str.Parse(ctx, v)
			if err != nil {
				return nil, err
			}
			if _, ok := allowed[s.(string)]; !ok {
				return nil, pollyskema.Issues{{
					Path:    "/",
					Code:    pollyskema.CodeInvalidEnum,
					Message: i18n.T(pollyskema.CodeInvalidEnum, nil),
					Params:  map[string]any{"allowed": values, "got": s},
				}}
			}
			return s, nil
		},
		jsonSchema: func() *js.Schema {
			enum := make([]any, len(values))
			for i, v := range values {
				enum[i] = v
			}
			return &js.Schema{Type: "string", Enum: enum}
		},
	}
}

// Any accepts every value unchanged, including nil.
func Any() Adapter {
	return Adapter{
		parse:      func(_ context.Context, v any) (any, error) { return v, nil },
		jsonSchema: func() *js.Schema { return &js.Schema{} },
	}
}

// Pattern requires string values to match expr. It panics if expr does not
// compile.
func (ad Adapter) Pattern(expr string) Adapter {
	re := regexp.MustCompile(expr)
	return ad.then(func(v any) error {
		s, ok := v.(string)
		if ok && !re.MatchString(s) {
			return issue(pollyskema.CodePattern, "pattern", expr)
		}
		return nil
	}, func(s *js.Schema) { s.Pattern = expr })
}
