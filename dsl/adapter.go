package dsl

import (
	"context"
	"encoding/json"
	"reflect"
	"strconv"
	"unicode/utf8"

	"github.com/reoring/pollyskema"
	"github.com/reoring/pollyskema/i18n"
	js "github.com/reoring/pollyskema/jsonschema"
)

// Adapter is a field type built from a parse function and its JSON Schema
// projection. Constraint methods return a new Adapter wrapping the previous
// one.
type Adapter struct {
	parse      func(context.Context, any) (any, error)
	jsonSchema func() *js.Schema
}

var _ pollyskema.Type = Adapter{}

// Parse implements pollyskema.Type.
func (ad Adapter) Parse(ctx context.Context, v any) (any, error) {
	if ad.parse == nil {
		return v, nil
	}
	return ad.parse(ctx, v)
}

// JSONSchema implements pollyskema.Type.
func (ad Adapter) JSONSchema() *js.Schema {
	if ad.jsonSchema == nil {
		return &js.Schema{}
	}
	return ad.jsonSchema()
}

// TypeOf adapts any pollyskema.Type so constraints can be chained on it.
func TypeOf(t pollyskema.Type) Adapter {
	if ad, ok := t.(Adapter); ok {
		return ad
	}
	return Adapter{parse: t.Parse, jsonSchema: t.JSONSchema}
}

// then runs check on successfully parsed values.
func (ad Adapter) then(check func(any) error, schema func(*js.Schema)) Adapter {
	out := ad
	out.parse = func(ctx context.Context, v any) (any, error) {
		val, err := ad.Parse(ctx, v)
		if err != nil {
			return val, err
		}
		if val == nil {
			return nil, nil
		}
		if err := check(val); err != nil {
			return nil, err
		}
		return val, nil
	}
	out.jsonSchema = func() *js.Schema {
		s := ad.JSONSchema()
		schema(s)
		return s
	}
	return out
}

// Nullable accepts JSON null (nil) in addition to the wrapped type.
func (ad Adapter) Nullable() Adapter {
	out := ad
	out.parse = func(ctx context.Context, v any) (any, error) {
		if v == nil {
			return nil, nil
		}
		return ad.Parse(ctx, v)
	}
	out.jsonSchema = func() *js.Schema {
		s := ad.JSONSchema()
		s.Nullable = true
		return s
	}
	return out
}

// Min sets a numeric minimum (inclusive).
func (ad Adapter) Min(n float64) Adapter {
	return ad.then(func(v any) error {
		if f, ok := toFloat(v); ok && f < n {
			return issue(pollyskema.CodeTooSmall, "min", n, "got", f)
		}
		return nil
	}, func(s *js.Schema) { s.Minimum = &n })
}

// Max sets a numeric maximum (inclusive).
func (ad Adapter) Max(n float64) Adapter {
	return ad.then(func(v any) error {
		if f, ok := toFloat(v); ok && f > n {
			return issue(pollyskema.CodeTooBig, "max", n, "got", f)
		}
		return nil
	}, func(s *js.Schema) { s.Maximum = &n })
}

// MinLen sets a minimum length for strings (in runes), arrays and maps.
func (ad Adapter) MinLen(n int) Adapter {
	return ad.then(func(v any) error {
		if l, ok := length(v); ok && l < n {
			return issue(pollyskema.CodeTooShort, "min", n, "got", l)
		}
		return nil
	}, func(s *js.Schema) {
		if s.Type == "array" {
			s.MinItems = &n
		} else {
			s.MinLength = &n
		}
	})
}

// MaxLen sets a maximum length for strings (in runes), arrays and maps.
func (ad Adapter) MaxLen(n int) Adapter {
	return ad.then(func(v any) error {
		if l, ok := length(v); ok && l > n {
			return issue(pollyskema.CodeTooLong, "max", n, "got", l)
		}
		return nil
	}, func(s *js.Schema) {
		if s.Type == "array" {
			s.MaxItems = &n
		} else {
			s.MaxLength = &n
		}
	})
}

// Refine adds a custom check on the parsed value. Errors that are not Issues
// are reported as business_rule.
func (ad Adapter) Refine(name string, fn func(context.Context, any) error) Adapter {
	out := ad
	out.parse = func(ctx context.Context, v any) (any, error) {
		val, err := ad.Parse(ctx, v)
		if err != nil || val == nil {
			return val, err
		}
		if err := fn(ctx, val); err != nil {
			if iss, ok := pollyskema.AsIssues(err); ok {
				return nil, iss
			}
			return nil, pollyskema.Issues{{Path: "/", Code: pollyskema.CodeBusinessRule, Message: err.Error(), Hint: name, Cause: err}}
		}
		return val, nil
	}
	return out
}

// ---- helpers ----

func issue(code string, kv ...any) pollyskema.Issues {
	return pollyskema.Issues{pollyskema.Root().Issue(code, kv...)}
}

func typeIssue(expected string) pollyskema.Issues {
	return pollyskema.Issues{{
		Path:    "/",
		Code:    pollyskema.CodeInvalidType,
		Message: i18n.T(pollyskema.CodeInvalidType, map[string]string{"expected": expected}),
		Params:  map[string]any{"expected": expected},
	}}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := strconv.ParseFloat(string(n), 64)
		return f, err == nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func length(v any) (int, bool) {
	if s, ok := v.(string); ok {
		return utf8.RuneCountInString(s), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return utf8.RuneCountInString(rv.String()), true
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	}
	return 0, false
}
