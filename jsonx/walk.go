package jsonx

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"
	"unicode/utf16"
	"unicode/utf8"
)

// applyDefault rewrites a value tree so that every non-plain leaf is passed
// through enc first. Leaves enc does not handle are left to the backend.
func applyDefault(v any, enc EncoderFunc) any {
	switch t := v.(type) {
	case nil, bool, string, json.Number,
		float32, float64, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return v
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, it := range t {
			out[k] = applyDefault(it, enc)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, it := range t {
			out[i] = applyDefault(it, enc)
		}
		return out
	}
	if r, ok := enc(v); ok {
		if reflect.TypeOf(r) == reflect.TypeOf(v) {
			return r
		}
		return applyDefault(r, enc)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return v
		}
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = applyDefault(rv.Index(i).Interface(), enc)
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		if rv.IsNil() {
			return nil
		}
		out := make(map[string]any, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			out[it.Key().String()] = applyDefault(it.Value().Interface(), enc)
		}
		return out
	}
	return v
}

// normalizeNumbers replaces json.Number with int64 when integral and
// float64 otherwise. Integers outside the int64 range stay json.Number so
// they keep every digit. Containers are rewritten in place.
func normalizeNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		n, err := strconv.ParseInt(string(t), 10, 64)
		if err == nil {
			return n
		}
		if errors.Is(err, strconv.ErrRange) {
			return t
		}
		if f, err := strconv.ParseFloat(string(t), 64); err == nil {
			return f
		}
		return t
	case map[string]any:
		for k, it := range t {
			t[k] = normalizeNumbers(it)
		}
		return t
	case []any:
		for i, it := range t {
			t[i] = normalizeNumbers(it)
		}
		return t
	default:
		return v
	}
}

// utcTimes converts every time.Time in a map/slice tree to UTC.
func utcTimes(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case *time.Time:
		if t == nil {
			return t
		}
		u := t.UTC()
		return &u
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, it := range t {
			out[k] = utcTimes(it)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, it := range t {
			out[i] = utcTimes(it)
		}
		return out
	default:
		return v
	}
}

// escapeNonASCII rewrites every non-ASCII rune of encoded JSON as a \uXXXX
// escape (surrogate pairs above the BMP). Non-ASCII bytes only occur inside
// strings, so the rewrite is safe on the whole document.
func escapeNonASCII(b []byte) []byte {
	ascii := true
	for _, c := range b {
		if c >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return b
	}
	out := make([]byte, 0, len(b)+16)
	for len(b) > 0 {
		if b[0] < utf8.RuneSelf {
			out = append(out, b[0])
			b = b[1:]
			continue
		}
		r, size := utf8.DecodeRune(b)
		b = b[size:]
		if r > 0xFFFF {
			r1, r2 := utf16.EncodeRune(r)
			out = fmt.Appendf(out, `\u%04x\u%04x`, r1, r2)
			continue
		}
		out = fmt.Appendf(out, `\u%04x`, r)
	}
	return out
}
