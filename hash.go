package pollyskema

import (
	"encoding/binary"
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a structural hash of the declared fields. Every field
// contributes hash(name)+hash(value); sequences contribute the sum of their
// elements, so element order does not matter, and maps the sum of
// hash(key)+hash(value). Values that cannot be hashed contribute zero.
//
// The hash is a snapshot: Set changes it.
func (m *Model) Hash() uint64 {
	var sum uint64
	for _, f := range m.schema.fields {
		sum += hashString(f.Name) + hashValue(m.values[f.Name])
	}
	return sum
}

var noneHash = xxhash.Sum64String("\x00none")

func hashString(s string) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString("s")
	_, _ = d.WriteString(s)
	return d.Sum64()
}

func hashInt(n int64) uint64 {
	var b [9]byte
	b[0] = 'i'
	binary.LittleEndian.PutUint64(b[1:], uint64(n))
	return xxhash.Sum64(b[:])
}

// hashFloat hashes integral floats like the equal integer.
func hashFloat(f float64) uint64 {
	if f == math.Trunc(f) && math.Abs(f) < 1<<63 {
		return hashInt(int64(f))
	}
	var b [9]byte
	b[0] = 'f'
	binary.LittleEndian.PutUint64(b[1:], math.Float64bits(f))
	return xxhash.Sum64(b[:])
}

func hashValue(v any) uint64 {
	switch t := v.(type) {
	case nil:
		return noneHash
	case *Model:
		if t == nil {
			return noneHash
		}
		return t.Hash()
	case []any:
		var sum uint64
		for _, it := range t {
			sum += hashValue(it)
		}
		return sum
	case map[string]any:
		var sum uint64
		for k, it := range t {
			sum += hashString(k) + hashValue(it)
		}
		return sum
	case string:
		return hashString(t)
	case bool:
		if t {
			return hashInt(1)
		}
		return hashInt(0)
	case json.Number:
		if n, err := strconv.ParseInt(string(t), 10, 64); err == nil {
			return hashInt(n)
		}
		if f, err := strconv.ParseFloat(string(t), 64); err == nil {
			return hashFloat(f)
		}
		return hashString(string(t))
	case time.Time:
		return hashString(t.UTC().Format(time.RFC3339Nano))
	case time.Duration:
		return hashInt(int64(t))
	}
	return hashReflect(reflect.ValueOf(v))
}

func hashReflect(rv reflect.Value) uint64 {
	switch rv.Kind() {
	case reflect.String:
		return hashString(rv.String())
	case reflect.Bool:
		if rv.Bool() {
			return hashInt(1)
		}
		return hashInt(0)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return hashInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return hashInt(int64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return hashFloat(rv.Float())
	case reflect.Slice, reflect.Array:
		var sum uint64
		for i := 0; i < rv.Len(); i++ {
			sum += hashValue(rv.Index(i).Interface())
		}
		return sum
	case reflect.Map:
		var sum uint64
		it := rv.MapRange()
		for it.Next() {
			sum += hashValue(it.Key().Interface()) + hashValue(it.Value().Interface())
		}
		return sum
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return noneHash
		}
		return hashValue(rv.Elem().Interface())
	default:
		// funcs, channels and structs are skipped
		return 0
	}
}
