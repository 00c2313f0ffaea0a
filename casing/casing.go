// Package casing converts map keys between snake_case and camelCase.
package casing

import (
	"maps"
	"slices"

	"github.com/iancoleman/strcase"
)

// ToCamel converts a snake_case key to lower camelCase ("voice_id" ->
// "voiceId").
func ToCamel(s string) string { return strcase.ToLowerCamel(s) }

// ToSnake converts a camelCase or PascalCase key to snake_case
// ("VoiceId" -> "voice_id").
func ToSnake(s string) string { return strcase.ToSnake(s) }

// CamelKeys returns a copy of m with every key, at every depth, converted by
// ToCamel. Values inside slices are visited too. Keys that collide after
// conversion resolve the same way on every call.
func CamelKeys(m map[string]any) map[string]any { return mapKeys(m, ToCamel) }

// CamelValue applies CamelKeys to every map reachable from v.
func CamelValue(v any) any { return walk(v, ToCamel) }

// SnakeKeys is the inverse of CamelKeys.
func SnakeKeys(m map[string]any) map[string]any { return mapKeys(m, ToSnake) }

func mapKeys(m map[string]any, conv func(string) string) map[string]any {
	if m == nil {
		return nil
	}
	// a key already in target form wins over keys converted onto it;
	// among converted keys the first in sorted order wins
	out := make(map[string]any, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		ck := conv(k)
		if _, taken := out[ck]; taken && ck != k {
			continue
		}
		out[ck] = walk(m[k], conv)
	}
	return out
}

func walk(v any, conv func(string) string) any {
	switch t := v.(type) {
	case map[string]any:
		return mapKeys(t, conv)
	case []any:
		out := make([]any, len(t))
		for i, it := range t {
			out[i] = walk(it, conv)
		}
		return out
	default:
		return v
	}
}
