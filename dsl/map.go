package dsl

import (
	"context"
	"reflect"
	"sort"

	"github.com/reoring/pollyskema"
	js "github.com/reoring/pollyskema/jsonschema"
)

// MapOf accepts an object with string keys and parses every value with elem,
// yielding map[string]any. Issues are reported under /<key> in key order.
func MapOf(elem pollyskema.Type) Adapter {
	return Adapter{
		parse: func(ctx context.Context, v any) (any, error) {
			src, ok := asMap(v)
			if !ok {
				return nil, typeIssue("object")
			}
			keys := make([]string, 0, len(src))
			for k := range src {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			out := make(map[string]any, len(src))
			var iss pollyskema.Issues
			for _, k := range keys {
				parsed, err := elem.Parse(ctx, src[k])
				if err != nil {
					iss = pollyskema.AppendIssues(iss, pollyskema.Root().Field(k).Rebase(err)...)
					if parsed == nil {
						parsed = src[k]
					}
				}
				out[k] = parsed
			}
			if len(iss) > 0 {
				return out, iss
			}
			return out, nil
		},
		jsonSchema: func() *js.Schema {
			return &js.Schema{Type: "object", AdditionalProperties: elem.JSONSchema()}
		},
	}
}

func asMap(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	it := rv.MapRange()
	for it.Next() {
		out[it.Key().String()] = it.Value().Interface()
	}
	return out, true
}
