package dsl

import (
	"context"
	"reflect"

	"github.com/reoring/pollyskema"
	js "github.com/reoring/pollyskema/jsonschema"
)

// ArrayOf accepts a sequence and parses every element with elem, yielding
// []any. All element issues are reported under /<index>; on failure the
// best-effort array (raw values for failing elements) is returned with them.
func ArrayOf(elem pollyskema.Type) Adapter {
	return Adapter{
		parse: func(ctx context.Context, v any) (any, error) {
			items, ok := asSlice(v)
			if !ok {
				return nil, typeIssue("array")
			}
			out := make([]any, len(items))
			var iss pollyskema.Issues
			for i, it := range items {
				parsed, err := elem.Parse(ctx, it)
				if err != nil {
					iss = pollyskema.AppendIssues(iss, pollyskema.Root().Index(i).Rebase(err)...)
					if parsed == nil {
						parsed = it
					}
				}
				out[i] = parsed
			}
			if len(iss) > 0 {
				return out, iss
			}
			return out, nil
		},
		jsonSchema: func() *js.Schema { return &js.Schema{Type: "array", Items: elem.JSONSchema()} },
	}
}

func asSlice(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		// []byte is a string on the wire
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
