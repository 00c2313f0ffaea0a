package dsl

import (
	"context"

	"github.com/reoring/pollyskema"
	js "github.com/reoring/pollyskema/jsonschema"
)

// Object accepts a nested object for s and yields a *pollyskema.Model. A
// model already built from s is accepted as is. When nested fields fail, the
// partial model is returned with the issues so the parent can decide.
func Object(s *pollyskema.Schema) Adapter {
	return Adapter{
		parse: func(ctx context.Context, v any) (any, error) {
			if m, ok := v.(*pollyskema.Model); ok && m != nil && m.Schema() == s {
				return m, nil
			}
			src, ok := asMap(v)
			if !ok {
				return nil, typeIssue("object")
			}
			return s.Parse(ctx, src)
		},
		jsonSchema: func() *js.Schema { return s.JSONSchema() },
	}
}
