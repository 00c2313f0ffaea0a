package pollyskema

import (
	"context"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
)

// TagName is the struct tag Decode reads field names from.
const TagName = "polly"

// Decode copies the model's values (declared fields and extras, internal
// names) into out, a pointer to a struct tagged with `polly:"name"`.
// Unknown keys are ignored; a struct field tagged `polly:",remain"` receives
// them.
func (m *Model) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          TagName,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	if err != nil {
		return fmt.Errorf("pollyskema: decode %s: %w", m.schema.name, err)
	}
	if err := dec.Decode(m.ToMap(DictOpt{})); err != nil {
		return fmt.Errorf("pollyskema: decode %s: %w", m.schema.name, err)
	}
	return nil
}

// Bind constructs a Model from data (see Construct) and decodes it into a
// value of struct type T.
func Bind[T any](ctx context.Context, s *Schema, data map[string]any) (T, *Model, error) {
	var zero T
	m, err := Construct(ctx, s, data)
	if err != nil {
		return zero, nil, err
	}
	var out T
	if err := m.Decode(&out); err != nil {
		return zero, m, err
	}
	return out, m, nil
}
