package pollyskema

import (
	"context"
	"errors"
	"fmt"

	"github.com/reoring/pollyskema/i18n"
	"github.com/reoring/pollyskema/jsonx"
)

// Model is one API data object: the validated values of the declared fields
// plus the unrecognized keys of the input.
//
// A Model is safe for concurrent readers. Set writes per-instance state and
// must be synchronized by the caller.
type Model struct {
	schema   *Schema
	values   map[string]any
	extra    map[string]any
	presence PresenceMap
}

// Construct validates data against s and builds a Model.
//
// When fields fail validation the current client decides: if it does not
// trust API responses, a *ValidationError carrying every issue is returned
// and no model is built. If it trusts them, or no client is registered at
// all, the issues are logged and the tolerant model is returned.
func Construct(ctx context.Context, s *Schema, data map[string]any) (*Model, error) {
	if s == nil {
		return nil, errors.New("pollyskema: nil schema")
	}
	m, err := s.Parse(ctx, data)
	if err == nil {
		return m, nil
	}
	iss, _ := AsIssues(err)
	if !trustAPIResponses(ctx) {
		return nil, &ValidationError{Schema: s.name, Issues: iss}
	}
	logTolerated(s.name, iss)
	return m, nil
}

// ConstructJSON decodes data with the active JSON backend and constructs a
// Model from the resulting object.
func ConstructJSON(ctx context.Context, s *Schema, data []byte) (*Model, error) {
	if s == nil {
		return nil, errors.New("pollyskema: nil schema")
	}
	v, err := jsonx.LoadsBytes(data)
	if err != nil {
		return nil, fmt.Errorf("pollyskema: decode %s: %w", s.Name(), err)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, Issues{{Path: "/", Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected object"}}
	}
	return Construct(ctx, s, obj)
}

// Schema returns the schema the model was built from.
func (m *Model) Schema() *Schema { return m.schema }

// Get returns a declared value or an extra by name.
func (m *Model) Get(name string) (any, bool) {
	if v, ok := m.values[name]; ok {
		return v, true
	}
	v, ok := m.extra[name]
	return v, ok
}

// Values returns a shallow copy of the declared field values.
func (m *Model) Values() map[string]any {
	out := make(map[string]any, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

// Extra returns a shallow copy of the keys the schema does not declare.
func (m *Model) Extra() map[string]any {
	out := make(map[string]any, len(m.extra))
	for k, v := range m.extra {
		out[k] = v
	}
	return out
}

// FieldsSet returns the sorted names of declared fields supplied by the
// caller, either in the input or through Set.
func (m *Model) FieldsSet() []string { return m.presence.Names(PresenceSeen) }

// IsSet reports whether the declared field name was supplied by the caller.
func (m *Model) IsSet(name string) bool { return m.presence.Set(name) }

// Presence returns a copy of the per-field presence flags.
func (m *Model) Presence() PresenceMap { return m.presence.clone() }

// Set validates v against the declared field name and assigns it. An invalid
// value leaves the model unchanged and returns Issues located at the field.
// Undeclared names are stored as extras without validation.
func (m *Model) Set(ctx context.Context, name string, v any) error {
	f, ok := m.schema.Field(name)
	if !ok {
		if m.extra == nil {
			m.extra = make(map[string]any)
		}
		m.extra[name] = v
		return nil
	}
	parsed := v
	if v != nil || f.Required {
		p, err := f.Type.Parse(ctx, v)
		if err != nil {
			return Root().Field(f.WireName()).Rebase(err)
		}
		parsed = p
	}
	m.values[f.Name] = parsed
	flags := PresenceSeen
	if v == nil {
		flags |= PresenceWasNull
	}
	m.presence[f.Name] = flags
	return nil
}
