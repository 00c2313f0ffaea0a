package pollyskema

import (
	"context"
	"fmt"
	"sort"

	js "github.com/reoring/pollyskema/jsonschema"
)

// Type validates and coerces one raw field value.
//
// Parse reports Issues relative to the value itself ("/"). On failure it may
// still return a non-nil best-effort value, such as a partially valid nested
// model; a nil value means the raw input is kept as is.
type Type interface {
	Parse(ctx context.Context, v any) (any, error)
	JSONSchema() *js.Schema
}

// Field declares one schema field.
type Field struct {
	Name        string // internal snake_case name
	Alias       string // wire name; empty means Name
	Type        Type
	Default     any
	HasDefault  bool
	Required    bool
	Description string
}

// WireName returns the alias when set, otherwise the name.
func (f Field) WireName() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// Schema is an open object schema: declared fields are validated, any other
// key is kept in the model's extras.
type Schema struct {
	name     string
	fields   []Field
	byName   map[string]int
	byAlias  map[string]int
	defaults map[string]any
}

// NewSchema validates the field declarations and returns a Schema. Defaults
// are parsed once through their field type and must be valid.
func NewSchema(name string, fields ...Field) (*Schema, error) {
	s := &Schema{
		name:     name,
		fields:   make([]Field, 0, len(fields)),
		byName:   make(map[string]int, len(fields)),
		byAlias:  make(map[string]int, len(fields)),
		defaults: make(map[string]any, len(fields)),
	}
	owner := map[string]string{}
	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("pollyskema: schema %s: field without name", name)
		}
		if f.Type == nil {
			return nil, fmt.Errorf("pollyskema: schema %s: field %q has no type", name, f.Name)
		}
		if _, dup := s.byName[f.Name]; dup {
			return nil, fmt.Errorf("pollyskema: schema %s: duplicate field %q", name, f.Name)
		}
		for _, key := range []string{f.Name, f.Alias} {
			if key == "" {
				continue
			}
			if other, ok := owner[key]; ok && other != f.Name {
				return nil, fmt.Errorf("pollyskema: schema %s: key %q used by %q and %q", name, key, other, f.Name)
			}
			owner[key] = f.Name
		}
		s.fields = append(s.fields, f)
		s.byName[f.Name] = -1
	}
	sort.Slice(s.fields, func(i, j int) bool { return s.fields[i].Name < s.fields[j].Name })
	for i, f := range s.fields {
		s.byName[f.Name] = i
		if f.Alias != "" {
			s.byAlias[f.Alias] = i
		}
		if f.HasDefault && f.Default != nil {
			dv, err := f.Type.Parse(context.Background(), f.Default)
			if err != nil {
				return nil, fmt.Errorf("pollyskema: schema %s: invalid default for %q: %w", name, f.Name, err)
			}
			s.defaults[f.Name] = dv
		}
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on error.
func MustSchema(name string, fields ...Field) *Schema {
	s, err := NewSchema(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the schema name used in logs and errors.
func (s *Schema) Name() string { return s.name }

// Fields returns the declared fields sorted by name.
func (s *Schema) Fields() []Field { return append([]Field(nil), s.fields...) }

// Field looks a declared field up by internal name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// DefaultValue returns the parsed default of a field (nil when none).
func (s *Schema) DefaultValue(name string) any { return s.defaults[name] }

// resolveKey maps an input key to a declared field index. Aliases win over
// internal names.
func (s *Schema) resolveKey(key string) (int, bool) {
	if i, ok := s.byAlias[key]; ok {
		return i, true
	}
	i, ok := s.byName[key]
	return i, ok
}

func (s *Schema) lookup(data map[string]any, f Field) (any, bool) {
	if f.Alias != "" {
		if v, ok := data[f.Alias]; ok {
			return v, true
		}
	}
	v, ok := data[f.Name]
	return v, ok
}

// Validate checks data against the declared fields. Issues are located at the
// field's wire name whichever key the input used. It returns the validated
// values keyed by internal name, the presence of every declared field, and
// the aggregate of all field issues (nil on full success). Fields that
// failed keep their raw input value or the type's best-effort value.
func (s *Schema) Validate(ctx context.Context, data map[string]any) (map[string]any, PresenceMap, Issues) {
	values := make(map[string]any, len(s.fields))
	pm := make(PresenceMap, len(s.fields))
	var iss Issues
	for _, f := range s.fields {
		raw, ok := s.lookup(data, f)
		if !ok {
			v, i2 := s.missing(ctx, f, pm)
			iss = append(iss, i2...)
			values[f.Name] = v
			continue
		}
		pm[f.Name] |= PresenceSeen
		if raw == nil {
			pm[f.Name] |= PresenceWasNull
			if !f.Required {
				values[f.Name] = nil
				continue
			}
		}
		v, err := f.Type.Parse(ctx, raw)
		if err != nil {
			iss = AppendIssues(iss, Root().Field(f.WireName()).Rebase(err)...)
			if v == nil {
				v = raw
			}
		}
		values[f.Name] = v
	}
	return values, pm, iss
}

// missing applies the default of an absent field or reports it as required.
func (s *Schema) missing(ctx context.Context, f Field, pm PresenceMap) (any, Issues) {
	if f.HasDefault {
		pm[f.Name] |= PresenceDefaultApplied
		if f.Default == nil {
			return nil, nil
		}
		// parse again so mutable defaults are never shared between models
		dv, err := f.Type.Parse(ctx, f.Default)
		if err != nil {
			return nil, Root().Field(f.WireName()).Rebase(err)
		}
		return dv, nil
	}
	if f.Required {
		it := Root().Field(f.WireName()).Issue(CodeRequired)
		it.Hint = "required property missing"
		return nil, Issues{it}
	}
	return nil, nil
}

// Parse validates data and always builds a Model. Issues, if any, are
// returned alongside it; the trust decision is left to the caller
// (see Construct).
func (s *Schema) Parse(ctx context.Context, data map[string]any) (*Model, error) {
	values, pm, iss := s.Validate(ctx, data)
	m := &Model{schema: s, values: values, presence: pm}
	for k, v := range data {
		if _, known := s.resolveKey(k); known {
			continue
		}
		if m.extra == nil {
			m.extra = make(map[string]any)
		}
		m.extra[k] = v
	}
	if len(iss) > 0 {
		return m, iss
	}
	return m, nil
}

// JSONSchema projects the schema into JSON Schema using wire names.
func (s *Schema) JSONSchema() *js.Schema {
	out := &js.Schema{
		Title:                s.name,
		Type:                 "object",
		Properties:           make(map[string]*js.Schema, len(s.fields)),
		AdditionalProperties: true,
	}
	for _, f := range s.fields {
		fs := f.Type.JSONSchema()
		if fs == nil {
			fs = &js.Schema{}
		}
		if f.HasDefault && f.Default != nil {
			fs.Default = f.Default
		}
		if f.Description != "" {
			fs.Description = f.Description
		}
		out.Properties[f.WireName()] = fs
		if f.Required {
			out.Required = append(out.Required, f.WireName())
		}
	}
	return out
}
