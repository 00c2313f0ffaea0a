package dsl

import (
	"github.com/reoring/pollyskema"
)

type modelBuilder struct {
	name   string
	fields []pollyskema.Field
	index  map[string]int
}

type fieldStep struct {
	b *modelBuilder
	i int
}

// Model starts a schema declaration. Fields are optional, have no alias and
// no default until configured on the returned field step.
func Model(name string) *modelBuilder {
	return &modelBuilder{name: name, index: map[string]int{}}
}

// Field declares (or redeclares) a field with its type.
func (b *modelBuilder) Field(name string, t pollyskema.Type) *fieldStep {
	if i, ok := b.index[name]; ok {
		b.fields[i] = pollyskema.Field{Name: name, Type: t}
		return &fieldStep{b: b, i: i}
	}
	b.index[name] = len(b.fields)
	b.fields = append(b.fields, pollyskema.Field{Name: name, Type: t})
	return &fieldStep{b: b, i: len(b.fields) - 1}
}

// Build validates the declarations and returns the Schema.
func (b *modelBuilder) Build() (*pollyskema.Schema, error) {
	return pollyskema.NewSchema(b.name, b.fields...)
}

// MustBuild is like Build but panics on error.
func (b *modelBuilder) MustBuild() *pollyskema.Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

func (f *fieldStep) field() *pollyskema.Field { return &f.b.fields[f.i] }

// Alias sets the wire name of the field.
func (f *fieldStep) Alias(alias string) *fieldStep {
	f.field().Alias = alias
	return f
}

// Required marks the field as required.
func (f *fieldStep) Required() *fieldStep {
	f.field().Required = true
	return f
}

// Optional marks the field as optional (default).
func (f *fieldStep) Optional() *fieldStep {
	f.field().Required = false
	return f
}

// Default sets the value used when the field is absent. It is parsed through
// the field type at Build.
func (f *fieldStep) Default(v any) *fieldStep {
	fd := f.field()
	fd.Default = v
	fd.HasDefault = true
	return f
}

// Describe sets the JSON Schema description.
func (f *fieldStep) Describe(text string) *fieldStep {
	f.field().Description = text
	return f
}

func (f *fieldStep) Field(name string, t pollyskema.Type) *fieldStep { return f.b.Field(name, t) }
func (f *fieldStep) Build() (*pollyskema.Schema, error)              { return f.b.Build() }
func (f *fieldStep) MustBuild() *pollyskema.Schema                   { return f.b.MustBuild() }
