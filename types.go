package pollyskema

import "github.com/reoring/pollyskema/jsonx"

// DictOpt controls how a Model is projected into a plain map.
type DictOpt struct {
	// Include restricts output to the named fields (internal names, extras
	// included). A name present in both Include and Exclude is emitted.
	Include []string
	Exclude []string
	// ByAlias emits declared fields under their wire alias.
	ByAlias bool
	// SkipDefaults omits fields that were never set and still hold their
	// schema default.
	SkipDefaults bool
	// UseCamel rewrites every key of the result, recursively, from
	// snake_case to camelCase.
	UseCamel bool
}

// JSONOpt extends DictOpt with encoding options.
type JSONOpt struct {
	DictOpt
	// Encoder converts values the backend would not encode the way the API
	// expects. Defaults to codec.DefaultEncoder.
	Encoder     jsonx.EncoderFunc
	EnsureASCII bool
	Indent      string
}

func (o DictOpt) allows(name string) bool {
	for _, n := range o.Include {
		if n == name {
			return true
		}
	}
	if len(o.Include) > 0 {
		return false
	}
	for _, n := range o.Exclude {
		if n == name {
			return false
		}
	}
	return true
}

// nested drops the top-level-only filters for recursion into child models.
func (o DictOpt) nested() DictOpt {
	return DictOpt{ByAlias: o.ByAlias, SkipDefaults: o.SkipDefaults}
}
