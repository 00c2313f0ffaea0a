package pollyskema

import (
	"maps"
	"reflect"
	"slices"

	"github.com/reoring/pollyskema/casing"
	"github.com/reoring/pollyskema/codec"
	"github.com/reoring/pollyskema/jsonx"
)

// ToMap returns a plain map view of the declared fields and extras. Nested
// models are converted recursively. The model is not modified. Declared
// fields are written first, so an extra whose key (after camel conversion)
// matches a declared field is dropped.
func (m *Model) ToMap(opt DictOpt) map[string]any {
	conv := func(k string) string { return k }
	if opt.UseCamel {
		conv = casing.ToCamel
	}
	out := make(map[string]any, len(m.values)+len(m.extra))
	for _, f := range m.schema.fields {
		if !opt.allows(f.Name) {
			continue
		}
		v := m.values[f.Name]
		if opt.SkipDefaults && !m.presence.Set(f.Name) && reflect.DeepEqual(v, m.schema.defaults[f.Name]) {
			continue
		}
		key := f.Name
		if opt.ByAlias {
			key = f.WireName()
		}
		out[conv(key)] = exportField(v, opt)
	}
	for _, k := range slices.Sorted(maps.Keys(m.extra)) {
		if !opt.allows(k) {
			continue
		}
		key := conv(k)
		if _, taken := out[key]; taken {
			continue
		}
		out[key] = exportField(m.extra[k], opt)
	}
	return out
}

func exportField(v any, opt DictOpt) any {
	ev := exportValue(v, opt.nested())
	if opt.UseCamel {
		return casing.CamelValue(ev)
	}
	return ev
}

func exportValue(v any, opt DictOpt) any {
	switch t := v.(type) {
	case *Model:
		if t == nil {
			return nil
		}
		return t.ToMap(opt)
	case []any:
		out := make([]any, len(t))
		for i, it := range t {
			out[i] = exportValue(it, opt)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, it := range t {
			out[k] = exportValue(it, opt)
		}
		return out
	default:
		return v
	}
}

// ToJSON serializes ToMap(opt.DictOpt) with the active JSON backend. Values
// the backend should not encode natively go through opt.Encoder, which
// defaults to codec.DefaultEncoder (datetimes as epoch seconds, durations as
// ISO-8601 text).
func (m *Model) ToJSON(opt JSONOpt) (string, error) {
	enc := opt.Encoder
	if enc == nil {
		enc = codec.DefaultEncoder
	}
	dopts := []jsonx.DumpOption{jsonx.WithDefault(enc), jsonx.WithEnsureASCII(opt.EnsureASCII)}
	if opt.Indent != "" {
		dopts = append(dopts, jsonx.WithIndent(opt.Indent))
	}
	return jsonx.Dumps(m.ToMap(opt.DictOpt), dopts...)
}

// MarshalJSON encodes the model by alias with the default encoder, which is
// the form request payloads are sent in.
func (m *Model) MarshalJSON() ([]byte, error) {
	s, err := m.ToJSON(JSONOpt{DictOpt: DictOpt{ByAlias: true}})
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}
