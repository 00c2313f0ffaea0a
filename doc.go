// Package pollyskema is the model core of the speech client SDK.
//
// It provides:
//
//   - Open object schemas with typed fields, wire aliases and defaults (see dsl/ for builders)
//   - Tolerant construction of API responses, governed by the client's trust setting
//   - Map and JSON projections with include/exclude, alias, skip-defaults and camelCase output
//   - A structural content hash for use in sets and map keys
//
// JSON encoding goes through jsonx, which picks the fastest available backend
// once per process.
//
// Typical usage:
//
//	pollyskema.SetCurrent(pollyskema.StaticClient{Trust: false})
//	m, err := pollyskema.ConstructJSON(ctx, types.VoiceSchema, body)
//	wire, err := m.ToJSON(pollyskema.JSONOpt{DictOpt: pollyskema.DictOpt{ByAlias: true}})
package pollyskema
