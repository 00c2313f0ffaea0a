// Package jsonx exposes one Dumps/Loads pair backed by the fastest JSON
// implementation available to the process.
//
// Backends are ranked: go-json, then json-iterator, then encoding/json which
// is always available. The first backend that is compiled in (build tags
// nogojson and nojsoniter remove the optional ones) and not disabled through
// DISABLE_<NAME> in the environment is selected when the package loads, and
// never changes afterwards. Each optional backend also answers to the name of
// the library it stands in for, so DISABLE_RAPIDJSON disables go-json and
// DISABLE_UJSON disables json-iterator.
//
// Every backend is configured alike: no HTML escaping, non-ASCII text written
// as is unless EnsureASCII is requested, and numbers decoded natively
// (int64 when integral, float64 otherwise). Integers beyond the int64 range
// are left as json.Number so no digits are lost.
package jsonx
