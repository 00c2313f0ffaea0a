//go:build nogojson

package jsonx

// goJSONBackend reports unavailable when built with the nogojson tag.
type goJSONBackend struct{}

func (goJSONBackend) Name() string                       { return "gojson" }
func (goJSONBackend) Aliases() []string                  { return []string{"rapidjson"} }
func (goJSONBackend) Available() bool                    { return false }
func (goJSONBackend) Marshal(v any) ([]byte, error)      { return stdBackend{}.Marshal(v) }
func (goJSONBackend) Unmarshal(data []byte) (any, error) { return stdBackend{}.Unmarshal(data) }
