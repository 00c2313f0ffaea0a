//go:build nojsoniter

package jsonx

// jsoniterBackend reports unavailable when built with the nojsoniter tag.
type jsoniterBackend struct{}

func (jsoniterBackend) Name() string                       { return "jsoniter" }
func (jsoniterBackend) Aliases() []string                  { return []string{"ujson"} }
func (jsoniterBackend) Available() bool                    { return false }
func (jsoniterBackend) Marshal(v any) ([]byte, error)      { return stdBackend{}.Marshal(v) }
func (jsoniterBackend) Unmarshal(data []byte) (any, error) { return stdBackend{}.Unmarshal(data) }
