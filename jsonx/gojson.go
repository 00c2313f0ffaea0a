//go:build !nogojson

package jsonx

import (
	"bytes"
	"errors"
	"io"

	gojson "github.com/goccy/go-json"
)

// goJSONBackend is goccy/go-json. It holds the strict slot: times are
// written as UTC ISO-8601 and numbers decoded natively.
type goJSONBackend struct{}

func (goJSONBackend) Name() string      { return "gojson" }
func (goJSONBackend) Aliases() []string { return []string{"rapidjson"} }
func (goJSONBackend) Available() bool   { return true }

func (goJSONBackend) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := gojson.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(utcTimes(v)); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (goJSONBackend) Unmarshal(data []byte) (any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}
	return v, nil
}
