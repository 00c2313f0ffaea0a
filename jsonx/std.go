package jsonx

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// stdBackend is encoding/json.
type stdBackend struct{}

func (stdBackend) Name() string      { return "json" }
func (stdBackend) Aliases() []string { return nil }
func (stdBackend) Available() bool   { return true }

func (stdBackend) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (stdBackend) Unmarshal(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
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
