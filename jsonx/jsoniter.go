//go:build !nojsoniter

package jsonx

import jsoniter "github.com/json-iterator/go"

var jsoniterAPI = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	UseNumber:              true,
	ValidateJsonRawMessage: true,
}.Froze()

// jsoniterBackend is json-iterator/go.
type jsoniterBackend struct{}

func (jsoniterBackend) Name() string      { return "jsoniter" }
func (jsoniterBackend) Aliases() []string { return []string{"ujson"} }
func (jsoniterBackend) Available() bool   { return true }

func (jsoniterBackend) Marshal(v any) ([]byte, error) { return jsoniterAPI.Marshal(v) }

// Unmarshal rejects bytes left after the value.
func (jsoniterBackend) Unmarshal(data []byte) (any, error) {
	iter := jsoniterAPI.BorrowIterator(data)
	defer jsoniterAPI.ReturnIterator(iter)
	v := iter.Read()
	if iter.Error != nil {
		return nil, iter.Error
	}
	if iter.WhatIsNext() != jsoniter.InvalidValue {
		return nil, ErrTrailingData
	}
	return v, nil
}
