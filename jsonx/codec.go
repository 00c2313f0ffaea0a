package jsonx

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Codec binds Dumps/Loads to one backend.
type Codec struct {
	backend Backend
}

// NewCodec returns a Codec using b; nil selects the encoding/json fallback.
func NewCodec(b Backend) *Codec {
	if b == nil {
		b = fallback()
	}
	return &Codec{backend: b}
}

// Mode returns the backend name.
func (c *Codec) Mode() string { return c.backend.Name() }

// Dumps encodes v as JSON text.
func (c *Codec) Dumps(v any, opts ...DumpOption) (string, error) {
	b, err := c.DumpsBytes(v, opts...)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DumpsBytes encodes v as JSON.
func (c *Codec) DumpsBytes(v any, opts ...DumpOption) ([]byte, error) {
	var cfg dumpConfig
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.encoder != nil {
		v = applyDefault(v, cfg.encoder)
	}
	out, err := c.backend.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("jsonx(%s): encode: %w", c.backend.Name(), err)
	}
	if cfg.indent != "" {
		var buf bytes.Buffer
		if err := json.Indent(&buf, out, "", cfg.indent); err != nil {
			return nil, fmt.Errorf("jsonx(%s): indent: %w", c.backend.Name(), err)
		}
		out = buf.Bytes()
	}
	if cfg.ensureASCII {
		out = escapeNonASCII(out)
	}
	return out, nil
}

// Loads decodes JSON text.
func (c *Codec) Loads(s string) (any, error) { return c.LoadsBytes([]byte(s)) }

// LoadsBytes decodes JSON with numbers as int64 or float64.
func (c *Codec) LoadsBytes(b []byte) (any, error) {
	v, err := c.backend.Unmarshal(b)
	if err != nil {
		return nil, fmt.Errorf("jsonx(%s): decode: %w", c.backend.Name(), err)
	}
	return normalizeNumbers(v), nil
}
