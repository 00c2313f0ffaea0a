package jsonx

import "errors"

// ErrTrailingData is returned by Loads when the input holds more than one
// JSON value.
var ErrTrailingData = errors.New("jsonx: trailing data after JSON value")

// Backend is one JSON implementation.
type Backend interface {
	// Name is the backend's mode name, also used for DISABLE_<NAME>.
	Name() string
	// Aliases are additional names that disable the backend.
	Aliases() []string
	// Available reports whether the implementation is compiled in.
	Available() bool
	// Marshal encodes v compactly without HTML escaping.
	Marshal(v any) ([]byte, error)
	// Unmarshal decodes exactly one value with numbers as json.Number.
	Unmarshal(data []byte) (any, error)
}

// EncoderFunc converts a value the backend should not encode natively. It
// returns false when it does not handle v, in which case the backend's own
// encoding applies.
type EncoderFunc func(v any) (any, bool)

type dumpConfig struct {
	ensureASCII bool
	indent      string
	encoder     EncoderFunc
}

// DumpOption configures Dumps.
type DumpOption func(*dumpConfig)

// WithEnsureASCII escapes every non-ASCII character as \uXXXX.
func WithEnsureASCII(on bool) DumpOption { return func(c *dumpConfig) { c.ensureASCII = on } }

// WithIndent pretty-prints with the given indent per level.
func WithIndent(indent string) DumpOption { return func(c *dumpConfig) { c.indent = indent } }

// WithDefault sets the converter for values that are not plain JSON.
func WithDefault(fn EncoderFunc) DumpOption { return func(c *dumpConfig) { c.encoder = fn } }
