package jsonx

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// candidates lists the optional backends in priority order.
func candidates() []Backend { return []Backend{goJSONBackend{}, jsoniterBackend{}} }

// fallback is always available.
func fallback() Backend { return stdBackend{} }

// Backends returns every backend in priority order, fallback last.
func Backends() []Backend { return append(candidates(), fallback()) }

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Disabled reports whether DISABLE_<NAME> is present for the backend name or
// one of its aliases. The variable's value is ignored.
func Disabled(b Backend, lookup LookupFunc) bool {
	if lookup == nil {
		return false
	}
	for _, n := range append([]string{b.Name()}, b.Aliases()...) {
		if _, ok := lookup("DISABLE_" + strings.ToUpper(n)); ok {
			return true
		}
	}
	return false
}

// Select returns the first optional backend that is not disabled and is
// available, or the encoding/json fallback.
func Select(lookup LookupFunc) Backend {
	for _, b := range candidates() {
		if Disabled(b, lookup) {
			log.WithField("backend", b.Name()).Debug("jsonx: backend disabled by environment")
			continue
		}
		if !b.Available() {
			log.WithField("backend", b.Name()).Debug("jsonx: backend not compiled in")
			continue
		}
		return b
	}
	return fallback()
}

// defaultCodec is resolved once when the package loads.
var defaultCodec = NewCodec(Select(os.LookupEnv))

// Mode returns the name of the process-wide backend.
func Mode() string { return defaultCodec.Mode() }

// Default returns the process-wide Codec.
func Default() *Codec { return defaultCodec }

// Dumps encodes v with the process-wide backend.
func Dumps(v any, opts ...DumpOption) (string, error) { return defaultCodec.Dumps(v, opts...) }

// DumpsBytes is Dumps returning bytes.
func DumpsBytes(v any, opts ...DumpOption) ([]byte, error) {
	return defaultCodec.DumpsBytes(v, opts...)
}

// Loads decodes text with the process-wide backend.
func Loads(s string) (any, error) { return defaultCodec.Loads(s) }

// LoadsBytes is Loads for bytes.
func LoadsBytes(b []byte) (any, error) { return defaultCodec.LoadsBytes(b) }
