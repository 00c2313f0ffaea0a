package pollyskema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/pollyskema/i18n"
)

// Path builds the JSON Pointer of an issue location. The zero value is the
// model root.
type Path struct {
	parts []string
}

// Root returns the empty path ("/").
func Root() Path { return Path{} }

// Field appends an object key, escaped per RFC 6901.
func (p Path) Field(name string) Path {
	if name == "" {
		return p
	}
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return Path{parts: append(append([]string{}, p.parts...), esc)}
}

// Index appends an array index.
func (p Path) Index(i int) Path {
	return Path{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

// Pointer renders the path, "/" for the root.
func (p Path) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

func (p Path) String() string { return p.Pointer() }

// Issue creates an Issue located at p with a translated message. kv are
// alternating key/value pairs stored in Params and passed to the translator
// as text.
func (p Path) Issue(code string, kv ...any) Issue {
	var (
		params map[string]any
		data   map[string]string
	)
	if len(kv) > 1 {
		params = make(map[string]any, len(kv)/2)
		data = make(map[string]string, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			k := fmt.Sprint(kv[i])
			params[k] = kv[i+1]
			data[k] = fmt.Sprint(kv[i+1])
		}
	}
	return Issue{Path: p.Pointer(), Code: code, Message: i18n.T(code, data), Params: params}
}

// Rebase is the package-level Rebase under p.
func (p Path) Rebase(err error) Issues { return Rebase(p.Pointer(), err) }
