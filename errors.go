package pollyskema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes
const (
	CodeInvalidType   = "invalid_type"
	CodeRequired      = "required"
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodePattern       = "pattern"
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidFormat = "invalid_format"
	CodeParseError    = "parse_error"
	CodeBusinessRule  = "business_rule"
)

// ErrNoClient is returned by CurrentClient when no client was registered
// process-wide or attached to the context.
var ErrNoClient = errors.New("pollyskema: can't get client instance from context; register one with SetCurrent or WithClient")

// Issue represents a single field validation failure.
type Issue struct {
	Path    string // JSON Pointer relative to the model root (for example: /voices/2/id).
	Code    string
	Message string
	Hint    string
	Cause   error
	// Params carries structured parameters (e.g., {"min":1, "got":0}) for
	// i18n and log fields.
	Params map[string]any
}

func (it Issue) String() string {
	if it.Message == "" {
		return fmt.Sprintf("%s at %s", it.Code, it.Path)
	}
	return fmt.Sprintf("%s at %s: %s", it.Code, it.Path, it.Message)
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", iss[i].Code, iss[i].Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Paths returns the pointer of every issue in order.
func (iss Issues) Paths() []string {
	out := make([]string, 0, len(iss))
	for _, it := range iss {
		out = append(out, it.Path)
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	return append(dst, more...)
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// Rebase converts err into Issues located under base. Child paths are
// appended to base; non-Issues errors become a single parse_error.
func Rebase(base string, err error) Issues {
	if err == nil {
		return nil
	}
	child, ok := AsIssues(err)
	if !ok {
		return Issues{{Path: base, Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	out := make(Issues, 0, len(child))
	for _, it := range child {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = strings.TrimSuffix(base, "/") + p
		default:
			p = strings.TrimSuffix(base, "/") + "/" + p
		}
		it.Path = p
		out = append(out, it)
	}
	return out
}

// ValidationError is returned by Construct when the current client does not
// trust API responses and at least one field failed validation. It carries
// every field issue, not only the first.
type ValidationError struct {
	Schema string
	Issues Issues
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("pollyskema: %d validation error(s) for %s: %s", len(e.Issues), e.Schema, e.Issues.Error())
}

// Unwrap exposes the aggregated Issues to errors.As.
func (e *ValidationError) Unwrap() error { return e.Issues }
