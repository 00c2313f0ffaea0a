package pollyskema

import (
	"context"
	"sync/atomic"
)

// Client is the part of the SDK client that models consult while they are
// being constructed.
type Client interface {
	// TrustAPIResponses reports whether malformed API responses are logged and
	// tolerated (true) or rejected with a ValidationError (false).
	TrustAPIResponses() bool
}

// StaticClient is a Client with a fixed trust setting.
type StaticClient struct {
	Trust bool
}

func (c StaticClient) TrustAPIResponses() bool { return c.Trust }

type clientHolder struct{ c Client }

var currentClient atomic.Pointer[clientHolder]

// SetCurrent registers c as the process-wide current client; nil values are
// ignored. Register once before constructing models concurrently.
func SetCurrent(c Client) {
	if c == nil {
		return
	}
	currentClient.Store(&clientHolder{c: c})
}

// GetCurrent returns the process-wide client or nil.
func GetCurrent() Client {
	if h := currentClient.Load(); h != nil {
		return h.c
	}
	return nil
}

// clientKey is the context key for a scoped client.
type clientKey struct{}

// WithClient returns a child context carrying c. It takes precedence over the
// process-wide client.
func WithClient(ctx context.Context, c Client) context.Context {
	return context.WithValue(ctx, clientKey{}, c)
}

// CurrentClient resolves the client from ctx, falling back to the process-wide
// client. It returns ErrNoClient when neither is set and never mutates either.
func CurrentClient(ctx context.Context) (Client, error) {
	if ctx != nil {
		if c, ok := ctx.Value(clientKey{}).(Client); ok && c != nil {
			return c, nil
		}
	}
	if c := GetCurrent(); c != nil {
		return c, nil
	}
	return nil, ErrNoClient
}

// trustAPIResponses fails open: without a client every response is trusted.
func trustAPIResponses(ctx context.Context) bool {
	c, err := CurrentClient(ctx)
	if err != nil {
		return true
	}
	return c.TrustAPIResponses()
}
