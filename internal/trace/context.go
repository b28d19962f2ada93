package trace

import "context"

// requestIDKey is an unexported context key type, preventing collisions with
// keys defined in other packages.
type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying the given request/run ID.
// The ID is opaque to this package; callers typically stamp a generation
// run with a UUID so overlapping operations can be correlated in logs.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the request ID stored in ctx, if any.
// An empty string is a valid, present request ID; ok distinguishes
// "present but empty" from "not set".
func RequestIDFrom(ctx context.Context) (string, bool) {
	v := ctx.Value(requestIDKey{})
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
