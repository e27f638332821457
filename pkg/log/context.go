package log

import "context"

type ctxKey struct{}

// WithRequestID returns a copy of ctx carrying the given request ID.
// Every entry logged with the returned context includes it.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

// RequestIDFrom extracts the request ID stored by WithRequestID.
func RequestIDFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxKey{}).(string); ok {
		return v
	}
	return ""
}
