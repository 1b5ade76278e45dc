package httpclient

import (
	"context"
	"net/http"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID records the inbound request ID; Do copies it to
// X-Request-ID on every outbound call made under ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID records the correlation ID forwarded as
// X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

var forwarded = []struct {
	key    any
	header string
}{
	{requestIDKey{}, "X-Request-ID"},
	{correlationIDKey{}, "X-Correlation-ID"},
}

func forwardIDs(ctx context.Context, h http.Header) {
	for _, f := range forwarded {
		if id, _ := ctx.Value(f.key).(string); id != "" {
			h.Set(f.header, id)
		}
	}
}
