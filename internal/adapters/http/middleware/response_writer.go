// Package middleware provides the HTTP middleware shared by page routes and
// the JSON API. cmd/server registers it on the router in this order:
//
//	Recovery -> RequestID -> CorrelationID -> AppContext -> OpenTelemetry ->
//	Logging -> Locale -> Timeout -> Handler
//
// Recovery and Timeout answer API paths with problem details and page
// paths with plain text.
package middleware

import "net/http"

// responseWriter records the status and body size of a page or API response
// for the recovery, otel and logging middleware.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
	written       int64
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

// WriteHeader records code; only the first call reaches the client.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode = code
	rw.headerWritten = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.headerWritten = true
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
