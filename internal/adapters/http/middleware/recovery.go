package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/jsamuelsen11/go-ssr-template/internal/adapters/http/dto"
)

// errInternalServer is what API clients see in place of the panic value.
var errInternalServer = errors.New("internal server error")

const apiPrefix = "/api/"

// isAPI reports whether r targets the JSON API rather than a rendered page.
func isAPI(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, apiPrefix)
}

// Recovery turns a panic in a page render or API handler into a 500. API
// paths get a problem+json body and pages get plain text; the panic value
// and stack go to the log only. When the handler already committed a status
// the response is left alone. http.ErrAbortHandler is re-raised so the
// server can drop the connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler { //nolint:errorlint // sentinel is compared by identity
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				switch {
				case rw.headerWritten:
				case isAPI(r):
					dto.WriteErrorResponse(rw, r, errInternalServer)
				default:
					http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
