package middleware

import (
	"net/http"

	appctx "github.com/jsamuelsen11/go-ssr-template/internal/app/context"
)

// AppContext returns middleware that creates a new RequestContext for each
// HTTP request and stores it in the request context. The auth service and
// the API client memoize session lookups in it, so a page render and the
// routines it starts resolve a token once.
//
// Register it after CorrelationID so the RequestContext's embedded context
// carries the request and correlation IDs.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.New(r.Context())
			ctx := appctx.WithRequestContext(r.Context(), rc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
