package middleware

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-ssr-template/internal/platform/i18n"
	"github.com/jsamuelsen11/go-ssr-template/internal/platform/logging"
)

const (
	// LocaleParam is the query parameter that switches the page language.
	LocaleParam = "locale"
	// LocaleCookie remembers an explicit language choice.
	LocaleCookie = "locale"

	localeCookieMaxAge = 365 * 24 * 60 * 60
)

// Locale returns middleware that resolves the request locale and stores it
// via i18n.WithLocale. A supported ?locale= value wins and is remembered in
// a cookie; otherwise the cookie, then Accept-Language decide. The context
// logger gains a locale attribute.
func Locale(bundle *i18n.Bundle, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			preferred := r.URL.Query().Get(LocaleParam)
			if bundle.Supports(preferred) {
				http.SetCookie(w, &http.Cookie{
					Name:     LocaleCookie,
					Value:    preferred,
					Path:     "/",
					MaxAge:   localeCookieMaxAge,
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			} else if c, err := r.Cookie(LocaleCookie); err == nil {
				preferred = c.Value
			}

			locale := bundle.Match(preferred, r.Header.Get("Accept-Language"))
			w.Header().Add("Vary", "Accept-Language")
			w.Header().Set("Content-Language", locale)

			ctx := i18n.WithLocale(r.Context(), locale)
			ctx = logging.With(ctx, slog.String("locale", locale))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
