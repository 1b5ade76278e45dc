// Package settings is the config slice of the state tree: application
// identity and the active locale, seeded from server configuration.
package settings

import (
	"slices"

	"github.com/jsamuelsen11/go-ssr-template/internal/redux"
)

// TypeSetLocale switches the active locale.
const TypeSetLocale = "config/SET_LOCALE"

// SetLocale switches to Locale when it is one of the supported locales.
type SetLocale struct {
	Locale string `json:"locale"`
}

func (SetLocale) Type() string { return TypeSetLocale }

// RegisterActions adds every config action to r.
func RegisterActions(r *redux.Registry) {
	redux.Register[SetLocale](r)
}

// State is the config slice.
type State struct {
	AppName           string   `json:"appName"`
	Locale            string   `json:"locale"`
	Locales           []string `json:"locales"`
	GoogleAnalyticsID string   `json:"googleAnalyticsId"`
}

// Initial returns an unnamed app that only speaks English.
func Initial() *State {
	return &State{Locale: "en", Locales: []string{"en"}}
}

// New builds the slice from server configuration. locale must be one of
// locales.
func New(appName, locale string, locales []string, googleAnalyticsID string) *State {
	return &State{
		AppName:           appName,
		Locale:            locale,
		Locales:           slices.Clone(locales),
		GoogleAnalyticsID: googleAnalyticsID,
	}
}

// Supports reports whether locale is configured.
func (s *State) Supports(locale string) bool {
	return slices.Contains(s.Locales, locale)
}

// Equal reports structural equality.
func (s *State) Equal(other *State) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.AppName == other.AppName &&
		s.Locale == other.Locale &&
		s.GoogleAnalyticsID == other.GoogleAnalyticsID &&
		slices.Equal(s.Locales, other.Locales)
}

// Reduce applies a to s. A nil s is treated as Initial().
func Reduce(s *State, a redux.Action) *State {
	if s == nil {
		s = Initial()
	}

	if a, ok := a.(SetLocale); ok {
		if a.Locale == s.Locale || !s.Supports(a.Locale) {
			return s
		}
		next := *s
		next.Locale = a.Locale
		return &next
	}

	return s
}
