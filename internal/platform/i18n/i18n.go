// Package i18n resolves request locales and formats localized UI strings
// using golang.org/x/text.
package i18n

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// ErrNoLocales is returned by New when no locale is configured.
var ErrNoLocales = errors.New("i18n: at least one locale is required")

// Bundle holds the message catalog and the matcher for the configured
// locales. It is safe for concurrent use.
type Bundle struct {
	locales       []string
	tags          []language.Tag
	defaultLocale string
	matcher       language.Matcher
	catalog       catalog.Catalog
}

// New builds a Bundle for locales. defaultLocale must be one of them and is
// used when nothing the client asks for matches.
func New(locales []string, defaultLocale string) (*Bundle, error) {
	if len(locales) == 0 {
		return nil, ErrNoLocales
	}
	if !slices.Contains(locales, defaultLocale) {
		return nil, fmt.Errorf("i18n: default locale %q not in %v", defaultLocale, locales)
	}

	// The default goes first so the matcher falls back to it.
	ordered := append([]string{defaultLocale}, slices.DeleteFunc(slices.Clone(locales), func(l string) bool {
		return l == defaultLocale
	})...)

	tags := make([]language.Tag, len(ordered))
	for i, l := range ordered {
		tag, err := language.Parse(l)
		if err != nil {
			return nil, fmt.Errorf("i18n: parsing locale %q: %w", l, err)
		}
		tags[i] = tag
	}

	cat, err := buildCatalog()
	if err != nil {
		return nil, err
	}

	return &Bundle{
		locales:       ordered,
		tags:          tags,
		defaultLocale: defaultLocale,
		matcher:       language.NewMatcher(tags),
		catalog:       cat,
	}, nil
}

// Locales returns the configured locales, default first.
func (b *Bundle) Locales() []string { return slices.Clone(b.locales) }

// Default returns the fallback locale.
func (b *Bundle) Default() string { return b.defaultLocale }

// Supports reports whether locale is configured.
func (b *Bundle) Supports(locale string) bool {
	return slices.Contains(b.locales, locale)
}

// Match picks the configured locale that best serves the client. An
// explicit preference (cookie or query value) wins when it is configured;
// otherwise the Accept-Language header decides.
func (b *Bundle) Match(preferred, acceptLanguage string) string {
	if b.Supports(preferred) {
		return preferred
	}

	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return b.defaultLocale
	}

	_, index, confidence := b.matcher.Match(desired...)
	if confidence == language.No {
		return b.defaultLocale
	}
	return b.locales[index]
}

// Printer returns a printer for locale. Unconfigured locales get the
// default locale's printer.
func (b *Bundle) Printer(locale string) *message.Printer {
	tag := b.tags[0]
	if i := slices.Index(b.locales, locale); i >= 0 {
		tag = b.tags[i]
	}
	return message.NewPrinter(tag, message.Catalog(b.catalog))
}

// T formats the message key in locale. Unknown keys are returned verbatim.
func (b *Bundle) T(locale, key string, args ...any) string {
	return b.Printer(locale).Sprintf(key, args...)
}

type localeKey struct{}

// WithLocale stores the resolved request locale in ctx.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey{}, locale)
}

// LocaleFrom returns the locale stored by WithLocale, or "" if none.
func LocaleFrom(ctx context.Context) string {
	l, _ := ctx.Value(localeKey{}).(string)
	return l
}
