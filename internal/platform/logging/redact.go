package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders holds the lowercase names of headers that carry
// credentials: the token cookie on page requests and the bearer header on
// API calls among them. middleware.RedactHeaders masks the same set.
var SensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"cookie":              true,
	"set-cookie":          true,
}

// Secret-looking values are masked wherever they appear, whatever the
// attribute key.
var secretValues = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	// JWTs, with segments of at least 10 characters so version strings
	// like 1.2.3 pass.
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
	// The session cookie as it appears in a raw Cookie or Set-Cookie line.
	regexp.MustCompile(`(?i)\btoken=[^;\s]+`),
}

// secretKeys are attribute keys, besides the header names, whose values
// never reach the output.
var secretKeys = []string{"password", "secret", "token"}

// redactor returns the ReplaceAttr hook that masq applies to every record.
// Struct fields tagged masq:"secret" are masked too, which covers the
// password inside a logged login action.
func redactor() func([]string, slog.Attr) slog.Attr {
	opts := []masq.Option{
		masq.WithTag("secret"),
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
	}
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, key := range secretKeys {
		opts = append(opts, masq.WithFieldName(key))
	}
	for _, re := range secretValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
