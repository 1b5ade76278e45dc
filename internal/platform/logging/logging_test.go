package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/go-ssr-template/internal/domain/user"
	"github.com/jsamuelsen11/go-ssr-template/internal/ducks/auth"
	"github.com/jsamuelsen11/go-ssr-template/internal/platform/logging"
)

func TestNew_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{format: "json", want: `"msg":"page rendered"`},
		{format: "text", want: `msg="page rendered"`},
		{format: "xml", want: `"level":"INFO"`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("page rendered")
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level   string
		emit    func(*slog.Logger)
		written bool
	}{
		{level: "debug", emit: func(l *slog.Logger) { l.Debug("x") }, written: true},
		{level: "DEBUG", emit: func(l *slog.Logger) { l.Debug("x") }, written: true},
		{level: "info", emit: func(l *slog.Logger) { l.Debug("x") }},
		{level: "info", emit: func(l *slog.Logger) { l.Info("x") }, written: true},
		{level: "warning", emit: func(l *slog.Logger) { l.Info("x") }},
		{level: "warning", emit: func(l *slog.Logger) { l.Warn("x") }, written: true},
		{level: "error", emit: func(l *slog.Logger) { l.Warn("x") }},
		{level: "verbose", emit: func(l *slog.Logger) { l.Debug("x") }},
		{level: "verbose", emit: func(l *slog.Logger) { l.Info("x") }, written: true},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		tt.emit(logging.New(tt.level, "json", &buf))
		assert.Equal(t, tt.written, buf.Len() > 0, "level %q", tt.level)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, logging.ParseLevel(" Debug "))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("warn"))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("warning"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel(""))
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var debug, info bytes.Buffer
	logging.New("debug", "json", &debug).Debug("with source")
	logging.New("info", "json", &info).Info("no source")

	assert.Contains(t, debug.String(), `"source"`)
	assert.NotContains(t, info.String(), `"source"`)
}

// --- Context ---

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Same(t, slog.Default(), logging.FromContext(context.Background()))

	first := logging.New("info", "json", &bytes.Buffer{})
	second := logging.New("debug", "json", &bytes.Buffer{})

	ctx := logging.WithLogger(context.Background(), first)
	assert.Same(t, first, logging.FromContext(ctx))

	ctx = logging.WithLogger(ctx, second)
	assert.Same(t, second, logging.FromContext(ctx), "later logger overwrites")
}

func TestWith_AddsAttributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.New("info", "json", &buf))
	ctx = logging.With(ctx, slog.String("route", "/todos"))
	ctx = logging.With(ctx, slog.String("locale", "cs"))

	logging.FromContext(ctx).Info("rendered")

	out := buf.String()
	assert.Contains(t, out, `"route":"/todos"`)
	assert.Contains(t, out, `"locale":"cs"`)
}

func TestWith_NoAttributesKeepsContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, ctx, logging.With(ctx))
}

// --- Redaction ---

func TestNew_Redacts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{name: "authorization field", attr: slog.String("authorization", "Bearer supersecret-token"), secret: "supersecret-token"},
		{name: "cookie field", attr: slog.String("cookie", "token=abc123def456"), secret: "abc123def456"},
		{name: "password field", attr: slog.String("password", "hunter2"), secret: "hunter2"},
		{name: "token field", attr: slog.String("token", "tok-secret-1"), secret: "tok-secret-1"},
		{name: "bearer value", attr: slog.String("raw_header", "Bearer eyJhbGciOiJSUzI1NiJ9"), secret: "eyJhbGciOiJSUzI1NiJ9"},
		{name: "raw cookie line", attr: slog.String("raw", "locale=cs; token=tok-abc123"), secret: "tok-abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("event", tt.attr)

			assert.NotContains(t, buf.String(), tt.secret)
			assert.Contains(t, buf.String(), "[REDACTED]")
		})
	}
}

func TestNew_KeepsNonSensitiveFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("event",
		slog.Int64("user_id", 7),
		slog.String("path", "/api/v1/todos"),
	)

	assert.Contains(t, buf.String(), `"user_id":7`)
	assert.Contains(t, buf.String(), "/api/v1/todos")
}

func TestNew_RedactsTaggedCredentialFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "text", &buf)

	creds := user.Credentials{Username: "alice", Password: "hunter2-but-longer"}
	logger.Info("dispatch", slog.Any("action", auth.Login{Credentials: creds}))

	assert.NotContains(t, buf.String(), "hunter2-but-longer")
	assert.Contains(t, buf.String(), "alice")
}
