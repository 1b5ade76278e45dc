// Package render turns a settled state tree into the HTML document sent to
// the browser: the app shell and route view, the serialized tree for
// hydration, and the client bundle references.
package render

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/go-ssr-template/internal/app/state"
	"github.com/jsamuelsen11/go-ssr-template/internal/platform/i18n"
	"github.com/jsamuelsen11/go-ssr-template/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-ssr-template/internal/routes"
)

// StateScriptID is the id of the script element holding the serialized
// tree. The hydration bootstrap looks for it.
const StateScriptID = "app-state"

//go:embed templates/*.html.tmpl
var embedded embed.FS

const templatePattern = "*.html.tmpl"

// ErrNilState is returned when a page has no tree to render.
var ErrNilState = errors.New("render: nil state")

// Page is one render request. The renderer only reads State.
type Page struct {
	State *state.Tree
	Route routes.Route
	URL   string
}

// Options configures a Renderer.
type Options struct {
	// Production selects the templates parsed once at construction. Outside
	// production, TemplatesDir (when set) is re-parsed on every render.
	Production   bool
	TemplatesDir string

	Assets  Assets
	Bundle  *i18n.Bundle
	Metrics *telemetry.Metrics
	Logger  *slog.Logger
}

// Renderer produces HTML documents. It is safe for concurrent use.
type Renderer struct {
	tmpl    *template.Template
	devFS   fs.FS
	assets  Assets
	bundle  *i18n.Bundle
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New parses the page templates.
func New(opts Options) (*Renderer, error) {
	if opts.Bundle == nil {
		return nil, errors.New("render: i18n bundle is required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	r := &Renderer{
		assets:  opts.Assets,
		bundle:  opts.Bundle,
		metrics: opts.Metrics,
		logger:  opts.Logger,
	}

	source, pattern := fs.FS(embedded), "templates/"+templatePattern
	if !opts.Production && opts.TemplatesDir != "" {
		r.devFS = os.DirFS(opts.TemplatesDir)
		source, pattern = r.devFS, templatePattern
	}

	// Parsed even in development so a broken template fails at startup.
	tmpl, err := parse(source, pattern)
	if err != nil {
		return nil, err
	}
	r.tmpl = tmpl
	return r, nil
}

func parse(source fs.FS, pattern string) (*template.Template, error) {
	tmpl, err := template.New("").ParseFS(source, pattern)
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return tmpl, nil
}

// Render writes the document for p. The tree is serialized before any
// markup is produced, so a tree that cannot be embedded fails the render.
func (r *Renderer) Render(ctx context.Context, p Page) ([]byte, error) {
	if p.State == nil {
		return nil, ErrNilState
	}
	start := time.Now()

	tmpl, err := r.templates()
	if err != nil {
		return nil, err
	}

	blob, err := state.Serialize(p.State)
	if err != nil {
		return nil, err
	}

	v := newView(p, r.bundle, r.assets, blob)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "document", v); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", p.Route.Name, err)
	}

	r.record(ctx, p.Route, start)
	return buf.Bytes(), nil
}

// templates returns the parsed set, re-reading the template directory
// first outside production.
func (r *Renderer) templates() (*template.Template, error) {
	if r.devFS == nil {
		return r.tmpl, nil
	}
	return parse(r.devFS, templatePattern)
}

func (r *Renderer) record(ctx context.Context, route routes.Route, start time.Time) {
	elapsed := time.Since(start)
	r.logger.DebugContext(ctx, "page rendered",
		slog.String("route", route.Name),
		slog.Duration("duration", elapsed),
	)
	if r.metrics == nil {
		return
	}
	r.metrics.RenderDuration.Record(ctx, elapsed.Seconds(),
		metric.WithAttributes(telemetry.AttrRoute.String(route.Name)),
	)
}
