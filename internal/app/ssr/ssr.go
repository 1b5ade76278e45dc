// Package ssr answers page requests and form submissions by running a fresh
// store per request: it dispatches what the route needs, waits for the
// routines to settle, then either redirects to a recorded location or
// renders the resulting state tree.
package ssr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/go-ssr-template/internal/app/effects"
	"github.com/jsamuelsen11/go-ssr-template/internal/app/navigation"
	"github.com/jsamuelsen11/go-ssr-template/internal/app/state"
	"github.com/jsamuelsen11/go-ssr-template/internal/app/storemw"
	"github.com/jsamuelsen11/go-ssr-template/internal/domain"
	"github.com/jsamuelsen11/go-ssr-template/internal/ducks/auth"
	"github.com/jsamuelsen11/go-ssr-template/internal/ducks/settings"
	"github.com/jsamuelsen11/go-ssr-template/internal/ducks/todos"
	"github.com/jsamuelsen11/go-ssr-template/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-ssr-template/internal/redux"
	"github.com/jsamuelsen11/go-ssr-template/internal/render"
	"github.com/jsamuelsen11/go-ssr-template/internal/routes"
)

const defaultTimeout = 5 * time.Second

// Renderer turns a settled page into HTML.
type Renderer interface {
	Render(ctx context.Context, p render.Page) ([]byte, error)
}

// Request is one page visit or form post.
type Request struct {
	// Path selects the route. For form posts it is the page re-rendered
	// when the submission fails.
	Path string

	// URL is the full request URL, path and query, as the visitor sent it.
	URL string

	// Token is the session token from the cookie, if any.
	Token string

	// Locale is the negotiated locale; empty keeps the configured default.
	Locale string
}

// Result is the response the HTTP adapter writes.
type Result struct {
	Status   int
	Location string
	Body     []byte

	// Token is the session token after the request. TokenChanged is set
	// when it differs from Request.Token and the cookie must be rewritten.
	Token        string
	TokenChanged bool
}

// Redirect reports whether r carries a Location instead of a body.
func (r *Result) Redirect() bool {
	return r.Location != ""
}

// Build makes the action of a form post from the state loaded for the page.
// Returning nil skips the dispatch and redirects back to the page.
type Build func(*state.Tree) redux.Action

// Options configures a Pipeline.
type Options struct {
	Renderer  Renderer
	Processes *effects.Processes

	// Config is the application settings slice every request starts from.
	Config *settings.State

	Metrics *telemetry.Metrics
	Logger  *slog.Logger

	// Timeout bounds one request, routines included. Defaults to 5s.
	Timeout time.Duration
}

// Pipeline runs requests through per-request stores.
type Pipeline struct {
	renderer Renderer
	routines effects.Routines
	config   *settings.State
	matcher  *routes.Matcher
	metrics  *telemetry.Metrics
	logger   *slog.Logger
	timeout  time.Duration
}

// New creates a Pipeline.
func New(opts Options) (*Pipeline, error) {
	if opts.Renderer == nil {
		return nil, errors.New("ssr: renderer is required")
	}
	if opts.Processes == nil {
		return nil, errors.New("ssr: processes are required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Pipeline{
		renderer: opts.Renderer,
		routines: opts.Processes.Routines(),
		config:   opts.Config,
		matcher:  routes.NewMatcher(),
		metrics:  opts.Metrics,
		logger:   logger,
		timeout:  timeout,
	}, nil
}

// Page serves a GET. Unmatched paths render the not-found view with 404.
func (p *Pipeline) Page(ctx context.Context, req Request) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	route, ok := p.matcher.Match(req.Path)
	status := http.StatusOK
	if !ok {
		status = http.StatusNotFound
		p.logger.WarnContext(ctx, "no route matched", slog.String("path", req.Path))
	}

	s := p.begin(ctx)
	if err := s.load(ctx, req, route); err != nil {
		return nil, err
	}
	if res := s.redirect(req, route); res != nil {
		return res, nil
	}
	return s.render(ctx, req, route, status)
}

// Submit serves a form post against the page at req.Path. A recorded
// navigation or a clean outcome redirects (post/redirect/get); a failure
// re-renders the page with 422 and the failure in the state tree.
func (p *Pipeline) Submit(ctx context.Context, req Request, build Build) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	route, ok := p.matcher.Match(req.Path)
	if !ok {
		return nil, fmt.Errorf("ssr: no page at %q", req.Path)
	}

	s := p.begin(ctx)
	if err := s.load(ctx, req, route); err != nil {
		return nil, err
	}
	if res := s.redirect(req, route); res != nil {
		return res, nil
	}

	before := s.store.GetState()
	action := build(before)
	if action == nil {
		return s.result(req, http.StatusSeeOther, route.Pattern), nil
	}

	if err := s.dispatch(ctx, action); err != nil {
		return nil, err
	}
	if loc := s.recorder.Take(); loc != "" {
		return s.result(req, http.StatusSeeOther, loc), nil
	}

	after := s.store.GetState()
	if failed(before, after) {
		return s.render(ctx, req, route, http.StatusUnprocessableEntity)
	}
	return s.result(req, http.StatusSeeOther, route.Pattern), nil
}

// failed reports whether the submission left a domain slice in the error
// phase. Slices the submission did not touch keep their identity.
func failed(before, after *state.Tree) bool {
	if after.User != before.User && after.User.Phase == domain.PhaseError {
		return true
	}
	return after.Todo != before.Todo && after.Todo.Phase == domain.PhaseError
}

// session is the store of one request with its collaborators.
type session struct {
	pipeline *Pipeline
	store    *state.Store
	runtime  *effects.Runtime
	recorder *navigation.Recorder
}

func (p *Pipeline) begin(ctx context.Context) *session {
	rt := effects.NewRuntime(p.logger)
	rec := navigation.NewRecorder()

	mws := []redux.Middleware{storemw.Logging(ctx, p.logger)}
	if p.metrics != nil {
		mws = append(mws, storemw.Metrics(ctx, p.metrics))
	}
	mws = append(mws, rec.Middleware(), effects.Middleware(ctx, rt, p.routines))

	return &session{
		pipeline: p,
		store:    state.NewStore(state.Initial(p.config), mws...),
		runtime:  rt,
		recorder: rec,
	}
}

// load dispatches the locale and the route's data needs.
func (s *session) load(ctx context.Context, req Request, route routes.Route) error {
	if req.Locale != "" {
		if err := s.store.Dispatch(settings.SetLocale{Locale: req.Locale}); err != nil {
			return fmt.Errorf("ssr: setting locale: %w", err)
		}
	}

	if req.Token != "" && route.Has(routes.NeedSession) {
		if err := s.dispatch(ctx, auth.Session{Token: req.Token}); err != nil {
			return err
		}
	}

	token := s.store.GetState().User.Token()
	if token != "" && route.Has(routes.NeedTodos) {
		if err := s.dispatch(ctx, todos.Fetch{Token: token}); err != nil {
			return err
		}
	}
	return nil
}

// dispatch sends a and waits for every routine it started.
func (s *session) dispatch(ctx context.Context, a redux.Action) error {
	if err := s.store.Dispatch(a); err != nil {
		return fmt.Errorf("ssr: dispatching %s: %w", a.Type(), err)
	}
	if err := s.runtime.Settle(ctx, s.store.Dispatch); err != nil {
		return fmt.Errorf("ssr: settling %s: %w", a.Type(), err)
	}
	return nil
}

// redirect returns the redirect a loaded page answers with, or nil.
func (s *session) redirect(req Request, route routes.Route) *Result {
	if loc := s.recorder.Take(); loc != "" {
		return s.result(req, http.StatusSeeOther, loc)
	}
	if route.RequiresSession && s.store.GetState().User.User == nil {
		return s.result(req, http.StatusSeeOther, routes.PathLogin)
	}
	return nil
}

func (s *session) render(ctx context.Context, req Request, route routes.Route, status int) (*Result, error) {
	body, err := s.pipeline.renderer.Render(ctx, render.Page{
		State: s.store.GetState(),
		Route: route,
		URL:   req.URL,
	})
	if err != nil {
		return nil, fmt.Errorf("ssr: rendering %s: %w", route.Name, err)
	}

	res := s.result(req, status, "")
	res.Body = body
	return res, nil
}

func (s *session) result(req Request, status int, location string) *Result {
	token := s.store.GetState().User.Token()
	return &Result{
		Status:       status,
		Location:     location,
		Token:        token,
		TokenChanged: token != req.Token,
	}
}
