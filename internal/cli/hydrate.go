package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-ssr-template/internal/app/fanout"
	"github.com/jsamuelsen11/go-ssr-template/internal/app/state"
	"github.com/jsamuelsen11/go-ssr-template/internal/client/bootstrap"
	"github.com/jsamuelsen11/go-ssr-template/internal/domain"
	"github.com/jsamuelsen11/go-ssr-template/internal/platform/config"
	"github.com/jsamuelsen11/go-ssr-template/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-ssr-template/internal/platform/logging"
)

// sessionCookie matches the cookie the server sets on login.
const sessionCookie = "token"

// HydrateOptions holds flags for the hydrate command.
type HydrateOptions struct {
	*RootOptions
	URLs    []string
	Token   string
	Timeout time.Duration
	Workers int
}

// Summary describes a hydrated store.
type Summary struct {
	Source     string       `json:"source"`
	User       string       `json:"user,omitempty"`
	UserPhase  domain.Phase `json:"userPhase"`
	Locale     string       `json:"locale"`
	Todos      int          `json:"todos"`
	Done       int          `json:"done"`
	TodoPhase  domain.Phase `json:"todoPhase"`
	Submitting []string     `json:"submitting"`
}

type source struct {
	name  string
	isURL bool
}

// NewHydrateCommand creates the hydrate command.
func NewHydrateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HydrateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "hydrate [file|-]...",
		Short: "Bootstrap stores from rendered pages and summarize them",
		Long: `Extract the embedded state from rendered pages, hydrate a store from
each one and print a summary. Pages are read from files, from stdin ("-")
or fetched with --url; several sources are processed concurrently.

Exit codes:
  0 - every page hydrated
  1 - at least one page had no state or a malformed state
  2 - command error (no sources, unreadable file)

Examples:
  ssrctl hydrate page.html
  curl -s localhost:8080/ | ssrctl hydrate -
  ssrctl hydrate --url http://localhost:8080/todos --token "$TOKEN" --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHydrate(cmd.Context(), opts, cmd, args)
		},
	}

	cmd.Flags().StringArrayVar(&opts.URLs, "url", nil, "fetch a rendered page (repeatable)")
	cmd.Flags().StringVar(&opts.Token, "token", "", "session token sent as the session cookie")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 10*time.Second, "per-request timeout for --url")
	cmd.Flags().IntVar(&opts.Workers, "workers", 4, "maximum concurrent sources")

	return cmd
}

func runHydrate(ctx context.Context, opts *HydrateOptions, cmd *cobra.Command, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	sources := make([]source, 0, len(args)+len(opts.URLs))
	for _, a := range args {
		sources = append(sources, source{name: a})
	}
	for _, u := range opts.URLs {
		sources = append(sources, source{name: u, isURL: true})
	}
	if len(sources) == 0 {
		return WrapExitError(ExitCommandError, "no pages given", errors.New("pass a file, - or --url"))
	}

	logLevel := "error"
	if opts.Verbose {
		logLevel = "debug"
	}
	logger := logging.New(logLevel, "text", cmd.ErrOrStderr())
	client := httpclient.New(&config.ClientConfig{
		Timeout: opts.Timeout,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 100 * time.Millisecond,
			MaxInterval:     time.Second,
			Multiplier:      2,
		},
		CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 5, Timeout: 30 * time.Second, HalfOpenLimit: 1},
	}, "ssrctl", nil, logger)

	stdin := cmd.InOrStdin()
	results := fanout.Run(ctx, opts.Workers, sources, func(ctx context.Context, s source) (Summary, error) {
		doc, err := open(ctx, client, stdin, opts.Token, s)
		if err != nil {
			return Summary{}, err
		}
		defer doc.Close()

		store, err := bootstrap.Bootstrap(doc)
		if err != nil {
			return Summary{}, err
		}
		logger.DebugContext(ctx, "hydrated", slog.String("source", s.name))
		return summarize(s.name, store.GetState()), nil
	})

	summaries := make([]Summary, 0, len(results))
	var failed, unreadable bool
	for i, r := range results {
		if r.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", sources[i].name, r.Err)
			var pathErr *os.PathError
			if errors.As(r.Err, &pathErr) {
				unreadable = true
			} else {
				failed = true
			}
			continue
		}
		summaries = append(summaries, r.Value)
	}

	if err := writeSummaries(cmd.OutOrStdout(), opts.Format, summaries); err != nil {
		return err
	}

	switch {
	case unreadable:
		return WrapExitError(ExitCommandError, "some pages could not be read", fanout.Errors(results))
	case failed:
		return WrapExitError(ExitFailure, "some pages could not be hydrated", fanout.Errors(results))
	}
	return nil
}

func open(ctx context.Context, client *httpclient.Client, stdin io.Reader, token string, s source) (io.ReadCloser, error) {
	switch {
	case s.isURL:
		return fetch(ctx, client, token, s.name)
	case s.name == "-":
		return io.NopCloser(stdin), nil
	default:
		return os.Open(s.name)
	}
}

func fetch(ctx context.Context, client *httpclient.Client, token, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/html")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})
	}

	resp, err := client.Do(ctx, req)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, err
	}
	// The not-found page still carries a state tree.
	if resp.StatusCode >= http.StatusBadRequest && resp.StatusCode != http.StatusNotFound {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return resp.Body, nil
}

func summarize(name string, t *state.Tree) Summary {
	s := Summary{
		Source:     name,
		UserPhase:  t.User.Phase,
		Locale:     t.Config.Locale,
		Todos:      t.Todo.Todos.Len(),
		TodoPhase:  t.Todo.Phase,
		Submitting: t.UI.Submitting,
	}
	if t.User.User != nil {
		s.User = t.User.User.Username
	}
	for _, td := range t.Todo.Todos.Slice() {
		if td.Done {
			s.Done++
		}
	}
	return s
}

func writeSummaries(w io.Writer, format string, summaries []Summary) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	}

	for i, s := range summaries {
		if i > 0 {
			fmt.Fprintln(w)
		}
		user := s.User
		if user == "" {
			user = "(signed out)"
		}
		fmt.Fprintf(w, "source:     %s\n", s.Source)
		fmt.Fprintf(w, "user:       %s [%s]\n", user, s.UserPhase)
		fmt.Fprintf(w, "locale:     %s\n", s.Locale)
		fmt.Fprintf(w, "todos:      %d (%d done) [%s]\n", s.Todos, s.Done, s.TodoPhase)
		if len(s.Submitting) > 0 {
			fmt.Fprintf(w, "submitting: %v\n", s.Submitting)
		}
	}
	return nil
}
