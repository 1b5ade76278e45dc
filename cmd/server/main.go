// Package main is the entry point for the server. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
//
// With api.mode=local the server owns the sqlite database and serves both
// the pages and the JSON API. With api.mode=remote pages are rendered
// against another instance's JSON API through the instrumented client.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/go-ssr-template/internal/adapters/http"
	"github.com/jsamuelsen11/go-ssr-template/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-ssr-template/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/go-ssr-template/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/go-ssr-template/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/go-ssr-template/internal/app"
	"github.com/jsamuelsen11/go-ssr-template/internal/app/effects"
	"github.com/jsamuelsen11/go-ssr-template/internal/app/ssr"
	"github.com/jsamuelsen11/go-ssr-template/internal/ducks/settings"
	"github.com/jsamuelsen11/go-ssr-template/internal/platform/config"
	"github.com/jsamuelsen11/go-ssr-template/internal/platform/health"
	"github.com/jsamuelsen11/go-ssr-template/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-ssr-template/internal/platform/i18n"
	"github.com/jsamuelsen11/go-ssr-template/internal/platform/logging"
	"github.com/jsamuelsen11/go-ssr-template/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-ssr-template/internal/ports"
	"github.com/jsamuelsen11/go-ssr-template/internal/render"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	if cfg.API.Mode == config.APIModeRemote {
		registry.Register(do.MustInvoke[*httpclient.Client](injector))
	} else {
		store := do.MustInvoke[*sqlite.Store](injector)
		registry.Register(store)
		defer func() {
			if err := store.Close(); err != nil {
				logger.Error("closing database", slog.Any("error", err))
			}
		}()
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	registerBackend(ctx, injector, cfg, logger)

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(_ do.Injector) (*i18n.Bundle, error) {
		return i18n.New(cfg.App.Locales, cfg.App.DefaultLocale)
	})

	do.Provide(injector, func(i do.Injector) (*render.Renderer, error) {
		assets, err := loadAssets(cfg)
		if err != nil {
			return nil, err
		}
		return render.New(render.Options{
			Production:   cfg.App.Production,
			TemplatesDir: cfg.Assets.TemplatesDir,
			Assets:       assets,
			Bundle:       do.MustInvoke[*i18n.Bundle](i),
			Metrics:      do.MustInvoke[*telemetry.Metrics](i),
			Logger:       logger,
		})
	})

	do.Provide(injector, func(i do.Injector) (*ssr.Pipeline, error) {
		processes := effects.NewProcesses(
			do.MustInvoke[ports.AuthAPI](i),
			do.MustInvoke[ports.TodoAPI](i),
			logger,
		)
		return ssr.New(ssr.Options{
			Renderer:  do.MustInvoke[*render.Renderer](i),
			Processes: processes,
			Config:    settings.New(cfg.App.Name, cfg.App.DefaultLocale, cfg.App.Locales, cfg.App.GoogleAnalyticsID),
			Metrics:   do.MustInvoke[*telemetry.Metrics](i),
			Logger:    logger,
			Timeout:   cfg.App.RenderTimeout,
		})
	})

	do.Provide(injector, func(i do.Injector) (*handlers.AuthHandler, error) {
		return handlers.NewAuthHandler(do.MustInvoke[ports.AuthAPI](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TodoHandler, error) {
		return handlers.NewTodoHandler(do.MustInvoke[ports.TodoAPI](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.PageHandler, error) {
		pipeline := do.MustInvoke[*ssr.Pipeline](i)
		return handlers.NewPageHandler(pipeline, cfg.App.Production, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		bundle := do.MustInvoke[*i18n.Bundle](i)

		h := adapthttp.Handlers{
			Auth:       do.MustInvoke[*handlers.AuthHandler](i),
			Todos:      do.MustInvoke[*handlers.TodoHandler](i),
			Pages:      do.MustInvoke[*handlers.PageHandler](i),
			Health:     do.MustInvoke[*handlers.HealthHandler](i),
			StaticPath: cfg.Assets.PublicPath,
		}
		if cfg.Assets.PublicDir != "" {
			h.Static = nethttp.FileServer(nethttp.Dir(cfg.Assets.PublicDir))
		}

		return adapthttp.NewRouter(h,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.AppContext(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Locale(bundle, cfg.App.Production),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// registerBackend provides ports.AuthAPI and ports.TodoAPI: services over
// the sqlite database in local mode, the JSON API client in remote mode.
func registerBackend(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	if cfg.API.Mode == config.APIModeRemote {
		do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
			metrics := do.MustInvoke[*telemetry.Metrics](i)
			return httpclient.New(&cfg.Client, "reactizer-api", metrics, logger), nil
		})

		do.Provide(injector, func(i do.Injector) (*acl.APIClient, error) {
			return acl.NewAPIClient(do.MustInvoke[*httpclient.Client](i), logger), nil
		})

		do.Provide(injector, func(i do.Injector) (ports.AuthAPI, error) {
			return do.MustInvoke[*acl.APIClient](i), nil
		})

		do.Provide(injector, func(i do.Injector) (ports.TodoAPI, error) {
			return do.MustInvoke[*acl.APIClient](i), nil
		})
		return
	}

	do.Provide(injector, func(_ do.Injector) (*sqlite.Store, error) {
		store, err := sqlite.Open(ctx, cfg.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		return store, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AuthAPI, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		return app.NewAuthService(store.Users(), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoAPI, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		return app.NewTodoService(do.MustInvoke[ports.AuthAPI](i), store.Todos(), logger), nil
	})
}

// loadAssets reads the bundler manifest. Outside production a missing
// manifest falls back to the development bundle.
func loadAssets(cfg *config.Config) (render.Assets, error) {
	if cfg.Assets.Manifest == "" && !cfg.App.Production {
		return render.DevAssets(cfg.Assets.PublicPath), nil
	}
	assets, err := render.LoadManifest(cfg.Assets.Manifest)
	if err != nil {
		return render.Assets{}, fmt.Errorf("loading asset manifest: %w", err)
	}
	return assets, nil
}
