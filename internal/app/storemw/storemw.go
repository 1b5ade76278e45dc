// Package storemw holds store middleware for the ambient concerns of a
// request store: structured logging and dispatch metrics.
package storemw

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/go-ssr-template/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-ssr-template/internal/redux"
)

// Logging logs every action type at debug level and every failed dispatch
// at warn level. Payloads are never logged; they can carry credentials.
func Logging(ctx context.Context, logger *slog.Logger) redux.Middleware {
	return func(next redux.Dispatch) redux.Dispatch {
		return func(a redux.Action) error {
			if a == nil {
				return next(a)
			}

			logger.DebugContext(ctx, "dispatch", slog.String("action", a.Type()))

			if err := next(a); err != nil {
				logger.WarnContext(ctx, "dispatch failed",
					slog.String("action", a.Type()),
					slog.Any("error", err),
				)
				return err
			}
			return nil
		}
	}
}

// Metrics counts dispatched actions by type and outcome.
func Metrics(ctx context.Context, m *telemetry.Metrics) redux.Middleware {
	return func(next redux.Dispatch) redux.Dispatch {
		return func(a redux.Action) error {
			if a == nil {
				return next(a)
			}

			err := next(a)

			result := "ok"
			if err != nil {
				result = "error"
			}
			m.StoreDispatchTotal.Add(ctx, 1, metric.WithAttributes(
				telemetry.AttrActionType.String(a.Type()),
				telemetry.AttrResult.String(result),
			))
			return err
		}
	}
}
