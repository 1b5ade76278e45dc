package ports

import "context"

// HealthChecker is a dependency the readiness probe watches, such as the
// SQLite store or the todo API client.
type HealthChecker interface {
	// Name identifies the component in probe output ("database",
	// "reactizer-api").
	Name() string

	// HealthCheck returns nil when healthy. It must honor ctx.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers for the readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns one result per checker name; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
