package ports

import "context"

// HealthChecker checks one external dependency for GET /health.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Name() string
	// Critical reports whether payments and settlement stop without the
	// dependency. A failing non-critical dependency only degrades the service.
	Critical() bool
}
