package ports

import "context"

// HealthChecker checks the health of a backing dependency.
type HealthChecker interface {
	// Ping returns nil if the dependency is reachable.
	Ping(ctx context.Context) error
	// Name identifies the dependency in health reports, e.g. "postgresql".
	Name() string
}
