package postgres

import (
	"context"
	"errors"
	"fmt"

	"settlement-ledger/internal/core/ports"
)

// HealthCheck reports the ledger database as healthy once it accepts
// connections and carries at least one applied migration.
type HealthCheck struct {
	pool Pool
}

var _ ports.HealthChecker = (*HealthCheck)(nil)

// NewHealthCheck creates a PostgreSQL health checker.
func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping checks connectivity and that cmd/migrate has run.
func (h *HealthCheck) Ping(ctx context.Context) error {
	if err := h.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	var applied int
	if err := h.pool.QueryRow(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&applied); err != nil {
		return fmt.Errorf("read schema_migrations: %w", err)
	}
	if applied == 0 {
		return errors.New("schema not migrated")
	}
	return nil
}

func (h *HealthCheck) Name() string { return "postgresql" }

// Critical is true: every ledger write goes through PostgreSQL.
func (h *HealthCheck) Critical() bool { return true }
