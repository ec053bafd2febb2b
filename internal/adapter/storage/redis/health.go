package redis

import (
	"context"
	"fmt"

	"settlement-ledger/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// HealthCheck reports Redis health.
type HealthCheck struct {
	client goredis.UniversalClient
}

var _ ports.HealthChecker = (*HealthCheck)(nil)

func NewHealthCheck(client goredis.UniversalClient) *HealthCheck {
	return &HealthCheck{client: client}
}

// Ping round-trips a PING.
func (h *HealthCheck) Ping(ctx context.Context) error {
	if err := h.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

func (h *HealthCheck) Name() string { return "redis" }

// Critical is false: rate limits fail open, and idempotency and delivery
// checks fall back to the database.
func (h *HealthCheck) Critical() bool { return false }
