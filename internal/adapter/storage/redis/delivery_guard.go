package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DeliveryGuard implements ports.DeliveryGuard with Redis SET NX. It only
// filters exact redeliveries of a confirmation; the payment row lock is still
// what guarantees a confirmation is applied once.
type DeliveryGuard struct {
	client goredis.UniversalClient
	prefix string
}

// NewDeliveryGuard creates a Redis-backed delivery guard.
func NewDeliveryGuard(client goredis.UniversalClient) *DeliveryGuard {
	return &DeliveryGuard{
		client: client,
		prefix: "confirmation:",
	}
}

// FirstDelivery marks key as seen. It returns true when this is the first
// delivery inside ttl, false when the key was already marked.
func (g *DeliveryGuard) FirstDelivery(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	result, err := g.client.SetArgs(ctx, g.prefix+key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis delivery check: %w", err)
	}
	return result == "OK", nil
}

// Forget clears key so a delivery whose processing failed can be retried.
func (g *DeliveryGuard) Forget(ctx context.Context, key string) error {
	if err := g.client.Del(ctx, g.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis delivery forget: %w", err)
	}
	return nil
}
