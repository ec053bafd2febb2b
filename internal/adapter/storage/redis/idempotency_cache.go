package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"settlement-ledger/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

const payoutReplayPrefix = "idempotency:payout:"

// IdempotencyCache keeps the response of an accepted payout request under
// "<user id>:<idempotency key>" so a retry is answered without opening a
// ledger transaction. The database unique index stays authoritative.
type IdempotencyCache struct {
	client goredis.UniversalClient
}

var _ ports.IdempotencyCache = (*IdempotencyCache)(nil)

func NewIdempotencyCache(client goredis.UniversalClient) *IdempotencyCache {
	return &IdempotencyCache{client: client}
}

// Get returns the stored response, or nil, nil on a miss.
func (c *IdempotencyCache) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	val, err := c.client.Get(ctx, payoutReplayPrefix+key).Bytes()
	switch {
	case errors.Is(err, goredis.Nil):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("redis idempotency get: %w", err)
	}
	return val, nil
}

// Set stores value for ttl unless a response is already stored for key; the
// first stored response wins.
func (c *IdempotencyCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.New("redis idempotency set: empty key")
	}
	err := c.client.SetArgs(ctx, payoutReplayPrefix+key, value, goredis.SetArgs{Mode: "NX", TTL: ttl}).Err()
	if err != nil && !errors.Is(err, goredis.Nil) {
		return fmt.Errorf("redis idempotency set: %w", err)
	}
	return nil
}
