package redis

import (
	"context"
	"fmt"
	"time"

	"settlement-ledger/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// slidingWindow estimates the rolling count as the current window's counter
// plus the previous window's counter weighted by how much of it is still in
// view. Only admitted requests are counted.
//
// KEYS[1] current window, KEYS[2] previous window
// ARGV[1] limit, ARGV[2] previous-window weight in thousandths, ARGV[3] ttl ms
var slidingWindow = goredis.NewScript(`
local cur = tonumber(redis.call('GET', KEYS[1]) or '0')
local prev = tonumber(redis.call('GET', KEYS[2]) or '0')
local limit = tonumber(ARGV[1])
local used = math.floor(prev * tonumber(ARGV[2]) / 1000) + cur
if used >= limit then
  return {0, used}
end
redis.call('INCR', KEYS[1])
redis.call('PEXPIRE', KEYS[1], ARGV[3])
return {1, used + 1}
`)

// RateLimitStore implements ports.RateLimiter with a sliding window counter.
type RateLimitStore struct {
	client goredis.UniversalClient
	now    func() time.Time
}

var _ ports.RateLimiter = (*RateLimitStore)(nil)

func NewRateLimitStore(client goredis.UniversalClient) *RateLimitStore {
	return &RateLimitStore{client: client, now: time.Now}
}

// Allow admits one request for key if fewer than limit were admitted in the
// last window.
func (s *RateLimitStore) Allow(ctx context.Context, key string, limit int64, window time.Duration) (ports.RateLimitDecision, error) {
	windowMs := window.Milliseconds()
	if windowMs < 1000 {
		windowMs = 1000
	}
	nowMs := s.now().UnixMilli()
	windowID := nowMs / windowMs
	weight := 1000 - (nowMs%windowMs)*1000/windowMs

	// The hash tag keeps both windows of a key in one cluster slot.
	keys := []string{
		fmt.Sprintf("ratelimit:{%s}:%d", key, windowID),
		fmt.Sprintf("ratelimit:{%s}:%d", key, windowID-1),
	}
	res, err := slidingWindow.Run(ctx, s.client, keys, limit, weight, 2*windowMs).Int64Slice()
	if err != nil {
		return ports.RateLimitDecision{}, fmt.Errorf("redis rate limit: %w", err)
	}
	if len(res) != 2 {
		return ports.RateLimitDecision{}, fmt.Errorf("redis rate limit: unexpected reply %v", res)
	}

	return ports.RateLimitDecision{
		Allowed:   res[0] == 1,
		Limit:     limit,
		Remaining: max(limit-res[1], 0),
		ResetAt:   time.UnixMilli((windowID + 1) * windowMs),
	}, nil
}
