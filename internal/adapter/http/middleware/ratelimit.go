package middleware

import (
	"math"
	"strconv"
	"time"

	"settlement-ledger/internal/core/ports"
	"settlement-ledger/pkg/apperror"
	"settlement-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule is the request budget of one endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the per-group limits applied by the router.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"payments":  {Limit: 30, Window: time.Minute},
		"payouts":   {Limit: 10, Window: time.Minute},
		"settle":    {Limit: 30, Window: time.Minute},
		"reads":     {Limit: 120, Window: time.Minute},
		"admin":     {Limit: 60, Window: time.Minute},
		"callbacks": {Limit: 600, Window: time.Minute},
	}
}

// RateLimiter limits each caller to rule within group. Callers are keyed by
// user id once authenticated, otherwise by client IP. When the limiter
// errors, requests are let through.
func RateLimiter(limiter ports.RateLimiter, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := callerKey(c) + ":" + group

		decision, err := limiter.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limiter unavailable, request allowed")
			c.Next()
			return
		}

		h := c.Writer.Header()
		h.Set("X-RateLimit-Limit", strconv.FormatInt(decision.Limit, 10))
		h.Set("X-RateLimit-Remaining", strconv.FormatInt(decision.Remaining, 10))
		h.Set("X-RateLimit-Reset", strconv.FormatInt(decision.ResetAt.Unix(), 10))

		if !decision.Allowed {
			wait := int64(math.Ceil(time.Until(decision.ResetAt).Seconds()))
			h.Set("Retry-After", strconv.FormatInt(max(wait, 1), 10))
			log.Debug().Str("group", group).Str("key", key).Msg("rate limit exceeded")
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}
		c.Next()
	}
}

func callerKey(c *gin.Context) string {
	if actor, ok := ActorFrom(c); ok {
		return "user:" + actor.UserID.String()
	}
	return "ip:" + c.ClientIP()
}
