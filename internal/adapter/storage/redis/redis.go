package redis

import (
	"context"
	"fmt"
	"time"

	"settlement-ledger/config"

	"github.com/cenkalti/backoff/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	clientName   = "settlement-ledger"
	dialTimeout  = 5 * time.Second
	readTimeout  = 2 * time.Second
	writeTimeout = 2 * time.Second
)

// options maps cfg onto go-redis options. Reads and writes are kept short:
// every caller in this service treats Redis as a fast path with a database
// fallback.
func options(cfg config.RedisConfig) *goredis.Options {
	return &goredis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		ClientName:   clientName,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  dialTimeout,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
}

// NewClient connects to Redis, retrying the first ping for up to
// cfg.ConnectRetry.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(options(cfg))

	var retry backoff.BackOff = &backoff.StopBackOff{}
	if cfg.ConnectRetry > 0 {
		retry = backoff.NewExponentialBackOff(
			backoff.WithInitialInterval(200*time.Millisecond),
			backoff.WithMaxElapsedTime(cfg.ConnectRetry),
		)
	}
	attempts := 0
	err := backoff.RetryNotify(func() error {
		attempts++
		return client.Ping(ctx).Err()
	}, backoff.WithContext(retry, ctx), func(err error, wait time.Duration) {
		log.Warn().Err(err).Dur("retry_in", wait).Msg("redis not ready")
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis after %d attempts: %w", attempts, err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Int("attempts", attempts).
		Msg("redis ready")

	return client, nil
}
