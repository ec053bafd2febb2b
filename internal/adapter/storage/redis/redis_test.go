package redis

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"settlement-ledger/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configFor(t *testing.T, s *miniredis.Miniredis) config.RedisConfig {
	t.Helper()
	host, portStr, ok := strings.Cut(s.Addr(), ":")
	require.True(t, ok)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	return config.RedisConfig{Host: host, Port: port}
}

func TestNewClient_Connects(t *testing.T) {
	s := miniredis.RunT(t)

	client, err := NewClient(context.Background(), configFor(t, s), zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	hc := NewHealthCheck(client)
	assert.Equal(t, "redis", hc.Name())
	assert.False(t, hc.Critical())
	assert.NoError(t, hc.Ping(context.Background()))

	s.Close()
	assert.Error(t, hc.Ping(context.Background()))
}

func TestOptions(t *testing.T) {
	opts := options(config.RedisConfig{Host: "cache.internal", Port: 6380, DB: 2, PoolSize: 40})

	assert.Equal(t, "cache.internal:6380", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 40, opts.PoolSize)
	assert.Equal(t, clientName, opts.ClientName)
	assert.Equal(t, readTimeout, opts.ReadTimeout)
	assert.Equal(t, dialTimeout, opts.DialTimeout)
}

func TestNewClient_RetriesUntilContextDone(t *testing.T) {
	s := miniredis.RunT(t)
	cfg := configFor(t, s)
	cfg.ConnectRetry = time.Minute
	s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := NewClient(ctx, cfg, zerolog.Nop())
	require.Error(t, err)
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestNewClient_Unreachable(t *testing.T) {
	s := miniredis.RunT(t)
	cfg := configFor(t, s)
	s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewClient(ctx, cfg, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pinging redis after 1 attempts")
}
