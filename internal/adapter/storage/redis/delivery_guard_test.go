package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGuard(t *testing.T) (*DeliveryGuard, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewDeliveryGuard(client), s
}

func TestDeliveryGuard_FirstDelivery(t *testing.T) {
	guard, _ := newTestGuard(t)
	ctx := context.Background()

	ok, err := guard.FirstDelivery(ctx, "mpesa:ws_CO_1:ok", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDeliveryGuard_Redelivery(t *testing.T) {
	guard, _ := newTestGuard(t)
	ctx := context.Background()

	ok, err := guard.FirstDelivery(ctx, "mpesa:ws_CO_1:ok", time.Hour)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = guard.FirstDelivery(ctx, "mpesa:ws_CO_1:ok", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok, "redelivered confirmation should be filtered")
}

func TestDeliveryGuard_OutcomesAreDistinct(t *testing.T) {
	guard, _ := newTestGuard(t)
	ctx := context.Background()

	ok1, err := guard.FirstDelivery(ctx, "mpesa:ws_CO_2:ok", time.Hour)
	require.NoError(t, err)
	ok2, err := guard.FirstDelivery(ctx, "mpesa:ws_CO_2:fail", time.Hour)
	require.NoError(t, err)

	assert.True(t, ok1)
	assert.True(t, ok2, "a conflicting outcome must still reach the processor")
}

func TestDeliveryGuard_Expiry(t *testing.T) {
	guard, s := newTestGuard(t)
	ctx := context.Background()

	ok, err := guard.FirstDelivery(ctx, "deferred:c1:ok", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	s.FastForward(2 * time.Second)

	ok, err = guard.FirstDelivery(ctx, "deferred:c1:ok", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDeliveryGuard_Forget(t *testing.T) {
	guard, s := newTestGuard(t)
	ctx := context.Background()

	_, err := guard.FirstDelivery(ctx, "mpesa:ws_CO_3:ok", time.Hour)
	require.NoError(t, err)
	assert.True(t, s.Exists("confirmation:mpesa:ws_CO_3:ok"))

	require.NoError(t, guard.Forget(ctx, "mpesa:ws_CO_3:ok"))
	assert.False(t, s.Exists("confirmation:mpesa:ws_CO_3:ok"))

	ok, err := guard.FirstDelivery(ctx, "mpesa:ws_CO_3:ok", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)
}
