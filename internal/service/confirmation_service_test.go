package service

import (
	"context"
	"sync"
	"testing"
	"time"

	redisstore "settlement-ledger/internal/adapter/storage/redis"
	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"
	"settlement-ledger/pkg/apperror"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// processingPayment starts an mpesa payment and returns it with its correlation id.
func processingPayment(t *testing.T, h *harness, total string) (domain.Order, *domain.Payment) {
	t.Helper()
	order := h.seedOrder(total)
	payment, err := h.payments.Initiate(context.Background(), ports.InitiateRequest{
		OrderID:      order.ID,
		Method:       domain.PaymentMethodMpesa,
		PayerAccount: "0712345678",
		Actor:        buyer(order),
	})
	require.NoError(t, err)
	require.NotNil(t, payment.CorrelationID)
	return order, payment
}

func newRedisGuard(t *testing.T) (*redisstore.DeliveryGuard, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr(), MaxRetries: -1})
	t.Cleanup(func() { client.Close() })
	return redisstore.NewDeliveryGuard(client), s
}

func TestConfirmationService_Success(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	order, payment := processingPayment(t, h, "1000")
	amount := dec("1000.00")

	outcome, err := h.confirmations.Apply(ctx, domain.ConfirmationSignal{
		Provider:      "mpesa",
		CorrelationID: *payment.CorrelationID,
		Success:       true,
		Receipt:       "QKX12ABC9",
		Amount:        &amount,
		PayerAccount:  "254712345678",
	})
	require.NoError(t, err)
	assert.Equal(t, ports.ApplyCompleted, outcome)

	stored := h.payment(t, payment.ID)
	assert.Equal(t, domain.PaymentStatusCompleted, stored.Status)
	require.NotNil(t, stored.Receipt)
	assert.Equal(t, "QKX12ABC9", *stored.Receipt)
	assert.NotNil(t, stored.CompletedAt)

	o, _ := h.store.Order(order.ID)
	assert.Equal(t, domain.OrderStatusPaid, o.Status)

	notes := h.notifier.For(order.BuyerID)
	require.Len(t, notes, 1)
	assert.Equal(t, "Payment confirmed", notes[0].Title)
	assert.Equal(t, float64(1), counterValue(t, h.registry, "settlement_confirmations_total",
		map[string]string{"provider": "mpesa", "outcome": "completed"}))

	// The order can now be released.
	_, err = h.escrow.Release(ctx, order.ID, buyer(order))
	require.NoError(t, err)
	assert.True(t, h.balance(t, order.PayeeID).Equal(dec("950")))
}

func TestConfirmationService_Failure(t *testing.T) {
	tests := []struct {
		name   string
		desc   string
		code   int
		reason string
	}{
		{"with description", "Request cancelled by user", 1032, "Request cancelled by user"},
		{"without description", "", 1037, "gateway result 1037"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			order, payment := processingPayment(t, h, "100")

			outcome, err := h.confirmations.Apply(context.Background(), domain.ConfirmationSignal{
				Provider:      "mpesa",
				CorrelationID: *payment.CorrelationID,
				ResultCode:    tt.code,
				ResultDesc:    tt.desc,
			})
			require.NoError(t, err)
			assert.Equal(t, ports.ApplyFailed, outcome)

			stored := h.payment(t, payment.ID)
			assert.Equal(t, domain.PaymentStatusFailed, stored.Status)
			require.NotNil(t, stored.FailureReason)
			assert.Equal(t, tt.reason, *stored.FailureReason)
			assert.Nil(t, stored.CompletedAt)

			o, _ := h.store.Order(order.ID)
			assert.Equal(t, domain.OrderStatusConfirmed, o.Status, "failure leaves the order alone")
		})
	}
}

func TestConfirmationService_AmountMismatchFails(t *testing.T) {
	h := newHarness(t)
	_, payment := processingPayment(t, h, "1000")
	short := dec("10")

	outcome, err := h.confirmations.Apply(context.Background(), domain.ConfirmationSignal{
		Provider:      "mpesa",
		CorrelationID: *payment.CorrelationID,
		Success:       true,
		Receipt:       "QKX12ABC9",
		Amount:        &short,
	})
	require.NoError(t, err)
	assert.Equal(t, ports.ApplyFailed, outcome)

	stored := h.payment(t, payment.ID)
	assert.Equal(t, domain.PaymentStatusFailed, stored.Status)
	assert.Equal(t, "amount mismatch", *stored.FailureReason)
}

func TestConfirmationService_UnknownCorrelation(t *testing.T) {
	h := newHarness(t)

	outcome, err := h.confirmations.Apply(context.Background(), domain.ConfirmationSignal{
		Provider:      "mpesa",
		CorrelationID: "ws_CO_unknown",
		Success:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, ports.ApplyUnknown, outcome)
	assert.Equal(t, float64(1), counterValue(t, h.registry, "settlement_confirmations_total",
		map[string]string{"provider": "mpesa", "outcome": "unknown"}))
}

func TestConfirmationService_EmptyCorrelationRejected(t *testing.T) {
	h := newHarness(t)

	_, err := h.confirmations.Apply(context.Background(), domain.ConfirmationSignal{Provider: "mpesa", Success: true})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestConfirmationService_DuplicateIsIdempotent(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	order, payment := processingPayment(t, h, "100")
	signal := domain.ConfirmationSignal{
		Provider:      "mpesa",
		CorrelationID: *payment.CorrelationID,
		Success:       true,
		Receipt:       "FIRST",
	}

	outcome, err := h.confirmations.Apply(ctx, signal)
	require.NoError(t, err)
	require.Equal(t, ports.ApplyCompleted, outcome)

	signal.Receipt = "SECOND"
	outcome, err = h.confirmations.Apply(ctx, signal)
	require.NoError(t, err)
	assert.Equal(t, ports.ApplyIgnored, outcome)

	// A contradicting late failure is dropped too.
	signal.Success = false
	outcome, err = h.confirmations.Apply(ctx, signal)
	require.NoError(t, err)
	assert.Equal(t, ports.ApplyIgnored, outcome)

	stored := h.payment(t, payment.ID)
	assert.Equal(t, domain.PaymentStatusCompleted, stored.Status)
	assert.Equal(t, "FIRST", *stored.Receipt)
	assert.Len(t, h.notifier.For(order.BuyerID), 1)
}

func TestConfirmationService_ConcurrentDuplicatesApplyOnce(t *testing.T) {
	h := newHarness(t)
	order, payment := processingPayment(t, h, "100")
	signal := domain.ConfirmationSignal{
		Provider:      "mpesa",
		CorrelationID: *payment.CorrelationID,
		Success:       true,
		Receipt:       "QKX",
	}

	const deliveries = 10
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		outcomes = map[ports.ApplyOutcome]int{}
	)
	for i := 0; i < deliveries; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcome, err := h.confirmations.Apply(context.Background(), signal)
			assert.NoError(t, err)
			mu.Lock()
			outcomes[outcome]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, outcomes[ports.ApplyCompleted])
	assert.Equal(t, deliveries-1, outcomes[ports.ApplyIgnored])
	assert.Len(t, h.notifier.For(order.BuyerID), 1)
}

func TestConfirmationService_DeliveryGuardDropsRedelivery(t *testing.T) {
	guard, mr := newRedisGuard(t)
	h := newHarness(t, withDeliveryGuard(guard))
	ctx := context.Background()
	_, payment := processingPayment(t, h, "100")
	signal := domain.ConfirmationSignal{
		Provider:      "mpesa",
		CorrelationID: *payment.CorrelationID,
		Success:       true,
	}

	outcome, err := h.confirmations.Apply(ctx, signal)
	require.NoError(t, err)
	require.Equal(t, ports.ApplyCompleted, outcome)
	assert.True(t, mr.Exists("confirmation:"+signal.DeliveryKey()))

	outcome, err = h.confirmations.Apply(ctx, signal)
	require.NoError(t, err)
	assert.Equal(t, ports.ApplyIgnored, outcome)
}

func TestConfirmationService_UnknownDeliveryCanBeRetried(t *testing.T) {
	guard, mr := newRedisGuard(t)
	h := newHarness(t, withDeliveryGuard(guard))
	ctx := context.Background()

	order := h.seedOrder("100")
	h.gateway.initiate = func(context.Context, ports.GatewayRequest) (*ports.GatewayResult, error) {
		return &ports.GatewayResult{CorrelationID: "ws_CO_early"}, nil
	}
	signal := domain.ConfirmationSignal{Provider: "mpesa", CorrelationID: "ws_CO_early", Success: true}

	// Arrives before the correlation id is stored.
	outcome, err := h.confirmations.Apply(ctx, signal)
	require.NoError(t, err)
	assert.Equal(t, ports.ApplyUnknown, outcome)
	assert.False(t, mr.Exists("confirmation:"+signal.DeliveryKey()), "unprocessed delivery must not be remembered")

	_, err = h.payments.Initiate(ctx, ports.InitiateRequest{
		OrderID:      order.ID,
		Method:       domain.PaymentMethodMpesa,
		PayerAccount: "0712345678",
		Actor:        buyer(order),
	})
	require.NoError(t, err)

	outcome, err = h.confirmations.Apply(ctx, signal)
	require.NoError(t, err)
	assert.Equal(t, ports.ApplyCompleted, outcome)
}

func TestConfirmationService_GuardOutageFallsThrough(t *testing.T) {
	guard, mr := newRedisGuard(t)
	h := newHarness(t, withDeliveryGuard(guard))
	_, payment := processingPayment(t, h, "100")
	mr.Close()

	outcome, err := h.confirmations.Apply(context.Background(), domain.ConfirmationSignal{
		Provider:      "mpesa",
		CorrelationID: *payment.CorrelationID,
		Success:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, ports.ApplyCompleted, outcome)
}

func TestConfirmationService_RacesExpiry(t *testing.T) {
	for i := 0; i < 20; i++ {
		h := newHarness(t)
		ctx := context.Background()
		order, payment := processingPayment(t, h, "300")
		signal := domain.ConfirmationSignal{
			Provider:      "mpesa",
			CorrelationID: *payment.CorrelationID,
			Success:       true,
			Receipt:       "QKX-RACE",
		}

		var (
			wg        sync.WaitGroup
			start     = make(chan struct{})
			outcome   ports.ApplyOutcome
			applyErr  error
			report    *ports.ExpiryReport
			expireErr error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			<-start
			outcome, applyErr = h.confirmations.Apply(ctx, signal)
		}()
		go func() {
			defer wg.Done()
			<-start
			report, expireErr = h.payments.ExpireStale(ctx, time.Now().Add(time.Hour))
		}()
		close(start)
		wg.Wait()

		require.NoError(t, applyErr)
		require.NoError(t, expireErr)

		stored := h.payment(t, payment.ID)
		o, _ := h.store.Order(order.ID)
		switch stored.Status {
		case domain.PaymentStatusCompleted:
			assert.Equal(t, ports.ApplyCompleted, outcome)
			assert.Zero(t, report.Failed)
			assert.Equal(t, domain.OrderStatusPaid, o.Status)
		case domain.PaymentStatusFailed:
			assert.Equal(t, ports.ApplyIgnored, outcome)
			assert.Equal(t, 1, report.Failed)
			require.NotNil(t, stored.FailureReason)
			assert.Equal(t, "expired", *stored.FailureReason)
			assert.Nil(t, stored.Receipt)
			assert.NotEqual(t, domain.OrderStatusPaid, o.Status)
		default:
			t.Fatalf("unexpected status %s", stored.Status)
		}
		assert.Len(t, h.notifier.For(order.BuyerID), 1, "only the winning transition notifies")
	}
}
