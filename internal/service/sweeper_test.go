package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"settlement-ledger/internal/core/ports"
	"settlement-ledger/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSweeper_SweepOncePassesClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	payments := mocks.NewMockPaymentService(ctrl)

	fixed := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	payments.EXPECT().ExpireStale(gomock.Any(), fixed).Return(&ports.ExpiryReport{Failed: 2, Cancelled: 1}, nil)

	s := NewSweeper(payments, time.Minute, newTestLogger())
	s.now = func() time.Time { return fixed }

	report := s.SweepOnce(context.Background())
	require.NotNil(t, report)
	assert.Equal(t, 2, report.Failed)
	assert.Equal(t, 1, report.Cancelled)
}

func TestSweeper_SweepOnceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	payments := mocks.NewMockPaymentService(ctrl)
	payments.EXPECT().ExpireStale(gomock.Any(), gomock.Any()).Return(nil, errors.New("pool closed"))

	s := NewSweeper(payments, time.Minute, newTestLogger())
	assert.Nil(t, s.SweepOnce(context.Background()))
}

func TestSweeper_RunTicksUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	payments := mocks.NewMockPaymentService(ctrl)

	var sweeps atomic.Int32
	payments.EXPECT().ExpireStale(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) (*ports.ExpiryReport, error) {
			sweeps.Add(1)
			return &ports.ExpiryReport{}, nil
		}).MinTimes(2)

	s := NewSweeper(payments, 5*time.Millisecond, newTestLogger())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Run(ctx)
	}()

	require.Eventually(t, func() bool { return sweeps.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestSweeper_ExpiresStalePaymentsEndToEnd(t *testing.T) {
	h := newHarness(t)
	order := h.seedOrder("700")
	h.gateway.initiate = func(context.Context, ports.GatewayRequest) (*ports.GatewayResult, error) {
		return &ports.GatewayResult{CorrelationID: "ws_CO_stale"}, nil
	}

	payment, err := h.payments.Initiate(context.Background(), ports.InitiateRequest{
		OrderID:      order.ID,
		Method:       "mpesa",
		PayerAccount: "0712345678",
		Actor:        buyer(order),
	})
	require.NoError(t, err)

	s := NewSweeper(h.payments, time.Minute, newTestLogger())
	s.now = func() time.Time { return time.Now().Add(16 * time.Minute) }

	report := s.SweepOnce(context.Background())
	require.NotNil(t, report)
	assert.Equal(t, 1, report.Failed)

	got, err := h.store.Payments().GetByID(context.Background(), payment.ID)
	require.NoError(t, err)
	assert.Equal(t, "failed", string(got.Status))
}
