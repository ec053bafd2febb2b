// Package deferred is a simulated payment provider. It accepts every request,
// then confirms it out of band after a delay, the way a real provider's
// callback would arrive.
package deferred

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"
	"settlement-ledger/pkg/apperror"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// maxDeliveries bounds redelivery of an outcome that was not applied.
const maxDeliveries = 6

// errNotApplied makes the backoff loop redeliver a confirmation whose
// correlation id was not stored yet.
var errNotApplied = errors.New("confirmation not applied")

// Outcome decides how a simulated payment ends.
type Outcome func(req ports.GatewayRequest) (success bool, resultDesc string)

// AlwaysSucceed confirms every payment.
func AlwaysSucceed(ports.GatewayRequest) (bool, string) { return true, "" }

// Gateway implements ports.PaymentGateway without a real provider.
type Gateway struct {
	name      string
	delay     time.Duration
	retryBase time.Duration
	outcome   Outcome
	processor ports.ConfirmationProcessor
	log       zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

var _ ports.PaymentGateway = (*Gateway)(nil)

// Option configures a Gateway.
type Option func(*Gateway)

// WithOutcome overrides how payments end. The default confirms every payment.
func WithOutcome(o Outcome) Option {
	return func(g *Gateway) { g.outcome = o }
}

// WithRetryInterval sets the first redelivery interval.
func WithRetryInterval(d time.Duration) Option {
	return func(g *Gateway) { g.retryBase = d }
}

// New creates a simulated gateway reporting itself as name. Confirmations are
// delivered to processor delay after Initiate returns.
func New(name string, delay time.Duration, processor ports.ConfirmationProcessor, log zerolog.Logger, opts ...Option) *Gateway {
	ctx, cancel := context.WithCancel(context.Background())
	g := &Gateway{
		name:      name,
		delay:     delay,
		retryBase: 500 * time.Millisecond,
		outcome:   AlwaysSucceed,
		processor: processor,
		log:       log.With().Str("provider", name).Logger(),
		ctx:       ctx,
		cancel:    cancel,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gateway) Name() string { return g.name }

// Initiate accepts the request and schedules its confirmation.
func (g *Gateway) Initiate(ctx context.Context, req ports.GatewayRequest) (*ports.GatewayResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	correlationID := "SIM-" + shortID()
	success, desc := g.outcome(req)
	signal := domain.ConfirmationSignal{
		Provider:      g.name,
		CorrelationID: correlationID,
		Success:       success,
		ResultDesc:    desc,
		PayerAccount:  req.PayerAccount,
	}
	if success {
		amount := req.Amount
		signal.Amount = &amount
		signal.Receipt = "TXN-" + shortID()
	} else {
		signal.ResultCode = 1
	}

	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return nil, errors.New("gateway is shut down")
	}
	g.wg.Add(1)
	g.mu.Unlock()
	go g.deliver(req.PaymentID, signal)

	return &ports.GatewayResult{
		CorrelationID: correlationID,
		Message:       "Payment accepted for processing",
	}, nil
}

// Close stops pending deliveries and waits for in-flight ones to return.
func (g *Gateway) Close() {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()
	g.cancel()
	g.wg.Wait()
}

func (g *Gateway) deliver(paymentID uuid.UUID, signal domain.ConfirmationSignal) {
	defer g.wg.Done()

	log := g.log.With().
		Str("payment_id", paymentID.String()).
		Str("correlation_id", signal.CorrelationID).
		Logger()

	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-g.ctx.Done():
			log.Warn().Msg("gateway stopped before confirmation was delivered")
			return
		}
	}

	bckoff := backoff.NewExponentialBackOff(backoff.WithInitialInterval(g.retryBase))
	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		outcome, err := g.processor.Apply(g.ctx, signal)
		if err != nil {
			log.Warn().Err(err).Int("attempt", attempt).Msg("confirmation delivery failed")
			if !apperror.Retryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		if outcome == ports.ApplyUnknown {
			log.Debug().Int("attempt", attempt).Msg("correlation id not stored yet, redelivering")
			return errNotApplied
		}
		log.Info().Int("attempt", attempt).Str("outcome", string(outcome)).Msg("confirmation delivered")
		return nil
	}, backoff.WithMaxRetries(backoff.WithContext(bckoff, g.ctx), maxDeliveries-1))
	if err != nil {
		log.Warn().Err(err).Int("attempts", attempt).Msg("confirmation delivery gave up")
	}
}

func shortID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:12])
}
