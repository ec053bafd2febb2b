package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"
	"settlement-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// expiryBatch bounds how many stale records one sweep touches per status.
const expiryBatch = 100

// PaymentSettings holds the timing knobs of the payment lifecycle.
type PaymentSettings struct {
	GatewayTimeout time.Duration
	ProcessingTTL  time.Duration // processing records older than this fail as expired
	PendingTTL     time.Duration // pending records older than this are cancelled
	Currency       string
}

// PaymentServiceImpl implements ports.PaymentService.
type PaymentServiceImpl struct {
	orders     ports.OrderRepository
	payments   ports.PaymentRepository
	escrow     ports.EscrowLedger
	wallet     ports.WalletLedger
	gateways   ports.GatewayResolver
	transactor ports.DBTransactor
	notifier   ports.Notifier
	metrics    ports.Metrics
	settings   PaymentSettings
	log        zerolog.Logger
}

var _ ports.PaymentService = (*PaymentServiceImpl)(nil)

// NewPaymentService creates a new PaymentServiceImpl.
func NewPaymentService(
	orders ports.OrderRepository,
	payments ports.PaymentRepository,
	escrow ports.EscrowLedger,
	wallet ports.WalletLedger,
	gateways ports.GatewayResolver,
	transactor ports.DBTransactor,
	notifier ports.Notifier,
	metrics ports.Metrics,
	settings PaymentSettings,
	log zerolog.Logger,
) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		orders:     orders,
		payments:   payments,
		escrow:     escrow,
		wallet:     wallet,
		gateways:   gateways,
		transactor: transactor,
		notifier:   notifier,
		metrics:    metrics,
		settings:   settings,
		log:        log,
	}
}

// Initiate opens a payment attempt for an order. Wallet payments settle before
// it returns; gateway payments are left processing until a confirmation arrives.
func (s *PaymentServiceImpl) Initiate(ctx context.Context, req ports.InitiateRequest) (*domain.Payment, error) {
	if !req.Method.Valid() {
		return nil, apperror.ErrUnsupportedMethod(string(req.Method))
	}
	account, err := domain.NormalizePayerAccount(req.Method, req.PayerAccount)
	if err != nil {
		return nil, apperror.ErrInvalidAccount(err.Error())
	}

	var gateway ports.PaymentGateway
	if req.Method.UsesGateway() {
		gateway, err = s.gateways.Resolve(req.Method)
		if err != nil {
			return nil, apperror.ErrUnsupportedMethod(string(req.Method))
		}
	}

	var payment *domain.Payment
	err = s.transactor.WithTx(ctx, func(tx pgx.Tx) error {
		var err error
		payment, err = s.openTx(ctx, tx, req, account)
		return err
	})
	if err != nil {
		return nil, asAppError("initiate payment", err)
	}

	s.metrics.PaymentTransition(payment.Method, domain.PaymentStatusPending)
	s.log.Info().
		Str("payment_id", payment.ID.String()).
		Str("order_id", payment.OrderID.String()).
		Str("method", string(payment.Method)).
		Str("amount", payment.Amount.StringFixed(domain.MinorUnitPlaces)).
		Msg("payment initiated")

	if payment.Status == domain.PaymentStatusCompleted {
		s.metrics.PaymentTransition(payment.Method, domain.PaymentStatusCompleted)
		s.metrics.WalletEntry(domain.EntryPayment, payment.Amount)
		s.notifyCompleted(ctx, payment)
		return payment, nil
	}

	payment, err = s.markProcessing(ctx, payment.ID)
	if err != nil {
		return nil, err
	}
	return s.dispatch(ctx, gateway, payment)
}

// openTx locks the order, opens its escrow and inserts the pending record. The
// wallet method settles in the same transaction.
func (s *PaymentServiceImpl) openTx(ctx context.Context, tx pgx.Tx, req ports.InitiateRequest, account string) (*domain.Payment, error) {
	order, err := s.orders.GetForUpdate(ctx, tx, req.OrderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("Order")
	}
	if !req.Actor.IsAdmin() && !req.Actor.Is(order.BuyerID) {
		return nil, apperror.ErrForbidden("Only the buyer can pay for this order")
	}
	if err := req.Method.ValidateAmount(order.TotalAmount); err != nil {
		return nil, apperror.ErrUnpayableAmount(err.Error())
	}

	escrow, err := s.escrow.EnsureTx(ctx, tx, order)
	if err != nil {
		return nil, err
	}

	blocking, err := s.payments.FindBlockingForUpdate(ctx, tx, order.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find active payment: %w", err))
	}
	if blocking != nil {
		return nil, apperror.ErrActivePaymentExists()
	}

	now := time.Now().UTC()
	payment := &domain.Payment{
		ID:           uuid.New(),
		PaymentRef:   domain.NewPaymentRef(),
		OrderID:      order.ID,
		PayerID:      order.BuyerID,
		Amount:       escrow.Amount,
		Method:       req.Method,
		Status:       domain.PaymentStatusPending,
		PayerAccount: account,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.payments.Create(ctx, tx, payment); err != nil {
		if errors.Is(err, ports.ErrDuplicate) {
			return nil, apperror.ErrActivePaymentExists()
		}
		return nil, apperror.InternalError(fmt.Errorf("create payment: %w", err))
	}

	if req.Method != domain.PaymentMethodWallet {
		return payment, nil
	}

	if _, err := s.wallet.DebitTx(ctx, tx, ports.EntryRequest{
		UserID:      payment.PayerID,
		Amount:      payment.Amount,
		Type:        domain.EntryPayment,
		Reference:   payment.PaymentRef,
		Description: fmt.Sprintf("Payment for order %s", order.ID),
	}); err != nil {
		return nil, err
	}
	if err := completeTx(ctx, tx, s.payments, s.orders, payment, nil, now); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *PaymentServiceImpl) markProcessing(ctx context.Context, paymentID uuid.UUID) (*domain.Payment, error) {
	var payment *domain.Payment
	err := s.transactor.WithTx(ctx, func(tx pgx.Tx) error {
		p, err := s.lockPayment(ctx, tx, paymentID)
		if err != nil {
			return err
		}
		if p.Status != domain.PaymentStatusPending {
			return apperror.ErrInvalidTransition(string(p.Status), string(domain.PaymentStatusProcessing))
		}
		p.Status = domain.PaymentStatusProcessing
		p.UpdatedAt = time.Now().UTC()
		if err := s.payments.Update(ctx, tx, p); err != nil {
			return apperror.InternalError(fmt.Errorf("update payment: %w", err))
		}
		payment = p
		return nil
	})
	if err != nil {
		return nil, asAppError("mark payment processing", err)
	}
	s.metrics.PaymentTransition(payment.Method, payment.Status)
	return payment, nil
}

// dispatch calls the gateway outside any transaction and records what it said.
func (s *PaymentServiceImpl) dispatch(ctx context.Context, gateway ports.PaymentGateway, payment *domain.Payment) (*domain.Payment, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.settings.GatewayTimeout)
	defer cancel()

	start := time.Now()
	result, err := gateway.Initiate(callCtx, ports.GatewayRequest{
		PaymentID:    payment.ID,
		PayerAccount: payment.PayerAccount,
		Amount:       payment.Amount,
		Reference:    payment.PaymentRef,
		Description:  fmt.Sprintf("Order %s", payment.OrderID),
	})
	elapsed := time.Since(start)

	logEvt := func(e *zerolog.Event) *zerolog.Event {
		return e.
			Str("payment_id", payment.ID.String()).
			Str("provider", gateway.Name()).
			Dur("elapsed", elapsed)
	}

	var rejection *ports.GatewayRejection
	switch {
	case errors.As(err, &rejection):
		s.metrics.GatewayCall(gateway.Name(), "rejected", elapsed)
		logEvt(s.log.Warn()).Str("code", rejection.Code).Str("reason", rejection.Reason).Msg("gateway rejected payment")
		if _, ferr := s.resolveTerminal(ctx, payment.ID, domain.PaymentStatusProcessing, domain.PaymentStatusFailed, rejection.Reason, time.Time{}); ferr != nil {
			return nil, ferr
		}
		return nil, apperror.ErrGatewayRejected(rejection.Reason)

	case err != nil:
		if errors.Is(err, context.DeadlineExceeded) {
			s.metrics.GatewayCall(gateway.Name(), "timeout", elapsed)
			logEvt(s.log.Warn()).Err(err).Msg("gateway timed out; payment left processing")
			return nil, apperror.ErrGatewayTimeout(err)
		}
		s.metrics.GatewayCall(gateway.Name(), "error", elapsed)
		logEvt(s.log.Error()).Err(err).Msg("gateway call failed; payment left processing")
		return nil, apperror.ErrGatewayUnavailable(err)
	}

	s.metrics.GatewayCall(gateway.Name(), "accepted", elapsed)
	logEvt(s.log.Info()).Str("correlation_id", result.CorrelationID).Msg("gateway accepted payment")

	var stored *domain.Payment
	err = s.transactor.WithTx(ctx, func(tx pgx.Tx) error {
		p, err := s.lockPayment(ctx, tx, payment.ID)
		if err != nil {
			return err
		}
		correlationID := result.CorrelationID
		p.CorrelationID = &correlationID
		p.UpdatedAt = time.Now().UTC()
		if err := s.payments.Update(ctx, tx, p); err != nil {
			if errors.Is(err, ports.ErrDuplicate) {
				return apperror.InternalError(fmt.Errorf("gateway reused correlation id %q: %w", correlationID, err))
			}
			return apperror.InternalError(fmt.Errorf("store correlation id: %w", err))
		}
		stored = p
		return nil
	})
	if err != nil {
		return nil, asAppError("store correlation id", err)
	}
	return stored, nil
}

// Cancel abandons a payment that has not been sent to a gateway yet.
func (s *PaymentServiceImpl) Cancel(ctx context.Context, paymentID uuid.UUID, actor domain.Actor) (*domain.Payment, error) {
	var payment *domain.Payment
	err := s.transactor.WithTx(ctx, func(tx pgx.Tx) error {
		p, err := s.lockPayment(ctx, tx, paymentID)
		if err != nil {
			return err
		}
		if !actor.IsAdmin() && !actor.Is(p.PayerID) {
			return apperror.ErrForbidden("Only the buyer or an administrator can cancel a payment")
		}
		if p.Status != domain.PaymentStatusPending {
			return apperror.ErrInvalidTransition(string(p.Status), string(domain.PaymentStatusCancelled))
		}
		p.Status = domain.PaymentStatusCancelled
		p.UpdatedAt = time.Now().UTC()
		if err := s.payments.Update(ctx, tx, p); err != nil {
			return apperror.InternalError(fmt.Errorf("update payment: %w", err))
		}
		payment = p
		return nil
	})
	if err != nil {
		return nil, asAppError("cancel payment", err)
	}

	s.metrics.PaymentTransition(payment.Method, payment.Status)
	s.log.Info().Str("payment_id", payment.ID.String()).Msg("payment cancelled")
	return payment, nil
}

// Get returns a payment to its payer or an administrator.
func (s *PaymentServiceImpl) Get(ctx context.Context, paymentID uuid.UUID, actor domain.Actor) (*domain.Payment, error) {
	payment, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get payment: %w", err))
	}
	if payment == nil {
		return nil, apperror.ErrNotFound("Payment")
	}
	if !actor.IsAdmin() && !actor.Is(payment.PayerID) {
		return nil, apperror.ErrForbidden("Payment belongs to another user")
	}
	return payment, nil
}

// ExpireStale fails processing payments that never got a confirmation and
// cancels pending ones that were never dispatched.
func (s *PaymentServiceImpl) ExpireStale(ctx context.Context, now time.Time) (*ports.ExpiryReport, error) {
	report := &ports.ExpiryReport{}

	sweeps := []struct {
		from    domain.PaymentStatus
		to      domain.PaymentStatus
		ttl     time.Duration
		reason  string
		counter *int
	}{
		{domain.PaymentStatusProcessing, domain.PaymentStatusFailed, s.settings.ProcessingTTL, "expired", &report.Failed},
		{domain.PaymentStatusPending, domain.PaymentStatusCancelled, s.settings.PendingTTL, "", &report.Cancelled},
	}

	for _, sweep := range sweeps {
		cutoff := now.Add(-sweep.ttl)
		ids, err := s.payments.ListStale(ctx, sweep.from, cutoff, expiryBatch)
		if err != nil {
			return report, apperror.InternalError(fmt.Errorf("list stale %s payments: %w", sweep.from, err))
		}
		for _, id := range ids {
			changed, err := s.resolveTerminal(ctx, id, sweep.from, sweep.to, sweep.reason, cutoff)
			if err != nil {
				s.log.Warn().Err(err).Str("payment_id", id.String()).Msg("failed to expire payment")
				continue
			}
			if changed {
				*sweep.counter++
			} else {
				report.Skipped++
			}
		}
		s.metrics.PaymentsExpired(sweep.to, *sweep.counter)
	}
	return report, nil
}

// resolveTerminal moves a payment from one status to a terminal one when it is
// still in from (and, with a non-zero cutoff, untouched since cutoff). It
// reports false when something else got there first.
func (s *PaymentServiceImpl) resolveTerminal(
	ctx context.Context,
	paymentID uuid.UUID,
	from, to domain.PaymentStatus,
	reason string,
	cutoff time.Time,
) (bool, error) {
	var payment *domain.Payment
	err := s.transactor.WithTx(ctx, func(tx pgx.Tx) error {
		payment = nil
		p, err := s.lockPayment(ctx, tx, paymentID)
		if err != nil {
			return err
		}
		if p.Status != from || (!cutoff.IsZero() && p.UpdatedAt.After(cutoff)) {
			return nil
		}
		p.Status = to
		if reason != "" {
			p.FailureReason = &reason
		}
		p.UpdatedAt = time.Now().UTC()
		if err := s.payments.Update(ctx, tx, p); err != nil {
			return apperror.InternalError(fmt.Errorf("update payment: %w", err))
		}
		payment = p
		return nil
	})
	if err != nil {
		return false, asAppError("resolve payment", err)
	}
	if payment == nil {
		return false, nil
	}

	s.metrics.PaymentTransition(payment.Method, payment.Status)
	s.log.Info().
		Str("payment_id", payment.ID.String()).
		Str("status", string(payment.Status)).
		Str("reason", reason).
		Msg("payment resolved")
	if payment.Status == domain.PaymentStatusFailed {
		s.notifier.Notify(ctx, newNotification(payment.PayerID, domain.NotificationPayment, payment.ID.String(),
			"Payment failed",
			fmt.Sprintf("Payment %s for order %s failed: %s", payment.PaymentRef, payment.OrderID, reason)))
	}
	return true, nil
}

func (s *PaymentServiceImpl) lockPayment(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Payment, error) {
	p, err := s.payments.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock payment: %w", err))
	}
	if p == nil {
		return nil, apperror.ErrNotFound("Payment")
	}
	return p, nil
}

func (s *PaymentServiceImpl) notifyCompleted(ctx context.Context, payment *domain.Payment) {
	s.notifier.Notify(ctx, newNotification(payment.PayerID, domain.NotificationPayment, payment.ID.String(),
		"Payment confirmed",
		fmt.Sprintf("Payment %s of %s for order %s is confirmed", payment.PaymentRef,
			formatMoney(s.settings.Currency, payment.Amount), payment.OrderID)))
}

// completeTx moves a locked payment to completed and marks its order paid.
func completeTx(
	ctx context.Context,
	tx pgx.Tx,
	payments ports.PaymentRepository,
	orders ports.OrderRepository,
	payment *domain.Payment,
	receipt *string,
	now time.Time,
) error {
	if !domain.CanTransition(payment.Status, domain.PaymentStatusCompleted) {
		return apperror.ErrInvalidTransition(string(payment.Status), string(domain.PaymentStatusCompleted))
	}
	payment.Status = domain.PaymentStatusCompleted
	payment.Receipt = receipt
	payment.CompletedAt = &now
	payment.UpdatedAt = now
	if err := payments.Update(ctx, tx, payment); err != nil {
		return apperror.InternalError(fmt.Errorf("complete payment: %w", err))
	}
	if err := orders.UpdateStatus(ctx, tx, payment.OrderID, domain.OrderStatusPaid); err != nil {
		return apperror.InternalError(fmt.Errorf("mark order paid: %w", err))
	}
	return nil
}
