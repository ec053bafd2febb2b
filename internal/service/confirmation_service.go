package service

import (
	"context"
	"fmt"
	"time"

	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"
	"settlement-ledger/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// deliveryTTL is how long a delivery key is remembered for duplicate detection.
const deliveryTTL = 24 * time.Hour

// ConfirmationService implements ports.ConfirmationProcessor.
type ConfirmationService struct {
	orders     ports.OrderRepository
	payments   ports.PaymentRepository
	guard      ports.DeliveryGuard
	transactor ports.DBTransactor
	notifier   ports.Notifier
	metrics    ports.Metrics
	currency   string
	log        zerolog.Logger
}

var _ ports.ConfirmationProcessor = (*ConfirmationService)(nil)

// NewConfirmationService creates a new ConfirmationService. guard may be nil,
// in which case every delivery reaches the database check.
func NewConfirmationService(
	orders ports.OrderRepository,
	payments ports.PaymentRepository,
	guard ports.DeliveryGuard,
	transactor ports.DBTransactor,
	notifier ports.Notifier,
	metrics ports.Metrics,
	currency string,
	log zerolog.Logger,
) *ConfirmationService {
	return &ConfirmationService{
		orders:     orders,
		payments:   payments,
		guard:      guard,
		transactor: transactor,
		notifier:   notifier,
		metrics:    metrics,
		currency:   currency,
		log:        log,
	}
}

// Apply matches a gateway outcome to its payment by correlation id and moves
// the payment to completed or failed. Duplicates and payments already in a
// terminal state are dropped with ApplyIgnored, ids not stored yet answer
// ApplyUnknown; both with a nil error.
func (s *ConfirmationService) Apply(ctx context.Context, signal domain.ConfirmationSignal) (ports.ApplyOutcome, error) {
	if signal.CorrelationID == "" {
		return "", apperror.Validation("correlation id is required")
	}
	log := s.log.With().
		Str("provider", signal.Provider).
		Str("correlation_id", signal.CorrelationID).
		Bool("success", signal.Success).
		Logger()

	key := signal.DeliveryKey()
	if s.guard != nil {
		first, err := s.guard.FirstDelivery(ctx, key, deliveryTTL)
		if err != nil {
			log.Warn().Err(err).Msg("delivery guard unavailable, falling through to DB")
		} else if !first {
			log.Info().Msg("duplicate confirmation delivery dropped")
			return s.ignored(signal), nil
		}
	}

	outcome, err := s.apply(ctx, signal, log)
	if (err != nil || outcome == "") && s.guard != nil {
		// Not processed: let the provider's redelivery through.
		if ferr := s.guard.Forget(ctx, key); ferr != nil {
			log.Warn().Err(ferr).Msg("failed to clear delivery key")
		}
	}
	if err != nil {
		return "", err
	}
	if outcome == "" {
		s.metrics.ConfirmationApplied(signal.Provider, ports.ApplyUnknown)
		return ports.ApplyUnknown, nil
	}
	return outcome, nil
}

// apply returns an empty outcome when the correlation id is not known yet.
func (s *ConfirmationService) apply(ctx context.Context, signal domain.ConfirmationSignal, log zerolog.Logger) (ports.ApplyOutcome, error) {
	known, err := s.payments.GetByCorrelationID(ctx, signal.CorrelationID)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("lookup payment by correlation id: %w", err))
	}
	if known == nil {
		log.Warn().Msg("confirmation for unknown correlation id dropped")
		return "", nil
	}
	if known.IsTerminal() {
		log.Info().Str("payment_id", known.ID.String()).Str("status", string(known.Status)).
			Msg("confirmation for settled payment dropped")
		return ports.ApplyIgnored, nil
	}

	var (
		payment *domain.Payment
		outcome ports.ApplyOutcome
	)
	err = s.transactor.WithTx(ctx, func(tx pgx.Tx) error {
		payment, outcome = nil, ports.ApplyIgnored

		order, err := s.orders.GetForUpdate(ctx, tx, known.OrderID)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("lock order: %w", err))
		}
		if order == nil {
			return apperror.ErrNotFound("Order")
		}
		p, err := s.payments.GetByIDForUpdate(ctx, tx, known.ID)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("lock payment: %w", err))
		}
		if p == nil || p.IsTerminal() {
			return nil
		}

		now := time.Now().UTC()
		if signal.Success && signal.Amount != nil && !signal.Amount.Equal(p.Amount) {
			log.Warn().
				Str("payment_id", p.ID.String()).
				Str("expected", p.Amount.StringFixed(domain.MinorUnitPlaces)).
				Str("confirmed", signal.Amount.String()).
				Msg("confirmed amount does not match payment")
			if err := s.failTx(ctx, tx, p, "amount mismatch", now); err != nil {
				return err
			}
			payment, outcome = p, ports.ApplyFailed
			return nil
		}

		if signal.Success {
			var receipt *string
			if signal.Receipt != "" {
				r := signal.Receipt
				receipt = &r
			}
			if err := completeTx(ctx, tx, s.payments, s.orders, p, receipt, now); err != nil {
				return err
			}
			payment, outcome = p, ports.ApplyCompleted
			return nil
		}

		reason := signal.ResultDesc
		if reason == "" {
			reason = fmt.Sprintf("gateway result %d", signal.ResultCode)
		}
		if err := s.failTx(ctx, tx, p, reason, now); err != nil {
			return err
		}
		payment, outcome = p, ports.ApplyFailed
		return nil
	})
	if err != nil {
		return "", asAppError("apply confirmation", err)
	}

	s.metrics.ConfirmationApplied(signal.Provider, outcome)
	if payment == nil {
		log.Info().Msg("payment settled concurrently; confirmation dropped")
		return outcome, nil
	}

	s.metrics.PaymentTransition(payment.Method, payment.Status)
	log.Info().
		Str("payment_id", payment.ID.String()).
		Str("status", string(payment.Status)).
		Msg("confirmation applied")

	switch payment.Status {
	case domain.PaymentStatusCompleted:
		s.notifier.Notify(ctx, newNotification(payment.PayerID, domain.NotificationPayment, payment.ID.String(),
			"Payment confirmed",
			fmt.Sprintf("Payment %s of %s for order %s is confirmed", payment.PaymentRef,
				formatMoney(s.currency, payment.Amount), payment.OrderID)))
	case domain.PaymentStatusFailed:
		s.notifier.Notify(ctx, newNotification(payment.PayerID, domain.NotificationPayment, payment.ID.String(),
			"Payment failed",
			fmt.Sprintf("Payment %s for order %s failed: %s", payment.PaymentRef, payment.OrderID, *payment.FailureReason)))
	}
	return outcome, nil
}

func (s *ConfirmationService) failTx(ctx context.Context, tx pgx.Tx, p *domain.Payment, reason string, now time.Time) error {
	p.Status = domain.PaymentStatusFailed
	p.FailureReason = &reason
	p.UpdatedAt = now
	if err := s.payments.Update(ctx, tx, p); err != nil {
		return apperror.InternalError(fmt.Errorf("fail payment: %w", err))
	}
	return nil
}

func (s *ConfirmationService) ignored(signal domain.ConfirmationSignal) ports.ApplyOutcome {
	s.metrics.ConfirmationApplied(signal.Provider, ports.ApplyIgnored)
	return ports.ApplyIgnored
}
