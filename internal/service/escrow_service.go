package service

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"time"

	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"
	"settlement-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// EscrowService implements ports.EscrowLedger.
type EscrowService struct {
	orders          ports.OrderRepository
	escrows         ports.EscrowRepository
	payments        ports.PaymentRepository
	wallet          ports.WalletLedger
	transactor      ports.DBTransactor
	notifier        ports.Notifier
	metrics         ports.Metrics
	rate            decimal.Decimal
	currency        string
	platformAccount uuid.UUID // uuid.Nil: commission stays unallocated
	log             zerolog.Logger
}

var _ ports.EscrowLedger = (*EscrowService)(nil)

// NewEscrowService creates a new EscrowService. rate is the platform commission
// as a fraction in [0, 1).
func NewEscrowService(
	orders ports.OrderRepository,
	escrows ports.EscrowRepository,
	payments ports.PaymentRepository,
	wallet ports.WalletLedger,
	transactor ports.DBTransactor,
	notifier ports.Notifier,
	metrics ports.Metrics,
	rate decimal.Decimal,
	currency string,
	platformAccount uuid.UUID,
	log zerolog.Logger,
) *EscrowService {
	return &EscrowService{
		orders:          orders,
		escrows:         escrows,
		payments:        payments,
		wallet:          wallet,
		transactor:      transactor,
		notifier:        notifier,
		metrics:         metrics,
		rate:            rate,
		currency:        currency,
		platformAccount: platformAccount,
		log:             log,
	}
}

// CalculateShares splits amount into the payee's share and the platform commission.
func (s *EscrowService) CalculateShares(amount decimal.Decimal) (farmerShare, commission decimal.Decimal) {
	return domain.SplitAmount(amount, s.rate)
}

// EnsureTx returns the order's escrow, creating it from the order total on first use.
func (s *EscrowService) EnsureTx(ctx context.Context, tx pgx.Tx, order *domain.Order) (*domain.Escrow, error) {
	escrow, err := s.escrows.GetByOrderIDForUpdate(ctx, tx, order.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock escrow: %w", err))
	}
	if escrow != nil {
		return escrow, nil
	}

	if !order.TotalAmount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	share, commission := s.CalculateShares(order.TotalAmount)
	escrow = &domain.Escrow{
		ID:                 uuid.New(),
		OrderID:            order.ID,
		BuyerID:            order.BuyerID,
		PayeeID:            order.PayeeID,
		Amount:             order.TotalAmount,
		FarmerShare:        share,
		PlatformCommission: commission,
		CreatedAt:          time.Now().UTC(),
	}
	if err := s.escrows.Create(ctx, tx, escrow); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create escrow: %w", err))
	}

	s.log.Info().
		Str("escrow_id", escrow.ID.String()).
		Str("order_id", order.ID.String()).
		Str("amount", escrow.Amount.StringFixed(domain.MinorUnitPlaces)).
		Str("commission", commission.StringFixed(domain.MinorUnitPlaces)).
		Msg("escrow opened")
	return escrow, nil
}

// Release pays the payee's share out of escrow and completes the order.
// Only the buyer or an administrator may release.
func (s *EscrowService) Release(ctx context.Context, orderID uuid.UUID, actor domain.Actor) (*domain.Escrow, error) {
	var (
		escrow  *domain.Escrow
		credits []ports.EntryRequest
	)
	err := s.transactor.WithTx(ctx, func(tx pgx.Tx) error {
		order, err := s.lockOrder(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if !actor.IsAdmin() && !actor.Is(order.BuyerID) {
			return apperror.ErrForbidden("Only the buyer or an administrator can release escrow")
		}

		escrow, err = s.lockUnsettled(ctx, tx, orderID)
		if err != nil {
			return err
		}

		credits = []ports.EntryRequest{{
			UserID:      escrow.PayeeID,
			Amount:      escrow.FarmerShare,
			Type:        domain.EntryDeposit,
			Reference:   escrow.Reference(),
			Description: fmt.Sprintf("Escrow release for order %s", orderID),
		}}
		if s.platformAccount != uuid.Nil {
			credits = append(credits, ports.EntryRequest{
				UserID:      s.platformAccount,
				Amount:      escrow.PlatformCommission,
				Type:        domain.EntryCommission,
				Reference:   escrow.Reference(),
				Description: fmt.Sprintf("Commission on order %s", orderID),
			})
		}

		return s.settle(ctx, tx, escrow, domain.EscrowReleased, domain.OrderStatusCompleted, credits)
	})
	if err != nil {
		return nil, asAppError("release escrow", err)
	}

	s.afterSettle(ctx, escrow, credits)
	s.notifier.Notify(ctx, newNotification(escrow.PayeeID, domain.NotificationEscrow, escrow.OrderID.String(),
		"Escrow released",
		fmt.Sprintf("%s for order %s has been credited to your wallet", formatMoney(s.currency, escrow.FarmerShare), escrow.OrderID)))
	return escrow, nil
}

// Refund returns the full escrowed amount to the buyer and cancels the order.
// Administrators only.
func (s *EscrowService) Refund(ctx context.Context, orderID uuid.UUID, actor domain.Actor) (*domain.Escrow, error) {
	if !actor.IsAdmin() {
		return nil, apperror.ErrForbidden("Only an administrator can refund escrow")
	}

	var (
		escrow  *domain.Escrow
		credits []ports.EntryRequest
	)
	err := s.transactor.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := s.lockOrder(ctx, tx, orderID); err != nil {
			return err
		}

		var err error
		escrow, err = s.lockUnsettled(ctx, tx, orderID)
		if err != nil {
			return err
		}

		credits = []ports.EntryRequest{{
			UserID:      escrow.BuyerID,
			Amount:      escrow.Amount,
			Type:        domain.EntryRefund,
			Reference:   escrow.Reference(),
			Description: fmt.Sprintf("Refund for order %s", orderID),
		}}
		return s.settle(ctx, tx, escrow, domain.EscrowRefunded, domain.OrderStatusCancelled, credits)
	})
	if err != nil {
		return nil, asAppError("refund escrow", err)
	}

	s.afterSettle(ctx, escrow, credits)
	s.notifier.Notify(ctx, newNotification(escrow.BuyerID, domain.NotificationEscrow, escrow.OrderID.String(),
		"Order refunded",
		fmt.Sprintf("%s for order %s has been refunded to your wallet", formatMoney(s.currency, escrow.Amount), escrow.OrderID)))
	return escrow, nil
}

func (s *EscrowService) lockOrder(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.orders.GetForUpdate(ctx, tx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("Order")
	}
	return order, nil
}

// lockUnsettled locks the escrow and checks that it still holds funds paid by
// a completed payment.
func (s *EscrowService) lockUnsettled(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) (*domain.Escrow, error) {
	escrow, err := s.escrows.GetByOrderIDForUpdate(ctx, tx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock escrow: %w", err))
	}
	if escrow == nil {
		return nil, apperror.ErrNotFound("Escrow")
	}
	switch {
	case escrow.Disposition == domain.EscrowRefunded:
		return nil, apperror.ErrEscrowRefunded()
	case escrow.Settled():
		return nil, apperror.ErrEscrowReleased()
	}

	payment, err := s.payments.FindBlockingForUpdate(ctx, tx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock payment: %w", err))
	}
	if payment == nil || payment.Status != domain.PaymentStatusCompleted {
		return nil, apperror.ErrPaymentNotCompleted()
	}
	return escrow, nil
}

func (s *EscrowService) settle(
	ctx context.Context,
	tx pgx.Tx,
	escrow *domain.Escrow,
	disposition domain.EscrowDisposition,
	orderStatus domain.OrderStatus,
	credits []ports.EntryRequest,
) error {
	now := time.Now().UTC()
	if err := s.escrows.MarkSettled(ctx, tx, escrow.ID, disposition, now); err != nil {
		return apperror.InternalError(fmt.Errorf("mark escrow %s: %w", disposition, err))
	}

	slices.SortFunc(credits, func(a, b ports.EntryRequest) int {
		return bytes.Compare(a.UserID[:], b.UserID[:])
	})
	for _, credit := range credits {
		if !credit.Amount.IsPositive() {
			continue
		}
		if _, err := s.wallet.CreditTx(ctx, tx, credit); err != nil {
			return err
		}
	}

	if err := s.orders.UpdateStatus(ctx, tx, escrow.OrderID, orderStatus); err != nil {
		return apperror.InternalError(fmt.Errorf("update order status: %w", err))
	}

	escrow.Disposition = disposition
	if disposition == domain.EscrowReleased {
		escrow.Released = true
		escrow.ReleasedAt = &now
	}
	return nil
}

func (s *EscrowService) afterSettle(ctx context.Context, escrow *domain.Escrow, credits []ports.EntryRequest) {
	s.metrics.EscrowSettled(escrow.Disposition)
	for _, credit := range credits {
		if credit.Amount.IsPositive() {
			s.metrics.WalletEntry(credit.Type, credit.Amount)
		}
	}
	s.log.Info().
		Str("escrow_id", escrow.ID.String()).
		Str("order_id", escrow.OrderID.String()).
		Str("disposition", string(escrow.Disposition)).
		Msg("escrow settled")
}
