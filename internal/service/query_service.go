package service

import (
	"context"
	"fmt"

	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"
	"settlement-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultPageSize          = 20
	maxPageSize              = 100
	defaultNotificationLimit = 50
	maxNotificationLimit     = 200
)

// QueryService implements ports.LedgerQueries. It never writes.
type QueryService struct {
	wallets       ports.WalletRepository
	entries       ports.WalletTransactionRepository
	escrows       ports.EscrowRepository
	payouts       ports.PayoutRepository
	notifications ports.NotificationRepository
	currency      string
}

var _ ports.LedgerQueries = (*QueryService)(nil)

// NewQueryService creates a new QueryService.
func NewQueryService(
	wallets ports.WalletRepository,
	entries ports.WalletTransactionRepository,
	escrows ports.EscrowRepository,
	payouts ports.PayoutRepository,
	notifications ports.NotificationRepository,
	currency string,
) *QueryService {
	return &QueryService{
		wallets:       wallets,
		entries:       entries,
		escrows:       escrows,
		payouts:       payouts,
		notifications: notifications,
		currency:      currency,
	}
}

// GetWallet returns the user's wallet. A user who never received funds has an
// empty one.
func (s *QueryService) GetWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.wallets.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return &domain.Wallet{UserID: userID, Balance: decimal.Zero, Currency: s.currency}, nil
	}
	return wallet, nil
}

// ListWalletTransactions pages through a wallet's ledger, newest first.
func (s *QueryService) ListWalletTransactions(ctx context.Context, userID uuid.UUID, entryType *domain.EntryType, page, pageSize int) ([]domain.WalletTransaction, int64, error) {
	if entryType != nil && !entryType.Valid() {
		return nil, 0, apperror.Validation(fmt.Sprintf("unknown entry type %q", *entryType))
	}
	wallet, err := s.wallets.GetByUserID(ctx, userID)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return []domain.WalletTransaction{}, 0, nil
	}

	page, pageSize = normalizePage(page, pageSize)
	entries, total, err := s.entries.List(ctx, ports.WalletTransactionListParams{
		WalletID: wallet.ID,
		Type:     entryType,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list wallet transactions: %w", err))
	}
	return entries, total, nil
}

// VerifyWallet recomputes the balance from the ledger and compares it with the
// stored one.
func (s *QueryService) VerifyWallet(ctx context.Context, userID uuid.UUID) (*ports.WalletAudit, error) {
	wallet, err := s.wallets.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("Wallet")
	}
	sum, count, err := s.entries.SignedSum(ctx, wallet.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("sum wallet ledger: %w", err))
	}
	return &ports.WalletAudit{
		UserID:     userID,
		Balance:    wallet.Balance,
		LedgerSum:  sum,
		EntryCount: count,
		Consistent: wallet.Balance.Equal(sum),
	}, nil
}

// GetEscrowByOrder returns an order's escrow to its buyer, its payee or an admin.
func (s *QueryService) GetEscrowByOrder(ctx context.Context, orderID uuid.UUID, actor domain.Actor) (*domain.Escrow, error) {
	escrow, err := s.escrows.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get escrow: %w", err))
	}
	if escrow == nil {
		return nil, apperror.ErrNotFound("Escrow")
	}
	if !actor.IsAdmin() && !actor.Is(escrow.BuyerID) && !actor.Is(escrow.PayeeID) {
		return nil, apperror.ErrForbidden("Escrow belongs to another order party")
	}
	return escrow, nil
}

// ListPayouts pages through payouts, newest first.
func (s *QueryService) ListPayouts(ctx context.Context, params ports.PayoutListParams) ([]domain.Payout, int64, error) {
	params.Page, params.PageSize = normalizePage(params.Page, params.PageSize)
	payouts, total, err := s.payouts.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list payouts: %w", err))
	}
	return payouts, total, nil
}

// ListNotifications returns the user's most recent notifications.
func (s *QueryService) ListNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	limit = min(limit, maxNotificationLimit)
	notifications, err := s.notifications.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list notifications: %w", err))
	}
	return notifications, nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return page, min(pageSize, maxPageSize)
}
