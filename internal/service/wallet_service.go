package service

import (
	"context"
	"fmt"
	"time"

	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"
	"settlement-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// WalletService implements ports.WalletLedger. It is the only code path that
// changes a wallet balance, and every change appends exactly one ledger entry.
type WalletService struct {
	wallets    ports.WalletRepository
	entries    ports.WalletTransactionRepository
	transactor ports.DBTransactor
	metrics    ports.Metrics
	currency   string
	log        zerolog.Logger
}

var _ ports.WalletLedger = (*WalletService)(nil)

// NewWalletService creates a new WalletService.
func NewWalletService(
	wallets ports.WalletRepository,
	entries ports.WalletTransactionRepository,
	transactor ports.DBTransactor,
	metrics ports.Metrics,
	currency string,
	log zerolog.Logger,
) *WalletService {
	return &WalletService{
		wallets:    wallets,
		entries:    entries,
		transactor: transactor,
		metrics:    metrics,
		currency:   currency,
		log:        log,
	}
}

// Credit adds funds to the user's wallet in its own transaction.
func (s *WalletService) Credit(ctx context.Context, req ports.EntryRequest) (*domain.WalletTransaction, error) {
	var entry *domain.WalletTransaction
	err := s.transactor.WithTx(ctx, func(tx pgx.Tx) error {
		var err error
		entry, err = s.CreditTx(ctx, tx, req)
		return err
	})
	if err != nil {
		return nil, asAppError("credit wallet", err)
	}
	s.committed(req, entry)
	return entry, nil
}

// Debit removes funds from the user's wallet in its own transaction.
func (s *WalletService) Debit(ctx context.Context, req ports.EntryRequest) (*domain.WalletTransaction, error) {
	var entry *domain.WalletTransaction
	err := s.transactor.WithTx(ctx, func(tx pgx.Tx) error {
		var err error
		entry, err = s.DebitTx(ctx, tx, req)
		return err
	})
	if err != nil {
		return nil, asAppError("debit wallet", err)
	}
	s.committed(req, entry)
	return entry, nil
}

// CreditTx credits inside the caller's transaction, creating the wallet on
// first use.
func (s *WalletService) CreditTx(ctx context.Context, tx pgx.Tx, req ports.EntryRequest) (*domain.WalletTransaction, error) {
	if err := validateEntry(req, true); err != nil {
		return nil, err
	}

	wallet, err := s.wallets.GetByUserIDForUpdate(ctx, tx, req.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		now := time.Now().UTC()
		if err := s.wallets.Create(ctx, tx, &domain.Wallet{
			ID:        uuid.New(),
			UserID:    req.UserID,
			Currency:  s.currency,
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
		}
		// Re-read under lock; a concurrent credit may have created it first.
		wallet, err = s.wallets.GetByUserIDForUpdate(ctx, tx, req.UserID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
		}
		if wallet == nil {
			return nil, apperror.InternalError(fmt.Errorf("wallet for user %s vanished after create", req.UserID))
		}
	}

	return s.apply(ctx, tx, wallet, req, wallet.Balance.Add(req.Amount))
}

// DebitTx debits inside the caller's transaction. A missing wallet has no funds.
func (s *WalletService) DebitTx(ctx context.Context, tx pgx.Tx, req ports.EntryRequest) (*domain.WalletTransaction, error) {
	if err := validateEntry(req, false); err != nil {
		return nil, err
	}

	wallet, err := s.wallets.GetByUserIDForUpdate(ctx, tx, req.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil || wallet.Balance.LessThan(req.Amount) {
		return nil, apperror.ErrInsufficientFunds()
	}

	return s.apply(ctx, tx, wallet, req, wallet.Balance.Sub(req.Amount))
}

func (s *WalletService) apply(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet, req ports.EntryRequest, balance decimal.Decimal) (*domain.WalletTransaction, error) {
	if err := s.wallets.UpdateBalance(ctx, tx, wallet.ID, balance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	entry := &domain.WalletTransaction{
		ID:           uuid.New(),
		WalletID:     wallet.ID,
		Type:         req.Type,
		Amount:       req.Amount,
		BalanceAfter: balance,
		Reference:    req.Reference,
		Description:  req.Description,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.entries.Create(ctx, tx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append wallet entry: %w", err))
	}
	return entry, nil
}

func (s *WalletService) committed(req ports.EntryRequest, entry *domain.WalletTransaction) {
	s.metrics.WalletEntry(entry.Type, entry.Amount)
	s.log.Info().
		Str("user_id", req.UserID.String()).
		Str("type", string(entry.Type)).
		Str("amount", entry.Amount.StringFixed(domain.MinorUnitPlaces)).
		Str("balance_after", entry.BalanceAfter.StringFixed(domain.MinorUnitPlaces)).
		Str("reference", entry.Reference).
		Msg("wallet entry committed")
}

func validateEntry(req ports.EntryRequest, credit bool) error {
	if req.UserID == uuid.Nil {
		return apperror.Validation("user id is required")
	}
	if !req.Amount.IsPositive() {
		return apperror.ErrInvalidAmount()
	}
	if !req.Amount.Equal(req.Amount.Round(domain.MinorUnitPlaces)) {
		return apperror.Validation("amount has more than two decimal places")
	}
	if !req.Type.Valid() || req.Type.IsCredit() != credit {
		return apperror.Validation(fmt.Sprintf("entry type %q cannot be used for this movement", req.Type))
	}
	return nil
}
