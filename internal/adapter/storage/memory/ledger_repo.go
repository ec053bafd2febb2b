package memory

import (
	"context"
	"fmt"
	"slices"
	"time"

	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// EscrowRepo implements ports.EscrowRepository.
type EscrowRepo struct{ s *Store }

// Escrows returns the escrow repository.
func (s *Store) Escrows() *EscrowRepo { return &EscrowRepo{s: s} }

func (r *EscrowRepo) Create(ctx context.Context, tx pgx.Tx, e *domain.Escrow) error {
	if err := r.s.checkTx(tx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.injected("escrows.create"); err != nil {
		return err
	}
	if _, ok := r.s.escrows[e.OrderID]; ok {
		return fmt.Errorf("insert escrow: %w: order %s", ports.ErrDuplicate, e.OrderID)
	}
	if !e.FarmerShare.Add(e.PlatformCommission).Equal(e.Amount) {
		return fmt.Errorf("insert escrow: shares do not sum to amount")
	}
	r.s.escrows[e.OrderID] = *e
	return nil
}

func (r *EscrowRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Escrow, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.escrows[orderID]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *EscrowRepo) GetByOrderIDForUpdate(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) (*domain.Escrow, error) {
	if err := r.s.checkTx(tx); err != nil {
		return nil, err
	}
	return r.GetByOrderID(ctx, orderID)
}

func (r *EscrowRepo) MarkSettled(ctx context.Context, tx pgx.Tx, id uuid.UUID, disposition domain.EscrowDisposition, at time.Time) error {
	if err := r.s.checkTx(tx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.injected("escrows.mark_settled"); err != nil {
		return err
	}
	for orderID, e := range r.s.escrows {
		if e.ID != id {
			continue
		}
		if e.Settled() {
			break
		}
		e.Released = disposition == domain.EscrowReleased
		e.ReleasedAt = &at
		e.Disposition = disposition
		r.s.escrows[orderID] = e
		return nil
	}
	return fmt.Errorf("escrow not found or already settled: %s", id)
}

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct{ s *Store }

// Wallets returns the wallet repository.
func (s *Store) Wallets() *WalletRepo { return &WalletRepo{s: s} }

func (r *WalletRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.Wallet) error {
	if err := r.s.checkTx(tx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.wallets[w.UserID]; ok {
		return nil
	}
	r.s.wallets[w.UserID] = *w
	return nil
}

func (r *WalletRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	w, ok := r.s.wallets[userID]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (r *WalletRepo) GetByUserIDForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*domain.Wallet, error) {
	if err := r.s.checkTx(tx); err != nil {
		return nil, err
	}
	return r.GetByUserID(ctx, userID)
}

// UpdateBalance enforces the same non-negative check as the wallets table.
func (r *WalletRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance decimal.Decimal) error {
	if err := r.s.checkTx(tx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.injected("wallets.update_balance"); err != nil {
		return err
	}
	if balance.IsNegative() {
		return fmt.Errorf("update wallet balance: check constraint violated: %s", balance)
	}
	for userID, w := range r.s.wallets {
		if w.ID == walletID {
			w.Balance = balance
			w.UpdatedAt = time.Now().UTC()
			r.s.wallets[userID] = w
			return nil
		}
	}
	return fmt.Errorf("wallet not found: %s", walletID)
}

// WalletTransactionRepo implements ports.WalletTransactionRepository.
type WalletTransactionRepo struct{ s *Store }

// WalletTransactions returns the wallet ledger repository.
func (s *Store) WalletTransactions() *WalletTransactionRepo { return &WalletTransactionRepo{s: s} }

func (r *WalletTransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.WalletTransaction) error {
	if err := r.s.checkTx(tx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.injected("wallet_transactions.create"); err != nil {
		return err
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("insert wallet transaction: amount must be positive")
	}
	r.s.entries = append(r.s.entries, *t)
	return nil
}

func (r *WalletTransactionRepo) List(ctx context.Context, params ports.WalletTransactionListParams) ([]domain.WalletTransaction, int64, error) {
	r.s.mu.RLock()
	var result []domain.WalletTransaction
	for _, t := range r.s.entries {
		if t.WalletID != params.WalletID {
			continue
		}
		if params.Type != nil && t.Type != *params.Type {
			continue
		}
		result = append(result, t)
	}
	r.s.mu.RUnlock()

	// entries are appended in commit order, newest last
	slices.Reverse(result)
	total := int64(len(result))
	return paginate(result, params.Page, params.PageSize), total, nil
}

func (r *WalletTransactionRepo) SignedSum(ctx context.Context, walletID uuid.UUID) (decimal.Decimal, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var own []domain.WalletTransaction
	for _, t := range r.s.entries {
		if t.WalletID == walletID {
			own = append(own, t)
		}
	}
	return domain.SignedSum(own), int64(len(own)), nil
}

func paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		return items
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := min(start+pageSize, len(items))
	return items[start:end]
}
