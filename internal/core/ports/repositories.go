package ports

import (
	"context"
	"errors"
	"time"

	"settlement-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// Methods accepting pgx.Tx run inside a caller-owned transaction; the ForUpdate
// variants take a row lock that is held until the transaction ends.
// Locks are always taken in this order: order, escrow, payment, payout, wallets
// sorted by user id.

// OrderRepository is the narrow view of the marketplace order table.
type OrderRepository interface {
	GetForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Order, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.OrderStatus) error
}

// PaymentRepository defines persistence operations for payment attempts.
type PaymentRepository interface {
	Create(ctx context.Context, tx pgx.Tx, payment *domain.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	GetByCorrelationID(ctx context.Context, correlationID string) (*domain.Payment, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Payment, error)
	// FindBlockingForUpdate returns the payment that prevents a new attempt for
	// the order (non-terminal or completed), or nil.
	FindBlockingForUpdate(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) (*domain.Payment, error)
	// Update persists status, correlation id, receipt, failure reason and timestamps.
	Update(ctx context.Context, tx pgx.Tx, payment *domain.Payment) error
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.Payment, error)
	// ListStale returns ids of payments in status last updated before the cutoff.
	ListStale(ctx context.Context, status domain.PaymentStatus, before time.Time, limit int) ([]uuid.UUID, error)
}

// EscrowRepository defines persistence operations for escrows.
type EscrowRepository interface {
	Create(ctx context.Context, tx pgx.Tx, escrow *domain.Escrow) error
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Escrow, error)
	GetByOrderIDForUpdate(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) (*domain.Escrow, error)
	// MarkSettled records the disposition; released is set only for EscrowReleased.
	MarkSettled(ctx context.Context, tx pgx.Tx, id uuid.UUID, disposition domain.EscrowDisposition, at time.Time) error
}

// WalletRepository defines persistence operations for wallets.
type WalletRepository interface {
	// Create is a no-op when the user already has a wallet.
	Create(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	GetByUserIDForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*domain.Wallet, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance decimal.Decimal) error
}

// WalletTransactionRepository is the append-only wallet ledger.
type WalletTransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, entry *domain.WalletTransaction) error
	List(ctx context.Context, params WalletTransactionListParams) ([]domain.WalletTransaction, int64, error)
	// SignedSum returns the balance implied by the ledger and the entry count.
	SignedSum(ctx context.Context, walletID uuid.UUID) (decimal.Decimal, int64, error)
}

// WalletTransactionListParams holds filter + pagination for a wallet's ledger.
type WalletTransactionListParams struct {
	WalletID uuid.UUID
	Type     *domain.EntryType
	Page     int
	PageSize int
}

// PayoutRepository defines persistence operations for withdrawal requests.
type PayoutRepository interface {
	Create(ctx context.Context, tx pgx.Tx, payout *domain.Payout) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Payout, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Payout, error)
	// GetByIdempotencyKey finds an earlier request from the same user with the same key.
	GetByIdempotencyKey(ctx context.Context, tx pgx.Tx, userID uuid.UUID, key string) (*domain.Payout, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, payout *domain.Payout) error
	List(ctx context.Context, params PayoutListParams) ([]domain.Payout, int64, error)
}

// PayoutListParams holds filter + pagination for listing payouts.
type PayoutListParams struct {
	UserID   *uuid.UUID // nil = all users (admin)
	Status   *domain.PayoutStatus
	Page     int
	PageSize int
}

// NotificationRepository persists notifications for later listing.
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error)
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	// WithTx runs fn in a transaction, committing when fn returns nil and rolling
	// back otherwise. Serialization failures and deadlocks rerun fn from scratch.
	WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error
}

// ErrDuplicate is wrapped by repositories when an insert violates a uniqueness
// rule, such as a second active payment for one order.
var ErrDuplicate = errors.New("duplicate record")
