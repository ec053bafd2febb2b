package ports

import (
	"context"
	"time"

	"settlement-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// SignatureService handles HMAC-SHA256 signing and verification.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
	// VerifyCallback checks a signed gateway callback: the signature covers
	// "timestamp.body" and the unix timestamp must be recent.
	VerifyCallback(secretKey, timestamp string, body []byte, signature string) bool
}

// TokenService handles JWT token operations. Tokens are issued by the
// marketplace identity service; Generate exists for operators and tests.
type TokenService interface {
	Generate(actor domain.Actor) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID uuid.UUID
	Role   domain.Role
}

// Actor converts the claims into the identity used by the services.
func (c *TokenClaims) Actor() domain.Actor {
	return domain.Actor{UserID: c.UserID, Role: c.Role}
}

// DeliveryGuard drops exact redeliveries of a gateway callback (fast path).
type DeliveryGuard interface {
	// FirstDelivery atomically records key. Returns false if it was seen before.
	FirstDelivery(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Forget removes key so a delivery whose processing failed can be retried.
	Forget(ctx context.Context, key string) error
}

// RateLimitDecision is the outcome of one rate limit check.
type RateLimitDecision struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   time.Time
}

// RateLimiter counts requests per key over a rolling window. Rejected
// requests are not counted.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (RateLimitDecision, error)
}

// IdempotencyCache is the Redis-layer idempotency check (fast path).
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Notifier is the fire-and-forget notification sink.
type Notifier interface {
	Notify(ctx context.Context, notification domain.Notification)
}

// AuditService records audited actions without blocking the caller.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// --- Service Ports (Business Logic) ---

// WalletLedger is the only writer of wallet balances.
type WalletLedger interface {
	Credit(ctx context.Context, req EntryRequest) (*domain.WalletTransaction, error)
	Debit(ctx context.Context, req EntryRequest) (*domain.WalletTransaction, error)
	// CreditTx and DebitTx do the same inside a caller's transaction.
	CreditTx(ctx context.Context, tx pgx.Tx, req EntryRequest) (*domain.WalletTransaction, error)
	DebitTx(ctx context.Context, tx pgx.Tx, req EntryRequest) (*domain.WalletTransaction, error)
}

// EntryRequest holds validated input for a single wallet movement.
type EntryRequest struct {
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Type        domain.EntryType
	Reference   string
	Description string
}

// EscrowLedger owns the per-order fund split and its settlement.
type EscrowLedger interface {
	CalculateShares(amount decimal.Decimal) (farmerShare, commission decimal.Decimal)
	// EnsureTx creates the escrow for the order if absent. Caller holds the order lock.
	EnsureTx(ctx context.Context, tx pgx.Tx, order *domain.Order) (*domain.Escrow, error)
	Release(ctx context.Context, orderID uuid.UUID, actor domain.Actor) (*domain.Escrow, error)
	Refund(ctx context.Context, orderID uuid.UUID, actor domain.Actor) (*domain.Escrow, error)
}

// PaymentService owns the lifecycle of payment attempts.
type PaymentService interface {
	Initiate(ctx context.Context, req InitiateRequest) (*domain.Payment, error)
	Cancel(ctx context.Context, paymentID uuid.UUID, actor domain.Actor) (*domain.Payment, error)
	Get(ctx context.Context, paymentID uuid.UUID, actor domain.Actor) (*domain.Payment, error)
	// ExpireStale resolves payments stuck before a terminal state.
	ExpireStale(ctx context.Context, now time.Time) (*ExpiryReport, error)
}

// InitiateRequest holds validated input for starting a payment.
type InitiateRequest struct {
	OrderID      uuid.UUID
	Method       domain.PaymentMethod
	PayerAccount string
	Actor        domain.Actor
}

// ExpiryReport summarises one sweep.
type ExpiryReport struct {
	Failed    int // processing payments that never got a confirmation
	Cancelled int // pending payments never dispatched
	Skipped   int // raced with a confirmation or cancellation
}

// ApplyOutcome describes what a confirmation did.
type ApplyOutcome string

const (
	ApplyCompleted ApplyOutcome = "completed"
	ApplyFailed    ApplyOutcome = "failed"
	// ApplyIgnored covers duplicates and records already in a terminal state.
	ApplyIgnored ApplyOutcome = "ignored"
	// ApplyUnknown means no payment carries the correlation id yet. The
	// confirmation can outrun the commit that stores it, so it should be
	// delivered again.
	ApplyUnknown ApplyOutcome = "unknown"
)

// ConfirmationProcessor applies asynchronous gateway outcomes. Gateways that
// confirm out of band deliver into it.
type ConfirmationProcessor interface {
	Apply(ctx context.Context, signal domain.ConfirmationSignal) (ApplyOutcome, error)
}

// PayoutProcessor handles withdrawals from wallets.
type PayoutProcessor interface {
	RequestPayout(ctx context.Context, req PayoutRequest) (*domain.Payout, error)
	Process(ctx context.Context, payoutID uuid.UUID, actor domain.Actor, reference string) (*domain.Payout, error)
	Reject(ctx context.Context, payoutID uuid.UUID, actor domain.Actor, note string) (*domain.Payout, error)
}

// PayoutRequest holds validated input for a withdrawal.
type PayoutRequest struct {
	UserID         uuid.UUID
	Amount         decimal.Decimal
	Method         domain.PayoutMethod
	Destination    string
	IdempotencyKey string // optional; repeats return the original payout
}

// LedgerQueries is the read-only query surface for reporting and admin callers.
type LedgerQueries interface {
	GetWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	ListWalletTransactions(ctx context.Context, userID uuid.UUID, entryType *domain.EntryType, page, pageSize int) ([]domain.WalletTransaction, int64, error)
	VerifyWallet(ctx context.Context, userID uuid.UUID) (*WalletAudit, error)
	GetEscrowByOrder(ctx context.Context, orderID uuid.UUID, actor domain.Actor) (*domain.Escrow, error)
	ListPayouts(ctx context.Context, params PayoutListParams) ([]domain.Payout, int64, error)
	ListNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error)
}

// WalletAudit compares a stored balance with the ledger that produced it.
type WalletAudit struct {
	UserID     uuid.UUID       `json:"user_id"`
	Balance    decimal.Decimal `json:"balance"`
	LedgerSum  decimal.Decimal `json:"ledger_sum"`
	EntryCount int64           `json:"entry_count"`
	Consistent bool            `json:"consistent"`
}

// Metrics receives settlement events for instrumentation.
type Metrics interface {
	PaymentTransition(method domain.PaymentMethod, status domain.PaymentStatus)
	ConfirmationApplied(provider string, outcome ApplyOutcome)
	GatewayCall(provider string, outcome string, elapsed time.Duration)
	WalletEntry(entryType domain.EntryType, amount decimal.Decimal)
	EscrowSettled(disposition domain.EscrowDisposition)
	PayoutDecision(status domain.PayoutStatus)
	PaymentsExpired(status domain.PaymentStatus, count int)
}
