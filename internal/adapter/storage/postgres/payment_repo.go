package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"settlement-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const paymentColumns = `id, payment_ref, order_id, payer_id, amount, method, status, payer_account,
	correlation_id, receipt, failure_reason, completed_at, created_at, updated_at`

// PaymentRepo implements ports.PaymentRepository.
type PaymentRepo struct {
	pool Pool
}

// NewPaymentRepo creates a new PaymentRepo.
func NewPaymentRepo(pool Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

// Create inserts a payment within a transaction. A second active payment for
// the same order violates payments_one_active_per_order.
func (r *PaymentRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.Payment) error {
	query := `INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := tx.Exec(ctx, query,
		p.ID, p.PaymentRef, p.OrderID, p.PayerID, p.Amount, p.Method, p.Status, p.PayerAccount,
		p.CorrelationID, p.Receipt, p.FailureReason, p.CompletedAt, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return wrapInsert("payment", err)
	}
	return nil
}

// GetByID fetches a payment by id (non-locking read).
func (r *PaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	return scanPayment(r.pool.QueryRow(ctx, query, id))
}

// GetByCorrelationID fetches the payment a provider confirmation refers to.
func (r *PaymentRepo) GetByCorrelationID(ctx context.Context, correlationID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE correlation_id = $1`
	return scanPayment(r.pool.QueryRow(ctx, query, correlationID))
}

// GetByIDForUpdate fetches a payment with pessimistic locking.
// This MUST be called within a transaction.
func (r *PaymentRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1 FOR UPDATE`
	return scanPayment(tx.QueryRow(ctx, query, id))
}

// FindBlockingForUpdate locks and returns the payment that blocks a new attempt
// for the order. Caller must already hold the order lock.
func (r *PaymentRepo) FindBlockingForUpdate(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
		WHERE order_id = $1 AND status IN ('pending', 'processing', 'completed')
		ORDER BY created_at DESC LIMIT 1 FOR UPDATE`
	return scanPayment(tx.QueryRow(ctx, query, orderID))
}

// Update persists the mutable part of a payment within a transaction.
func (r *PaymentRepo) Update(ctx context.Context, tx pgx.Tx, p *domain.Payment) error {
	query := `UPDATE payments SET status = $1, correlation_id = $2, receipt = $3,
		failure_reason = $4, completed_at = $5, updated_at = $6 WHERE id = $7`

	tag, err := tx.Exec(ctx, query,
		p.Status, p.CorrelationID, p.Receipt, p.FailureReason, p.CompletedAt, p.UpdatedAt, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment not found: %s", p.ID)
	}
	return nil
}

// ListByOrder returns every attempt for an order, newest first.
func (r *PaymentRepo) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE order_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list payments by order: %w", err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment rows: %w", err)
	}
	return payments, nil
}

// ListStale returns ids of payments left in status since before the cutoff.
func (r *PaymentRepo) ListStale(ctx context.Context, status domain.PaymentStatus, before time.Time, limit int) ([]uuid.UUID, error) {
	query := `SELECT id FROM payments WHERE status = $1 AND updated_at < $2
		ORDER BY updated_at ASC LIMIT $3`

	rows, err := r.pool.Query(ctx, query, status, before, limit)
	if err != nil {
		return nil, fmt.Errorf("list stale payments: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan stale payment id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stale payment rows: %w", err)
	}
	return ids, nil
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	p := &domain.Payment{}
	err := row.Scan(
		&p.ID, &p.PaymentRef, &p.OrderID, &p.PayerID, &p.Amount, &p.Method, &p.Status, &p.PayerAccount,
		&p.CorrelationID, &p.Receipt, &p.FailureReason, &p.CompletedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}
	return p, nil
}
