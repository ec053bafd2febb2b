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

const escrowColumns = `id, order_id, buyer_id, payee_id, amount, farmer_share, platform_commission,
	released, released_at, disposition, created_at`

// EscrowRepo implements ports.EscrowRepository.
type EscrowRepo struct {
	pool Pool
}

// NewEscrowRepo creates a new EscrowRepo.
func NewEscrowRepo(pool Pool) *EscrowRepo {
	return &EscrowRepo{pool: pool}
}

// Create inserts an escrow within a transaction.
func (r *EscrowRepo) Create(ctx context.Context, tx pgx.Tx, e *domain.Escrow) error {
	query := `INSERT INTO escrows (` + escrowColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := tx.Exec(ctx, query,
		e.ID, e.OrderID, e.BuyerID, e.PayeeID, e.Amount, e.FarmerShare, e.PlatformCommission,
		e.Released, e.ReleasedAt, e.Disposition, e.CreatedAt,
	)
	if err != nil {
		return wrapInsert("escrow", err)
	}
	return nil
}

// GetByOrderID fetches the escrow for an order (non-locking read).
func (r *EscrowRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Escrow, error) {
	query := `SELECT ` + escrowColumns + ` FROM escrows WHERE order_id = $1`
	return scanEscrow(r.pool.QueryRow(ctx, query, orderID))
}

// GetByOrderIDForUpdate fetches the escrow for an order with pessimistic locking.
// This MUST be called within a transaction.
func (r *EscrowRepo) GetByOrderIDForUpdate(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) (*domain.Escrow, error) {
	query := `SELECT ` + escrowColumns + ` FROM escrows WHERE order_id = $1 FOR UPDATE`
	return scanEscrow(tx.QueryRow(ctx, query, orderID))
}

// MarkSettled records how the escrow was settled. The WHERE clause refuses to
// settle twice even if a caller skipped the lock.
func (r *EscrowRepo) MarkSettled(ctx context.Context, tx pgx.Tx, id uuid.UUID, disposition domain.EscrowDisposition, at time.Time) error {
	query := `UPDATE escrows SET released = $1, released_at = $2, disposition = $3
		WHERE id = $4 AND released = FALSE AND disposition = ''`

	tag, err := tx.Exec(ctx, query, disposition == domain.EscrowReleased, at, disposition, id)
	if err != nil {
		return fmt.Errorf("settle escrow: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("escrow not found or already settled: %s", id)
	}
	return nil
}

func scanEscrow(row pgx.Row) (*domain.Escrow, error) {
	e := &domain.Escrow{}
	err := row.Scan(
		&e.ID, &e.OrderID, &e.BuyerID, &e.PayeeID, &e.Amount, &e.FarmerShare, &e.PlatformCommission,
		&e.Released, &e.ReleasedAt, &e.Disposition, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan escrow: %w", err)
	}
	return e, nil
}
