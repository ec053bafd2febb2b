package postgres

import (
	"context"
	"fmt"
	"strings"

	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WalletTransactionRepo implements ports.WalletTransactionRepository.
// Rows are only ever inserted.
type WalletTransactionRepo struct {
	pool Pool
}

// NewWalletTransactionRepo creates a new WalletTransactionRepo.
func NewWalletTransactionRepo(pool Pool) *WalletTransactionRepo {
	return &WalletTransactionRepo{pool: pool}
}

// Create appends a ledger entry within a transaction.
func (r *WalletTransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.WalletTransaction) error {
	query := `INSERT INTO wallet_transactions (id, wallet_id, type, amount, balance_after, reference, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.WalletID, t.Type, t.Amount, t.BalanceAfter, t.Reference, t.Description, t.CreatedAt,
	)
	if err != nil {
		return wrapInsert("wallet transaction", err)
	}
	return nil
}

// List fetches a wallet's ledger with filtering and pagination, newest first.
func (r *WalletTransactionRepo) List(ctx context.Context, params ports.WalletTransactionListParams) ([]domain.WalletTransaction, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, fmt.Sprintf("wallet_id = $%d", argIdx))
	args = append(args, params.WalletID)
	argIdx++

	if params.Type != nil {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argIdx))
		args = append(args, *params.Type)
		argIdx++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	// Count total
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM wallet_transactions %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count wallet transactions: %w", err)
	}

	// Fetch page
	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT id, wallet_id, type, amount, balance_after, reference, description, created_at
		FROM wallet_transactions %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list wallet transactions: %w", err)
	}
	defer rows.Close()

	var entries []domain.WalletTransaction
	for rows.Next() {
		t := domain.WalletTransaction{}
		err := rows.Scan(
			&t.ID, &t.WalletID, &t.Type, &t.Amount, &t.BalanceAfter,
			&t.Reference, &t.Description, &t.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan wallet transaction row: %w", err)
		}
		entries = append(entries, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate wallet transaction rows: %w", err)
	}
	return entries, total, nil
}

// SignedSum folds the ledger into the balance it implies.
func (r *WalletTransactionRepo) SignedSum(ctx context.Context, walletID uuid.UUID) (decimal.Decimal, int64, error) {
	query := `SELECT
		COALESCE(SUM(CASE WHEN type IN ('deposit', 'refund', 'commission') THEN amount ELSE -amount END), 0),
		COUNT(*)
		FROM wallet_transactions WHERE wallet_id = $1`

	var sum decimal.Decimal
	var count int64
	if err := r.pool.QueryRow(ctx, query, walletID).Scan(&sum, &count); err != nil {
		return decimal.Zero, 0, fmt.Errorf("sum wallet transactions: %w", err)
	}
	return sum, count, nil
}
