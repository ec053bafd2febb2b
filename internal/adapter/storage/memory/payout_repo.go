package memory

import (
	"context"
	"fmt"
	"slices"

	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PayoutRepo implements ports.PayoutRepository.
type PayoutRepo struct{ s *Store }

// Payouts returns the payout repository.
func (s *Store) Payouts() *PayoutRepo { return &PayoutRepo{s: s} }

func idempotencyIndex(userID uuid.UUID, key string) string {
	return userID.String() + ":" + key
}

func (r *PayoutRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.Payout) error {
	if err := r.s.checkTx(tx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.injected("payouts.create"); err != nil {
		return err
	}
	if p.IdempotencyKey != "" {
		idx := idempotencyIndex(p.UserID, p.IdempotencyKey)
		if _, ok := r.s.payoutKeys[idx]; ok {
			return fmt.Errorf("insert payout: %w: idempotency key %s", ports.ErrDuplicate, p.IdempotencyKey)
		}
		r.s.payoutKeys[idx] = p.ID
	}
	r.s.payouts[p.ID] = *p
	return nil
}

func (r *PayoutRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payout, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.payouts[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *PayoutRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Payout, error) {
	if err := r.s.checkTx(tx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *PayoutRepo) GetByIdempotencyKey(ctx context.Context, tx pgx.Tx, userID uuid.UUID, key string) (*domain.Payout, error) {
	if err := r.s.checkTx(tx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	id, ok := r.s.payoutKeys[idempotencyIndex(userID, key)]
	r.s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func (r *PayoutRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, p *domain.Payout) error {
	if err := r.s.checkTx(tx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.payouts[p.ID]
	if !ok || !existing.IsPending() {
		return fmt.Errorf("payout not found or not pending: %s", p.ID)
	}
	existing.Status = p.Status
	existing.Reference = p.Reference
	existing.Note = p.Note
	existing.ProcessedBy = p.ProcessedBy
	existing.ProcessedAt = p.ProcessedAt
	r.s.payouts[p.ID] = existing
	return nil
}

func (r *PayoutRepo) List(ctx context.Context, params ports.PayoutListParams) ([]domain.Payout, int64, error) {
	r.s.mu.RLock()
	var result []domain.Payout
	for _, p := range r.s.payouts {
		if params.UserID != nil && p.UserID != *params.UserID {
			continue
		}
		if params.Status != nil && p.Status != *params.Status {
			continue
		}
		result = append(result, p)
	}
	r.s.mu.RUnlock()

	slices.SortFunc(result, func(a, b domain.Payout) int { return b.CreatedAt.Compare(a.CreatedAt) })
	total := int64(len(result))
	return paginate(result, params.Page, params.PageSize), total, nil
}
