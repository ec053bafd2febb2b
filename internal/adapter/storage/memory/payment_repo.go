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
)

// PaymentRepo implements ports.PaymentRepository.
type PaymentRepo struct{ s *Store }

// Payments returns the payment repository.
func (s *Store) Payments() *PaymentRepo { return &PaymentRepo{s: s} }

func blocksNewAttempt(status domain.PaymentStatus) bool {
	return status == domain.PaymentStatusPending ||
		status == domain.PaymentStatusProcessing ||
		status == domain.PaymentStatusCompleted
}

func (r *PaymentRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.Payment) error {
	if err := r.s.checkTx(tx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.injected("payments.create"); err != nil {
		return err
	}
	for _, existing := range r.s.payments {
		if existing.ID == p.ID {
			return fmt.Errorf("insert payment: %w: id %s", ports.ErrDuplicate, p.ID)
		}
		if existing.OrderID == p.OrderID && blocksNewAttempt(existing.Status) && blocksNewAttempt(p.Status) {
			return fmt.Errorf("insert payment: %w: order %s has an active payment", ports.ErrDuplicate, p.OrderID)
		}
	}
	r.s.payments[p.ID] = *p
	return nil
}

func (r *PaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.payments[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *PaymentRepo) GetByCorrelationID(ctx context.Context, correlationID string) (*domain.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.payments {
		if p.CorrelationID != nil && *p.CorrelationID == correlationID {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *PaymentRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Payment, error) {
	if err := r.s.checkTx(tx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *PaymentRepo) FindBlockingForUpdate(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) (*domain.Payment, error) {
	if err := r.s.checkTx(tx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var found *domain.Payment
	for _, p := range r.s.payments {
		if p.OrderID != orderID || !blocksNewAttempt(p.Status) {
			continue
		}
		if found == nil || p.CreatedAt.After(found.CreatedAt) {
			found = &p
		}
	}
	return found, nil
}

func (r *PaymentRepo) Update(ctx context.Context, tx pgx.Tx, p *domain.Payment) error {
	if err := r.s.checkTx(tx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.injected("payments.update"); err != nil {
		return err
	}
	existing, ok := r.s.payments[p.ID]
	if !ok {
		return fmt.Errorf("payment not found: %s", p.ID)
	}
	if p.CorrelationID != nil {
		for id, other := range r.s.payments {
			if id != p.ID && other.CorrelationID != nil && *other.CorrelationID == *p.CorrelationID {
				return fmt.Errorf("update payment: %w: correlation id %s", ports.ErrDuplicate, *p.CorrelationID)
			}
		}
	}
	existing.Status = p.Status
	existing.CorrelationID = p.CorrelationID
	existing.Receipt = p.Receipt
	existing.FailureReason = p.FailureReason
	existing.CompletedAt = p.CompletedAt
	existing.UpdatedAt = p.UpdatedAt
	r.s.payments[p.ID] = existing
	return nil
}

func (r *PaymentRepo) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var result []domain.Payment
	for _, p := range r.s.payments {
		if p.OrderID == orderID {
			result = append(result, p)
		}
	}
	slices.SortFunc(result, func(a, b domain.Payment) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return result, nil
}

func (r *PaymentRepo) ListStale(ctx context.Context, status domain.PaymentStatus, before time.Time, limit int) ([]uuid.UUID, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var stale []domain.Payment
	for _, p := range r.s.payments {
		if p.Status == status && p.UpdatedAt.Before(before) {
			stale = append(stale, p)
		}
	}
	slices.SortFunc(stale, func(a, b domain.Payment) int { return a.UpdatedAt.Compare(b.UpdatedAt) })
	if limit > 0 && len(stale) > limit {
		stale = stale[:limit]
	}
	ids := make([]uuid.UUID, 0, len(stale))
	for _, p := range stale {
		ids = append(ids, p.ID)
	}
	return ids, nil
}
