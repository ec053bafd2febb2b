package memory

import (
	"context"
	"slices"

	"settlement-ledger/internal/core/domain"

	"github.com/google/uuid"
)

// NotificationRepo implements ports.NotificationRepository. Notifications
// are written outside settlement transactions and survive their rollback.
type NotificationRepo struct{ s *Store }

// Notifications returns the notification repository.
func (s *Store) Notifications() *NotificationRepo { return &NotificationRepo{s: s} }

func (r *NotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.injected("notifications.create"); err != nil {
		return err
	}
	r.s.notifications = append(r.s.notifications, *n)
	return nil
}

func (r *NotificationRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var result []domain.Notification
	for _, n := range slices.Backward(r.s.notifications) {
		if n.UserID != userID {
			continue
		}
		result = append(result, n)
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct{ s *Store }

// Audits returns the audit repository.
func (s *Store) Audits() *AuditRepo { return &AuditRepo{s: s} }

func (r *AuditRepo) Create(ctx context.Context, entry *domain.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.audits = append(r.s.audits, *entry)
	return nil
}

// Entries returns a copy of the audit trail, oldest first.
func (r *AuditRepo) Entries() []domain.AuditLog {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return slices.Clone(r.s.audits)
}
