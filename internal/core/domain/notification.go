package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationPayment NotificationType = "payment"
	NotificationEscrow  NotificationType = "escrow"
	NotificationPayout  NotificationType = "payout"
)

// Notification is a user-facing message about a settlement event.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	RelatedID string           `json:"related_id,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
