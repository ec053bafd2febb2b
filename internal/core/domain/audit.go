package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionPaymentInitiate AuditAction = "PAYMENT_INITIATE"
	AuditActionPaymentCancel   AuditAction = "PAYMENT_CANCEL"
	AuditActionEscrowRelease   AuditAction = "ESCROW_RELEASE"
	AuditActionEscrowRefund    AuditAction = "ESCROW_REFUND"
	AuditActionPayoutRequest   AuditAction = "PAYOUT_REQUEST"
	AuditActionPayoutProcess   AuditAction = "PAYOUT_PROCESS"
	AuditActionPayoutReject    AuditAction = "PAYOUT_REJECT"
	AuditActionWalletDeposit   AuditAction = "WALLET_DEPOSIT"
)

// AuditLog records a single settlement write performed through the API.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	ActorID      *uuid.UUID  `json:"actor_id,omitempty"`
	ActorRole    Role        `json:"actor_role,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
