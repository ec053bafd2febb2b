package domain

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayoutMethod is the external rail a withdrawal is sent over.
type PayoutMethod string

const (
	PayoutMethodMpesa PayoutMethod = "mpesa"
	PayoutMethodBank  PayoutMethod = "bank"
)

// PayoutStatus represents the administrative state of a withdrawal request.
type PayoutStatus string

const (
	PayoutStatusPending   PayoutStatus = "pending"
	PayoutStatusProcessed PayoutStatus = "processed"
	PayoutStatusRejected  PayoutStatus = "rejected"
)

// Payout is a withdrawal request. Funds are debited when it is created.
type Payout struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Method      PayoutMethod    `json:"method"`
	Destination string          `json:"destination"`
	Status      PayoutStatus    `json:"status"`
	Reference   string          `json:"reference"`
	Note        *string         `json:"note,omitempty"`
	ProcessedBy *uuid.UUID      `json:"processed_by,omitempty"`
	// IdempotencyKey is the client-supplied retry key, unique per user.
	IdempotencyKey string     `json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
	ProcessedAt    *time.Time `json:"processed_at,omitempty"`
}

// IsPending returns true while an administrator can still act on the payout.
func (p *Payout) IsPending() bool {
	return p.Status == PayoutStatusPending
}

// NewPayoutRef builds a withdrawal reference such as WDR-1718000000-3f2a9c1b.
func NewPayoutRef(now time.Time) string {
	return "WDR-" + strconv.FormatInt(now.Unix(), 10) + "-" + uuid.NewString()[:8]
}
