package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod is the funding source chosen for an order.
type PaymentMethod string

const (
	PaymentMethodMpesa  PaymentMethod = "mpesa"  // gateway push to the payer's phone
	PaymentMethodWallet PaymentMethod = "wallet" // internal wallet debit, settles synchronously
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodCrypto PaymentMethod = "crypto"
)

// Valid reports whether m is a supported method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodMpesa, PaymentMethodWallet, PaymentMethodCard, PaymentMethodCrypto:
		return true
	}
	return false
}

// UsesGateway reports whether the method settles through an external provider.
func (m PaymentMethod) UsesGateway() bool {
	return m.Valid() && m != PaymentMethodWallet
}

// ValidateAmount checks amount against what the method can collect. M-Pesa
// only moves whole shillings.
func (m PaymentMethod) ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errors.New("amount must be greater than zero")
	}
	if m == PaymentMethodMpesa && !amount.Equal(amount.Truncate(0)) {
		return fmt.Errorf("%s amounts must be whole shillings, got %s", m, amount.StringFixed(MinorUnitPlaces))
	}
	return nil
}

// PaymentStatus represents the lifecycle state of a payment attempt.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusCancelled  PaymentStatus = "cancelled"
)

// IsTerminal returns true for absorbing states.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusCompleted ||
		s == PaymentStatusFailed ||
		s == PaymentStatusCancelled
}

// transitions lists the allowed moves out of every non-terminal state.
var transitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending: {
		PaymentStatusProcessing,
		PaymentStatusCompleted, // wallet method
		PaymentStatusFailed,
		PaymentStatusCancelled,
	},
	PaymentStatusProcessing: {
		PaymentStatusCompleted,
		PaymentStatusFailed,
		PaymentStatusCancelled,
	},
}

// CanTransition reports whether a payment may move from one status to another.
func CanTransition(from, to PaymentStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Payment is a single attempt to pay for an order.
type Payment struct {
	ID            uuid.UUID       `json:"id"`
	PaymentRef    string          `json:"payment_ref"`
	OrderID       uuid.UUID       `json:"order_id"`
	PayerID       uuid.UUID       `json:"payer_id"`
	Amount        decimal.Decimal `json:"amount"`
	Method        PaymentMethod   `json:"method"`
	Status        PaymentStatus   `json:"status"`
	PayerAccount  string          `json:"payer_account,omitempty"`
	CorrelationID *string         `json:"correlation_id,omitempty"` // Provider matching key
	Receipt       *string         `json:"receipt,omitempty"`
	FailureReason *string         `json:"failure_reason,omitempty"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// IsTerminal returns true if the payment is in a final state.
func (p *Payment) IsTerminal() bool {
	return p.Status.IsTerminal()
}

// IsActive returns true while the payment still blocks a new attempt for its order.
// A completed payment keeps blocking: the order is already paid.
func (p *Payment) IsActive() bool {
	return !p.Status.IsTerminal() || p.Status == PaymentStatusCompleted
}

// NewPaymentRef builds a short human-facing reference such as PAY-1A2B3C4D.
func NewPaymentRef() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "PAY-" + strings.ToUpper(raw[:8])
}
