package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MinorUnitPlaces is the number of decimal places kept for money amounts.
const MinorUnitPlaces = 2

// EscrowDisposition records how escrowed funds left the holding account.
type EscrowDisposition string

const (
	EscrowHeld     EscrowDisposition = ""
	EscrowReleased EscrowDisposition = "released"
	EscrowRefunded EscrowDisposition = "refunded"
)

// Escrow holds an order's funds split between the payee and the platform.
type Escrow struct {
	ID                 uuid.UUID         `json:"id"`
	OrderID            uuid.UUID         `json:"order_id"`
	BuyerID            uuid.UUID         `json:"buyer_id"`
	PayeeID            uuid.UUID         `json:"payee_id"`
	Amount             decimal.Decimal   `json:"amount"`
	FarmerShare        decimal.Decimal   `json:"farmer_share"`
	PlatformCommission decimal.Decimal   `json:"platform_commission"`
	Released           bool              `json:"released"`
	ReleasedAt         *time.Time        `json:"released_at,omitempty"`
	Disposition        EscrowDisposition `json:"disposition,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
}

// Settled returns true once the funds were released or refunded.
func (e *Escrow) Settled() bool {
	return e.Released || e.Disposition != EscrowHeld
}

// Reference is the wallet transaction reference used when the escrow settles.
func (e *Escrow) Reference() string {
	return "ESC-" + e.ID.String()
}

// SplitAmount divides amount into (farmerShare, commission). The commission is
// rounded half-up to the minor unit and the farmer share takes the remainder,
// so the two always sum to amount exactly.
func SplitAmount(amount, rate decimal.Decimal) (farmerShare, commission decimal.Decimal) {
	commission = amount.Mul(rate).Round(MinorUnitPlaces)
	farmerShare = amount.Sub(commission)
	return farmerShare, commission
}
