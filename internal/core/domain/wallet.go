package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet is a user's stored-value account. Balance only changes together with
// an appended WalletTransaction.
type Wallet struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// EntryType is the kind of money movement recorded against a wallet.
type EntryType string

const (
	EntryDeposit    EntryType = "deposit"
	EntryWithdrawal EntryType = "withdrawal"
	EntryPayment    EntryType = "payment"
	EntryRefund     EntryType = "refund"
	EntryCommission EntryType = "commission"
)

// Valid reports whether t is a known entry type.
func (t EntryType) Valid() bool {
	switch t {
	case EntryDeposit, EntryWithdrawal, EntryPayment, EntryRefund, EntryCommission:
		return true
	}
	return false
}

// IsCredit returns true for entry types that increase the balance.
func (t EntryType) IsCredit() bool {
	return t == EntryDeposit || t == EntryRefund || t == EntryCommission
}

// WalletTransaction is an immutable ledger entry. Amount is always positive;
// the direction comes from Type.
type WalletTransaction struct {
	ID           uuid.UUID       `json:"id"`
	WalletID     uuid.UUID       `json:"wallet_id"`
	Type         EntryType       `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	Reference    string          `json:"reference"`
	Description  string          `json:"description,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Signed returns the amount with the sign it contributes to the balance.
func (t *WalletTransaction) Signed() decimal.Decimal {
	if t.Type.IsCredit() {
		return t.Amount
	}
	return t.Amount.Neg()
}

// SignedSum folds a transaction history into the balance it implies.
func SignedSum(txns []WalletTransaction) decimal.Decimal {
	sum := decimal.Zero
	for i := range txns {
		sum = sum.Add(txns[i].Signed())
	}
	return sum
}
