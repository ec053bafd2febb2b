package dto

import "github.com/shopspring/decimal"

// InitiatePaymentRequest is the request body for POST /api/v1/payments.
type InitiatePaymentRequest struct {
	OrderID      string `json:"order_id" binding:"required,uuid"`
	Method       string `json:"method" binding:"required,max=20"`
	PayerAccount string `json:"payer_account,omitempty" binding:"max=100"`
}

// PaymentResponse is the response body for a payment attempt.
type PaymentResponse struct {
	ID            string  `json:"id"`
	PaymentRef    string  `json:"payment_ref"`
	OrderID       string  `json:"order_id"`
	Amount        string  `json:"amount"`
	Currency      string  `json:"currency"`
	Method        string  `json:"method"`
	Status        string  `json:"status"`
	Receipt       *string `json:"receipt,omitempty"`
	FailureReason *string `json:"failure_reason,omitempty"`
	CreatedAt     string  `json:"created_at"`
	CompletedAt   *string `json:"completed_at,omitempty"`
}

// EscrowResponse is the response body for an order's escrow.
type EscrowResponse struct {
	ID                 string  `json:"id"`
	OrderID            string  `json:"order_id"`
	Amount             string  `json:"amount"`
	FarmerShare        string  `json:"farmer_share"`
	PlatformCommission string  `json:"platform_commission"`
	Currency           string  `json:"currency"`
	Released           bool    `json:"released"`
	Disposition        string  `json:"disposition"`
	ReleasedAt         *string `json:"released_at,omitempty"`
}

// WalletResponse is the response for a balance query.
type WalletResponse struct {
	UserID   string `json:"user_id"`
	Balance  string `json:"balance"`
	Currency string `json:"currency"`
}

// WalletTransactionResponse is one ledger entry.
type WalletTransactionResponse struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Amount       string `json:"amount"`
	BalanceAfter string `json:"balance_after"`
	Reference    string `json:"reference"`
	Description  string `json:"description,omitempty"`
	CreatedAt    string `json:"created_at"`
}

// ListQuery holds pagination and filter query parameters.
type ListQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Type     string `form:"type" binding:"omitempty,max=20"`
	Status   string `form:"status" binding:"omitempty,oneof=pending processed rejected"`
}

// ListResponse wraps a paginated list.
type ListResponse[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// PayoutRequest is the request body for POST /api/v1/payouts. A retry key
// may be sent in the Idempotency-Key header.
type PayoutRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required,money"`
	Method      string          `json:"method" binding:"required,oneof=mpesa bank"`
	Destination string          `json:"destination" binding:"required,max=64"`
}

// ProcessPayoutRequest is the request body for marking a payout as paid out.
type ProcessPayoutRequest struct {
	Reference string `json:"reference" binding:"omitempty,max=100,safe_id"`
}

// RejectPayoutRequest is the request body for rejecting a payout.
type RejectPayoutRequest struct {
	Note string `json:"note" binding:"required,max=500"`
}

// PayoutResponse is the response body for a withdrawal request.
type PayoutResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Amount      string  `json:"amount"`
	Currency    string  `json:"currency"`
	Method      string  `json:"method"`
	Destination string  `json:"destination"`
	Status      string  `json:"status"`
	Reference   string  `json:"reference"`
	Note        *string `json:"note,omitempty"`
	CreatedAt   string  `json:"created_at"`
	ProcessedAt *string `json:"processed_at,omitempty"`
}

// DepositRequest is the request body for an administrative wallet credit.
type DepositRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required,money"`
	Reference   string          `json:"reference" binding:"required,max=100,safe_id"`
	Description string          `json:"description,omitempty" binding:"max=255"`
}

// GatewayCallbackRequest is the signed body of POST /api/v1/callbacks/gateway.
type GatewayCallbackRequest struct {
	Provider      string           `json:"provider" binding:"required,max=32,safe_id"`
	CorrelationID string           `json:"correlation_id" binding:"required,max=128,safe_id"`
	Success       bool             `json:"success"`
	ResultCode    int              `json:"result_code"`
	ResultDesc    string           `json:"result_desc,omitempty" binding:"max=255"`
	Receipt       string           `json:"receipt,omitempty" binding:"max=64"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	PayerAccount  string           `json:"payer_account,omitempty" binding:"max=100"`
}

// CallbackAck is returned to providers; Daraja expects ResultCode 0.
type CallbackAck struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
	Outcome    string `json:"outcome,omitempty"`
}
