package ports

import (
	"context"

	"settlement-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentGateway abstracts an external funds-movement provider.
type PaymentGateway interface {
	// Name identifies the provider in logs, metrics and callback signals.
	Name() string
	// Initiate asks the provider to collect funds. A *GatewayRejection error
	// means the request was refused outright and no confirmation will follow;
	// any other error leaves the outcome unknown.
	Initiate(ctx context.Context, req GatewayRequest) (*GatewayResult, error)
}

// GatewayRequest is what a provider needs to collect a payment.
type GatewayRequest struct {
	PaymentID    uuid.UUID
	PayerAccount string
	Amount       decimal.Decimal
	Reference    string // human-facing payment reference
	Description  string
}

// GatewayResult carries the opaque id the provider will echo in its confirmation.
type GatewayResult struct {
	CorrelationID string
	Message       string
}

// GatewayRejection is returned when a provider refuses a request synchronously.
type GatewayRejection struct {
	Code   string
	Reason string
}

func (e *GatewayRejection) Error() string {
	if e.Code == "" {
		return "gateway rejected: " + e.Reason
	}
	return "gateway rejected [" + e.Code + "]: " + e.Reason
}

// GatewayResolver picks the provider for a payment method.
type GatewayResolver interface {
	Resolve(method domain.PaymentMethod) (PaymentGateway, error)
}
