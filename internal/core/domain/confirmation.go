package domain

import "github.com/shopspring/decimal"

// ConfirmationSignal is the provider-neutral outcome of a gateway payment,
// delivered asynchronously and matched only by CorrelationID.
type ConfirmationSignal struct {
	Provider      string           `json:"provider"`
	CorrelationID string           `json:"correlation_id"`
	Success       bool             `json:"success"`
	ResultCode    int              `json:"result_code"`
	ResultDesc    string           `json:"result_desc,omitempty"`
	Receipt       string           `json:"receipt,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"` // nil when the provider does not report it
	PayerAccount  string           `json:"payer_account,omitempty"`
}

// DeliveryKey identifies one logical delivery, so exact redeliveries can be
// recognised cheaply before any state is read.
func (s ConfirmationSignal) DeliveryKey() string {
	outcome := "fail"
	if s.Success {
		outcome = "ok"
	}
	return s.Provider + ":" + s.CorrelationID + ":" + outcome
}
