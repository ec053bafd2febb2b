package mpesa

import (
	"encoding/json"
	"errors"
	"fmt"

	"settlement-ledger/internal/core/domain"

	"github.com/shopspring/decimal"
)

// ResultCodeSuccess is the stkCallback ResultCode for a completed payment.
const ResultCodeSuccess = 0

// CallbackEnvelope is the body Daraja posts to the STK push CallBackURL.
type CallbackEnvelope struct {
	Body struct {
		StkCallback StkCallback `json:"stkCallback"`
	} `json:"Body"`
}

type StkCallback struct {
	MerchantRequestID string            `json:"MerchantRequestID"`
	CheckoutRequestID string            `json:"CheckoutRequestID"`
	ResultCode        int               `json:"ResultCode"`
	ResultDesc        string            `json:"ResultDesc"`
	CallbackMetadata  *CallbackMetadata `json:"CallbackMetadata,omitempty"`
}

type CallbackMetadata struct {
	Item []MetadataItem `json:"Item"`
}

// MetadataItem values are numbers or strings depending on the field.
type MetadataItem struct {
	Name  string          `json:"Name"`
	Value json.RawMessage `json:"Value,omitempty"`
}

// ParseCallback decodes a Daraja STK callback into a provider-neutral signal.
func ParseCallback(body []byte) (domain.ConfirmationSignal, error) {
	var env CallbackEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return domain.ConfirmationSignal{}, fmt.Errorf("decoding stk callback: %w", err)
	}
	cb := env.Body.StkCallback
	if cb.CheckoutRequestID == "" {
		return domain.ConfirmationSignal{}, errors.New("stk callback has no CheckoutRequestID")
	}

	signal := domain.ConfirmationSignal{
		Provider:      ProviderName,
		CorrelationID: cb.CheckoutRequestID,
		Success:       cb.ResultCode == ResultCodeSuccess,
		ResultCode:    cb.ResultCode,
		ResultDesc:    cb.ResultDesc,
	}
	if cb.CallbackMetadata == nil {
		return signal, nil
	}

	for _, item := range cb.CallbackMetadata.Item {
		switch item.Name {
		case "Amount":
			amount, err := decimalValue(item.Value)
			if err != nil {
				return domain.ConfirmationSignal{}, fmt.Errorf("stk callback Amount: %w", err)
			}
			signal.Amount = &amount
		case "MpesaReceiptNumber":
			signal.Receipt = stringValue(item.Value)
		case "PhoneNumber":
			signal.PayerAccount = stringValue(item.Value)
		}
	}
	return signal, nil
}

func decimalValue(raw json.RawMessage) (decimal.Decimal, error) {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(raw); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// stringValue renders a metadata value as text; phone numbers arrive as JSON numbers.
func stringValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
