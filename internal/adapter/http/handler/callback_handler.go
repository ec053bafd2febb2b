package handler

import (
	"io"
	"net/http"

	"settlement-ledger/internal/adapter/gateway/mpesa"
	"settlement-ledger/internal/adapter/http/dto"
	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"
	"settlement-ledger/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CallbackHandler receives asynchronous payment outcomes from gateways.
type CallbackHandler struct {
	processor ports.ConfirmationProcessor
	log       zerolog.Logger
}

// NewCallbackHandler creates a new CallbackHandler.
func NewCallbackHandler(processor ports.ConfirmationProcessor, log zerolog.Logger) *CallbackHandler {
	return &CallbackHandler{processor: processor, log: log}
}

// Mpesa handles POST /api/v1/callbacks/mpesa (Daraja STK result).
func (h *CallbackHandler) Mpesa(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.CallbackAck{ResultCode: 1, ResultDesc: "unreadable body"})
		return
	}

	signal, err := mpesa.ParseCallback(body)
	if err != nil {
		h.log.Warn().Err(err).Str("client_ip", c.ClientIP()).Msg("malformed mpesa callback")
		c.JSON(http.StatusBadRequest, dto.CallbackAck{ResultCode: 1, ResultDesc: "malformed callback"})
		return
	}
	h.apply(c, signal)
}

// Gateway handles POST /api/v1/callbacks/gateway. The body is signed and
// checked by middleware.SignedCallback before it gets here.
func (h *CallbackHandler) Gateway(c *gin.Context) {
	var req dto.GatewayCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.CallbackAck{ResultCode: 1, ResultDesc: err.Error()})
		return
	}

	h.apply(c, domain.ConfirmationSignal{
		Provider:      req.Provider,
		CorrelationID: req.CorrelationID,
		Success:       req.Success,
		ResultCode:    req.ResultCode,
		ResultDesc:    req.ResultDesc,
		Receipt:       req.Receipt,
		Amount:        req.Amount,
		PayerAccount:  req.PayerAccount,
	})
}

// apply acknowledges every outcome the ledger accepted or deliberately
// ignored. Transient failures and correlation ids not stored yet answer 5xx
// so the provider redelivers.
func (h *CallbackHandler) apply(c *gin.Context, signal domain.ConfirmationSignal) {
	outcome, err := h.processor.Apply(c.Request.Context(), signal)
	if err == nil && outcome == ports.ApplyUnknown {
		h.log.Warn().
			Str("provider", signal.Provider).
			Str("correlation_id", signal.CorrelationID).
			Msg("confirmation for unknown correlation id, asking provider to retry")
		c.JSON(http.StatusServiceUnavailable, dto.CallbackAck{ResultCode: 1, ResultDesc: "payment not found, retry later", Outcome: string(outcome)})
		return
	}
	if err != nil {
		if apperror.Retryable(err) {
			h.log.Error().Err(err).
				Str("provider", signal.Provider).
				Str("correlation_id", signal.CorrelationID).
				Msg("confirmation not applied, asking provider to retry")
			c.JSON(http.StatusInternalServerError, dto.CallbackAck{ResultCode: 1, ResultDesc: "temporarily unavailable"})
			return
		}
		h.log.Warn().Err(err).
			Str("provider", signal.Provider).
			Str("correlation_id", signal.CorrelationID).
			Msg("confirmation rejected")
		c.JSON(http.StatusOK, dto.CallbackAck{ResultCode: 0, ResultDesc: "rejected", Outcome: string(ports.ApplyIgnored)})
		return
	}
	c.JSON(http.StatusOK, dto.CallbackAck{ResultCode: 0, ResultDesc: "Accepted", Outcome: string(outcome)})
}
