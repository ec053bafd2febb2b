package handler

import (
	"settlement-ledger/internal/adapter/http/dto"
	"settlement-ledger/internal/adapter/http/middleware"
	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"
	"settlement-ledger/pkg/apperror"
	"settlement-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler handles payment endpoints.
type PaymentHandler struct {
	paymentSvc ports.PaymentService
	currency   string
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentSvc ports.PaymentService, currency string) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc, currency: currency}
}

// Initiate handles POST /api/v1/payments. A payment still awaiting its
// gateway confirmation is answered with 202.
func (h *PaymentHandler) Initiate(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}
	dto.TrimStrings(&req)

	payment, err := h.paymentSvc.Initiate(c.Request.Context(), ports.InitiateRequest{
		OrderID:      uuid.MustParse(req.OrderID),
		Method:       domain.PaymentMethod(req.Method),
		PayerAccount: req.PayerAccount,
		Actor:        actor,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if payment.Status == domain.PaymentStatusCompleted {
		response.Created(c, toPaymentResponse(payment, h.currency))
		return
	}
	response.Accepted(c, toPaymentResponse(payment, h.currency))
}

// Get handles GET /api/v1/payments/:id.
func (h *PaymentHandler) Get(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		response.Error(c, apperror.ErrNotFound("Payment"))
		return
	}

	payment, err := h.paymentSvc.Get(c.Request.Context(), id, actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toPaymentResponse(payment, h.currency))
}

// Cancel handles POST /api/v1/payments/:id/cancel.
func (h *PaymentHandler) Cancel(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		response.Error(c, apperror.ErrNotFound("Payment"))
		return
	}

	payment, err := h.paymentSvc.Cancel(c.Request.Context(), id, actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toPaymentResponse(payment, h.currency))
}
