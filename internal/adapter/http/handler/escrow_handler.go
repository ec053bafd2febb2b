package handler

import (
	"settlement-ledger/internal/adapter/http/middleware"
	"settlement-ledger/internal/core/ports"
	"settlement-ledger/pkg/apperror"
	"settlement-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// EscrowHandler handles escrow settlement endpoints.
type EscrowHandler struct {
	escrowSvc ports.EscrowLedger
	querySvc  ports.LedgerQueries
	currency  string
}

// NewEscrowHandler creates a new EscrowHandler.
func NewEscrowHandler(escrowSvc ports.EscrowLedger, querySvc ports.LedgerQueries, currency string) *EscrowHandler {
	return &EscrowHandler{escrowSvc: escrowSvc, querySvc: querySvc, currency: currency}
}

// Get handles GET /api/v1/escrows/:order_id.
func (h *EscrowHandler) Get(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	orderID, ok := uuidParam(c, "order_id")
	if !ok {
		response.Error(c, apperror.ErrNotFound("Escrow"))
		return
	}

	escrow, err := h.querySvc.GetEscrowByOrder(c.Request.Context(), orderID, actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toEscrowResponse(escrow, h.currency))
}

// Release handles POST /api/v1/escrows/:order_id/release.
func (h *EscrowHandler) Release(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	orderID, ok := uuidParam(c, "order_id")
	if !ok {
		response.Error(c, apperror.ErrNotFound("Order"))
		return
	}

	escrow, err := h.escrowSvc.Release(c.Request.Context(), orderID, actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toEscrowResponse(escrow, h.currency))
}

// Refund handles POST /api/v1/escrows/:order_id/refund (admin).
func (h *EscrowHandler) Refund(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	orderID, ok := uuidParam(c, "order_id")
	if !ok {
		response.Error(c, apperror.ErrNotFound("Order"))
		return
	}

	escrow, err := h.escrowSvc.Refund(c.Request.Context(), orderID, actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toEscrowResponse(escrow, h.currency))
}
