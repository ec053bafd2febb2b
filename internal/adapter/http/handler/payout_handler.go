package handler

import (
	"settlement-ledger/internal/adapter/http/dto"
	"settlement-ledger/internal/adapter/http/middleware"
	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"
	"settlement-ledger/pkg/apperror"
	"settlement-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// HeaderIdempotencyKey lets a client retry a payout request safely.
const HeaderIdempotencyKey = "Idempotency-Key"

// PayoutHandler handles withdrawal endpoints.
type PayoutHandler struct {
	payoutSvc ports.PayoutProcessor
	querySvc  ports.LedgerQueries
	currency  string
}

// NewPayoutHandler creates a new PayoutHandler.
func NewPayoutHandler(payoutSvc ports.PayoutProcessor, querySvc ports.LedgerQueries, currency string) *PayoutHandler {
	return &PayoutHandler{payoutSvc: payoutSvc, querySvc: querySvc, currency: currency}
}

// Request handles POST /api/v1/payouts.
func (h *PayoutHandler) Request(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.PayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}
	dto.TrimStrings(&req)

	key := c.GetHeader(HeaderIdempotencyKey)
	if len(key) > 128 {
		response.Error(c, apperror.Validation("Idempotency-Key must be at most 128 characters"))
		return
	}

	payout, err := h.payoutSvc.RequestPayout(c.Request.Context(), ports.PayoutRequest{
		UserID:         actor.UserID,
		Amount:         req.Amount,
		Method:         domain.PayoutMethod(req.Method),
		Destination:    req.Destination,
		IdempotencyKey: key,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toPayoutResponse(payout, h.currency))
}

// List handles GET /api/v1/payouts. Admins see every user's payouts.
func (h *PayoutHandler) List(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}
	page, pageSize := pagination(q)

	params := ports.PayoutListParams{Page: page, PageSize: pageSize}
	if !actor.IsAdmin() {
		params.UserID = &actor.UserID
	}
	if q.Status != "" {
		status := domain.PayoutStatus(q.Status)
		params.Status = &status
	}

	payouts, total, err := h.querySvc.ListPayouts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.PayoutResponse, 0, len(payouts))
	for i := range payouts {
		items = append(items, toPayoutResponse(&payouts[i], h.currency))
	}
	response.OK(c, listResponse(items, total, page, pageSize))
}

// Process handles POST /api/v1/admin/payouts/:id/process.
func (h *PayoutHandler) Process(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		response.Error(c, apperror.ErrNotFound("Payout"))
		return
	}

	var req dto.ProcessPayoutRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, dto.BindError(err))
			return
		}
	}

	payout, err := h.payoutSvc.Process(c.Request.Context(), id, actor, req.Reference)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toPayoutResponse(payout, h.currency))
}

// Reject handles POST /api/v1/admin/payouts/:id/reject.
func (h *PayoutHandler) Reject(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		response.Error(c, apperror.ErrNotFound("Payout"))
		return
	}

	var req dto.RejectPayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}
	dto.TrimStrings(&req)

	payout, err := h.payoutSvc.Reject(c.Request.Context(), id, actor, req.Note)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toPayoutResponse(payout, h.currency))
}
