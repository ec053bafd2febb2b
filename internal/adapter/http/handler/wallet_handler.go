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

// WalletHandler handles wallet balance, history and administrative credits.
type WalletHandler struct {
	walletSvc ports.WalletLedger
	querySvc  ports.LedgerQueries
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletLedger, querySvc ports.LedgerQueries) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc, querySvc: querySvc}
}

// GetWallet handles GET /api/v1/wallet.
func (h *WalletHandler) GetWallet(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	wallet, err := h.querySvc.GetWallet(c.Request.Context(), actor.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toWalletResponse(wallet))
}

// ListTransactions handles GET /api/v1/wallet/transactions.
func (h *WalletHandler) ListTransactions(c *gin.Context) {
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

	var entryType *domain.EntryType
	if q.Type != "" {
		t := domain.EntryType(q.Type)
		if !t.Valid() {
			response.Error(c, apperror.Validation("unknown entry type "+q.Type))
			return
		}
		entryType = &t
	}

	txns, total, err := h.querySvc.ListWalletTransactions(c.Request.Context(), actor.UserID, entryType, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.WalletTransactionResponse, 0, len(txns))
	for i := range txns {
		items = append(items, toWalletTransactionResponse(&txns[i]))
	}
	response.OK(c, listResponse(items, total, page, pageSize))
}

// Deposit handles POST /api/v1/admin/wallets/:user_id/deposit.
func (h *WalletHandler) Deposit(c *gin.Context) {
	userID, ok := uuidParam(c, "user_id")
	if !ok {
		response.Error(c, apperror.ErrInvalidAccount("user id must be a uuid"))
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}
	dto.TrimStrings(&req)

	entry, err := h.walletSvc.Credit(c.Request.Context(), ports.EntryRequest{
		UserID:      userID,
		Amount:      req.Amount,
		Type:        domain.EntryDeposit,
		Reference:   req.Reference,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toWalletTransactionResponse(entry))
}

// Verify handles GET /api/v1/admin/wallets/:user_id/verify.
func (h *WalletHandler) Verify(c *gin.Context) {
	userID, ok := uuidParam(c, "user_id")
	if !ok {
		response.Error(c, apperror.ErrInvalidAccount("user id must be a uuid"))
		return
	}

	audit, err := h.querySvc.VerifyWallet(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, audit)
}
