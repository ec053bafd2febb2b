package handler

import (
	"math"
	"strconv"
	"time"

	"settlement-ledger/internal/adapter/http/dto"
	"settlement-ledger/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const timeLayout = time.RFC3339

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(timeLayout)
	return &s
}

// uuidParam parses a route parameter; ok is false for a malformed id.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	return id, err == nil
}

// pagination applies the list defaults: page 1, 20 per page, at most 100.
func pagination(q dto.ListQuery) (page, pageSize int) {
	page, pageSize = q.Page, q.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

func listResponse[T any](items []T, total int64, page, pageSize int) dto.ListResponse[T] {
	return dto.ListResponse[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	}
}

func toPaymentResponse(p *domain.Payment, currency string) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:            p.ID.String(),
		PaymentRef:    p.PaymentRef,
		OrderID:       p.OrderID.String(),
		Amount:        money(p.Amount),
		Currency:      currency,
		Method:        string(p.Method),
		Status:        string(p.Status),
		Receipt:       p.Receipt,
		FailureReason: p.FailureReason,
		CreatedAt:     p.CreatedAt.UTC().Format(timeLayout),
		CompletedAt:   formatTime(p.CompletedAt),
	}
}

func toEscrowResponse(e *domain.Escrow, currency string) dto.EscrowResponse {
	disposition := string(e.Disposition)
	if e.Disposition == domain.EscrowHeld {
		disposition = "held"
	}
	return dto.EscrowResponse{
		ID:                 e.ID.String(),
		OrderID:            e.OrderID.String(),
		Amount:             money(e.Amount),
		FarmerShare:        money(e.FarmerShare),
		PlatformCommission: money(e.PlatformCommission),
		Currency:           currency,
		Released:           e.Released,
		Disposition:        disposition,
		ReleasedAt:         formatTime(e.ReleasedAt),
	}
}

func toWalletResponse(w *domain.Wallet) dto.WalletResponse {
	return dto.WalletResponse{
		UserID:   w.UserID.String(),
		Balance:  money(w.Balance),
		Currency: w.Currency,
	}
}

func toWalletTransactionResponse(t *domain.WalletTransaction) dto.WalletTransactionResponse {
	return dto.WalletTransactionResponse{
		ID:           t.ID.String(),
		Type:         string(t.Type),
		Amount:       money(t.Amount),
		BalanceAfter: money(t.BalanceAfter),
		Reference:    t.Reference,
		Description:  t.Description,
		CreatedAt:    t.CreatedAt.UTC().Format(timeLayout),
	}
}

func toPayoutResponse(p *domain.Payout, currency string) dto.PayoutResponse {
	return dto.PayoutResponse{
		ID:          p.ID.String(),
		UserID:      p.UserID.String(),
		Amount:      money(p.Amount),
		Currency:    currency,
		Method:      string(p.Method),
		Destination: p.Destination,
		Status:      string(p.Status),
		Reference:   p.Reference,
		Note:        p.Note,
		CreatedAt:   p.CreatedAt.UTC().Format(timeLayout),
		ProcessedAt: formatTime(p.ProcessedAt),
	}
}

// limitQuery reads ?limit for notification listing, defaulting to 50.
func limitQuery(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 || limit > 200 {
		return 50
	}
	return limit
}
