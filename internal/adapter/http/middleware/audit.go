package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type auditRoute struct {
	action   domain.AuditAction
	resource string
	param    string // route parameter holding the resource id
}

// auditedRoutes maps "METHOD route-pattern" to the audited action.
var auditedRoutes = map[string]auditRoute{
	"POST /api/v1/payments":                       {domain.AuditActionPaymentInitiate, "payment", ""},
	"POST /api/v1/payments/:id/cancel":            {domain.AuditActionPaymentCancel, "payment", "id"},
	"POST /api/v1/escrows/:order_id/release":      {domain.AuditActionEscrowRelease, "escrow", "order_id"},
	"POST /api/v1/escrows/:order_id/refund":       {domain.AuditActionEscrowRefund, "escrow", "order_id"},
	"POST /api/v1/payouts":                        {domain.AuditActionPayoutRequest, "payout", ""},
	"POST /api/v1/admin/payouts/:id/process":      {domain.AuditActionPayoutProcess, "payout", "id"},
	"POST /api/v1/admin/payouts/:id/reject":       {domain.AuditActionPayoutReject, "payout", "id"},
	"POST /api/v1/admin/wallets/:user_id/deposit": {domain.AuditActionWalletDeposit, "wallet", "user_id"},
}

// AuditLog creates an audit middleware that records successful settlement
// writes made by authenticated callers.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only audit successful write operations (status 2xx)
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			return
		}

		route, ok := mapRouteToAction(c.Request.Method, c.FullPath())
		if !ok {
			return
		}

		entry := &domain.AuditLog{
			ID:           uuid.New(),
			Action:       route.action,
			ResourceType: route.resource,
			IPAddress:    c.ClientIP(),
			CreatedAt:    time.Now().UTC(),
		}
		if route.param != "" {
			entry.ResourceID = c.Param(route.param)
		}
		if actor, ok := ActorFrom(c); ok {
			id := actor.UserID
			entry.ActorID = &id
			entry.ActorRole = actor.Role
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"request_id": c.GetString(CtxRequestID),
		})
		entry.Details = string(details)

		auditSvc.Log(c.Request.Context(), entry)
	}
}

func mapRouteToAction(method, fullPath string) (auditRoute, bool) {
	route, ok := auditedRoutes[method+" "+fullPath]
	return route, ok
}
