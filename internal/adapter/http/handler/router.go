package handler

import (
	"settlement-ledger/internal/adapter/http/middleware"
	"settlement-ledger/internal/adapter/metrics"
	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// maxBodyBytes caps request bodies; Daraja callbacks are well under 4 KB.
const maxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	PaymentSvc      ports.PaymentService
	EscrowSvc       ports.EscrowLedger
	WalletSvc       ports.WalletLedger
	PayoutSvc       ports.PayoutProcessor
	QuerySvc        ports.LedgerQueries
	Processor       ports.ConfirmationProcessor
	TokenSvc        ports.TokenService
	SigSvc          ports.SignatureService
	CallbackSecret  string
	Currency        string
	Stream          NotificationStream // nil = websocket feed disabled
	RateLimiter     ports.RateLimiter  // nil = rate limiting disabled
	HealthCheckers  []ports.HealthChecker
	AuditSvc        ports.AuditService // nil = audit logging disabled
	Metrics         *metrics.Recorder  // nil = no /metrics endpoint
	MetricsGatherer prometheus.Gatherer
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBodyBytes))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.GinMiddleware())
	}

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Health check, pings every dependency
	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.MetricsGatherer != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler(deps.MetricsGatherer)))
	}

	rules := middleware.DefaultRateLimitRules()

	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimiter == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimiter, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Gateway callbacks (no JWT; matched against stored correlation ids) ---
	callbackHandler := NewCallbackHandler(deps.Processor, deps.Logger)
	callbacks := v1.Group("/callbacks", rl("callbacks"))
	{
		callbacks.POST("/mpesa", callbackHandler.Mpesa)
		callbacks.POST("/gateway",
			middleware.SignedCallback(deps.SigSvc, deps.CallbackSecret, deps.Logger),
			callbackHandler.Gateway)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	paymentHandler := NewPaymentHandler(deps.PaymentSvc, deps.Currency)
	payments := v1.Group("/payments", jwtAuth)
	{
		payments.POST("", rl("payments"), paymentHandler.Initiate)
		payments.GET("/:id", rl("reads"), paymentHandler.Get)
		payments.POST("/:id/cancel", rl("payments"), paymentHandler.Cancel)
	}

	escrowHandler := NewEscrowHandler(deps.EscrowSvc, deps.QuerySvc, deps.Currency)
	escrows := v1.Group("/escrows", jwtAuth)
	{
		escrows.GET("/:order_id", rl("reads"), escrowHandler.Get)
		escrows.POST("/:order_id/release", rl("settle"), escrowHandler.Release)
		escrows.POST("/:order_id/refund", adminOnly, rl("admin"), escrowHandler.Refund)
	}

	walletHandler := NewWalletHandler(deps.WalletSvc, deps.QuerySvc)
	wallet := v1.Group("/wallet", jwtAuth)
	{
		wallet.GET("", rl("reads"), walletHandler.GetWallet)
		wallet.GET("/transactions", rl("reads"), walletHandler.ListTransactions)
	}

	payoutHandler := NewPayoutHandler(deps.PayoutSvc, deps.QuerySvc, deps.Currency)
	payouts := v1.Group("/payouts", jwtAuth)
	{
		payouts.POST("", rl("payouts"), payoutHandler.Request)
		payouts.GET("", rl("reads"), payoutHandler.List)
	}

	notificationHandler := NewNotificationHandler(deps.QuerySvc, deps.Stream)
	notifications := v1.Group("/notifications", jwtAuth)
	{
		notifications.GET("", rl("reads"), notificationHandler.List)
		notifications.GET("/ws", notificationHandler.Stream)
	}

	admin := v1.Group("/admin", jwtAuth, adminOnly, rl("admin"))
	{
		admin.POST("/payouts/:id/process", payoutHandler.Process)
		admin.POST("/payouts/:id/reject", payoutHandler.Reject)
		admin.POST("/wallets/:user_id/deposit", walletHandler.Deposit)
		admin.GET("/wallets/:user_id/verify", walletHandler.Verify)
	}

	return r
}
