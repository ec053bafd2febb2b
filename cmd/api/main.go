package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"settlement-ledger/config"
	"settlement-ledger/internal/adapter/gateway"
	httpHandler "settlement-ledger/internal/adapter/http/handler"
	"settlement-ledger/internal/adapter/metrics"
	"settlement-ledger/internal/adapter/notify"
	pgStorage "settlement-ledger/internal/adapter/storage/postgres"
	redisStorage "settlement-ledger/internal/adapter/storage/redis"
	"settlement-ledger/internal/core/ports"
	"settlement-ledger/internal/service"
	"settlement-ledger/pkg/logger"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting settlement ledger")

	rate, err := cfg.Settlement.Rate()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid commission rate")
	}
	platformAccount := uuid.Nil
	if cfg.Settlement.PlatformAccountID != "" {
		platformAccount, err = uuid.Parse(cfg.Settlement.PlatformAccountID)
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid platform account id")
		}
	} else {
		log.Warn().Msg("No platform account configured, commission will not be credited")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewRecorder(registry)

	// Initialize repositories
	orderRepo := pgStorage.NewOrderRepo(pool)
	paymentRepo := pgStorage.NewPaymentRepo(pool)
	escrowRepo := pgStorage.NewEscrowRepo(pool)
	walletRepo := pgStorage.NewWalletRepo(pool)
	entryRepo := pgStorage.NewWalletTransactionRepo(pool)
	payoutRepo := pgStorage.NewPayoutRepo(pool)
	notificationRepo := pgStorage.NewNotificationRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	deliveryGuard := redisStorage.NewDeliveryGuard(rdb)
	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Notifications
	hub := notify.NewHub(notificationRepo, cfg.Notify.PushBuffer, log)
	defer hub.Close()

	// Initialize core services
	sigSvc := service.NewHMACSignatureService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	auditSvc := service.NewAuditService(auditRepo, log)
	currency := cfg.Settlement.Currency

	walletSvc := service.NewWalletService(walletRepo, entryRepo, transactor, recorder, currency, log)
	escrowSvc := service.NewEscrowService(orderRepo, escrowRepo, paymentRepo, walletSvc, transactor,
		hub, recorder, rate, currency, platformAccount, log)
	confirmationSvc := service.NewConfirmationService(orderRepo, paymentRepo, deliveryGuard, transactor,
		hub, recorder, currency, log)

	gateways, closeGateways, err := gateway.FromConfig(cfg.Gateway, confirmationSvc,
		&http.Client{Timeout: cfg.Gateway.Timeout}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure payment gateways")
	}
	defer closeGateways()
	log.Info().Interface("methods", gateways.Methods()).Msg("Payment gateways registered")

	paymentSvc := service.NewPaymentService(orderRepo, paymentRepo, escrowSvc, walletSvc, gateways, transactor,
		hub, recorder, service.PaymentSettings{
			GatewayTimeout: cfg.Gateway.Timeout,
			ProcessingTTL:  cfg.Sweeper.ProcessingTTL,
			PendingTTL:     cfg.Sweeper.PendingTTL,
			Currency:       currency,
		}, log)
	payoutSvc := service.NewPayoutService(payoutRepo, walletSvc, idempotencyCache, transactor, hub, recorder, currency, log)
	querySvc := service.NewQueryService(walletRepo, entryRepo, escrowRepo, payoutRepo, notificationRepo, currency)

	// Expiry sweeper
	sweeper := service.NewSweeper(paymentSvc, cfg.Sweeper.Interval, log)
	sweeperDone := make(chan struct{})
	go func() {
		defer close(sweeperDone)
		sweeper.Run(ctx)
	}()

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		PaymentSvc:      paymentSvc,
		EscrowSvc:       escrowSvc,
		WalletSvc:       walletSvc,
		PayoutSvc:       payoutSvc,
		QuerySvc:        querySvc,
		Processor:       confirmationSvc,
		TokenSvc:        tokenSvc,
		SigSvc:          sigSvc,
		CallbackSecret:  cfg.Gateway.CallbackSecret,
		Currency:        currency,
		Stream:          hub,
		RateLimiter:     rateLimitStore,
		HealthCheckers:  []ports.HealthChecker{pgHealth, redisHealth},
		AuditSvc:        auditSvc,
		Metrics:         recorder,
		MetricsGatherer: registry,
		Logger:          log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	<-sweeperDone
	auditSvc.Close()

	log.Info().Msg("Server exited")
}
