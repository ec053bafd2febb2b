package service

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"settlement-ledger/internal/adapter/metrics"
	"settlement-ledger/internal/adapter/storage/memory"
	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// recordingNotifier keeps every notification for assertions.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []domain.Notification
}

func (n *recordingNotifier) Notify(_ context.Context, notification domain.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification)
}

func (n *recordingNotifier) For(userID uuid.UUID) []domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []domain.Notification
	for _, sent := range n.sent {
		if sent.UserID == userID {
			out = append(out, sent)
		}
	}
	return out
}

// stubGateway answers every Initiate with the configured function.
type stubGateway struct {
	name     string
	mu       sync.Mutex
	calls    int
	initiate func(ctx context.Context, req ports.GatewayRequest) (*ports.GatewayResult, error)
}

func (g *stubGateway) Name() string { return g.name }

func (g *stubGateway) Initiate(ctx context.Context, req ports.GatewayRequest) (*ports.GatewayResult, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	if g.initiate == nil {
		return &ports.GatewayResult{CorrelationID: "ws_CO_" + req.PaymentID.String()}, nil
	}
	return g.initiate(ctx, req)
}

func (g *stubGateway) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

type stubResolver struct {
	gateway ports.PaymentGateway
}

func (r stubResolver) Resolve(method domain.PaymentMethod) (ports.PaymentGateway, error) {
	return r.gateway, nil
}

// harness wires every service over one in-memory store.
type harness struct {
	store         *memory.Store
	transactor    *memory.Transactor
	registry      *prometheus.Registry
	notifier      *recordingNotifier
	gateway       *stubGateway
	platform      uuid.UUID
	wallet        *WalletService
	escrow        *EscrowService
	payments      *PaymentServiceImpl
	confirmations *ConfirmationService
	payouts       *PayoutService
	queries       *QueryService
}

type harnessOption func(*harnessConfig)

type harnessConfig struct {
	guard      ports.DeliveryGuard
	idempCache ports.IdempotencyCache
	platform   uuid.UUID
	paymentTx  func(ports.DBTransactor) ports.DBTransactor
}

// withPaymentTransactor wraps the transactor seen by the payment service only.
func withPaymentTransactor(wrap func(ports.DBTransactor) ports.DBTransactor) harnessOption {
	return func(c *harnessConfig) { c.paymentTx = wrap }
}

// pausingTransactor holds the caller of the first transaction after it
// commits, until resume is closed.
type pausingTransactor struct {
	ports.DBTransactor
	paused    atomic.Bool
	committed chan struct{}
	resume    chan struct{}
}

func newPausingTransactor() *pausingTransactor {
	return &pausingTransactor{
		committed: make(chan struct{}),
		resume:    make(chan struct{}),
	}
}

func (p *pausingTransactor) wrap(inner ports.DBTransactor) ports.DBTransactor {
	p.DBTransactor = inner
	return p
}

func (p *pausingTransactor) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	err := p.DBTransactor.WithTx(ctx, fn)
	if p.paused.CompareAndSwap(false, true) {
		close(p.committed)
		<-p.resume
	}
	return err
}

func (p *pausingTransactor) waitCommitted(t *testing.T) {
	t.Helper()
	select {
	case <-p.committed:
	case <-time.After(2 * time.Second):
		t.Fatal("first transaction never committed")
	}
}

func withDeliveryGuard(g ports.DeliveryGuard) harnessOption {
	return func(c *harnessConfig) { c.guard = g }
}

func withIdempotencyCache(c ports.IdempotencyCache) harnessOption {
	return func(cfg *harnessConfig) { cfg.idempCache = c }
}

func withoutPlatformAccount() harnessOption {
	return func(c *harnessConfig) { c.platform = uuid.Nil }
}

func newHarness(t *testing.T, opts ...harnessOption) *harness {
	t.Helper()
	cfg := harnessConfig{platform: uuid.New()}
	for _, opt := range opts {
		opt(&cfg)
	}

	store := memory.New()
	transactor := memory.NewTransactor(store)
	registry := prometheus.NewRegistry()
	recorder := metrics.NewRecorder(registry)
	notifier := &recordingNotifier{}
	gateway := &stubGateway{name: "mpesa"}
	log := newTestLogger()

	var paymentTx ports.DBTransactor = transactor
	if cfg.paymentTx != nil {
		paymentTx = cfg.paymentTx(transactor)
	}

	wallet := NewWalletService(store.Wallets(), store.WalletTransactions(), transactor, recorder, "KES", log)
	escrow := NewEscrowService(store.Orders(), store.Escrows(), store.Payments(), wallet, transactor,
		notifier, recorder, dec("0.05"), "KES", cfg.platform, log)
	payments := NewPaymentService(store.Orders(), store.Payments(), escrow, wallet, stubResolver{gateway: gateway},
		paymentTx, notifier, recorder, PaymentSettings{
			GatewayTimeout: time.Second,
			ProcessingTTL:  15 * time.Minute,
			PendingTTL:     5 * time.Minute,
			Currency:       "KES",
		}, log)
	confirmations := NewConfirmationService(store.Orders(), store.Payments(), cfg.guard, transactor,
		notifier, recorder, "KES", log)
	payouts := NewPayoutService(store.Payouts(), wallet, cfg.idempCache, transactor, notifier, recorder, "KES", log)
	queries := NewQueryService(store.Wallets(), store.WalletTransactions(), store.Escrows(), store.Payouts(),
		store.Notifications(), "KES")

	return &harness{
		store:         store,
		transactor:    transactor,
		registry:      registry,
		notifier:      notifier,
		gateway:       gateway,
		platform:      cfg.platform,
		wallet:        wallet,
		escrow:        escrow,
		payments:      payments,
		confirmations: confirmations,
		payouts:       payouts,
		queries:       queries,
	}
}

// seedOrder stores a confirmed order between a fresh buyer and payee.
func (h *harness) seedOrder(total string) domain.Order {
	order := domain.Order{
		ID:          uuid.New(),
		BuyerID:     uuid.New(),
		PayeeID:     uuid.New(),
		TotalAmount: dec(total),
		Status:      domain.OrderStatusConfirmed,
	}
	h.store.PutOrder(order)
	return order
}

func (h *harness) fund(t *testing.T, userID uuid.UUID, amount string) {
	t.Helper()
	_, err := h.wallet.Credit(context.Background(), ports.EntryRequest{
		UserID:    userID,
		Amount:    dec(amount),
		Type:      domain.EntryDeposit,
		Reference: "TOPUP-" + amount,
	})
	require.NoError(t, err)
}

func (h *harness) balance(t *testing.T, userID uuid.UUID) decimal.Decimal {
	t.Helper()
	wallet, err := h.queries.GetWallet(context.Background(), userID)
	require.NoError(t, err)
	return wallet.Balance
}

// paidOrder returns an order whose wallet payment has completed.
func (h *harness) paidOrder(t *testing.T, total string) (domain.Order, *domain.Payment) {
	t.Helper()
	order := h.seedOrder(total)
	h.fund(t, order.BuyerID, total)
	payment, err := h.payments.Initiate(context.Background(), ports.InitiateRequest{
		OrderID: order.ID,
		Method:  domain.PaymentMethodWallet,
		Actor:   domain.Actor{UserID: order.BuyerID, Role: domain.RoleBuyer},
	})
	require.NoError(t, err)
	require.Equal(t, domain.PaymentStatusCompleted, payment.Status)
	return order, payment
}

func buyer(o domain.Order) domain.Actor {
	return domain.Actor{UserID: o.BuyerID, Role: domain.RoleBuyer}
}

func farmer(o domain.Order) domain.Actor {
	return domain.Actor{UserID: o.PayeeID, Role: domain.RoleFarmer}
}

func admin() domain.Actor {
	return domain.Actor{UserID: uuid.New(), Role: domain.RoleAdmin}
}

// counterValue sums the samples of a counter family matching labels.
func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	var total float64
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
	metrics:
		for _, m := range family.GetMetric() {
			for _, pair := range m.GetLabel() {
				if want, ok := labels[pair.GetName()]; ok && want != pair.GetValue() {
					continue metrics
				}
			}
			total += m.GetCounter().GetValue()
		}
	}
	return total
}

// decimalMatcher matches a decimal.Decimal by numeric value, ignoring scale.
type decimalMatcher struct{ want decimal.Decimal }

func decimalEq(s string) decimalMatcher { return decimalMatcher{want: dec(s)} }

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string { return "is decimal " + m.want.String() }

// seedPending inserts a payment that was never dispatched to a gateway.
func (h *harness) seedPending(t *testing.T, order domain.Order) *domain.Payment {
	t.Helper()
	now := time.Now().UTC()
	p := &domain.Payment{
		ID:           uuid.New(),
		PaymentRef:   domain.NewPaymentRef(),
		OrderID:      order.ID,
		PayerID:      order.BuyerID,
		Amount:       order.TotalAmount,
		Method:       domain.PaymentMethodMpesa,
		Status:       domain.PaymentStatusPending,
		PayerAccount: "254712345678",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	ctx := context.Background()
	require.NoError(t, h.transactor.WithTx(ctx, func(tx pgx.Tx) error {
		return h.store.Payments().Create(ctx, tx, p)
	}))
	return p
}

func (h *harness) payment(t *testing.T, id uuid.UUID) *domain.Payment {
	t.Helper()
	p, err := h.store.Payments().GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}
