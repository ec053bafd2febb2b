// Package metrics exposes settlement events as Prometheus series.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

// Recorder implements ports.Metrics.
type Recorder struct {
	paymentTransitions *prometheus.CounterVec
	confirmations      *prometheus.CounterVec
	gatewayCalls       *prometheus.CounterVec
	gatewayLatency     *prometheus.HistogramVec
	walletEntries      *prometheus.CounterVec
	walletVolume       *prometheus.CounterVec
	escrowSettlements  *prometheus.CounterVec
	payoutDecisions    *prometheus.CounterVec
	paymentsExpired    *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
	httpLatency        *prometheus.HistogramVec
}

var _ ports.Metrics = (*Recorder)(nil)

// NewRecorder registers every series on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		paymentTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "settlement_payment_transitions_total",
			Help: "Payment records entering a status, by method",
		}, []string{"method", "status"}),
		confirmations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "settlement_confirmations_total",
			Help: "Gateway confirmations processed, by provider and outcome",
		}, []string{"provider", "outcome"}),
		gatewayCalls: f.NewCounterVec(prometheus.CounterOpts{
			Name: "settlement_gateway_calls_total",
			Help: "Outbound gateway initiations, by provider and outcome",
		}, []string{"provider", "outcome"}),
		gatewayLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "settlement_gateway_call_duration_seconds",
			Help:    "Latency of outbound gateway initiations",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"provider"}),
		walletEntries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "settlement_wallet_entries_total",
			Help: "Wallet ledger entries committed, by type",
		}, []string{"type"}),
		walletVolume: f.NewCounterVec(prometheus.CounterOpts{
			Name: "settlement_wallet_volume_total",
			Help: "Sum of committed wallet entry amounts, by type",
		}, []string{"type"}),
		escrowSettlements: f.NewCounterVec(prometheus.CounterOpts{
			Name: "settlement_escrow_settlements_total",
			Help: "Escrows settled, by disposition",
		}, []string{"disposition"}),
		payoutDecisions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "settlement_payout_decisions_total",
			Help: "Payout requests created or decided, by resulting status",
		}, []string{"status"}),
		paymentsExpired: f.NewCounterVec(prometheus.CounterOpts{
			Name: "settlement_payments_expired_total",
			Help: "Payments resolved by the expiry sweep, by resulting status",
		}, []string{"status"}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "settlement_http_requests_total",
			Help: "Total HTTP requests processed, labeled by status code",
		}, []string{"method", "route", "status"}),
		httpLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "settlement_http_request_duration_seconds",
			Help:    "Latency distribution of HTTP requests",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 5},
		}, []string{"method", "route"}),
	}
}

func (r *Recorder) PaymentTransition(method domain.PaymentMethod, status domain.PaymentStatus) {
	r.paymentTransitions.WithLabelValues(string(method), string(status)).Inc()
}

func (r *Recorder) ConfirmationApplied(provider string, outcome ports.ApplyOutcome) {
	r.confirmations.WithLabelValues(provider, string(outcome)).Inc()
}

func (r *Recorder) GatewayCall(provider string, outcome string, elapsed time.Duration) {
	r.gatewayCalls.WithLabelValues(provider, outcome).Inc()
	r.gatewayLatency.WithLabelValues(provider).Observe(elapsed.Seconds())
}

func (r *Recorder) WalletEntry(entryType domain.EntryType, amount decimal.Decimal) {
	r.walletEntries.WithLabelValues(string(entryType)).Inc()
	r.walletVolume.WithLabelValues(string(entryType)).Add(amount.InexactFloat64())
}

func (r *Recorder) EscrowSettled(disposition domain.EscrowDisposition) {
	r.escrowSettlements.WithLabelValues(string(disposition)).Inc()
}

func (r *Recorder) PayoutDecision(status domain.PayoutStatus) {
	r.payoutDecisions.WithLabelValues(string(status)).Inc()
}

func (r *Recorder) PaymentsExpired(status domain.PaymentStatus, count int) {
	if count > 0 {
		r.paymentsExpired.WithLabelValues(string(status)).Add(float64(count))
	}
}

// GinMiddleware records request counts and latency per matched route.
func (r *Recorder) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		timer := prometheus.NewTimer(r.httpLatency.WithLabelValues(c.Request.Method, route))
		c.Next()
		timer.ObserveDuration()
		r.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Handler serves the series gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
