package service

import (
	"context"
	"time"

	"settlement-ledger/internal/core/ports"

	"github.com/rs/zerolog"
)

// Sweeper periodically expires payments that never reached a terminal state.
type Sweeper struct {
	payments ports.PaymentService
	interval time.Duration
	now      func() time.Time
	log      zerolog.Logger
}

// NewSweeper creates a Sweeper ticking every interval (one minute if unset).
func NewSweeper(payments ports.PaymentService, interval time.Duration, log zerolog.Logger) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{
		payments: payments,
		interval: interval,
		now:      time.Now,
		log:      log.With().Str("component", "sweeper").Logger(),
	}
}

// Run sweeps once per interval until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info().Dur("interval", s.interval).Msg("sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("sweeper stopped")
			return
		case <-ticker.C:
			s.SweepOnce(ctx)
		}
	}
}

// SweepOnce runs a single expiry pass.
func (s *Sweeper) SweepOnce(ctx context.Context) *ports.ExpiryReport {
	report, err := s.payments.ExpireStale(ctx, s.now().UTC())
	if err != nil {
		s.log.Error().Err(err).Msg("expiry sweep failed")
		return report
	}
	if report.Failed+report.Cancelled+report.Skipped > 0 {
		s.log.Info().
			Int("failed", report.Failed).
			Int("cancelled", report.Cancelled).
			Int("skipped", report.Skipped).
			Msg("expiry sweep finished")
	}
	return report
}
