package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"
	"settlement-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const idempotencyTTL = 24 * time.Hour

// PayoutService implements ports.PayoutProcessor.
type PayoutService struct {
	payouts    ports.PayoutRepository
	wallet     ports.WalletLedger
	idempCache ports.IdempotencyCache
	transactor ports.DBTransactor
	notifier   ports.Notifier
	metrics    ports.Metrics
	currency   string
	log        zerolog.Logger
}

var _ ports.PayoutProcessor = (*PayoutService)(nil)

// NewPayoutService creates a new PayoutService. idempCache may be nil.
func NewPayoutService(
	payouts ports.PayoutRepository,
	wallet ports.WalletLedger,
	idempCache ports.IdempotencyCache,
	transactor ports.DBTransactor,
	notifier ports.Notifier,
	metrics ports.Metrics,
	currency string,
	log zerolog.Logger,
) *PayoutService {
	return &PayoutService{
		payouts:    payouts,
		wallet:     wallet,
		idempCache: idempCache,
		transactor: transactor,
		notifier:   notifier,
		metrics:    metrics,
		currency:   currency,
		log:        log,
	}
}

// RequestPayout debits the wallet and records a pending withdrawal in one
// transaction. A repeated idempotency key returns the original payout.
func (s *PayoutService) RequestPayout(ctx context.Context, req ports.PayoutRequest) (*domain.Payout, error) {
	if req.UserID == uuid.Nil {
		return nil, apperror.Validation("user id is required")
	}
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if !req.Amount.Equal(req.Amount.Round(domain.MinorUnitPlaces)) {
		return nil, apperror.Validation("amount has more than two decimal places")
	}
	destination, err := domain.NormalizePayoutDestination(req.Method, req.Destination)
	if err != nil {
		return nil, apperror.ErrInvalidAccount(err.Error())
	}
	req.Destination = destination

	cacheKey := ""
	if req.IdempotencyKey != "" {
		cacheKey = req.UserID.String() + ":" + req.IdempotencyKey
		if cached := s.cachedPayout(ctx, cacheKey); cached != nil {
			if !samePayoutRequest(cached, req) {
				return nil, apperror.ErrIdempotencyMismatch()
			}
			return cached, nil
		}
	}

	payout, replayed, err := s.requestTx(ctx, req)
	if err != nil && req.IdempotencyKey != "" && errors.Is(err, ports.ErrDuplicate) {
		// Lost the race with a concurrent request carrying the same key.
		payout, replayed, err = s.requestTx(ctx, req)
	}
	if err != nil {
		return nil, asAppError("request payout", err)
	}
	if replayed {
		return payout, nil
	}

	if cacheKey != "" && s.idempCache != nil {
		if body, err := json.Marshal(payout); err == nil {
			if err := s.idempCache.Set(ctx, cacheKey, body, idempotencyTTL); err != nil {
				s.log.Warn().Err(err).Str("key", cacheKey).Msg("failed to cache payout idempotency in redis")
			}
		}
	}

	s.metrics.PayoutDecision(domain.PayoutStatusPending)
	s.metrics.WalletEntry(domain.EntryWithdrawal, payout.Amount)
	s.log.Info().
		Str("payout_id", payout.ID.String()).
		Str("user_id", payout.UserID.String()).
		Str("amount", payout.Amount.StringFixed(domain.MinorUnitPlaces)).
		Str("method", string(payout.Method)).
		Msg("payout requested")
	s.notifier.Notify(ctx, newNotification(payout.UserID, domain.NotificationPayout, payout.ID.String(),
		"Withdrawal requested",
		fmt.Sprintf("Your withdrawal of %s is pending review (ref %s)", formatMoney(s.currency, payout.Amount), payout.Reference)))
	return payout, nil
}

// requestTx reports replayed=true when the key matched an earlier request.
func (s *PayoutService) requestTx(ctx context.Context, req ports.PayoutRequest) (*domain.Payout, bool, error) {
	var (
		payout   *domain.Payout
		replayed bool
	)
	err := s.transactor.WithTx(ctx, func(tx pgx.Tx) error {
		payout, replayed = nil, false

		if req.IdempotencyKey != "" {
			existing, err := s.payouts.GetByIdempotencyKey(ctx, tx, req.UserID, req.IdempotencyKey)
			if err != nil {
				return apperror.InternalError(fmt.Errorf("lookup idempotency key: %w", err))
			}
			if existing != nil {
				if !samePayoutRequest(existing, req) {
					return apperror.ErrIdempotencyMismatch()
				}
				payout, replayed = existing, true
				return nil
			}
		}

		now := time.Now().UTC()
		p := &domain.Payout{
			ID:             uuid.New(),
			UserID:         req.UserID,
			Amount:         req.Amount,
			Method:         req.Method,
			Destination:    req.Destination,
			Status:         domain.PayoutStatusPending,
			Reference:      domain.NewPayoutRef(now),
			IdempotencyKey: req.IdempotencyKey,
			CreatedAt:      now,
		}
		if err := s.payouts.Create(ctx, tx, p); err != nil {
			return apperror.InternalError(fmt.Errorf("create payout: %w", err))
		}
		if _, err := s.wallet.DebitTx(ctx, tx, ports.EntryRequest{
			UserID:      req.UserID,
			Amount:      req.Amount,
			Type:        domain.EntryWithdrawal,
			Reference:   p.Reference,
			Description: fmt.Sprintf("Withdrawal to %s", req.Method),
		}); err != nil {
			return err
		}
		payout = p
		return nil
	})
	return payout, replayed, err
}

// Process marks a pending payout as paid out. reference, when given, is the
// external transfer reference and is kept as the note.
func (s *PayoutService) Process(ctx context.Context, payoutID uuid.UUID, actor domain.Actor, reference string) (*domain.Payout, error) {
	payout, err := s.decide(ctx, payoutID, actor, domain.PayoutStatusProcessed, reference, nil)
	if err != nil {
		return nil, err
	}
	s.notifier.Notify(ctx, newNotification(payout.UserID, domain.NotificationPayout, payout.ID.String(),
		"Withdrawal sent",
		fmt.Sprintf("Your withdrawal of %s has been sent (ref %s)", formatMoney(s.currency, payout.Amount), payout.Reference)))
	return payout, nil
}

// Reject declines a pending payout and credits the amount back to the wallet.
func (s *PayoutService) Reject(ctx context.Context, payoutID uuid.UUID, actor domain.Actor, note string) (*domain.Payout, error) {
	payout, err := s.decide(ctx, payoutID, actor, domain.PayoutStatusRejected, note, func(tx pgx.Tx, p *domain.Payout) error {
		_, err := s.wallet.CreditTx(ctx, tx, ports.EntryRequest{
			UserID:      p.UserID,
			Amount:      p.Amount,
			Type:        domain.EntryRefund,
			Reference:   p.Reference,
			Description: "Withdrawal rejected",
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	s.metrics.WalletEntry(domain.EntryRefund, payout.Amount)
	s.notifier.Notify(ctx, newNotification(payout.UserID, domain.NotificationPayout, payout.ID.String(),
		"Withdrawal rejected",
		fmt.Sprintf("Your withdrawal of %s was rejected and the funds returned to your wallet", formatMoney(s.currency, payout.Amount))))
	return payout, nil
}

func (s *PayoutService) decide(
	ctx context.Context,
	payoutID uuid.UUID,
	actor domain.Actor,
	status domain.PayoutStatus,
	note string,
	then func(tx pgx.Tx, p *domain.Payout) error,
) (*domain.Payout, error) {
	if !actor.IsAdmin() {
		return nil, apperror.ErrForbidden("Only an administrator can decide payouts")
	}

	var payout *domain.Payout
	err := s.transactor.WithTx(ctx, func(tx pgx.Tx) error {
		p, err := s.payouts.GetByIDForUpdate(ctx, tx, payoutID)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("lock payout: %w", err))
		}
		if p == nil {
			return apperror.ErrNotFound("Payout")
		}
		if !p.IsPending() {
			return apperror.ErrPayoutNotPending(string(p.Status))
		}

		now := time.Now().UTC()
		adminID := actor.UserID
		p.Status = status
		p.ProcessedBy = &adminID
		p.ProcessedAt = &now
		if note != "" {
			n := note
			p.Note = &n
		}
		if err := s.payouts.UpdateStatus(ctx, tx, p); err != nil {
			return apperror.InternalError(fmt.Errorf("update payout: %w", err))
		}
		if then != nil {
			if err := then(tx, p); err != nil {
				return err
			}
		}
		payout = p
		return nil
	})
	if err != nil {
		return nil, asAppError("decide payout", err)
	}

	s.metrics.PayoutDecision(payout.Status)
	s.log.Info().
		Str("payout_id", payout.ID.String()).
		Str("status", string(payout.Status)).
		Str("admin_id", actor.UserID.String()).
		Msg("payout decided")
	return payout, nil
}

func (s *PayoutService) cachedPayout(ctx context.Context, key string) *domain.Payout {
	if s.idempCache == nil {
		return nil
	}
	cached, err := s.idempCache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("redis idempotency check failed, falling through to DB")
		return nil
	}
	if cached == nil {
		return nil
	}
	var payout domain.Payout
	if err := json.Unmarshal(cached, &payout); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("discarding unreadable cached payout")
		return nil
	}
	return &payout
}

func samePayoutRequest(p *domain.Payout, req ports.PayoutRequest) bool {
	return p.UserID == req.UserID &&
		p.Amount.Equal(req.Amount) &&
		p.Method == req.Method &&
		p.Destination == req.Destination
}
