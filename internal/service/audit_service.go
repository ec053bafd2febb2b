package service

import (
	"context"
	"sync"
	"time"

	"settlement-ledger/internal/core/domain"
	"settlement-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	auditQueueSize  = 256
	auditWriteWait  = 5 * time.Second
	auditDrainLimit = 10 * time.Second
)

// AuditService writes audit entries from a single background writer so a
// burst of settlement writes never fans out into unbounded goroutines. Every
// entry is logged; persisting is skipped when repo is nil.
type AuditService struct {
	repo  ports.AuditRepository
	log   zerolog.Logger
	queue chan *domain.AuditLog
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

var _ ports.AuditService = (*AuditService)(nil)

func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) *AuditService {
	s := &AuditService{
		repo:  repo,
		log:   log,
		queue: make(chan *domain.AuditLog, auditQueueSize),
		done:  make(chan struct{}),
	}
	go s.run()
	return s
}

// Log queues entry and returns immediately. When the queue is full the entry
// is logged and dropped.
func (s *AuditService) Log(_ context.Context, entry *domain.AuditLog) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	s.logEntry(entry)

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed || s.repo == nil {
		return
	}
	select {
	case s.queue <- entry:
	default:
		s.log.Warn().Str("audit_id", entry.ID.String()).Msg("audit queue full, entry not persisted")
	}
}

// Close stops accepting entries and waits for queued ones to be written.
func (s *AuditService) Close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.queue)
	}
	s.mu.Unlock()

	select {
	case <-s.done:
	case <-time.After(auditDrainLimit):
		s.log.Warn().Int("pending", len(s.queue)).Msg("audit queue not drained before shutdown")
	}
}

func (s *AuditService) run() {
	defer close(s.done)
	for entry := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), auditWriteWait)
		if err := s.repo.Create(ctx, entry); err != nil {
			s.log.Warn().Err(err).Str("action", string(entry.Action)).Msg("failed to persist audit log")
		}
		cancel()
	}
}

func (s *AuditService) logEntry(entry *domain.AuditLog) {
	evt := s.log.Info().
		Str("audit_id", entry.ID.String()).
		Str("action", string(entry.Action)).
		Str("resource_type", entry.ResourceType).
		Str("resource_id", entry.ResourceID).
		Str("ip", entry.IPAddress)
	if entry.ActorID != nil {
		evt = evt.Str("actor_id", entry.ActorID.String()).Str("actor_role", string(entry.ActorRole))
	}
	evt.Msg("audit")
}
