// Package memory is an in-process implementation of the storage ports. It
// serialises transactions and restores a snapshot on rollback, which makes it
// a faithful stand-in for PostgreSQL row locks in tests and local runs.
package memory

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"

	"settlement-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNotInTx is returned when a transactional method gets a closed or foreign tx.
var ErrNotInTx = errors.New("memory: not in an open transaction")

// Store holds every table. Transactions are exclusive: Begin blocks until the
// previous transaction commits or rolls back.
type Store struct {
	txSem chan struct{}

	mu            sync.RWMutex
	orders        map[uuid.UUID]domain.Order
	payments      map[uuid.UUID]domain.Payment
	escrows       map[uuid.UUID]domain.Escrow // by order id
	wallets       map[uuid.UUID]domain.Wallet // by user id
	entries       []domain.WalletTransaction
	payouts       map[uuid.UUID]domain.Payout
	payoutKeys    map[string]uuid.UUID
	notifications []domain.Notification
	audits        []domain.AuditLog
	failOn        map[string]error
}

// New creates an empty store.
func New() *Store {
	return &Store{
		txSem:      make(chan struct{}, 1),
		orders:     make(map[uuid.UUID]domain.Order),
		payments:   make(map[uuid.UUID]domain.Payment),
		escrows:    make(map[uuid.UUID]domain.Escrow),
		wallets:    make(map[uuid.UUID]domain.Wallet),
		payouts:    make(map[uuid.UUID]domain.Payout),
		payoutKeys: make(map[string]uuid.UUID),
		failOn:     make(map[string]error),
	}
}

// PutOrder inserts or replaces an order. Orders belong to the marketplace, so
// this is how tests and local runs seed them.
func (s *Store) PutOrder(o domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = o
}

// Order returns a copy of an order.
func (s *Store) Order(id uuid.UUID) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	return o, ok
}

// FailOn makes the next call of op return err. Op names look like
// "wallet_transactions.create".
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failOn[op] = err
}

// injected must be called with mu held for writing.
func (s *Store) injected(op string) error {
	if err, ok := s.failOn[op]; ok {
		delete(s.failOn, op)
		return err
	}
	return nil
}

type snapshot struct {
	orders     map[uuid.UUID]domain.Order
	payments   map[uuid.UUID]domain.Payment
	escrows    map[uuid.UUID]domain.Escrow
	wallets    map[uuid.UUID]domain.Wallet
	entries    []domain.WalletTransaction
	payouts    map[uuid.UUID]domain.Payout
	payoutKeys map[string]uuid.UUID
}

func (s *Store) snapshot() *snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &snapshot{
		orders:     maps.Clone(s.orders),
		payments:   maps.Clone(s.payments),
		escrows:    maps.Clone(s.escrows),
		wallets:    maps.Clone(s.wallets),
		entries:    append([]domain.WalletTransaction(nil), s.entries...),
		payouts:    maps.Clone(s.payouts),
		payoutKeys: maps.Clone(s.payoutKeys),
	}
}

func (s *Store) restore(snap *snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = snap.orders
	s.payments = snap.payments
	s.escrows = snap.escrows
	s.wallets = snap.wallets
	s.entries = snap.entries
	s.payouts = snap.payouts
	s.payoutKeys = snap.payoutKeys
}

// Tx is the transaction handle passed to repositories. Only Commit and
// Rollback are implemented; the embedded pgx.Tx is nil.
type Tx struct {
	pgx.Tx
	store *Store
	snap  *snapshot
	done  bool
}

// Commit makes the transaction's writes permanent.
func (t *Tx) Commit(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	<-t.store.txSem
	return nil
}

// Rollback discards the transaction's writes. It is a no-op after Commit.
func (t *Tx) Rollback(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.store.restore(t.snap)
	<-t.store.txSem
	return nil
}

func (s *Store) checkTx(tx pgx.Tx) error {
	mt, ok := tx.(*Tx)
	if !ok || mt.store != s || mt.done {
		return ErrNotInTx
	}
	return nil
}

// Transactor implements ports.DBTransactor over a Store.
type Transactor struct {
	store *Store
}

// NewTransactor creates a transactor for s.
func NewTransactor(s *Store) *Transactor {
	return &Transactor{store: s}
}

// Begin waits for exclusive access and opens a transaction.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	select {
	case t.store.txSem <- struct{}{}:
	case <-ctx.Done():
		return nil, fmt.Errorf("begin transaction: %w", ctx.Err())
	}
	return &Tx{store: t.store, snap: t.store.snapshot()}, nil
}

// WithTx runs fn in a transaction, committing when fn returns nil.
func (t *Transactor) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := t.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// OrderRepo implements ports.OrderRepository.
type OrderRepo struct{ s *Store }

// Orders returns the order repository.
func (s *Store) Orders() *OrderRepo { return &OrderRepo{s: s} }

func (r *OrderRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Order, error) {
	if err := r.s.checkTx(tx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.OrderStatus) error {
	if err := r.s.checkTx(tx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.injected("orders.update_status"); err != nil {
		return err
	}
	o, ok := r.s.orders[id]
	if !ok {
		return fmt.Errorf("order not found: %s", id)
	}
	o.Status = status
	r.s.orders[id] = o
	return nil
}
