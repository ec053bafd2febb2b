package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
)

const (
	defaultTxRetries     = 3
	defaultRetryInterval = 25 * time.Millisecond
)

// Transactor implements ports.DBTransactor using pgxpool.Pool.
type Transactor struct {
	pool          Pool
	maxRetries    uint64
	retryInterval time.Duration
}

// NewTransactor creates a new Transactor wrapping the connection pool.
func NewTransactor(pool Pool) *Transactor {
	return &Transactor{
		pool:          pool,
		maxRetries:    defaultTxRetries,
		retryInterval: defaultRetryInterval,
	}
}

// Begin starts a new database transaction.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return t.pool.Begin(ctx)
}

// WithTx runs fn inside a READ COMMITTED transaction. Row locks taken by the
// repositories provide isolation; serialization failures and deadlocks rerun
// fn with exponential backoff, every other error rolls back and is returned.
func (t *Transactor) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	attempt := func() error {
		dbTx, err := t.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
		if err != nil {
			return backoff.Permanent(fmt.Errorf("begin tx: %w", err))
		}
		defer dbTx.Rollback(ctx) //nolint:errcheck

		if err := fn(dbTx); err != nil {
			if isRetryable(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		if err := dbTx.Commit(ctx); err != nil {
			if isRetryable(err) {
				return err
			}
			return backoff.Permanent(fmt.Errorf("commit tx: %w", err))
		}
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = t.retryInterval
	b.MaxElapsedTime = 0
	return backoff.Retry(attempt, backoff.WithContext(backoff.WithMaxRetries(b, t.maxRetries), ctx))
}
