package postgres

import (
	"errors"
	"fmt"

	"settlement-ledger/internal/core/ports"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isRetryable reports whether rerunning the whole transaction may succeed.
func isRetryable(err error) bool {
	switch pgErrorCode(err) {
	case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
		return true
	}
	return false
}

// wrapInsert tags unique violations with ports.ErrDuplicate.
func wrapInsert(what string, err error) error {
	if pgErrorCode(err) == codeUniqueViolation {
		return fmt.Errorf("insert %s: %w: %v", what, ports.ErrDuplicate, err)
	}
	return fmt.Errorf("insert %s: %w", what, err)
}
