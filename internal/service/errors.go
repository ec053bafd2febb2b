package service

import (
	"errors"
	"fmt"

	"settlement-ledger/pkg/apperror"
)

// asAppError passes typed errors through untouched and wraps anything else as
// an internal failure of op.
func asAppError(op string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.InternalError(fmt.Errorf("%s: %w", op, err))
}
