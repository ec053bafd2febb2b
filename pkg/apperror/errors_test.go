package apperror

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   ErrInsufficientFunds(),
			expected: "[WAL_001] Insufficient balance in wallet",
		},
		{
			name:     "with wrapped error",
			appErr:   InternalError(fmt.Errorf("connection refused")),
			expected: "[SYS_001] Internal server error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := context.DeadlineExceeded
	appErr := ErrGatewayTimeout(inner)

	assert.True(t, errors.Is(appErr, context.DeadlineExceeded))
	assert.Nil(t, ErrEscrowReleased().Unwrap())
}

func TestErrorCatalog(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		kind       Kind
		httpStatus int
	}{
		{"Validation", Validation("bad"), "VAL_001", KindValidation, 400},
		{"InvalidAmount", ErrInvalidAmount(), "VAL_002", KindValidation, 400},
		{"InvalidAccount", ErrInvalidAccount("bad phone"), "VAL_003", KindValidation, 400},
		{"UnsupportedMethod", ErrUnsupportedMethod("cheque"), "VAL_004", KindValidation, 400},
		{"BodyTooLarge", ErrBodyTooLarge(1024), "VAL_005", KindValidation, 413},
		{"InvalidToken", ErrInvalidToken(), "AUTH_001", KindAuthorization, 401},
		{"Forbidden", ErrForbidden("no"), "AUTH_002", KindAuthorization, 403},
		{"InvalidSignature", ErrInvalidSignature(), "AUTH_003", KindAuthorization, 401},
		{"NotFound", ErrNotFound("Payment"), "PAY_001", KindNotFound, 404},
		{"ActivePayment", ErrActivePaymentExists(), "PAY_002", KindConflict, 409},
		{"Transition", ErrInvalidTransition("processing", "cancelled"), "PAY_003", KindConflict, 409},
		{"NotCompleted", ErrPaymentNotCompleted(), "PAY_004", KindConflict, 409},
		{"EscrowReleased", ErrEscrowReleased(), "ESC_001", KindConflict, 409},
		{"EscrowRefunded", ErrEscrowRefunded(), "ESC_002", KindConflict, 409},
		{"InsufficientFunds", ErrInsufficientFunds(), "WAL_001", KindInsufficientFunds, 402},
		{"PayoutNotPending", ErrPayoutNotPending("processed"), "WAL_002", KindConflict, 409},
		{"IdempotencyMismatch", ErrIdempotencyMismatch(), "WAL_003", KindConflict, 409},
		{"GatewayTimeout", ErrGatewayTimeout(nil), "GW_001", KindGateway, 504},
		{"GatewayUnavailable", ErrGatewayUnavailable(nil), "GW_002", KindGateway, 502},
		{"GatewayRejected", ErrGatewayRejected("invalid msisdn"), "GW_003", KindGatewayRejected, 502},
		{"UnpayableAmount", ErrUnpayableAmount("whole shillings only"), "VAL_002", KindValidation, 400},
		{"RateLimit", ErrRateLimitExceeded(), "RATE_001", KindRateLimited, 429},
		{"Internal", InternalError(nil), "SYS_001", KindInternal, 500},
		{"LockTimeout", ErrLockTimeout(nil), "SYS_002", KindInternal, 503},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestKindOf_WrappedChain(t *testing.T) {
	err := fmt.Errorf("release escrow: %w", ErrEscrowReleased())

	assert.Equal(t, KindConflict, KindOf(err))
	assert.True(t, IsKind(err, KindConflict))
	assert.False(t, IsKind(err, KindValidation))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gateway timeout", ErrGatewayTimeout(context.DeadlineExceeded), true},
		{"gateway unavailable", ErrGatewayUnavailable(errors.New("503")), true},
		{"gateway rejected", ErrGatewayRejected("invalid msisdn"), false},
		{"storage failure", InternalError(errors.New("conn reset")), true},
		{"untyped error", errors.New("boom"), true},
		{"rate limited", ErrRateLimitExceeded(), true},
		{"validation", ErrInvalidAmount(), false},
		{"conflict", ErrActivePaymentExists(), false},
		{"insufficient funds", ErrInsufficientFunds(), false},
		{"forbidden", ErrForbidden("buyer only"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Retryable(tt.err))
		})
	}
}

func TestNotFoundEntity(t *testing.T) {
	err := ErrNotFound("Escrow")
	assert.Contains(t, err.Message, "Escrow")
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
}
