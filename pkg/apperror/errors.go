package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for callers deciding whether to retry.
type Kind string

const (
	KindValidation        Kind = "validation"
	KindAuthorization     Kind = "authorization"
	KindNotFound          Kind = "not_found"
	KindConflict          Kind = "conflict"
	KindInsufficientFunds Kind = "insufficient_funds"
	KindGateway           Kind = "gateway"
	KindGatewayRejected   Kind = "gateway_rejected"
	KindInternal          Kind = "internal"
	KindRateLimited       Kind = "rate_limited"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	Kind       Kind   `json:"-"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)

	// Fields maps request field names to what is wrong with them.
	Fields map[string]string `json:"fields,omitempty"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(kind Kind, code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Kind:       kind,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(kind Kind, code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Kind:       kind,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// KindOf returns the kind of the first AppError in err's chain, or
// KindInternal when err carries none.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// Retryable reports whether the same request may succeed if repeated unchanged.
// Gateway timeouts and outages, rate limits and internal (storage) failures are
// retryable. Validation, authorization, conflict, insufficient funds and a
// provider's outright refusal are terminal until the caller changes its input
// or re-reads state.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	switch KindOf(err) {
	case KindGateway, KindInternal, KindRateLimited:
		return true
	}
	return false
}

// ---- Validation (VAL) ----

func Validation(message string) *AppError {
	return New(KindValidation, "VAL_001", message, http.StatusBadRequest)
}

// InvalidFields reports per-field request validation failures.
func InvalidFields(fields map[string]string) *AppError {
	e := New(KindValidation, "VAL_001", "Request validation failed", http.StatusBadRequest)
	e.Fields = fields
	return e
}

func ErrInvalidAmount() *AppError {
	return New(KindValidation, "VAL_002", "Amount must be greater than zero", http.StatusBadRequest)
}

// ErrUnpayableAmount reports an amount the chosen payment method cannot collect.
func ErrUnpayableAmount(message string) *AppError {
	return New(KindValidation, "VAL_002", message, http.StatusBadRequest)
}

func ErrInvalidAccount(message string) *AppError {
	return New(KindValidation, "VAL_003", message, http.StatusBadRequest)
}

func ErrUnsupportedMethod(method string) *AppError {
	return New(KindValidation, "VAL_004", fmt.Sprintf("Unsupported payment method %q", method), http.StatusBadRequest)
}

func ErrBodyTooLarge(limit int64) *AppError {
	return New(KindValidation, "VAL_005", fmt.Sprintf("Request body exceeds %d bytes", limit), http.StatusRequestEntityTooLarge)
}

// ---- Authentication & authorization (AUTH) ----

func ErrInvalidToken() *AppError {
	return New(KindAuthorization, "AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbidden(message string) *AppError {
	return New(KindAuthorization, "AUTH_002", message, http.StatusForbidden)
}

func ErrInvalidSignature() *AppError {
	return New(KindAuthorization, "AUTH_003", "Invalid callback signature", http.StatusUnauthorized)
}

// ---- Payments (PAY) ----

func ErrNotFound(entity string) *AppError {
	return New(KindNotFound, "PAY_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrActivePaymentExists() *AppError {
	return New(KindConflict, "PAY_002", "Order already has an active or completed payment", http.StatusConflict)
}

func ErrInvalidTransition(from, to string) *AppError {
	return New(KindConflict, "PAY_003", fmt.Sprintf("Payment cannot move from %s to %s", from, to), http.StatusConflict)
}

func ErrPaymentNotCompleted() *AppError {
	return New(KindConflict, "PAY_004", "Order has no completed payment", http.StatusConflict)
}

// ---- Escrow (ESC) ----

func ErrEscrowReleased() *AppError {
	return New(KindConflict, "ESC_001", "Escrow already released", http.StatusConflict)
}

func ErrEscrowRefunded() *AppError {
	return New(KindConflict, "ESC_002", "Escrow already refunded to the buyer", http.StatusConflict)
}

// ---- Wallet & payouts (WAL) ----

func ErrInsufficientFunds() *AppError {
	return New(KindInsufficientFunds, "WAL_001", "Insufficient balance in wallet", http.StatusPaymentRequired)
}

func ErrPayoutNotPending(status string) *AppError {
	return New(KindConflict, "WAL_002", fmt.Sprintf("Payout is already %s", status), http.StatusConflict)
}

func ErrIdempotencyMismatch() *AppError {
	return New(KindConflict, "WAL_003", "Idempotency key was already used for a different request", http.StatusConflict)
}

// ---- Gateway (GW) ----

func ErrGatewayTimeout(err error) *AppError {
	return Wrap(KindGateway, "GW_001", "Payment gateway timed out; awaiting confirmation", http.StatusGatewayTimeout, err)
}

func ErrGatewayUnavailable(err error) *AppError {
	return Wrap(KindGateway, "GW_002", "Payment gateway unavailable", http.StatusBadGateway, err)
}

// ErrGatewayRejected is a definitive refusal; the payment has been marked failed.
func ErrGatewayRejected(reason string) *AppError {
	return New(KindGatewayRejected, "GW_003", fmt.Sprintf("Payment gateway rejected the request: %s", reason), http.StatusBadGateway)
}

// ---- Rate limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(KindRateLimited, "RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & infrastructure (SYS) ----

// InternalError wraps a storage or programming failure. The surrounding
// transaction has been rolled back by the time the caller sees it.
func InternalError(err error) *AppError {
	return Wrap(KindInternal, "SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrLockTimeout(err error) *AppError {
	return Wrap(KindInternal, "SYS_002", "Lock acquisition timeout", http.StatusServiceUnavailable, err)
}
