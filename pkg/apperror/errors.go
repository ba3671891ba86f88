package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
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
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Ledger Business Logic (LED) ----

func ErrInvalidAmount() *AppError {
	return New("LED_001", "Amount must be positive", http.StatusBadRequest)
}

func ErrNegativeInitialDeposit() *AppError {
	return New("LED_001", "Initial deposit must not be negative", http.StatusBadRequest)
}

func ErrInsufficientFunds() *AppError {
	return New("LED_002", "Insufficient funds", http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("LED_003", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Transfers (TRF) ----

func ErrInvalidTransfer() *AppError {
	return New("TRF_001", "Source and destination accounts must differ", http.StatusBadRequest)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// ErrStorageFailure wraps a database error. The cause is kept for logs and
// never serialized to clients.
func ErrStorageFailure(err error) *AppError {
	return Wrap("SYS_001", "Internal storage error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a LED_001-style validation error with a custom message.
func Validation(message string) *AppError {
	return New("LED_001", message, http.StatusBadRequest)
}
