// Package errors provides custom error types for the controle-gastos API.
// All service-layer errors should use AppError to ensure consistent error
// responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Cycle errors.
var (
	ErrCycleNotFound  = &AppError{Code: "CYCLE_NOT_FOUND", Message: "Cycle not found", StatusCode: http.StatusNotFound}
	ErrNoActiveCycle  = &AppError{Code: "NO_ACTIVE_CYCLE", Message: "No active cycle", StatusCode: http.StatusNotFound}
	ErrNoCycleForDate = &AppError{Code: "NO_CYCLE_FOR_DATE", Message: "No cycle covers this date", StatusCode: http.StatusBadRequest}
)

// Fixed expense errors.
var (
	ErrFixedExpenseNotFound = &AppError{Code: "FIXED_EXPENSE_NOT_FOUND", Message: "Fixed expense not found", StatusCode: http.StatusNotFound}
)

// Transaction errors.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrInstallmentRequired = &AppError{Code: "INSTALLMENT_REQUIRED", Message: "An installment number is required for debt-linked transactions", StatusCode: http.StatusBadRequest}
)

// Investment and card errors.
var (
	ErrInvestmentNotFound = &AppError{Code: "INVESTMENT_NOT_FOUND", Message: "Investment not found", StatusCode: http.StatusNotFound}
	ErrCardNotFound       = &AppError{Code: "CARD_NOT_FOUND", Message: "Card not found", StatusCode: http.StatusNotFound}
)

// Debt errors.
var (
	ErrDebtNotFound = &AppError{Code: "DEBT_NOT_FOUND", Message: "Debt not found", StatusCode: http.StatusNotFound}
)
