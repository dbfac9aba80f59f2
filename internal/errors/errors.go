// Package errors provides custom error types for the BondBazaar API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
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

// Authentication & authorization errors.
var (
	ErrUnauthorized = &AppError{Code: "UNAUTHORIZED", Message: "Sign in to continue", StatusCode: http.StatusUnauthorized}
	ErrForbidden    = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Backend errors. The bond registry backend is a remote collaborator; query
// failures must surface as an error panel, never as an empty result.
var (
	ErrBackendUnavailable = &AppError{Code: "BACKEND_UNAVAILABLE", Message: "The bond registry is currently unavailable. Please try again.", StatusCode: http.StatusBadGateway}
)

// Bond errors.
var (
	ErrBondNotFound  = &AppError{Code: "BOND_NOT_FOUND", Message: "Bond not found", StatusCode: http.StatusNotFound}
	ErrBondNotActive = &AppError{Code: "BOND_NOT_ACTIVE", Message: "This bond is no longer open for investment", StatusCode: http.StatusConflict}
)

// Investment workflow errors.
var (
	ErrBelowMinimum      = &AppError{Code: "BELOW_MINIMUM", Message: "Amount is below the minimum investment", StatusCode: http.StatusBadRequest}
	ErrInvestFailed      = &AppError{Code: "INVEST_FAILED", Message: "Investment failed. Please try again.", StatusCode: http.StatusBadGateway}
	ErrInvestPending     = &AppError{Code: "INVEST_PENDING", Message: "Your investment is being processed", StatusCode: http.StatusConflict}
	ErrWorkflowNotFound  = &AppError{Code: "WORKFLOW_NOT_FOUND", Message: "Investment session not found or expired", StatusCode: http.StatusNotFound}
	ErrWorkflowCompleted = &AppError{Code: "WORKFLOW_COMPLETED", Message: "This investment has already been confirmed", StatusCode: http.StatusConflict}
	ErrWrongStep         = &AppError{Code: "WRONG_STEP", Message: "Action is not valid for the current step", StatusCode: http.StatusConflict}
)

// Profile errors.
var (
	ErrProfileNotFound = &AppError{Code: "PROFILE_NOT_FOUND", Message: "User profile not found", StatusCode: http.StatusNotFound}
)
