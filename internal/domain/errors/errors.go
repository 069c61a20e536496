// Package errors defines the application error contract: every error that
// reaches the delivery layer either implements AppError or is rendered as a
// generic internal error.
package errors

import (
	"fmt"
	"net/http"
	"strings"

	"portal/internal/domain/upstream"
	"portal/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User lookup errors
	ErrUserQueryAmbiguous = NewBaseError(
		http.StatusBadRequest,
		"USER_QUERY_AMBIGUOUS",
		"exactly one of uuid or email must be provided",
		"",
	)

	// Server selection errors
	ErrServerFilterConflict = NewBaseError(
		http.StatusBadRequest,
		"SERVER_FILTER_CONFLICT",
		"type and status filters are mutually exclusive",
		"",
	)

	ErrServerNotAvailable = NewBaseError(
		http.StatusNotFound,
		"SERVER_NOT_AVAILABLE",
		"no VPN server matches the requested criteria",
		"",
	)

	// Subscription enrichment errors
	ErrExpireDateInvalid = NewBaseError(
		http.StatusBadGateway,
		"EXPIRE_DATE_INVALID",
		"upstream returned an unparseable subscription expire date",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"request validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)

// UpstreamError is the typed exception a policy raises when an upstream call
// returns a failure envelope. It carries the upstream's HTTP code and its
// structured error list verbatim; the policy layer performs no
// re-interpretation and the delivery layer decides the final client-facing
// representation.
type UpstreamError struct {
	code  int
	items []upstream.ErrorItem
}

// NewUpstreamError creates an UpstreamError from a failure envelope's code
// and error list.
func NewUpstreamError(code int, items []upstream.ErrorItem) *UpstreamError {
	return &UpstreamError{
		code:  code,
		items: items,
	}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream call failed with status %d: %s", e.code, e.Details())
}

// HTTPCode returns the upstream's original HTTP status code
func (e *UpstreamError) HTTPCode() int {
	return e.code
}

// ErrorCode returns the first upstream error code, or a generic one
func (e *UpstreamError) ErrorCode() string {
	if len(e.items) > 0 && e.items[0].Code != "" {
		return e.items[0].Code
	}

	return "UPSTREAM_ERROR"
}

// Message returns the first upstream error phrase, or a generic one
func (e *UpstreamError) Message() string {
	if len(e.items) > 0 && e.items[0].Message != "" {
		return e.items[0].Message
	}

	return http.StatusText(e.code)
}

// Details returns all upstream errors joined into one string
func (e *UpstreamError) Details() string {
	if len(e.items) == 0 {
		return ""
	}

	parts := make([]string, 0, len(e.items))
	for _, item := range e.items {
		parts = append(parts, item.Code+": "+item.Message)
	}

	return strings.Join(parts, "; ")
}

// Items returns the upstream error list verbatim.
func (e *UpstreamError) Items() []upstream.ErrorItem {
	return e.items
}

// StepError marks which step of a non-atomic multi-step composition failed.
// Earlier steps have already taken effect and are not rolled back; callers
// that need compensation must drive it themselves.
type StepError struct {
	Step string // Name of the failed step, e.g. "resolve-pincode".
	Err  error
}

// NewStepError wraps err with the name of the failed step.
func NewStepError(step string, err error) *StepError {
	return &StepError{Step: step, Err: err}
}

// Error implements the error interface
func (e *StepError) Error() string {
	return fmt.Sprintf("step %q failed: %v", e.Step, e.Err)
}

// Unwrap exposes the underlying error so errors.As still finds AppError
// implementations behind the step marker.
func (e *StepError) Unwrap() error {
	return e.Err
}
