package apperror

import (
	"errors"
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

// HasCode reports whether err is, or wraps, an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

const (
	CodeSchemaSetup      = "SETUP_001"
	CodeDuplicatePayment = "LOG_001"
	CodeMissingField     = "LOG_002"
	CodeNotFound         = "LOG_003"
	CodeValidation       = "LOG_005"
	CodePayloadTooLarge  = "REQ_001"
	CodeRateLimited      = "RATE_001"
	CodeDatabase         = "SYS_001"
	CodeQueueFull        = "SYS_002"
	CodeProcessor        = "SYS_003"
)

// ---- Schema setup (SETUP) ----

// ErrSchemaSetup marks a failed namespace or table declaration. Fatal, never retried internally.
func ErrSchemaSetup(step string, err error) *AppError {
	return Wrap(CodeSchemaSetup, fmt.Sprintf("Schema setup failed at %s", step), http.StatusInternalServerError, err)
}

// ---- Payment log (LOG) ----

func ErrDuplicatePayment(err error) *AppError {
	return Wrap(CodeDuplicatePayment, "Payment with this id already exists", http.StatusConflict, err)
}

func ErrMissingField(err error) *AppError {
	return Wrap(CodeMissingField, "Required payment field is missing", http.StatusBadRequest, err)
}

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

// ---- Request (REQ) ----

func ErrPayloadTooLarge(limit int64) *AppError {
	return New(CodePayloadTooLarge, fmt.Sprintf("Request body exceeds %d bytes", limit), http.StatusRequestEntityTooLarge)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimited, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap(CodeDatabase, "Internal database error", http.StatusInternalServerError, err)
}

func ErrQueueFull() *AppError {
	return New(CodeQueueFull, "Payment queue is full", http.StatusServiceUnavailable)
}

func ErrProcessorUnavailable(err error) *AppError {
	return Wrap(CodeProcessor, "Payment processor unavailable", http.StatusBadGateway, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeDatabase, "Internal server error", http.StatusInternalServerError, err)
}
