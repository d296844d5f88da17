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

// ---- Settings input (SET) ----

const (
	CodeInvalidUnit    = "SET_001"
	CodeInvalidFiat    = "SET_002"
	CodeInvalidRequest = "SET_003"
	CodeNotFound       = "SET_004"
)

// ErrInvalidUnit rejects a unit outside the supported set.
func ErrInvalidUnit(raw string, err error) *AppError {
	return Wrap(CodeInvalidUnit, fmt.Sprintf("Invalid unit %q", raw), http.StatusBadRequest, err)
}

// ErrInvalidFiat rejects a fiat currency outside the supported set.
func ErrInvalidFiat(raw string, err error) *AppError {
	return Wrap(CodeInvalidFiat, fmt.Sprintf("Invalid fiat %q", raw), http.StatusBadRequest, err)
}

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New(CodeInvalidRequest, message, http.StatusBadRequest)
}

// ErrBodyTooLarge rejects a request body over the configured limit.
func ErrBodyTooLarge() *AppError {
	return New(CodeInvalidRequest, "Request body too large", http.StatusRequestEntityTooLarge)
}

// IsInvalidInput reports whether err rejects a unit or fiat value.
func IsInvalidInput(err error) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code == CodeInvalidUnit || appErr.Code == CodeInvalidFiat
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrCacheError(err error) *AppError {
	return Wrap("SYS_002", "Cache unavailable", http.StatusServiceUnavailable, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
