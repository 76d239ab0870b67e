// Package errors provides the typed failures returned by the curve engine.
// Every service-layer error is an *AppError so callers can branch on Kind
// and the HTTP layer can render a stable code without leaking internals.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure independently of its transport representation.
type Kind string

const (
	KindNotFound           Kind = "NotFound"
	KindValidationFailed   Kind = "ValidationFailed"
	KindConflict           Kind = "Conflict"
	KindNoEligibleSource   Kind = "NoEligibleSource"
	KindIntegrityViolation Kind = "IntegrityViolation"
	KindInternal           Kind = "Internal"
)

// AppError represents a structured application error with an error code,
// human-readable message, kind, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Kind       Kind   `json:"-"`
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
		Kind:       sentinel.Kind,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		Kind:       sentinel.Kind,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Newf is WithMessage with a format string.
func Newf(sentinel *AppError, format string, args ...any) *AppError {
	return WithMessage(sentinel, fmt.Sprintf(format, args...))
}

// IsKind reports whether err is an *AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return false
	}
	return appErr.Kind == kind
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", Kind: KindValidationFailed, StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", Kind: KindNotFound, StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", Kind: KindInternal, StatusCode: http.StatusInternalServerError}
	ErrUnauthorized   = &AppError{Code: "INVALID_API_KEY", Message: "Invalid or missing API key", StatusCode: http.StatusUnauthorized}
)

// Curve errors.
var (
	ErrCurveNotFound    = &AppError{Code: "CURVE_NOT_FOUND", Message: "Curve not found", Kind: KindNotFound, StatusCode: http.StatusNotFound}
	ErrEmptyInstruments = &AppError{Code: "EMPTY_INSTRUMENTS", Message: "At least 1 instrument is required", Kind: KindValidationFailed, StatusCode: http.StatusBadRequest}
	ErrDuplicateTenor   = &AppError{Code: "DUPLICATE_TENOR", Message: "Duplicate tenor found", Kind: KindValidationFailed, StatusCode: http.StatusBadRequest}
	ErrDuplicateCurve   = &AppError{Code: "DUPLICATE_CURVE", Message: "A curve with this name and date already exists", Kind: KindConflict, StatusCode: http.StatusConflict}
)

// Quote errors.
var (
	ErrIncompleteQuotes = &AppError{Code: "INCOMPLETE_QUOTES", Message: "All instruments must have quote values", Kind: KindValidationFailed, StatusCode: http.StatusBadRequest}
	ErrUnknownTenor     = &AppError{Code: "UNKNOWN_TENOR", Message: "No instrument found with this tenor", Kind: KindValidationFailed, StatusCode: http.StatusBadRequest}
	ErrDuplicateQuote   = &AppError{Code: "DUPLICATE_QUOTE", Message: "Tenor quoted more than once", Kind: KindValidationFailed, StatusCode: http.StatusBadRequest}
	ErrValueOutOfRange  = &AppError{Code: "VALUE_OUT_OF_RANGE", Message: "Quote value out of range", Kind: KindValidationFailed, StatusCode: http.StatusBadRequest}
)

// Roll errors.
var (
	ErrRollTargetExists   = &AppError{Code: "ROLL_TARGET_EXISTS", Message: "Target curve already exists", Kind: KindConflict, StatusCode: http.StatusConflict}
	ErrNoEligibleSource   = &AppError{Code: "NO_ELIGIBLE_SOURCE", Message: "No eligible prior version", Kind: KindNoEligibleSource, StatusCode: http.StatusUnprocessableEntity}
	ErrIntegrityViolation = &AppError{Code: "INTEGRITY_VIOLATION", Message: "Internal invariant violated", Kind: KindIntegrityViolation, StatusCode: http.StatusInternalServerError}
)
