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

// ---- Cards (CARD) ----

func ErrCardNotFound() *AppError {
	return New("CARD_001", "Card not found", http.StatusNotFound)
}

func ErrInvalidCardNumber(err error) *AppError {
	return Wrap("CARD_002", "Invalid card number", http.StatusBadRequest, err)
}

func ErrInvalidFilter(filter string) *AppError {
	return New("CARD_003", fmt.Sprintf("invalid filter %q: must be all, positive, or negative", filter), http.StatusBadRequest)
}

func ErrInvalidCount(max int) *AppError {
	return New("CARD_004", fmt.Sprintf("count must be between 0 and %d", max), http.StatusBadRequest)
}

// ---- Requests (REQ) ----

// Validation returns a REQ_001 error for a malformed request.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}

func ErrBodyTooLarge(limit int64) *AppError {
	return New("REQ_002", fmt.Sprintf("request body exceeds %d bytes", limit), http.StatusRequestEntityTooLarge)
}

func ErrInvalidID(raw string) *AppError {
	return New("REQ_003", fmt.Sprintf("invalid card id %q", raw), http.StatusBadRequest)
}

// ---- System (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
