package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes grouped by concern.
const (
	CodeValidation        = "VAL_001"
	CodeInsufficientStock = "STK_001"
	CodeInsufficientFunds = "PAY_001"
	CodeInvalidAmount     = "PAY_002"
	CodeNotFound          = "RES_001"
	CodeInternal          = "SYS_001"
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

// ---- Validation (VAL) ----

// Validation covers malformed input, illegal state transitions and
// missing referenced entities.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

// Validationf is Validation with a format string.
func Validationf(format string, args ...any) *AppError {
	return New(CodeValidation, fmt.Sprintf(format, args...), http.StatusBadRequest)
}

// ---- Inventory (STK) ----

func ErrInsufficientStock(product string) *AppError {
	return New(CodeInsufficientStock, fmt.Sprintf("Insufficient stock for product %s", product), http.StatusConflict)
}

// ---- Wallet & Payments (PAY) ----

func ErrInsufficientFunds() *AppError {
	return New(CodeInsufficientFunds, "Insufficient balance in wallet", http.StatusPaymentRequired)
}

func ErrInvalidAmount() *AppError {
	return New(CodeInvalidAmount, "Invalid amount", http.StatusBadRequest)
}

// ---- Resources (RES) ----

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap(CodeInternal, "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

// IsCode reports whether err is, or wraps, an *AppError carrying the
// given code.
func IsCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}
