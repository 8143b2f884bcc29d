package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Standard sentinel errors for common cases. The first five form the
// checkout error taxonomy; all of them are recoverable, caller-facing
// conditions, none are process-fatal.
var (
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrExpiredProduct    = errors.New("expired product")
	ErrEmptyCart         = errors.New("empty cart")
	ErrInsufficientFunds = errors.New("insufficient funds")

	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrConflict      = errors.New("conflict")
	ErrInternal      = errors.New("internal error")
)

// AppError represents a structured application error with HTTP status mapping.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// InvalidQuantity creates a 400 error for a non-positive requested quantity.
func InvalidQuantity(quantity int) *AppError {
	return &AppError{
		Code:    "INVALID_QUANTITY",
		Message: fmt.Sprintf("quantity must be greater than 0, got %d", quantity),
		Status:  http.StatusBadRequest,
		Err:     ErrInvalidQuantity,
	}
}

// InsufficientStock creates a 409 error carrying the product name and the
// requested vs. available quantities, so the caller can act on it.
func InsufficientStock(product string, requested, available int) *AppError {
	return &AppError{
		Code:    "INSUFFICIENT_STOCK",
		Message: fmt.Sprintf("product %q: requested %d, only %d in stock", product, requested, available),
		Status:  http.StatusConflict,
		Err:     ErrInsufficientStock,
	}
}

// ExpiredProduct creates a 409 error for a perishable product past its expiry.
func ExpiredProduct(product string) *AppError {
	return &AppError{
		Code:    "EXPIRED_PRODUCT",
		Message: fmt.Sprintf("product %q has expired", product),
		Status:  http.StatusConflict,
		Err:     ErrExpiredProduct,
	}
}

// EmptyCart creates a 400 error for a checkout attempted on an empty cart.
func EmptyCart() *AppError {
	return &AppError{
		Code:    "EMPTY_CART",
		Message: "cart has no items, cannot proceed to checkout",
		Status:  http.StatusBadRequest,
		Err:     ErrEmptyCart,
	}
}

// InsufficientFunds creates a 422 error carrying the charge and the balance.
func InsufficientFunds(required, balance float64) *AppError {
	return &AppError{
		Code:    "INSUFFICIENT_FUNDS",
		Message: fmt.Sprintf("required %.2f exceeds balance %.2f", required, balance),
		Status:  http.StatusUnprocessableEntity,
		Err:     ErrInsufficientFunds,
	}
}

// NotFound creates a 404 error.
func NotFound(resource, id string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s with id %s not found", resource, id),
		Status:  http.StatusNotFound,
		Err:     ErrNotFound,
	}
}

// AlreadyExists creates a 409 error.
func AlreadyExists(resource, field, value string) *AppError {
	return &AppError{
		Code:    "ALREADY_EXISTS",
		Message: fmt.Sprintf("%s with %s %q already exists", resource, field, value),
		Status:  http.StatusConflict,
		Err:     ErrAlreadyExists,
	}
}

// InvalidInput creates a 400 error.
func InvalidInput(message string) *AppError {
	return &AppError{
		Code:    "INVALID_INPUT",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     ErrInvalidInput,
	}
}

// Conflict creates a 409 error.
func Conflict(message string) *AppError {
	return &AppError{
		Code:    "CONFLICT",
		Message: message,
		Status:  http.StatusConflict,
		Err:     ErrConflict,
	}
}

// Internal creates a 500 error.
func Internal(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// HTTPStatus returns the HTTP status code for the given error.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}

	switch {
	case errors.Is(err, ErrInvalidQuantity), errors.Is(err, ErrEmptyCart), errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrInsufficientStock), errors.Is(err, ErrExpiredProduct), errors.Is(err, ErrConflict), errors.Is(err, ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
