package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors_SentinelIdentity(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"invalid quantity", InvalidQuantity(0), ErrInvalidQuantity},
		{"insufficient stock", InsufficientStock("TV", 5, 3), ErrInsufficientStock},
		{"expired product", ExpiredProduct("Cheese 400g"), ErrExpiredProduct},
		{"empty cart", EmptyCart(), ErrEmptyCart},
		{"insufficient funds", InsufficientFunds(5541, 5000), ErrInsufficientFunds},
		{"not found", NotFound("product", "TV"), ErrNotFound},
		{"already exists", AlreadyExists("product", "name", "TV"), ErrAlreadyExists},
		{"invalid input", InvalidInput("bad"), ErrInvalidInput},
		{"conflict", Conflict("clash"), ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestSentinelIdentity_SurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("checkout: %w", InsufficientStock("TV", 5, 3))

	assert.ErrorIs(t, err, ErrInsufficientStock)

	var appErr *AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INSUFFICIENT_STOCK", appErr.Code)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid quantity", InvalidQuantity(-1), http.StatusBadRequest},
		{"empty cart", EmptyCart(), http.StatusBadRequest},
		{"invalid input", InvalidInput("bad"), http.StatusBadRequest},
		{"insufficient stock", InsufficientStock("TV", 5, 3), http.StatusConflict},
		{"expired product", ExpiredProduct("Cheese 400g"), http.StatusConflict},
		{"already exists", AlreadyExists("product", "name", "TV"), http.StatusConflict},
		{"insufficient funds", InsufficientFunds(5541, 5000), http.StatusUnprocessableEntity},
		{"not found", NotFound("customer", "ghost"), http.StatusNotFound},
		{"internal", Internal(errors.New("boom")), http.StatusInternalServerError},
		{"unknown", errors.New("plain"), http.StatusInternalServerError},
		{"wrapped sentinel", fmt.Errorf("ctx: %w", ErrInsufficientFunds), http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestAppError_Error(t *testing.T) {
	err := InsufficientStock("TV", 5, 3)
	assert.Contains(t, err.Error(), "INSUFFICIENT_STOCK")
	assert.Contains(t, err.Error(), `"TV"`)

	wrapped := Internal(errors.New("boom"))
	assert.Contains(t, wrapped.Error(), "boom")
}
