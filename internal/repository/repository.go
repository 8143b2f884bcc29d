package repository

import (
	"context"

	"github.com/shoplite/checkout/internal/domain"
)

// CartRepository defines the interface for cart session persistence. Carts
// belong to exactly one checkout session and are discarded after checkout.
type CartRepository interface {
	// Get retrieves the cart for a customer.
	Get(ctx context.Context, customerID string) (*domain.Cart, error)

	// Save persists a cart, overwriting any existing cart for the customer.
	Save(ctx context.Context, cart *domain.Cart) error

	// Delete removes the customer's cart.
	Delete(ctx context.Context, customerID string) error
}
