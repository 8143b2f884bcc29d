package memory

import (
	"context"
	"sync"

	"github.com/shoplite/checkout/internal/domain"
	apperrors "github.com/shoplite/checkout/pkg/errors"
)

// CartRepository implements repository.CartRepository with an in-process map.
// Used by the demo driver and tests; the service deployment uses Redis.
type CartRepository struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

// NewCartRepository creates an empty in-memory cart repository.
func NewCartRepository() *CartRepository {
	return &CartRepository{
		carts: make(map[string]*domain.Cart),
	}
}

// Get retrieves the cart for a customer.
func (r *CartRepository) Get(_ context.Context, customerID string) (*domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[customerID]
	if !ok {
		return nil, apperrors.NotFound("cart", customerID)
	}

	cp := *cart
	cp.Lines = cart.Snapshot()
	return &cp, nil
}

// Save persists a cart, overwriting any existing cart for the customer.
func (r *CartRepository) Save(_ context.Context, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *cart
	cp.Lines = cart.Snapshot()
	r.carts[cart.CustomerID] = &cp
	return nil
}

// Delete removes the customer's cart.
func (r *CartRepository) Delete(_ context.Context, customerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, customerID)
	return nil
}
