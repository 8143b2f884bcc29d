package domain

import (
	"time"

	apperrors "github.com/shoplite/checkout/pkg/errors"
)

// Clock returns the current time. Services take a Clock so tests can pin
// "now" instead of relying on the wall clock.
type Clock func() time.Time

// PerishableInfo marks a product as perishable with an expiry date.
type PerishableInfo struct {
	ExpiresAt time.Time `json:"expires_at"`
}

// ShippableInfo marks a product as a physical good with a shipping weight.
type ShippableInfo struct {
	WeightKG float64 `json:"weight_kg"`
}

// Product is a catalog entry: an inventory-backed sellable unit identified by
// name, with a unit price, a stock count, and optional capability attachments.
// A product may be perishable, shippable, both, or neither.
type Product struct {
	Name       string          `json:"name"`
	Price      float64         `json:"price"`
	Stock      int             `json:"stock"`
	Perishable *PerishableInfo `json:"perishable,omitempty"`
	Shippable  *ShippableInfo  `json:"shippable,omitempty"`
}

// IsPerishable reports whether the product carries the perishable capability.
func (p *Product) IsPerishable() bool {
	return p.Perishable != nil
}

// IsShippable reports whether the product carries the shippable capability.
func (p *Product) IsShippable() bool {
	return p.Shippable != nil
}

// IsExpired reports whether a perishable product's expiry date is strictly
// before the given time. Non-perishable products never expire.
func (p *Product) IsExpired(now time.Time) bool {
	if p.Perishable == nil {
		return false
	}
	return now.After(p.Perishable.ExpiresAt)
}

// Weight returns the shipping weight in kilograms, or 0 for non-shippable
// products.
func (p *Product) Weight() float64 {
	if p.Shippable == nil {
		return 0
	}
	return p.Shippable.WeightKG
}

// ReduceStock decrements the stock count by the given quantity. It fails if
// the quantity is not positive or exceeds the current stock; callers are
// expected to validate first, so a failure here indicates an upstream bug
// rather than a user-facing condition.
func (p *Product) ReduceStock(quantity int) error {
	if quantity <= 0 {
		return apperrors.InvalidQuantity(quantity)
	}
	if quantity > p.Stock {
		return apperrors.InsufficientStock(p.Name, quantity, p.Stock)
	}
	p.Stock -= quantity
	return nil
}

// Restock increments the stock count by the given quantity.
func (p *Product) Restock(quantity int) error {
	if quantity <= 0 {
		return apperrors.InvalidQuantity(quantity)
	}
	p.Stock += quantity
	return nil
}

// Validate checks the product's structural invariants.
func (p *Product) Validate() error {
	if p.Name == "" {
		return apperrors.InvalidInput("product name is required")
	}
	if p.Price < 0 {
		return apperrors.InvalidInput("product price must not be negative")
	}
	if p.Stock < 0 {
		return apperrors.InvalidInput("product stock must not be negative")
	}
	if p.Shippable != nil && p.Shippable.WeightKG <= 0 {
		return apperrors.InvalidInput("shippable product weight must be greater than 0")
	}
	if p.Perishable != nil && p.Perishable.ExpiresAt.IsZero() {
		return apperrors.InvalidInput("perishable product expiry date is required")
	}
	return nil
}
