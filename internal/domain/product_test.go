package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/shoplite/checkout/pkg/errors"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

// ============================================================================
// Capability queries
// ============================================================================

func TestProduct_Capabilities_None(t *testing.T) {
	p := &Product{Name: "Scratch Card", Price: 50, Stock: 10}

	assert.False(t, p.IsPerishable())
	assert.False(t, p.IsShippable())
	assert.False(t, p.IsExpired(testNow))
	assert.Equal(t, 0.0, p.Weight())
}

func TestProduct_Capabilities_ShippableOnly(t *testing.T) {
	p := &Product{Name: "TV", Price: 5000, Stock: 3, Shippable: &ShippableInfo{WeightKG: 8}}

	assert.False(t, p.IsPerishable())
	assert.True(t, p.IsShippable())
	assert.Equal(t, 8.0, p.Weight())
}

func TestProduct_Capabilities_Both(t *testing.T) {
	p := &Product{
		Name:       "Cheese 400g",
		Price:      100,
		Stock:      5,
		Perishable: &PerishableInfo{ExpiresAt: testNow.AddDate(0, 0, 5)},
		Shippable:  &ShippableInfo{WeightKG: 0.2},
	}

	assert.True(t, p.IsPerishable())
	assert.True(t, p.IsShippable())
}

// ============================================================================
// Expiry
// ============================================================================

func TestIsExpired_BeforeExpiry(t *testing.T) {
	p := &Product{Name: "Milk", Perishable: &PerishableInfo{ExpiresAt: testNow.AddDate(0, 0, 2)}}
	assert.False(t, p.IsExpired(testNow))
}

func TestIsExpired_OnExpiryDate(t *testing.T) {
	// Expiry is strict: the product is still sellable at the expiry instant.
	p := &Product{Name: "Milk", Perishable: &PerishableInfo{ExpiresAt: testNow}}
	assert.False(t, p.IsExpired(testNow))
}

func TestIsExpired_AfterExpiry(t *testing.T) {
	p := &Product{Name: "Milk", Perishable: &PerishableInfo{ExpiresAt: testNow.AddDate(0, 0, -1)}}
	assert.True(t, p.IsExpired(testNow))
}

// ============================================================================
// Stock mutation
// ============================================================================

func TestReduceStock_Success(t *testing.T) {
	p := &Product{Name: "TV", Stock: 3}

	require.NoError(t, p.ReduceStock(2))
	assert.Equal(t, 1, p.Stock)
}

func TestReduceStock_ExactStock(t *testing.T) {
	p := &Product{Name: "TV", Stock: 3}

	require.NoError(t, p.ReduceStock(3))
	assert.Equal(t, 0, p.Stock)
}

func TestReduceStock_ExceedsStock(t *testing.T) {
	p := &Product{Name: "TV", Stock: 3}

	err := p.ReduceStock(4)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)
	assert.Equal(t, 3, p.Stock, "failed reduction must not mutate stock")
}

func TestReduceStock_NonPositiveQuantity(t *testing.T) {
	p := &Product{Name: "TV", Stock: 3}

	assert.ErrorIs(t, p.ReduceStock(0), apperrors.ErrInvalidQuantity)
	assert.ErrorIs(t, p.ReduceStock(-1), apperrors.ErrInvalidQuantity)
	assert.Equal(t, 3, p.Stock)
}

func TestRestock(t *testing.T) {
	p := &Product{Name: "TV", Stock: 1}

	require.NoError(t, p.Restock(4))
	assert.Equal(t, 5, p.Stock)

	assert.ErrorIs(t, p.Restock(0), apperrors.ErrInvalidQuantity)
}

// ============================================================================
// Validate
// ============================================================================

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		wantErr bool
	}{
		{"valid plain", Product{Name: "Card", Price: 50, Stock: 10}, false},
		{"valid both capabilities", Product{Name: "Cheese", Price: 100, Stock: 5,
			Perishable: &PerishableInfo{ExpiresAt: testNow},
			Shippable:  &ShippableInfo{WeightKG: 0.2}}, false},
		{"missing name", Product{Price: 50, Stock: 10}, true},
		{"negative price", Product{Name: "Card", Price: -1, Stock: 10}, true},
		{"negative stock", Product{Name: "Card", Price: 50, Stock: -1}, true},
		{"zero weight", Product{Name: "TV", Price: 5000, Stock: 3,
			Shippable: &ShippableInfo{WeightKG: 0}}, true},
		{"zero expiry", Product{Name: "Milk", Price: 10, Stock: 1,
			Perishable: &PerishableInfo{}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.product.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
