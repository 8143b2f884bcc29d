package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplite/checkout/internal/domain"
	apperrors "github.com/shoplite/checkout/pkg/errors"
)

func TestCartRepository_SaveAndGet(t *testing.T) {
	repo := NewCartRepository()
	ctx := context.Background()
	cart := &domain.Cart{
		ID:         "cart-1",
		CustomerID: "mahmoud",
		Lines:      []domain.Line{{ProductName: "TV", UnitPrice: 5000, Quantity: 1}},
	}

	require.NoError(t, repo.Save(ctx, cart))

	got, err := repo.Get(ctx, "mahmoud")
	require.NoError(t, err)
	assert.Equal(t, cart.ID, got.ID)
	assert.Equal(t, cart.Lines, got.Lines)
}

func TestCartRepository_GetMissing(t *testing.T) {
	repo := NewCartRepository()

	_, err := repo.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCartRepository_Delete(t *testing.T) {
	repo := NewCartRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.Cart{ID: "cart-1", CustomerID: "mahmoud"}))
	require.NoError(t, repo.Delete(ctx, "mahmoud"))

	_, err := repo.Get(ctx, "mahmoud")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Deleting a missing cart is not an error.
	assert.NoError(t, repo.Delete(ctx, "mahmoud"))
}

func TestCartRepository_CopiesInsulateCallers(t *testing.T) {
	repo := NewCartRepository()
	ctx := context.Background()
	cart := &domain.Cart{
		ID:         "cart-1",
		CustomerID: "mahmoud",
		Lines:      []domain.Line{{ProductName: "TV", UnitPrice: 5000, Quantity: 1}},
	}
	require.NoError(t, repo.Save(ctx, cart))

	// Mutating the original after save must not leak into the store.
	cart.Lines[0].Quantity = 99

	got, err := repo.Get(ctx, "mahmoud")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Lines[0].Quantity)

	// Likewise mutating a retrieved copy must not leak back.
	got.Lines[0].Quantity = 42
	again, err := repo.Get(ctx, "mahmoud")
	require.NoError(t, err)
	assert.Equal(t, 1, again.Lines[0].Quantity)
}
