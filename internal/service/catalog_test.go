package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplite/checkout/internal/domain"
	"github.com/shoplite/checkout/internal/store"
	apperrors "github.com/shoplite/checkout/pkg/errors"
)

func newCatalogService() *CatalogService {
	return NewCatalogService(store.New(), newTestLogger())
}

func TestCreateProduct(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, CreateProductInput{
		Name:  "TV",
		Price: 5000,
		Stock: 3,
		Shippable: &domain.ShippableInfo{
			WeightKG: 8,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "TV", p.Name)
	assert.Equal(t, 3, p.Stock)
	assert.True(t, p.IsShippable())
	assert.False(t, p.IsPerishable())
}

func TestCreateProduct_DuplicateName(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, CreateProductInput{Name: "Scratch Card", Price: 50, Stock: 10})
	require.NoError(t, err)

	_, err = svc.CreateProduct(ctx, CreateProductInput{Name: "Scratch Card", Price: 60, Stock: 5})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
}

func TestCreateProduct_Invalid(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, CreateProductInput{Name: "", Price: 10, Stock: 1})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = svc.CreateProduct(ctx, CreateProductInput{Name: "TV", Price: -1, Stock: 1})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	// A shippable product needs a positive weight.
	_, err = svc.CreateProduct(ctx, CreateProductInput{
		Name: "TV", Price: 5000, Stock: 3,
		Shippable: &domain.ShippableInfo{WeightKG: 0},
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestGetProduct(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, CreateProductInput{Name: "TV", Price: 5000, Stock: 3})
	require.NoError(t, err)

	p, err := svc.GetProduct(ctx, "TV")
	require.NoError(t, err)
	assert.Equal(t, 5000.0, p.Price)

	_, err = svc.GetProduct(ctx, "Flux Capacitor")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListProducts_Sorted(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	for _, name := range []string{"TV", "Biscuits 700g", "Scratch Card"} {
		_, err := svc.CreateProduct(ctx, CreateProductInput{Name: name, Price: 1, Stock: 1})
		require.NoError(t, err)
	}

	products, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Biscuits 700g", products[0].Name)
	assert.Equal(t, "Scratch Card", products[1].Name)
	assert.Equal(t, "TV", products[2].Name)
}

func TestRestockProduct(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, CreateProductInput{Name: "TV", Price: 5000, Stock: 1})
	require.NoError(t, err)

	p, err := svc.RestockProduct(ctx, "TV", 4)
	require.NoError(t, err)
	assert.Equal(t, 5, p.Stock)

	_, err = svc.RestockProduct(ctx, "TV", 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidQuantity)

	_, err = svc.RestockProduct(ctx, "Flux Capacitor", 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateCustomer(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	c, err := svc.CreateCustomer(ctx, CreateCustomerInput{ID: "mahmoud", Name: "Mahmoud", Balance: 10000})
	require.NoError(t, err)
	assert.Equal(t, 10000.0, c.Balance)

	_, err = svc.CreateCustomer(ctx, CreateCustomerInput{ID: "mahmoud", Name: "Someone Else", Balance: 1})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)

	_, err = svc.CreateCustomer(ctx, CreateCustomerInput{ID: "x", Name: "X", Balance: -5})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestGetCustomer(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	_, err := svc.CreateCustomer(ctx, CreateCustomerInput{ID: "mahmoud", Name: "Mahmoud", Balance: 10000})
	require.NoError(t, err)

	c, err := svc.GetCustomer(ctx, "mahmoud")
	require.NoError(t, err)
	assert.Equal(t, "Mahmoud", c.Name)

	_, err = svc.GetCustomer(ctx, "ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
