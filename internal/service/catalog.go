package service

import (
	"context"
	"log/slog"

	"github.com/shoplite/checkout/internal/domain"
	"github.com/shoplite/checkout/internal/store"
	apperrors "github.com/shoplite/checkout/pkg/errors"
)

// CatalogService manages the product catalog and customer accounts.
type CatalogService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(st *store.Store, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		store:  st,
		logger: logger,
	}
}

// CreateProductInput holds the parameters for adding a product to the catalog.
type CreateProductInput struct {
	Name       string                 `json:"name" validate:"required,min=1,max=200"`
	Price      float64                `json:"price" validate:"gte=0"`
	Stock      int                    `json:"stock" validate:"gte=0"`
	Perishable *domain.PerishableInfo `json:"perishable,omitempty"`
	Shippable  *domain.ShippableInfo  `json:"shippable,omitempty"`
}

// CreateProduct adds a product to the catalog. Product names are identity
// keys; creating a product with an existing name fails.
func (s *CatalogService) CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:       input.Name,
		Price:      input.Price,
		Stock:      input.Stock,
		Perishable: input.Perishable,
		Shippable:  input.Shippable,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	err := s.store.Update(func(tx *store.Tx) error {
		if _, err := tx.Product(product.Name); err == nil {
			return apperrors.AlreadyExists("product", "name", product.Name)
		}
		tx.PutProduct(product)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "product created",
		slog.String("product", product.Name),
		slog.Float64("price", product.Price),
		slog.Int("stock", product.Stock),
	)

	cp := *product
	return &cp, nil
}

// GetProduct returns a copy of the product with the given name.
func (s *CatalogService) GetProduct(ctx context.Context, name string) (*domain.Product, error) {
	if name == "" {
		return nil, apperrors.InvalidInput("product name is required")
	}

	var out domain.Product
	err := s.store.View(func(tx *store.Tx) error {
		p, err := tx.Product(name)
		if err != nil {
			return err
		}
		out = *p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListProducts returns all catalog products sorted by name.
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	err := s.store.View(func(tx *store.Tx) error {
		out = tx.Products()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RestockProduct increases a product's stock count.
func (s *CatalogService) RestockProduct(ctx context.Context, name string, quantity int) (*domain.Product, error) {
	if name == "" {
		return nil, apperrors.InvalidInput("product name is required")
	}
	if quantity <= 0 {
		return nil, apperrors.InvalidQuantity(quantity)
	}

	var out domain.Product
	err := s.store.Update(func(tx *store.Tx) error {
		p, err := tx.Product(name)
		if err != nil {
			return err
		}
		if err := p.Restock(quantity); err != nil {
			return err
		}
		out = *p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "product restocked",
		slog.String("product", name),
		slog.Int("quantity", quantity),
		slog.Int("stock", out.Stock),
	)

	return &out, nil
}

// CreateCustomerInput holds the parameters for opening a customer account.
type CreateCustomerInput struct {
	ID      string  `json:"id" validate:"required"`
	Name    string  `json:"name" validate:"required,min=1,max=200"`
	Balance float64 `json:"balance" validate:"gte=0"`
}

// CreateCustomer opens a customer account with an initial balance.
func (s *CatalogService) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	if input.ID == "" {
		return nil, apperrors.InvalidInput("customer id is required")
	}
	if input.Name == "" {
		return nil, apperrors.InvalidInput("customer name is required")
	}
	if input.Balance < 0 {
		return nil, apperrors.InvalidInput("customer balance must not be negative")
	}

	customer := &domain.Customer{
		ID:      input.ID,
		Name:    input.Name,
		Balance: input.Balance,
	}

	err := s.store.Update(func(tx *store.Tx) error {
		if _, err := tx.Customer(customer.ID); err == nil {
			return apperrors.AlreadyExists("customer", "id", customer.ID)
		}
		tx.PutCustomer(customer)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "customer created",
		slog.String("customer_id", customer.ID),
		slog.Float64("balance", customer.Balance),
	)

	cp := *customer
	return &cp, nil
}

// GetCustomer returns a copy of the customer account with the given ID.
func (s *CatalogService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("customer id is required")
	}

	var out domain.Customer
	err := s.store.View(func(tx *store.Tx) error {
		c, err := tx.Customer(id)
		if err != nil {
			return err
		}
		out = *c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
