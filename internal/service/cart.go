package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shoplite/checkout/internal/domain"
	"github.com/shoplite/checkout/internal/event"
	"github.com/shoplite/checkout/internal/repository"
	"github.com/shoplite/checkout/internal/store"
	apperrors "github.com/shoplite/checkout/pkg/errors"
)

// CartService implements the cart accumulation rules: per-add stock and
// expiry checks against live catalog state, and merging of repeated additions
// of the same product. Adding never reserves stock; two carts can both
// believe stock is available until one of them checks out.
type CartService struct {
	store    *store.Store
	repo     repository.CartRepository
	producer *event.Producer
	logger   *slog.Logger
	clock    domain.Clock
}

// NewCartService creates a new cart service. producer may be nil to disable
// event publishing.
func NewCartService(st *store.Store, repo repository.CartRepository, producer *event.Producer, logger *slog.Logger, clock domain.Clock) *CartService {
	if clock == nil {
		clock = time.Now
	}
	return &CartService{
		store:    st,
		repo:     repo,
		producer: producer,
		logger:   logger,
		clock:    clock,
	}
}

// GetCart retrieves the cart for a customer. If no cart exists, returns an
// empty cart.
func (s *CartService) GetCart(ctx context.Context, customerID string) (*domain.Cart, error) {
	if customerID == "" {
		return nil, apperrors.InvalidInput("customer id is required")
	}

	cart, err := s.repo.Get(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.newEmptyCart(customerID), nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	return cart, nil
}

// AddItem adds quantity units of a product to the customer's cart. If the
// cart already has a line for the product, the quantities merge into one
// line, and the merged quantity is re-checked against current stock. The
// product's stock is not touched.
func (s *CartService) AddItem(ctx context.Context, customerID, productName string, quantity int) (*domain.Cart, error) {
	if customerID == "" {
		return nil, apperrors.InvalidInput("customer id is required")
	}
	if productName == "" {
		return nil, apperrors.InvalidInput("product name is required")
	}
	if quantity <= 0 {
		return nil, apperrors.InvalidQuantity(quantity)
	}

	cart, err := s.getOrCreateCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	now := s.clock()

	// Validate against live catalog state under the read lock.
	var product domain.Product
	err = s.store.View(func(tx *store.Tx) error {
		p, err := tx.Product(productName)
		if err != nil {
			return err
		}

		if p.IsExpired(now) {
			return apperrors.ExpiredProduct(p.Name)
		}

		requested := quantity
		if i := cart.FindLineIndex(productName); i >= 0 {
			requested += cart.Lines[i].Quantity
		}
		if requested > p.Stock {
			return apperrors.InsufficientStock(p.Name, requested, p.Stock)
		}

		product = *p
		return nil
	})
	if err != nil {
		return nil, err
	}

	if i := cart.FindLineIndex(productName); i >= 0 {
		cart.Lines[i].Quantity += quantity
		cart.Lines[i].UnitPrice = product.Price
	} else {
		cart.Lines = append(cart.Lines, domain.Line{
			ProductName: product.Name,
			UnitPrice:   product.Price,
			Quantity:    quantity,
		})
	}
	cart.UpdatedAt = now.UTC()

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.publishCartUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "item added to cart",
		slog.String("customer_id", customerID),
		slog.String("product", productName),
		slog.Int("quantity", quantity),
	)

	return cart, nil
}

// RemoveItem removes the line for a product from the cart.
func (s *CartService) RemoveItem(ctx context.Context, customerID, productName string) (*domain.Cart, error) {
	if customerID == "" {
		return nil, apperrors.InvalidInput("customer id is required")
	}
	if productName == "" {
		return nil, apperrors.InvalidInput("product name is required")
	}

	cart, err := s.repo.Get(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("get cart for remove: %w", err)
	}

	i := cart.FindLineIndex(productName)
	if i < 0 {
		return nil, apperrors.NotFound("cart line", productName)
	}
	cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
	cart.UpdatedAt = s.clock().UTC()

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.publishCartUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "item removed from cart",
		slog.String("customer_id", customerID),
		slog.String("product", productName),
	)

	return cart, nil
}

// ClearCart discards the customer's cart.
func (s *CartService) ClearCart(ctx context.Context, customerID string) error {
	if customerID == "" {
		return apperrors.InvalidInput("customer id is required")
	}

	if err := s.repo.Delete(ctx, customerID); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}

	s.logger.InfoContext(ctx, "cart cleared",
		slog.String("customer_id", customerID),
	)

	return nil
}

// publishCartUpdated publishes a cart.updated event; failures are logged, not
// returned.
func (s *CartService) publishCartUpdated(ctx context.Context, cart *domain.Cart) {
	if s.producer == nil {
		return
	}
	if err := s.producer.PublishCartUpdated(ctx, cart); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.updated event",
			slog.String("customer_id", cart.CustomerID),
			slog.String("error", err.Error()),
		)
	}
}

// getOrCreateCart retrieves the cart for a customer, creating an empty one if
// it does not exist.
func (s *CartService) getOrCreateCart(ctx context.Context, customerID string) (*domain.Cart, error) {
	cart, err := s.repo.Get(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.newEmptyCart(customerID), nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return cart, nil
}

// newEmptyCart creates a new empty cart for the given customer.
func (s *CartService) newEmptyCart(customerID string) *domain.Cart {
	now := s.clock().UTC()
	return &domain.Cart{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		Lines:      []domain.Line{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
