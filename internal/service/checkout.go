package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/shoplite/checkout/internal/domain"
	"github.com/shoplite/checkout/internal/event"
	"github.com/shoplite/checkout/internal/repository"
	"github.com/shoplite/checkout/internal/store"
	apperrors "github.com/shoplite/checkout/pkg/errors"
)

var (
	checkoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkouts_total",
			Help: "Total number of checkout attempts by outcome",
		},
		[]string{"outcome"},
	)

	checkoutAmountTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "checkout_amount_total",
			Help: "Total amount charged by successful checkouts",
		},
	)
)

// CheckoutService converts a cart into a paid, stock-reduced transaction.
// The whole operation either succeeds (balance debited, every line's stock
// reduced, a result produced) or fails with no mutation at all: every
// validation runs before the first mutation, inside one critical section over
// the catalog and accounts.
type CheckoutService struct {
	store    *store.Store
	carts    repository.CartRepository
	producer *event.Producer
	logger   *slog.Logger
	clock    domain.Clock
}

// NewCheckoutService creates a new checkout service. producer may be nil to
// disable event publishing.
func NewCheckoutService(st *store.Store, carts repository.CartRepository, producer *event.Producer, logger *slog.Logger, clock domain.Clock) *CheckoutService {
	if clock == nil {
		clock = time.Now
	}
	return &CheckoutService{
		store:    st,
		carts:    carts,
		producer: producer,
		logger:   logger,
		clock:    clock,
	}
}

// Checkout runs the checkout for the customer's current cart. Expiry and
// stock are re-checked against live catalog state, not the add-time
// snapshots: time may have elapsed and stock may have shifted since the items
// went into the cart. On success the cart is discarded.
func (s *CheckoutService) Checkout(ctx context.Context, customerID string) (*domain.CheckoutResult, error) {
	if customerID == "" {
		return nil, apperrors.InvalidInput("customer id is required")
	}

	cart, err := s.carts.Get(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			checkoutsTotal.WithLabelValues("empty_cart").Inc()
			return nil, apperrors.EmptyCart()
		}
		return nil, fmt.Errorf("get cart for checkout: %w", err)
	}
	if cart.IsEmpty() {
		checkoutsTotal.WithLabelValues("empty_cart").Inc()
		return nil, apperrors.EmptyCart()
	}

	now := s.clock()
	var result domain.CheckoutResult

	err = s.store.Update(func(tx *store.Tx) error {
		customer, err := tx.Customer(customerID)
		if err != nil {
			return err
		}

		// Validation phase. Nothing below mutates until every check has
		// passed.
		products := make([]*domain.Product, len(cart.Lines))
		lines := make([]domain.ReceiptLine, len(cart.Lines))
		var parcels []domain.Parcel
		var subtotal float64

		for i, line := range cart.Lines {
			p, err := tx.Product(line.ProductName)
			if err != nil {
				return err
			}

			if p.IsExpired(now) {
				return apperrors.ExpiredProduct(p.Name)
			}
			if line.Quantity > p.Stock {
				return apperrors.InsufficientStock(p.Name, line.Quantity, p.Stock)
			}

			if p.IsShippable() {
				for u := 0; u < line.Quantity; u++ {
					parcels = append(parcels, domain.Parcel{
						ProductName: p.Name,
						WeightKG:    p.Weight(),
					})
				}
			}

			lineTotal := p.Price * float64(line.Quantity)
			subtotal += lineTotal
			products[i] = p
			lines[i] = domain.ReceiptLine{
				ProductName: p.Name,
				Quantity:    line.Quantity,
				UnitPrice:   p.Price,
				LineTotal:   lineTotal,
			}
		}

		shippingFee := domain.CalculateShippingFee(parcels)
		total := subtotal + shippingFee

		if total > customer.Balance {
			return apperrors.InsufficientFunds(total, customer.Balance)
		}

		// Mutation phase. All checks passed; debit and stock reduction
		// cannot fail here, so a failure is an invariant violation.
		if err := customer.Debit(total); err != nil {
			return apperrors.Internal(fmt.Errorf("debit after validation: %w", err))
		}
		for i, line := range cart.Lines {
			if err := products[i].ReduceStock(line.Quantity); err != nil {
				return apperrors.Internal(fmt.Errorf("reduce stock after validation: %w", err))
			}
		}

		result = domain.CheckoutResult{
			CustomerID:   customerID,
			CartID:       cart.ID,
			Lines:        lines,
			Shipment:     domain.BuildShipmentManifest(parcels),
			Subtotal:     subtotal,
			ShippingFee:  shippingFee,
			Total:        total,
			BalanceAfter: customer.Balance,
			CompletedAt:  now.UTC(),
		}
		return nil
	})
	if err != nil {
		checkoutsTotal.WithLabelValues(outcomeLabel(err)).Inc()
		return nil, err
	}

	// The transaction is committed; the cart is spent. A failed delete
	// leaves a stale cart behind but must not fail the checkout.
	if err := s.carts.Delete(ctx, customerID); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete cart after checkout",
			slog.String("customer_id", customerID),
			slog.String("error", err.Error()),
		)
	}

	if s.producer != nil {
		if err := s.producer.PublishCheckoutCompleted(ctx, &result); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish checkout.completed event",
				slog.String("customer_id", customerID),
				slog.String("cart_id", result.CartID),
				slog.String("error", err.Error()),
			)
		}
	}

	checkoutsTotal.WithLabelValues("success").Inc()
	checkoutAmountTotal.Add(result.Total)

	s.logger.InfoContext(ctx, "checkout completed",
		slog.String("customer_id", customerID),
		slog.String("cart_id", result.CartID),
		slog.Float64("subtotal", result.Subtotal),
		slog.Float64("shipping_fee", result.ShippingFee),
		slog.Float64("total", result.Total),
		slog.Float64("balance_after", result.BalanceAfter),
	)

	return &result, nil
}

// outcomeLabel maps a checkout failure to its metrics label.
func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrExpiredProduct):
		return "expired_product"
	case errors.Is(err, apperrors.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, apperrors.ErrEmptyCart):
		return "empty_cart"
	case errors.Is(err, apperrors.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
