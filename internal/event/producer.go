package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shoplite/checkout/internal/domain"
	pkgkafka "github.com/shoplite/checkout/pkg/kafka"
)

// Kafka topics for checkout domain events.
const (
	TopicCartUpdated       = "shoplite.cart.updated"
	TopicCheckoutCompleted = "shoplite.checkout.completed"
)

// Aggregate type constants.
const (
	AggregateTypeCart     = "cart"
	AggregateTypeCheckout = "checkout"
)

// SourceCheckoutService identifies events originating from this service.
const SourceCheckoutService = "checkout-service"

// CartUpdatedData is the payload for a cart.updated event.
type CartUpdatedData struct {
	CustomerID string        `json:"customer_id"`
	Lines      []domain.Line `json:"lines"`
	ItemCount  int           `json:"item_count"`
	Subtotal   float64       `json:"subtotal"`
}

// CheckoutCompletedData is the payload for a checkout.completed event.
type CheckoutCompletedData struct {
	CustomerID    string  `json:"customer_id"`
	CartID        string  `json:"cart_id"`
	Subtotal      float64 `json:"subtotal"`
	ShippingFee   float64 `json:"shipping_fee"`
	Total         float64 `json:"total"`
	TotalWeightKG float64 `json:"total_weight_kg"`
}

// Producer publishes checkout domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer for the checkout service.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishCartUpdated publishes a cart.updated event.
func (p *Producer) PublishCartUpdated(ctx context.Context, cart *domain.Cart) error {
	data := CartUpdatedData{
		CustomerID: cart.CustomerID,
		Lines:      cart.Snapshot(),
		ItemCount:  cart.ItemCount(),
		Subtotal:   cart.Subtotal(),
	}

	event, err := pkgkafka.NewEvent(TopicCartUpdated, cart.CustomerID, AggregateTypeCart, SourceCheckoutService, data)
	if err != nil {
		return fmt.Errorf("create cart.updated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartUpdated, event); err != nil {
		return fmt.Errorf("publish cart.updated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published cart.updated event",
		slog.String("customer_id", cart.CustomerID),
		slog.Int("item_count", cart.ItemCount()),
	)

	return nil
}

// PublishCheckoutCompleted publishes a checkout.completed event.
func (p *Producer) PublishCheckoutCompleted(ctx context.Context, result *domain.CheckoutResult) error {
	data := CheckoutCompletedData{
		CustomerID:    result.CustomerID,
		CartID:        result.CartID,
		Subtotal:      result.Subtotal,
		ShippingFee:   result.ShippingFee,
		Total:         result.Total,
		TotalWeightKG: result.Shipment.TotalWeightKG,
	}

	event, err := pkgkafka.NewEvent(TopicCheckoutCompleted, result.CartID, AggregateTypeCheckout, SourceCheckoutService, data)
	if err != nil {
		return fmt.Errorf("create checkout.completed event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCheckoutCompleted, event); err != nil {
		return fmt.Errorf("publish checkout.completed event: %w", err)
	}

	p.logger.DebugContext(ctx, "published checkout.completed event",
		slog.String("customer_id", result.CustomerID),
		slog.String("cart_id", result.CartID),
	)

	return nil
}
