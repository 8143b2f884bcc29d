package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shoplite/checkout/internal/service"
	"github.com/shoplite/checkout/pkg/health"
	"github.com/shoplite/checkout/pkg/middleware"
)

// NewRouter creates a chi router with all checkout service routes registered.
func NewRouter(
	catalogService *service.CatalogService,
	cartService *service.CartService,
	checkoutService *service.CheckoutService,
	healthHandler *health.Handler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("checkout"))
	r.Use(middleware.RequestLogger(logger))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	catalogHandler := NewCatalogHandler(catalogService, logger)
	cartHandler := NewCartHandler(cartService, logger)
	checkoutHandler := NewCheckoutHandler(checkoutService, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Route("/catalog/products", func(r chi.Router) {
			r.Get("/", catalogHandler.ListProducts)
			r.Post("/", catalogHandler.CreateProduct)
			r.Get("/{name}", catalogHandler.GetProduct)
			r.Post("/{name}/restock", catalogHandler.RestockProduct)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Post("/", catalogHandler.CreateCustomer)
			r.Get("/{id}", catalogHandler.GetCustomer)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(CustomerIDFromHeader)

			r.Get("/", cartHandler.GetCart)
			r.Delete("/", cartHandler.ClearCart)

			r.Post("/items", cartHandler.AddItem)
			r.Delete("/items/{name}", cartHandler.RemoveItem)
		})

		r.With(CustomerIDFromHeader).Post("/checkout", checkoutHandler.Checkout)
	})

	return r
}
