package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shoplite/checkout/internal/domain"
	"github.com/shoplite/checkout/internal/service"
	"github.com/shoplite/checkout/pkg/validator"
)

// CatalogHandler handles HTTP requests for catalog and customer endpoints.
type CatalogHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog HTTP handler.
func NewCatalogHandler(svc *service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: svc,
		logger:  logger,
	}
}

// urlParam returns a chi URL parameter with percent-encoding removed.
// Product names may contain spaces, which arrive encoded in the path.
func urlParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// CreateProductRequest is the JSON request body for adding a catalog product.
type CreateProductRequest struct {
	Name      string     `json:"name" validate:"required,min=1,max=200"`
	Price     float64    `json:"price" validate:"gte=0"`
	Stock     int        `json:"stock" validate:"gte=0"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	WeightKG  *float64   `json:"weight_kg,omitempty"`
}

// RestockRequest is the JSON request body for restocking a product.
type RestockRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// CreateCustomerRequest is the JSON request body for opening a customer account.
type CreateCustomerRequest struct {
	ID      string  `json:"id" validate:"required"`
	Name    string  `json:"name" validate:"required,min=1,max=200"`
	Balance float64 `json:"balance" validate:"gte=0"`
}

// CreateProduct handles POST /api/v1/catalog/products
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		writeValidationError(w, err)
		return
	}

	input := service.CreateProductInput{
		Name:  req.Name,
		Price: req.Price,
		Stock: req.Stock,
	}
	if req.ExpiresAt != nil {
		input.Perishable = &domain.PerishableInfo{ExpiresAt: *req.ExpiresAt}
	}
	if req.WeightKG != nil {
		input.Shippable = &domain.ShippableInfo{WeightKG: *req.WeightKG}
	}

	product, err := h.service.CreateProduct(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, response{Data: product})
}

// ListProducts handles GET /api/v1/catalog/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: products})
}

// GetProduct handles GET /api/v1/catalog/products/{name}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	name := urlParam(r, "name")

	product, err := h.service.GetProduct(r.Context(), name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: product})
}

// RestockProduct handles POST /api/v1/catalog/products/{name}/restock
func (h *CatalogHandler) RestockProduct(w http.ResponseWriter, r *http.Request) {
	name := urlParam(r, "name")

	var req RestockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		writeValidationError(w, err)
		return
	}

	product, err := h.service.RestockProduct(r.Context(), name, req.Quantity)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: product})
}

// CreateCustomer handles POST /api/v1/customers
func (h *CatalogHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		writeValidationError(w, err)
		return
	}

	customer, err := h.service.CreateCustomer(r.Context(), service.CreateCustomerInput{
		ID:      req.ID,
		Name:    req.Name,
		Balance: req.Balance,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, response{Data: customer})
}

// GetCustomer handles GET /api/v1/customers/{id}
func (h *CatalogHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "id")

	customer, err := h.service.GetCustomer(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: customer})
}
