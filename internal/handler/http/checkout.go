package http

import (
	"log/slog"
	"net/http"

	"github.com/shoplite/checkout/internal/report"
	"github.com/shoplite/checkout/internal/service"
)

// CheckoutHandler handles HTTP requests for the checkout endpoint.
type CheckoutHandler struct {
	service *service.CheckoutService
	logger  *slog.Logger
}

// NewCheckoutHandler creates a new checkout HTTP handler.
func NewCheckoutHandler(svc *service.CheckoutService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: svc,
		logger:  logger,
	}
}

// Checkout handles POST /api/v1/checkout. It runs the customer's current
// cart through checkout and returns the structured result. With
// Accept: text/plain, the rendered receipt is returned instead.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	customerID, _ := customerIDFromContext(r.Context())

	result, err := h.service.Checkout(r.Context(), customerID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if r.Header.Get("Accept") == "text/plain" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if err := report.Render(w, result); err != nil {
			h.logger.ErrorContext(r.Context(), "failed to render receipt",
				slog.String("error", err.Error()),
			)
		}
		return
	}

	writeJSON(w, http.StatusOK, response{Data: result})
}
