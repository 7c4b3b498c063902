package handler

import (
	"net/http"

	"ovenaura/internal/model"
	"ovenaura/internal/pricing"
	"ovenaura/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles catalogue requests.
type ProductHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.CatalogService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products. A failed load still returns an empty list.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := model.ProductFilter{
		Search:      q.Get("search"),
		Category:    q.Get("category"),
		Subcategory: q.Get("subcategory"),
	}

	products, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeErrorWithData(w, r, err, "Failed to fetch menu items", []service.ProductView{}, h.logger)
		return
	}

	writeData(w, r, http.StatusOK, products)
}

// Get handles GET /api/products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err, "Product not found", h.logger)
		return
	}

	writeData(w, r, http.StatusOK, detail)
}

// Quote handles POST /api/products/{id}/quote.
func (h *ProductHandler) Quote(w http.ResponseWriter, r *http.Request) {
	sel := pricing.Selection{Quantity: 1}
	if err := decodeJSON(r, &sel); err != nil {
		writeError(w, r, err, "invalid request body", h.logger)
		return
	}

	quote, err := h.service.Quote(r.Context(), r.PathValue("id"), sel)
	if err != nil {
		writeError(w, r, err, "Product not found", h.logger)
		return
	}

	writeData(w, r, http.StatusOK, quote)
}
