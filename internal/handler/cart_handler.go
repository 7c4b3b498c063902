package handler

import (
	"net/http"

	"ovenaura/internal/pricing"
	"ovenaura/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles cart requests. Every response carries the cart
// snapshot, including failed mutations.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

type addItemRequest struct {
	ProductID string   `json:"productId"`
	Size      string   `json:"size"`
	Toppings  []string `json:"toppings"`
	Quantity  int      `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// Get handles GET /api/cart by reloading the cart from the backend.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeData(w, r, http.StatusOK, h.service.Fetch(r.Context()))
}

// Add handles POST /api/cart/items. Quantity defaults to one.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid request body", h.logger)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	snapshot, err := h.service.AddSelection(r.Context(), req.ProductID, pricing.Selection{
		Size:     req.Size,
		Toppings: req.Toppings,
		Quantity: req.Quantity,
	})
	if err != nil {
		writeErrorWithData(w, r, err, "Failed to add to cart", snapshot, h.logger)
		return
	}

	writeData(w, r, http.StatusOK, snapshot)
}

// Update handles PUT /api/cart/items/{id}.
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid request body", h.logger)
		return
	}

	snapshot, err := h.service.Update(r.Context(), r.PathValue("id"), req.Quantity)
	if err != nil {
		writeErrorWithData(w, r, err, "Failed to update cart", snapshot, h.logger)
		return
	}

	writeData(w, r, http.StatusOK, snapshot)
}

// Remove handles DELETE /api/cart/items/{id}.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.service.Remove(r.Context(), r.PathValue("id"))
	if err != nil {
		writeErrorWithData(w, r, err, "Failed to remove item", snapshot, h.logger)
		return
	}

	writeData(w, r, http.StatusOK, snapshot)
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.service.Clear(r.Context())
	if err != nil {
		writeErrorWithData(w, r, err, "Failed to clear cart", snapshot, h.logger)
		return
	}

	writeData(w, r, http.StatusOK, snapshot)
}
