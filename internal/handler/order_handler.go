package handler

import (
	"net/http"

	"ovenaura/internal/model"
	"ovenaura/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles checkout and order history requests.
type OrderHandler struct {
	checkout service.CheckoutService
	orders   service.OrderService
	logger   zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(checkout service.CheckoutService, orders service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		checkout: checkout,
		orders:   orders,
		logger:   logger.With().Str("handler", "order").Logger(),
	}
}

// Checkout handles POST /api/checkout.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var details service.CustomerDetails
	if err := decodeJSON(r, &details); err != nil {
		writeError(w, r, err, "invalid request body", h.logger)
		return
	}

	order, err := h.checkout.PlaceOrder(r.Context(), details)
	if err != nil {
		writeError(w, r, err, "Failed to place order", h.logger)
		return
	}

	writeData(w, r, http.StatusCreated, service.OrderView{Order: *order, Progress: order.Status.Progress()})
}

// MyOrders handles GET /api/orders.
func (h *OrderHandler) MyOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.MyOrders(r.Context())
	if err != nil {
		writeErrorWithData(w, r, err, "Failed to fetch orders", []service.OrderView{}, h.logger)
		return
	}

	writeData(w, r, http.StatusOK, orders)
}

// AllOrders handles GET /api/admin/orders.
func (h *OrderHandler) AllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.AllOrders(r.Context())
	if err != nil {
		writeErrorWithData(w, r, err, "Failed to fetch orders", []service.OrderView{}, h.logger)
		return
	}

	writeData(w, r, http.StatusOK, orders)
}

// UpdateStatus handles PUT /api/admin/orders/{id}/status.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateOrderStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid request body", h.logger)
		return
	}

	order, err := h.orders.UpdateStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		writeError(w, r, err, "Failed to update order status", h.logger)
		return
	}

	writeData(w, r, http.StatusOK, order)
}
