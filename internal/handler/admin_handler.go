package handler

import (
	"context"
	"net/http"

	"ovenaura/internal/model"
	"ovenaura/internal/service"

	"github.com/rs/zerolog"
)

// AdminHandler forwards admin console requests.
type AdminHandler struct {
	service service.AdminService
	logger  zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(service service.AdminService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger.With().Str("handler", "admin").Logger(),
	}
}

func (h *AdminHandler) report(w http.ResponseWriter, r *http.Request, fetch func(context.Context) (model.Report, error)) {
	report, err := fetch(r.Context())
	if err != nil {
		writeError(w, r, err, "Failed to load report", h.logger)
		return
	}
	writeData(w, r, http.StatusOK, report)
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, h.service.Stats)
}

// Analytics handles GET /api/admin/analytics.
func (h *AdminHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, h.service.Analytics)
}

// Dashboard handles GET /api/admin/reports/dashboard.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, h.service.DashboardReport)
}

// ListStaff handles GET /api/admin/staff.
func (h *AdminHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.service.ListStaff(r.Context())
	if err != nil {
		writeErrorWithData(w, r, err, "Failed to fetch staff", []model.Staff{}, h.logger)
		return
	}
	writeData(w, r, http.StatusOK, staff)
}

// CreateStaff handles POST /api/admin/staff.
func (h *AdminHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var member model.Staff
	if err := decodeJSON(r, &member); err != nil {
		writeError(w, r, err, "invalid request body", h.logger)
		return
	}

	created, err := h.service.CreateStaff(r.Context(), member)
	if err != nil {
		writeError(w, r, err, "Failed to add staff member", h.logger)
		return
	}
	writeData(w, r, http.StatusCreated, created)
}

// UpdateStaff handles PUT /api/admin/staff/{id}.
func (h *AdminHandler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	var member model.Staff
	if err := decodeJSON(r, &member); err != nil {
		writeError(w, r, err, "invalid request body", h.logger)
		return
	}

	updated, err := h.service.UpdateStaff(r.Context(), r.PathValue("id"), member)
	if err != nil {
		writeError(w, r, err, "Failed to update staff member", h.logger)
		return
	}
	writeData(w, r, http.StatusOK, updated)
}

// DeleteStaff handles DELETE /api/admin/staff/{id}.
func (h *AdminHandler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteStaff(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err, "Failed to delete staff member", h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MenuCategories handles GET /api/admin/menu/categories.
func (h *AdminHandler) MenuCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.MenuCategories(r.Context())
	if err != nil {
		writeErrorWithData(w, r, err, "Failed to fetch categories", []model.MenuCategory{}, h.logger)
		return
	}
	writeData(w, r, http.StatusOK, categories)
}

// MenuItems handles GET /api/admin/menu/categories/{id}/items.
func (h *AdminHandler) MenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.MenuItems(r.Context(), r.PathValue("id"))
	if err != nil {
		writeErrorWithData(w, r, err, "Failed to fetch menu items", []model.MenuItem{}, h.logger)
		return
	}
	writeData(w, r, http.StatusOK, items)
}

// CreateMenuItem handles POST /api/admin/menu/items.
func (h *AdminHandler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var item model.MenuItem
	if err := decodeJSON(r, &item); err != nil {
		writeError(w, r, err, "invalid request body", h.logger)
		return
	}

	created, err := h.service.CreateMenuItem(r.Context(), item)
	if err != nil {
		writeError(w, r, err, "Failed to add menu item", h.logger)
		return
	}
	writeData(w, r, http.StatusCreated, created)
}

// UpdateMenuItem handles PUT /api/admin/menu/items/{id}.
func (h *AdminHandler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	var item model.MenuItem
	if err := decodeJSON(r, &item); err != nil {
		writeError(w, r, err, "invalid request body", h.logger)
		return
	}

	updated, err := h.service.UpdateMenuItem(r.Context(), r.PathValue("id"), item)
	if err != nil {
		writeError(w, r, err, "Failed to update menu item", h.logger)
		return
	}
	writeData(w, r, http.StatusOK, updated)
}

// DeleteMenuItem handles DELETE /api/admin/menu/items/{id}.
func (h *AdminHandler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteMenuItem(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err, "Failed to delete menu item", h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateProduct handles POST /api/admin/products.
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product model.Product
	if err := decodeJSON(r, &product); err != nil {
		writeError(w, r, err, "invalid request body", h.logger)
		return
	}

	created, err := h.service.CreateProduct(r.Context(), product)
	if err != nil {
		writeError(w, r, err, "Failed to add product", h.logger)
		return
	}
	writeData(w, r, http.StatusCreated, created)
}

// UpdateProduct handles PUT /api/admin/products/{id}.
func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var product model.Product
	if err := decodeJSON(r, &product); err != nil {
		writeError(w, r, err, "invalid request body", h.logger)
		return
	}

	updated, err := h.service.UpdateProduct(r.Context(), r.PathValue("id"), product)
	if err != nil {
		writeError(w, r, err, "Failed to update product", h.logger)
		return
	}
	writeData(w, r, http.StatusOK, updated)
}

// DeleteProduct handles DELETE /api/admin/products/{id}.
func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteProduct(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err, "Failed to delete product", h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
