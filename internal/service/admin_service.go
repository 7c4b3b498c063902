package service

import (
	"context"
	"fmt"
	"strings"

	"ovenaura/internal/model"

	"github.com/rs/zerolog"
)

// adminService forwards admin console calls to the backend once the session
// is known to belong to an admin.
type adminService struct {
	api     AdminAPI
	session Session
	logger  zerolog.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(api AdminAPI, session Session, logger zerolog.Logger) AdminService {
	return &adminService{
		api:     api,
		session: session,
		logger:  logger.With().Str("service", "admin").Logger(),
	}
}

// requireAdmin checks the session locally. A session whose user has not been
// loaded yet is let through and the backend decides.
func requireAdmin(session Session) error {
	if !session.HasToken() {
		return model.ErrLoginRequired
	}
	if user := session.User(); user != nil && !user.IsAdmin() {
		return model.ErrForbidden
	}
	return nil
}

func requireID(id, what string) error {
	if strings.TrimSpace(id) == "" {
		return model.InvalidInput("%s id is required", what)
	}
	return nil
}

func (s *adminService) Stats(ctx context.Context) (model.Report, error) {
	if err := requireAdmin(s.session); err != nil {
		return nil, err
	}
	return s.report(ctx, "stats", s.api.Stats)
}

func (s *adminService) Analytics(ctx context.Context) (model.Report, error) {
	if err := requireAdmin(s.session); err != nil {
		return nil, err
	}
	return s.report(ctx, "analytics", s.api.Analytics)
}

func (s *adminService) DashboardReport(ctx context.Context) (model.Report, error) {
	if err := requireAdmin(s.session); err != nil {
		return nil, err
	}
	return s.report(ctx, "dashboard", s.api.DashboardReport)
}

func (s *adminService) report(ctx context.Context, name string, fetch func(context.Context) (model.Report, error)) (model.Report, error) {
	report, err := fetch(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("report", name).Msg("failed to load report")
		return nil, fmt.Errorf("failed to load %s report: %w", name, err)
	}
	return report, nil
}

func (s *adminService) ListStaff(ctx context.Context) ([]model.Staff, error) {
	if err := requireAdmin(s.session); err != nil {
		return nil, err
	}
	return s.api.ListStaff(ctx)
}

func (s *adminService) CreateStaff(ctx context.Context, member model.Staff) (*model.Staff, error) {
	if err := requireAdmin(s.session); err != nil {
		return nil, err
	}
	if strings.TrimSpace(member.Name) == "" {
		return nil, model.InvalidInput("staff name is required")
	}
	if member.Salary.IsNegative() {
		return nil, model.InvalidInput("salary cannot be negative")
	}
	return s.api.CreateStaff(ctx, member)
}

func (s *adminService) UpdateStaff(ctx context.Context, id string, member model.Staff) (*model.Staff, error) {
	if err := requireAdmin(s.session); err != nil {
		return nil, err
	}
	if err := requireID(id, "staff"); err != nil {
		return nil, err
	}
	if member.Salary.IsNegative() {
		return nil, model.InvalidInput("salary cannot be negative")
	}
	return s.api.UpdateStaff(ctx, id, member)
}

func (s *adminService) DeleteStaff(ctx context.Context, id string) error {
	if err := requireAdmin(s.session); err != nil {
		return err
	}
	if err := requireID(id, "staff"); err != nil {
		return err
	}
	return s.api.DeleteStaff(ctx, id)
}

func (s *adminService) MenuCategories(ctx context.Context) ([]model.MenuCategory, error) {
	if err := requireAdmin(s.session); err != nil {
		return nil, err
	}
	return s.api.MenuCategories(ctx)
}

func (s *adminService) MenuItems(ctx context.Context, categoryID string) ([]model.MenuItem, error) {
	if err := requireAdmin(s.session); err != nil {
		return nil, err
	}
	if err := requireID(categoryID, "category"); err != nil {
		return nil, err
	}
	return s.api.MenuItems(ctx, categoryID)
}

func (s *adminService) CreateMenuItem(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	if err := requireAdmin(s.session); err != nil {
		return nil, err
	}
	if err := validateProduct(&item); err != nil {
		return nil, err
	}
	return s.api.CreateMenuItem(ctx, item)
}

func (s *adminService) UpdateMenuItem(ctx context.Context, id string, item model.MenuItem) (*model.MenuItem, error) {
	if err := requireAdmin(s.session); err != nil {
		return nil, err
	}
	if err := requireID(id, "menu item"); err != nil {
		return nil, err
	}
	if err := validateProduct(&item); err != nil {
		return nil, err
	}
	return s.api.UpdateMenuItem(ctx, id, item)
}

func (s *adminService) DeleteMenuItem(ctx context.Context, id string) error {
	if err := requireAdmin(s.session); err != nil {
		return err
	}
	if err := requireID(id, "menu item"); err != nil {
		return err
	}
	return s.api.DeleteMenuItem(ctx, id)
}

func (s *adminService) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	if err := requireAdmin(s.session); err != nil {
		return nil, err
	}
	if err := validateProduct(&product); err != nil {
		return nil, err
	}
	return s.api.CreateProduct(ctx, product)
}

func (s *adminService) UpdateProduct(ctx context.Context, id string, product model.Product) (*model.Product, error) {
	if err := requireAdmin(s.session); err != nil {
		return nil, err
	}
	if err := requireID(id, "product"); err != nil {
		return nil, err
	}
	if err := validateProduct(&product); err != nil {
		return nil, err
	}
	return s.api.UpdateProduct(ctx, id, product)
}

func (s *adminService) DeleteProduct(ctx context.Context, id string) error {
	if err := requireAdmin(s.session); err != nil {
		return err
	}
	if err := requireID(id, "product"); err != nil {
		return err
	}
	return s.api.DeleteProduct(ctx, id)
}

// validateProduct checks the fields the product editor requires.
func validateProduct(p *model.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return model.InvalidInput("product name is required")
	}
	if p.Price.IsNegative() {
		return model.InvalidInput("price cannot be negative")
	}
	if p.Stock < 0 {
		return model.InvalidInput("stock cannot be negative")
	}
	seen := make(map[string]bool, len(p.Sizes))
	for _, size := range p.Sizes {
		if strings.TrimSpace(size.Size) == "" {
			return model.InvalidInput("size name is required")
		}
		if seen[size.Size] {
			return model.InvalidInput("size %q is listed twice", size.Size)
		}
		seen[size.Size] = true
		if size.Price.IsNegative() {
			return model.InvalidInput("price of size %q cannot be negative", size.Size)
		}
	}
	for _, t := range p.Toppings {
		if strings.TrimSpace(t.Name) == "" {
			return model.InvalidInput("topping name is required")
		}
		if t.Price.IsNegative() {
			return model.InvalidInput("price of topping %q cannot be negative", t.Name)
		}
	}
	return nil
}
