package backend

import (
	"context"
	"fmt"
	"net/http"

	"ovenaura/internal/model"
)

// Stats returns the admin overview counters.
func (c *Client) Stats(ctx context.Context) (model.Report, error) {
	return c.report(ctx, "/admin/stats", "stats")
}

// Analytics returns the admin analytics report.
func (c *Client) Analytics(ctx context.Context) (model.Report, error) {
	return c.report(ctx, "/admin/analytics", "analytics")
}

// DashboardReport returns the reports dashboard.
func (c *Client) DashboardReport(ctx context.Context) (model.Report, error) {
	return c.report(ctx, "/reports/dashboard", "report")
}

func (c *Client) report(ctx context.Context, path, key string) (model.Report, error) {
	env, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var report model.Report
	if err := env.Decode(&report, key); err != nil {
		return nil, err
	}
	delete(report, "success")
	delete(report, "message")
	return report, nil
}

// ListStaff returns every staff member.
func (c *Client) ListStaff(ctx context.Context) ([]model.Staff, error) {
	env, err := c.do(ctx, http.MethodGet, "/staff", nil, nil)
	if err != nil {
		return nil, err
	}

	var staff []model.Staff
	if err := env.Decode(&staff, "staff"); err != nil {
		return nil, err
	}
	if staff == nil {
		staff = []model.Staff{}
	}
	return staff, nil
}

// CreateStaff adds a staff member.
func (c *Client) CreateStaff(ctx context.Context, member model.Staff) (*model.Staff, error) {
	env, err := c.do(ctx, http.MethodPost, "/staff", nil, member)
	if err != nil {
		return nil, err
	}
	return decodeOne[model.Staff](env, "staff")
}

// UpdateStaff replaces a staff member's details.
func (c *Client) UpdateStaff(ctx context.Context, id string, member model.Staff) (*model.Staff, error) {
	env, err := c.do(ctx, http.MethodPut, "/staff/"+escape(id), nil, member)
	if err != nil {
		return nil, notFoundAs(err, model.ErrNotFound)
	}
	return decodeOne[model.Staff](env, "staff")
}

// DeleteStaff removes a staff member.
func (c *Client) DeleteStaff(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/staff/"+escape(id), nil, nil)
	return notFoundAs(err, model.ErrNotFound)
}

// MenuCategories lists the menu categories.
func (c *Client) MenuCategories(ctx context.Context) ([]model.MenuCategory, error) {
	env, err := c.do(ctx, http.MethodGet, "/menu/categories", nil, nil)
	if err != nil {
		return nil, err
	}

	var categories []model.MenuCategory
	if err := env.Decode(&categories, "categories"); err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []model.MenuCategory{}
	}
	return categories, nil
}

// MenuItems lists the items of one category.
func (c *Client) MenuItems(ctx context.Context, categoryID string) ([]model.MenuItem, error) {
	env, err := c.do(ctx, http.MethodGet, "/menu/category/"+escape(categoryID)+"/items", nil, nil)
	if err != nil {
		return nil, notFoundAs(err, model.ErrNotFound)
	}

	var items []model.MenuItem
	if err := env.Decode(&items, "items"); err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.MenuItem{}
	}
	return items, nil
}

// CreateMenuItem adds a menu item.
func (c *Client) CreateMenuItem(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	env, err := c.do(ctx, http.MethodPost, "/menu/items", nil, item)
	if err != nil {
		return nil, err
	}
	return decodeOne[model.MenuItem](env, "item")
}

// UpdateMenuItem replaces a menu item.
func (c *Client) UpdateMenuItem(ctx context.Context, id string, item model.MenuItem) (*model.MenuItem, error) {
	env, err := c.do(ctx, http.MethodPut, "/menu/items/"+escape(id), nil, item)
	if err != nil {
		return nil, notFoundAs(err, model.ErrNotFound)
	}
	return decodeOne[model.MenuItem](env, "item")
}

// DeleteMenuItem removes a menu item.
func (c *Client) DeleteMenuItem(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/menu/items/"+escape(id), nil, nil)
	return notFoundAs(err, model.ErrNotFound)
}

// CreateProduct adds a catalogue product.
func (c *Client) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	env, err := c.do(ctx, http.MethodPost, "/products", nil, product)
	if err != nil {
		return nil, err
	}
	return decodeOne[model.Product](env, "product")
}

// UpdateProduct replaces a catalogue product.
func (c *Client) UpdateProduct(ctx context.Context, id string, product model.Product) (*model.Product, error) {
	env, err := c.do(ctx, http.MethodPut, "/products/"+escape(id), nil, product)
	if err != nil {
		return nil, notFoundAs(err, model.ErrProductNotFound)
	}
	return decodeOne[model.Product](env, "product")
}

// DeleteProduct removes a catalogue product.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/products/"+escape(id), nil, nil)
	return notFoundAs(err, model.ErrProductNotFound)
}

// decodeOne decodes a single document. A success response without a payload
// is an error since every write endpoint echoes the stored document.
func decodeOne[T any](env *model.Envelope, key string) (*T, error) {
	var v T
	if err := env.Decode(&v, key); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", key, err)
	}
	return &v, nil
}
