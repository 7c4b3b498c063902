package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"ovenaura/internal/model"
)

// ListProducts returns the catalogue. Search and category are passed to the
// backend; subcategory filtering happens in the catalog service.
func (c *Client) ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	query := url.Values{}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}

	env, err := c.do(ctx, http.MethodGet, "/products", query, nil)
	if err != nil {
		return nil, err
	}

	var products []model.Product
	if err := env.Decode(&products, "products"); err != nil {
		return nil, err
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

// GetProduct returns one product. A 404 is model.ErrProductNotFound.
func (c *Client) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	env, err := c.do(ctx, http.MethodGet, "/products/"+escape(id), nil, nil)
	if err != nil {
		return nil, notFoundAs(err, model.ErrProductNotFound)
	}

	var product model.Product
	if err := env.Decode(&product, "product"); err != nil {
		return nil, err
	}
	if product.ID == "" {
		return nil, fmt.Errorf("%w: product payload has no id", model.ErrUnexpectedResponse)
	}
	return &product, nil
}
