package service

import (
	"context"
	"fmt"
	"strings"

	"ovenaura/internal/model"
	"ovenaura/internal/pricing"

	"github.com/rs/zerolog"
)

// customizableCategories are the categories opened in the detail view for a
// size and topping choice instead of being added straight to the cart.
var customizableCategories = map[string]bool{
	"pizzas":  true,
	"burgers": true,
}

// ProductView is a catalogue entry with its display price.
type ProductView struct {
	model.Product
	PriceLabel   string `json:"priceLabel"`
	Customizable bool   `json:"customizable"`
}

// ProductDetail is a product priced at its default selection.
type ProductDetail struct {
	ProductView
	Selection pricing.Selection `json:"selection"`
	Quote     pricing.Quote     `json:"quote"`
}

// catalogService implements CatalogService.
type catalogService struct {
	api         CatalogAPI
	formatter   pricing.Formatter
	maxQuantity int
	logger      zerolog.Logger
}

// NewCatalogService creates a new catalog service. maxQuantity caps quoted
// selections the same way the cart caps added ones.
func NewCatalogService(api CatalogAPI, formatter pricing.Formatter, maxQuantity int, logger zerolog.Logger) CatalogService {
	return &catalogService{
		api:         api,
		formatter:   formatter,
		maxQuantity: maxQuantity,
		logger:      logger.With().Str("service", "catalog").Logger(),
	}
}

// List returns the catalogue. Category matches case-insensitively and
// subcategory exactly; the backend's own filtering is not relied on.
func (s *catalogService) List(ctx context.Context, filter model.ProductFilter) ([]ProductView, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Category = strings.TrimSpace(filter.Category)

	products, err := s.api.ListProducts(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Str("category", filter.Category).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	views := make([]ProductView, 0, len(products))
	for i := range products {
		p := &products[i]
		if filter.Category != "" && !strings.EqualFold(p.Category, filter.Category) {
			continue
		}
		if filter.Subcategory != "" && p.Subcategory != filter.Subcategory {
			continue
		}
		views = append(views, s.view(p))
	}

	s.logger.Debug().
		Int("fetched", len(products)).
		Int("returned", len(views)).
		Msg("products listed")

	return views, nil
}

// Get returns a product with its default quote.
func (s *catalogService) Get(ctx context.Context, id string) (*ProductDetail, error) {
	product, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	sel := pricing.DefaultSelection(product)
	return &ProductDetail{
		ProductView: s.view(product),
		Selection:   sel,
		Quote:       pricing.Compute(product, sel),
	}, nil
}

// Quote prices a selection. Quantity must be within the selection cap.
func (s *catalogService) Quote(ctx context.Context, id string, sel pricing.Selection) (*pricing.Quote, error) {
	if sel.Quantity < 1 || (s.maxQuantity > 0 && sel.Quantity > s.maxQuantity) {
		return nil, fmt.Errorf("%w: must be between 1 and %d, got %d", model.ErrInvalidQuantity, s.maxQuantity, sel.Quantity)
	}

	product, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	quote := pricing.Compute(product, sel)
	return &quote, nil
}

func (s *catalogService) load(ctx context.Context, id string) (*model.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, model.InvalidInput("product id is required")
	}

	product, err := s.api.GetProduct(ctx, id)
	if err != nil {
		s.logger.Warn().Err(err).Str("product_id", id).Msg("failed to load product")
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	return product, nil
}

func (s *catalogService) view(p *model.Product) ProductView {
	return ProductView{
		Product:      *p,
		PriceLabel:   s.formatter.Label(p),
		Customizable: customizableCategories[strings.ToLower(p.Category)] && p.HasOptions(),
	}
}
