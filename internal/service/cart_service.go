package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"ovenaura/internal/model"
	"ovenaura/internal/pricing"

	"github.com/rs/zerolog"
)

// CartState is the cart cache's lifecycle state.
type CartState string

const (
	CartStateEmpty     CartState = "empty"
	CartStateLoading   CartState = "loading"
	CartStatePopulated CartState = "populated"
	CartStateError     CartState = "error"
)

// CartSnapshot is a copy of the cached cart and its state.
type CartSnapshot struct {
	State     CartState  `json:"state"`
	Cart      model.Cart `json:"cart"`
	ItemCount int        `json:"itemCount"`
}

// cartService caches the server cart for the session. Every committed state
// comes from a server response; the cache is never edited locally.
type cartService struct {
	api         CartAPI
	catalog     CatalogAPI
	session     Session
	maxQuantity int
	logger      zerolog.Logger

	// mutate serializes Fetch and mutations so one request is in flight.
	mutate sync.Mutex

	mu    sync.RWMutex
	state CartState
	cart  model.Cart
}

// NewCartService creates the cart service. maxQuantity caps a single
// selection's quantity.
func NewCartService(api CartAPI, catalog CatalogAPI, session Session, maxQuantity int, logger zerolog.Logger) CartService {
	return &cartService{
		api:         api,
		catalog:     catalog,
		session:     session,
		maxQuantity: maxQuantity,
		logger:      logger.With().Str("service", "cart").Logger(),
		state:       CartStateEmpty,
		cart:        model.EmptyCart(),
	}
}

// Fetch reloads the cart from the server. Without a session the cart is
// empty and no request is made. A failed load resets the cache to zero items
// and a zero total and leaves the state at error until the next success.
func (s *cartService) Fetch(ctx context.Context) CartSnapshot {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	if !s.session.HasToken() {
		s.commit(model.EmptyCart())
		return s.Snapshot()
	}

	s.setState(CartStateLoading)

	cart, err := s.api.GetCart(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch cart")
		s.commit(model.EmptyCart())
		s.setState(CartStateError)
		return s.Snapshot()
	}

	s.commit(*cart)
	return s.Snapshot()
}

// Add sends a prepared add request.
func (s *cartService) Add(ctx context.Context, req model.AddToCartRequest) (CartSnapshot, error) {
	if err := s.requireSession(); err != nil {
		return s.Snapshot(), err
	}
	if strings.TrimSpace(req.ProductID) == "" {
		return s.Snapshot(), model.InvalidInput("product id is required")
	}
	if err := s.validateQuantity(req.Quantity); err != nil {
		return s.Snapshot(), err
	}

	return s.apply(ctx, "add", func(ctx context.Context) (*model.Cart, error) {
		return s.api.AddToCart(ctx, req)
	})
}

// AddSelection prices a selection and adds it. Plain items are sent as id and
// quantity; items with options also carry the size, toppings and unit price.
func (s *cartService) AddSelection(ctx context.Context, productID string, sel pricing.Selection) (CartSnapshot, error) {
	if err := s.requireSession(); err != nil {
		return s.Snapshot(), err
	}
	if err := s.validateQuantity(sel.Quantity); err != nil {
		return s.Snapshot(), err
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return s.Snapshot(), fmt.Errorf("failed to load product: %w", err)
	}

	req := model.AddToCartRequest{ProductID: product.ID, Quantity: sel.Quantity}
	if product.HasOptions() {
		quote := pricing.Compute(product, sel)
		if !quote.SizeMatched {
			s.logger.Warn().
				Str("product_id", product.ID).
				Str("size", sel.Size).
				Msg("selected size not offered, using flat price")
		}
		unit := quote.UnitPrice
		req.Size = quote.Size
		req.Toppings = quote.Toppings
		req.Price = &unit
	}

	return s.Add(ctx, req)
}

// Update sets a line's quantity. Only the lower bound is checked here: the
// backend merges repeated adds into one line, so a line may already hold more
// than a single selection allows, and stock limits are the backend's call.
func (s *cartService) Update(ctx context.Context, lineID string, quantity int) (CartSnapshot, error) {
	if err := s.requireSession(); err != nil {
		return s.Snapshot(), err
	}
	if strings.TrimSpace(lineID) == "" {
		return s.Snapshot(), model.InvalidInput("cart item id is required")
	}
	if quantity < 1 {
		return s.Snapshot(), fmt.Errorf("%w: must be at least 1, got %d", model.ErrInvalidQuantity, quantity)
	}

	return s.apply(ctx, "update", func(ctx context.Context) (*model.Cart, error) {
		return s.api.UpdateCartItem(ctx, lineID, quantity)
	})
}

// Remove deletes a line.
func (s *cartService) Remove(ctx context.Context, lineID string) (CartSnapshot, error) {
	if err := s.requireSession(); err != nil {
		return s.Snapshot(), err
	}
	if strings.TrimSpace(lineID) == "" {
		return s.Snapshot(), model.InvalidInput("cart item id is required")
	}

	return s.apply(ctx, "remove", func(ctx context.Context) (*model.Cart, error) {
		return s.api.RemoveCartItem(ctx, lineID)
	})
}

// Clear empties the cart.
func (s *cartService) Clear(ctx context.Context) (CartSnapshot, error) {
	if err := s.requireSession(); err != nil {
		return s.Snapshot(), err
	}

	return s.apply(ctx, "clear", s.api.ClearCart)
}

// Snapshot returns the current state and a copy of the cached cart.
func (s *cartService) Snapshot() CartSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CartSnapshot{
		State:     s.state,
		Cart:      s.cart.Clone(),
		ItemCount: s.cart.ItemCount(),
	}
}

// Reset drops the cached cart without a server call.
func (s *cartService) Reset() {
	s.mutate.Lock()
	defer s.mutate.Unlock()
	s.commit(model.EmptyCart())
}

// apply runs one mutation and commits the server snapshot. On failure the
// cached cart is left as it was.
func (s *cartService) apply(ctx context.Context, op string, call func(context.Context) (*model.Cart, error)) (CartSnapshot, error) {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	cart, err := call(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("op", op).Msg("cart mutation failed")
		return s.Snapshot(), fmt.Errorf("failed to %s cart item: %w", op, err)
	}

	s.commit(*cart)
	s.logger.Debug().
		Str("op", op).
		Int("lines", len(cart.Items)).
		Str("total", cart.TotalAmount.String()).
		Msg("cart updated")
	return s.Snapshot(), nil
}

func (s *cartService) requireSession() error {
	if !s.session.HasToken() {
		return model.ErrLoginRequired
	}
	return nil
}

func (s *cartService) validateQuantity(quantity int) error {
	if quantity < 1 || (s.maxQuantity > 0 && quantity > s.maxQuantity) {
		return fmt.Errorf("%w: must be between 1 and %d, got %d", model.ErrInvalidQuantity, s.maxQuantity, quantity)
	}
	return nil
}

func (s *cartService) commit(cart model.Cart) {
	if cart.Items == nil {
		cart.Items = []model.CartLine{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = cart
	if cart.IsEmpty() {
		s.state = CartStateEmpty
	} else {
		s.state = CartStatePopulated
	}
}

func (s *cartService) setState(state CartState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}
