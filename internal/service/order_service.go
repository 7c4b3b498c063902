package service

import (
	"context"
	"fmt"
	"strings"

	"ovenaura/internal/model"

	"github.com/rs/zerolog"
)

// CustomerDetails are the pickup details collected at checkout.
type CustomerDetails struct {
	CustomerName string `json:"customerName"`
	PhoneNumber  string `json:"phoneNumber"`
}

// OrderView is an order with its tracking steps.
type OrderView struct {
	model.Order
	Progress []model.ProgressStep `json:"progress"`
}

// checkoutService implements CheckoutService.
type checkoutService struct {
	orders  OrderAPI
	cart    CartService
	session Session
	logger  zerolog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(orders OrderAPI, cart CartService, session Session, logger zerolog.Logger) CheckoutService {
	return &checkoutService{
		orders:  orders,
		cart:    cart,
		session: session,
		logger:  logger.With().Str("service", "checkout").Logger(),
	}
}

// PlaceOrder submits the cached cart. Line prices are the unit prices frozen
// in the cart and the total is the server cart total. The cart is cleared
// after the order is accepted; a failed clear is logged and the order is
// still returned.
func (s *checkoutService) PlaceOrder(ctx context.Context, details CustomerDetails) (*model.Order, error) {
	if !s.session.HasToken() {
		return nil, model.ErrLoginRequired
	}

	details.CustomerName = strings.TrimSpace(details.CustomerName)
	details.PhoneNumber = strings.TrimSpace(details.PhoneNumber)
	if details.CustomerName == "" {
		return nil, model.InvalidInput("customer name is required")
	}
	if details.PhoneNumber == "" {
		return nil, model.InvalidInput("phone number is required")
	}

	snapshot := s.cart.Snapshot()
	if snapshot.Cart.IsEmpty() {
		return nil, model.ErrEmptyCart
	}

	req := model.PlaceOrderRequest{
		Items:        make([]model.OrderItemRequest, 0, len(snapshot.Cart.Items)),
		TotalAmount:  snapshot.Cart.TotalAmount,
		CustomerName: details.CustomerName,
		PhoneNumber:  details.PhoneNumber,
	}
	for _, line := range snapshot.Cart.Items {
		req.Items = append(req.Items, model.OrderItemRequest{
			Product:  line.Product.ID,
			Quantity: line.Quantity,
			Price:    line.Price,
		})
	}

	order, err := s.orders.PlaceOrder(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).Int("lines", len(req.Items)).Msg("failed to place order")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Int("lines", len(req.Items)).
		Str("total", req.TotalAmount.String()).
		Msg("order placed")

	if _, err := s.cart.Clear(ctx); err != nil {
		s.logger.Warn().Err(err).Str("order_id", order.ID).Msg("failed to clear cart after order")
	}

	return order, nil
}

// orderService implements OrderService.
type orderService struct {
	orders  OrderAPI
	session Session
	logger  zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orders OrderAPI, session Session, logger zerolog.Logger) OrderService {
	return &orderService{
		orders:  orders,
		session: session,
		logger:  logger.With().Str("service", "order").Logger(),
	}
}

// MyOrders lists the customer's orders with tracking steps.
func (s *orderService) MyOrders(ctx context.Context) ([]OrderView, error) {
	if !s.session.HasToken() {
		return nil, model.ErrLoginRequired
	}

	orders, err := s.orders.MyOrders(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return views(orders), nil
}

// AllOrders lists every order (admin).
func (s *orderService) AllOrders(ctx context.Context) ([]OrderView, error) {
	if err := requireAdmin(s.session); err != nil {
		return nil, err
	}

	orders, err := s.orders.AdminOrders(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list all orders")
		return nil, fmt.Errorf("failed to list all orders: %w", err)
	}
	return views(orders), nil
}

// UpdateStatus moves an order to one of the known statuses.
func (s *orderService) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if err := requireAdmin(s.session); err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" {
		return nil, model.InvalidInput("order id is required")
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidStatus, status)
	}

	order, err := s.orders.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		s.logger.Warn().Err(err).Str("order_id", id).Str("status", string(status)).Msg("failed to update order status")
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	s.logger.Info().Str("order_id", id).Str("status", string(status)).Msg("order status updated")
	return order, nil
}

func views(orders []model.Order) []OrderView {
	out := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderView{Order: o, Progress: o.Status.Progress()})
	}
	return out
}
