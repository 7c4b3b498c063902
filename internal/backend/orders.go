package backend

import (
	"context"
	"fmt"
	"net/http"

	"ovenaura/internal/model"
)

// PlaceOrder submits an order for pickup.
func (c *Client) PlaceOrder(ctx context.Context, req model.PlaceOrderRequest) (*model.Order, error) {
	env, err := c.do(ctx, http.MethodPost, "/orders", nil, req)
	if err != nil {
		return nil, err
	}

	var order model.Order
	if err := env.Decode(&order, "order"); err != nil {
		return nil, err
	}
	if order.ID == "" {
		return nil, fmt.Errorf("%w: order payload has no id", model.ErrUnexpectedResponse)
	}
	return &order, nil
}

// MyOrders lists the signed-in customer's orders.
func (c *Client) MyOrders(ctx context.Context) ([]model.Order, error) {
	return c.listOrders(ctx, "/orders/my-orders")
}

// AdminOrders lists every order (admin only).
func (c *Client) AdminOrders(ctx context.Context) ([]model.Order, error) {
	return c.listOrders(ctx, "/orders/admin")
}

// UpdateOrderStatus sets an order's status. The returned order is nil when
// the backend does not echo it.
func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	env, err := c.do(ctx, http.MethodPut, "/orders/"+escape(id)+"/status", nil, model.UpdateOrderStatusRequest{Status: status})
	if err != nil {
		return nil, notFoundAs(err, model.ErrNotFound)
	}

	if _, ok := env.Payload("order"); !ok {
		return nil, nil
	}

	var order model.Order
	if err := env.Decode(&order, "order"); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) listOrders(ctx context.Context, path string) ([]model.Order, error) {
	env, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var orders []model.Order
	if err := env.Decode(&orders, "orders"); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}
