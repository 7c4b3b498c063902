package backend

import (
	"context"
	"net/http"

	"ovenaura/internal/model"
)

// GetCart returns the server cart.
func (c *Client) GetCart(ctx context.Context) (*model.Cart, error) {
	env, err := c.do(ctx, http.MethodGet, "/cart", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeCart(env)
}

// AddToCart adds a line and returns the resulting cart snapshot.
func (c *Client) AddToCart(ctx context.Context, req model.AddToCartRequest) (*model.Cart, error) {
	env, err := c.do(ctx, http.MethodPost, "/cart/add", nil, req)
	if err != nil {
		return nil, err
	}
	return decodeCart(env)
}

// UpdateCartItem changes a line's quantity and returns the resulting cart.
func (c *Client) UpdateCartItem(ctx context.Context, itemID string, quantity int) (*model.Cart, error) {
	env, err := c.do(ctx, http.MethodPut, "/cart/update/"+escape(itemID), nil, model.UpdateCartItemRequest{Quantity: quantity})
	if err != nil {
		return nil, err
	}
	return decodeCart(env)
}

// RemoveCartItem deletes a line and returns the resulting cart.
func (c *Client) RemoveCartItem(ctx context.Context, itemID string) (*model.Cart, error) {
	env, err := c.do(ctx, http.MethodDelete, "/cart/remove/"+escape(itemID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeCart(env)
}

// ClearCart empties the cart. A response without a cart document commits an
// empty cart.
func (c *Client) ClearCart(ctx context.Context) (*model.Cart, error) {
	env, err := c.do(ctx, http.MethodDelete, "/cart/clear", nil, nil)
	if err != nil {
		return nil, err
	}
	if _, ok := env.Payload("cart"); !ok {
		cart := model.EmptyCart()
		return &cart, nil
	}
	return decodeCart(env)
}

func decodeCart(env *model.Envelope) (*model.Cart, error) {
	var cart model.Cart
	if err := env.Decode(&cart, "cart"); err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []model.CartLine{}
	}
	return &cart, nil
}
