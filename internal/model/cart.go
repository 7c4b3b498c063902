package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Cart is the server-owned cart snapshot cached by the gateway.
type Cart struct {
	Items       []CartLine      `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// EmptyCart returns a cart with zero items and a zero total.
func EmptyCart() Cart {
	return Cart{Items: []CartLine{}, TotalAmount: decimal.Zero}
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemCount returns the sum of line quantities.
func (c *Cart) ItemCount() int {
	n := 0
	for _, line := range c.Items {
		n += line.Quantity
	}
	return n
}

// Clone returns a deep copy of the cart.
func (c Cart) Clone() Cart {
	out := Cart{TotalAmount: c.TotalAmount, Items: make([]CartLine, len(c.Items))}
	for i, line := range c.Items {
		line.Toppings = append([]ToppingChoice(nil), line.Toppings...)
		out.Items[i] = line
	}
	return out
}

// CartLine is one product selection held in a cart. Price is the unit price
// frozen when the line was added.
type CartLine struct {
	ID       string          `json:"_id"`
	Product  ProductRef      `json:"product"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Size     string          `json:"size,omitempty"`
	Toppings []ToppingChoice `json:"toppings,omitempty"`
}

// LineTotal returns unit price times quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// ProductRef is a cart or order line's product. The backend sends either the
// bare product id or the populated product document.
type ProductRef struct {
	ID      string
	Product *Product
}

// UnmarshalJSON accepts a string id or a product object.
func (r *ProductRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = ProductRef{}
		return nil
	}
	if data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return fmt.Errorf("failed to decode product id: %w", err)
		}
		*r = ProductRef{ID: id}
		return nil
	}
	var p Product
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("failed to decode product: %w", err)
	}
	*r = ProductRef{ID: p.ID, Product: &p}
	return nil
}

// MarshalJSON writes the populated product when known, otherwise the id.
func (r ProductRef) MarshalJSON() ([]byte, error) {
	if r.Product != nil {
		return json.Marshal(r.Product)
	}
	return json.Marshal(r.ID)
}

// AddToCartRequest is the payload of POST /cart/add. Size, Toppings and
// Price are only sent for customised items.
type AddToCartRequest struct {
	ProductID string           `json:"productId"`
	Quantity  int              `json:"quantity"`
	Size      string           `json:"size,omitempty"`
	Toppings  []ToppingChoice  `json:"toppings,omitempty"`
	Price     *decimal.Decimal `json:"price,omitempty"`
}

// UpdateCartItemRequest is the payload of PUT /cart/update/:itemId.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
