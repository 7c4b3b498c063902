package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of a placed order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderStatuses lists every status an admin may assign.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ProgressStep is one stage of the pickup tracker.
type ProgressStep struct {
	Title  string      `json:"title"`
	Status OrderStatus `json:"status"`
	Done   bool        `json:"done"`
}

var progressSteps = []ProgressStep{
	{Title: "Order Placed", Status: OrderStatusPending},
	{Title: "Confirmed", Status: OrderStatusConfirmed},
	{Title: "Preparing", Status: OrderStatusPreparing},
	{Title: "Ready for Pickup", Status: OrderStatusReady},
	{Title: "Delivered", Status: OrderStatusDelivered},
}

// Progress returns the tracker steps with every step up to the current
// status marked done. Cancelled or unknown statuses mark nothing.
func (s OrderStatus) Progress() []ProgressStep {
	current := -1
	for i, step := range progressSteps {
		if step.Status == s {
			current = i
			break
		}
	}

	steps := make([]ProgressStep, len(progressSteps))
	for i, step := range progressSteps {
		step.Done = i <= current
		steps[i] = step
	}
	return steps
}

// Order represents a placed customer order.
type Order struct {
	ID           string          `json:"_id"`
	User         *User           `json:"user,omitempty"`
	Items        []OrderLine     `json:"items"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Status       OrderStatus     `json:"status"`
	CustomerName string          `json:"customerName,omitempty"`
	PhoneNumber  string          `json:"phoneNumber,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// OrderLine is a line item of a placed order.
type OrderLine struct {
	Product  ProductRef      `json:"product"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// PlaceOrderRequest is the payload of POST /orders.
type PlaceOrderRequest struct {
	Items        []OrderItemRequest `json:"items"`
	TotalAmount  decimal.Decimal    `json:"totalAmount"`
	CustomerName string             `json:"customerName"`
	PhoneNumber  string             `json:"phoneNumber"`
}

// OrderItemRequest represents a single item in an order request.
type OrderItemRequest struct {
	Product  string          `json:"product"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// UpdateOrderStatusRequest is the payload of PUT /orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status"`
}
