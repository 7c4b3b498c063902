package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_Progress(t *testing.T) {
	tests := []struct {
		name         string
		status       OrderStatus
		expectedDone int
	}{
		{name: "Pending", status: OrderStatusPending, expectedDone: 1},
		{name: "Preparing", status: OrderStatusPreparing, expectedDone: 3},
		{name: "Delivered", status: OrderStatusDelivered, expectedDone: 5},
		{name: "Cancelled", status: OrderStatusCancelled, expectedDone: 0},
		{name: "Unknown", status: OrderStatus("lost"), expectedDone: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := tt.status.Progress()
			require.Len(t, steps, 5)

			done := 0
			for i, step := range steps {
				if step.Done {
					done++
					assert.Equal(t, i+1, done, "done steps must be a prefix")
				}
			}
			assert.Equal(t, tt.expectedDone, done)
		})
	}
}

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range OrderStatuses {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, OrderStatus("shipped").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestCart_Clone(t *testing.T) {
	original := Cart{
		Items: []CartLine{
			{ID: "l1", Quantity: 1, Toppings: []ToppingChoice{{Name: "Cheese"}}},
		},
	}

	clone := original.Clone()
	clone.Items[0].Quantity = 5
	clone.Items[0].Toppings[0].Name = "Olives"

	assert.Equal(t, 1, original.Items[0].Quantity)
	assert.Equal(t, "Cheese", original.Items[0].Toppings[0].Name)
}

func TestProductRef_MarshalJSON(t *testing.T) {
	byID, err := ProductRef{ID: "p1"}.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"p1"`, string(byID))

	populated, err := ProductRef{ID: "p1", Product: &Product{ID: "p1", Name: "Rye"}}.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(populated), `"name":"Rye"`)
}
