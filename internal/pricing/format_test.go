package pricing

import (
	"testing"

	"ovenaura/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatter_Price(t *testing.T) {
	f := NewFormatter("")

	assert.Equal(t, "₹380", f.Price(dec(380)))
	assert.Equal(t, "₹12.5", f.Price(decimal.RequireFromString("12.50")))
	assert.Equal(t, "$0", NewFormatter("$").Price(decimal.Zero))
}

func TestFormatter_Label(t *testing.T) {
	f := NewFormatter("₹")

	tests := []struct {
		name     string
		product  *model.Product
		expected string
	}{
		{
			name:     "Size range",
			product:  pizza(),
			expected: "₹250 - ₹350",
		},
		{
			name: "All sizes share one price",
			product: &model.Product{Sizes: []model.SizeOption{
				{Size: "S", Price: dec(99)},
				{Size: "L", Price: dec(99)},
			}},
			expected: "₹99",
		},
		{
			name:     "Flat price",
			product:  &model.Product{Price: dec(45)},
			expected: "₹45",
		},
		{
			name:     "Single size",
			product:  &model.Product{Price: dec(10), Sizes: []model.SizeOption{{Size: "Regular", Price: dec(60)}}},
			expected: "₹60",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, f.Label(tt.product))
		})
	}
}
