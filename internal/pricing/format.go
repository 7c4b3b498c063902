package pricing

import (
	"ovenaura/internal/model"

	"github.com/shopspring/decimal"
)

// DefaultSymbol is the currency prefix used when none is configured.
const DefaultSymbol = "₹"

// Formatter renders prices with a single currency-symbol prefix.
type Formatter struct {
	Symbol string
}

// NewFormatter creates a formatter, defaulting the symbol.
func NewFormatter(symbol string) Formatter {
	if symbol == "" {
		symbol = DefaultSymbol
	}
	return Formatter{Symbol: symbol}
}

// Price formats an amount without rounding.
func (f Formatter) Price(amount decimal.Decimal) string {
	return f.Symbol + amount.String()
}

// Label formats the catalogue price of a product: the size range when sizes
// exist, collapsed to one value when every size costs the same.
func (f Formatter) Label(p *model.Product) string {
	low, high, ok := Range(p)
	if !ok {
		return f.Price(p.Price)
	}
	if low.Equal(high) {
		return f.Price(low)
	}
	return f.Price(low) + " - " + f.Price(high)
}
