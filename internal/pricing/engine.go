// Package pricing derives line-item prices for customisable menu items.
package pricing

import (
	"ovenaura/internal/model"

	"github.com/shopspring/decimal"
)

// Selection is the customer's current choice on a product detail view.
type Selection struct {
	Size     string   `json:"size,omitempty"`
	Toppings []string `json:"toppings,omitempty"`
	Quantity int      `json:"quantity"`
}

// Quote is the price derived from a product and a selection. Size is the
// size the base price came from and is empty for flat-priced items.
// SizeMatched is false when the product declares sizes but none matched the
// selection, in which case the flat price was used.
type Quote struct {
	Size        string                `json:"size,omitempty"`
	SizeMatched bool                  `json:"sizeMatched"`
	BasePrice   decimal.Decimal       `json:"basePrice"`
	Surcharge   decimal.Decimal       `json:"surcharge"`
	UnitPrice   decimal.Decimal       `json:"unitPrice"`
	Total       decimal.Decimal       `json:"total"`
	Quantity    int                   `json:"quantity"`
	Toppings    []model.ToppingChoice `json:"toppings"`
}

// Compute prices a selection. It never fails: an unmatched size falls back to
// the flat price, unknown toppings add nothing and a quantity below one is
// treated as one. The product must be non-nil.
func Compute(p *model.Product, sel Selection) Quote {
	quantity := sel.Quantity
	if quantity < 1 {
		quantity = 1
	}

	q := Quote{
		Quantity:    quantity,
		SizeMatched: true,
		Toppings:    []model.ToppingChoice{},
	}

	q.BasePrice, q.Size, q.SizeMatched = basePrice(p, sel.Size)

	selected := make(map[string]struct{}, len(sel.Toppings))
	for _, name := range sel.Toppings {
		selected[name] = struct{}{}
	}

	q.Surcharge = decimal.Zero
	for _, t := range p.Toppings {
		if _, ok := selected[t.Name]; !ok {
			continue
		}
		q.Surcharge = q.Surcharge.Add(t.Price)
		q.Toppings = append(q.Toppings, model.ToppingChoice{Name: t.Name, Price: t.Price})
	}

	q.UnitPrice = q.BasePrice.Add(q.Surcharge)
	q.Total = q.UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))

	return q
}

// basePrice resolves the effective base price. With sizes declared, an empty
// selection means the first declared size.
func basePrice(p *model.Product, size string) (decimal.Decimal, string, bool) {
	if len(p.Sizes) == 0 {
		return p.Price, "", true
	}

	if size == "" {
		return p.Sizes[0].Price, p.Sizes[0].Size, true
	}

	for _, s := range p.Sizes {
		if s.Size == size {
			return s.Price, s.Size, true
		}
	}

	return p.Price, "", false
}

// DefaultSelection is the selection a product detail view starts from.
func DefaultSelection(p *model.Product) Selection {
	sel := Selection{Quantity: 1}
	if len(p.Sizes) > 0 {
		sel.Size = p.Sizes[0].Size
	}
	return sel
}

// Range returns the lowest and highest size price. ok is false when the
// product has no sizes.
func Range(p *model.Product) (low, high decimal.Decimal, ok bool) {
	if len(p.Sizes) == 0 {
		return decimal.Zero, decimal.Zero, false
	}

	low, high = p.Sizes[0].Price, p.Sizes[0].Price
	for _, s := range p.Sizes[1:] {
		if s.Price.LessThan(low) {
			low = s.Price
		}
		if s.Price.GreaterThan(high) {
			high = s.Price
		}
	}
	return low, high, true
}
