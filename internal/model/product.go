package model

import "github.com/shopspring/decimal"

// ItemType classifies a menu item for display and filtering.
type ItemType string

const (
	ItemTypeVeg     ItemType = "veg"
	ItemTypeNonVeg  ItemType = "non-veg"
	ItemTypeClassic ItemType = "classic"
)

// Product represents a bakery or café item in the catalogue.
// Price is the flat price and may be zero when Sizes carries the pricing.
type Product struct {
	ID          string          `json:"_id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Image       string          `json:"image,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category,omitempty"`
	Subcategory string          `json:"subcategory,omitempty"`
	ItemType    ItemType        `json:"itemType,omitempty"`
	Sizes       []SizeOption    `json:"sizes,omitempty"`
	Toppings    []Topping       `json:"toppings,omitempty"`
}

// SizeOption is one selectable size with its own price.
type SizeOption struct {
	Size  string          `json:"size"`
	Price decimal.Decimal `json:"price"`
}

// Topping is an optional add-on with a surcharge.
type Topping struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category,omitempty"`
}

// ToppingChoice is a selected topping with the price resolved at selection time.
type ToppingChoice struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// HasOptions reports whether the product needs a size or topping choice.
func (p *Product) HasOptions() bool {
	return len(p.Sizes) > 0 || len(p.Toppings) > 0
}

// ToppingsByCategory returns the toppings whose category matches.
func (p *Product) ToppingsByCategory(category string) []Topping {
	var out []Topping
	for _, t := range p.Toppings {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// ProductFilter narrows a catalogue listing.
type ProductFilter struct {
	Search      string
	Category    string
	Subcategory string
}
