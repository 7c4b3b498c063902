package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Staff is a bakery employee managed from the admin console.
type Staff struct {
	ID         string          `json:"_id,omitempty"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Position   string          `json:"position"`
	Department string          `json:"department"`
	Salary     decimal.Decimal `json:"salary"`
}

// MenuCategory groups menu items.
type MenuCategory struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// MenuItem is a menu entry edited from the menu management screen. It shares
// the product pricing shape; Category holds the category id.
type MenuItem = Product

// Report is a free-form analytics document (stats, analytics, dashboard).
type Report map[string]json.RawMessage
