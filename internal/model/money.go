package model

import "github.com/shopspring/decimal"

func init() {
	// The backend reads prices as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}
