package entity

import "github.com/shopspring/decimal"

func init() {
	// Prices travel as JSON numbers, the shape storefront clients send back in orders.
	decimal.MarshalJSONWithoutQuotes = true
}
