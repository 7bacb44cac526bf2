// Package storefront composes customer orders from a public catalog snapshot:
// the cart, its totals, the WhatsApp message and the wa.me deep link.
package storefront

import (
	"whatsorder/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Cart maps product ids to quantities. Quantities never go below zero and
// zero entries take no part in totals.
type Cart struct {
	quantities map[int64]int
}

// Line is one non-empty cart entry priced against the catalog.
type Line struct {
	Product  *entity.Product
	Quantity int
	Subtotal decimal.Decimal
}

func NewCart() *Cart {
	return &Cart{quantities: make(map[int64]int)}
}

// Increment adds one unit and returns the new quantity.
func (c *Cart) Increment(productID int64) int {
	return c.SetQuantity(productID, c.quantities[productID]+1)
}

// Decrement removes one unit, stopping at zero, and returns the new quantity.
func (c *Cart) Decrement(productID int64) int {
	return c.SetQuantity(productID, c.quantities[productID]-1)
}

// SetQuantity stores qty, clamped at zero, and returns the stored value.
func (c *Cart) SetQuantity(productID int64, qty int) int {
	if qty <= 0 {
		delete(c.quantities, productID)

		return 0
	}
	c.quantities[productID] = qty

	return qty
}

// Quantity returns the units selected for a product.
func (c *Cart) Quantity(productID int64) int {
	return c.quantities[productID]
}

// Count returns the number of units across all products.
func (c *Cart) Count() int {
	count := 0
	for _, qty := range c.quantities {
		count += qty
	}

	return count
}

// IsEmpty reports whether no product has a positive quantity.
func (c *Cart) IsEmpty() bool {
	return len(c.quantities) == 0
}

// Clear empties the cart.
func (c *Cart) Clear() {
	clear(c.quantities)
}

// Lines returns the selected products in catalog order. Ids missing from
// products are skipped.
func (c *Cart) Lines(products []*entity.Product) []Line {
	lines := make([]Line, 0, len(c.quantities))
	for _, p := range products {
		qty := c.quantities[p.ID]
		if qty <= 0 {
			continue
		}
		lines = append(lines, Line{
			Product:  p,
			Quantity: qty,
			Subtotal: p.Price.Mul(decimal.NewFromInt(int64(qty))),
		})
	}

	return lines
}

// Total sums the line subtotals exactly.
func Total(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Subtotal)
	}

	return total
}
