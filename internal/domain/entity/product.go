package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a priced catalog item.
type Product struct {
	ID         int64           `json:"id"`
	BusinessID int64           `json:"business_id"`
	CategoryID *int64          `json:"category_id"` // nil when uncategorized
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	ImageURL   *string         `json:"image_url"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ProductFields is the raw owner input for a product.
type ProductFields struct {
	Name       string
	Price      float64
	CategoryID *int64
	ImageURL   *string
}

// NewProduct validates the fields. Category ownership is checked by the caller.
func NewProduct(businessID int64, fields ProductFields) (*Product, error) {
	p := &Product{BusinessID: businessID}
	if err := p.ApplyUpdate(fields); err != nil {
		return nil, err
	}

	return p, nil
}

// ApplyUpdate replaces every editable field; category and image are cleared when omitted.
func (p *Product) ApplyUpdate(fields ProductFields) error {
	name, err := ParseItemName(fields.Name)
	if err != nil {
		return err
	}

	price, err := ParsePrice("price", fields.Price)
	if err != nil {
		return err
	}

	if fields.CategoryID != nil && *fields.CategoryID <= 0 {
		return newFieldError("categoryId", "must be a positive id")
	}

	p.Name = name
	p.Price = price
	p.CategoryID = fields.CategoryID
	p.ImageURL = OptionalText(fields.ImageURL)

	return nil
}
