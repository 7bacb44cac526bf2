package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Order is the append-only log of a cart submitted through WhatsApp.
type Order struct {
	ID            int64           `json:"id"`
	BusinessID    int64           `json:"business_id"`
	CustomerNote  *string         `json:"customer_note"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	ItemsSummary  string          `json:"items_summary"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// OrderFields is the public order log input.
type OrderFields struct {
	BusinessID   int64
	CustomerNote *string
	TotalPrice   float64
	ItemsSummary string
}

// NewOrder validates the fields and returns a pending Order.
func NewOrder(fields OrderFields) (*Order, error) {
	if fields.BusinessID <= 0 {
		return nil, newFieldError("businessId", "must be a positive id")
	}

	total, err := ParseAmount("totalPrice", fields.TotalPrice)
	if err != nil {
		return nil, err
	}

	summary := strings.TrimSpace(fields.ItemsSummary)
	if summary == "" {
		return nil, newFieldError("itemsSummary", "is required")
	}

	return &Order{
		BusinessID:    fields.BusinessID,
		CustomerNote:  OptionalText(fields.CustomerNote),
		TotalPrice:    total,
		ItemsSummary:  summary,
		PaymentStatus: PaymentStatusPending,
	}, nil
}
