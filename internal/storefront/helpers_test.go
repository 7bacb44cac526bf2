package storefront

import (
	"io"
	"log/slog"

	"whatsorder/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func int64Ptr(v int64) *int64 {
	return &v
}

// newTestStorefront has products A (₦1,000) and B (₦500) plus an uncategorized C.
func newTestStorefront() *entity.Storefront {
	return &entity.Storefront{
		Business: entity.PublicBusiness{
			ID:             7,
			Name:           "Mama Cass Kitchen",
			Slug:           "mama-cass-kitchen",
			WhatsAppNumber: "2348012345678",
		},
		Products: []*entity.Product{
			{ID: 1, BusinessID: 7, CategoryID: int64Ptr(10), Name: "Jollof Rice", Price: decimal.NewFromInt(1000)},
			{ID: 2, BusinessID: 7, CategoryID: int64Ptr(11), Name: "Zobo", Price: decimal.NewFromInt(500)},
			{ID: 3, BusinessID: 7, Name: "Puff Puff", Price: decimal.RequireFromString("150.50")},
		},
		Categories: []*entity.Category{
			{ID: 11, BusinessID: 7, Name: "Drinks"},
			{ID: 10, BusinessID: 7, Name: "Mains"},
			{ID: 12, BusinessID: 7, Name: "Soups"},
		},
	}
}
