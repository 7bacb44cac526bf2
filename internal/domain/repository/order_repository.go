package repository

import (
	"context"

	"whatsorder/internal/domain/entity"
)

// OrderRepository persists the order log. Orders are never updated.
type OrderRepository interface {
	// CreateOrder appends an order.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// ListOrders returns the business's orders, newest first.
	ListOrders(ctx context.Context, businessID int64) ([]*entity.Order, error)
}
