package usecase

import (
	"context"

	"whatsorder/internal/domain/entity"
)

// LogOrderInput is the public order log payload.
type LogOrderInput struct {
	BusinessID   int64
	CustomerNote *string
	TotalPrice   float64
	ItemsSummary string
}

// OrderUsecase defines the order log operations.
type OrderUsecase interface {
	// LogOrder appends a pending order. It requires no credential.
	LogOrder(ctx context.Context, input *LogOrderInput) (*entity.Order, error)

	// ListOwnOrders returns the caller's orders newest first, or an empty list
	// when the caller has no business yet.
	ListOwnOrders(ctx context.Context, ownerID string) ([]*entity.Order, error)
}
