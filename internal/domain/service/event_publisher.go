package service

import (
	"context"
	"time"
)

// OrderLoggedEvent is emitted after an order has been written to the log.
type OrderLoggedEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	EventID      string    `json:"event_id"`
	OrderID      int64     `json:"order_id"`
	BusinessID   int64     `json:"business_id"`
	TotalPrice   string    `json:"total_price"` // Decimal string, no float rounding
	ItemsSummary string    `json:"items_summary"`
	CreatedAt    time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderLogged publishes an order event for downstream consumers
	PublishOrderLogged(ctx context.Context, event *OrderLoggedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
