package service

import (
	"context"
)

// Order event types carried on the bus.
const (
	OrderEventSellerMessage = "seller_message"
	OrderEventBuyerMessage  = "buyer_message"
)

// OrderEvent represents an order-related notification to be delivered
// asynchronously by the order worker.
type OrderEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	EventID   string `json:"event_id"`
	Type      string `json:"type"` // seller_message or buyer_message
	OrderID   string `json:"order_id"`
	OrderCode string `json:"order_code"`
	BuyerID   string `json:"buyer_id,omitempty"`
	StoreID   string `json:"store_id,omitempty"`
	Message   string `json:"message"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
