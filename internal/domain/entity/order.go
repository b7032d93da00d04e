package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPending is the only creatable state.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusConfirmed is terminal; the seller accepted and stock was decremented.
	OrderStatusConfirmed OrderStatus = "confirmed"
	// OrderStatusCancelled is terminal; the seller rejected or the buyer cancelled.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsTerminal reports whether no further transition is permitted.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusConfirmed || s == OrderStatusCancelled
}

// Order is a buyer's claim on product stock. TotalPrice is captured at
// creation time and never recomputed afterwards.
type Order struct {
	ID         uuid.UUID   `json:"id"`
	Code       string      `json:"code"` // unique human-readable pickup code
	BuyerID    uuid.UUID   `json:"buyer_id"`
	ProductID  uuid.UUID   `json:"product_id"`
	Quantity   int         `json:"quantity"`
	TotalPrice float64     `json:"total_price"`
	Status     OrderStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
