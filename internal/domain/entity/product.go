package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a time-limited surplus-food listing with limited stock.
// Quantity is only mutated by the conditional decrement on order confirmation
// or by explicit seller edits; a product whose quantity reaches zero is
// deactivated in the same operation and never hard-deleted while orders
// reference it.
type Product struct {
	ID            uuid.UUID  `json:"id"`
	StoreID       uuid.UUID  `json:"store_id"`
	Name          string     `json:"name"`
	Price         float64    `json:"price"`
	OriginalPrice *float64   `json:"original_price,omitempty"` // pre-discount price, for display
	Quantity      int        `json:"quantity"`
	AvailableFrom *time.Time `json:"available_from,omitempty"`
	AvailableUntil time.Time `json:"available_until"`
	IsActive      bool       `json:"is_active"`
	Code          string     `json:"code"` // unique short listing code

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
