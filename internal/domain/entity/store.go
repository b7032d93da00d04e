package entity

import (
	"time"

	"github.com/google/uuid"
)

// StoreStatus is the moderation state of a store.
type StoreStatus string

const (
	// StoreStatusPending means the store awaits moderation.
	StoreStatusPending StoreStatus = "pending"
	// StoreStatusApproved means the store is visible in discovery.
	StoreStatusApproved StoreStatus = "approved"
	// StoreStatusRejected means moderation declined the store.
	StoreStatusRejected StoreStatus = "rejected"
	// StoreStatusBlocked means the store was suspended after approval.
	StoreStatusBlocked StoreStatus = "blocked"
)

// Store represents a seller's pickup point with its opening-hours window.
// OpensAtMinute/ClosesAtMinute are minutes since midnight in the engine's
// configured local time; an open minute greater than the close minute means
// the window wraps past midnight.
type Store struct {
	ID            uuid.UUID   `json:"id"`
	SellerID      uuid.UUID   `json:"seller_id"`
	Name          string      `json:"name"`
	Status        StoreStatus `json:"status"`
	Location      *Coordinate `json:"location,omitempty"` // nil when the seller has not set one yet
	OpensAtMinute int         `json:"opens_at_minute"`
	ClosesAtMinute int        `json:"closes_at_minute"`

	// Products is populated only by discovery queries that preload the
	// store's currently visible listings.
	Products []*Product `json:"products,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsApproved reports whether the store may appear in discovery results.
func (s *Store) IsApproved() bool {
	return s.Status == StoreStatusApproved
}
