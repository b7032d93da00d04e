// Package service defines domain-facing ports implemented by infrastructure.
package service

import (
	"context"

	"github.com/google/uuid"
)

// Notifier delivers short messages to buyers and sellers. Delivery is
// fire-and-forget from the engine's point of view: implementations log
// failures, and callers never roll back committed state because a
// notification could not be sent.
type Notifier interface {
	// NotifyBuyer sends a message to the buyer account.
	NotifyBuyer(ctx context.Context, buyerID uuid.UUID, message string) error

	// NotifySeller sends a message to the store's seller, e.g. a new-order
	// alert with approve/reject affordances.
	NotifySeller(ctx context.Context, storeID uuid.UUID, message string) error
}
