package repository

import (
	"context"

	"mazza/internal/domain/entity"
	"mazza/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrderCode is returned when a pickup code collides with an
	// existing order. The caller retries with a fresh code.
	ErrDuplicateOrderCode = errors.New("order code already exists")
	// ErrOrderStateConflict is returned when a compare-and-set status update
	// finds the order no longer in the expected state.
	ErrOrderStateConflict = errors.New("order is not in the expected state")
)

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// CreateOrder persists a new pending order. Fails with
	// ErrDuplicateOrderCode when the pickup code is already taken.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order by its unique ID.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrderByCode retrieves an order by its pickup code.
	FindOrderByCode(ctx context.Context, code string) (*entity.Order, error)

	// UpdateOrderStatus performs a compare-and-set transition: the status
	// changes to next only if it currently equals expected. Otherwise
	// ErrOrderStateConflict is returned and nothing changes.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, expected, next entity.OrderStatus) error

	// FindOrdersByBuyer retrieves a buyer's orders, newest first.
	FindOrdersByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error)

	// FindPendingOrdersByStore retrieves all pending orders against a
	// store's products, oldest first, for the seller's approval queue.
	FindPendingOrdersByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Order, error)
}
