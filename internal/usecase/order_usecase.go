package usecase

import (
	"context"

	"mazza/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrderInput represents the input for placing a new order.
type CreateOrderInput struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// OrderOutput is an order enriched with its product and store context.
type OrderOutput struct {
	Order   *entity.Order   `json:"order"`
	Product *entity.Product `json:"product,omitempty"`
	Store   *entity.Store   `json:"store,omitempty"`
}

// OrderUsecase defines the interface for the order lifecycle.
type OrderUsecase interface {
	// CreateOrder places a pending order for a buyer. Stock is checked but
	// not reserved; the decrement happens at confirmation.
	CreateOrder(ctx context.Context, buyerID uuid.UUID, input *CreateOrderInput) (*OrderOutput, error)

	// ConfirmOrder moves a pending order to confirmed and atomically
	// decrements the product stock. Only the owning seller may confirm.
	ConfirmOrder(ctx context.Context, sellerID, orderID uuid.UUID) (*OrderOutput, error)

	// RejectOrder moves a pending order to cancelled. The owning seller or
	// the buyer may reject; stock is untouched.
	RejectOrder(ctx context.Context, actorID, orderID uuid.UUID) (*OrderOutput, error)

	// GetOrder retrieves an order for one of its participants.
	GetOrder(ctx context.Context, actorID, orderID uuid.UUID) (*OrderOutput, error)

	// ListBuyerOrders retrieves a buyer's order history, newest first.
	ListBuyerOrders(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error)

	// ListStorePendingOrders retrieves the seller's approval queue, oldest first.
	ListStorePendingOrders(ctx context.Context, sellerID uuid.UUID) ([]*entity.Order, error)

	// PickupQR renders the order's pickup code as a PNG for a participant.
	PickupQR(ctx context.Context, actorID, orderID uuid.UUID) ([]byte, error)
}
