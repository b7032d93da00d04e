package repository

import (
	"context"

	"mazza/internal/domain/entity"
	"mazza/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateProductCode is returned when a listing code collides.
	ErrDuplicateProductCode = errors.New("product code already exists")
	// ErrInsufficientStock is returned when a conditional decrement would
	// take the quantity below zero. The update leaves the row untouched.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// CreateProduct persists a new listing.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product by its unique ID.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindProductsByStore retrieves all listings of a store, newest first.
	FindProductsByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Product, error)

	// UpdateProduct updates an existing listing record.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// TryDecrementQuantity atomically checks and subtracts stock:
	// quantity >= amount => quantity -= amount, in a single conditional
	// update. When the remaining quantity hits zero the product is
	// deactivated in the same statement. Returns the new quantity, or
	// ErrInsufficientStock with no mutation.
	TryDecrementQuantity(ctx context.Context, id uuid.UUID, amount int) (int, error)

	// DeactivateProduct soft-disables a listing. Listings are never
	// hard-deleted while orders reference them.
	DeactivateProduct(ctx context.Context, id uuid.UUID) error
}
