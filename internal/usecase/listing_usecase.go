package usecase

import (
	"context"
	"time"

	"mazza/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateStoreInput represents the input for registering a new store.
type CreateStoreInput struct {
	Name           string   `json:"name"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	OpensAtMinute  int      `json:"opens_at_minute"`
	ClosesAtMinute int      `json:"closes_at_minute"`
}

// UpdateStoreHoursInput represents the input for changing opening hours.
type UpdateStoreHoursInput struct {
	OpensAtMinute  int `json:"opens_at_minute"`
	ClosesAtMinute int `json:"closes_at_minute"`
}

// UpdateStoreLocationInput represents the input for moving the pickup point.
type UpdateStoreLocationInput struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateProductInput represents the input for publishing a new listing.
type CreateProductInput struct {
	Name           string     `json:"name"`
	Price          float64    `json:"price"`
	OriginalPrice  *float64   `json:"original_price,omitempty"`
	Quantity       int        `json:"quantity"`
	AvailableFrom  *time.Time `json:"available_from,omitempty"`
	AvailableUntil time.Time  `json:"available_until"`
}

// UpdateProductInput represents the input for editing a listing. Nil fields
// are left unchanged.
type UpdateProductInput struct {
	Name           *string    `json:"name,omitempty"`
	Price          *float64   `json:"price,omitempty"`
	OriginalPrice  *float64   `json:"original_price,omitempty"`
	Quantity       *int       `json:"quantity,omitempty"`
	AvailableFrom  *time.Time `json:"available_from,omitempty"`
	AvailableUntil *time.Time `json:"available_until,omitempty"`
	IsActive       *bool      `json:"is_active,omitempty"`
}

// ListingUsecase defines the interface for seller-side store and listing management.
type ListingUsecase interface {
	// Store management
	CreateStore(ctx context.Context, sellerID uuid.UUID, input *CreateStoreInput) (*entity.Store, error)
	GetOwnStore(ctx context.Context, sellerID uuid.UUID) (*entity.Store, error)
	UpdateStoreHours(ctx context.Context, sellerID uuid.UUID, input *UpdateStoreHoursInput) (*entity.Store, error)
	UpdateStoreLocation(ctx context.Context, sellerID uuid.UUID, input *UpdateStoreLocationInput) (*entity.Store, error)

	// Listing management
	CreateProduct(ctx context.Context, sellerID uuid.UUID, input *CreateProductInput) (*entity.Product, error)
	ListOwnProducts(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error)
	UpdateProduct(ctx context.Context, sellerID, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeactivateProduct(ctx context.Context, sellerID, productID uuid.UUID) error
}
