// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"mazza/internal/domain/entity"
	"mazza/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for store persistence.
var (
	// ErrStoreNotFound is returned when a store is not found.
	ErrStoreNotFound = errors.New("store not found")
)

// StoreRepository defines the interface for store-related database operations.
type StoreRepository interface {
	// CreateStore persists a new store in pending status.
	CreateStore(ctx context.Context, store *entity.Store) error

	// FindStoreByID retrieves a store by its unique ID.
	FindStoreByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// FindStoreBySeller retrieves the store owned by a seller account.
	FindStoreBySeller(ctx context.Context, sellerID uuid.UUID) (*entity.Store, error)

	// FindApprovedStoresWithVisibleProducts retrieves all approved stores
	// that have at least one product visible at the given moment, with those
	// products preloaded on each store.
	FindApprovedStoresWithVisibleProducts(ctx context.Context, now time.Time) ([]*entity.Store, error)

	// HasApprovedStores reports whether any approved store exists at all.
	// Discovery uses it to distinguish "nothing approved yet" from
	// "approved stores exist but nothing is visible right now".
	HasApprovedStores(ctx context.Context) (bool, error)

	// UpdateStoreHours updates the opening-hours window.
	UpdateStoreHours(ctx context.Context, id uuid.UUID, opensAtMinute, closesAtMinute int) error

	// UpdateStoreLocation updates the store's pickup coordinate.
	UpdateStoreLocation(ctx context.Context, id uuid.UUID, location entity.Coordinate) error

	// UpdateStoreStatus moves the store through the moderation workflow.
	UpdateStoreStatus(ctx context.Context, id uuid.UUID, status entity.StoreStatus) error
}
