package postgres

import (
	"context"
	"time"

	"mazza/internal/domain/entity"
	domainerrors "mazza/internal/domain/errors"
	"mazza/internal/domain/repository"
	"mazza/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// storeRepository implements the domain.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

// CreateStore persists a new store in pending status.
func (repo *storeRepository) CreateStore(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("seller already owns a store")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// FindStoreByID retrieves a store by its unique ID.
func (repo *storeRepository) FindStoreByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&storeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by ID")
	}

	return toStoreDomain(&storeM), nil
}

// FindStoreBySeller retrieves the store owned by a seller account.
func (repo *storeRepository) FindStoreBySeller(ctx context.Context, sellerID uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel
	err := repo.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		First(&storeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by seller")
	}

	return toStoreDomain(&storeM), nil
}

// FindApprovedStoresWithVisibleProducts retrieves all approved stores that
// have at least one purchasable listing at the given moment. The visibility
// window is applied both in the EXISTS filter and in the preload so the
// returned product lists carry only what a buyer may actually order.
func (repo *storeRepository) FindApprovedStoresWithVisibleProducts(ctx context.Context, now time.Time) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel
	// Discovery is the hottest read path; route it to replicas when configured.
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("status = ?", string(entity.StoreStatusApproved)).
		Where(`EXISTS (
			SELECT 1 FROM products p
			WHERE p.store_id = stores.id
			  AND p.deleted_at IS NULL
			  AND p.is_active
			  AND p.available_until > ?
			  AND (p.available_from IS NULL OR p.available_from <= ?)
		)`, now, now).
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.
				Where("is_active").
				Where("available_until > ?", now).
				Where("available_from IS NULL OR available_from <= ?", now).
				Order("available_until ASC")
		}).
		Find(&storeModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find approved stores with visible products")
	}

	stores := make([]*entity.Store, 0, len(storeModels))
	for _, storeM := range storeModels {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores, nil
}

// HasApprovedStores reports whether any approved store exists at all.
func (repo *storeRepository) HasApprovedStores(ctx context.Context) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("status = ?", string(entity.StoreStatusApproved)).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to count approved stores")
	}

	return count > 0, nil
}

// UpdateStoreHours updates the opening-hours window.
func (repo *storeRepository) UpdateStoreHours(ctx context.Context, id uuid.UUID, opensAtMinute, closesAtMinute int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"opens_at_minute":  opensAtMinute,
			"closes_at_minute": closesAtMinute,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update store hours")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// UpdateStoreLocation updates the store's pickup coordinate.
func (repo *storeRepository) UpdateStoreLocation(ctx context.Context, id uuid.UUID, location entity.Coordinate) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"latitude":  location.Latitude,
			"longitude": location.Longitude,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update store location")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// UpdateStoreStatus moves the store through the moderation workflow.
func (repo *storeRepository) UpdateStoreStatus(ctx context.Context, id uuid.UUID, status entity.StoreStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update store status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

func fromStoreDomain(store *entity.Store) *model.StoreModel {
	storeM := &model.StoreModel{
		ID:             store.ID,
		SellerID:       store.SellerID,
		Name:           store.Name,
		Status:         string(store.Status),
		OpensAtMinute:  store.OpensAtMinute,
		ClosesAtMinute: store.ClosesAtMinute,
	}
	if store.Location != nil {
		lat, lon := store.Location.Latitude, store.Location.Longitude
		storeM.Latitude = &lat
		storeM.Longitude = &lon
	}

	return storeM
}

func toStoreDomain(storeM *model.StoreModel) *entity.Store {
	store := &entity.Store{
		ID:             storeM.ID,
		SellerID:       storeM.SellerID,
		Name:           storeM.Name,
		Status:         entity.StoreStatus(storeM.Status),
		OpensAtMinute:  storeM.OpensAtMinute,
		ClosesAtMinute: storeM.ClosesAtMinute,
		CreatedAt:      storeM.CreatedAt,
		UpdatedAt:      storeM.UpdatedAt,
	}
	if storeM.Latitude != nil && storeM.Longitude != nil {
		store.Location = &entity.Coordinate{
			Latitude:  *storeM.Latitude,
			Longitude: *storeM.Longitude,
		}
	}
	for _, productM := range storeM.Products {
		store.Products = append(store.Products, toProductDomain(productM))
	}

	return store
}
