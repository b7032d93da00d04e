package postgres

import (
	"context"

	"mazza/internal/domain/entity"
	domainerrors "mazza/internal/domain/errors"
	"mazza/internal/domain/repository"
	"mazza/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// CreateProduct persists a new listing.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProductCode
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindProductByID retrieves a product by its unique ID.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindProductsByStore retrieves all listings of a store, newest first.
func (repo *productRepository) FindProductsByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Product, error) {
	var productModels []*model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&productModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by store")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// UpdateProduct updates an existing listing record.
func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":            productM.Name,
			"price":           productM.Price,
			"original_price":  productM.OriginalPrice,
			"quantity":        productM.Quantity,
			"available_from":  productM.AvailableFrom,
			"available_until": productM.AvailableUntil,
			"is_active":       productM.IsActive,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// decrementRow receives the RETURNING clause of the conditional update.
type decrementRow struct {
	Quantity int
}

// TryDecrementQuantity atomically checks and subtracts stock in a single
// statement. The WHERE guard makes overselling impossible even under
// concurrent confirmations, and a listing that hits zero is deactivated in
// the same write.
func (repo *productRepository) TryDecrementQuantity(ctx context.Context, id uuid.UUID, amount int) (int, error) {
	var row decrementRow
	result := repo.db.WithContext(ctx).Raw(`
		UPDATE products
		SET quantity = quantity - ?,
		    is_active = CASE WHEN quantity - ? <= 0 THEN false ELSE is_active END,
		    updated_at = NOW()
		WHERE id = ? AND deleted_at IS NULL AND quantity >= ?
		RETURNING quantity`,
		amount, amount, id, amount).
		Scan(&row)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to decrement product quantity")
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing product from one that ran out of stock.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.ProductModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return 0, errors.Wrap(err, "failed to check product existence")
		}
		if count == 0 {
			return 0, repository.ErrProductNotFound
		}

		return 0, repository.ErrInsufficientStock
	}

	return row.Quantity, nil
}

// DeactivateProduct soft-disables a listing.
func (repo *productRepository) DeactivateProduct(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func fromProductDomain(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:             product.ID,
		StoreID:        product.StoreID,
		Name:           product.Name,
		Price:          product.Price,
		OriginalPrice:  product.OriginalPrice,
		Quantity:       product.Quantity,
		AvailableFrom:  product.AvailableFrom,
		AvailableUntil: product.AvailableUntil,
		IsActive:       product.IsActive,
		Code:           product.Code,
	}
}

func toProductDomain(productM *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:             productM.ID,
		StoreID:        productM.StoreID,
		Name:           productM.Name,
		Price:          productM.Price,
		OriginalPrice:  productM.OriginalPrice,
		Quantity:       productM.Quantity,
		AvailableFrom:  productM.AvailableFrom,
		AvailableUntil: productM.AvailableUntil,
		IsActive:       productM.IsActive,
		Code:           productM.Code,
		CreatedAt:      productM.CreatedAt,
		UpdatedAt:      productM.UpdatedAt,
	}
}
