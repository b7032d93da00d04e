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

// orderRepository implements the domain.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder persists a new pending order.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrderCode
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidQuantity
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindOrderByID retrieves an order by its unique ID.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindOrderByCode retrieves an order by its pickup code.
func (repo *orderRepository) FindOrderByCode(ctx context.Context, code string) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("code = ?", code).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by code")
	}

	return toOrderDomain(&orderM), nil
}

// UpdateOrderStatus performs a compare-and-set transition. The WHERE clause
// carries the expected status, so a transition losing the race affects zero
// rows instead of clobbering a terminal state.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, expected, next entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, string(expected)).
		Update("status", string(next))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		// Either the order does not exist or it is no longer in the
		// expected state.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.OrderModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check order existence")
		}
		if count == 0 {
			return repository.ErrOrderNotFound
		}

		return repository.ErrOrderStateConflict
	}

	return nil
}

// FindOrdersByBuyer retrieves a buyer's orders, newest first.
func (repo *orderRepository) FindOrdersByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by buyer")
	}

	return toOrderDomainSlice(orderModels), nil
}

// FindPendingOrdersByStore retrieves all pending orders against a store's
// products, oldest first.
func (repo *orderRepository) FindPendingOrdersByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Joins("JOIN products ON products.id = orders.product_id").
		Where("products.store_id = ?", storeID).
		Where("orders.status = ?", string(entity.OrderStatusPending)).
		Order("orders.created_at ASC").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pending orders by store")
	}

	return toOrderDomainSlice(orderModels), nil
}

func fromOrderDomain(order *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:         order.ID,
		Code:       order.Code,
		BuyerID:    order.BuyerID,
		ProductID:  order.ProductID,
		Quantity:   order.Quantity,
		TotalPrice: order.TotalPrice,
		Status:     string(order.Status),
	}
}

func toOrderDomain(orderM *model.OrderModel) *entity.Order {
	return &entity.Order{
		ID:         orderM.ID,
		Code:       orderM.Code,
		BuyerID:    orderM.BuyerID,
		ProductID:  orderM.ProductID,
		Quantity:   orderM.Quantity,
		TotalPrice: orderM.TotalPrice,
		Status:     entity.OrderStatus(orderM.Status),
		CreatedAt:  orderM.CreatedAt,
		UpdatedAt:  orderM.UpdatedAt,
	}
}

func toOrderDomainSlice(orderModels []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}
