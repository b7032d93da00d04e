package impl

import (
	"context"
	"testing"
	"time"

	"mazza/internal/domain/entity"
	domainerrors "mazza/internal/domain/errors"
	"mazza/internal/domain/repository"
	mockRepo "mazza/internal/mocks/repository"
	mockService "mazza/internal/mocks/service"
	"mazza/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixture struct {
	storeRepo   *mockRepo.MockStoreRepository
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
	notifier    *mockService.MockNotifier
	ratings     *mockService.MockRatingsService
	qrService   *mockService.MockQRCodeService
	service     usecase.OrderUsecase

	store   *entity.Store
	product *entity.Product
}

func newOrderFixture(t *testing.T) *orderServiceFixture {
	t.Helper()

	f := &orderServiceFixture{
		storeRepo:   mockRepo.NewMockStoreRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		notifier:    mockService.NewMockNotifier(t),
		ratings:     mockService.NewMockRatingsService(t),
		qrService:   mockService.NewMockQRCodeService(t),
	}

	txManager := &stubTxManager{factory: &stubRepoFactory{
		storeRepo:   f.storeRepo,
		productRepo: f.productRepo,
		orderRepo:   f.orderRepo,
	}}

	f.service = NewOrderService(OrderServiceParams{
		TxManager:   txManager,
		StoreRepo:   f.storeRepo,
		ProductRepo: f.productRepo,
		OrderRepo:   f.orderRepo,
		Notifier:    f.notifier,
		Ratings:     f.ratings,
		QRService:   f.qrService,
		Clock:       newFixedClock(noonUTC, 0),
		Config:      newTestConfig(),
	}, newDiscardLogger())

	location := entity.Coordinate{Latitude: 41.31, Longitude: 69.25}
	f.store = &entity.Store{
		ID:             uuid.New(),
		SellerID:       uuid.New(),
		Name:           "bakery",
		Status:         entity.StoreStatusApproved,
		Location:       &location,
		OpensAtMinute:  540,
		ClosesAtMinute: 1320,
	}

	deadline := noonUTC.Add(6 * time.Hour)
	f.product = &entity.Product{
		ID:             uuid.New(),
		StoreID:        f.store.ID,
		Name:           "surprise bag",
		Price:          3.5,
		Quantity:       5,
		AvailableUntil: deadline,
		IsActive:       true,
		Code:           "AB23CD",
	}

	return f
}

func (f *orderServiceFixture) newPendingOrder(buyerID uuid.UUID, quantity int) *entity.Order {
	return &entity.Order{
		ID:         uuid.New(),
		Code:       "XY78WQ2K",
		BuyerID:    buyerID,
		ProductID:  f.product.ID,
		Quantity:   quantity,
		TotalPrice: f.product.Price * float64(quantity),
		Status:     entity.OrderStatusPending,
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	buyerID := uuid.New()

	f.productRepo.EXPECT().FindProductByID(ctx, f.product.ID).Return(f.product, nil)
	f.storeRepo.EXPECT().FindStoreByID(ctx, f.store.ID).Return(f.store, nil)
	f.orderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	f.notifier.EXPECT().NotifySeller(ctx, f.store.ID, mock.AnythingOfType("string")).Return(nil)

	output, err := f.service.CreateOrder(ctx, buyerID, &usecase.CreateOrderInput{
		ProductID: f.product.ID,
		Quantity:  2,
	})
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, entity.OrderStatusPending, output.Order.Status)
	assert.Equal(t, buyerID, output.Order.BuyerID)
	assert.InDelta(t, 7.0, output.Order.TotalPrice, 1e-9)
	assert.Len(t, output.Order.Code, 8)
	// Stock is not reserved at creation.
	assert.Equal(t, 5, output.Product.Quantity)
}

func TestOrderService_CreateOrder_InvalidQuantity(t *testing.T) {
	f := newOrderFixture(t)

	output, err := f.service.CreateOrder(context.Background(), uuid.New(), &usecase.CreateOrderInput{
		ProductID: f.product.ID,
		Quantity:  0,
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.Equal(t, domainerrors.ErrInvalidQuantity, err)
}

func TestOrderService_CreateOrder_QuantityExceedsStock(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	f.productRepo.EXPECT().FindProductByID(ctx, f.product.ID).Return(f.product, nil)
	f.storeRepo.EXPECT().FindStoreByID(ctx, f.store.ID).Return(f.store, nil)

	output, err := f.service.CreateOrder(ctx, uuid.New(), &usecase.CreateOrderInput{
		ProductID: f.product.ID,
		Quantity:  6,
	})
	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrQuantityExceedsStock.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_CreateOrder_ExpiredProduct(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	f.product.AvailableUntil = noonUTC.Add(-time.Hour)

	f.productRepo.EXPECT().FindProductByID(ctx, f.product.ID).Return(f.product, nil)

	output, err := f.service.CreateOrder(ctx, uuid.New(), &usecase.CreateOrderInput{
		ProductID: f.product.ID,
		Quantity:  1,
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.Equal(t, domainerrors.ErrProductNotAvailable, err)
}

func TestOrderService_CreateOrder_ProductNotFound(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	missingID := uuid.New()

	f.productRepo.EXPECT().FindProductByID(ctx, missingID).Return(nil, repository.ErrProductNotFound)

	output, err := f.service.CreateOrder(ctx, uuid.New(), &usecase.CreateOrderInput{
		ProductID: missingID,
		Quantity:  1,
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.Equal(t, domainerrors.ErrProductNotFound, err)
}

func TestOrderService_CreateOrder_RetriesOnCodeCollision(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	f.productRepo.EXPECT().FindProductByID(ctx, f.product.ID).Return(f.product, nil)
	f.storeRepo.EXPECT().FindStoreByID(ctx, f.store.ID).Return(f.store, nil)
	f.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(repository.ErrDuplicateOrderCode).Once()
	f.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil).Once()
	f.notifier.EXPECT().NotifySeller(ctx, f.store.ID, mock.AnythingOfType("string")).Return(nil)

	output, err := f.service.CreateOrder(ctx, uuid.New(), &usecase.CreateOrderInput{
		ProductID: f.product.ID,
		Quantity:  1,
	})
	require.NoError(t, err)
	assert.NotNil(t, output)
}

func TestOrderService_CreateOrder_CodeGenerationExhausted(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	f.productRepo.EXPECT().FindProductByID(ctx, f.product.ID).Return(f.product, nil)
	f.storeRepo.EXPECT().FindStoreByID(ctx, f.store.ID).Return(f.store, nil)
	f.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(repository.ErrDuplicateOrderCode).Times(5)

	output, err := f.service.CreateOrder(ctx, uuid.New(), &usecase.CreateOrderInput{
		ProductID: f.product.ID,
		Quantity:  1,
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.Equal(t, domainerrors.ErrOrderCodeExhausted, err)
}

func TestOrderService_ConfirmOrder_Success(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.newPendingOrder(uuid.New(), 2)

	f.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	f.productRepo.EXPECT().FindProductByID(ctx, f.product.ID).Return(f.product, nil)
	f.storeRepo.EXPECT().FindStoreByID(ctx, f.store.ID).Return(f.store, nil)
	f.orderRepo.EXPECT().
		UpdateOrderStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusConfirmed).
		Return(nil)
	f.productRepo.EXPECT().TryDecrementQuantity(ctx, f.product.ID, 2).Return(3, nil)
	f.notifier.EXPECT().NotifyBuyer(ctx, order.BuyerID, mock.AnythingOfType("string")).Return(nil)
	f.ratings.EXPECT().RequestPostPurchaseRating(ctx, order.BuyerID, f.product.ID).Return(nil)

	output, err := f.service.ConfirmOrder(ctx, f.store.SellerID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, output.Order.Status)
	assert.Equal(t, 3, output.Product.Quantity)
	assert.True(t, output.Product.IsActive)
}

func TestOrderService_ConfirmOrder_DeactivatesProductAtZeroStock(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.newPendingOrder(uuid.New(), 5)

	f.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	f.productRepo.EXPECT().FindProductByID(ctx, f.product.ID).Return(f.product, nil)
	f.storeRepo.EXPECT().FindStoreByID(ctx, f.store.ID).Return(f.store, nil)
	f.orderRepo.EXPECT().
		UpdateOrderStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusConfirmed).
		Return(nil)
	f.productRepo.EXPECT().TryDecrementQuantity(ctx, f.product.ID, 5).Return(0, nil)
	f.notifier.EXPECT().NotifyBuyer(ctx, order.BuyerID, mock.AnythingOfType("string")).Return(nil)
	f.ratings.EXPECT().RequestPostPurchaseRating(ctx, order.BuyerID, f.product.ID).Return(nil)

	output, err := f.service.ConfirmOrder(ctx, f.store.SellerID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, output.Product.Quantity)
	assert.False(t, output.Product.IsActive)
}

func TestOrderService_ConfirmOrder_NotStoreOwner(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.newPendingOrder(uuid.New(), 1)

	f.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	f.productRepo.EXPECT().FindProductByID(ctx, f.product.ID).Return(f.product, nil)
	f.storeRepo.EXPECT().FindStoreByID(ctx, f.store.ID).Return(f.store, nil)

	output, err := f.service.ConfirmOrder(ctx, uuid.New(), order.ID)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.Equal(t, domainerrors.ErrNotStoreOwner, err)
}

func TestOrderService_ConfirmOrder_AlreadyFinal(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.newPendingOrder(uuid.New(), 1)
	order.Status = entity.OrderStatusCancelled

	f.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	f.productRepo.EXPECT().FindProductByID(ctx, f.product.ID).Return(f.product, nil)
	f.storeRepo.EXPECT().FindStoreByID(ctx, f.store.ID).Return(f.store, nil)

	output, err := f.service.ConfirmOrder(ctx, f.store.SellerID, order.ID)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.Equal(t, domainerrors.ErrOrderAlreadyFinal, err)
}

func TestOrderService_ConfirmOrder_LostRaceReturnsAlreadyFinal(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.newPendingOrder(uuid.New(), 1)

	f.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	f.productRepo.EXPECT().FindProductByID(ctx, f.product.ID).Return(f.product, nil)
	f.storeRepo.EXPECT().FindStoreByID(ctx, f.store.ID).Return(f.store, nil)
	f.orderRepo.EXPECT().
		UpdateOrderStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusConfirmed).
		Return(repository.ErrOrderStateConflict)

	output, err := f.service.ConfirmOrder(ctx, f.store.SellerID, order.ID)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.Equal(t, domainerrors.ErrOrderAlreadyFinal, err)
}

func TestOrderService_ConfirmOrder_InsufficientStockRollsBack(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.newPendingOrder(uuid.New(), 5)

	f.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	f.productRepo.EXPECT().FindProductByID(ctx, f.product.ID).Return(f.product, nil)
	f.storeRepo.EXPECT().FindStoreByID(ctx, f.store.ID).Return(f.store, nil)
	f.orderRepo.EXPECT().
		UpdateOrderStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusConfirmed).
		Return(nil)
	f.productRepo.EXPECT().
		TryDecrementQuantity(ctx, f.product.ID, 5).
		Return(0, repository.ErrInsufficientStock)

	output, err := f.service.ConfirmOrder(ctx, f.store.SellerID, order.ID)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.Equal(t, domainerrors.ErrInsufficientStock, err)
}

func TestOrderService_RejectOrder_BySeller(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.newPendingOrder(uuid.New(), 1)

	f.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	f.productRepo.EXPECT().FindProductByID(ctx, f.product.ID).Return(f.product, nil)
	f.storeRepo.EXPECT().FindStoreByID(ctx, f.store.ID).Return(f.store, nil)
	f.orderRepo.EXPECT().
		UpdateOrderStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusCancelled).
		Return(nil)
	f.notifier.EXPECT().NotifyBuyer(ctx, order.BuyerID, mock.AnythingOfType("string")).Return(nil)

	output, err := f.service.RejectOrder(ctx, f.store.SellerID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, output.Order.Status)
}

func TestOrderService_RejectOrder_ByBuyer(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	buyerID := uuid.New()
	order := f.newPendingOrder(buyerID, 1)

	f.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	f.productRepo.EXPECT().FindProductByID(ctx, f.product.ID).Return(f.product, nil)
	f.storeRepo.EXPECT().FindStoreByID(ctx, f.store.ID).Return(f.store, nil)
	f.orderRepo.EXPECT().
		UpdateOrderStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusCancelled).
		Return(nil)
	f.notifier.EXPECT().NotifySeller(ctx, f.store.ID, mock.AnythingOfType("string")).Return(nil)

	output, err := f.service.RejectOrder(ctx, buyerID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, output.Order.Status)
}

func TestOrderService_RejectOrder_NotParticipant(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.newPendingOrder(uuid.New(), 1)

	f.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	f.productRepo.EXPECT().FindProductByID(ctx, f.product.ID).Return(f.product, nil)
	f.storeRepo.EXPECT().FindStoreByID(ctx, f.store.ID).Return(f.store, nil)

	output, err := f.service.RejectOrder(ctx, uuid.New(), order.ID)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.Equal(t, domainerrors.ErrNotOrderParticipant, err)
}

func TestOrderService_GetOrder_ByParticipants(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	buyerID := uuid.New()
	order := f.newPendingOrder(buyerID, 1)

	f.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	f.productRepo.EXPECT().FindProductByID(ctx, f.product.ID).Return(f.product, nil)
	f.storeRepo.EXPECT().FindStoreByID(ctx, f.store.ID).Return(f.store, nil)

	output, err := f.service.GetOrder(ctx, buyerID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, output.Order.ID)
	assert.Equal(t, f.store.ID, output.Store.ID)
}

func TestOrderService_GetOrder_NotParticipant(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.newPendingOrder(uuid.New(), 1)

	f.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	f.productRepo.EXPECT().FindProductByID(ctx, f.product.ID).Return(f.product, nil)
	f.storeRepo.EXPECT().FindStoreByID(ctx, f.store.ID).Return(f.store, nil)

	output, err := f.service.GetOrder(ctx, uuid.New(), order.ID)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.Equal(t, domainerrors.ErrNotOrderParticipant, err)
}

func TestOrderService_ListStorePendingOrders(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	pending := []*entity.Order{f.newPendingOrder(uuid.New(), 1)}

	f.storeRepo.EXPECT().FindStoreBySeller(ctx, f.store.SellerID).Return(f.store, nil)
	f.orderRepo.EXPECT().FindPendingOrdersByStore(ctx, f.store.ID).Return(pending, nil)

	orders, err := f.service.ListStorePendingOrders(ctx, f.store.SellerID)
	require.NoError(t, err)
	assert.Equal(t, pending, orders)
}

func TestOrderService_PickupQR_RendersCode(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	buyerID := uuid.New()
	order := f.newPendingOrder(buyerID, 1)
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	f.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	f.productRepo.EXPECT().FindProductByID(ctx, f.product.ID).Return(f.product, nil)
	f.storeRepo.EXPECT().FindStoreByID(ctx, f.store.ID).Return(f.store, nil)
	f.qrService.EXPECT().GeneratePickupQR(order.Code, 256).Return(png, nil)

	got, err := f.service.PickupQR(ctx, buyerID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}
