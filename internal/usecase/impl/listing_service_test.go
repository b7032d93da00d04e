package impl

import (
	"context"
	"testing"
	"time"

	"mazza/internal/domain/entity"
	domainerrors "mazza/internal/domain/errors"
	"mazza/internal/domain/repository"
	mockRepo "mazza/internal/mocks/repository"
	"mazza/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newListingForTest(t *testing.T) (*mockRepo.MockStoreRepository, *mockRepo.MockProductRepository, usecase.ListingUsecase) {
	t.Helper()

	storeRepo := mockRepo.NewMockStoreRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewListingService(ListingServiceParams{
		StoreRepo:   storeRepo,
		ProductRepo: productRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return storeRepo, productRepo, service
}

func TestListingService_CreateStore_Success(t *testing.T) {
	storeRepo, _, service := newListingForTest(t)
	ctx := context.Background()
	sellerID := uuid.New()
	lat, lon := 41.31, 69.25

	storeRepo.EXPECT().CreateStore(ctx, mock.AnythingOfType("*entity.Store")).Return(nil)

	store, err := service.CreateStore(ctx, sellerID, &usecase.CreateStoreInput{
		Name:           "bakery",
		Latitude:       &lat,
		Longitude:      &lon,
		OpensAtMinute:  540,
		ClosesAtMinute: 1320,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StoreStatusPending, store.Status)
	assert.Equal(t, sellerID, store.SellerID)
	require.NotNil(t, store.Location)
	assert.InDelta(t, lat, store.Location.Latitude, 1e-9)
}

func TestListingService_CreateStore_InvalidHours(t *testing.T) {
	_, _, service := newListingForTest(t)

	store, err := service.CreateStore(context.Background(), uuid.New(), &usecase.CreateStoreInput{
		Name:           "bakery",
		OpensAtMinute:  1500,
		ClosesAtMinute: 300,
	})
	require.Error(t, err)
	assert.Nil(t, store)
}

func TestListingService_CreateStore_InvalidCoordinate(t *testing.T) {
	_, _, service := newListingForTest(t)
	lat, lon := 95.0, 69.25

	store, err := service.CreateStore(context.Background(), uuid.New(), &usecase.CreateStoreInput{
		Name:           "bakery",
		Latitude:       &lat,
		Longitude:      &lon,
		OpensAtMinute:  540,
		ClosesAtMinute: 1320,
	})
	require.Error(t, err)
	assert.Nil(t, store)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidCoordinate.ErrorCode(), appErr.ErrorCode())
}

func TestListingService_UpdateStoreHours_OvernightWindowAllowed(t *testing.T) {
	storeRepo, _, service := newListingForTest(t)
	ctx := context.Background()
	sellerID := uuid.New()
	store := &entity.Store{ID: uuid.New(), SellerID: sellerID, Status: entity.StoreStatusApproved}

	storeRepo.EXPECT().FindStoreBySeller(ctx, sellerID).Return(store, nil)
	storeRepo.EXPECT().UpdateStoreHours(ctx, store.ID, 1320, 360).Return(nil)

	updated, err := service.UpdateStoreHours(ctx, sellerID, &usecase.UpdateStoreHoursInput{
		OpensAtMinute:  1320,
		ClosesAtMinute: 360,
	})
	require.NoError(t, err)
	assert.Equal(t, 1320, updated.OpensAtMinute)
	assert.Equal(t, 360, updated.ClosesAtMinute)
}

func TestListingService_CreateProduct_Success(t *testing.T) {
	storeRepo, productRepo, service := newListingForTest(t)
	ctx := context.Background()
	sellerID := uuid.New()
	store := &entity.Store{ID: uuid.New(), SellerID: sellerID, Status: entity.StoreStatusApproved}

	storeRepo.EXPECT().FindStoreBySeller(ctx, sellerID).Return(store, nil)
	productRepo.EXPECT().CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := service.CreateProduct(ctx, sellerID, &usecase.CreateProductInput{
		Name:           "surprise bag",
		Price:          3.5,
		Quantity:       4,
		AvailableUntil: time.Now().Add(6 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, store.ID, product.StoreID)
	assert.True(t, product.IsActive)
	assert.Len(t, product.Code, 6)
}

func TestListingService_CreateProduct_RetriesOnCodeCollision(t *testing.T) {
	storeRepo, productRepo, service := newListingForTest(t)
	ctx := context.Background()
	sellerID := uuid.New()
	store := &entity.Store{ID: uuid.New(), SellerID: sellerID, Status: entity.StoreStatusApproved}

	storeRepo.EXPECT().FindStoreBySeller(ctx, sellerID).Return(store, nil)
	productRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(repository.ErrDuplicateProductCode).Once()
	productRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil).Once()

	product, err := service.CreateProduct(ctx, sellerID, &usecase.CreateProductInput{
		Name:           "surprise bag",
		Price:          3.5,
		Quantity:       4,
		AvailableUntil: time.Now().Add(6 * time.Hour),
	})
	require.NoError(t, err)
	assert.NotNil(t, product)
}

func TestListingService_CreateProduct_InvalidQuantity(t *testing.T) {
	_, _, service := newListingForTest(t)

	product, err := service.CreateProduct(context.Background(), uuid.New(), &usecase.CreateProductInput{
		Name:           "surprise bag",
		Price:          3.5,
		Quantity:       0,
		AvailableUntil: time.Now().Add(6 * time.Hour),
	})
	require.Error(t, err)
	assert.Nil(t, product)
	assert.Equal(t, domainerrors.ErrInvalidQuantity, err)
}

func TestListingService_UpdateProduct_OtherSellersListingRejected(t *testing.T) {
	storeRepo, productRepo, service := newListingForTest(t)
	ctx := context.Background()
	sellerID := uuid.New()
	store := &entity.Store{ID: uuid.New(), SellerID: sellerID}
	product := &entity.Product{ID: uuid.New(), StoreID: uuid.New()}

	productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	storeRepo.EXPECT().FindStoreBySeller(ctx, sellerID).Return(store, nil)

	updated, err := service.UpdateProduct(ctx, sellerID, product.ID, &usecase.UpdateProductInput{})
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.Equal(t, domainerrors.ErrNotStoreOwner, err)
}

func TestListingService_DeactivateProduct_Success(t *testing.T) {
	storeRepo, productRepo, service := newListingForTest(t)
	ctx := context.Background()
	sellerID := uuid.New()
	store := &entity.Store{ID: uuid.New(), SellerID: sellerID}
	product := &entity.Product{ID: uuid.New(), StoreID: store.ID, IsActive: true}

	productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	storeRepo.EXPECT().FindStoreBySeller(ctx, sellerID).Return(store, nil)
	productRepo.EXPECT().DeactivateProduct(ctx, product.ID).Return(nil)

	err := service.DeactivateProduct(ctx, sellerID, product.ID)
	require.NoError(t, err)
}
