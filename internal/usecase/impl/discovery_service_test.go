package impl

import (
	"context"
	"testing"
	"time"

	"mazza/internal/domain/entity"
	domainerrors "mazza/internal/domain/errors"
	mockRepo "mazza/internal/mocks/repository"
	"mazza/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// noonUTC pins engine time to 12:00 so the default store window is open.
var noonUTC = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func newTestStore(lat, lon float64, opens, closes int) *entity.Store {
	location := entity.Coordinate{Latitude: lat, Longitude: lon}

	return &entity.Store{
		ID:             uuid.New(),
		SellerID:       uuid.New(),
		Name:           "store",
		Status:         entity.StoreStatusApproved,
		Location:       &location,
		OpensAtMinute:  opens,
		ClosesAtMinute: closes,
		Products:       []*entity.Product{{ID: uuid.New(), Quantity: 3, IsActive: true}},
	}
}

func newDiscoveryForTest(t *testing.T) (*mockRepo.MockStoreRepository, usecase.DiscoveryUsecase) {
	t.Helper()

	storeRepo := mockRepo.NewMockStoreRepository(t)
	service := NewDiscoveryService(DiscoveryServiceParams{
		StoreRepo: storeRepo,
		Clock:     newFixedClock(noonUTC, 0),
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return storeRepo, service
}

func TestDiscoveryService_FindNearby_RanksByDistance(t *testing.T) {
	storeRepo, service := newDiscoveryForTest(t)
	ctx := context.Background()

	near := newTestStore(41.31, 69.25, 540, 1320)
	far := newTestStore(41.40, 69.25, 540, 1320)

	storeRepo.EXPECT().
		FindApprovedStoresWithVisibleProducts(ctx, mock.AnythingOfType("time.Time")).
		Return([]*entity.Store{far, near}, nil)

	result, err := service.FindNearby(ctx, &usecase.FindNearbyInput{Latitude: 41.30, Longitude: 69.25})
	require.NoError(t, err)
	require.Len(t, result.Stores, 2)
	assert.Equal(t, near.ID, result.Stores[0].Store.ID)
	assert.Equal(t, far.ID, result.Stores[1].Store.ID)
	assert.Less(t, result.Stores[0].DistanceKm, result.Stores[1].DistanceKm)
	assert.True(t, result.Stores[0].IsOpen)
	assert.Empty(t, result.EmptyReason)
}

func TestDiscoveryService_FindNearby_EquidistantTieBreaksByStoreID(t *testing.T) {
	storeRepo, service := newDiscoveryForTest(t)
	ctx := context.Background()

	a := newTestStore(41.31, 69.25, 540, 1320)
	b := newTestStore(41.31, 69.25, 540, 1320)

	storeRepo.EXPECT().
		FindApprovedStoresWithVisibleProducts(ctx, mock.AnythingOfType("time.Time")).
		Return([]*entity.Store{b, a}, nil)

	result, err := service.FindNearby(ctx, &usecase.FindNearbyInput{Latitude: 41.30, Longitude: 69.25})
	require.NoError(t, err)
	require.Len(t, result.Stores, 2)
	assert.Equal(t, result.Stores[0].DistanceKm, result.Stores[1].DistanceKm)
	assert.Less(t, result.Stores[0].Store.ID.String(), result.Stores[1].Store.ID.String())
}

func TestDiscoveryService_FindNearby_MarksClosedStores(t *testing.T) {
	storeRepo, service := newDiscoveryForTest(t)
	ctx := context.Background()

	// Open 01:00-02:00, i.e. closed at noon. The store still ranks, flagged closed.
	closed := newTestStore(41.31, 69.25, 60, 120)

	storeRepo.EXPECT().
		FindApprovedStoresWithVisibleProducts(ctx, mock.AnythingOfType("time.Time")).
		Return([]*entity.Store{closed}, nil)

	result, err := service.FindNearby(ctx, &usecase.FindNearbyInput{Latitude: 41.30, Longitude: 69.25})
	require.NoError(t, err)
	require.Len(t, result.Stores, 1)
	assert.False(t, result.Stores[0].IsOpen)
}

func TestDiscoveryService_FindNearby_OpenOnlyFiltersClosed(t *testing.T) {
	storeRepo, service := newDiscoveryForTest(t)
	ctx := context.Background()

	open := newTestStore(41.40, 69.25, 540, 1320)
	closed := newTestStore(41.31, 69.25, 60, 120)

	storeRepo.EXPECT().
		FindApprovedStoresWithVisibleProducts(ctx, mock.AnythingOfType("time.Time")).
		Return([]*entity.Store{open, closed}, nil)

	result, err := service.FindNearby(ctx, &usecase.FindNearbyInput{
		Latitude:  41.30,
		Longitude: 69.25,
		OpenOnly:  true,
	})
	require.NoError(t, err)
	require.Len(t, result.Stores, 1)
	assert.Equal(t, open.ID, result.Stores[0].Store.ID)
}

func TestDiscoveryService_FindNearby_OvernightStoreOpenAfterMidnight(t *testing.T) {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	// 01:00 engine time, store open 22:00-06:00.
	oneAM := time.Date(2026, 3, 14, 1, 0, 0, 0, time.UTC)
	service := NewDiscoveryService(DiscoveryServiceParams{
		StoreRepo: storeRepo,
		Clock:     newFixedClock(oneAM, 0),
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})
	ctx := context.Background()

	overnight := newTestStore(41.31, 69.25, 1320, 360)

	storeRepo.EXPECT().
		FindApprovedStoresWithVisibleProducts(ctx, mock.AnythingOfType("time.Time")).
		Return([]*entity.Store{overnight}, nil)

	result, err := service.FindNearby(ctx, &usecase.FindNearbyInput{Latitude: 41.30, Longitude: 69.25})
	require.NoError(t, err)
	require.Len(t, result.Stores, 1)
	assert.True(t, result.Stores[0].IsOpen)
}

func TestDiscoveryService_FindNearby_SkipsStoreWithoutLocation(t *testing.T) {
	storeRepo, service := newDiscoveryForTest(t)
	ctx := context.Background()

	located := newTestStore(41.31, 69.25, 540, 1320)
	unlocated := newTestStore(0, 0, 540, 1320)
	unlocated.Location = nil

	storeRepo.EXPECT().
		FindApprovedStoresWithVisibleProducts(ctx, mock.AnythingOfType("time.Time")).
		Return([]*entity.Store{unlocated, located}, nil)

	result, err := service.FindNearby(ctx, &usecase.FindNearbyInput{Latitude: 41.30, Longitude: 69.25})
	require.NoError(t, err)
	require.Len(t, result.Stores, 1)
	assert.Equal(t, located.ID, result.Stores[0].Store.ID)
}

func TestDiscoveryService_FindNearby_AppliesLimit(t *testing.T) {
	storeRepo, service := newDiscoveryForTest(t)
	ctx := context.Background()

	stores := make([]*entity.Store, 0, 5)
	for i := range 5 {
		stores = append(stores, newTestStore(41.31+float64(i)*0.01, 69.25, 540, 1320))
	}

	storeRepo.EXPECT().
		FindApprovedStoresWithVisibleProducts(ctx, mock.AnythingOfType("time.Time")).
		Return(stores, nil)

	result, err := service.FindNearby(ctx, &usecase.FindNearbyInput{
		Latitude:  41.30,
		Longitude: 69.25,
		Limit:     2,
	})
	require.NoError(t, err)
	assert.Len(t, result.Stores, 2)
}

func TestDiscoveryService_FindNearby_CapsLimitAtMax(t *testing.T) {
	storeRepo, service := newDiscoveryForTest(t)
	ctx := context.Background()

	stores := make([]*entity.Store, 0, 60)
	for i := range 60 {
		stores = append(stores, newTestStore(41.31+float64(i)*0.001, 69.25, 540, 1320))
	}

	storeRepo.EXPECT().
		FindApprovedStoresWithVisibleProducts(ctx, mock.AnythingOfType("time.Time")).
		Return(stores, nil)

	result, err := service.FindNearby(ctx, &usecase.FindNearbyInput{
		Latitude:  41.30,
		Longitude: 69.25,
		Limit:     1000,
	})
	require.NoError(t, err)
	assert.Len(t, result.Stores, 50)
}

func TestDiscoveryService_FindNearby_InvalidCoordinate(t *testing.T) {
	_, service := newDiscoveryForTest(t)

	result, err := service.FindNearby(context.Background(), &usecase.FindNearbyInput{
		Latitude:  91.0,
		Longitude: 69.25,
	})
	require.Error(t, err)
	assert.Nil(t, result)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidCoordinate.ErrorCode(), appErr.ErrorCode())
}

func TestDiscoveryService_FindNearby_EmptyWhenNoApprovedStores(t *testing.T) {
	storeRepo, service := newDiscoveryForTest(t)
	ctx := context.Background()

	storeRepo.EXPECT().
		FindApprovedStoresWithVisibleProducts(ctx, mock.AnythingOfType("time.Time")).
		Return(nil, nil)
	storeRepo.EXPECT().
		HasApprovedStores(ctx).
		Return(false, nil)

	result, err := service.FindNearby(ctx, &usecase.FindNearbyInput{Latitude: 41.30, Longitude: 69.25})
	require.NoError(t, err)
	assert.Empty(t, result.Stores)
	assert.Equal(t, usecase.EmptyReasonNoApprovedStores, result.EmptyReason)
}

func TestDiscoveryService_FindNearby_EmptyWhenNothingVisible(t *testing.T) {
	storeRepo, service := newDiscoveryForTest(t)
	ctx := context.Background()

	storeRepo.EXPECT().
		FindApprovedStoresWithVisibleProducts(ctx, mock.AnythingOfType("time.Time")).
		Return(nil, nil)
	storeRepo.EXPECT().
		HasApprovedStores(ctx).
		Return(true, nil)

	result, err := service.FindNearby(ctx, &usecase.FindNearbyInput{Latitude: 41.30, Longitude: 69.25})
	require.NoError(t, err)
	assert.Empty(t, result.Stores)
	assert.Equal(t, usecase.EmptyReasonNoVisibleProducts, result.EmptyReason)
}
