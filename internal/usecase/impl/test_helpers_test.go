package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"mazza/config"
	"mazza/internal/domain/availability"
	"mazza/internal/domain/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Discovery: &config.DiscoveryConfig{
			UTCOffsetMinutes: 300,
			DefaultLimit:     10,
			MaxLimit:         50,
		},
		OrderCode: &config.OrderCodeConfig{
			Length:            8,
			ProductCodeLength: 6,
			MaxAttempts:       5,
		},
		QRCode: &config.QRCodeConfig{Size: 256},
	}
}

// newFixedClock pins engine time so availability checks are deterministic.
func newFixedClock(utc time.Time, offsetMinutes int) *availability.Clock {
	return availability.NewClockAt(offsetMinutes, func() time.Time { return utc })
}

// stubRepoFactory hands the same repositories back inside a transaction, so
// unit tests can drive transactional flows through plain mocks.
type stubRepoFactory struct {
	storeRepo   repository.StoreRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

func (f *stubRepoFactory) NewStoreRepository() repository.StoreRepository {
	return f.storeRepo
}

func (f *stubRepoFactory) NewProductRepository() repository.ProductRepository {
	return f.productRepo
}

func (f *stubRepoFactory) NewOrderRepository() repository.OrderRepository {
	return f.orderRepo
}

// stubTxManager runs the transactional function directly against the stub factory.
type stubTxManager struct {
	factory *stubRepoFactory
}

func (m *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}
