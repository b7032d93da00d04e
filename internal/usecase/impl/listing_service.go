package impl

import (
	"context"
	"log/slog"

	"mazza/config"
	deliverycontext "mazza/internal/delivery/context"
	"mazza/internal/domain/availability"
	"mazza/internal/domain/entity"
	domainerrors "mazza/internal/domain/errors"
	"mazza/internal/domain/repository"
	"mazza/internal/usecase"
	"mazza/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// listingService implements the ListingUsecase interface.
type listingService struct {
	storeRepo         repository.StoreRepository
	productRepo       repository.ProductRepository
	productCodeLength int
	maxAttempts       int
	logger            *slog.Logger
}

// ListingServiceParams holds dependencies for ListingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	StoreRepo   repository.StoreRepository
	ProductRepo repository.ProductRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewListingService is the constructor for listingService.
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	srv := &listingService{
		storeRepo:   params.StoreRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
	if params.Config != nil && params.Config.OrderCode != nil {
		srv.productCodeLength = params.Config.OrderCode.ProductCodeLength
		srv.maxAttempts = params.Config.OrderCode.MaxAttempts
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateStore registers a new store in pending status.
func (srv *listingService) CreateStore(ctx context.Context, sellerID uuid.UUID, input *usecase.CreateStoreInput) (*entity.Store, error) {
	if err := validateHours(input.OpensAtMinute, input.ClosesAtMinute); err != nil {
		return nil, err
	}

	store := &entity.Store{
		ID:             uuid.New(),
		SellerID:       sellerID,
		Name:           input.Name,
		Status:         entity.StoreStatusPending,
		OpensAtMinute:  input.OpensAtMinute,
		ClosesAtMinute: input.ClosesAtMinute,
	}

	if input.Latitude != nil && input.Longitude != nil {
		location, err := entity.NewCoordinate(*input.Latitude, *input.Longitude)
		if err != nil {
			return nil, domainerrors.ErrInvalidCoordinate.WithDetails(err.Error())
		}
		store.Location = &location
	}

	if err := srv.storeRepo.CreateStore(ctx, store); err != nil {
		return nil, errors.Wrap(err, "failed to create store")
	}

	srv.log(ctx).Info("Store registered",
		slog.String("store_id", store.ID.String()),
		slog.String("seller_id", sellerID.String()))

	return store, nil
}

// GetOwnStore retrieves the seller's store.
func (srv *listingService) GetOwnStore(ctx context.Context, sellerID uuid.UUID) (*entity.Store, error) {
	return srv.findOwnStore(ctx, sellerID)
}

// UpdateStoreHours changes the opening-hours window.
func (srv *listingService) UpdateStoreHours(ctx context.Context, sellerID uuid.UUID, input *usecase.UpdateStoreHoursInput) (*entity.Store, error) {
	if err := validateHours(input.OpensAtMinute, input.ClosesAtMinute); err != nil {
		return nil, err
	}

	store, err := srv.findOwnStore(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	if err := srv.storeRepo.UpdateStoreHours(ctx, store.ID, input.OpensAtMinute, input.ClosesAtMinute); err != nil {
		return nil, errors.Wrap(err, "failed to update store hours")
	}

	store.OpensAtMinute = input.OpensAtMinute
	store.ClosesAtMinute = input.ClosesAtMinute

	return store, nil
}

// UpdateStoreLocation moves the store's pickup coordinate.
func (srv *listingService) UpdateStoreLocation(ctx context.Context, sellerID uuid.UUID, input *usecase.UpdateStoreLocationInput) (*entity.Store, error) {
	location, err := entity.NewCoordinate(input.Latitude, input.Longitude)
	if err != nil {
		return nil, domainerrors.ErrInvalidCoordinate.WithDetails(err.Error())
	}

	store, err := srv.findOwnStore(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	if err := srv.storeRepo.UpdateStoreLocation(ctx, store.ID, location); err != nil {
		return nil, errors.Wrap(err, "failed to update store location")
	}

	store.Location = &location

	return store, nil
}

// CreateProduct publishes a new listing under the seller's store.
func (srv *listingService) CreateProduct(ctx context.Context, sellerID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}
	if input.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}
	if input.AvailableUntil.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("available_until is required")
	}

	store, err := srv.findOwnStore(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	product, err := srv.persistProductWithFreshCode(ctx, store.ID, input)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Listing published",
		slog.String("product_id", product.ID.String()),
		slog.String("store_id", store.ID.String()),
		slog.Int("quantity", product.Quantity))

	return product, nil
}

// persistProductWithFreshCode inserts the listing, retrying with a new code
// on a unique-constraint collision.
func (srv *listingService) persistProductWithFreshCode(ctx context.Context, storeID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	attempts := srv.maxAttempts
	if attempts <= 0 {
		attempts = 5
	}
	length := srv.productCodeLength
	if length <= 0 {
		length = 6
	}

	for range attempts {
		code, err := util.GenerateCode(length)
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate listing code")
		}

		product := &entity.Product{
			ID:             uuid.New(),
			StoreID:        storeID,
			Name:           input.Name,
			Price:          input.Price,
			OriginalPrice:  input.OriginalPrice,
			Quantity:       input.Quantity,
			AvailableFrom:  input.AvailableFrom,
			AvailableUntil: input.AvailableUntil,
			IsActive:       true,
			Code:           code,
		}

		err = srv.productRepo.CreateProduct(ctx, product)
		if err == nil {
			return product, nil
		}
		if errors.Is(err, repository.ErrDuplicateProductCode) {
			srv.log(ctx).Warn("Listing code collision, retrying", slog.String("code", code))

			continue
		}

		return nil, errors.Wrap(err, "failed to create product")
	}

	return nil, domainerrors.ErrOrderCodeExhausted
}

// ListOwnProducts retrieves all listings of the seller's store.
func (srv *listingService) ListOwnProducts(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error) {
	store, err := srv.findOwnStore(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	products, err := srv.productRepo.FindProductsByStore(ctx, store.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// UpdateProduct edits a listing owned by the seller. Nil fields are left unchanged.
func (srv *listingService) UpdateProduct(ctx context.Context, sellerID, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.findOwnProduct(ctx, sellerID, productID)
	if err != nil {
		return nil, err
	}

	applyProductUpdates(product, input)
	if product.Quantity < 0 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	if err := srv.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeactivateProduct soft-disables a listing owned by the seller.
func (srv *listingService) DeactivateProduct(ctx context.Context, sellerID, productID uuid.UUID) error {
	product, err := srv.findOwnProduct(ctx, sellerID, productID)
	if err != nil {
		return err
	}

	if err := srv.productRepo.DeactivateProduct(ctx, product.ID); err != nil {
		return errors.Wrap(err, "failed to deactivate product")
	}

	return nil
}

func (srv *listingService) findOwnStore(ctx context.Context, sellerID uuid.UUID) (*entity.Store, error) {
	store, err := srv.storeRepo.FindStoreBySeller(ctx, sellerID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller store")
	}

	return store, nil
}

func (srv *listingService) findOwnProduct(ctx context.Context, sellerID, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	store, err := srv.findOwnStore(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if product.StoreID != store.ID {
		return nil, domainerrors.ErrNotStoreOwner
	}

	return product, nil
}

func applyProductUpdates(product *entity.Product, input *usecase.UpdateProductInput) {
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.OriginalPrice != nil {
		product.OriginalPrice = input.OriginalPrice
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}
	if input.AvailableFrom != nil {
		product.AvailableFrom = input.AvailableFrom
	}
	if input.AvailableUntil != nil {
		product.AvailableUntil = *input.AvailableUntil
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
}

func validateHours(opens, closes int) error {
	if opens < 0 || opens >= availability.MinutesPerDay || closes < 0 || closes >= availability.MinutesPerDay {
		return domainerrors.ErrValidationFailed.WithDetails("opening hours must be minutes in [0, 1439]")
	}

	return nil
}
