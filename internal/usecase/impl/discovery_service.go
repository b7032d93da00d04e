// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sort"

	"mazza/config"
	deliverycontext "mazza/internal/delivery/context"
	"mazza/internal/domain/availability"
	"mazza/internal/domain/entity"
	domainerrors "mazza/internal/domain/errors"
	"mazza/internal/domain/geo"
	"mazza/internal/domain/repository"
	"mazza/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// discoveryService implements the DiscoveryUsecase interface.
type discoveryService struct {
	storeRepo    repository.StoreRepository
	clock        *availability.Clock
	defaultLimit int
	maxLimit     int
	prefilterKm  float64
	logger       *slog.Logger
}

// DiscoveryServiceParams holds dependencies for DiscoveryService, injected by Fx.
type DiscoveryServiceParams struct {
	fx.In

	StoreRepo repository.StoreRepository
	Clock     *availability.Clock
	Config    *config.Config
	Logger    *slog.Logger
}

// NewDiscoveryService is the constructor for discoveryService.
func NewDiscoveryService(params DiscoveryServiceParams) usecase.DiscoveryUsecase {
	srv := &discoveryService{
		storeRepo: params.StoreRepo,
		clock:     params.Clock,
		logger:    params.Logger,
	}
	if params.Config != nil && params.Config.Discovery != nil {
		srv.defaultLimit = params.Config.Discovery.DefaultLimit
		srv.maxLimit = params.Config.Discovery.MaxLimit
		srv.prefilterKm = params.Config.Discovery.PrefilterRadiusKm
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *discoveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindNearby returns stores ranked by distance from the searcher's coordinate.
func (srv *discoveryService) FindNearby(ctx context.Context, input *usecase.FindNearbyInput) (*usecase.NearbyStoresResult, error) {
	origin, err := entity.NewCoordinate(input.Latitude, input.Longitude)
	if err != nil {
		return nil, domainerrors.ErrInvalidCoordinate.WithDetails(err.Error())
	}

	limit := srv.resolveLimit(input.Limit)
	now := srv.clock.Now()

	stores, err := srv.storeRepo.FindApprovedStoresWithVisibleProducts(ctx, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find approved stores")
	}

	if len(stores) == 0 {
		reason, err := srv.emptyReason(ctx)
		if err != nil {
			return nil, err
		}

		return &usecase.NearbyStoresResult{Stores: []*entity.NearbyStore{}, EmptyReason: reason}, nil
	}

	ranked := srv.rank(ctx, origin, stores, input.OpenOnly)
	if len(ranked) == 0 {
		return &usecase.NearbyStoresResult{
			Stores:      []*entity.NearbyStore{},
			EmptyReason: usecase.EmptyReasonNoVisibleProducts,
		}, nil
	}

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return &usecase.NearbyStoresResult{Stores: ranked}, nil
}

// rank computes distances, applies the open-only and bounding-box filters,
// and sorts closest first with store ID as the tie-breaker.
func (srv *discoveryService) rank(ctx context.Context, origin entity.Coordinate, stores []*entity.Store, openOnly bool) []*entity.NearbyStore {
	bound := geo.SearchBound(origin, srv.prefilterKm)
	usePrefilter := srv.prefilterKm > 0

	ranked := make([]*entity.NearbyStore, 0, len(stores))
	for _, store := range stores {
		if store.Location == nil {
			srv.log(ctx).Warn("Skipping store without location", slog.String("store_id", store.ID.String()))

			continue
		}
		if usePrefilter && !geo.InBound(bound, *store.Location) {
			continue
		}

		isOpen := srv.clock.StoreOpen(store)
		if openOnly && !isOpen {
			continue
		}

		distance, err := geo.DistanceKm(origin, *store.Location)
		if err != nil {
			srv.log(ctx).Warn("Skipping store with invalid location",
				slog.String("store_id", store.ID.String()),
				slog.Any("error", err))

			continue
		}

		ranked = append(ranked, &entity.NearbyStore{
			Store:      store,
			DistanceKm: distance,
			IsOpen:     isOpen,
			Products:   store.Products,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].DistanceKm != ranked[j].DistanceKm {
			return ranked[i].DistanceKm < ranked[j].DistanceKm
		}

		return ranked[i].Store.ID.String() < ranked[j].Store.ID.String()
	})

	return ranked
}

// emptyReason distinguishes "no approved stores exist" from "approved stores
// exist but nothing is purchasable right now".
func (srv *discoveryService) emptyReason(ctx context.Context) (usecase.EmptyReason, error) {
	hasApproved, err := srv.storeRepo.HasApprovedStores(ctx)
	if err != nil {
		return usecase.EmptyReasonNone, errors.Wrap(err, "failed to check for approved stores")
	}
	if !hasApproved {
		return usecase.EmptyReasonNoApprovedStores, nil
	}

	return usecase.EmptyReasonNoVisibleProducts, nil
}

func (srv *discoveryService) resolveLimit(requested int) int {
	limit := requested
	if limit <= 0 {
		limit = srv.defaultLimit
	}
	if srv.maxLimit > 0 && limit > srv.maxLimit {
		limit = srv.maxLimit
	}
	if limit <= 0 {
		limit = 10
	}

	return limit
}
