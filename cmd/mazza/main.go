package main

import (
	"context"
	"log/slog"
	"os"

	"mazza/config"
	"mazza/internal/delivery"
	"mazza/internal/delivery/http"
	"mazza/internal/delivery/http/middleware"
	"mazza/internal/delivery/http/router/handler"
	"mazza/internal/domain/availability"
	"mazza/internal/domain/service"
	"mazza/internal/infra/auth"
	"mazza/internal/infra/cache"
	logs "mazza/internal/infra/log"
	"mazza/internal/infra/notification"
	"mazza/internal/infra/persistence/postgres"
	"mazza/internal/infra/pubsub"
	"mazza/internal/infra/qrcode"
	"mazza/internal/infra/ratings"
	"mazza/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewStoreRepository,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewJWTService,
			cache.NewMemoryStore,
			newClock,
			newQRCodeService,
			newRatingsService,
			// The API process publishes notification events to Pub/Sub;
			// the order worker delivers them via FCM.
			notification.NewPubSubNotifier,
		),
	)
}

// newClock derives "now" with the configured UTC offset for opening-hours
// and product-visibility checks.
func newClock(cfg *config.Config) *availability.Clock {
	if cfg.Discovery == nil {
		return availability.NewClock(0)
	}

	return availability.NewClock(cfg.Discovery.UTCOffsetMinutes)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService("M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.ErrorCorrectionLevel)
}

// newRatingsService creates the external ratings collaborator client
func newRatingsService(cfg *config.Config) service.RatingsService {
	return ratings.NewHTTPRatingsService(cfg.Ratings)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDiscoveryService,
			impl.NewOrderService,
			impl.NewListingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDiscoveryHandler,
			handler.NewOrderHandler,
			handler.NewStoreHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
