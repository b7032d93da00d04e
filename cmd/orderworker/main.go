package main

import (
	"context"
	"log/slog"
	"os"

	"mazza/config"
	"mazza/internal/delivery"
	"mazza/internal/delivery/worker"
	"mazza/internal/delivery/worker/handler"
	"mazza/internal/domain/service"
	logs "mazza/internal/infra/log"
	"mazza/internal/infra/notification"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectHandler(),
		injectDelivery(),
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
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newFCMNotifier,
		),
	)
}

// newFCMNotifier creates the Firebase Cloud Messaging notifier that
// delivers order events pulled off the bus.
func newFCMNotifier(ctx context.Context, cfg *config.Config) (service.Notifier, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase configuration is required for the order worker")
	}

	return notification.NewFCMNotifier(ctx, cfg.Firebase.CredentialsPath)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
