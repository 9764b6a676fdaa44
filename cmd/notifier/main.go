package main

import (
	"context"
	"log/slog"
	"os"

	"vradmin/config"
	"vradmin/internal/delivery"
	"vradmin/internal/delivery/consumer"
	"vradmin/internal/delivery/push"
	"vradmin/internal/delivery/worker"
	"vradmin/internal/domain/service"
	"vradmin/internal/infra/backend"
	"vradmin/internal/infra/cache"
	"vradmin/internal/infra/carrier"
	logs "vradmin/internal/infra/log"
	"vradmin/internal/infra/mailjet"
	"vradmin/internal/infra/metrics"
	"vradmin/internal/infra/notification"
	"vradmin/internal/infra/persistence/postgres"
	"vradmin/internal/infra/pubsub"
	"vradmin/internal/infra/qrcode"
	"vradmin/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

// The notifier derives shipping-missing notifications on a schedule and on
// demand from the event bus, and fans them out as admin pushes.
func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			metrics.NewRegistry,
			func() service.Clock { return service.SystemClock{} },
		),
		cache.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewNotificationRepository,
			postgres.NewAdminDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			backend.NewClient,
			carrier.NewShipmentTracker,
			mailjet.NewOrderEmailLookup,
			notification.NewNotificationService,
			qrcode.NewFromConfig,
			metrics.NewStatusMetrics,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPurchaseService,
			impl.NewNotificationService,
			impl.NewDerivationTrigger,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			push.NewHandler,
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
			fx.Annotate(
				worker.NewPoller,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				consumer.NewNotifierConsumer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Delivery stopped with error", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
