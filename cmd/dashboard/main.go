package main

import (
	"context"
	"log/slog"
	"os"

	"vradmin/config"
	"vradmin/internal/delivery"
	"vradmin/internal/delivery/api"
	apimiddleware "vradmin/internal/delivery/api/middleware"
	"vradmin/internal/delivery/api/router/handler"
	"vradmin/internal/delivery/consumer"
	"vradmin/internal/delivery/push"
	"vradmin/internal/domain/service"
	"vradmin/internal/infra/auth"
	"vradmin/internal/infra/backend"
	"vradmin/internal/infra/cache"
	"vradmin/internal/infra/carrier"
	logs "vradmin/internal/infra/log"
	"vradmin/internal/infra/mailjet"
	"vradmin/internal/infra/metrics"
	"vradmin/internal/infra/notification"
	"vradmin/internal/infra/persistence/clickhouse"
	"vradmin/internal/infra/persistence/postgres"
	"vradmin/internal/infra/pubsub"
	"vradmin/internal/infra/qrcode"
	"vradmin/internal/infra/stream"
	"vradmin/internal/usecase/impl"

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
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
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
			postgres.NewTodoRepository,
			clickhouse.NewLogRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTVerifier,
			backend.NewClient,
			carrier.NewShipmentTracker,
			mailjet.NewOrderEmailLookup,
			notification.NewNotificationService,
			qrcode.NewFromConfig,
			metrics.NewStatusMetrics,
			// One hub feeds every stream client of this process
			fx.Annotate(
				stream.NewHub,
				fx.As(new(service.EventBroadcaster)),
				fx.As(new(handler.EventSubscriber)),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPurchaseService,
			impl.NewNotificationService,
			impl.NewTrendService,
			impl.NewDashboardService,
			impl.NewTodoService,
			impl.NewLogService,
			impl.NewAdminDeviceService,
			impl.NewEventRelay,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPurchaseHandler,
			handler.NewNotificationHandler,
			handler.NewStreamHandler,
			handler.NewTrendHandler,
			handler.NewTodoHandler,
			handler.NewLogHandler,
			handler.NewDeviceHandler,
			push.NewHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				consumer.NewDashboardConsumer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
