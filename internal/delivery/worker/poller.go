package worker

import (
	"context"
	"log/slog"
	"time"

	"vradmin/config"
	"vradmin/internal/delivery"
	deliverycontext "vradmin/internal/delivery/context"
	"vradmin/internal/usecase"

	"go.uber.org/fx"
)

// PollerParams holds dependencies for the derivation poller
type PollerParams struct {
	fx.In

	Cfg            *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
}

// Poller runs shipping-missing derivation on a fixed interval.
type Poller struct {
	interval       time.Duration
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewPoller creates the derivation poller delivery.
func NewPoller(params PollerParams) delivery.Delivery {
	return &Poller{
		interval:       params.Cfg.Notification.PollInterval,
		notificationUC: params.NotificationUC,
		logger:         params.Logger.With(slog.String("component", "derivation_poller")),
	}
}

// Serve runs one derivation right away, then one per interval until ctx is
// done. A failed run is logged and retried on the next tick.
func (p *Poller) Serve(ctx context.Context) error {
	p.logger.Info("Starting derivation poller", slog.Duration("interval", p.interval))

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("Derivation poller stopped")

			return nil
		case <-ticker.C:
			p.runOnce(ctx)
		}
	}
}

func (p *Poller) runOnce(ctx context.Context) {
	ctx, logger := deliverycontext.Scope(ctx, p.logger, "")

	start := time.Now()
	result, err := p.notificationUC.DeriveShippingMissing(ctx)
	if err != nil {
		if ctx.Err() == nil {
			logger.Error("Scheduled derivation failed", slog.Any("error", err))
		}

		return
	}

	logger.Info("Scheduled derivation finished",
		slog.Int("scanned", result.Scanned),
		slog.Int("qualifying", len(result.Qualifying)),
		slog.Bool("created", result.Created != nil),
		slog.Duration("took", time.Since(start)))
}
