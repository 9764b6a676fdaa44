package impl

import (
	"context"
	"log/slog"

	deliverycontext "vradmin/internal/delivery/context"
	"vradmin/internal/domain/constants"
	"vradmin/internal/domain/service"
	"vradmin/internal/usecase"
)

// derivationTrigger runs notification derivation when the bus asks for it.
type derivationTrigger struct {
	notifications usecase.NotificationUsecase
	logger        *slog.Logger
}

// NewDerivationTrigger handles bus events on the worker. Only derivation
// triggers are acted on; events meant for dashboard clients are ignored.
func NewDerivationTrigger(notifications usecase.NotificationUsecase, logger *slog.Logger) service.AdminEventHandler {
	return &derivationTrigger{
		notifications: notifications,
		logger:        logger,
	}
}

func (h *derivationTrigger) HandleAdminEvent(ctx context.Context, event *service.AdminEvent) error {
	if event.Type != constants.TriggerDeriveShippingMissing {
		return nil
	}

	ctx = withEventLogger(ctx, event, h.logger)
	result, err := h.notifications.DeriveShippingMissing(ctx)
	if err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Derivation triggered by event",
		slog.Int("scanned", result.Scanned),
		slog.Int("qualifying", len(result.Qualifying)),
		slog.Bool("created", result.Created != nil),
	)

	return nil
}

// eventRelay forwards notification events from the bus to the clients
// connected to this process.
type eventRelay struct {
	broadcaster service.EventBroadcaster
	logger      *slog.Logger
}

// NewEventRelay handles bus events on the dashboard API.
func NewEventRelay(broadcaster service.EventBroadcaster, logger *slog.Logger) service.AdminEventHandler {
	return &eventRelay{
		broadcaster: broadcaster,
		logger:      logger,
	}
}

func (h *eventRelay) HandleAdminEvent(ctx context.Context, event *service.AdminEvent) error {
	switch event.Type {
	case constants.EventNewAdminNotification, constants.EventNotificationUpdated:
		h.broadcaster.Broadcast(event)
	default:
		withLogger := deliverycontext.GetLoggerOrDefault(withEventLogger(ctx, event, h.logger), h.logger)
		withLogger.Debug("Ignoring bus event", slog.String("type", event.Type))
	}

	return nil
}

// withEventLogger carries the request id of the originating request.
func withEventLogger(ctx context.Context, event *service.AdminEvent, logger *slog.Logger) context.Context {
	if event.RequestID == "" {
		return ctx
	}

	ctx, _ = deliverycontext.Scope(ctx, logger, event.RequestID)

	return ctx
}
