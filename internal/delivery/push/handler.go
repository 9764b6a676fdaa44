// Package push receives admin events delivered by a Pub/Sub push
// subscription or the local HTTP publisher.
package push

import (
	"context"
	"log/slog"
	"net/http"

	"vradmin/config"
	deliverycontext "vradmin/internal/delivery/context"
	"vradmin/internal/domain/constants"
	domainerrors "vradmin/internal/domain/errors"
	"vradmin/internal/domain/service"
	"vradmin/internal/infra/pubsub"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TokenVerifyFunc verifies the push token of a request.
type TokenVerifyFunc func(ctx context.Context, req *http.Request, audience string) error

// Handler decodes push messages and hands the event to the process's
// AdminEventHandler.
type Handler struct {
	verifyPushAuth bool
	audience       string
	verify         TokenVerifyFunc
	eventHandler   service.AdminEventHandler
	logger         *slog.Logger
}

// HandlerParams holds dependencies for the push Handler, injected by Fx
type HandlerParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	EventHandler service.AdminEventHandler
}

// NewHandler creates the push handler. Google push tokens are verified for
// the google provider outside development.
func NewHandler(params HandlerParams) *Handler {
	cfg := params.Config.PubSub
	verifyPushAuth := cfg != nil &&
		cfg.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	audience := ""
	if cfg != nil {
		audience = cfg.PushAudience
	}

	return &Handler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		verify:         pubsub.VerifyPushToken,
		eventHandler:   params.EventHandler,
		logger:         params.Logger,
	}
}

// HandlePush answers 503 for failures worth a redelivery and 200 otherwise,
// so a poison message is acknowledged instead of retried forever.
func (h *Handler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verify(ctx, c.Request(), h.audience); err != nil {
			h.logger.Warn("[Push] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Push] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pubsub.DecodeEvent(&pushMsg)
	if err != nil {
		h.logger.Error("[Push] Dropping undecodable message",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	// Priority: message attributes and payload (merged by DecodeEvent) > X-Request-Id > new id
	requestID := event.RequestID
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	ctx, reqLogger := deliverycontext.Scope(ctx, h.logger, requestID)
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	reqLogger.Debug("[Push] Processing event",
		slog.String("type", event.Type),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	if err := h.eventHandler.HandleAdminEvent(ctx, event); err != nil {
		retryable := IsRetryable(err)
		reqLogger.Error("[Push] Failed to process event",
			slog.String("type", event.Type),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// IsRetryable reports whether a failed event is worth redelivering. Client
// errors will fail the same way again; everything else is treated as
// transient.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode() >= http.StatusInternalServerError
	}

	return !errors.Is(err, context.Canceled)
}
