package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "vradmin/internal/delivery/context"
	"vradmin/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultHeartbeat = 25 * time.Second

// EventSubscriber hands out live event subscriptions.
type EventSubscriber interface {
	Subscribe() (<-chan *service.AdminEvent, func())
}

// StreamHandlerParams holds dependencies for StreamHandler, injected by Fx.
type StreamHandlerParams struct {
	fx.In

	Subscriber EventSubscriber
	Logger     *slog.Logger
}

// StreamHandler pushes notification events to dashboard clients as server-sent events.
type StreamHandler struct {
	subscriber EventSubscriber
	heartbeat  time.Duration
	logger     *slog.Logger
}

// NewStreamHandler is the constructor for StreamHandler
func NewStreamHandler(params StreamHandlerParams) *StreamHandler {
	return &StreamHandler{
		subscriber: params.Subscriber,
		heartbeat:  defaultHeartbeat,
		logger:     params.Logger,
	}
}

// Stream handles GET /purchases/notifications/stream. The connection stays
// open until the client goes away; comment lines keep idle proxies from
// closing it.
func (h *StreamHandler) Stream(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	events, cancel := h.subscriber.Subscribe()
	defer cancel()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)
	if _, err := fmt.Fprint(res, ": connected\n\n"); err != nil {
		return nil
	}
	res.Flush()

	logger.Debug("Stream client connected")
	defer logger.Debug("Stream client disconnected")

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := fmt.Fprint(res, ": ping\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if err := writeEvent(res, event); err != nil {
				logger.Debug("Stream write failed", slog.Any("error", err))

				return nil
			}
			res.Flush()
		}
	}
}

func writeEvent(res *echo.Response, event *service.AdminEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if event.ID != "" {
		if _, err := fmt.Fprintf(res, "id: %s\n", event.ID); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(res, "event: %s\ndata: %s\n\n", event.Type, data)

	return err
}
