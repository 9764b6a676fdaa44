package handler

import (
	"log/slog"
	"net/http"

	"vradmin/internal/delivery/api/response"
	"vradmin/internal/domain/entity"
	domainerrors "vradmin/internal/domain/errors"
	"vradmin/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves the admin notification inbox
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// MarkReadRequest is the body of PATCH /purchases/notifications/:id/read.
// A missing read flag marks the notification read.
type MarkReadRequest struct {
	Read *bool `json:"read"`
}

// ListNotifications handles GET /purchases/notifications
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	start, err := queryDate(c, "startDate")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	end, err := queryDate(c, "endDate")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if end != nil {
		widened := endOfDay(c, "endDate", *end)
		end = &widened
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	unreadOnly, err := queryBool(c, "unreadOnly")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	notificationType := entity.NotificationType(c.QueryParam("type"))
	switch notificationType {
	case "", entity.NotificationTypeShippingMissing, entity.NotificationTypePurchaseStatus,
		entity.NotificationTypeTrainingReminder, entity.NotificationTypeTodoReminder:
	default:
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("unknown notification type"))
	}

	notifications, err := h.notificationUC.ListNotifications(c.Request().Context(), entity.NotificationQuery{
		Start:      start,
		End:        end,
		Type:       notificationType,
		UnreadOnly: unreadOnly,
		Limit:      limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications)
}

// CountNotifications handles GET /purchases/notifications/count
func (h *NotificationHandler) CountNotifications(c echo.Context) error {
	count, err := h.notificationUC.CountNotifications(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, count)
}

// DeriveShippingMissing handles POST /purchases/notifications/derive
func (h *NotificationHandler) DeriveShippingMissing(c echo.Context) error {
	result, err := h.notificationUC.DeriveShippingMissing(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if result.Created != nil {
		status = http.StatusCreated
	}

	return response.Success(c, status, result)
}

// MarkRead handles PATCH /purchases/notifications/:id/read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	var req MarkReadRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid read flag")
		}
	}
	read := req.Read == nil || *req.Read

	notification, err := h.notificationUC.MarkRead(c.Request().Context(), id, read)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notification)
}

// MarkAllRead handles PATCH /purchases/notifications/mark-all-read
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	changed, err := h.notificationUC.MarkAllRead(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"updated": changed})
}
