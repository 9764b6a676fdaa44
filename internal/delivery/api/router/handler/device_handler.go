package handler

import (
	"log/slog"
	"net/http"

	"vradmin/internal/delivery/api/middleware"
	"vradmin/internal/delivery/api/response"
	domainerrors "vradmin/internal/domain/errors"
	"vradmin/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.AdminDeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler serves /api/v1/devices, the push targets of the signed-in admin.
type DeviceHandler struct {
	deviceUC usecase.AdminDeviceUsecase
	logger   *slog.Logger
}

func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

type updateTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}

// deviceRequest resolves the admin and the :id path parameter. A nil
// uuid is returned when the route has no :id.
func deviceRequest(c echo.Context) (string, uuid.UUID, error) {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return "", uuid.Nil, domainerrors.ErrUnauthorized
	}

	raw := c.Param("id")
	if raw == "" {
		return adminID, uuid.Nil, nil
	}
	deviceID, err := uuid.Parse(raw)
	if err != nil {
		return "", uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid device id")
	}

	return adminID, deviceID, nil
}

// RegisterDevice handles POST /api/v1/devices. Registering a device id the
// admin already has refreshes its token and reactivates it.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	adminID, _, err := deviceRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var info usecase.DeviceInfo
	if err := c.Bind(&info); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(&info); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), adminID, &info)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// GetAdminDevices handles GET /api/v1/devices
func (h *DeviceHandler) GetAdminDevices(c echo.Context) error {
	adminID, _, err := deviceRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	devices, err := h.deviceUC.GetAdminDevices(c.Request().Context(), adminID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// UpdateFCMToken handles PUT /api/v1/devices/:id/token
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	adminID, deviceID, err := deviceRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req updateTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid FCM token input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), adminID, deviceID, req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeactivateDevice handles DELETE /api/v1/devices/:id
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	adminID, deviceID, err := deviceRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), adminID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
