package handler

import (
	"log/slog"
	"net/http"

	"vradmin/internal/delivery/api/response"
	"vradmin/internal/domain/entity"
	"vradmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LogHandlerParams holds dependencies for LogHandler, injected by Fx.
type LogHandlerParams struct {
	fx.In

	LogUC  usecase.LogUsecase
	Logger *slog.Logger
}

// LogHandler serves the application log browser
type LogHandler struct {
	logUC  usecase.LogUsecase
	logger *slog.Logger
}

// NewLogHandler is the constructor for LogHandler
func NewLogHandler(params LogHandlerParams) *LogHandler {
	return &LogHandler{
		logUC:  params.LogUC,
		logger: params.Logger,
	}
}

// Search handles GET /logs
func (h *LogHandler) Search(c echo.Context) error {
	from, err := queryInt(c, "from", 0)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	size, err := queryInt(c, "size", 0)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.logUC.Search(c.Request().Context(), entity.LogQuery{
		From:  from,
		Size:  size,
		Query: c.QueryParam("q"),
		Level: c.QueryParam("level"),
		Key:   c.QueryParam("key"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}
