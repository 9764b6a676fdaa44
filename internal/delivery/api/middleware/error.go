package middleware

import (
	"log/slog"
	"net/http"

	"vradmin/internal/delivery/api/response"
	deliverycontext "vradmin/internal/delivery/context"
	domainerrors "vradmin/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware is the echo HTTPErrorHandler. Domain errors keep their
// status and code, echo errors (404 route, 405, 413 ...) become HTTP_ERROR
// and anything else is logged and hidden behind a 500.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	req := c.Request()
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).
		With(slog.String("method", req.Method), slog.String("path", req.URL.Path))

	if c.Response().Committed {
		logger.Warn("Error after response was committed", slog.Any("error", err))

		return
	}

	var (
		appErr  domainerrors.AppError
		httpErr *echo.HTTPError
	)
	switch {
	case errors.As(err, &appErr):
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.String("code", appErr.ErrorCode()), slog.Any("error", err))
		}
		_ = response.HandleAppError(c, appErr)

	case errors.As(err, &httpErr):
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

	default:
		logger.Error("Unhandled error", slog.Any("error", err))
		_ = response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error, please try again later", nil)
	}
}
