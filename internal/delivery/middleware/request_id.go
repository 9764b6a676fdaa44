package middleware

import (
	"log/slog"

	deliverycontext "vradmin/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestID tags every request with an id and a logger carrying it. A
// well-formed X-Request-Id from the client is kept, anything else replaced;
// the id is echoed back in the response header.
func RequestID(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			requestID := deliverycontext.SanitizeRequestID(req.Header.Get(deliverycontext.HeaderXRequestID))
			if requestID == "" {
				requestID = deliverycontext.NewRequestID()
			}
			deliverycontext.SetRequestID(c, requestID)
			c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

			ctx, _ := deliverycontext.Scope(req.Context(), logger, requestID)
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	}
}
