package middleware

import (
	"log/slog"
	"strings"

	"vradmin/internal/delivery/api/response"
	deliverycontext "vradmin/internal/delivery/context"
	"vradmin/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	contextKeyAdminID = "adminID"
	contextKeyRoles   = "roles"
)

// AuthMiddleware authenticates dashboard staff by their bearer token.
type AuthMiddleware struct {
	verifier service.TokenVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// Authenticate validates the bearer token and stores the admin id on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.verifier.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected bearer token", slog.Any("error", err))

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		SetAdminID(c, claims.AdminID())
		c.Set(contextKeyRoles, claims.Roles)

		return next(c)
	}
}

// SetAdminID stores the authenticated admin on the echo context.
func SetAdminID(c echo.Context, adminID string) {
	c.Set(contextKeyAdminID, adminID)
}

// GetAdminID returns the id of the authenticated admin.
func GetAdminID(c echo.Context) (string, bool) {
	adminID, ok := c.Get(contextKeyAdminID).(string)

	return adminID, ok && adminID != ""
}

// GetRoles returns the roles of the authenticated admin.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(contextKeyRoles).([]string)

	return roles, ok
}
