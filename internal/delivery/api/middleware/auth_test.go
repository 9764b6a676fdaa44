package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"vradmin/internal/domain/service"
	mockservice "vradmin/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		header     string
		setup      func(verifier *mockservice.MockTokenVerifier)
		wantStatus int
		wantAdmin  string
		wantRoles  []string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "rejected token",
			header: "Bearer bad",
			setup: func(verifier *mockservice.MockTokenVerifier) {
				verifier.EXPECT().ValidateToken("bad").Return(nil, errors.New("expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(verifier *mockservice.MockTokenVerifier) {
				verifier.EXPECT().ValidateToken("good").Return(&service.Claims{
					Roles:            []string{"admin"},
					RegisteredClaims: jwt.RegisteredClaims{Subject: "admin-1"},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantAdmin:  "admin-1",
			wantRoles:  []string{"admin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verifier := mockservice.NewMockTokenVerifier(t)
			if tt.setup != nil {
				tt.setup(verifier)
			}
			m := NewAuthMiddleware(verifier, discardLogger())

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/todos", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var (
				seenAdmin string
				seenRoles []string
			)
			err := m.Authenticate(func(c echo.Context) error {
				seenAdmin, _ = GetAdminID(c)
				seenRoles, _ = GetRoles(c)

				return c.NoContent(http.StatusOK)
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAdmin, seenAdmin)
			assert.Equal(t, tt.wantRoles, seenRoles)
		})
	}
}
