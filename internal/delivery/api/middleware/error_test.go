package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vradmin/internal/delivery/api/response"
	domainerrors "vradmin/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:        "domain error keeps status and details",
			err:         errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("bad id"), "handler"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "bad id",
		},
		{
			name:       "forbidden hides details",
			err:        domainerrors.ErrDeviceOwnershipViolation.WithDetails("owner admin-2"),
			wantStatus: http.StatusForbidden,
			wantCode:   "DEVICE_OWNERSHIP_VIOLATION",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/todos", nil), rec)

			NewErrorMiddleware(discardLogger()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
		})
	}
}

func TestHandleHTTPError_CommittedResponseIsLeftAlone(t *testing.T) {
	t.Parallel()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/stream", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "partial"))

	NewErrorMiddleware(discardLogger()).HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, "partial", rec.Body.String())
}
