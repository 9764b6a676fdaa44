package push

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vradmin/config"
	deliverycontext "vradmin/internal/delivery/context"
	"vradmin/internal/domain/constants"
	domainerrors "vradmin/internal/domain/errors"
	"vradmin/internal/domain/service"
	"vradmin/internal/infra/pubsub"
	mockservice "vradmin/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestHandler(t *testing.T, env, provider string) (*Handler, *mockservice.MockAdminEventHandler) {
	t.Helper()

	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: provider}}
	cfg.Env.Env = env
	eventHandler := mockservice.NewMockAdminEventHandler(t)

	h := NewHandler(HandlerParams{
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		EventHandler: eventHandler,
	})

	return h, eventHandler
}

func pushRequest(t *testing.T, event *service.AdminEvent) *http.Request {
	t.Helper()

	msg, err := pubsub.NewPushMessage(event, "m-1", "projects/p/subscriptions/s", time.Now())
	require.NoError(t, err)
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	_ = h.HandlePush(c)

	return rec
}

func TestHandlePush_Success(t *testing.T) {
	h, eventHandler := createTestHandler(t, constants.EnvDevelop, constants.PubSubProviderLocal)

	eventHandler.EXPECT().
		HandleAdminEvent(mock.Anything, mock.MatchedBy(func(e *service.AdminEvent) bool {
			return e.Type == constants.TriggerDeriveShippingMissing && e.RequestID == "req-1"
		})).
		RunAndReturn(func(ctx context.Context, _ *service.AdminEvent) error {
			assert.Equal(t, "req-1", deliverycontext.GetRequestIDFromContext(ctx))

			return nil
		})

	rec := serve(h, pushRequest(t, &service.AdminEvent{
		Type:      constants.TriggerDeriveShippingMissing,
		RequestID: "req-1",
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_GeneratesRequestID(t *testing.T) {
	h, eventHandler := createTestHandler(t, constants.EnvDevelop, constants.PubSubProviderLocal)

	eventHandler.EXPECT().
		HandleAdminEvent(mock.Anything, mock.MatchedBy(func(e *service.AdminEvent) bool {
			return e.RequestID != ""
		})).
		Return(nil)

	rec := serve(h, pushRequest(t, &service.AdminEvent{Type: constants.TriggerDeriveShippingMissing}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_FailureStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "upstream down is retried", err: domainerrors.ErrUpstreamUnavailable.WrapMessage("timeout"), wantStatus: http.StatusServiceUnavailable},
		{name: "unknown error is retried", err: errors.New("connection reset"), wantStatus: http.StatusServiceUnavailable},
		{name: "validation error is acknowledged", err: domainerrors.ErrValidationFailed, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, eventHandler := createTestHandler(t, constants.EnvDevelop, constants.PubSubProviderLocal)
			eventHandler.EXPECT().HandleAdminEvent(mock.Anything, mock.Anything).Return(tt.err)

			rec := serve(h, pushRequest(t, &service.AdminEvent{Type: constants.TriggerDeriveShippingMissing}))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandlePush_MalformedMessages(t *testing.T) {
	h, _ := createTestHandler(t, constants.EnvDevelop, constants.PubSubProviderLocal)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader([]byte(`{not json`)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	assert.Equal(t, http.StatusBadRequest, serve(h, req).Code)

	req = httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader([]byte(`{"message": {"data": "!!"}}`)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	assert.Equal(t, http.StatusOK, serve(h, req).Code)
}

func TestHandlePush_VerifiesGoogleTokens(t *testing.T) {
	h, eventHandler := createTestHandler(t, constants.EnvProduction, constants.PubSubProviderGoogle)
	require.True(t, h.verifyPushAuth)

	h.verify = func(context.Context, *http.Request, string) error {
		return errors.New("bad token")
	}
	assert.Equal(t, http.StatusUnauthorized,
		serve(h, pushRequest(t, &service.AdminEvent{Type: constants.TriggerDeriveShippingMissing})).Code)

	h.verify = func(context.Context, *http.Request, string) error { return nil }
	eventHandler.EXPECT().HandleAdminEvent(mock.Anything, mock.Anything).Return(nil)
	assert.Equal(t, http.StatusOK,
		serve(h, pushRequest(t, &service.AdminEvent{Type: constants.TriggerDeriveShippingMissing})).Code)
}

func TestNewHandler_SkipsVerificationInDevelopment(t *testing.T) {
	h, _ := createTestHandler(t, constants.EnvDevelop, constants.PubSubProviderGoogle)
	assert.False(t, h.verifyPushAuth)
}
