package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"vradmin/internal/domain/constants"
	"vradmin/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubscriber struct {
	events    chan *service.AdminEvent
	cancelled bool
}

func (f *fakeSubscriber) Subscribe() (<-chan *service.AdminEvent, func()) {
	return f.events, func() { f.cancelled = true }
}

func newStreamContext(ctx context.Context) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/purchases/notifications/stream", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestStream_WritesEvents(t *testing.T) {
	subscriber := &fakeSubscriber{events: make(chan *service.AdminEvent, 1)}
	h := NewStreamHandler(StreamHandlerParams{Subscriber: subscriber, Logger: discardLogger()})

	subscriber.events <- &service.AdminEvent{ID: "e-1", Type: constants.EventNotificationUpdated}
	close(subscriber.events)

	c, rec := newStreamContext(context.Background())
	require.NoError(t, h.Stream(c))

	body := rec.Body.String()
	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, body, ": connected\n\n")
	assert.Contains(t, body, "id: e-1\nevent: notificationUpdated\n")
	assert.Contains(t, body, `data: {"id":"e-1","type":"notificationUpdated"`)
	assert.True(t, subscriber.cancelled)
}

func TestStream_StopsWhenClientLeaves(t *testing.T) {
	subscriber := &fakeSubscriber{events: make(chan *service.AdminEvent)}
	h := NewStreamHandler(StreamHandlerParams{Subscriber: subscriber, Logger: discardLogger()})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, rec := newStreamContext(ctx)
	require.NoError(t, h.Stream(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "event:")
	assert.True(t, subscriber.cancelled)
}
