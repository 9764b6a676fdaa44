package stream

import (
	"io"
	"log/slog"
	"strconv"
	"testing"

	"vradmin/internal/domain/constants"
	"vradmin/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub() *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHub_BroadcastReachesEverySubscriber(t *testing.T) {
	t.Parallel()

	hub := newTestHub()
	first, cancelFirst := hub.Subscribe()
	defer cancelFirst()
	second, cancelSecond := hub.Subscribe()
	defer cancelSecond()

	event := &service.AdminEvent{Type: constants.EventNewAdminNotification}
	hub.Broadcast(event)

	assert.Same(t, event, <-first)
	assert.Same(t, event, <-second)
}

func TestHub_CancelUnsubscribes(t *testing.T) {
	t.Parallel()

	hub := newTestHub()
	ch, cancel := hub.Subscribe()
	require.Equal(t, 1, hub.Subscribers())

	cancel()
	cancel()
	assert.Equal(t, 0, hub.Subscribers())

	_, open := <-ch
	assert.False(t, open)

	hub.Broadcast(&service.AdminEvent{Type: constants.EventNotificationUpdated})
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	t.Parallel()

	hub := newTestHub()
	ch, cancel := hub.Subscribe()
	defer cancel()

	for range defaultBuffer + 5 {
		hub.Broadcast(&service.AdminEvent{Type: constants.EventNotificationUpdated})
	}

	assert.Len(t, ch, defaultBuffer)
}

func TestHub_DuplicateEventIDDeliveredOnce(t *testing.T) {
	t.Parallel()

	hub := newTestHub()
	ch, cancel := hub.Subscribe()
	defer cancel()

	hub.Broadcast(&service.AdminEvent{ID: "evt-1", Type: constants.EventNewAdminNotification})
	hub.Broadcast(&service.AdminEvent{ID: "evt-1", Type: constants.EventNewAdminNotification})
	hub.Broadcast(&service.AdminEvent{ID: "evt-2", Type: constants.EventNotificationUpdated})

	require.Len(t, ch, 2)
	assert.Equal(t, "evt-1", (<-ch).ID)
	assert.Equal(t, "evt-2", (<-ch).ID)
}

func TestHub_ForgetsOldEventIDs(t *testing.T) {
	t.Parallel()

	hub := newTestHub()
	assert.True(t, hub.firstSighting("old"))
	for i := range recentEvents {
		hub.firstSighting(string(rune('a' + i%26)) + strconv.Itoa(i))
	}
	assert.True(t, hub.firstSighting("old"))
}
