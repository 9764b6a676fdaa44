package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"vradmin/config"
	deliverycontext "vradmin/internal/delivery/context"
	"vradmin/internal/domain/entity"
	mockusecase "vradmin/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPoller(t *testing.T, interval time.Duration) (*Poller, *mockusecase.MockNotificationUsecase) {
	t.Helper()

	notificationUC := mockusecase.NewMockNotificationUsecase(t)
	p := NewPoller(PollerParams{
		Cfg:            &config.Config{Notification: &config.NotificationConfig{PollInterval: interval}},
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationUC: notificationUC,
	})

	return p.(*Poller), notificationUC
}

func TestPoller_RunsImmediatelyAndOnEveryTick(t *testing.T) {
	p, notificationUC := newTestPoller(t, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 8)
	notificationUC.EXPECT().DeriveShippingMissing(mock.Anything).
		RunAndReturn(func(context.Context) (*entity.DerivationResult, error) {
			select {
			case calls <- struct{}{}:
			default:
			}

			return &entity.DerivationResult{Scanned: 3}, nil
		})

	done := make(chan error, 1)
	go func() { done <- p.Serve(ctx) }()

	for range 2 {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatal("derivation did not run")
		}
	}

	cancel()
	require.NoError(t, <-done)
}

func TestPoller_SurvivesFailedRuns(t *testing.T) {
	p, notificationUC := newTestPoller(t, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 8)
	notificationUC.EXPECT().DeriveShippingMissing(mock.Anything).
		RunAndReturn(func(context.Context) (*entity.DerivationResult, error) {
			select {
			case calls <- struct{}{}:
			default:
			}

			return nil, errors.New("backend unavailable")
		})

	done := make(chan error, 1)
	go func() { done <- p.Serve(ctx) }()

	for range 2 {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatal("derivation was not retried")
		}
	}

	cancel()
	require.NoError(t, <-done)
}

func TestPoller_CarriesRequestID(t *testing.T) {
	p, notificationUC := newTestPoller(t, time.Hour)

	notificationUC.EXPECT().DeriveShippingMissing(mock.MatchedBy(func(ctx context.Context) bool {
		return deliverycontext.GetRequestIDFromContext(ctx) != ""
	})).Return(&entity.DerivationResult{}, nil).Once()

	p.runOnce(context.Background())
}
