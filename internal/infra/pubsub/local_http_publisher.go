package pubsub

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"vradmin/internal/domain/service"
	"vradmin/internal/infra/httpx"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	localSubscription = "projects/local/subscriptions/admin-events"
	localPushTimeout  = 10 * time.Second
	localPushAttempts = 2
	localPushBackoff  = 100 * time.Millisecond
)

// localHTTPPublisher stands in for Pub/Sub push subscriptions during
// development: every event is wrapped in a push envelope and posted to each
// configured endpoint (typically the notifier's /push and the dashboard's
// /events/push).
type localHTTPPublisher struct {
	endpoints map[string]*httpx.Client
	logger    *slog.Logger
}

// ParseEndpoints splits a comma separated endpoint list.
func ParseEndpoints(raw string) []string {
	var endpoints []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			endpoints = append(endpoints, part)
		}
	}

	return endpoints
}

func NewLocalHTTPPublisher(endpoints []string, logger *slog.Logger) service.EventPublisher {
	clients := make(map[string]*httpx.Client, len(endpoints))
	for _, endpoint := range endpoints {
		clients[endpoint] = httpx.New(endpoint, logger,
			httpx.WithTimeout(localPushTimeout),
			httpx.WithRetry(localPushAttempts, localPushBackoff),
		)
	}

	return &localHTTPPublisher{endpoints: clients, logger: logger}
}

// PublishAdminEvent posts to all endpoints concurrently. Every endpoint is
// attempted; the first failure is returned.
func (p *localHTTPPublisher) PublishAdminEvent(ctx context.Context, event *service.AdminEvent) error {
	msg, err := NewPushMessage(event, uuid.NewString(), localSubscription, time.Now())
	if err != nil {
		return err
	}

	header := http.Header{}
	if event.RequestID != "" {
		header.Set("X-Request-Id", event.RequestID)
	}

	var g errgroup.Group
	for endpoint, client := range p.endpoints {
		g.Go(func() error {
			if err := client.PostJSON(ctx, "", msg, header); err != nil {
				p.logger.Warn("[LocalPubSub] Push failed",
					slog.String("endpoint", endpoint),
					slog.String("type", event.Type),
					slog.Any("error", err),
				)

				return err
			}
			p.logger.Debug("[LocalPubSub] Event pushed",
				slog.String("endpoint", endpoint),
				slog.String("type", event.Type),
			)

			return nil
		})
	}

	return g.Wait()
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
