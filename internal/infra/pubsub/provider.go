package pubsub

import (
	"context"
	"log/slog"

	"vradmin/config"
	"vradmin/internal/domain/constants"
	"vradmin/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrInvalidProvider reports an event bus configuration that cannot work.
var ErrInvalidProvider = errors.New("invalid pubsub configuration")

// noopPublisher drops events when no bus is configured; SSE clients of the
// publishing process are still reached through the hub.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishAdminEvent(_ context.Context, event *service.AdminEvent) error {
	p.logger.Debug("[NoopPubSub] Event not published", slog.String("type", event.Type))

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the admin event publisher for the configured provider.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	logger := params.Logger.With(slog.String("component", "event_publisher"))

	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing event publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.PubSubProviderNone {
		logger.Info("No event bus configured, events stay in process")

		return &noopPublisher{logger: logger}, nil
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		endpoints := ParseEndpoints(cfg.LocalEndpoint)
		logger.Info("Using local HTTP push publisher", slog.Any("endpoints", endpoints))

		return NewLocalHTTPPublisher(endpoints, logger), nil
	case constants.PubSubProviderGoogle:
		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	default:
		return NewKafkaPublisher(cfg.Kafka, logger)
	}
}

// validate checks the settings each provider needs before any connection
// is attempted.
func validate(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if len(ParseEndpoints(cfg.LocalEndpoint)) == 0 {
			return errors.Wrap(ErrInvalidProvider, "local provider needs localEndpoint")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return errors.Wrap(ErrInvalidProvider, "google provider needs projectId and topicId")
		}
	case constants.PubSubProviderKafka:
		if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.Topic == "" {
			return errors.Wrap(ErrInvalidProvider, "kafka provider needs brokers and topic")
		}
	default:
		return errors.Wrapf(ErrInvalidProvider, "unknown provider %q", cfg.Provider)
	}

	return nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
