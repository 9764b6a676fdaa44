// Package consumer receives admin events from the Kafka topic when Kafka is
// the configured event provider.
package consumer

import (
	"context"
	"log/slog"
	"os"

	"vradmin/config"
	"vradmin/internal/delivery"
	deliverycontext "vradmin/internal/delivery/context"
	"vradmin/internal/domain/constants"
	"vradmin/internal/domain/service"
	"vradmin/internal/infra/pubsub"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	dashboardGroupSuffix = "-dashboard"
	notifierGroupSuffix  = "-notifier"
)

// Params holds dependencies for the event consumer, injected by Fx
type Params struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	EventHandler service.AdminEventHandler
}

// Consumer reads admin events from a Kafka consumer group.
type Consumer struct {
	client  sarama.ConsumerGroup
	handler *groupHandler
	topic   string
	groupID string
	logger  *slog.Logger
}

// NewDashboardConsumer consumes with one group per host, so every dashboard
// replica sees every event and can relay it to its own stream clients.
func NewDashboardConsumer(params Params) (delivery.Delivery, error) {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = deliverycontext.NewRequestID()
	}

	return newConsumer(params, dashboardGroupSuffix+"-"+hostname)
}

// NewNotifierConsumer consumes with one group shared by all notifier
// replicas, so each event triggers at most one derivation.
func NewNotifierConsumer(params Params) (delivery.Delivery, error) {
	return newConsumer(params, notifierGroupSuffix)
}

func newConsumer(params Params, groupSuffix string) (delivery.Delivery, error) {
	logger := params.Logger.With(slog.String("component", "kafka_consumer"))

	cfg := params.Cfg.PubSub
	if cfg == nil || cfg.Provider != constants.PubSubProviderKafka {
		return &Consumer{logger: logger}, nil
	}
	if len(cfg.Kafka.Brokers) == 0 {
		return nil, errors.New("kafka brokers list is empty")
	}
	if cfg.Kafka.Topic == "" {
		return nil, errors.New("kafka topic is empty")
	}

	saramaConfig, err := pubsub.NewSaramaConfig(cfg.Kafka.Version)
	if err != nil {
		return nil, err
	}
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	saramaConfig.Consumer.Return.Errors = false

	groupID := cfg.Kafka.GroupID + groupSuffix
	client, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, groupID, saramaConfig)
	if err != nil {
		return nil, errors.Wrapf(err, "create kafka consumer group %s", groupID)
	}

	logger.Info("Kafka consumer created",
		slog.String("group_id", groupID),
		slog.String("topic", cfg.Kafka.Topic),
		slog.Any("brokers", cfg.Kafka.Brokers),
	)

	c := &Consumer{
		client:  client,
		handler: &groupHandler{eventHandler: params.EventHandler, logger: logger},
		topic:   cfg.Kafka.Topic,
		groupID: groupID,
		logger:  logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return c.Close()
		},
	})

	return c, nil
}

// Serve consumes until ctx is done. It returns at once when Kafka is not
// the configured provider.
func (c *Consumer) Serve(ctx context.Context) error {
	if c.client == nil {
		c.logger.Debug("Kafka consumer disabled")

		return nil
	}

	c.logger.Info("Starting Kafka consumer", slog.String("group_id", c.groupID), slog.String("topic", c.topic))

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("Stopping Kafka consumer")

			return nil
		default:
			if err := c.client.Consume(ctx, []string{c.topic}, c.handler); err != nil {
				if errors.Is(err, sarama.ErrClosedConsumerGroup) {
					return nil
				}

				return errors.Wrap(err, "kafka consume")
			}
		}
	}
}

// Close leaves the consumer group.
func (c *Consumer) Close() error {
	if c.client == nil {
		return nil
	}
	c.logger.Info("Closing Kafka consumer", slog.String("group_id", c.groupID))

	return errors.WithStack(c.client.Close())
}

type groupHandler struct {
	eventHandler service.AdminEventHandler
	logger       *slog.Logger
}

func (h *groupHandler) Setup(session sarama.ConsumerGroupSession) error {
	h.logger.Debug("Consumer group session started",
		slog.String("member_id", session.MemberID()),
		slog.Int("generation_id", int(session.GenerationID())),
	)

	return nil
}

func (h *groupHandler) Cleanup(session sarama.ConsumerGroupSession) error {
	h.logger.Debug("Consumer group session ended", slog.String("member_id", session.MemberID()))

	return nil
}

// ConsumeClaim marks every record once handled. Events are notifications of
// change, and a missed one is recovered by the next derivation run.
func (h *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		h.handleMessage(session.Context(), msg)
		session.MarkMessage(msg, "")
	}

	return nil
}

func (h *groupHandler) handleMessage(ctx context.Context, msg *sarama.ConsumerMessage) {
	logger := h.logger.With(slog.Int("partition", int(msg.Partition)), slog.Int64("offset", msg.Offset))

	event, err := pubsub.DecodeKafkaEvent(msg)
	if err != nil {
		logger.Warn("Dropping malformed admin event", slog.Any("error", err))

		return
	}

	ctx, logger = deliverycontext.Scope(ctx, logger.With(slog.String("type", event.Type)), event.RequestID)

	if err := h.eventHandler.HandleAdminEvent(ctx, event); err != nil {
		logger.Error("Failed to handle admin event", slog.Any("error", err))
	}
}
