package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"vradmin/config"
	"vradmin/internal/domain/service"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

// kafkaPublisher implements EventPublisher on a Kafka topic.
type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewKafkaPublisher creates a synchronous producer for the admin event topic.
func NewKafkaPublisher(cfg config.KafkaConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers list is empty")
	}
	if cfg.Topic == "" {
		return nil, errors.New("kafka topic is empty")
	}

	saramaConfig, err := NewSaramaConfig(cfg.Version)
	if err != nil {
		return nil, err
	}
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka producer")
	}

	logger.Info("Kafka publisher initialized",
		slog.Any("brokers", cfg.Brokers),
		slog.String("topic", cfg.Topic),
	)

	return &kafkaPublisher{producer: producer, topic: cfg.Topic, logger: logger}, nil
}

// NewSaramaConfig returns a sarama config for the given broker version.
func NewSaramaConfig(version string) (*sarama.Config, error) {
	saramaConfig := sarama.NewConfig()
	if version != "" {
		parsed, err := sarama.ParseKafkaVersion(version)
		if err != nil {
			return nil, errors.Wrapf(err, "parse kafka version %q", version)
		}
		saramaConfig.Version = parsed
	}

	return saramaConfig, nil
}

// PublishAdminEvent sends the event keyed by its type so each type stays ordered.
func (p *kafkaPublisher) PublishAdminEvent(ctx context.Context, event *service.AdminEvent) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := make([]sarama.RecordHeader, 0, 3)
	for key, value := range eventAttributes(event) {
		headers = append(headers, sarama.RecordHeader{Key: []byte(key), Value: []byte(value)})
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.StringEncoder(event.Type),
		Value:   sarama.ByteEncoder(data),
		Headers: headers,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Debug("[Kafka] Event published",
		slog.String("type", event.Type),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset),
	)

	return nil
}

func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.producer.Close())
}

// DecodeKafkaEvent extracts the event carried by a Kafka record. Headers
// written by the publisher win over the payload, as with push attributes.
func DecodeKafkaEvent(msg *sarama.ConsumerMessage) (*service.AdminEvent, error) {
	var event service.AdminEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return nil, errors.Wrap(err, "parse admin event")
	}

	headers := make(map[string]string, len(msg.Headers))
	for _, header := range msg.Headers {
		if header != nil {
			headers[string(header.Key)] = string(header.Value)
		}
	}

	if event.Type == "" {
		event.Type = headers["type"]
	}
	if event.Type == "" {
		return nil, errors.New("admin event without type")
	}
	if requestID := headers["request_id"]; requestID != "" {
		event.RequestID = requestID
	}

	return &event, nil
}
