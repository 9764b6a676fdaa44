package service

import (
	"context"
	"time"

	"vradmin/internal/domain/entity"
)

// AdminEvent is the message carried by the event bus and the live stream.
// Type is one of the constants.Event* names or a worker trigger.
type AdminEvent struct {
	ID           string                    `json:"id,omitempty"`
	Type         string                    `json:"type"`
	RequestID    string                    `json:"request_id,omitempty"` // For distributed tracing
	Notification *entity.Notification      `json:"notification,omitempty"`
	Count        *entity.NotificationCount `json:"count,omitempty"`
	OccurredAt   time.Time                 `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAdminEvent publishes an event to every subscriber of the bus
	PublishAdminEvent(ctx context.Context, event *AdminEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// EventBroadcaster fans events out to the clients connected to this process.
type EventBroadcaster interface {
	Broadcast(event *AdminEvent)
}

// AdminEventHandler consumes events received from the bus.
type AdminEventHandler interface {
	HandleAdminEvent(ctx context.Context, event *AdminEvent) error
}
