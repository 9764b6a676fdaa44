package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"vradmin/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// PushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// eventAttributes are the message attributes used for filtering and tracing.
func eventAttributes(event *service.AdminEvent) map[string]string {
	attributes := map[string]string{
		"type": event.Type,
	}
	if event.ID != "" {
		attributes["event_id"] = event.ID
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}
	if event.Notification != nil {
		attributes["notification_id"] = event.Notification.ID.String()
	}

	return attributes
}

// NewPushMessage wraps an event the way a push subscription delivers it.
func NewPushMessage(event *service.AdminEvent, messageID, subscription string, publishedAt time.Time) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = messageID
	msg.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)
	msg.Message.Attributes = eventAttributes(event)

	return msg, nil
}

// DecodeEvent extracts the event carried by a push message. A request_id
// attribute takes precedence over the one in the payload.
func DecodeEvent(msg *PushMessage) (*service.AdminEvent, error) {
	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.AdminEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "parse admin event")
	}
	if event.Type == "" {
		event.Type = msg.Message.Attributes["type"]
	}
	if event.Type == "" {
		return nil, errors.New("admin event without type")
	}
	if requestID := msg.Message.Attributes["request_id"]; requestID != "" {
		event.RequestID = requestID
	}

	return &event, nil
}

// VerifyPushToken verifies the JWT token from Google Pub/Sub push requests.
// An empty audience means the URL of the request itself.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func VerifyPushToken(ctx context.Context, req *http.Request, audience string) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
