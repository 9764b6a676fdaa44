package service

import (
	"context"
)

// MaxPushTokens is the most device tokens a single Push call accepts.
const MaxPushTokens = 500

// PushMessage is the payload delivered to admin devices.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushReport summarizes one Push call. Tokens the provider rejected as
// unregistered or malformed are listed in Stale so they can be deactivated.
type PushReport struct {
	Sent   int
	Failed int
	Stale  []string
}

// NotificationService delivers push messages to admin devices.
type NotificationService interface {
	// Push sends msg to at most MaxPushTokens tokens.
	Push(ctx context.Context, tokens []string, msg PushMessage) (PushReport, error)
}
