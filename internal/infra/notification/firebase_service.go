// Package notification sends push notifications to admin devices.
package notification

import (
	"context"
	"log/slog"

	"vradmin/config"
	"vradmin/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
}

// ServiceParams holds dependencies for the push service, injected by Fx
type ServiceParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService creates the Firebase push service, or a no-op one
// when Firebase is not configured.
func NewNotificationService(params ServiceParams) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, admin push notifications disabled")

		return noopService{}, nil
	}

	return NewFirebaseService(params.Ctx, cfg.ProjectID, cfg.CredentialsPath)
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.NotificationService, error) {
	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// Push sends msg to every token in a single multicast.
func (s *firebaseService) Push(ctx context.Context, tokens []string, msg service.PushMessage) (service.PushReport, error) {
	if len(tokens) == 0 {
		return service.PushReport{}, nil
	}
	if len(tokens) > service.MaxPushTokens {
		return service.PushReport{}, errors.Errorf("push to %d tokens exceeds multicast limit %d", len(tokens), service.MaxPushTokens)
	}

	resp, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: &messaging.Notification{Title: msg.Title, Body: msg.Body},
		Data:         msg.Data,
		Android:      &messaging.AndroidConfig{Priority: "high"},
	})
	if err != nil {
		return service.PushReport{}, errors.Wrap(err, "send multicast")
	}

	report := service.PushReport{Sent: resp.SuccessCount, Failed: resp.FailureCount}
	for i, r := range resp.Responses {
		if r.Error != nil && isStaleToken(r.Error) {
			report.Stale = append(report.Stale, tokens[i])
		}
	}

	return report, nil
}

func isStaleToken(err error) bool {
	return messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err)
}

// noopService drops pushes when Firebase is not configured.
type noopService struct{}

func (noopService) Push(context.Context, []string, service.PushMessage) (service.PushReport, error) {
	return service.PushReport{}, nil
}
