// Package notification pushes admin alerts through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"familytree/config"
	"familytree/internal/domain/service"
	"familytree/internal/errors"

	fb "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
)

// messagingClient is the subset of *messaging.Client the service uses.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messagingClient
	logger *slog.Logger
}

// NewFirebaseService creates a notification service on the app's messaging client.
func NewFirebaseService(ctx context.Context, app *fb.App, logger *slog.Logger) (service.NotificationService, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client, logger: logger}, nil
}

// SendTopicNotification sends a push notification to every device subscribed to topic
func (s *firebaseService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return errors.Wrapf(err, "failed to send notification to topic %s", topic)
	}

	s.logger.Debug("Topic notification sent",
		slog.String("topic", topic),
		slog.String("message_id", messageID),
	)

	return nil
}

type noopService struct{}

func (noopService) SendTopicNotification(context.Context, string, string, string, map[string]string) error {
	return nil
}

// Params defines the required parameters
type Params struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	FirebaseApp *fb.App `optional:"true"`
}

// NewNotificationService returns the FCM service when admin notifications
// are enabled and a no-op otherwise.
func NewNotificationService(params Params) (service.NotificationService, error) {
	cfg := params.Config.Notification
	if cfg == nil || !cfg.Enabled {
		return noopService{}, nil
	}
	if params.FirebaseApp == nil {
		return nil, errors.New("notifications require a Firebase app")
	}

	return NewFirebaseService(context.Background(), params.FirebaseApp, params.Logger)
}
