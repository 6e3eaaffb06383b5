package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"familytree/config"
	"familytree/internal/errors"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingClient struct {
	sent []*messaging.Message
	err  error
}

func (c *recordingClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	c.sent = append(c.sent, message)

	return "projects/p/messages/1", nil
}

func TestFirebaseService_SendTopicNotification(t *testing.T) {
	client := &recordingClient{}
	svc := &firebaseService{client: client, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	err := svc.SendTopicNotification(context.Background(), "family-admins", "New registration", "ARJUN PATEL is awaiting approval",
		map[string]string{"personId": "PAT-240615-001"})

	require.NoError(t, err)
	require.Len(t, client.sent, 1)
	assert.Equal(t, "family-admins", client.sent[0].Topic)
	assert.Equal(t, "New registration", client.sent[0].Notification.Title)
	assert.Equal(t, "PAT-240615-001", client.sent[0].Data["personId"])
}

func TestFirebaseService_SendFailure(t *testing.T) {
	sendErr := errors.New("quota exceeded")
	svc := &firebaseService{client: &recordingClient{err: sendErr}, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	err := svc.SendTopicNotification(context.Background(), "family-admins", "t", "b", nil)

	assert.ErrorIs(t, err, sendErr)
}

func TestNewNotificationService(t *testing.T) {
	svc, err := NewNotificationService(Params{Config: &config.Config{}})
	require.NoError(t, err)
	assert.NoError(t, svc.SendTopicNotification(context.Background(), "t", "t", "b", nil))

	_, err = NewNotificationService(Params{Config: &config.Config{Notification: &config.NotificationConfig{Enabled: true}}})
	assert.Error(t, err)
}
