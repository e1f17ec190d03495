package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lensbook/models"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// ErrNotConfigured is returned when no Firebase credentials are set.
var ErrNotConfigured = errors.New("push notifications are not configured")

// Sender is the part of *messaging.Client used to deliver pushes.
type Sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// PushNotifier sends booking reminders as FCM topic messages. Client apps
// subscribe to ClientTopic(clientID) at sign-in, so no device tokens are stored here.
type PushNotifier struct {
	Client Sender
	Logger *zap.Logger
}

// NewPushNotifier initializes the Firebase app and messaging client from a
// service account file.
func NewPushNotifier(ctx context.Context, credentialsFile string, logger *zap.Logger) (*PushNotifier, error) {
	if strings.TrimSpace(credentialsFile) == "" {
		return nil, ErrNotConfigured
	}
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("firebase: error initializing app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase: error getting messaging client: %w", err)
	}
	return &PushNotifier{Client: client, Logger: logger}, nil
}

// ClientTopic is the topic a client's devices subscribe to. Characters FCM
// rejects in topic names are replaced with '_'.
func ClientTopic(clientID string) string {
	return "client-" + strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case strings.ContainsRune("-_.~%", r):
			return r
		}
		return '_'
	}, clientID)
}

func (n *PushNotifier) NotifyReminder(ctx context.Context, b *models.Booking, p models.ReminderPayload) error {
	title := p.ServiceTitle
	if title == "" {
		title = "Your photo session"
	}
	msg := &messaging.Message{
		Topic: ClientTopic(b.ClientID),
		Notification: &messaging.Notification{
			Title: "Upcoming session",
			Body:  fmt.Sprintf("%s on %s at %s", title, b.Date, b.StartTime),
		},
		Data: map[string]string{
			"type":      "booking_reminder",
			"bookingId": b.ID,
			"serviceId": b.ServiceID,
			"date":      b.Date,
			"startTime": b.StartTime,
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "reminders",
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
		},
	}

	id, err := n.Client.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to send reminder push: %w", err)
	}
	n.logger().Info("reminder push sent",
		zap.String("bookingId", b.ID),
		zap.String("topic", msg.Topic),
		zap.String("messageId", id))
	return nil
}

func (n *PushNotifier) logger() *zap.Logger {
	if n.Logger == nil {
		return zap.NewNop()
	}
	return n.Logger
}
