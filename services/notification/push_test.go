package notification

import (
	"context"
	"errors"
	"testing"

	"lensbook/models"

	"firebase.google.com/go/v4/messaging"
)

type recordingSender struct {
	sent []*messaging.Message
	err  error
}

func (s *recordingSender) Send(_ context.Context, m *messaging.Message) (string, error) {
	s.sent = append(s.sent, m)
	if s.err != nil {
		return "", s.err
	}
	return "projects/lensbook/messages/1", nil
}

func TestClientTopic(t *testing.T) {
	tests := []struct {
		clientID, want string
	}{
		{"8f14e45f-ceea-467a", "client-8f14e45f-ceea-467a"},
		{"user@example.com", "client-user_example.com"},
		{"a b/c", "client-a_b_c"},
	}
	for _, tt := range tests {
		if got := ClientTopic(tt.clientID); got != tt.want {
			t.Errorf("ClientTopic(%q) = %q, want %q", tt.clientID, got, tt.want)
		}
	}
}

func TestPushNotifier_SendsTopicMessage(t *testing.T) {
	sender := &recordingSender{}
	n := &PushNotifier{Client: sender}
	b := &models.Booking{ID: "b-1", ServiceID: "svc-1", ClientID: "client-1", Date: "2025-06-21", StartTime: "09:00"}

	if err := n.NotifyReminder(context.Background(), b, models.ReminderPayload{BookingID: "b-1", ServiceTitle: "Wedding shoot"}); err != nil {
		t.Fatalf("NotifyReminder returned error: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(sender.sent))
	}
	msg := sender.sent[0]
	if msg.Topic != "client-client-1" || msg.Token != "" {
		t.Fatalf("target topic=%q token=%q, want topic only", msg.Topic, msg.Token)
	}
	if msg.Notification == nil || msg.Notification.Body != "Wedding shoot on 2025-06-21 at 09:00" {
		t.Fatalf("notification = %+v", msg.Notification)
	}
	if msg.Data["bookingId"] != "b-1" || msg.Data["type"] != "booking_reminder" {
		t.Fatalf("data = %v", msg.Data)
	}
}

func TestPushNotifier_SendError(t *testing.T) {
	sendErr := errors.New("fcm unavailable")
	n := &PushNotifier{Client: &recordingSender{err: sendErr}}

	err := n.NotifyReminder(context.Background(), &models.Booking{ID: "b-1", ClientID: "c"}, models.ReminderPayload{})
	if !errors.Is(err, sendErr) {
		t.Fatalf("got %v, want wrapped %v", err, sendErr)
	}
}

func TestNewPushNotifierRequiresCredentials(t *testing.T) {
	if _, err := NewPushNotifier(context.Background(), " ", nil); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("got %v, want ErrNotConfigured", err)
	}
}
