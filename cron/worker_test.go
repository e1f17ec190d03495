package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	bookingRepo "lensbook/database/repository/booking"
	"lensbook/models"
	"lensbook/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type stubBookings struct {
	bookingRepo.BookingRepository
	bookings map[string]*models.Booking
	err      error
}

func (s stubBookings) GetByID(_ context.Context, id string) (*models.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	b, ok := s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	return b, nil
}

type recordingNotifier struct {
	sent []string
	err  error
}

func (n *recordingNotifier) NotifyReminder(_ context.Context, b *models.Booking, _ models.ReminderPayload) error {
	n.sent = append(n.sent, b.ID)
	return n.err
}

func reminderTask(t *testing.T, bookingID string) *asynq.Task {
	t.Helper()
	task, _, err := tasks.NewReminderTask(models.ReminderPayload{BookingID: bookingID, FireAt: time.Now().Add(time.Hour)})
	if err != nil {
		t.Fatalf("NewReminderTask: %v", err)
	}
	return task
}

func TestReminderHandler(t *testing.T) {
	bookings := stubBookings{bookings: map[string]*models.Booking{
		"b-pending":   {ID: "b-pending", Status: models.BookingPendingPayment},
		"b-cancelled": {ID: "b-cancelled", Status: models.BookingCancelled},
		"b-failed":    {ID: "b-failed", Status: models.BookingFailed},
	}}

	tests := []struct {
		name      string
		bookingID string
		wantSent  bool
	}{
		{"pending booking is reminded", "b-pending", true},
		{"cancelled booking is skipped", "b-cancelled", false},
		{"failed booking is skipped", "b-failed", false},
		{"unknown booking is skipped", "b-gone", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &recordingNotifier{}
			h := &ReminderHandler{Bookings: bookings, Notifier: n, Logger: zap.NewNop()}
			if err := h.ProcessTask(context.Background(), reminderTask(t, tt.bookingID)); err != nil {
				t.Fatalf("ProcessTask returned error: %v", err)
			}
			if got := len(n.sent) == 1; got != tt.wantSent {
				t.Fatalf("sent = %v, want sent=%v", n.sent, tt.wantSent)
			}
		})
	}
}

func TestReminderHandler_Errors(t *testing.T) {
	n := &recordingNotifier{}
	h := &ReminderHandler{Bookings: stubBookings{}, Notifier: n, Logger: zap.NewNop()}

	err := h.ProcessTask(context.Background(), asynq.NewTask(tasks.TypeBookingReminder, []byte("{")))
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("bad payload: err = %v, want SkipRetry", err)
	}

	dbErr := errors.New("mongo down")
	h.Bookings = stubBookings{err: dbErr}
	if err := h.ProcessTask(context.Background(), reminderTask(t, "b-1")); !errors.Is(err, dbErr) {
		t.Fatalf("lookup failure: err = %v, want %v", err, dbErr)
	}

	notifyErr := errors.New("push failed")
	h.Bookings = stubBookings{bookings: map[string]*models.Booking{"b-1": {ID: "b-1"}}}
	h.Notifier = &recordingNotifier{err: notifyErr}
	if err := h.ProcessTask(context.Background(), reminderTask(t, "b-1")); !errors.Is(err, notifyErr) {
		t.Fatalf("notify failure: err = %v, want %v", err, notifyErr)
	}
}

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: "reminder:b-1"}, nil
}

func TestReminderQueue(t *testing.T) {
	fireAt := time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC)
	payload := models.ReminderPayload{BookingID: "b-1", ClientID: "c-1", ServiceTitle: "Wedding", FireAt: fireAt}

	f := &fakeEnqueuer{}
	q := &ReminderQueue{client: f, logger: zap.NewNop()}
	if err := q.ScheduleReminder(context.Background(), payload); err != nil {
		t.Fatalf("ScheduleReminder returned error: %v", err)
	}
	if len(f.tasks) != 1 || f.tasks[0].Type() != tasks.TypeBookingReminder {
		t.Fatalf("tasks = %v", f.tasks)
	}
	got, err := tasks.ParseReminderTask(f.tasks[0])
	if err != nil {
		t.Fatalf("ParseReminderTask: %v", err)
	}
	if got.BookingID != "b-1" || got.ServiceTitle != "Wedding" || !got.FireAt.Equal(fireAt) {
		t.Fatalf("payload = %+v", got)
	}

	q.client = &fakeEnqueuer{err: asynq.ErrTaskIDConflict}
	if err := q.ScheduleReminder(context.Background(), payload); err != nil {
		t.Fatalf("duplicate reminder: err = %v, want nil", err)
	}

	q.client = &fakeEnqueuer{err: errors.New("redis down")}
	if err := q.ScheduleReminder(context.Background(), payload); err == nil {
		t.Fatalf("enqueue failure: want error")
	}
}
