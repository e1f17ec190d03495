package cron

import (
	"context"
	"errors"
	"fmt"

	"lensbook/models"
	"lensbook/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ReminderQueue schedules booking reminders on asynq.
type ReminderQueue struct {
	client enqueuer
	logger *zap.Logger
}

func NewReminderQueue(client *asynq.Client, logger *zap.Logger) *ReminderQueue {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReminderQueue{client: client, logger: logger}
}

// ScheduleReminder enqueues the reminder to run at payload.FireAt. A reminder
// already queued for the booking is left as is.
func (q *ReminderQueue) ScheduleReminder(ctx context.Context, payload models.ReminderPayload) error {
	task, opts, err := tasks.NewReminderTask(payload)
	if err != nil {
		return err
	}
	info, err := q.client.EnqueueContext(ctx, task, opts...)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		q.logger.Debug("reminder already queued", zap.String("bookingId", payload.BookingID))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	q.logger.Info("reminder scheduled",
		zap.String("bookingId", payload.BookingID),
		zap.String("taskId", info.ID),
		zap.Time("fireAt", payload.FireAt))
	return nil
}
