package tasks

import (
	"encoding/json"
	"fmt"

	"lensbook/models"

	"github.com/hibiken/asynq"
)

const TypeBookingReminder = "reminder:booking"

// NewReminderTask builds the delayed task for a booking reminder. The task ID
// is derived from the booking so the same reminder is never queued twice.
func NewReminderTask(payload models.ReminderPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(payload.FireAt),
		asynq.TaskID("reminder:" + payload.BookingID),
		asynq.MaxRetry(3),
	}
	return task, opts, nil
}

// ParseReminderTask decodes a task built by NewReminderTask.
func ParseReminderTask(task *asynq.Task) (models.ReminderPayload, error) {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid reminder payload: %w", err)
	}
	if p.BookingID == "" {
		return p, fmt.Errorf("invalid reminder payload: missing bookingId")
	}
	return p, nil
}
