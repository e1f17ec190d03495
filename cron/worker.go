package cron

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "lensbook/database/repository/booking"
	"lensbook/models"
	"lensbook/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Notifier delivers a reminder to the booking's client.
type Notifier interface {
	NotifyReminder(ctx context.Context, booking *models.Booking, payload models.ReminderPayload) error
}

// LogNotifier writes reminders to the log. It is used when no push channel
// is configured.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n LogNotifier) NotifyReminder(_ context.Context, b *models.Booking, p models.ReminderPayload) error {
	n.Logger.Info("booking reminder",
		zap.String("bookingId", b.ID),
		zap.String("clientId", b.ClientID),
		zap.String("service", p.ServiceTitle),
		zap.String("date", b.Date),
		zap.String("startTime", b.StartTime))
	return nil
}

// ReminderHandler processes reminder tasks.
type ReminderHandler struct {
	Bookings bookingRepo.BookingRepository
	Notifier Notifier
	Logger   *zap.Logger
}

// ProcessTask implements asynq.Handler. Bookings that were cancelled or
// removed since scheduling are skipped without retry.
func (h *ReminderHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	p, err := tasks.ParseReminderTask(task)
	if err != nil {
		h.Logger.Error("dropping reminder", zap.Error(err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	b, err := h.Bookings.GetByID(ctx, p.BookingID)
	if errors.Is(err, bookingRepo.ErrNotFound) {
		h.Logger.Warn("reminder for unknown booking", zap.String("bookingId", p.BookingID))
		return nil
	}
	if err != nil {
		return err
	}

	if b.Status == models.BookingCancelled || b.Status == models.BookingFailed {
		h.Logger.Info("skipping reminder", zap.String("bookingId", b.ID), zap.String("status", b.Status))
		return nil
	}

	if err := h.Notifier.NotifyReminder(ctx, b, p); err != nil {
		h.Logger.Error("failed to send reminder", zap.String("bookingId", b.ID), zap.Error(err))
		return err
	}
	return nil
}

// InitReminderWorker starts the asynq worker and returns the server so the
// caller can shut it down.
func InitReminderWorker(redisOpts asynq.RedisClientOpt, handler *ReminderHandler, logger *zap.Logger) (*asynq.Server, error) {
	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: zapAdapter{logger.Sugar()},
		},
	)

	mux := asynq.NewServeMux()
	mux.Handle(tasks.TypeBookingReminder, handler)

	if err := srv.Start(mux); err != nil {
		return nil, fmt.Errorf("failed to start reminder worker: %w", err)
	}
	logger.Info("reminder worker started")
	return srv, nil
}

// zapAdapter satisfies asynq.Logger.
type zapAdapter struct {
	s *zap.SugaredLogger
}

func (z zapAdapter) Debug(args ...interface{}) { z.s.Debug(args...) }
func (z zapAdapter) Info(args ...interface{})  { z.s.Info(args...) }
func (z zapAdapter) Warn(args ...interface{})  { z.s.Warn(args...) }
func (z zapAdapter) Error(args ...interface{}) { z.s.Error(args...) }
func (z zapAdapter) Fatal(args ...interface{}) { z.s.Fatal(args...) }
