package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	bookingRepo "lensbook/database/repository/booking"
	serviceRepo "lensbook/database/repository/service"
	"lensbook/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Confirm books a slot for a client: it re-checks availability, recomputes
// the quote server side, reserves capacity, stores the booking and opens a
// payment for the total. Capacity is handed back if anything after the
// reservation fails.
func (s *DefaultBookingService) Confirm(ctx context.Context, req models.BookingRequest, now time.Time) (*models.BookingResponse, error) {
	if strings.TrimSpace(req.ClientID) == "" {
		return nil, NewInvalidInputError("clientId", "is required")
	}
	svc, err := s.GetService(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	slot, ok := FindSlot(svc.AvailableDates, req.Date, req.StartTime)
	if !ok || !s.Filter.IsSelectable(slot, req.Date, now) {
		return nil, ErrSlotUnavailable
	}
	duration, ok := svc.DurationFor(req.DurationInHours)
	if !ok {
		return nil, ErrDurationNotOffered
	}
	location, err := s.resolveLocation(ctx, req.ClientLocation, req.Address)
	if err != nil {
		return nil, err
	}
	quote, err := QuoteWithPolicy(duration.Price, svc.Location, location, s.Policy)
	if err != nil {
		return nil, err
	}

	if err := s.Services.ReserveSlot(ctx, svc.ID, req.Date, req.StartTime); err != nil {
		if errors.Is(err, serviceRepo.ErrSlotFull) {
			return nil, ErrSlotUnavailable
		}
		return nil, fmt.Errorf("failed to reserve slot: %w", err)
	}

	b := &models.Booking{
		ID:              uuid.New().String(),
		ServiceID:       svc.ID,
		VendorID:        svc.VendorID,
		ClientID:        req.ClientID,
		Date:            req.Date,
		StartTime:       slot.StartTime,
		EndTime:         slot.EndTime,
		DurationInHours: duration.DurationInHours,
		ClientLocation:  location,
		Currency:        s.currencyFor(svc),
		Quote:           quote,
		Status:          models.BookingPendingPayment,
		CreatedAt:       now.UTC(),
		UpdatedAt:       now.UTC(),
	}
	if err := s.Bookings.Create(ctx, b); err != nil {
		s.release(ctx, b)
		return nil, fmt.Errorf("failed to store booking: %w", err)
	}

	resp := &models.BookingResponse{Booking: b}
	switch {
	case quote.TotalPrice == 0:
		s.logger().Info("free session; no payment needed", zap.String("bookingId", b.ID))
	case s.Payments != nil:
		intent, err := s.Payments.CreatePaymentIntent(ctx, models.PaymentRequest{
			BookingID:   b.ID,
			ClientID:    b.ClientID,
			Amount:      quote.TotalPrice,
			Currency:    b.Currency,
			Description: fmt.Sprintf("%s on %s at %s", svc.Title, b.Date, b.StartTime),
			Metadata: map[string]string{
				"bookingId": b.ID,
				"serviceId": svc.ID,
				"vendorId":  svc.VendorID,
			},
		})
		if err != nil {
			// A concurrent cancel may already have released the slot.
			if terr := s.Bookings.TransitionStatus(ctx, b.ID, models.BookingPendingPayment, models.BookingFailed); terr == nil {
				s.release(ctx, b)
			} else {
				s.logger().Warn("booking not marked failed", zap.String("bookingId", b.ID), zap.Error(terr))
			}
			return nil, fmt.Errorf("failed to create payment: %w", err)
		}
		if err := s.Bookings.SetPaymentIntent(ctx, b.ID, intent.ID); err != nil {
			s.logger().Error("failed to store payment intent", zap.String("bookingId", b.ID), zap.Error(err))
		}
		b.PaymentIntentID = intent.ID
		resp.ClientSecret = intent.ClientSecret
	default:
		s.logger().Warn("payments disabled; booking left pending", zap.String("bookingId", b.ID))
	}

	s.scheduleReminder(ctx, svc, b, now)

	s.logger().Info("booking confirmed",
		zap.String("bookingId", b.ID),
		zap.String("serviceId", svc.ID),
		zap.String("date", b.Date),
		zap.String("startTime", b.StartTime),
		zap.Float64("totalPrice", quote.TotalPrice))
	return resp, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingID, clientID string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if errors.Is(err, bookingRepo.ErrNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	if b.ClientID != clientID {
		return nil, ErrForbidden
	}
	return b, nil
}

func (s *DefaultBookingService) ListBookings(ctx context.Context, clientID string) ([]models.Booking, error) {
	return s.Bookings.ListByClient(ctx, clientID)
}

// Cancel releases the slot and voids the pending payment. Cancelling twice is
// a no-op: only the caller that moves the booking out of its live status
// gives the slot back.
func (s *DefaultBookingService) Cancel(ctx context.Context, bookingID, clientID string) (*models.Booking, error) {
	b, err := s.GetBooking(ctx, bookingID, clientID)
	if err != nil {
		return nil, err
	}
	if isClosed(b.Status) {
		return b, nil
	}

	err = s.Bookings.TransitionStatus(ctx, b.ID, b.Status, models.BookingCancelled)
	if errors.Is(err, bookingRepo.ErrStatusConflict) {
		return s.GetBooking(ctx, bookingID, clientID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	b.Status = models.BookingCancelled
	s.release(ctx, b)

	if s.Payments != nil && b.PaymentIntentID != "" {
		if err := s.Payments.CancelPaymentIntent(ctx, b.PaymentIntentID); err != nil {
			s.logger().Error("failed to cancel payment intent",
				zap.String("bookingId", b.ID), zap.String("paymentIntentId", b.PaymentIntentID), zap.Error(err))
		}
	}
	s.logger().Info("booking cancelled", zap.String("bookingId", b.ID))
	return b, nil
}

func isClosed(status string) bool {
	return status == models.BookingCancelled || status == models.BookingFailed
}

func (s *DefaultBookingService) release(ctx context.Context, b *models.Booking) {
	if err := s.Services.ReleaseSlot(ctx, b.ServiceID, b.Date, b.StartTime); err != nil {
		s.logger().Error("failed to release slot",
			zap.String("bookingId", b.ID), zap.String("serviceId", b.ServiceID), zap.Error(err))
	}
}

func (s *DefaultBookingService) scheduleReminder(ctx context.Context, svc *models.PhotographyService, b *models.Booking, now time.Time) {
	if s.Reminders == nil {
		return
	}
	start, err := s.Filter.SlotStart(b.Date, b.StartTime)
	if err != nil {
		return
	}
	fireAt := start.Add(-s.ReminderLead)
	if !fireAt.After(now) {
		return
	}
	err = s.Reminders.ScheduleReminder(ctx, models.ReminderPayload{
		BookingID:    b.ID,
		ClientID:     b.ClientID,
		ServiceTitle: svc.Title,
		Date:         b.Date,
		StartTime:    b.StartTime,
		FireAt:       fireAt,
	})
	if err != nil {
		s.logger().Warn("failed to schedule reminder", zap.String("bookingId", b.ID), zap.Error(err))
	}
}
