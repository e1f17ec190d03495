package booking

import (
	"context"
	"time"

	bookingRepo "lensbook/database/repository/booking"
	serviceRepo "lensbook/database/repository/service"
	"lensbook/models"

	"go.uber.org/zap"
)

// BookingService is the client-facing booking flow.
type BookingService interface {
	GetService(ctx context.Context, serviceID string) (*models.PhotographyService, error)
	AvailableSlots(ctx context.Context, serviceID, date string, now time.Time) (*models.SlotsResponse, error)
	Quote(ctx context.Context, serviceID string, req models.QuoteRequest) (*models.QuoteResponse, error)
	Confirm(ctx context.Context, req models.BookingRequest, now time.Time) (*models.BookingResponse, error)
	GetBooking(ctx context.Context, bookingID, clientID string) (*models.Booking, error)
	ListBookings(ctx context.Context, clientID string) ([]models.Booking, error)
	Cancel(ctx context.Context, bookingID, clientID string) (*models.Booking, error)
}

// CatalogService is the vendor-facing listing management.
type CatalogService interface {
	CreateService(ctx context.Context, vendorID string, req models.CreateServiceRequest) (*models.PhotographyService, error)
	ListServices(ctx context.Context, vendorID string) ([]models.PhotographyService, error)
	SetAvailability(ctx context.Context, serviceID, vendorID string, dates []models.DateSlot) error
	AddPortfolioItem(ctx context.Context, serviceID, vendorID string, item models.PortfolioItem) error
}

// Geocoder resolves a free-text address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (models.GeoPoint, error)
}

// PaymentGateway collects booking totals.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, req models.PaymentRequest) (*models.PaymentIntent, error)
	CancelPaymentIntent(ctx context.Context, paymentIntentID string) error
}

// ReminderScheduler queues a reminder to fire at payload.FireAt.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, payload models.ReminderPayload) error
}

// DefaultBookingService implements BookingService and CatalogService.
// Geocoder, Payments and Reminders are optional.
type DefaultBookingService struct {
	Services     serviceRepo.ServiceRepository
	Bookings     bookingRepo.BookingRepository
	Geocoder     Geocoder
	Payments     PaymentGateway
	Reminders    ReminderScheduler
	Filter       SlotFilter
	Policy       models.PricingPolicy
	Currency     string
	ReminderLead time.Duration
	Logger       *zap.Logger
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
