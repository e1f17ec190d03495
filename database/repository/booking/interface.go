// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"

	"lensbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when no booking matches the given id.
	ErrNotFound = errors.New("booking not found")
	// ErrStatusConflict is returned when a booking is no longer in the status a transition expects.
	ErrStatusConflict = errors.New("booking status changed concurrently")
)

type BookingRepository interface {
	Create(ctx context.Context, b *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByClient(ctx context.Context, clientID string) ([]models.Booking, error)
	// TransitionStatus moves a booking from one status to another only if it
	// is still in from. Exactly one of several concurrent callers wins.
	TransitionStatus(ctx context.Context, id, from, to string) error
	SetPaymentIntent(ctx context.Context, id, paymentIntentID string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a BookingRepository over the "bookings" collection.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
