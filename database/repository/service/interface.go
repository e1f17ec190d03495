// File: database/repository/service/interface.go
package serviceRepo

import (
	"context"
	"errors"

	"lensbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when no service matches the given id (and vendor, where scoped).
	ErrNotFound = errors.New("service not found")
	// ErrSlotFull is returned when a reservation finds no open capacity.
	ErrSlotFull = errors.New("slot has no remaining capacity")
)

type ServiceRepository interface {
	Create(ctx context.Context, svc *models.PhotographyService) error
	GetByID(ctx context.Context, id string) (*models.PhotographyService, error)
	ListByVendor(ctx context.Context, vendorID string) ([]models.PhotographyService, error)
	SetAvailability(ctx context.Context, id, vendorID string, dates []models.DateSlot) error
	AddPortfolioItem(ctx context.Context, id, vendorID string, item models.PortfolioItem) error
	ReserveSlot(ctx context.Context, id, date, startTime string) error
	ReleaseSlot(ctx context.Context, id, date, startTime string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a ServiceRepository over the "services" collection.
func NewMongoServiceRepo(db *mongo.Database) ServiceRepository {
	return &mongoServiceRepo{
		coll: db.Collection("services"),
	}
}
