package booking

import (
	"context"
	"errors"
	"strings"

	serviceRepo "lensbook/database/repository/service"
	"lensbook/models"

	"go.uber.org/zap"
)

func (s *DefaultBookingService) CreateService(ctx context.Context, vendorID string, req models.CreateServiceRequest) (*models.PhotographyService, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, NewInvalidInputError("title", "is required")
	}
	if req.Location == nil {
		return nil, NewInvalidInputError("location", "is required")
	}
	if err := ValidateGeoPoint("location", *req.Location); err != nil {
		return nil, err
	}
	if len(req.Durations) == 0 {
		return nil, NewInvalidInputError("durations", "at least one session duration is required")
	}
	seen := map[float64]bool{}
	for _, d := range req.Durations {
		if !isFinite(d.DurationInHours) || d.DurationInHours <= 0 {
			return nil, NewInvalidInputError("durations.durationInHours", "must be a positive number")
		}
		if !isFinite(d.Price) || d.Price < 0 {
			return nil, NewInvalidInputError("durations.price", "must be a non-negative number")
		}
		if seen[d.DurationInHours] {
			return nil, NewInvalidInputError("durations.durationInHours", "each duration may only be priced once")
		}
		seen[d.DurationInHours] = true
	}
	if err := ValidateSchedule(req.AvailableDates); err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = s.Currency
	}
	svc := &models.PhotographyService{
		VendorID:       vendorID,
		Title:          strings.TrimSpace(req.Title),
		Category:       strings.ToLower(strings.TrimSpace(req.Category)),
		Description:    req.Description,
		Currency:       strings.ToLower(currency),
		Location:       *req.Location,
		Durations:      req.Durations,
		AvailableDates: req.AvailableDates,
	}
	if err := s.Services.Create(ctx, svc); err != nil {
		return nil, err
	}
	s.logger().Info("service created", zap.String("serviceId", svc.ID), zap.String("vendorId", vendorID))
	return svc, nil
}

func (s *DefaultBookingService) ListServices(ctx context.Context, vendorID string) ([]models.PhotographyService, error) {
	return s.Services.ListByVendor(ctx, vendorID)
}

func (s *DefaultBookingService) SetAvailability(ctx context.Context, serviceID, vendorID string, dates []models.DateSlot) error {
	if err := ValidateSchedule(dates); err != nil {
		return err
	}
	err := s.Services.SetAvailability(ctx, serviceID, vendorID, dates)
	if errors.Is(err, serviceRepo.ErrNotFound) {
		return ErrServiceNotFound
	}
	if err != nil {
		return err
	}
	s.logger().Info("availability updated", zap.String("serviceId", serviceID), zap.Int("dates", len(dates)))
	return nil
}

func (s *DefaultBookingService) AddPortfolioItem(ctx context.Context, serviceID, vendorID string, item models.PortfolioItem) error {
	err := s.Services.AddPortfolioItem(ctx, serviceID, vendorID, item)
	if errors.Is(err, serviceRepo.ErrNotFound) {
		return ErrServiceNotFound
	}
	return err
}
