package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	serviceRepo "lensbook/database/repository/service"
	"lensbook/models"

	"go.uber.org/zap"
)

func (s *DefaultBookingService) GetService(ctx context.Context, serviceID string) (*models.PhotographyService, error) {
	svc, err := s.Services.GetByID(ctx, serviceID)
	if errors.Is(err, serviceRepo.ErrNotFound) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, err
	}
	return svc, nil
}

// AvailableSlots lists the selectable slots of a date alongside every
// configured slot's state.
func (s *DefaultBookingService) AvailableSlots(ctx context.Context, serviceID, date string, now time.Time) (*models.SlotsResponse, error) {
	svc, err := s.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	return &models.SlotsResponse{
		ServiceID: svc.ID,
		Date:      date,
		Available: s.Filter.FilterAvailableSlots(svc.AvailableDates, date, now),
		Slots:     s.Filter.Views(svc.AvailableDates, date, now),
	}, nil
}

// Quote prices one duration tier of a service for an optional meeting point.
func (s *DefaultBookingService) Quote(ctx context.Context, serviceID string, req models.QuoteRequest) (*models.QuoteResponse, error) {
	svc, err := s.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
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

	s.logger().Debug("quote computed",
		zap.String("serviceId", svc.ID),
		zap.Float64("durationInHours", duration.DurationInHours),
		zap.Float64("distanceKm", quote.DistanceKm),
		zap.Float64("totalPrice", quote.TotalPrice))

	return &models.QuoteResponse{
		ServiceID:       svc.ID,
		Currency:        s.currencyFor(svc),
		DurationInHours: duration.DurationInHours,
		ClientLocation:  location,
		Policy:          s.Policy,
		Quote:           quote,
	}, nil
}

// resolveLocation prefers explicit coordinates and falls back to geocoding
// the address. Neither given means the session is at the service's hub.
func (s *DefaultBookingService) resolveLocation(ctx context.Context, location *models.GeoPoint, address string) (*models.GeoPoint, error) {
	if location != nil {
		if err := ValidateGeoPoint("clientLocation", *location); err != nil {
			return nil, err
		}
		return location, nil
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, nil
	}
	if s.Geocoder == nil {
		return nil, NewInvalidInputError("address", "address lookup is not available; send clientLocation instead")
	}
	point, err := s.Geocoder.Geocode(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve address: %w", err)
	}
	return &point, nil
}

func (s *DefaultBookingService) currencyFor(svc *models.PhotographyService) string {
	if svc.Currency != "" {
		return svc.Currency
	}
	return s.Currency
}
