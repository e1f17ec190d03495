package booking

import (
	"math"

	"lensbook/models"
)

const earthRadiusKm = 6371.0

// CalculateTravelQuote prices a session plus the travel fee for meeting the
// client away from the service's hub. Distance within freeRadiusKm is free;
// beyond it every started kilometre is charged at ratePerKm. A nil
// clientLocation means the session happens at the hub.
func CalculateTravelQuote(basePrice float64, serviceLocation models.GeoPoint, clientLocation *models.GeoPoint, freeRadiusKm, ratePerKm float64) (models.BookingQuote, error) {
	if !isFinite(basePrice) {
		return models.BookingQuote{}, NewInvalidInputError("basePrice", "must be a finite number")
	}
	if basePrice < 0 {
		return models.BookingQuote{}, NewInvalidInputError("basePrice", "must not be negative")
	}
	if !isFinite(freeRadiusKm) || freeRadiusKm <= 0 {
		return models.BookingQuote{}, NewInvalidInputError("freeRadiusKm", "must be a positive number")
	}
	if !isFinite(ratePerKm) || ratePerKm < 0 {
		return models.BookingQuote{}, NewInvalidInputError("ratePerKm", "must be a non-negative number")
	}
	if err := ValidateGeoPoint("serviceLocation", serviceLocation); err != nil {
		return models.BookingQuote{}, err
	}

	var distanceKm float64
	if clientLocation != nil {
		if err := ValidateGeoPoint("clientLocation", *clientLocation); err != nil {
			return models.BookingQuote{}, err
		}
		distanceKm = DistanceKm(serviceLocation, *clientLocation)
	}

	within := distanceKm <= freeRadiusKm
	var travelFee float64
	if !within {
		travelFee = math.Ceil(distanceKm-freeRadiusKm) * ratePerKm
	}

	return models.BookingQuote{
		BasePrice:        basePrice,
		DistanceKm:       distanceKm,
		TravelFee:        travelFee,
		TotalPrice:       roundCurrency(basePrice + travelFee),
		WithinFreeRadius: within,
	}, nil
}

// QuoteWithPolicy is CalculateTravelQuote with the deployment's pricing policy.
func QuoteWithPolicy(basePrice float64, serviceLocation models.GeoPoint, clientLocation *models.GeoPoint, policy models.PricingPolicy) (models.BookingQuote, error) {
	return CalculateTravelQuote(basePrice, serviceLocation, clientLocation, policy.FreeRadiusKm, policy.RatePerKm)
}

// DistanceKm is the great-circle distance between two points.
func DistanceKm(a, b models.GeoPoint) float64 {
	dLat := (b.Lat - a.Lat) * (math.Pi / 180)
	dLng := (b.Lng - a.Lng) * (math.Pi / 180)
	lat1Rad := a.Lat * (math.Pi / 180)
	lat2Rad := b.Lat * (math.Pi / 180)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// ValidateGeoPoint rejects non-finite or out-of-range coordinates.
func ValidateGeoPoint(field string, p models.GeoPoint) error {
	if !isFinite(p.Lat) || !isFinite(p.Lng) {
		return NewInvalidInputError(field, "coordinates must be finite numbers")
	}
	if p.Lat < -90 || p.Lat > 90 {
		return NewInvalidInputError(field, "lat must be within [-90, 90]")
	}
	if p.Lng < -180 || p.Lng > 180 {
		return NewInvalidInputError(field, "lng must be within [-180, 180]")
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func roundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}
