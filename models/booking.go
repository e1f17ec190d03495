package models

import "time"

// Booking statuses.
const (
	BookingPendingPayment = "pending_payment"
	BookingFailed         = "failed"
	BookingCancelled      = "cancelled"
)

// BookingQuote is the price breakdown shown before payment. It is derived on
// every input change and never stored on its own.
type BookingQuote struct {
	BasePrice        float64 `bson:"basePrice" json:"basePrice"`
	DistanceKm       float64 `bson:"distanceKm" json:"distanceKm"`
	TravelFee        float64 `bson:"travelFee" json:"travelFee"`
	TotalPrice       float64 `bson:"totalPrice" json:"totalPrice"`
	WithinFreeRadius bool    `bson:"withinFreeRadius" json:"withinFreeRadius"`
}

// QuoteRequest asks for a price for one duration tier of a service. When
// ClientLocation is nil and Address is set, the address is geocoded first.
type QuoteRequest struct {
	DurationInHours float64   `json:"durationInHours" binding:"required"`
	ClientLocation  *GeoPoint `json:"clientLocation,omitempty"`
	Address         string    `json:"address,omitempty"`
}

// QuoteResponse wraps a quote with the resolved inputs.
type QuoteResponse struct {
	ServiceID       string        `json:"serviceId"`
	Currency        string        `json:"currency"`
	DurationInHours float64       `json:"durationInHours"`
	ClientLocation  *GeoPoint     `json:"clientLocation,omitempty"`
	Policy          PricingPolicy `json:"policy"`
	Quote           BookingQuote  `json:"quote"`
}

// BookingRequest is the client payload to confirm a booking.
type BookingRequest struct {
	ServiceID       string    `json:"serviceId" binding:"required"`
	Date            string    `json:"date" binding:"required"`
	StartTime       string    `json:"startTime" binding:"required"`
	DurationInHours float64   `json:"durationInHours" binding:"required"`
	ClientLocation  *GeoPoint `json:"clientLocation,omitempty"`
	Address         string    `json:"address,omitempty"`
	ClientID        string    `json:"-"`
}

// Booking represents a confirmed selection.
type Booking struct {
	ID              string       `bson:"id" json:"id"`
	ServiceID       string       `bson:"serviceId" json:"serviceId"`
	VendorID        string       `bson:"vendorId" json:"vendorId"`
	ClientID        string       `bson:"clientId" json:"clientId"`
	Date            string       `bson:"date" json:"date"`
	StartTime       string       `bson:"startTime" json:"startTime"`
	EndTime         string       `bson:"endTime" json:"endTime"`
	DurationInHours float64      `bson:"durationInHours" json:"durationInHours"`
	ClientLocation  *GeoPoint    `bson:"clientLocation,omitempty" json:"clientLocation,omitempty"`
	Currency        string       `bson:"currency" json:"currency"`
	Quote           BookingQuote `bson:"quote" json:"quote"`
	Status          string       `bson:"status" json:"status"`
	PaymentIntentID string       `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	CreatedAt       time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// BookingResponse is returned once a booking has been confirmed.
type BookingResponse struct {
	Booking      *Booking `json:"booking"`
	ClientSecret string   `json:"clientSecret,omitempty"`
}
