package models

import "time"

// GeoPoint is a physical location: a service's hub or a client meeting point.
type GeoPoint struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// PricingPolicy carries the deployment-level travel fee settings.
type PricingPolicy struct {
	FreeRadiusKm float64 `json:"freeRadiusKm"`
	RatePerKm    float64 `json:"ratePerKm"`
}

// ReminderPayload is the asynq payload for booking reminders.
type ReminderPayload struct {
	BookingID    string    `json:"bookingId"`
	ClientID     string    `json:"clientId"`
	ServiceTitle string    `json:"serviceTitle"`
	Date         string    `json:"date"`
	StartTime    string    `json:"startTime"`
	FireAt       time.Time `json:"fireAt"`
}
