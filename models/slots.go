package models

// TimeSlot is one bookable interval within a date.
type TimeSlot struct {
	StartTime string `bson:"startTime" json:"startTime"` // "HH:MM", 24h, zero-padded
	EndTime   string `bson:"endTime" json:"endTime"`     // "HH:MM", after StartTime
	Capacity  int    `bson:"capacity" json:"capacity"`   // remaining bookings the slot can take
	IsBooked  bool   `bson:"isBooked" json:"isBooked"`
}

// DateSlot is one calendar day's offering for a service.
type DateSlot struct {
	Date      string     `bson:"date" json:"date"` // "YYYY-MM-DD"
	TimeSlots []TimeSlot `bson:"timeSlots" json:"timeSlots"`
}

// SlotView pairs a configured slot with whether it is still selectable, so the
// client can render past or full slots as disabled controls.
type SlotView struct {
	TimeSlot
	Past       bool `json:"past"`
	Selectable bool `json:"selectable"`
}

// SlotsResponse is returned by the slot listing endpoint.
type SlotsResponse struct {
	ServiceID string     `json:"serviceId"`
	Date      string     `json:"date"`
	Available []TimeSlot `json:"available"`
	Slots     []SlotView `json:"slots"`
}

// SetAvailabilityRequest replaces a service's schedule.
type SetAvailabilityRequest struct {
	AvailableDates []DateSlot `json:"availableDates" binding:"required"`
}
