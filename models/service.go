package models

import "time"

// SessionDuration is one pricing tier for a service.
type SessionDuration struct {
	DurationInHours float64 `bson:"durationInHours" json:"durationInHours"`
	Price           float64 `bson:"price" json:"price"`
}

// PortfolioItem is an uploaded sample image for a service.
type PortfolioItem struct {
	PublicID   string    `bson:"publicId" json:"publicId"`
	URL        string    `bson:"url" json:"url"`
	UploadedAt time.Time `bson:"uploadedAt" json:"uploadedAt"`
}

// PhotographyService is a vendor's bookable listing.
type PhotographyService struct {
	ID             string            `bson:"id" json:"id"`
	VendorID       string            `bson:"vendorId" json:"vendorId"`
	Title          string            `bson:"title" json:"title"`
	Category       string            `bson:"category" json:"category"` // e.g. "wedding", "portrait"
	Description    string            `bson:"description,omitempty" json:"description,omitempty"`
	Currency       string            `bson:"currency" json:"currency"`
	Location       GeoPoint          `bson:"location" json:"location"`
	Durations      []SessionDuration `bson:"durations" json:"durations"`
	AvailableDates []DateSlot        `bson:"availableDates" json:"availableDates"`
	Portfolio      []PortfolioItem   `bson:"portfolio,omitempty" json:"portfolio,omitempty"`
	CreatedAt      time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// DurationFor returns the pricing tier offered for the given length in hours.
func (s PhotographyService) DurationFor(hours float64) (SessionDuration, bool) {
	for _, d := range s.Durations {
		if d.DurationInHours == hours {
			return d, true
		}
	}
	return SessionDuration{}, false
}

// CreateServiceRequest is the vendor payload for a new listing.
type CreateServiceRequest struct {
	Title          string            `json:"title" binding:"required"`
	Category       string            `json:"category" binding:"required"`
	Description    string            `json:"description"`
	Currency       string            `json:"currency"`
	Location       *GeoPoint         `json:"location" binding:"required"`
	Durations      []SessionDuration `json:"durations" binding:"required,min=1"`
	AvailableDates []DateSlot        `json:"availableDates"`
}
