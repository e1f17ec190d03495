package handlers

import (
	"time"

	"lensbook/services/booking"
	"lensbook/services/storage"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Booking *BookingHandler
	Vendor  *VendorHandler
	Geocode *GeocodeHandler
	Health  *HealthHandler
}

// BookingHandler serves the client-facing booking endpoints.
type BookingHandler struct {
	Svc booking.BookingService
	Now func() time.Time
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc, Now: time.Now}
}

func (h *BookingHandler) now() time.Time {
	if h.Now == nil {
		return time.Now()
	}
	return h.Now()
}

// VendorHandler serves listing management for vendors.
type VendorHandler struct {
	Catalog        booking.CatalogService
	Media          storage.MediaStore
	MaxUploadBytes int64
}

func NewVendorHandler(catalog booking.CatalogService, media storage.MediaStore) *VendorHandler {
	return &VendorHandler{Catalog: catalog, Media: media, MaxUploadBytes: 10 << 20}
}
