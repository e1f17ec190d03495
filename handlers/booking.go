package handlers

import (
	"errors"
	"net/http"

	"lensbook/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errMissingDate = errors.New("query parameter 'date' (YYYY-MM-DD) is required")

// CreateBooking confirms a booking for the authenticated client.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	req.ClientID = currentUser(c)

	resp, err := h.Svc.Confirm(c.Request.Context(), req, h.now())
	if err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("booking created", zap.String("bookingId", resp.Booking.ID))
	c.JSON(http.StatusCreated, resp)
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Svc.GetBooking(c.Request.Context(), c.Param("id"), currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) ListBookings(c *gin.Context) {
	list, err := h.Svc.ListBookings(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	b, err := h.Svc.Cancel(c.Request.Context(), c.Param("id"), currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
