package handlers

import (
	"net/http"
	"strings"

	"lensbook/models"

	"github.com/gin-gonic/gin"
)

// GetService returns the public view of a listing.
func (h *BookingHandler) GetService(c *gin.Context) {
	svc, err := h.Svc.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// GetSlots lists the slots a client can still pick on ?date=YYYY-MM-DD.
func (h *BookingHandler) GetSlots(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		bindError(c, errMissingDate)
		return
	}
	resp, err := h.Svc.AvailableSlots(c.Request.Context(), c.Param("id"), date, h.now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Quote prices a session before the client commits.
func (h *BookingHandler) Quote(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	resp, err := h.Svc.Quote(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
