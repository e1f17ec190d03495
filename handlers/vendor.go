package handlers

import (
	"net/http"

	"lensbook/models"

	"github.com/gin-gonic/gin"
)

func (h *VendorHandler) CreateService(c *gin.Context) {
	var req models.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	svc, err := h.Catalog.CreateService(c.Request.Context(), currentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

func (h *VendorHandler) ListServices(c *gin.Context) {
	list, err := h.Catalog.ListServices(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": list})
}

// SetAvailability replaces a service's schedule.
func (h *VendorHandler) SetAvailability(c *gin.Context) {
	var req models.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	serviceID := c.Param("id")
	if err := h.Catalog.SetAvailability(c.Request.Context(), serviceID, currentUser(c), req.AvailableDates); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"serviceId": serviceID, "availableDates": req.AvailableDates})
}
