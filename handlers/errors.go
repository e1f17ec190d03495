package handlers

import (
	"errors"
	"net/http"

	"lensbook/middleware"
	"lensbook/services/booking"
	"lensbook/services/geocode"
	"lensbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var invalid *booking.InvalidInputError
	switch {
	case errors.As(err, &invalid):
		utils.JSONFieldError(c, http.StatusBadRequest, invalid.Code, invalid.Field, invalid.Message)
	case errors.Is(err, booking.ErrServiceNotFound), errors.Is(err, booking.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, booking.ErrSlotUnavailable):
		utils.JSONError(c, http.StatusConflict, err.Error(), "pick another slot")
	case errors.Is(err, booking.ErrDurationNotOffered):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, booking.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, err.Error(), "")
	case errors.Is(err, geocode.ErrAddressNotFound):
		utils.JSONError(c, http.StatusUnprocessableEntity, err.Error(), "check the address or send coordinates")
	case errors.Is(err, geocode.ErrNotConfigured):
		utils.JSONError(c, http.StatusServiceUnavailable, "address lookup is unavailable", "send coordinates instead")
	default:
		getLogger(c).Error("request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Please try again later", "")
	}
}

func bindError(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
}

func currentUser(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}
