package handlers

import (
	"context"
	"net/http"
	"strings"

	"lensbook/services/geocode"
	"lensbook/utils"

	"github.com/gin-gonic/gin"
)

// AddressResolver is the geocoding lookup used by GeocodeHandler.
type AddressResolver interface {
	Resolve(ctx context.Context, address string) (geocode.Result, error)
}

type GeocodeHandler struct {
	Resolver AddressResolver
}

// GeocodeAddress resolves ?address= to coordinates for the booking form.
func (h *GeocodeHandler) GeocodeAddress(c *gin.Context) {
	address := strings.TrimSpace(c.Query("address"))
	if address == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing required query parameter: address", "")
		return
	}
	if h.Resolver == nil {
		respondError(c, geocode.ErrNotConfigured)
		return
	}
	res, err := h.Resolver.Resolve(c.Request.Context(), address)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
