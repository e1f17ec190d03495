package handlers

import (
	"net/http"

	"lensbook/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last background health snapshot.
type HealthHandler struct {
	Status func() utils.HealthStatus
}

func (h *HealthHandler) Health(c *gin.Context) {
	body := gin.H{"status": "ok", "message": "Hi, I'm lensbook"}
	if h != nil && h.Status != nil {
		s := h.Status()
		body["mongo"] = s.Mongo
		body["redis"] = s.Redis
		body["checkedAt"] = s.CheckedAt
		if !s.Mongo {
			body["status"] = "degraded"
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}
	}
	c.JSON(http.StatusOK, body)
}
