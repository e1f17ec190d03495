package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lensbook/config"
	"lensbook/handlers"
	"lensbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.Logger = zap.NewNop()
}

func TestGeocodeRequiresSignedInUser(t *testing.T) {
	prev := config.AppConfig.JWTSecret
	config.AppConfig.JWTSecret = "routes-secret"
	t.Cleanup(func() { config.AppConfig.JWTSecret = prev })

	r := gin.New()
	RegisterRoutes(r, &handlers.HandlerBundle{
		Booking: &handlers.BookingHandler{},
		Vendor:  &handlers.VendorHandler{},
		Geocode: &handlers.GeocodeHandler{},
		Health:  &handlers.HealthHandler{},
	}, 100)

	token := func(role string) string {
		tok, err := utils.GenerateToken("user-1", role, time.Hour)
		if err != nil {
			t.Fatalf("GenerateToken: %v", err)
		}
		return "Bearer " + tok
	}

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"anonymous", "", http.StatusUnauthorized},
		{"unknown role", token("admin"), http.StatusForbidden},
		// No resolver is configured, so an authorised call reaches the handler's 503.
		{"client", token(utils.RoleClient), http.StatusServiceUnavailable},
		{"vendor", token(utils.RoleVendor), http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/geocode?address=Fort+Kochi", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("health: status = %d, want 200", w.Code)
	}
}
