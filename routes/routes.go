package routes

import (
	"time"

	"lensbook/handlers"
	"lensbook/middleware"
	"lensbook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health.Health)
}

// RegisterPublicRoutes registers service browsing and quoting.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services/:id", hb.Booking.GetService)
		api.GET("/services/:id/slots", hb.Booking.GetSlots)
		api.POST("/services/:id/quote", hb.Booking.Quote)
	}
}

// RegisterGeocodeRoutes registers address lookup for signed-in users. Each
// lookup spends the server's Google quota.
func RegisterGeocodeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/geocode", middleware.JWTAuth(utils.RoleClient, utils.RoleVendor), hb.Geocode.GeocodeAddress)
}

// RegisterBookingRoutes registers the client booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuth(utils.RoleClient))
		bookingGroup.POST("", hb.Booking.CreateBooking)
		bookingGroup.GET("", hb.Booking.ListBookings)
		bookingGroup.GET("/:id", hb.Booking.GetBooking)
		bookingGroup.DELETE("/:id", hb.Booking.CancelBooking)
	}
}

// RegisterVendorRoutes registers listing management endpoints.
func RegisterVendorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	vendorGroup := r.Group("/api/vendor")
	{
		vendorGroup.Use(middleware.JWTAuth(utils.RoleVendor))
		vendorGroup.POST("/services", hb.Vendor.CreateService)
		vendorGroup.GET("/services", hb.Vendor.ListServices)
		vendorGroup.PUT("/services/:id/availability", hb.Vendor.SetAvailability)
		vendorGroup.POST("/services/:id/portfolio", hb.Vendor.UploadPortfolio)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, maxRequestsPerMin int) {
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RequestLogger(utils.GetLogger()))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware(maxRequestsPerMin))

	RegisterHealthRoute(r, hb)
	RegisterPublicRoutes(r, hb)
	RegisterGeocodeRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterVendorRoutes(r, hb)
}
