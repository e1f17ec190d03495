package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lensbook/config"
	"lensbook/cron"
	"lensbook/database"
	bookingRepo "lensbook/database/repository/booking"
	serviceRepo "lensbook/database/repository/service"
	"lensbook/handlers"
	"lensbook/routes"
	"lensbook/services/booking"
	"lensbook/services/geocode"
	"lensbook/services/notification"
	"lensbook/services/payment"
	"lensbook/services/storage"
	"lensbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.InitDB(ctx); err != nil {
		logger.Fatal("main: database unavailable", zap.Error(err))
	}
	db := database.DB()

	services := serviceRepo.NewMongoServiceRepo(db)
	bookings := bookingRepo.NewMongoBookingRepo(db)
	for name, repo := range map[string]interface{ EnsureIndexes(context.Context) error }{
		"services": services,
		"bookings": bookings,
	} {
		if err := repo.EnsureIndexes(ctx); err != nil {
			logger.Fatal("main: failed to ensure indexes", zap.String("collection", name), zap.Error(err))
		}
	}

	if err := utils.InitCache(ctx); err != nil {
		logger.Warn("main: redis cache unavailable; geocoding results will not be cached", zap.Error(err))
	}
	utils.StartHealthMonitor(ctx, time.Minute, utils.GetCacheClient(), database.MongoClient)

	svc := &booking.DefaultBookingService{
		Services:     services,
		Bookings:     bookings,
		Filter:       booking.SlotFilter{Location: cfg.SlotLocation()},
		Policy:       cfg.PricingPolicy(),
		Currency:     cfg.Currency,
		ReminderLead: cfg.ReminderLead,
		Logger:       logger.Named("booking"),
	}

	geocodeHandler := &handlers.GeocodeHandler{}
	if cfg.GoogleAPIKey != "" {
		geocoder := geocode.NewGoogleGeocoder(cfg.GoogleAPIKey, utils.GetCacheClient(), cfg.GeocodeCacheTTL, logger.Named("geocode"))
		svc.Geocoder = geocoder
		geocodeHandler.Resolver = geocoder
	} else {
		logger.Warn("main: GOOGLE_API_KEY not set; address lookup disabled")
	}

	if cfg.StripeKey != "" {
		svc.Payments = payment.NewStripeGateway(cfg.StripeKey, nil, logger.Named("payment"))
	} else {
		logger.Warn("main: STRIPE_KEY not set; bookings stay pending without a payment intent")
	}

	redisOpts := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisQueueDB,
	}
	queueClient := asynq.NewClient(redisOpts)
	defer queueClient.Close()
	svc.Reminders = cron.NewReminderQueue(queueClient, logger.Named("reminders"))

	var notifier cron.Notifier = cron.LogNotifier{Logger: logger.Named("notify")}
	if cfg.FirebaseCredentialsFile != "" {
		if push, err := notification.NewPushNotifier(ctx, cfg.FirebaseCredentialsFile, logger.Named("push")); err == nil {
			notifier = push
		} else {
			logger.Warn("main: push notifications disabled; reminders are only logged", zap.Error(err))
		}
	}

	worker, err := cron.InitReminderWorker(redisOpts, &cron.ReminderHandler{
		Bookings: bookings,
		Notifier: notifier,
		Logger:   logger.Named("reminders"),
	}, logger.Named("worker"))
	if err != nil {
		logger.Warn("main: reminder worker not running", zap.Error(err))
	}

	var media storage.MediaStore
	if store, err := storage.NewCloudinaryStore(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, logger.Named("storage")); err == nil {
		media = store
	} else {
		logger.Warn("main: portfolio uploads disabled", zap.Error(err))
	}

	handlerBundle := &handlers.HandlerBundle{
		Booking: handlers.NewBookingHandler(svc),
		Vendor:  handlers.NewVendorHandler(svc, media),
		Geocode: geocodeHandler,
		Health:  &handlers.HealthHandler{Status: utils.GetHealthStatus},
	}

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("main: invalid TRUSTED_PROXIES", zap.Error(err))
	}
	routes.RegisterRoutes(router, handlerBundle, cfg.MaxRequestsPerMin)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if worker != nil {
		worker.Shutdown()
	}
	if err := database.Disconnect(shutdownCtx); err != nil {
		logger.Error("main: mongo disconnect failed", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
