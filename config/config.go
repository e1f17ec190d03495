package config

import (
	"fmt"
	"log"
	"math"
	"time"

	"lensbook/models"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Proxies allowed to set X-Forwarded-For. Empty trusts none.
	TrustedProxies []string `mapstructure:"TRUSTED_PROXIES"`

	// MongoDB.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Google Maps API Key.
	GoogleAPIKey    string        `mapstructure:"GOOGLE_API_KEY"`
	GeocodeCacheTTL time.Duration `mapstructure:"GEOCODE_CACHE_TTL"`

	// Payments.
	StripeKey string `mapstructure:"STRIPE_KEY"`
	Currency  string `mapstructure:"CURRENCY"`

	// Portfolio media.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	// Firebase service account used for reminder pushes.
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`

	// Booking rules.
	FreeRadiusKm  float64       `mapstructure:"FREE_RADIUS_KM"`
	RatePerKm     float64       `mapstructure:"RATE_PER_KM"`
	SlotUTCOffset string        `mapstructure:"SLOT_UTC_OFFSET"`
	ReminderLead  time.Duration `mapstructure:"REMINDER_LEAD"`
}

var AppConfig Config

// Load reads config.yaml (from "." or "./config") and the environment into a Config.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("TRUSTED_PROXIES", []string{})
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "lensbook")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("REDIS_QUEUE_DB", 1)
	v.SetDefault("GOOGLE_API_KEY", "")
	v.SetDefault("GEOCODE_CACHE_TTL", "168h")
	v.SetDefault("STRIPE_KEY", "")
	v.SetDefault("CURRENCY", "inr")
	v.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	v.SetDefault("CLOUDINARY_API_KEY", "")
	v.SetDefault("CLOUDINARY_API_SECRET", "")
	v.SetDefault("FIREBASE_CREDENTIALS_FILE", "")
	v.SetDefault("FREE_RADIUS_KM", 10.0)
	v.SetDefault("RATE_PER_KM", 25.0)
	v.SetDefault("SLOT_UTC_OFFSET", "+05:30")
	v.SetDefault("REMINDER_LEAD", "24h")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("config: read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig fills AppConfig, exiting the process when configuration is invalid.
func LoadConfig() {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

// Validate checks the values the booking core depends on.
func (c Config) Validate() error {
	if math.IsNaN(c.FreeRadiusKm) || math.IsInf(c.FreeRadiusKm, 0) || c.FreeRadiusKm <= 0 {
		return fmt.Errorf("config: FREE_RADIUS_KM must be a positive number (got %v)", c.FreeRadiusKm)
	}
	if math.IsNaN(c.RatePerKm) || math.IsInf(c.RatePerKm, 0) || c.RatePerKm < 0 {
		return fmt.Errorf("config: RATE_PER_KM must be a non-negative number (got %v)", c.RatePerKm)
	}
	if _, err := ParseUTCOffset(c.SlotUTCOffset); err != nil {
		return err
	}
	if c.ReminderLead < 0 {
		return fmt.Errorf("config: REMINDER_LEAD must not be negative (got %s)", c.ReminderLead)
	}
	return nil
}

// SlotLocation is the fixed zone slot start times are interpreted in.
func (c Config) SlotLocation() *time.Location {
	loc, err := ParseUTCOffset(c.SlotUTCOffset)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ParseUTCOffset turns "+05:30" or "-04:00" into a fixed zone.
func ParseUTCOffset(offset string) (*time.Location, error) {
	t, err := time.Parse("-07:00", offset)
	if err != nil {
		return nil, fmt.Errorf("config: SLOT_UTC_OFFSET must look like +05:30 (got %q)", offset)
	}
	_, seconds := t.Zone()
	return time.FixedZone("UTC"+offset, seconds), nil
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// PricingPolicy returns the travel-fee configuration used for quotes.
func (c Config) PricingPolicy() models.PricingPolicy {
	return models.PricingPolicy{FreeRadiusKm: c.FreeRadiusKm, RatePerKm: c.RatePerKm}
}
