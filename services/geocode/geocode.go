package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lensbook/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const DefaultBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

var (
	ErrAddressNotFound = errors.New("address not found")
	ErrNotConfigured   = errors.New("geocoding API key is not configured")
)

// Result is one resolved address.
type Result struct {
	Address  string          `json:"address"`
	Location models.GeoPoint `json:"location"`
}

type apiResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// GoogleGeocoder resolves addresses with the Google Geocoding API. Cache is
// optional; lookups go straight to Google when it is nil or unavailable.
type GoogleGeocoder struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
	Cache      *redis.Client
	TTL        time.Duration
	Logger     *zap.Logger
}

func NewGoogleGeocoder(apiKey string, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *GoogleGeocoder {
	return &GoogleGeocoder{
		APIKey:     apiKey,
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
		Cache:      cache,
		TTL:        ttl,
		Logger:     logger,
	}
}

// Geocode returns the coordinates of the best match for address.
func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (models.GeoPoint, error) {
	res, err := g.Resolve(ctx, address)
	if err != nil {
		return models.GeoPoint{}, err
	}
	return res.Location, nil
}

// Resolve returns the best match for address along with its formatted form.
func (g *GoogleGeocoder) Resolve(ctx context.Context, address string) (Result, error) {
	key := CacheKey(address)
	if key == CacheKey("") {
		return Result{}, ErrAddressNotFound
	}

	if res, ok := g.fromCache(ctx, key); ok {
		return res, nil
	}

	res, err := g.lookup(ctx, address)
	if err != nil {
		return Result{}, err
	}
	g.toCache(ctx, key, res)
	return res, nil
}

func (g *GoogleGeocoder) lookup(ctx context.Context, address string) (Result, error) {
	if g.APIKey == "" {
		return Result{}, ErrNotConfigured
	}
	base := g.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	q := url.Values{}
	q.Set("address", address)
	q.Set("key", g.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+q.Encode(), nil)
	if err != nil {
		return Result{}, fmt.Errorf("geocoding request: %w", err)
	}
	client := g.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("geocoding request failed: status %d", resp.StatusCode)
	}

	var data apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return Result{}, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	switch data.Status {
	case "OK":
	case "ZERO_RESULTS":
		return Result{}, ErrAddressNotFound
	default:
		return Result{}, fmt.Errorf("geocoding failed: %s %s", data.Status, data.ErrorMessage)
	}
	if len(data.Results) == 0 {
		return Result{}, ErrAddressNotFound
	}

	first := data.Results[0]
	return Result{
		Address:  first.FormattedAddress,
		Location: models.GeoPoint{Lat: first.Geometry.Location.Lat, Lng: first.Geometry.Location.Lng},
	}, nil
}

func (g *GoogleGeocoder) fromCache(ctx context.Context, key string) (Result, bool) {
	if g.Cache == nil {
		return Result{}, false
	}
	raw, err := g.Cache.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			g.logger().Warn("geocode cache read failed", zap.String("key", key), zap.Error(err))
		}
		return Result{}, false
	}
	var res Result
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return Result{}, false
	}
	return res, true
}

func (g *GoogleGeocoder) toCache(ctx context.Context, key string, res Result) {
	if g.Cache == nil {
		return
	}
	b, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := g.Cache.Set(ctx, key, b, g.TTL).Err(); err != nil {
		g.logger().Warn("geocode cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (g *GoogleGeocoder) logger() *zap.Logger {
	if g.Logger == nil {
		return zap.NewNop()
	}
	return g.Logger
}

// CacheKey normalizes address so that case and spacing variants share an entry.
func CacheKey(address string) string {
	return "geocode:" + strings.Join(strings.Fields(strings.ToLower(address)), " ")
}
