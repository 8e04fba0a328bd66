// Package geocode implements the Geocoder interface against a
// Nominatim-compatible HTTP geocoding provider.
package geocode

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"moa/config"
	"moa/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultGeocodeTimeout = 10 * time.Second

type httpGeocoder struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// geocodeResult mirrors one entry of a Nominatim-style search response.
type geocodeResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// NewHTTPGeocoder creates a Geocoder backed by an external HTTP provider.
func NewHTTPGeocoder(cfg *config.Config, logger *slog.Logger) (service.Geocoder, error) {
	if cfg.Geocoder == nil || cfg.Geocoder.Endpoint == "" {
		return nil, errors.New("geocoder endpoint is required")
	}

	timeout := cfg.Geocoder.Timeout
	if timeout <= 0 {
		timeout = defaultGeocodeTimeout
	}

	return &httpGeocoder{
		endpoint: cfg.Geocoder.Endpoint,
		apiKey:   cfg.Geocoder.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// AddressToCoordinate resolves a free-form address to WGS84 coordinates.
// An address the provider cannot resolve is an error; callers decide whether
// that fails the whole operation or degrades.
func (g *httpGeocoder) AddressToCoordinate(ctx context.Context, address string) (service.Coordinate, error) {
	if address == "" {
		return service.Coordinate{}, errors.New("address is empty")
	}

	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")
	if g.apiKey != "" {
		query.Set("key", g.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return service.Coordinate{}, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return service.Coordinate{}, errors.Wrap(err, "geocoding request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return service.Coordinate{}, errors.Errorf("geocoding provider returned status %d", resp.StatusCode)
	}

	var results []geocodeResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return service.Coordinate{}, errors.Wrap(err, "failed to decode geocoding response")
	}
	if len(results) == 0 {
		return service.Coordinate{}, errors.Errorf("address could not be resolved: %s", address)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return service.Coordinate{}, errors.Wrap(err, "invalid latitude in geocoding response")
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return service.Coordinate{}, errors.Wrap(err, "invalid longitude in geocoding response")
	}

	g.logger.Debug("Address resolved",
		slog.String("address", address),
		slog.Float64("latitude", lat),
		slog.Float64("longitude", lon),
	)

	return service.Coordinate{Latitude: lat, Longitude: lon}, nil
}
