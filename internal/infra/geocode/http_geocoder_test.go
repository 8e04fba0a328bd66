package geocode

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"moa/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newGeocoderAgainst(t *testing.T, handler http.HandlerFunc) (*httptest.Server, func(context.Context, string) (float64, float64, error)) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	geocoder, err := NewHTTPGeocoder(&config.Config{
		Geocoder: &config.GeocoderConfig{
			Endpoint: server.URL,
			Timeout:  2 * time.Second,
		},
	}, testLogger())
	require.NoError(t, err)

	return server, func(ctx context.Context, address string) (float64, float64, error) {
		coord, err := geocoder.AddressToCoordinate(ctx, address)

		return coord.Latitude, coord.Longitude, err
	}
}

func TestHTTPGeocoder_ResolvesAddress(t *testing.T) {
	var gotQuery string
	_, resolve := newGeocoderAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"25.0330","lon":"121.5654"}]`))
	})

	lat, lon, err := resolve(context.Background(), "Taipei 101")
	require.NoError(t, err)
	assert.Equal(t, "Taipei 101", gotQuery)
	assert.InDelta(t, 25.0330, lat, 0.0001)
	assert.InDelta(t, 121.5654, lon, 0.0001)
}

func TestHTTPGeocoder_UnresolvableAddress(t *testing.T) {
	_, resolve := newGeocoderAgainst(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	_, _, err := resolve(context.Background(), "the middle of nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not be resolved")
}

func TestHTTPGeocoder_ProviderError(t *testing.T) {
	_, resolve := newGeocoderAgainst(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, _, err := resolve(context.Background(), "anywhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestHTTPGeocoder_EmptyAddress(t *testing.T) {
	_, resolve := newGeocoderAgainst(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("provider must not be called for an empty address")
	})

	_, _, err := resolve(context.Background(), "")
	assert.Error(t, err)
}

func TestHTTPGeocoder_MissingEndpoint(t *testing.T) {
	_, err := NewHTTPGeocoder(&config.Config{}, testLogger())
	assert.Error(t, err)
}
